// Package api provides the HTTP API layer for the scripture tag service.
// It uses the Huma framework to provide automatic OpenAPI documentation,
// request/response validation, and a clean handler interface.
//
// # Architecture
//
// The API package is structured as follows:
//
// - server.go: Huma API configuration and setup
// - handlers/: HTTP request handlers (render, scripture, health)
// - dto/: Data Transfer Objects for requests and responses
// - middleware/: request logging and per-client rate limiting
//
// # Endpoints
//
//	POST /render                               enrich tagged elements in an HTML document
//	GET  /scripture/{translation}/{reference}  look up and render one reference
//	GET  /health                               liveness and cache reachability
//
// The OpenAPI document is served at /openapi.json and the docs UI at /docs.
//
// # Usage Example
//
//	humaAPI, router, stop := api.NewAPIWithMiddleware(api.APIConfig{
//	    Logger:    logger,
//	    Flags:     flags,
//	    RateLimit: 10,
//	    RateBurst: 20,
//	})
//	defer stop()
//
//	handlers.NewRenderHandler(l).RegisterRoutes(humaAPI)
//	handlers.NewScriptureHandler(fetcher, "").RegisterRoutes(humaAPI)
//
//	http.ListenAndServe(":8000", router)
//
// # Error Handling
//
// Errors use the RFC 7807 problem format. Domain errors are mapped to
// status codes: invalid references 400, unknown passages 404, upstream
// failures 503.
package api
