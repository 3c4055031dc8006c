// Package core contains the business logic of the scripture tag service.
// It is framework-agnostic and can be used without the HTTP layer.
//
// The core package is organized into several sub-packages:
//
// - domain: verse groups and per element tag configuration
// - verses: compression of verse numbers into ranges such as 1-3,5
// - reference: splitting and validating reference text
// - action: reading a tagged element's data attributes
// - scripture: fetching verse groups through a timestamped cache
// - format: plain, inline and block renderings of verse groups
// - present: inserting renderings inline, as tooltips or as modals, per UI framework
// - loader: walking a document and driving each tagged element to completion
// - errors: custom error types for better error handling
// - interfaces: contracts for external dependencies (cache, HTTP, logger)
//
// # Usage Example
//
//	deps := interfaces.Dependencies{
//	    Cache:      myCache,      // implements interfaces.Cache
//	    HTTPClient: myHTTPClient, // implements interfaces.HTTPClient
//	    Logger:     myLogger,     // implements interfaces.Logger
//	}
//
//	fetcher := scripture.NewFetcher(deps, "")
//	l := loader.New(deps, fetcher)
//
//	html, result, err := l.Enrich(ctx, strings.NewReader(page))
package core
