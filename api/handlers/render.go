// ABOUTME: Render handler enriches posted HTML with scripture for every tagged element
// ABOUTME: Wraps the loader and reports per pass counters alongside the markup

package handlers

import (
	"context"
	"net/http"
	"strings"

	"github.com/danielgtaylor/huma/v2"

	"scripture-tags/api/dto/mappers"
	"scripture-tags/api/dto/requests"
	"scripture-tags/api/dto/responses"
	"scripture-tags/core/loader"
	"scripture-tags/pkg/featureflags"
)

// RenderHandler handles document enrichment.
// The render_enabled flag is read from the request context.
type RenderHandler struct {
	loader *loader.Loader
}

// NewRenderHandler creates a new render handler
func NewRenderHandler(l *loader.Loader) *RenderHandler {
	return &RenderHandler{loader: l}
}

// RegisterRoutes registers render routes
func (h *RenderHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "renderDocument",
		Method:        http.MethodPost,
		Path:          "/render",
		Summary:       "Enrich HTML with scripture",
		Description:   "Finds tagged elements, fetches the referenced scripture and injects it inline, as tooltips or as modal dialogs",
		Tags:          []string{"Render"},
		MaxBodyBytes:  requests.MaxDocumentSize + 4096,
		DefaultStatus: http.StatusOK,
	}, h.Render)
}

// RenderInput defines the input for document rendering
type RenderInput struct {
	Body requests.RenderRequest
}

// RenderOutput defines the output for document rendering
type RenderOutput struct {
	Body responses.RenderResponse
}

// Render handles the POST /render endpoint
func (h *RenderHandler) Render(ctx context.Context, input *RenderInput) (*RenderOutput, error) {
	if !featureflags.IsEnabled(ctx, featureflags.RenderEnabled) {
		return nil, huma.Error503ServiceUnavailable("Rendering is disabled")
	}

	input.Body.ApplyDefaults(h.loader.ClassName())
	l := h.loader.WithClass(input.Body.Class)

	enrich := l.Enrich
	if input.Body.Fragment {
		enrich = l.EnrichFragment
	}

	html, result, err := enrich(ctx, strings.NewReader(input.Body.HTML))
	if err != nil {
		return nil, toHumaError(err)
	}

	return &RenderOutput{Body: mappers.ToRenderResponse(html, result)}, nil
}
