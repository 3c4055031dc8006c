// ABOUTME: Scripture handler returns verse groups for one translation and reference
// ABOUTME: Renders them with a named formatter so clients can embed the markup directly

package handlers

import (
	"context"
	"net/http"
	"strings"

	"github.com/danielgtaylor/huma/v2"

	"scripture-tags/api/dto/mappers"
	"scripture-tags/api/dto/responses"
	"scripture-tags/core/domain"
	"scripture-tags/core/format"
	"scripture-tags/core/interfaces"
	"scripture-tags/core/reference"
)

// ScriptureHandler serves single reference lookups
type ScriptureHandler struct {
	fetcher interfaces.ScriptureFetcher
	linkURL string
}

// NewScriptureHandler creates a new scripture handler. An empty linkURL selects the default site.
func NewScriptureHandler(fetcher interfaces.ScriptureFetcher, linkURL string) *ScriptureHandler {
	if linkURL == "" {
		linkURL = domain.DefaultLinkURL
	}
	return &ScriptureHandler{fetcher: fetcher, linkURL: linkURL}
}

// RegisterRoutes registers scripture routes
func (h *ScriptureHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "getScripture",
		Method:      http.MethodGet,
		Path:        "/scripture/{translation}/{reference}",
		Summary:     "Look up scripture",
		Description: "Fetches the verses for a reference in one translation and renders them as plain text, inline or block markup",
		Tags:        []string{"Scripture"},
	}, h.GetScripture)
}

// ScriptureInput defines the input for a lookup
type ScriptureInput struct {
	Translation        string `path:"translation" pattern:"^[A-Za-z0-9_-]{1,32}$" doc:"Translation abbreviation, e.g. kjv"`
	Reference          string `path:"reference" doc:"Reference such as John 3:16-18"`
	Format             string `query:"format" enum:"plain,inline,block" default:"inline" doc:"Formatter for the rendered field"`
	ShowBookName       bool   `query:"show_book_name" doc:"Include the book name in headers"`
	ShowReference      bool   `query:"show_reference" default:"true" doc:"Include the reference in headers"`
	ShowLocalReference bool   `query:"show_local_reference" doc:"Use the translation's own labels instead of the reference"`
	ShowTranslation    bool   `query:"show_translation" doc:"Include the translation name in headers"`
	ShowAbbreviation   bool   `query:"show_abbreviation" doc:"Include the translation abbreviation in headers"`
	ShowLanguage       bool   `query:"show_language" doc:"Include the language name in headers"`
	ShowLanguageCode   bool   `query:"show_language_code" doc:"Include the language code in headers"`
	ShowLink           bool   `query:"show_link" doc:"Include a link to the passage"`
}

// ScriptureOutput defines the output for a lookup
type ScriptureOutput struct {
	Body responses.ScriptureResponse
}

// GetScripture handles the GET /scripture/{translation}/{reference} endpoint
func (h *ScriptureHandler) GetScripture(ctx context.Context, input *ScriptureInput) (*ScriptureOutput, error) {
	tokens := reference.Split(input.Reference)
	if len(tokens) != 1 {
		return nil, huma.Error400BadRequest("Exactly one reference is required")
	}
	ref := tokens[0]
	if err := reference.Validate(ref); err != nil {
		return nil, toHumaError(err)
	}
	translation := strings.ToLower(input.Translation)

	refs, err := h.fetcher.Fetch(ctx, translation, ref)
	if err != nil {
		return nil, toHumaError(err)
	}

	cfg := domain.NewTagConfig(domain.FormatInline, []string{translation}, domain.Toggles{
		BookName:       input.ShowBookName,
		Reference:      input.ShowReference,
		LocalReference: input.ShowLocalReference,
		Translation:    input.ShowTranslation,
		Abbreviation:   input.ShowAbbreviation,
		Language:       input.ShowLanguage,
		LanguageCode:   input.ShowLanguageCode,
		Link:           input.ShowLink,
	}, h.linkURL, domain.TagDefaults{Translation: translation, LinkURL: h.linkURL})

	formatName := input.Format
	if formatName == "" {
		formatName = string(format.NameInline)
	}

	output := &ScriptureOutput{}
	output.Body = responses.ScriptureResponse{
		Translation: translation,
		Query:       ref,
		Format:      formatName,
		References:  mappers.ToReferenceResponses(refs, cfg.LinkURL()),
		Rendered:    format.ByName(formatName, format.SettingsFrom(cfg)).Format(refs),
	}
	return output, nil
}
