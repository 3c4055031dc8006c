// ABOUTME: Mappers for converting scripture domain models to API DTOs
// ABOUTME: Keeps the domain read-only accessors out of the handler code

package mappers

import (
	"scripture-tags/api/dto/responses"
	"scripture-tags/core/domain"
	"scripture-tags/core/format"
	"scripture-tags/core/interfaces"
)

// ToReferenceResponse converts a verse group to its DTO
func ToReferenceResponse(ref *domain.Reference, linkURL string) *responses.ReferenceResponse {
	if ref == nil {
		return nil
	}

	verses := ref.Verses()
	response := &responses.ReferenceResponse{
		Translation:    ref.Translation(),
		Abbreviation:   ref.Abbreviation(),
		Language:       ref.Language(),
		LanguageCode:   ref.LanguageCode(),
		Direction:      ref.Dir(),
		BookNumber:     ref.BookNumber(),
		BookName:       ref.BookName(),
		Chapter:        ref.Chapter(),
		Reference:      ref.Reference(),
		LocalReference: ref.LocalReference(),
		VerseRange:     ref.VerseRange(),
		Link:           format.LinkFor(ref, linkURL),
		Verses:         make([]responses.VerseResponse, 0, len(verses)),
	}

	for _, v := range verses {
		response.Verses = append(response.Verses, responses.VerseResponse{
			Chapter: v.Chapter,
			Verse:   v.Number,
			Name:    v.Name,
			Text:    v.Text,
		})
	}

	return response
}

// ToReferenceResponses converts verse groups, keeping their order
func ToReferenceResponses(refs []*domain.Reference, linkURL string) []responses.ReferenceResponse {
	out := make([]responses.ReferenceResponse, 0, len(refs))
	for _, ref := range refs {
		if r := ToReferenceResponse(ref, linkURL); r != nil {
			out = append(out, *r)
		}
	}
	return out
}

// ToRenderResponse pairs enriched markup with the pass counters
func ToRenderResponse(html string, result interfaces.LoadResult) responses.RenderResponse {
	return responses.RenderResponse{
		HTML:      html,
		Elements:  result.Elements,
		Abandoned: result.Abandoned,
		Fetched:   result.Fetched,
		Skipped:   result.Skipped,
	}
}
