// ABOUTME: Service interfaces for the core business logic
// ABOUTME: Defines contracts for services used by the HTTP layer and the library facade

package interfaces

import (
	"context"
	"io"

	"scripture-tags/core/domain"
)

// ScriptureFetcher retrieves verse groups for one translation and reference
type ScriptureFetcher interface {
	Fetch(ctx context.Context, translation, reference string) ([]*domain.Reference, error)
}

// LoadResult summarizes one pass over a document
type LoadResult struct {
	Elements  int
	Abandoned int
	Fetched   int
	Skipped   int
}

// DocumentEnricher finds tagged elements in an HTML document and injects verses
type DocumentEnricher interface {
	Enrich(ctx context.Context, document io.Reader) (string, LoadResult, error)
}
