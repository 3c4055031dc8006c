// ABOUTME: Public types for the scripture library API
// ABOUTME: Provides user-friendly types that wrap internal domain models

package scripture

import (
	"scripture-tags/core/domain"
	"scripture-tags/core/format"
	"scripture-tags/core/interfaces"
)

// Verse is a single verse
type Verse struct {
	Chapter int    `json:"chapter"`
	Number  int    `json:"verse"`
	Name    string `json:"name"`
	Text    string `json:"text"`
}

// Passage is one verse group returned by the API
type Passage struct {
	Translation    string  `json:"translation"`
	Abbreviation   string  `json:"abbreviation"`
	Language       string  `json:"language"`
	LanguageCode   string  `json:"language_code"`
	RTL            bool    `json:"rtl"`
	BookNumber     int     `json:"book_number"`
	BookName       string  `json:"book_name"`
	Chapter        int     `json:"chapter"`
	Reference      string  `json:"reference"`
	LocalReference string  `json:"local_reference,omitempty"`
	VerseRange     string  `json:"verse_range"`
	Link           string  `json:"link"`
	Verses         []Verse `json:"verses"`
}

// Result is the outcome of enriching a document
type Result struct {
	HTML      string `json:"html"`
	Elements  int    `json:"elements"`
	Abandoned int    `json:"abandoned"`
	Fetched   int    `json:"fetched"`
	Skipped   int    `json:"skipped"`
}

func toPassage(ref *domain.Reference, linkURL string) Passage {
	p := Passage{
		Translation:    ref.Translation(),
		Abbreviation:   ref.Abbreviation(),
		Language:       ref.Language(),
		LanguageCode:   ref.LanguageCode(),
		RTL:            ref.IsRTL(),
		BookNumber:     ref.BookNumber(),
		BookName:       ref.BookName(),
		Chapter:        ref.Chapter(),
		Reference:      ref.Reference(),
		LocalReference: ref.LocalReference(),
		VerseRange:     ref.VerseRange(),
		Link:           format.LinkFor(ref, linkURL),
	}
	for _, v := range ref.Verses() {
		p.Verses = append(p.Verses, Verse{Chapter: v.Chapter, Number: v.Number, Name: v.Name, Text: v.Text})
	}
	return p
}

func toResult(html string, r interfaces.LoadResult) *Result {
	return &Result{
		HTML:      html,
		Elements:  r.Elements,
		Abandoned: r.Abandoned,
		Fetched:   r.Fetched,
		Skipped:   r.Skipped,
	}
}
