// ABOUTME: Reference domain model wraps one verse group returned by the scripture API
// ABOUTME: Validates payloads at construction and derives display labels from verse numbers

package domain

import (
	"strings"

	"scripture-tags/core/errors"
	"scripture-tags/core/verses"
)

// Verse is a single numbered verse of a chapter
type Verse struct {
	Chapter int    `json:"chapter"`
	Number  int    `json:"verse"`
	Name    string `json:"name"`
	Text    string `json:"text"`
}

// RawReference mirrors the JSON shape of one verse group in the API response
type RawReference struct {
	Translation  string   `json:"translation"`
	Abbreviation string   `json:"abbreviation"`
	Language     string   `json:"language"`
	LanguageCode string   `json:"lang"`
	Direction    string   `json:"direction"`
	Encoding     string   `json:"encoding"`
	BookNumber   int      `json:"book_nr"`
	BookName     string   `json:"book_name"`
	Chapter      int      `json:"chapter"`
	Name         string   `json:"name"`
	Verses       []Verse  `json:"verses"`
	Ref          []string `json:"ref"`
}

// Reference is an immutable, validated verse group
type Reference struct {
	raw RawReference
}

// NewReference validates a raw payload and wraps it
func NewReference(raw RawReference) (*Reference, error) {
	switch {
	case strings.TrimSpace(raw.Translation) == "":
		return nil, &errors.ValidationError{Field: "translation", Message: "is required"}
	case strings.TrimSpace(raw.BookName) == "":
		return nil, &errors.ValidationError{Field: "book_name", Message: "is required"}
	case strings.TrimSpace(raw.Name) == "":
		return nil, &errors.ValidationError{Field: "name", Message: "is required"}
	case len(raw.Verses) == 0:
		return nil, &errors.ValidationError{Field: "verses", Message: "must not be empty"}
	}

	// Own copies so callers cannot mutate the reference afterwards
	raw.Verses = append([]Verse(nil), raw.Verses...)
	raw.Ref = append([]string(nil), raw.Ref...)

	return &Reference{raw: raw}, nil
}

// Translation returns the full translation name
func (r *Reference) Translation() string { return r.raw.Translation }

// Abbreviation returns the translation abbreviation
func (r *Reference) Abbreviation() string { return r.raw.Abbreviation }

// Language returns the language name
func (r *Reference) Language() string { return r.raw.Language }

// LanguageCode returns the language code
func (r *Reference) LanguageCode() string { return r.raw.LanguageCode }

// Direction returns the text direction as sent by the API (LTR or RTL)
func (r *Reference) Direction() string { return r.raw.Direction }

// Encoding returns the text encoding
func (r *Reference) Encoding() string { return r.raw.Encoding }

// BookNumber returns the book number
func (r *Reference) BookNumber() int { return r.raw.BookNumber }

// BookName returns the book name
func (r *Reference) BookName() string { return r.raw.BookName }

// Chapter returns the chapter number
func (r *Reference) Chapter() int { return r.raw.Chapter }

// ChapterName returns the chapter label, e.g. "John 3"
func (r *Reference) ChapterName() string { return r.raw.Name }

// IsRTL reports whether the text runs right to left
func (r *Reference) IsRTL() bool {
	return strings.EqualFold(r.raw.Direction, "rtl")
}

// Dir returns the value for an HTML dir attribute
func (r *Reference) Dir() string {
	if r.IsRTL() {
		return "rtl"
	}
	return "ltr"
}

// Verses returns a copy of the verse list
func (r *Reference) Verses() []Verse {
	return append([]Verse(nil), r.raw.Verses...)
}

// VerseNumbers returns the verse numbers in payload order
func (r *Reference) VerseNumbers() []int {
	numbers := make([]int, 0, len(r.raw.Verses))
	for _, v := range r.raw.Verses {
		numbers = append(numbers, v.Number)
	}
	return numbers
}

// VerseRange returns the compressed verse numbers, e.g. "16-17,19"
func (r *Reference) VerseRange() string {
	return verses.Compress(r.VerseNumbers())
}

// Reference returns the chapter label combined with the verse range, e.g. "John 3:16-17"
func (r *Reference) Reference() string {
	return r.raw.Name + ":" + r.VerseRange()
}

// LocalReference returns the caller supplied labels joined with "; "
func (r *Reference) LocalReference() string {
	return strings.Join(r.raw.Ref, "; ")
}

// Raw returns a copy of the underlying payload, used when writing to the cache
func (r *Reference) Raw() RawReference {
	raw := r.raw
	raw.Verses = r.Verses()
	raw.Ref = append([]string(nil), r.raw.Ref...)
	return raw
}
