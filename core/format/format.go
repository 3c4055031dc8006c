// ABOUTME: Formatter strategies rendering verse groups as plain text, inline HTML or block HTML
// ABOUTME: All strategies share header field selection and differ only in markup and ordering

package format

import (
	"net/url"
	"strconv"
	"strings"

	"scripture-tags/core/domain"
)

// Formatter renders verse groups into a string
type Formatter interface {
	Format(refs []*domain.Reference) string
}

// Name identifies a formatter strategy
type Name string

const (
	// NamePlain renders a bracketed header and "N. text" lines
	NamePlain Name = "plain"

	// NameInline renders one span per verse group
	NameInline Name = "inline"

	// NameBlock renders a header followed by one block per verse
	NameBlock Name = "block"
)

// Settings are the display options shared by every strategy
type Settings struct {
	Show    domain.Toggles
	LinkURL string
}

// SettingsFrom extracts formatter settings from an element config
func SettingsFrom(cfg *domain.TagConfig) Settings {
	return Settings{Show: cfg.Show(), LinkURL: cfg.LinkURL()}
}

// For selects the strategy that fits a presentation format.
// Tooltips need plain text, modals get block markup, everything else inline.
func For(f domain.Format, settings Settings) Formatter {
	switch f {
	case domain.FormatTooltip:
		return &Plain{settings: settings}
	case domain.FormatModal:
		return &Block{settings: settings}
	default:
		return &Inline{settings: settings}
	}
}

// ByName selects a strategy by name, falling back to inline
func ByName(name string, settings Settings) Formatter {
	switch Name(strings.ToLower(strings.TrimSpace(name))) {
	case NamePlain:
		return &Plain{settings: settings}
	case NameBlock:
		return &Block{settings: settings}
	default:
		return &Inline{settings: settings}
	}
}

// HeaderFields returns the enabled header values for a reference in display order
func HeaderFields(ref *domain.Reference, show domain.Toggles) []string {
	var fields []string
	add := func(enabled bool, value string) {
		if enabled && strings.TrimSpace(value) != "" {
			fields = append(fields, value)
		}
	}

	add(show.BookName, ref.BookName())
	add(show.Reference, ref.Reference())
	add(show.LocalReference, ref.LocalReference())
	add(show.Translation, ref.Translation())
	add(show.Abbreviation, ref.Abbreviation())
	add(show.Language, ref.Language())
	add(show.LanguageCode, ref.LanguageCode())

	return fields
}

// LinkFor builds the external link to the passage
func LinkFor(ref *domain.Reference, baseURL string) string {
	if baseURL == "" {
		baseURL = domain.DefaultLinkURL
	}
	return strings.TrimRight(baseURL, "/") +
		"/" + url.PathEscape(ref.Abbreviation()) +
		"/" + url.PathEscape(ref.BookName()) +
		"/" + strconv.Itoa(ref.Chapter()) +
		"/" + url.PathEscape(ref.VerseRange())
}
