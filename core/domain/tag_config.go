// ABOUTME: Tag configuration domain model holds the per element presentation settings
// ABOUTME: Enforces the derived display rules once at construction and stays immutable

package domain

import "strings"

// Format is the presentation mode of a tagged element
type Format string

const (
	// FormatInline replaces the element content with the rendered verses
	FormatInline Format = "inline"

	// FormatTooltip sets the rendered text as the element title
	FormatTooltip Format = "tooltip"

	// FormatModal opens the rendered verses in a dialog
	FormatModal Format = "modal"
)

const (
	// DefaultTranslation is used when an element names no translation
	DefaultTranslation = "kjv"

	// DefaultLinkURL is the base URL of the external link affordance
	DefaultLinkURL = "https://getbible.net"
)

// ParseFormat maps an attribute value to a Format, falling back to inline
func ParseFormat(value string) Format {
	switch Format(strings.ToLower(strings.TrimSpace(value))) {
	case FormatTooltip:
		return FormatTooltip
	case FormatModal:
		return FormatModal
	default:
		return FormatInline
	}
}

// TagDefaults are the service wide fallbacks for attributes an element omits
type TagDefaults struct {
	Translation string
	LinkURL     string
}

// DefaultTagDefaults returns the built in fallbacks
func DefaultTagDefaults() TagDefaults {
	return TagDefaults{Translation: DefaultTranslation, LinkURL: DefaultLinkURL}
}

// Toggles are the display switches read from an element
type Toggles struct {
	BookName       bool
	Reference      bool
	LocalReference bool
	Translation    bool
	Abbreviation   bool
	Language       bool
	LanguageCode   bool
	Link           bool
}

// TagConfig is the immutable configuration of one tagged element
type TagConfig struct {
	format       Format
	translations []string
	show         Toggles
	linkURL      string
}

// NewTagConfig builds a config and applies the derived rules:
// local reference display turns reference display off, and a
// link URL other than the default turns link display on.
func NewTagConfig(format Format, translations []string, show Toggles, linkURL string, defaults TagDefaults) *TagConfig {
	if defaults.Translation == "" {
		defaults.Translation = DefaultTranslation
	}
	defaults.LinkURL = strings.TrimRight(strings.TrimSpace(defaults.LinkURL), "/")
	if defaults.LinkURL == "" {
		defaults.LinkURL = DefaultLinkURL
	}

	cleaned := make([]string, 0, len(translations))
	seen := make(map[string]struct{}, len(translations))
	for _, tr := range translations {
		tr = strings.ToLower(strings.TrimSpace(tr))
		if tr == "" {
			continue
		}
		if _, ok := seen[tr]; ok {
			continue
		}
		seen[tr] = struct{}{}
		cleaned = append(cleaned, tr)
	}
	if len(cleaned) == 0 {
		cleaned = []string{strings.ToLower(defaults.Translation)}
	}

	linkURL = strings.TrimRight(strings.TrimSpace(linkURL), "/")
	if linkURL == "" {
		linkURL = defaults.LinkURL
	}

	if show.LocalReference {
		show.Reference = false
	}
	if !strings.EqualFold(linkURL, defaults.LinkURL) {
		show.Link = true
	}

	return &TagConfig{
		format:       ParseFormat(string(format)),
		translations: cleaned,
		show:         show,
		linkURL:      linkURL,
	}
}

// Format returns the presentation mode
func (c *TagConfig) Format() Format { return c.format }

// Translations returns a copy of the translation codes in order
func (c *TagConfig) Translations() []string {
	return append([]string(nil), c.translations...)
}

// Show returns the display toggles
func (c *TagConfig) Show() Toggles { return c.show }

// LinkURL returns the base URL of the external link
func (c *TagConfig) LinkURL() string { return c.linkURL }
