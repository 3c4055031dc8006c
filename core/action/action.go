// ABOUTME: Reads a tagged element's data attributes into a typed TagConfig
// ABOUTME: Applies attribute defaults and rejects anything that is not an element node

package action

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"

	"scripture-tags/core/domain"
	"scripture-tags/core/errors"
	"scripture-tags/pkg/utils/parse"
)

// Attribute names read from a tagged element
const (
	AttrFormat             = "data-format"
	AttrTranslation        = "data-translation"
	AttrShowBookName       = "data-show-book-name"
	AttrShowReference      = "data-show-reference"
	AttrShowLocalReference = "data-show-local-reference"
	AttrShowTranslation    = "data-show-translation"
	AttrShowAbbreviation   = "data-show-abbreviation"
	AttrShowLanguage       = "data-show-language"
	AttrShowLanguageCode   = "data-show-language-code"
	AttrShowLink           = "data-show-getbible-link"
	AttrLinkURL            = "data-getbible-url"
)

// Option adjusts the parser defaults
type Option func(*domain.TagDefaults)

// WithDefaultTranslation sets the translation used when the element names none
func WithDefaultTranslation(code string) Option {
	return func(d *domain.TagDefaults) {
		if code != "" {
			d.Translation = code
		}
	}
}

// WithDefaultLinkURL sets the link base URL used when the element names none
func WithDefaultLinkURL(url string) Option {
	return func(d *domain.TagDefaults) {
		if url != "" {
			d.LinkURL = url
		}
	}
}

// New reads the configuration of the first node in sel
func New(sel *goquery.Selection, opts ...Option) (*domain.TagConfig, error) {
	if sel == nil || sel.Length() == 0 {
		return nil, &errors.ValidationError{Field: "element", Message: "selection is empty"}
	}
	node := sel.Get(0)
	if node.Type != html.ElementNode {
		return nil, &errors.ValidationError{Field: "element", Message: "not an element node"}
	}
	el := sel.First()

	defaults := domain.DefaultTagDefaults()
	for _, opt := range opts {
		opt(&defaults)
	}

	show := domain.Toggles{
		BookName:       toggle(el, AttrShowBookName, 0),
		Reference:      toggle(el, AttrShowReference, 1),
		LocalReference: toggle(el, AttrShowLocalReference, 0),
		Translation:    toggle(el, AttrShowTranslation, 0),
		Abbreviation:   toggle(el, AttrShowAbbreviation, 0),
		Language:       toggle(el, AttrShowLanguage, 0),
		LanguageCode:   toggle(el, AttrShowLanguageCode, 0),
		Link:           toggle(el, AttrShowLink, 0),
	}

	format, _ := el.Attr(AttrFormat)
	translations, _ := el.Attr(AttrTranslation)
	linkURL, _ := el.Attr(AttrLinkURL)

	return domain.NewTagConfig(
		domain.ParseFormat(format),
		strings.Split(translations, ";"),
		show,
		linkURL,
		defaults,
	), nil
}

// toggle reads a "1"/"0" attribute, using def when the attribute is absent
func toggle(el *goquery.Selection, name string, def int) bool {
	value, ok := el.Attr(name)
	if !ok || strings.TrimSpace(value) == "" {
		return def == 1
	}
	return parse.IntOrZero(strings.TrimSpace(value)) == 1
}
