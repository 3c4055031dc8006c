// ABOUTME: Presenters insert rendered scripture into a tagged element
// ABOUTME: Inline replaces then appends, tooltip accumulates text, modal fills a dialog

package present

import (
	"strings"

	"github.com/PuerkitoBio/goquery"

	"scripture-tags/core/domain"
)

// Presenter receives rendered content for one element, once per successful fetch
type Presenter interface {
	Load(content string)
}

// Overlay is a presenter whose content lives in a separately shown surface
type Overlay interface {
	Presenter
	Create()
	Show()
	Hide()
}

// Discarder is a presenter that can remove what it added outside the element
type Discarder interface {
	Discard()
}

// IDSource yields unique dialog ids within a document
type IDSource func() string

// New selects the presenter for an element's format
func New(cfg *domain.TagConfig, el *goquery.Selection, body *goquery.Selection, chrome Chrome, ids IDSource) Presenter {
	switch cfg.Format() {
	case domain.FormatTooltip:
		return NewTooltip(el, chrome)
	case domain.FormatModal:
		return NewModal(el, body, chrome, ids())
	default:
		return NewInline(el)
	}
}

// Inline writes content into the element itself
type Inline struct {
	el     *goquery.Selection
	loaded bool
}

// NewInline creates an inline presenter
func NewInline(el *goquery.Selection) *Inline {
	return &Inline{el: el}
}

// Load replaces the original text on the first call and appends afterwards
func (p *Inline) Load(content string) {
	if !p.loaded {
		p.el.SetHtml(content)
		p.loaded = true
		return
	}
	p.el.AppendHtml(content)
}

// Tooltip accumulates plain text into the element's tooltip
type Tooltip struct {
	el     *goquery.Selection
	chrome Chrome
	parts  []string
}

// NewTooltip creates a tooltip presenter
func NewTooltip(el *goquery.Selection, chrome Chrome) *Tooltip {
	return &Tooltip{el: el, chrome: chrome}
}

// Create attaches an empty tooltip
func (p *Tooltip) Create() {
	p.chrome.Tooltip(p.el, p.Text())
}

// Load appends content to the tooltip, separated by a blank line
func (p *Tooltip) Load(content string) {
	p.parts = append(p.parts, content)
	p.chrome.Tooltip(p.el, p.Text())
}

// Show forces the tooltip open
func (p *Tooltip) Show() { p.chrome.ToggleTooltip(p.el, true) }

// Hide returns the tooltip to hover behaviour
func (p *Tooltip) Hide() { p.chrome.ToggleTooltip(p.el, false) }

// Text returns the accumulated tooltip text
func (p *Tooltip) Text() string {
	return strings.Join(p.parts, "\n\n")
}

// Modal loads content into a dialog appended to the document body.
// The dialog is created lazily so elements whose fetches all fail leave no trace.
type Modal struct {
	el     *goquery.Selection
	body   *goquery.Selection
	chrome Chrome
	id     string
	dialog *goquery.Selection
}

// NewModal creates a modal presenter for a dialog with the given id
func NewModal(el, body *goquery.Selection, chrome Chrome, id string) *Modal {
	return &Modal{el: el, body: body, chrome: chrome, id: id}
}

// ID returns the dialog id
func (p *Modal) ID() string { return p.id }

// Create builds the hidden dialog and marks the element as its trigger
func (p *Modal) Create() {
	if p.dialog != nil {
		return
	}
	p.dialog = p.chrome.CreateModal(p.body, p.id)
	p.chrome.Trigger(p.el, p.id)
	p.el.AddClass("getbible-modal-trigger")
}

// Load appends content to the dialog body
func (p *Modal) Load(content string) {
	p.Create()
	modalBody(p.dialog).AppendHtml(content)
}

// Show opens the dialog
func (p *Modal) Show() {
	p.Create()
	p.chrome.ToggleModal(p.dialog, true)
}

// Discard removes the dialog if it was created
func (p *Modal) Discard() {
	if p.dialog == nil {
		return
	}
	p.dialog.Remove()
	p.dialog = nil
}

// Hide closes the dialog
func (p *Modal) Hide() {
	if p.dialog == nil {
		return
	}
	p.chrome.ToggleModal(p.dialog, false)
}
