// ABOUTME: Chrome providers supply tooltip and modal markup for a UI framework
// ABOUTME: Base falls back to a native title attribute and a display toggled dialog

package present

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// Provider names
const (
	ChromeBase       = "base"
	ChromeUIkit      = "uikit"
	ChromeBootstrap  = "bootstrap"
	ChromeFoundation = "foundation"
	ChromeTailwind   = "tailwind"

	// ChromeAuto selects a provider per document with Detect
	ChromeAuto = "auto"
)

// modalBodyClass marks the container rendered content is loaded into
const modalBodyClass = "getbible-modal-body"

// Chrome supplies framework specific tooltip and modal behaviour
type Chrome interface {
	// Name returns the registry key of the provider
	Name() string

	// Tooltip sets the tooltip text on the element
	Tooltip(el *goquery.Selection, text string)

	// ToggleTooltip forces the tooltip open or closed where the framework allows it
	ToggleTooltip(el *goquery.Selection, visible bool)

	// CreateModal appends a hidden dialog with the given id to body and returns it
	CreateModal(body *goquery.Selection, id string) *goquery.Selection

	// ToggleModal shows or hides a dialog created by CreateModal
	ToggleModal(modal *goquery.Selection, visible bool)

	// Trigger wires the element to open the dialog
	Trigger(el *goquery.Selection, id string)
}

// modalBody returns the content container of a dialog
func modalBody(modal *goquery.Selection) *goquery.Selection {
	return modal.Find("." + modalBodyClass).First()
}

func appendModal(body *goquery.Selection, id, markup string) *goquery.Selection {
	body.AppendHtml(strings.ReplaceAll(markup, "{id}", id))
	return body.ChildrenFiltered("#" + id).Last()
}

// baseChrome uses a title attribute and an inline style display toggle
type baseChrome struct{}

func (baseChrome) Name() string { return ChromeBase }

func (baseChrome) Tooltip(el *goquery.Selection, text string) {
	el.SetAttr("title", text)
}

func (baseChrome) ToggleTooltip(*goquery.Selection, bool) {}

func (baseChrome) CreateModal(body *goquery.Selection, id string) *goquery.Selection {
	return appendModal(body, id, `<div id="{id}" class="getbible-modal" role="dialog" aria-modal="true" style="display:none">`+
		`<div class="getbible-modal-content">`+
		`<button type="button" class="getbible-modal-close" aria-label="Close" onclick="document.getElementById('{id}').style.display='none'">&times;</button>`+
		`<div class="`+modalBodyClass+`"></div>`+
		`</div></div>`)
}

func (baseChrome) ToggleModal(modal *goquery.Selection, visible bool) {
	if visible {
		modal.SetAttr("style", "display:block")
		return
	}
	modal.SetAttr("style", "display:none")
}

func (baseChrome) Trigger(el *goquery.Selection, id string) {
	el.SetAttr("role", "button")
	el.SetAttr("tabindex", "0")
	el.SetAttr("aria-controls", id)
	el.SetAttr("onclick", "document.getElementById('"+id+"').style.display='block'")
}

// uikitChrome targets UIkit 3
type uikitChrome struct{}

func (uikitChrome) Name() string { return ChromeUIkit }

func (uikitChrome) Tooltip(el *goquery.Selection, text string) {
	el.SetAttr("title", text)
	el.SetAttr("uk-tooltip", "pos: top")
}

func (uikitChrome) ToggleTooltip(el *goquery.Selection, visible bool) {
	if visible {
		el.SetAttr("uk-tooltip", "pos: top; mode: click")
		return
	}
	el.SetAttr("uk-tooltip", "pos: top")
}

func (uikitChrome) CreateModal(body *goquery.Selection, id string) *goquery.Selection {
	return appendModal(body, id, `<div id="{id}" uk-modal>`+
		`<div class="uk-modal-dialog uk-modal-body">`+
		`<button class="uk-modal-close-default" type="button" uk-close></button>`+
		`<div class="`+modalBodyClass+`"></div>`+
		`</div></div>`)
}

func (uikitChrome) ToggleModal(modal *goquery.Selection, visible bool) {
	if visible {
		modal.AddClass("uk-open")
		modal.SetAttr("style", "display:block")
		return
	}
	modal.RemoveClass("uk-open")
	modal.RemoveAttr("style")
}

func (uikitChrome) Trigger(el *goquery.Selection, id string) {
	el.SetAttr("uk-toggle", "target: #"+id)
}

// bootstrapChrome targets Bootstrap 5
type bootstrapChrome struct{}

func (bootstrapChrome) Name() string { return ChromeBootstrap }

func (bootstrapChrome) Tooltip(el *goquery.Selection, text string) {
	el.SetAttr("title", text)
	el.SetAttr("data-bs-toggle", "tooltip")
	el.SetAttr("data-bs-placement", "top")
}

func (bootstrapChrome) ToggleTooltip(el *goquery.Selection, visible bool) {
	if visible {
		el.SetAttr("data-bs-trigger", "manual")
		return
	}
	el.RemoveAttr("data-bs-trigger")
}

func (bootstrapChrome) CreateModal(body *goquery.Selection, id string) *goquery.Selection {
	return appendModal(body, id, `<div class="modal fade" id="{id}" tabindex="-1" aria-hidden="true">`+
		`<div class="modal-dialog modal-lg modal-dialog-scrollable"><div class="modal-content">`+
		`<div class="modal-header"><button type="button" class="btn-close" data-bs-dismiss="modal" aria-label="Close"></button></div>`+
		`<div class="modal-body `+modalBodyClass+`"></div>`+
		`</div></div></div>`)
}

func (bootstrapChrome) ToggleModal(modal *goquery.Selection, visible bool) {
	if visible {
		modal.AddClass("show")
		modal.SetAttr("style", "display:block")
		modal.SetAttr("aria-modal", "true")
		modal.RemoveAttr("aria-hidden")
		return
	}
	modal.RemoveClass("show")
	modal.RemoveAttr("style")
	modal.RemoveAttr("aria-modal")
	modal.SetAttr("aria-hidden", "true")
}

func (bootstrapChrome) Trigger(el *goquery.Selection, id string) {
	el.SetAttr("data-bs-toggle", "modal")
	el.SetAttr("data-bs-target", "#"+id)
}

// foundationChrome targets Foundation 6
type foundationChrome struct{}

func (foundationChrome) Name() string { return ChromeFoundation }

func (foundationChrome) Tooltip(el *goquery.Selection, text string) {
	el.SetAttr("title", text)
	el.SetAttr("data-tooltip", "")
	el.SetAttr("tabindex", "1")
	el.AddClass("has-tip")
}

func (foundationChrome) ToggleTooltip(el *goquery.Selection, visible bool) {
	if visible {
		el.SetAttr("data-click-open", "true")
		return
	}
	el.RemoveAttr("data-click-open")
}

func (foundationChrome) CreateModal(body *goquery.Selection, id string) *goquery.Selection {
	return appendModal(body, id, `<div class="reveal large" id="{id}" data-reveal>`+
		`<button class="close-button" data-close aria-label="Close" type="button"><span aria-hidden="true">&times;</span></button>`+
		`<div class="`+modalBodyClass+`"></div>`+
		`</div>`)
}

func (foundationChrome) ToggleModal(modal *goquery.Selection, visible bool) {
	if visible {
		modal.AddClass("is-open")
		modal.SetAttr("style", "display:block")
		return
	}
	modal.RemoveClass("is-open")
	modal.RemoveAttr("style")
}

func (foundationChrome) Trigger(el *goquery.Selection, id string) {
	el.SetAttr("data-open", id)
}

// tailwindChrome renders utility class markup with no framework script
type tailwindChrome struct{}

const tailwindTooltipClass = "getbible-tooltip"

func (tailwindChrome) Name() string { return ChromeTailwind }

func (tailwindChrome) Tooltip(el *goquery.Selection, text string) {
	el.AddClass("relative group")
	tip := el.ChildrenFiltered("." + tailwindTooltipClass)
	if tip.Length() > 0 {
		tip.SetText(text)
		return
	}
	el.AppendHtml(`<span role="tooltip" class="` + tailwindTooltipClass +
		` pointer-events-none absolute bottom-full left-1/2 z-50 mb-2 hidden w-max max-w-sm -translate-x-1/2 whitespace-pre-line rounded bg-gray-900 px-3 py-2 text-sm text-white group-hover:block">` +
		html.EscapeString(text) + `</span>`)
}

func (tailwindChrome) ToggleTooltip(el *goquery.Selection, visible bool) {
	tip := el.ChildrenFiltered("." + tailwindTooltipClass)
	if visible {
		tip.RemoveClass("hidden")
		return
	}
	tip.AddClass("hidden")
}

func (tailwindChrome) CreateModal(body *goquery.Selection, id string) *goquery.Selection {
	return appendModal(body, id, `<div id="{id}" role="dialog" aria-modal="true" class="getbible-modal fixed inset-0 z-50 hidden flex items-center justify-center bg-black/50">`+
		`<div class="relative max-h-[80vh] w-full max-w-2xl overflow-y-auto rounded-lg bg-white p-6 shadow-xl">`+
		`<button type="button" aria-label="Close" class="absolute right-3 top-3 text-gray-500 hover:text-gray-800" onclick="document.getElementById('{id}').classList.add('hidden')">&times;</button>`+
		`<div class="`+modalBodyClass+`"></div>`+
		`</div></div>`)
}

func (tailwindChrome) ToggleModal(modal *goquery.Selection, visible bool) {
	if visible {
		modal.RemoveClass("hidden")
		return
	}
	modal.AddClass("hidden")
}

func (tailwindChrome) Trigger(el *goquery.Selection, id string) {
	el.AddClass("cursor-pointer")
	el.SetAttr("aria-controls", id)
	el.SetAttr("onclick", "document.getElementById('"+id+"').classList.remove('hidden')")
}
