// ABOUTME: Plain, inline and block renderings of verse groups
// ABOUTME: HTML strategies escape API text and set the dir attribute from the reference

package format

import (
	"strconv"
	"strings"

	"golang.org/x/net/html"

	"scripture-tags/core/domain"
	htmlutil "scripture-tags/pkg/utils/html"
)

const (
	headerSeparator = " - "
	linkText        = "getBible"
)

// Plain renders text suitable for a title attribute
type Plain struct {
	settings Settings
}

// Format implements Formatter
func (p *Plain) Format(refs []*domain.Reference) string {
	blocks := make([]string, 0, len(refs))
	for _, ref := range refs {
		var lines []string
		if fields := HeaderFields(ref, p.settings.Show); len(fields) > 0 {
			lines = append(lines, "["+strings.Join(fields, headerSeparator)+"]")
		}
		for _, v := range ref.Verses() {
			lines = append(lines, strconv.Itoa(v.Number)+". "+htmlutil.StripHTML(v.Text))
		}
		if p.settings.Show.Link {
			lines = append(lines, LinkFor(ref, p.settings.LinkURL))
		}
		blocks = append(blocks, strings.Join(lines, "\n"))
	}
	return strings.Join(blocks, "\n\n")
}

// Inline renders one span per verse group with an optional footer and link
type Inline struct {
	settings Settings
}

// Format implements Formatter
func (f *Inline) Format(refs []*domain.Reference) string {
	var b strings.Builder
	for _, ref := range refs {
		b.WriteString(`<span class="getbible-reference" dir="` + ref.Dir() + `">`)

		b.WriteString(`<span class="getbible-verses">`)
		for i, v := range ref.Verses() {
			if i > 0 {
				b.WriteString(" ")
			}
			writeVerse(&b, "span", v)
		}
		b.WriteString(`</span>`)

		if fields := HeaderFields(ref, f.settings.Show); len(fields) > 0 {
			b.WriteString(` <span class="getbible-footer">`)
			b.WriteString(html.EscapeString(strings.Join(fields, headerSeparator)))
			b.WriteString(`</span>`)
		}
		if f.settings.Show.Link {
			b.WriteString(" ")
			writeLink(&b, ref, f.settings.LinkURL)
		}

		b.WriteString(`</span>`)
	}
	return b.String()
}

// Block renders a header, then one block element per verse
type Block struct {
	settings Settings
}

// Format implements Formatter
func (f *Block) Format(refs []*domain.Reference) string {
	var b strings.Builder
	for _, ref := range refs {
		b.WriteString(`<div class="getbible-reference" dir="` + ref.Dir() + `">`)

		fields := HeaderFields(ref, f.settings.Show)
		if len(fields) > 0 || f.settings.Show.Link {
			b.WriteString(`<div class="getbible-header">`)
			if len(fields) > 0 {
				b.WriteString(`<strong>`)
				b.WriteString(html.EscapeString(strings.Join(fields, headerSeparator)))
				b.WriteString(`</strong>`)
			}
			if f.settings.Show.Link {
				if len(fields) > 0 {
					b.WriteString(" ")
				}
				writeLink(&b, ref, f.settings.LinkURL)
			}
			b.WriteString(`</div>`)
		}

		for _, v := range ref.Verses() {
			writeVerse(&b, "div", v)
		}

		b.WriteString(`</div>`)
	}
	return b.String()
}

func writeVerse(b *strings.Builder, tag string, v domain.Verse) {
	b.WriteString(`<` + tag + ` class="getbible-verse">`)
	b.WriteString(`<sup>` + strconv.Itoa(v.Number) + `</sup> `)
	b.WriteString(html.EscapeString(htmlutil.StripHTML(v.Text)))
	b.WriteString(`</` + tag + `>`)
}

func writeLink(b *strings.Builder, ref *domain.Reference, baseURL string) {
	b.WriteString(`<a class="getbible-link" href="`)
	b.WriteString(html.EscapeString(LinkFor(ref, baseURL)))
	b.WriteString(`" target="_blank" rel="noopener noreferrer" title="`)
	b.WriteString(html.EscapeString(ref.Reference()))
	b.WriteString(`">` + linkText + `</a>`)
}
