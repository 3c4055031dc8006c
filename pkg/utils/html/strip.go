// ABOUTME: HTML utilities for stripping tags and decoding entities
// ABOUTME: Used to turn verse text from the scripture API into plain text

package html

import (
	"strings"

	"golang.org/x/net/html"
)

// StripHTML removes HTML tags, drops script and style content, decodes
// entities and collapses whitespace.
func StripHTML(markup string) string {
	if !strings.ContainsAny(markup, "<&") {
		return collapseSpaces(markup)
	}

	tokenizer := html.NewTokenizer(strings.NewReader(markup))
	var b strings.Builder
	skip := 0

	for {
		switch tokenizer.Next() {
		case html.ErrorToken:
			// io.EOF or malformed input; keep what was read
			return collapseSpaces(b.String())
		case html.StartTagToken:
			name, _ := tokenizer.TagName()
			if isSkipped(name) {
				skip++
			}
			b.WriteByte(' ')
		case html.EndTagToken:
			name, _ := tokenizer.TagName()
			if isSkipped(name) && skip > 0 {
				skip--
			}
			b.WriteByte(' ')
		case html.SelfClosingTagToken:
			b.WriteByte(' ')
		case html.TextToken:
			if skip == 0 {
				b.Write(tokenizer.Text())
			}
		}
	}
}

// DecodeEntities decodes HTML entities such as &amp; and &#8217;
func DecodeEntities(text string) string {
	return html.UnescapeString(text)
}

func isSkipped(name []byte) bool {
	tag := string(name)
	return tag == "script" || tag == "style"
}

func collapseSpaces(text string) string {
	return strings.Join(strings.Fields(text), " ")
}
