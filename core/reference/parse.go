// ABOUTME: Reference token splitting and validation for tagged element text
// ABOUTME: Drops malformed tokens with a warning before any network call is made

package reference

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"

	"scripture-tags/core/errors"
	"scripture-tags/core/interfaces"
)

// MaxLength is the longest reference token accepted, in runes
const MaxLength = 30

// Split breaks element text on ";" and returns the trimmed, non-empty tokens.
// Tokens are NFC-normalized so composed and decomposed book names share a cache key.
func Split(text string) []string {
	var tokens []string
	for _, token := range strings.Split(norm.NFC.String(text), ";") {
		token = strings.Join(strings.Fields(token), " ")
		if token != "" {
			tokens = append(tokens, token)
		}
	}
	return tokens
}

// Validate checks a single token. This is a heuristic against malformed
// input; the upstream API owns the actual reference grammar.
func Validate(token string) error {
	if utf8.RuneCountInString(token) > MaxLength {
		return &errors.InvalidReferenceError{Token: token, Reason: "longer than 30 characters"}
	}

	var hasDigit, hasLetter bool
	for _, r := range token {
		switch {
		case unicode.IsDigit(r):
			hasDigit = true
		case unicode.IsLetter(r):
			hasLetter = true
		}
	}

	if !hasDigit {
		return &errors.InvalidReferenceError{Token: token, Reason: "no chapter or verse number"}
	}
	if !hasLetter {
		return &errors.InvalidReferenceError{Token: token, Reason: "no book name"}
	}
	return nil
}

// Parse splits the text and keeps only valid tokens, logging the rest
func Parse(text string, logger interfaces.Logger) []string {
	var valid []string
	for _, token := range Split(text) {
		if err := Validate(token); err != nil {
			if logger != nil {
				logger.Warn("Dropping invalid reference", map[string]interface{}{
					"reference": token,
					"error":     err.Error(),
				})
			}
			continue
		}
		valid = append(valid, token)
	}
	return valid
}
