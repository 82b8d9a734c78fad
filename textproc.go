package deinflect

import (
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
	"golang.org/x/text/width"
)

// TextProcessor is an independent normalization pass applied outside the
// closure search: stateless, pure, and driven by one of its enumerated
// options per invocation. Options[0] is always the identity option, so a
// caller can run every processor over its option set and collect each
// variant of the input.
type TextProcessor struct {
	ID          string
	Name        string
	Description string
	Options     []string
	Process     func(text, option string) string
}

// stripMarks removes combining marks after canonical decomposition, so
// "café" becomes "cafe" and a precomposed "ē" matches its plain letter.
var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

var lowerCaser = cases.Lower(language.Und)

func mapFirstRune(s string, f func(rune) rune) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError && size <= 1 {
		return s
	}
	return string(f(r)) + s[size:]
}

// TextProcessors returns the built-in normalization passes.
func TextProcessors() []TextProcessor {
	return []TextProcessor{
		{
			ID:          "decapitalize",
			Name:        "Decapitalize",
			Description: "Lower-case the first letter, for sentence-initial capitalization.",
			Options:     []string{"off", "on"},
			Process: func(text, option string) string {
				if option != "on" {
					return text
				}
				return mapFirstRune(text, unicode.ToLower)
			},
		},
		{
			ID:          "capitalize-first",
			Name:        "Capitalize first letter",
			Description: "Upper-case the first letter, for proper-noun lookups.",
			Options:     []string{"off", "on"},
			Process: func(text, option string) string {
				if option != "on" {
					return text
				}
				return mapFirstRune(text, unicode.ToUpper)
			},
		},
		{
			ID:          "lowercase",
			Name:        "Lowercase",
			Description: "Lower-case the whole form.",
			Options:     []string{"off", "on"},
			Process: func(text, option string) string {
				if option != "on" {
					return text
				}
				return lowerCaser.String(text)
			},
		},
		{
			ID:          "remove-diacritics",
			Name:        "Remove diacritics",
			Description: "Strip combining marks so accented spellings match plain dictionary keys.",
			Options:     []string{"off", "on"},
			Process: func(text, option string) string {
				if option != "on" {
					return text
				}
				out, _, err := transform.String(stripMarks, text)
				if err != nil {
					return text
				}
				return out
			},
		},
		{
			ID:          "fold-width",
			Name:        "Fold width",
			Description: "Fold half-width katakana and full-width latin to their canonical widths.",
			Options:     []string{"off", "on"},
			Process: func(text, option string) string {
				if option != "on" {
					return text
				}
				return width.Fold.String(text)
			},
		},
	}
}
