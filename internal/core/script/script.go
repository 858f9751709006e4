// Package script classifies query text by writing system so searches can be
// routed to the matching full-text configuration and timeout budget
package script

import "unicode"

// Script is the coarse writing-system class of a piece of text
type Script string

const (
	// Arabic means the text is predominantly Arabic-range letters
	Arabic Script = "arabic"
	// Latin is the default class for everything else
	Latin Script = "latin"
)

// Detect returns Arabic when Arabic-range letters outnumber Latin letters,
// Latin otherwise. Text with no letters at all classifies as Latin
func Detect(s string) Script {
	var arabic, latin int
	for _, r := range s {
		if !unicode.IsLetter(r) {
			continue
		}
		switch {
		case unicode.In(r, unicode.Arabic):
			arabic++
		case unicode.In(r, unicode.Latin):
			latin++
		}
	}
	if arabic > latin {
		return Arabic
	}
	return Latin
}

// HasArabic reports whether s contains any Arabic-range codepoint at all
// Used when a single Arabic character should already widen the search budget
func HasArabic(s string) bool {
	for _, r := range s {
		if unicode.In(r, unicode.Arabic) {
			return true
		}
	}
	return false
}
