// Package similarity scores how close two names or locations are after
// normalization. Inputs are short single-line strings, never documents
package similarity

import (
	"unicode/utf8"

	"github.com/agnivade/levenshtein"

	"qayd/internal/core/arabic"
)

// DefaultThreshold is the ratio above which two distinct strings count as similar
const DefaultThreshold = 0.8

// EditDistance returns the Levenshtein distance between a and b in runes
func EditDistance(a, b string) int {
	return levenshtein.ComputeDistance(a, b)
}

// Engine compares strings through the shared normalizer
type Engine struct {
	norm *arabic.Normalizer
}

// New constructs an Engine
func New() *Engine { return &Engine{norm: arabic.New()} }

// Score returns 1 - distance/maxRuneLen over the normalized forms, in [0,1]
// Two empty normalized strings score 1
func (e *Engine) Score(a, b string) float64 {
	na := e.norm.Normalize(a)
	nb := e.norm.Normalize(b)
	if na == nb {
		return 1
	}
	la := utf8.RuneCountInString(na)
	lb := utf8.RuneCountInString(nb)
	longest := max(la, lb)
	if longest == 0 {
		return 1
	}
	d := EditDistance(na, nb)
	return 1 - float64(d)/float64(longest)
}

// Similar reports whether a and b match at the given threshold
// Identical normalized forms short-circuit before any distance work
func (e *Engine) Similar(a, b string, threshold float64) bool {
	na := e.norm.Normalize(a)
	nb := e.norm.Normalize(b)
	if na == nb {
		return true
	}
	la := utf8.RuneCountInString(na)
	lb := utf8.RuneCountInString(nb)
	longest := max(la, lb)
	if longest == 0 {
		return true
	}
	d := EditDistance(na, nb)
	return 1-float64(d)/float64(longest) >= threshold
}
