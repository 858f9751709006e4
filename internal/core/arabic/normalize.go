// Package arabic provides the deterministic text normalizer used for matching
// detainee names and locations across Arabic and Latin input
// Pipeline order
// 1 UTF-8 repair drop invalid bytes
// 2 Unicode NFKD normalization (also unfolds Arabic presentation forms)
// 3 Case folding for Latin
// 4 Remove combining marks (harakat, shadda, madda, superscript alef)
// 5 Remove zero-width and bidi format characters
// 6 Fold Arabic letter variants to one canonical form (hamza seats, maksura,
//   ta marbuta, Farsi/Urdu regional forms) and Eastern digits to ASCII
// 7 Drop anything outside the permitted Arabic/Latin/digit/space set
// 8 Collapse whitespace runs to a single space and trim
//
// Mark removal runs before letter folding on purpose: a decomposed hamza or
// madda must be gone before the base letter is folded
package arabic

import (
	"strings"
	"sync"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Normalizer is concurrency safe when used with the pool below
type Normalizer struct{}

// pool of fresh transformer chains
var chainPool = sync.Pool{
	New: func() any {
		// order matters and mirrors the documented pipeline
		return transform.Chain(
			norm.NFKD,                          // decompose so marks are strippable
			cases.Fold(),                       // unicode case folding
			runes.Remove(runes.In(unicode.Mn)), // strip combining marks incl harakat
			runes.Remove(runes.In(unicode.Cf)), // strip format chars ZWJ ZWNJ RLM LRM FEFF
			norm.NFC,
		)
	},
}

// New constructs a Normalizer
func New() *Normalizer { return &Normalizer{} }

// Normalize returns the normalized form of s following the pipeline described above
func (n *Normalizer) Normalize(s string) string {
	if s == "" {
		return ""
	}

	// 1 repair UTF-8 drop invalid bytes
	s = strings.ToValidUTF8(s, "")

	// 2-5 transform via pooled chain then reset and return it
	tr := chainPool.Get().(transform.Transformer)
	ns, _, _ := transform.String(tr, s)
	tr.Reset()
	chainPool.Put(tr)

	// 6-7 letter variant folding and permitted-set gate
	ns = foldRunes(ns)

	// 8 collapse whitespace and trim
	return collapseSpaces(ns)
}

// foldRunes maps Arabic letter variants to one canonical letter, folds
// Eastern Arabic-Indic digits to ASCII, and drops any rune outside the
// permitted Arabic/Latin/digit/space set
func foldRunes(s string) string {
	if s == "" {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch r {
		case 'ـ': // tatweel
			continue
		case 'أ', 'إ', 'آ', 'ٱ': // hamza-bearing and wasla alef
			b.WriteRune('ا') // bare alef
		case 'ؤ': // waw with hamza
			b.WriteRune('و')
		case 'ئ': // ya with hamza
			b.WriteRune('ي')
		case 'ى', 'ی': // alef maksura, Farsi ya
			b.WriteRune('ي')
		case 'ة': // ta marbuta
			b.WriteRune('ه') // ha
		case 'ک': // Farsi kaf
			b.WriteRune('ك')
		case 'ہ', 'ە': // Urdu ha variants
			b.WriteRune('ه')
		default:
			switch {
			case r >= '٠' && r <= '٩': // Arabic-Indic digits
				b.WriteRune('0' + (r - '٠'))
			case r >= '۰' && r <= '۹': // extended (Farsi) digits
				b.WriteRune('0' + (r - '۰'))
			case permitted(r):
				b.WriteRune(r)
			case unicode.IsSpace(r):
				b.WriteRune(' ')
			}
			// everything else is dropped
		}
	}
	return b.String()
}

// permitted reports whether r belongs in normalized output before whitespace collapse
func permitted(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z':
		return true
	case r >= '0' && r <= '9':
		return true
	case unicode.In(r, unicode.Arabic) && unicode.IsLetter(r):
		return true
	}
	return false
}

// collapseSpaces converts whitespace runs to a single ASCII space and trims the edges
// Names and locations are single-line fields so line breaks are not preserved
func collapseSpaces(s string) string {
	if s == "" {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	inWS := false
	for _, r := range s {
		if r == ' ' || unicode.IsSpace(r) {
			inWS = true
			continue
		}
		if inWS && b.Len() > 0 {
			b.WriteByte(' ')
		}
		inWS = false
		b.WriteRune(r)
	}
	return b.String()
}
