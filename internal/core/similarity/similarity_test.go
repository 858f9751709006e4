package similarity

import "testing"

func TestEditDistance(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"ahmad", "ahmad", 0},
		{"ahmad", "ahmed", 1},
		{"jon doe", "john doe", 1},
		{"", "abc", 3},
		{"محمد", "محمود", 1}, // single insertion of waw
		{"محمد", "محمدي", 1},
	}
	for _, tc := range tests {
		if got := EditDistance(tc.a, tc.b); got != tc.want {
			t.Fatalf("EditDistance(%q, %q) = %d, want %d", tc.a, tc.b, got, tc.want)
		}
	}
}

func TestSimilar(t *testing.T) {
	e := New()

	tests := []struct {
		name      string
		a, b      string
		threshold float64
		want      bool
	}{
		{"exact match at max threshold", "Ahmad", "Ahmad", 1.0, true},
		{"both empty", "", "", 0.8, true},
		{"both whitespace", "  ", "\t", 0.8, true},
		{"one edit within threshold", "John Doe", "Jon Doe", 0.8, true},
		{"far apart", "Ahmad", "Youssef", 0.8, false},
		{"normalized identity across variants", "أحمد", "احمد", 1.0, true},
		{"hamza and maksura variants identical", "مصطفى", "مصطفي", 1.0, true},
		{"case and diacritics ignored", "AHMAD", "ahmad", 1.0, true},
		{"threshold tightens the match", "John Doe", "Jon Doe", 0.95, false},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			if got := e.Similar(tc.a, tc.b, tc.threshold); got != tc.want {
				t.Fatalf("Similar(%q, %q, %v) = %v, want %v", tc.a, tc.b, tc.threshold, got, tc.want)
			}
			// Symmetry must hold for every pair
			if got := e.Similar(tc.b, tc.a, tc.threshold); got != tc.want {
				t.Fatalf("Similar(%q, %q, %v) = %v, not symmetric", tc.b, tc.a, tc.threshold, got)
			}
		})
	}
}

func TestScore(t *testing.T) {
	e := New()
	if s := e.Score("ahmad", "ahmad"); s != 1 {
		t.Fatalf("Score identical = %v, want 1", s)
	}
	if s := e.Score("", ""); s != 1 {
		t.Fatalf("Score empty = %v, want 1", s)
	}
	// "jon doe" vs "john doe": distance 1 over 8 runes -> 0.875
	if s := e.Score("jon doe", "john doe"); s < 0.87 || s > 0.88 {
		t.Fatalf("Score(jon doe, john doe) = %v, want ~0.875", s)
	}
}
