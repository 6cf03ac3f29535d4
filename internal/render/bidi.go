package render

import "unicode"

// Scripts the chat exports actually contain. Stored values stay in
// logical (typed) order; reversal happens only at display time.
var rtlRanges = []*unicode.RangeTable{unicode.Hebrew, unicode.Arabic}

// HasRTL reports whether s contains any right-to-left script runes.
func HasRTL(s string) bool {
	for _, r := range s {
		if unicode.IsOneOf(rtlRanges, r) {
			return true
		}
	}
	return false
}

// Visual returns s in visual character order for terminals and PDF
// viewers that lay text out strictly left-to-right: fields containing
// right-to-left script are rune-reversed, everything else comes back
// unchanged.
func Visual(s string) string {
	if !HasRTL(s) {
		return s
	}
	r := []rune(s)
	for i, j := 0, len(r)-1; i < j; i, j = i+1, j-1 {
		r[i], r[j] = r[j], r[i]
	}
	return string(r)
}
