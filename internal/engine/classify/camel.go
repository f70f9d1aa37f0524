package classify

import (
	"unicode"

	"github.com/dlclark/regexp2"
)

// camelBoundaryPattern finds the start of each camel subword inside a
// word run. An uppercase letter starts a subword unless the previous
// character was uppercase or underscore, a digit unless preceded by a
// digit or underscore, and an underscore unless preceded by an
// underscore. The lookbehind assertions express those transition
// classes directly.
const camelBoundaryPattern = `(?<![\p{Lu}_])\p{Lu}|(?<![\p{N}_])\p{N}|(?<!_)_`

// camelMatcher subdivides word runs at identifier transitions. When
// the lookbehind pattern is unavailable it degrades to an approximate
// scan without the transition lookups: underscores no longer admit a
// following uppercase or digit into their run. This is a documented
// degradation, not an error.
type camelMatcher struct {
	re *regexp2.Regexp
}

func newCamelMatcher() *camelMatcher {
	re, err := regexp2.Compile(camelBoundaryPattern, regexp2.Unicode)
	if err != nil {
		return &camelMatcher{}
	}
	return &camelMatcher{re: re}
}

// boundaries returns the rune indices within word where a new subword
// starts. Index 0 is never reported; the run start is already a
// boundary.
func (m *camelMatcher) boundaries(word []rune) []int {
	if len(word) < 2 {
		return nil
	}
	if m.re != nil {
		return m.exactBoundaries(word)
	}
	return approxBoundaries(word)
}

// exactBoundaries applies the lookbehind pattern. regexp2 match
// indices are rune offsets, which is exactly the unit runs use.
func (m *camelMatcher) exactBoundaries(word []rune) []int {
	var out []int
	match, err := m.re.FindRunesMatch(word)
	for err == nil && match != nil {
		if match.Index > 0 {
			out = append(out, match.Index)
		}
		match, err = m.re.FindNextMatch(match)
	}
	return out
}

// approxBoundaries splits at bare class changes: every uppercase run,
// digit run and underscore run starts a subword regardless of what
// precedes it.
func approxBoundaries(word []rune) []int {
	var out []int
	for i := 1; i < len(word); i++ {
		r, prev := word[i], word[i-1]
		switch {
		case unicode.IsUpper(r):
			if !unicode.IsUpper(prev) {
				out = append(out, i)
			}
		case unicode.IsDigit(r):
			if !unicode.IsDigit(prev) {
				out = append(out, i)
			}
		case r == '_':
			if prev != '_' {
				out = append(out, i)
			}
		}
	}
	return out
}
