package classify

import "testing"

func camelTexts(c *Classifier, line string) []string {
	var out []string
	for _, run := range c.Runs(VariantCamel, line) {
		if run.Class == ClassWhitespace {
			continue
		}
		out = append(out, run.Text)
	}
	return out
}

func assertStrings(t *testing.T, got, want []string) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("expected %q, got %q", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("segment %d: expected %q, got %q", i, want[i], got[i])
		}
	}
}

func TestCamelCaseTransition(t *testing.T) {
	c := newTestClassifier()
	assertStrings(t, camelTexts(c, "camelCaseWord"), []string{"camel", "Case", "Word"})
}

func TestCamelAllCapsRunStaysTogether(t *testing.T) {
	// Uppercase continues after uppercase, so an acronym is one
	// segment even when lowercase follows it.
	c := newTestClassifier()
	assertStrings(t, camelTexts(c, "HTMLParser"), []string{"HTMLParser"})
	assertStrings(t, camelTexts(c, "parseHTML"), []string{"parse", "HTML"})
}

func TestCamelDigitTransition(t *testing.T) {
	c := newTestClassifier()
	assertStrings(t, camelTexts(c, "abc123def"), []string{"abc", "123def"})
	assertStrings(t, camelTexts(c, "v2Beta"), []string{"v", "2", "Beta"})
}

func TestCamelUnderscoreTransition(t *testing.T) {
	c := newTestClassifier()
	// Underscore starts a segment; uppercase and digits continue
	// after an underscore.
	assertStrings(t, camelTexts(c, "snake_case"), []string{"snake", "_case"})
	assertStrings(t, camelTexts(c, "HTML_Parser"), []string{"HTML", "_Parser"})
	assertStrings(t, camelTexts(c, "a__b"), []string{"a", "__b"})
}

func TestCamelSingleRuneWords(t *testing.T) {
	c := newTestClassifier()
	assertStrings(t, camelTexts(c, "a B 1"), []string{"a", "B", "1"})
}

func TestCamelApproximateFallback(t *testing.T) {
	// Without lookbehind, underscores no longer admit a following
	// uppercase or digit into their segment.
	got := approxBoundaries([]rune("HTML_Parser"))
	want := []int{4, 5}
	if len(got) != len(want) {
		t.Fatalf("expected boundaries %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("boundary %d: expected %d, got %d", i, want[i], got[i])
		}
	}
}

func TestCamelExactMatchesSpecRule(t *testing.T) {
	c := newTestClassifier()
	if c.camel.re == nil {
		t.Skip("lookbehind pattern unavailable; approximate rule in effect")
	}
	got := c.camel.boundaries([]rune("HTML_Parser"))
	// Only the underscore starts a segment; 'P' continues after '_'.
	if len(got) != 1 || got[0] != 4 {
		t.Errorf("expected boundary [4], got %v", got)
	}
}
