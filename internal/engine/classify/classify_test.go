package classify

import "testing"

const testPunctuation = `.,;:!?"'(){}[]<>=+-*/\|&^%$#@~` + "`"

func newTestClassifier() *Classifier {
	return New(testPunctuation)
}

func runTexts(runs []Run) []string {
	out := make([]string, len(runs))
	for i, r := range runs {
		out[i] = r.Text
	}
	return out
}

func assertRunTexts(t *testing.T, got []Run, want []string) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("expected %d runs %q, got %d: %q", len(want), want, len(got), runTexts(got))
	}
	for i, w := range want {
		if got[i].Text != w {
			t.Errorf("run %d: expected %q, got %q", i, w, got[i].Text)
		}
	}
}

func TestWordRunsSplitOnPunctuation(t *testing.T) {
	c := newTestClassifier()
	runs := c.Runs(VariantWord, "foo_bar, baz.qux")
	assertRunTexts(t, runs, []string{"foo_bar", ",", " ", "baz", ".", "qux"})

	if runs[0].Class != ClassWord {
		t.Errorf("expected word class, got %s", runs[0].Class)
	}
	if runs[1].Class != ClassPunctuation {
		t.Errorf("expected punctuation class, got %s", runs[1].Class)
	}
	if runs[2].Class != ClassWhitespace {
		t.Errorf("expected whitespace class, got %s", runs[2].Class)
	}
}

func TestBigWordRunsIgnoreKeywordSplit(t *testing.T) {
	c := newTestClassifier()
	runs := c.Runs(VariantBigWord, "foo.bar  baz,qux")
	assertRunTexts(t, runs, []string{"foo.bar", "  ", "baz,qux"})
}

func TestFilePathRuns(t *testing.T) {
	c := newTestClassifier()
	runs := c.Runs(VariantFilePath, `"/usr/local/bin", ./rel`)
	assertRunTexts(t, runs, []string{`"`, "/usr/local/bin", `",`, " ", "./rel"})
}

func TestEmptyLineYieldsNoRuns(t *testing.T) {
	c := newTestClassifier()
	for _, v := range []Variant{VariantWord, VariantBigWord, VariantCamel, VariantFilePath} {
		if runs := c.Runs(v, ""); len(runs) != 0 {
			t.Errorf("%s: empty line should yield no runs, got %d", v, len(runs))
		}
	}
}

func TestWhitespaceOnlyLine(t *testing.T) {
	c := newTestClassifier()
	runs := c.Runs(VariantWord, "   \t  ")
	assertRunTexts(t, runs, []string{"   \t  "})
	if runs[0].Class != ClassWhitespace {
		t.Errorf("expected whitespace run, got %s", runs[0].Class)
	}
	if starts := c.StartPositions(VariantWord, "   \t  "); len(starts) != 0 {
		t.Errorf("whitespace-only line should have no boundary starts, got %v", starts)
	}
}

// Runs must cover every rune index exactly once, for any variant and
// any line.
func TestRunsCoverLineExactly(t *testing.T) {
	c := newTestClassifier()
	lines := []string{
		"",
		"   ",
		"foo bar",
		"foo_bar, baz.qux",
		"camelCase HTMLParser snake_case x123",
		`"/etc/hosts" (path)`,
		"ひらがなカタカナ漢字abc",
		"한글text⠁⠃braille",
		"x² x₂ mixed",
		"\tindent  mix\t",
	}
	variants := []Variant{VariantWord, VariantBigWord, VariantCamel, VariantFilePath}

	for _, line := range lines {
		runes := []rune(line)
		for _, v := range variants {
			runs := c.Runs(v, line)
			next := 0
			for i, run := range runs {
				if run.Start != next {
					t.Errorf("%s %q: run %d starts at %d, expected %d (gap or overlap)", v, line, i, run.Start, next)
				}
				if run.End <= run.Start {
					t.Errorf("%s %q: run %d is empty", v, line, i)
				}
				next = run.End
			}
			if next != len(runes) {
				t.Errorf("%s %q: runs cover %d of %d runes", v, line, next, len(runes))
			}
		}
	}
}

func TestUnicodeKindsSeparateWithoutWhitespace(t *testing.T) {
	c := newTestClassifier()
	runs := c.Runs(VariantWord, "abcひらがな漢字カナ한글")
	assertRunTexts(t, runs, []string{"abc", "ひらがな", "漢字", "カナ", "한글"})

	want := []Class{ClassWord, ClassHiragana, ClassCJKIdeograph, ClassKatakana, ClassHangul}
	for i, cls := range want {
		if runs[i].Class != cls {
			t.Errorf("run %d: expected %s, got %s", i, cls, runs[i].Class)
		}
	}
}

func TestKeywordSetOverridesUnicodeKind(t *testing.T) {
	// An ideograph listed in the keyword set becomes punctuation.
	c := New("漢")
	runs := c.Runs(VariantWord, "漢字")
	assertRunTexts(t, runs, []string{"漢", "字"})
	if runs[0].Class != ClassPunctuation {
		t.Errorf("configured character should be punctuation, got %s", runs[0].Class)
	}
	if runs[1].Class != ClassCJKIdeograph {
		t.Errorf("unconfigured ideograph keeps its kind, got %s", runs[1].Class)
	}
}

func TestBigWordUnicodeIsOneRun(t *testing.T) {
	c := newTestClassifier()
	runs := c.Runs(VariantBigWord, "abc漢字.def")
	assertRunTexts(t, runs, []string{"abc漢字.def"})
}

func TestStartAndEndPositions(t *testing.T) {
	c := newTestClassifier()
	line := "foo bar, baz"

	starts := c.StartPositions(VariantWord, line)
	wantStarts := []int{0, 4, 7, 9}
	if len(starts) != len(wantStarts) {
		t.Fatalf("expected starts %v, got %v", wantStarts, starts)
	}
	for i, w := range wantStarts {
		if starts[i] != w {
			t.Errorf("start %d: expected %d, got %d", i, w, starts[i])
		}
	}

	ends := c.EndPositions(VariantWord, line)
	wantEnds := []int{2, 6, 7, 11}
	for i, w := range wantEnds {
		if ends[i] != w {
			t.Errorf("end %d: expected %d, got %d", i, w, ends[i])
		}
	}
}

func TestUnicodePositionsAreRuneIndices(t *testing.T) {
	c := newTestClassifier()
	starts := c.StartPositions(VariantWord, "日本語 abc")
	if len(starts) != 2 || starts[0] != 0 || starts[1] != 4 {
		t.Errorf("expected rune-indexed starts [0 4], got %v", starts)
	}
}
