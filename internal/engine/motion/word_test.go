package motion

import (
	"testing"

	"github.com/selkie-editor/selkie/internal/engine/classify"
	"github.com/selkie-editor/selkie/internal/engine/text"
)

const testPunctuation = `.,;:!?"'(){}[]<>=+-*/\|&^%$#@~` + "`"

func ctx(lines ...string) Context {
	return Context{
		Source:     text.NewSliceSource(lines),
		Classifier: classify.New(testPunctuation),
	}
}

func pos(line, ch int) text.Position {
	return text.NewPosition(line, ch)
}

func TestWordRight(t *testing.T) {
	c := ctx("foo bar", "baz")
	if got := WordRight(c, pos(0, 0), false); got != pos(0, 4) {
		t.Errorf("expected (0:4), got %s", got)
	}
}

func TestWordRightPunctuationIsAWord(t *testing.T) {
	c := ctx("foo_bar, baz.qux")
	p := WordRight(c, pos(0, 0), false)
	if p != pos(0, 7) {
		t.Errorf("expected comma at (0:7), got %s", p)
	}
	p = WordRight(c, p, false)
	if p != pos(0, 9) {
		t.Errorf("expected baz at (0:9), got %s", p)
	}
}

func TestWordRightCrossesLines(t *testing.T) {
	c := ctx("foo", "  bar")
	if got := WordRight(c, pos(0, 0), false); got != pos(1, 2) {
		t.Errorf("expected (1:2), got %s", got)
	}
}

func TestWordRightSkipsBlankAndWhitespaceLines(t *testing.T) {
	c := ctx("foo", "", "   ", "bar")
	if got := WordRight(c, pos(0, 0), false); got != pos(3, 0) {
		t.Errorf("expected (3:0), got %s", got)
	}
}

func TestWordRightDocumentExhausted(t *testing.T) {
	c := ctx("foo", "")
	if got := WordRight(c, pos(0, 0), false); got != text.DocumentEnd(c.Source) {
		t.Errorf("expected document end, got %s", got)
	}
}

func TestWordLeft(t *testing.T) {
	c := ctx("foo bar baz")
	if got := WordLeft(c, pos(0, 8), false); got != pos(0, 4) {
		t.Errorf("expected (0:4), got %s", got)
	}
}

func TestWordLeftCrossesLines(t *testing.T) {
	c := ctx("foo bar", "baz")
	if got := WordLeft(c, pos(1, 0), false); got != pos(0, 4) {
		t.Errorf("expected (0:4), got %s", got)
	}
}

func TestWordLeftDocumentExhausted(t *testing.T) {
	c := ctx("", "foo")
	if got := WordLeft(c, pos(1, 0), false); got != text.DocumentBegin() {
		t.Errorf("expected document begin, got %s", got)
	}
}

// wordRight then wordLeft(inclusive) from the resulting boundary lands
// back on the same boundary.
func TestWordBoundaryIdempotence(t *testing.T) {
	c := ctx("alpha beta, gamma delta")
	p := pos(0, 0)
	for i := 0; i < 4; i++ {
		p = WordRight(c, p, false)
		if back := WordLeft(c, p, true); back != p {
			t.Errorf("step %d: inclusive wordLeft from %s moved to %s", i, p, back)
		}
	}
}

func TestCurrentWordEnd(t *testing.T) {
	c := ctx("foo   ", "")
	if got := CurrentWordEnd(c, pos(0, 0), false); got != pos(0, 2) {
		t.Errorf("expected (0:2), got %s", got)
	}
}

func TestCurrentWordEndInclusive(t *testing.T) {
	c := ctx("foo bar")
	if got := CurrentWordEnd(c, pos(0, 2), true); got != pos(0, 2) {
		t.Errorf("inclusive end at cursor should stay, got %s", got)
	}
	if got := CurrentWordEnd(c, pos(0, 2), false); got != pos(0, 6) {
		t.Errorf("exclusive end should advance, got %s", got)
	}
}

func TestLastWordEnd(t *testing.T) {
	c := ctx("foo bar baz")
	if got := LastWordEnd(c, pos(0, 8)); got != pos(0, 6) {
		t.Errorf("expected (0:6), got %s", got)
	}
}

func TestLastWordEndCrossesLines(t *testing.T) {
	c := ctx("foo", "bar")
	if got := LastWordEnd(c, pos(1, 0)); got != pos(0, 2) {
		t.Errorf("expected (0:2), got %s", got)
	}
}

func TestBigWordMotions(t *testing.T) {
	c := ctx("foo.bar baz,qux")
	if got := BigWordRight(c, pos(0, 0)); got != pos(0, 8) {
		t.Errorf("expected (0:8), got %s", got)
	}
	if got := BigWordLeft(c, pos(0, 8)); got != pos(0, 0) {
		t.Errorf("expected (0:0), got %s", got)
	}
	if got := CurrentBigWordEnd(c, pos(0, 0), false); got != pos(0, 6) {
		t.Errorf("expected (0:6), got %s", got)
	}
}

func TestCamelWordMotions(t *testing.T) {
	c := ctx("camelCaseWord next")
	p := CamelWordRight(c, pos(0, 0))
	if p != pos(0, 5) {
		t.Errorf("expected Case at (0:5), got %s", p)
	}
	p = CamelWordRight(c, p)
	if p != pos(0, 9) {
		t.Errorf("expected Word at (0:9), got %s", p)
	}
	if got := CamelWordLeft(c, pos(0, 9)); got != pos(0, 5) {
		t.Errorf("expected (0:5), got %s", got)
	}
}

func TestFilePathMotions(t *testing.T) {
	c := ctx(`see "/usr/local/bin" now`)
	p := FilePathRight(c, pos(0, 0))
	if p != pos(0, 4) {
		t.Errorf("expected quote at (0:4), got %s", p)
	}
	p = FilePathRight(c, p)
	if p != pos(0, 5) {
		t.Errorf("expected path start at (0:5), got %s", p)
	}
}

// Word motions terminate on pathological input: all-whitespace and
// empty lines produce no boundaries and the scan walks to the
// document edge.
func TestWordMotionTerminationOnDegenerateInput(t *testing.T) {
	c := ctx("", "   ", "\t\t", "")
	if got := WordRight(c, pos(0, 0), false); got != text.DocumentEnd(c.Source) {
		t.Errorf("expected document end, got %s", got)
	}
	if got := WordLeft(c, pos(3, 0), false); got != text.DocumentBegin() {
		t.Errorf("expected document begin, got %s", got)
	}
	if got := CurrentWordEnd(c, pos(1, 1), false); got != text.DocumentEnd(c.Source) {
		t.Errorf("expected document end, got %s", got)
	}
}

func TestWordRightUnicodeKinds(t *testing.T) {
	c := ctx("abcひらがな漢字")
	p := WordRight(c, pos(0, 0), false)
	if p != pos(0, 3) {
		t.Errorf("expected Hiragana run start at (0:3), got %s", p)
	}
	p = WordRight(c, p, false)
	if p != pos(0, 7) {
		t.Errorf("expected ideograph run start at (0:7), got %s", p)
	}
}
