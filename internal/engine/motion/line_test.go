package motion

import (
	"testing"
)

func TestCharMotionsClamp(t *testing.T) {
	c := ctx("abc")
	if got := CharLeft(c, pos(0, 0)); got != pos(0, 0) {
		t.Errorf("left at line begin should stay, got %s", got)
	}
	if got := CharRight(c, pos(0, 3)); got != pos(0, 3) {
		t.Errorf("right at line end should stay, got %s", got)
	}
	if got := CharRight(c, pos(0, 1)); got != pos(0, 2) {
		t.Errorf("expected (0:2), got %s", got)
	}
}

func TestUpDownHoldDesiredColumn(t *testing.T) {
	c := ctx("long line", "ab", "another long")
	p := Down(c, pos(0, 7), 7)
	if p != pos(1, 2) {
		t.Errorf("short line clamps the column, got %s", p)
	}
	p = Down(c, p, 7)
	if p != pos(2, 7) {
		t.Errorf("desired column is restored on a long line, got %s", p)
	}
	if got := Up(c, pos(0, 3), 3); got != pos(0, 3) {
		t.Errorf("up at the first line should stay, got %s", got)
	}
	if got := Down(c, pos(2, 3), 3); got != pos(2, 3) {
		t.Errorf("down at the last line should stay, got %s", got)
	}
}

func TestVerticalSnapToFirstNonBlank(t *testing.T) {
	c := ctx("abcdef", "   xyz")
	c.SnapToFirstNonBlank = true
	if got := Down(c, pos(0, 5), 5); got != pos(1, 3) {
		t.Errorf("expected snap to first non-blank (1:3), got %s", got)
	}

	c.SnapToFirstNonBlank = false
	if got := Down(c, pos(0, 5), 5); got != pos(1, 5) {
		t.Errorf("without snapping the column holds, got %s", got)
	}
}

func TestLineBeginRespectsIndent(t *testing.T) {
	c := ctx("  abc")
	if got := LineBegin(c, pos(0, 4)); got != pos(0, 0) {
		t.Errorf("expected column 0, got %s", got)
	}
	c.RespectIndentOnLineBegin = true
	if got := LineBegin(c, pos(0, 4)); got != pos(0, 2) {
		t.Errorf("expected first non-blank (0:2), got %s", got)
	}
}

func TestFirstNonBlankOnBlankLine(t *testing.T) {
	c := ctx("   ")
	if got := FirstNonBlank(c, pos(0, 1)); got != pos(0, 0) {
		t.Errorf("all-blank line falls back to column 0, got %s", got)
	}
}

func TestDocumentEdgeMotions(t *testing.T) {
	c := ctx("abc", "de")
	if got := DocumentBegin(c, pos(1, 1)); got != pos(0, 0) {
		t.Errorf("expected (0:0), got %s", got)
	}
	if got := DocumentEnd(c, pos(0, 0)); got != pos(1, 2) {
		t.Errorf("expected (1:2), got %s", got)
	}
	if got := LineEnd(c, pos(0, 0)); got != pos(0, 3) {
		t.Errorf("expected (0:3), got %s", got)
	}
}

func TestGotoLine(t *testing.T) {
	c := ctx("one", "  two", "three")
	if got := GotoLine(c, 1); got != pos(1, 0) {
		t.Errorf("expected (1:0), got %s", got)
	}
	if got := GotoLine(c, 99); got != pos(2, 0) {
		t.Errorf("out-of-range line clamps to the last line, got %s", got)
	}
	if got := GotoLine(c, -4); got != pos(0, 0) {
		t.Errorf("negative line clamps to the first line, got %s", got)
	}

	c.RespectIndentOnLineBegin = true
	if got := GotoLine(c, 1); got != pos(1, 2) {
		t.Errorf("expected first non-blank (1:2), got %s", got)
	}
}
