package motion

import (
	"github.com/selkie-editor/selkie/internal/engine/classify"
	"github.com/selkie-editor/selkie/internal/engine/text"
)

// Context carries the read-only collaborators a motion needs. It is
// cheap to copy and holds no state of its own; the Source must stay
// frozen for the duration of a multi-selection motion batch.
type Context struct {
	// Source is the text snapshot motions read.
	Source text.Source

	// Classifier partitions lines into boundary runs. Built once from
	// configuration; rebuilt (not mutated) when configuration changes.
	Classifier *classify.Classifier

	// SnapToFirstNonBlank snaps the column to the first non-blank
	// character on vertical motions.
	SnapToFirstNonBlank bool

	// RespectIndentOnLineBegin makes line-begin motions land on the
	// first non-blank column instead of column 0.
	RespectIndentOnLineBegin bool

	// WhitespaceBlankLines widens the blank-line definition from ""
	// to whitespace-only lines for paragraph motions.
	WhitespaceBlankLines bool
}

// line returns the text of a line, or "" out of range. Motions only
// address clamped line numbers.
func (c Context) line(index int) string {
	s, err := c.Source.Line(index)
	if err != nil {
		return ""
	}
	return s
}

func (c Context) isBlank(index int) bool {
	return text.IsBlankLine(c.line(index), c.WhitespaceBlankLines)
}

// boundarySource selects run starts or run ends for a line.
type boundarySource func(c Context, v classify.Variant, line int) []int

func startBoundaries(c Context, v classify.Variant, line int) []int {
	return c.Classifier.StartPositions(v, c.line(line))
}

func endBoundaries(c Context, v classify.Variant, line int) []int {
	return c.Classifier.EndPositions(v, c.line(line))
}

// boundaryRight finds the nearest qualifying boundary at or after p.
// inclusive accepts a boundary exactly at the current character. On
// other lines the first boundary is accepted unconditionally; with the
// document exhausted the result is document end.
func boundaryRight(c Context, p text.Position, v classify.Variant, bounds boundarySource, inclusive bool) text.Position {
	for _, col := range bounds(c, v, p.Line) {
		if col > p.Character || (inclusive && col == p.Character) {
			return text.Position{Line: p.Line, Character: col}
		}
	}
	for line := p.Line + 1; line < c.Source.LineCount(); line++ {
		if cols := bounds(c, v, line); len(cols) > 0 {
			return text.Position{Line: line, Character: cols[0]}
		}
	}
	return text.DocumentEnd(c.Source)
}

// boundaryLeft is the mirror of boundaryRight, landing on document
// begin when the document is exhausted.
func boundaryLeft(c Context, p text.Position, v classify.Variant, bounds boundarySource, inclusive bool) text.Position {
	cols := bounds(c, v, p.Line)
	for i := len(cols) - 1; i >= 0; i-- {
		if cols[i] < p.Character || (inclusive && cols[i] == p.Character) {
			return text.Position{Line: p.Line, Character: cols[i]}
		}
	}
	for line := p.Line - 1; line >= 0; line-- {
		if cols := bounds(c, v, line); len(cols) > 0 {
			return text.Position{Line: line, Character: cols[len(cols)-1]}
		}
	}
	return text.DocumentBegin()
}
