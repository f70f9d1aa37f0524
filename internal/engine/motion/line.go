package motion

import "github.com/selkie-editor/selkie/internal/engine/text"

// CharLeft moves one character left, clamped at the line beginning.
func CharLeft(c Context, p text.Position) text.Position {
	return p.Left(1)
}

// CharRight moves one character right, clamped at the line end.
func CharRight(c Context, p text.Position) text.Position {
	return p.Right(c.Source, 1)
}

// Up moves one line up. desiredColumn is the column the cursor is
// trying to hold across short lines; when vertical snapping is
// enabled the landing column snaps to the first non-blank character
// instead.
func Up(c Context, p text.Position, desiredColumn int) text.Position {
	moved := p.Up(c.Source, desiredColumn)
	if moved.Line == p.Line {
		return moved
	}
	return applyVerticalSnap(c, moved)
}

// Down moves one line down, with the same column handling as Up.
func Down(c Context, p text.Position, desiredColumn int) text.Position {
	moved := p.Down(c.Source, desiredColumn)
	if moved.Line == p.Line {
		return moved
	}
	return applyVerticalSnap(c, moved)
}

func applyVerticalSnap(c Context, p text.Position) text.Position {
	d := text.NewConditionalLineStart(text.FirstNonBlankColumn(c.line(p.Line)))
	return p.Apply(c.Source, d, c.SnapToFirstNonBlank)
}

// LineBegin moves to the beginning of the line: column 0, or the
// first non-blank column when indentation is respected.
func LineBegin(c Context, p text.Position) text.Position {
	if c.RespectIndentOnLineBegin {
		return p.FirstNonBlank(c.Source)
	}
	return p.LineBegin()
}

// FirstNonBlank moves to the first non-blank character of the line.
func FirstNonBlank(c Context, p text.Position) text.Position {
	return p.FirstNonBlank(c.Source)
}

// LineEnd moves to the end of the line.
func LineEnd(c Context, p text.Position) text.Position {
	return p.LineEnd(c.Source)
}

// DocumentBegin moves to (0, 0).
func DocumentBegin(c Context, p text.Position) text.Position {
	return text.DocumentBegin()
}

// DocumentEnd moves to the end of the last line.
func DocumentEnd(c Context, p text.Position) text.Position {
	return text.DocumentEnd(c.Source)
}

// GotoLine moves to the given 0-indexed line, clamped to the
// document, landing on column 0 or the first non-blank column when
// indentation is respected.
func GotoLine(c Context, line int) text.Position {
	p := text.Position{Line: line}.Clamp(c.Source)
	if c.RespectIndentOnLineBegin {
		return p.FirstNonBlank(c.Source)
	}
	return p
}
