package text

import (
	"fmt"
	"unicode/utf8"
)

// Position represents an immutable (line, character) location in a
// Source. Line is a 0-indexed line number; Character is a 0-indexed
// rune offset within that line. Positions order totally by
// (Line, Character).
type Position struct {
	Line      int
	Character int
}

// NewPosition creates a position, clamping negative components to 0.
func NewPosition(line, character int) Position {
	if line < 0 {
		line = 0
	}
	if character < 0 {
		character = 0
	}
	return Position{Line: line, Character: character}
}

// String returns a human-readable representation of the position.
func (p Position) String() string {
	return fmt.Sprintf("(%d:%d)", p.Line, p.Character)
}

// Compare returns -1 if p < other, 0 if p == other, 1 if p > other.
func (p Position) Compare(other Position) int {
	if p.Line < other.Line {
		return -1
	}
	if p.Line > other.Line {
		return 1
	}
	if p.Character < other.Character {
		return -1
	}
	if p.Character > other.Character {
		return 1
	}
	return 0
}

// Before returns true if p comes before other.
func (p Position) Before(other Position) bool {
	return p.Compare(other) < 0
}

// After returns true if p comes after other.
func (p Position) After(other Position) bool {
	return p.Compare(other) > 0
}

// Left returns the position count characters to the left, clamped at
// the beginning of the line. It never crosses a line boundary.
func (p Position) Left(count int) Position {
	if count <= 0 {
		return p
	}
	ch := p.Character - count
	if ch < 0 {
		ch = 0
	}
	return Position{Line: p.Line, Character: ch}
}

// Right returns the position count characters to the right, clamped at
// the end of the line. It never crosses a line boundary.
func (p Position) Right(src Source, count int) Position {
	if count <= 0 {
		return p
	}
	max := LineLen(src, p.Line)
	ch := p.Character + count
	if ch > max {
		ch = max
	}
	return Position{Line: p.Line, Character: ch}
}

// LeftThroughLineBreaks returns the position one character to the
// left, crossing to the end of the previous line when at a line
// beginning. At document begin it returns p unchanged. When
// includeTerminator is set the landing column at a crossed line is the
// line's length (the terminator slot); otherwise it is the last
// character of that line.
func (p Position) LeftThroughLineBreaks(src Source, includeTerminator bool) Position {
	if p.Character > 0 {
		return Position{Line: p.Line, Character: p.Character - 1}
	}
	if p.Line == 0 {
		return p
	}
	prev := p.Line - 1
	end := LineLen(src, prev)
	if !includeTerminator && end > 0 {
		end--
	}
	return Position{Line: prev, Character: end}
}

// RightThroughLineBreaks returns the position one character to the
// right, crossing to the beginning of the next line when at a line
// end. At document end it returns p unchanged. When includeTerminator
// is set the cursor may rest on the line-end slot (column == length)
// before crossing; otherwise the last character is the final column.
func (p Position) RightThroughLineBreaks(src Source, includeTerminator bool) Position {
	max := LineLen(src, p.Line)
	end := max
	if !includeTerminator && end > 0 {
		end--
	}
	if p.Character < end {
		return Position{Line: p.Line, Character: p.Character + 1}
	}
	if p.Line >= src.LineCount()-1 {
		return p
	}
	return Position{Line: p.Line + 1, Character: 0}
}

// Up returns the position one line up with the character clamped to
// the target line's length. desiredColumn preserves the column the
// cursor is trying to stay in across short lines.
func (p Position) Up(src Source, desiredColumn int) Position {
	if p.Line == 0 {
		return p
	}
	line := p.Line - 1
	return Position{Line: line, Character: clampColumn(src, line, desiredColumn)}
}

// Down returns the position one line down with the character clamped
// to the target line's length.
func (p Position) Down(src Source, desiredColumn int) Position {
	if p.Line >= src.LineCount()-1 {
		return p
	}
	line := p.Line + 1
	return Position{Line: line, Character: clampColumn(src, line, desiredColumn)}
}

// LineBegin returns the position at column 0 of the current line.
func (p Position) LineBegin() Position {
	return Position{Line: p.Line, Character: 0}
}

// LineEnd returns the position at the end of the current line (column
// equal to the line's rune length).
func (p Position) LineEnd(src Source) Position {
	return Position{Line: p.Line, Character: LineLen(src, p.Line)}
}

// LineEndIncludingTerminator returns the position one past the line
// end, representing inclusion of the trailing line terminator. This is
// the only operation that produces a column of length+1.
func (p Position) LineEndIncludingTerminator(src Source) Position {
	return Position{Line: p.Line, Character: LineLen(src, p.Line) + 1}
}

// FirstNonBlank returns the position at the first non-blank character
// of the current line, or column 0 when the line is blank.
func (p Position) FirstNonBlank(src Source) Position {
	return Position{Line: p.Line, Character: FirstNonBlankColumn(lineAt(src, p.Line))}
}

// DocumentBegin returns position (0, 0).
func DocumentBegin() Position {
	return Position{}
}

// DocumentEnd returns the position at the end of the last line.
func DocumentEnd(src Source) Position {
	last := src.LineCount() - 1
	if last < 0 {
		return Position{}
	}
	return Position{Line: last, Character: LineLen(src, last)}
}

// DocumentLastChar returns the position of the last character in the
// document, or document begin when the last line is empty.
func DocumentLastChar(src Source) Position {
	last := src.LineCount() - 1
	if last < 0 {
		return Position{}
	}
	ch := LineLen(src, last) - 1
	if ch < 0 {
		ch = 0
	}
	return Position{Line: last, Character: ch}
}

// IsAtDocumentBegin returns true at position (0, 0).
func (p Position) IsAtDocumentBegin() bool {
	return p.Line == 0 && p.Character == 0
}

// IsAtDocumentEnd returns true at or past the end of the last line.
func (p Position) IsAtDocumentEnd(src Source) bool {
	last := src.LineCount() - 1
	if last < 0 {
		return true
	}
	return p.Line >= last && p.Character >= LineLen(src, last)
}

// IsLineBeginning returns true at column 0.
func (p Position) IsLineBeginning() bool {
	return p.Character == 0
}

// IsLineEnd returns true at or past the line's rune length.
func (p Position) IsLineEnd(src Source) bool {
	return p.Character >= LineLen(src, p.Line)
}

// Clamp returns the position with the line clamped to
// [0, LineCount-1] and the character clamped to the resulting line's
// length.
func (p Position) Clamp(src Source) Position {
	line := p.Line
	if line < 0 {
		line = 0
	}
	if last := src.LineCount() - 1; line > last {
		if last < 0 {
			return Position{}
		}
		line = last
	}
	return Position{Line: line, Character: clampColumn(src, line, p.Character)}
}

// Rune returns the rune under the position and true, or utf8.RuneError
// and false when the position is at or past the line end.
func (p Position) Rune(src Source) (rune, bool) {
	line := lineAt(src, p.Line)
	col := 0
	for _, r := range line {
		if col == p.Character {
			return r, true
		}
		col++
	}
	return utf8.RuneError, false
}

func clampColumn(src Source, line, column int) int {
	if column < 0 {
		return 0
	}
	if max := LineLen(src, line); column > max {
		return max
	}
	return column
}
