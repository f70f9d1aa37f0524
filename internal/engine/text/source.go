package text

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Source provides read-only, line-indexed access to buffer content.
// Line text excludes the line terminator. Implementations must return
// ErrLineOutOfRange for indices outside [0, LineCount-1].
//
// Motions treat a Source as a frozen snapshot: it must not change
// between the start and end of a multi-selection motion batch.
type Source interface {
	// LineCount returns the number of lines in the buffer.
	LineCount() int

	// Line returns the text of the 0-indexed line, without terminator.
	Line(index int) (string, error)
}

// SliceSource is a Source backed by a slice of lines. It is the
// canonical snapshot type for tests and for callers that already hold
// buffer content as lines.
type SliceSource struct {
	lines []string
}

// NewSliceSource creates a SliceSource from the given lines.
// The slice is copied so later mutation by the caller cannot change
// the snapshot.
func NewSliceSource(lines []string) *SliceSource {
	copied := make([]string, len(lines))
	copy(copied, lines)
	return &SliceSource{lines: copied}
}

// NewStringSource creates a SliceSource by splitting s on line feeds.
// Carriage returns preceding a line feed are stripped.
func NewStringSource(s string) *SliceSource {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return &SliceSource{lines: lines}
}

// LineCount returns the number of lines.
func (s *SliceSource) LineCount() int {
	return len(s.lines)
}

// Line returns the text of the given line.
func (s *SliceSource) Line(index int) (string, error) {
	if index < 0 || index >= len(s.lines) {
		return "", ErrLineOutOfRange
	}
	return s.lines[index], nil
}

// lineAt returns the text of a line, or "" when the index is out of
// range. Position arithmetic only addresses clamped indices, so the
// empty fallback is never observed through the public surface.
func lineAt(src Source, index int) string {
	line, err := src.Line(index)
	if err != nil {
		return ""
	}
	return line
}

// LineLen returns the rune length of the given line, or 0 when the
// index is out of range.
func LineLen(src Source, index int) int {
	return utf8.RuneCountInString(lineAt(src, index))
}

// FirstNonBlankColumn returns the rune index of the first non-blank
// character of line, or 0 when the line is empty or all whitespace.
func FirstNonBlankColumn(line string) int {
	col := 0
	for _, r := range line {
		if !unicode.IsSpace(r) {
			return col
		}
		col++
	}
	return 0
}

// IsBlankLine reports whether line counts as blank. The empty string is
// always blank; whitespace-only lines are blank only when
// whitespaceBlank is set.
func IsBlankLine(line string, whitespaceBlank bool) bool {
	if line == "" {
		return true
	}
	if !whitespaceBlank {
		return false
	}
	return strings.TrimSpace(line) == ""
}
