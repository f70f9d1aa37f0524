package text

// Span is a contiguous stretch of text addressed by inclusive start
// and exclusive end positions, produced on demand by span iteration.
type Span struct {
	Start Position
	End   Position
	Text  string
}

// LineIter is a restartable lazy iterator over the lines of a Source.
// It is bounded by document end (or begin when reversed) and is safe
// to Reset and reuse.
type LineIter struct {
	src     Source
	line    int
	start   int
	reverse bool
}

// NewLineIter creates a forward line iterator starting at the given
// line.
func NewLineIter(src Source, startLine int) *LineIter {
	return &LineIter{src: src, line: startLine, start: startLine}
}

// NewReverseLineIter creates a backward line iterator starting at the
// given line.
func NewReverseLineIter(src Source, startLine int) *LineIter {
	return &LineIter{src: src, line: startLine, start: startLine, reverse: true}
}

// Next returns the next line span, or false when the document is
// exhausted.
func (it *LineIter) Next() (Span, bool) {
	if it.line < 0 || it.line >= it.src.LineCount() {
		return Span{}, false
	}
	line := it.line
	if it.reverse {
		it.line--
	} else {
		it.line++
	}
	textOf := lineAt(it.src, line)
	return Span{
		Start: Position{Line: line, Character: 0},
		End:   Position{Line: line, Character: LineLen(it.src, line)},
		Text:  textOf,
	}, true
}

// Reset rewinds the iterator to its starting line.
func (it *LineIter) Reset() {
	it.line = it.start
}
