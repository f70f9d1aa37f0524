package motion

import "github.com/selkie-editor/selkie/internal/engine/text"

// Region motions compute a replacement selection outright: Start is
// the new anchor, Stop the new cursor. Each has a point-motion
// counterpart that callers use as the extend form of the same
// movement.

// SelectWordRight selects from the cursor up to (but not including)
// the start of the next word. Its extend counterpart is WordRight.
func SelectWordRight(c Context, p text.Position) text.Region {
	next := WordRight(c, p, false)
	stop := next.LeftThroughLineBreaks(c.Source, true)
	if stop.Before(p) {
		stop = p
	}
	return text.Region{Start: p, Stop: stop}
}

// SelectWordLeft selects from the cursor back to the start of the
// previous word. Its extend counterpart is WordLeft.
func SelectWordLeft(c Context, p text.Position) text.Region {
	return text.Region{Start: p, Stop: WordLeft(c, p, false)}
}

// SelectBigWordRight is SelectWordRight over whitespace-delimited
// words. Its extend counterpart is BigWordRight.
func SelectBigWordRight(c Context, p text.Position) text.Region {
	next := BigWordRight(c, p)
	stop := next.LeftThroughLineBreaks(c.Source, true)
	if stop.Before(p) {
		stop = p
	}
	return text.Region{Start: p, Stop: stop}
}

// SelectBigWordLeft is SelectWordLeft over whitespace-delimited
// words. Its extend counterpart is BigWordLeft.
func SelectBigWordLeft(c Context, p text.Position) text.Region {
	return text.Region{Start: p, Stop: BigWordLeft(c, p)}
}

// SelectWordEnd selects from the cursor to the end of the current or
// next word. Its extend counterpart is CurrentWordEnd.
func SelectWordEnd(c Context, p text.Position) text.Region {
	return text.Region{Start: p, Stop: CurrentWordEnd(c, p, false)}
}

// SelectLine selects the whole current line including the trailing
// line terminator.
func SelectLine(c Context, p text.Position) text.Region {
	return text.Region{
		Start: p.LineBegin(),
		Stop:  p.LineEndIncludingTerminator(c.Source),
	}
}

// SelectToLineEnd selects from the cursor to the line end. Its extend
// counterpart is LineEnd.
func SelectToLineEnd(c Context, p text.Position) text.Region {
	return text.Region{Start: p, Stop: p.LineEnd(c.Source)}
}

// SelectToLineBegin selects from the cursor back to the line
// beginning. Its extend counterpart is LineBegin.
func SelectToLineBegin(c Context, p text.Position) text.Region {
	return text.Region{Start: p, Stop: LineBegin(c, p)}
}

// SelectParagraph selects the paragraph containing the cursor.
func SelectParagraph(c Context, p text.Position) text.Region {
	first, last := paragraphSpan(c, p.Line)
	return text.Region{
		Start: text.Position{Line: first},
		Stop:  text.Position{Line: last, Character: text.LineLen(c.Source, last)},
	}
}

// SelectWholeBuffer selects from document begin to the last character
// of the document.
func SelectWholeBuffer(c Context, p text.Position) text.Region {
	return text.Region{Start: text.DocumentBegin(), Stop: text.DocumentLastChar(c.Source)}
}

// SelectFindForward selects from the cursor to the count-th
// occurrence of ch. Its extend counterpart is FindForward.
func SelectFindForward(c Context, p text.Position, ch rune, count int) (text.Region, bool) {
	found, ok := FindForward(c, p, ch, count)
	if !ok {
		return text.Region{}, false
	}
	return text.Region{Start: p, Stop: found}, true
}

// SelectTilForward selects from the cursor to one position before the
// count-th occurrence of ch. Its extend counterpart is TilForward.
func SelectTilForward(c Context, p text.Position, ch rune, count int) (text.Region, bool) {
	found, ok := TilForward(c, p, ch, count)
	if !ok {
		return text.Region{}, false
	}
	return text.Region{Start: p, Stop: found}, true
}

// SelectFindBackward selects from the cursor back to the count-th
// occurrence of ch on the current line. Its extend counterpart is
// FindBackward.
func SelectFindBackward(c Context, p text.Position, ch rune, count int) (text.Region, bool) {
	found, ok := FindBackward(c, p, ch, count)
	if !ok {
		return text.Region{}, false
	}
	return text.Region{Start: p, Stop: found}, true
}
