package motion

import "github.com/selkie-editor/selkie/internal/engine/text"

// FindForward moves to the count-th occurrence of ch after the
// cursor. The search continues onto subsequent lines when the current
// line is exhausted, bounded by document end. Returns false when
// fewer than count occurrences exist.
func FindForward(c Context, p text.Position, ch rune, count int) (text.Position, bool) {
	if count < 1 {
		count = 1
	}
	it := text.NewLineIter(c.Source, p.Line)
	col := p.Character + 1
	for {
		span, ok := it.Next()
		if !ok {
			return text.Position{}, false
		}
		runes := []rune(span.Text)
		for ; col < len(runes); col++ {
			if runes[col] != ch {
				continue
			}
			count--
			if count == 0 {
				return text.Position{Line: span.Start.Line, Character: col}, true
			}
		}
		col = 0
	}
}

// FindBackward moves to the count-th occurrence of ch before the
// cursor on the current line. Unlike FindForward it never wraps onto
// previous lines; the asymmetry is deliberate and pinned by tests.
func FindBackward(c Context, p text.Position, ch rune, count int) (text.Position, bool) {
	if count < 1 {
		count = 1
	}
	runes := []rune(c.line(p.Line))
	col := p.Character - 1
	if col >= len(runes) {
		col = len(runes) - 1
	}
	for ; col >= 0; col-- {
		if runes[col] != ch {
			continue
		}
		count--
		if count == 0 {
			return text.Position{Line: p.Line, Character: col}, true
		}
	}
	return text.Position{}, false
}

// TilForward moves to one position before the count-th occurrence of
// ch after the cursor.
func TilForward(c Context, p text.Position, ch rune, count int) (text.Position, bool) {
	found, ok := FindForward(c, p, ch, count)
	if !ok {
		return text.Position{}, false
	}
	return found.LeftThroughLineBreaks(c.Source, true), true
}

// TilBackward moves to one position after the count-th occurrence of
// ch before the cursor on the current line.
func TilBackward(c Context, p text.Position, ch rune, count int) (text.Position, bool) {
	found, ok := FindBackward(c, p, ch, count)
	if !ok {
		return text.Position{}, false
	}
	return found.Right(c.Source, 1), true
}
