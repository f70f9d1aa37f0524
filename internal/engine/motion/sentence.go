package motion

import (
	"unicode"

	"github.com/selkie-editor/selkie/internal/engine/text"
)

// A paragraph is a maximal run of non-blank lines. What counts as
// blank is governed by Context.WhitespaceBlankLines.

// ParagraphForward moves to the blank line following the current
// paragraph, or document end when the paragraph runs to the last
// line. Starting inside a blank run skips the leading blank lines
// first.
func ParagraphForward(c Context, p text.Position) text.Position {
	last := c.Source.LineCount() - 1
	if last < 0 {
		return text.DocumentBegin()
	}
	line := p.Line
	for line < last && c.isBlank(line) {
		line++
	}
	for line < last && !c.isBlank(line) {
		line++
	}
	if !c.isBlank(line) {
		return text.DocumentEnd(c.Source)
	}
	return text.Position{Line: line}
}

// ParagraphBackward moves to the blank line preceding the current
// paragraph, or document begin when the paragraph starts the
// document.
func ParagraphBackward(c Context, p text.Position) text.Position {
	line := p.Line
	for line > 0 && c.isBlank(line) {
		line--
	}
	for line > 0 && !c.isBlank(line) {
		line--
	}
	if !c.isBlank(line) {
		return text.DocumentBegin()
	}
	return text.Position{Line: line}
}

// paragraphSpan returns the first and last line of the paragraph
// containing line. A blank line spans only itself.
func paragraphSpan(c Context, line int) (int, int) {
	if c.isBlank(line) {
		return line, line
	}
	first, last := line, line
	for first > 0 && !c.isBlank(first-1) {
		first--
	}
	for last < c.Source.LineCount()-1 && !c.isBlank(last+1) {
		last++
	}
	return first, last
}

func isSentencePunctuation(r rune) bool {
	return r == '.' || r == '!' || r == '?'
}

// sentenceStartAfter returns the start of the sentence following a
// boundary match at (line, idx), staying within the paragraph span.
// ok is false when the next sentence would begin past the paragraph.
func sentenceStartAfter(c Context, line, idx, lastLine int) (text.Position, bool) {
	runes := []rune(c.line(line))
	j := idx + 1
	for j < len(runes) && unicode.IsSpace(runes[j]) {
		j++
	}
	if j < len(runes) {
		return text.Position{Line: line, Character: j}, true
	}
	if line < lastLine {
		next := line + 1
		return text.Position{Line: next, Character: text.FirstNonBlankColumn(c.line(next))}, true
	}
	return text.Position{}, false
}

// SentenceForward moves to the start of the next sentence. Sentence
// boundaries are one of ".!?" followed by whitespace or end of text,
// searched only within the current paragraph's line span; without a
// match the motion falls back to the paragraph end and never runs
// past it.
func SentenceForward(c Context, p text.Position) text.Position {
	_, last := paragraphSpan(c, p.Line)

	for line := p.Line; line <= last; line++ {
		runes := []rune(c.line(line))
		for i := 0; i < len(runes); i++ {
			if !isSentencePunctuation(runes[i]) {
				continue
			}
			if i+1 < len(runes) && !unicode.IsSpace(runes[i+1]) {
				continue
			}
			candidate, ok := sentenceStartAfter(c, line, i, last)
			if ok && candidate.After(p) {
				return candidate
			}
		}
	}
	return text.Position{Line: last, Character: text.LineLen(c.Source, last)}
}

// SentenceBackward moves to the start of the current or previous
// sentence, falling back to the first non-blank character of the
// paragraph's first line.
func SentenceBackward(c Context, p text.Position) text.Position {
	first, _ := paragraphSpan(c, p.Line)
	best := text.Position{Line: first, Character: text.FirstNonBlankColumn(c.line(first))}

	for line := first; line <= p.Line; line++ {
		runes := []rune(c.line(line))
		for i := 0; i < len(runes); i++ {
			if !isSentencePunctuation(runes[i]) {
				continue
			}
			if i+1 < len(runes) && !unicode.IsSpace(runes[i+1]) {
				continue
			}
			candidate, ok := sentenceStartAfter(c, line, i, p.Line)
			if ok && candidate.Before(p) && candidate.After(best) {
				best = candidate
			}
		}
	}
	return best
}
