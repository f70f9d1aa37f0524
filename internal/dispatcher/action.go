package dispatcher

import (
	"github.com/selkie-editor/selkie/internal/engine/motion"
	"github.com/selkie-editor/selkie/internal/engine/text"
)

// Kind discriminates the two action families.
type Kind uint8

const (
	// KindPoint moves the cursor of each selection.
	KindPoint Kind = iota

	// KindRegion replaces each selection with a computed region.
	KindRegion
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindPoint:
		return "point"
	case KindRegion:
		return "region"
	default:
		return "unknown"
	}
}

// Spec describes one motion action: its kind, whether it consumes a
// target character, and the functions that compute it. Region specs
// name the point action serving as their extend form in ExtendWith.
type Spec struct {
	Name       string
	Kind       Kind
	NeedsChar  bool
	ExtendWith string

	point      func(motion.Context, text.Position) text.Position
	pointChar  func(motion.Context, text.Position, rune, int) (text.Position, bool)
	region     func(motion.Context, text.Position) text.Region
	regionChar func(motion.Context, text.Position, rune, int) (text.Region, bool)
}

// NewPointAction creates a point-action spec for motions defined
// outside the built-in catalog, such as scripted ones.
func NewPointAction(name string, fn func(motion.Context, text.Position) text.Position) Spec {
	return Spec{Name: name, Kind: KindPoint, point: fn}
}

// catalog returns the full action table keyed by name.
func catalog() map[string]Spec {
	specs := map[string]Spec{}

	point := func(name string, fn func(motion.Context, text.Position) text.Position) {
		specs[name] = Spec{Name: name, Kind: KindPoint, point: fn}
	}
	pointChar := func(name string, fn func(motion.Context, text.Position, rune, int) (text.Position, bool)) {
		specs[name] = Spec{Name: name, Kind: KindPoint, NeedsChar: true, pointChar: fn}
	}
	region := func(name, extendWith string, fn func(motion.Context, text.Position) text.Region) {
		specs[name] = Spec{Name: name, Kind: KindRegion, ExtendWith: extendWith, region: fn}
	}
	regionChar := func(name, extendWith string, fn func(motion.Context, text.Position, rune, int) (text.Region, bool)) {
		specs[name] = Spec{Name: name, Kind: KindRegion, NeedsChar: true, ExtendWith: extendWith, regionChar: fn}
	}

	point("char-left", motion.CharLeft)
	point("char-right", motion.CharRight)
	point("line-up", func(c motion.Context, p text.Position) text.Position {
		return motion.Up(c, p, p.Character)
	})
	point("line-down", func(c motion.Context, p text.Position) text.Position {
		return motion.Down(c, p, p.Character)
	})

	point("word-right", func(c motion.Context, p text.Position) text.Position {
		return motion.WordRight(c, p, false)
	})
	point("word-left", func(c motion.Context, p text.Position) text.Position {
		return motion.WordLeft(c, p, false)
	})
	point("word-end", func(c motion.Context, p text.Position) text.Position {
		return motion.CurrentWordEnd(c, p, false)
	})
	point("word-end-back", motion.LastWordEnd)
	point("bigword-right", motion.BigWordRight)
	point("bigword-left", motion.BigWordLeft)
	point("bigword-end", func(c motion.Context, p text.Position) text.Position {
		return motion.CurrentBigWordEnd(c, p, false)
	})
	point("camel-right", motion.CamelWordRight)
	point("camel-left", motion.CamelWordLeft)
	point("path-right", motion.FilePathRight)
	point("path-left", motion.FilePathLeft)

	point("line-begin", motion.LineBegin)
	point("line-first-nonblank", motion.FirstNonBlank)
	point("line-end", motion.LineEnd)
	point("document-begin", motion.DocumentBegin)
	point("document-end", motion.DocumentEnd)

	point("paragraph-forward", motion.ParagraphForward)
	point("paragraph-backward", motion.ParagraphBackward)
	point("sentence-forward", motion.SentenceForward)
	point("sentence-backward", motion.SentenceBackward)

	pointChar("find-forward", motion.FindForward)
	pointChar("find-backward", motion.FindBackward)
	pointChar("til-forward", motion.TilForward)
	pointChar("til-backward", motion.TilBackward)

	region("select-word-right", "word-right", motion.SelectWordRight)
	region("select-word-left", "word-left", motion.SelectWordLeft)
	region("select-word-end", "word-end", motion.SelectWordEnd)
	region("select-bigword-right", "bigword-right", motion.SelectBigWordRight)
	region("select-bigword-left", "bigword-left", motion.SelectBigWordLeft)
	region("select-line", "", motion.SelectLine)
	region("select-to-line-end", "line-end", motion.SelectToLineEnd)
	region("select-to-line-begin", "line-begin", motion.SelectToLineBegin)
	region("select-paragraph", "", motion.SelectParagraph)
	region("select-buffer", "", motion.SelectWholeBuffer)

	regionChar("select-find-forward", "find-forward", motion.SelectFindForward)
	regionChar("select-til-forward", "til-forward", motion.SelectTilForward)
	regionChar("select-find-backward", "find-backward", motion.SelectFindBackward)

	return specs
}
