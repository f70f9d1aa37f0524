package text

import "fmt"

// DeltaKind discriminates the delta variants.
type DeltaKind uint8

const (
	// DeltaOffset is a pure relative offset of lines and characters.
	DeltaOffset DeltaKind = iota

	// DeltaLineStart snaps the character to the start of the resulting
	// line, then to the target character.
	DeltaLineStart

	// DeltaConditionalLineStart behaves like DeltaLineStart, but only
	// when the snap-to-first-non-blank-on-vertical-motion option is
	// enabled; otherwise the character is left in place (clamped).
	DeltaConditionalLineStart
)

// String returns the delta kind name.
func (k DeltaKind) String() string {
	switch k {
	case DeltaOffset:
		return "offset"
	case DeltaLineStart:
		return "lineStart"
	case DeltaConditionalLineStart:
		return "conditionalLineStart"
	default:
		return "unknown"
	}
}

// Delta is a composable relative position adjustment. Offset deltas
// shift by (DLine, DChar); the line-start variants reposition the
// character to TargetChar on the resulting line. Delta is an immutable
// value type.
type Delta struct {
	Kind       DeltaKind
	DLine      int
	DChar      int
	TargetChar int
}

// NewOffset creates a pure offset delta.
func NewOffset(dLine, dChar int) Delta {
	return Delta{Kind: DeltaOffset, DLine: dLine, DChar: dChar}
}

// NewLineStart creates a snap-to-line-start delta landing on
// targetChar.
func NewLineStart(targetChar int) Delta {
	return Delta{Kind: DeltaLineStart, TargetChar: targetChar}
}

// NewConditionalLineStart creates a delta that snaps to targetChar
// only when vertical-motion snapping is enabled.
func NewConditionalLineStart(targetChar int) Delta {
	return Delta{Kind: DeltaConditionalLineStart, TargetChar: targetChar}
}

// String returns a human-readable representation of the delta.
func (d Delta) String() string {
	switch d.Kind {
	case DeltaOffset:
		return fmt.Sprintf("offset(%+d,%+d)", d.DLine, d.DChar)
	default:
		return fmt.Sprintf("%s(%d)", d.Kind, d.TargetChar)
	}
}

// Combine merges two deltas into one. Only two Offset deltas compose;
// the result is the component-wise sum. Any other combination returns
// ErrUnsupportedComposition: snapping semantics are not associative,
// so a silent best-effort merge would be wrong.
func Combine(a, b Delta) (Delta, error) {
	if a.Kind != DeltaOffset || b.Kind != DeltaOffset {
		return Delta{}, fmt.Errorf("combining %s with %s: %w", a.Kind, b.Kind, ErrUnsupportedComposition)
	}
	return NewOffset(a.DLine+b.DLine, a.DChar+b.DChar), nil
}

// Apply returns a new position adjusted by the delta. The line is
// clamped to [0, LineCount-1] and the character to >= 0; the character
// is not clamped to the line length so that terminator-including
// columns survive offset application. snapEnabled governs the
// conditional variant.
func (p Position) Apply(src Source, d Delta, snapEnabled bool) Position {
	line := clampLine(src, p.Line+d.DLine)

	switch d.Kind {
	case DeltaOffset:
		ch := p.Character + d.DChar
		if ch < 0 {
			ch = 0
		}
		return Position{Line: line, Character: ch}

	case DeltaLineStart:
		return Position{Line: line, Character: maxInt(d.TargetChar, 0)}

	case DeltaConditionalLineStart:
		if snapEnabled {
			return Position{Line: line, Character: maxInt(d.TargetChar, 0)}
		}
		return Position{Line: line, Character: clampColumn(src, line, p.Character)}

	default:
		return Position{Line: line, Character: p.Character}
	}
}

func clampLine(src Source, line int) int {
	if line < 0 {
		return 0
	}
	if last := src.LineCount() - 1; line > last {
		if last < 0 {
			return 0
		}
		return last
	}
	return line
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
