package selection

import (
	"fmt"

	"github.com/selkie-editor/selkie/internal/engine/text"
)

// Selection is an anchor/cursor pair. Anchor is where the selection
// started; Cursor is the moving endpoint. Selection is an immutable
// value type.
type Selection struct {
	Anchor text.Position
	Cursor text.Position
}

// New creates a selection from anchor to cursor.
func New(anchor, cursor text.Position) Selection {
	return Selection{Anchor: anchor, Cursor: cursor}
}

// NewCaret creates a collapsed selection at the given position.
func NewCaret(p text.Position) Selection {
	return Selection{Anchor: p, Cursor: p}
}

// FromRegion creates a selection from a region, Start as anchor and
// Stop as cursor.
func FromRegion(r text.Region) Selection {
	return Selection{Anchor: r.Start, Cursor: r.Stop}
}

// String returns a human-readable representation of the selection.
func (s Selection) String() string {
	return fmt.Sprintf("%s->%s", s.Anchor, s.Cursor)
}

// IsCaret returns true when the selection has no extent.
func (s Selection) IsCaret() bool {
	return s.Anchor == s.Cursor
}

// IsForward returns true when the cursor is not before the anchor.
func (s Selection) IsForward() bool {
	return !s.Cursor.Before(s.Anchor)
}

// Min returns the lesser endpoint.
func (s Selection) Min() text.Position {
	if s.Anchor.Before(s.Cursor) {
		return s.Anchor
	}
	return s.Cursor
}

// Max returns the greater endpoint.
func (s Selection) Max() text.Position {
	if s.Anchor.After(s.Cursor) {
		return s.Anchor
	}
	return s.Cursor
}

// Region returns the selection as a region, anchor first.
func (s Selection) Region() text.Region {
	return text.Region{Start: s.Anchor, Stop: s.Cursor}
}

// Extend returns a new selection with the cursor moved to p and the
// anchor unchanged.
func (s Selection) Extend(p text.Position) Selection {
	return Selection{Anchor: s.Anchor, Cursor: p}
}

// MoveTo returns a collapsed selection at p.
func (s Selection) MoveTo(p text.Position) Selection {
	return Selection{Anchor: p, Cursor: p}
}

// Overlaps returns true when the two selections share any position.
func (s Selection) Overlaps(other Selection) bool {
	return s.Min().Compare(other.Max()) <= 0 && other.Min().Compare(s.Max()) <= 0
}

// ApplyPoint applies a point-motion result: extend keeps the anchor
// and moves only the cursor, otherwise the selection collapses to the
// new position.
func (s Selection) ApplyPoint(p text.Position, extend bool) Selection {
	if extend {
		return s.Extend(p)
	}
	return s.MoveTo(p)
}

// ApplyRegion applies a region-motion result: the selection is
// replaced outright, Start becoming the anchor and Stop the cursor.
func (s Selection) ApplyRegion(r text.Region) Selection {
	return FromRegion(r)
}
