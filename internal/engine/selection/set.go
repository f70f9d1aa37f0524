package selection

import "sort"

// Set manages multiple selections. Selections are kept sorted by
// their lesser endpoint and merged when they overlap. The first
// selection is the primary one.
type Set struct {
	selections []Selection
}

// NewSet creates a set with a single selection.
func NewSet(initial Selection) *Set {
	return &Set{selections: []Selection{initial}}
}

// NewSetFromSlice creates a set from a slice of selections,
// normalizing them (sorted, merged on overlap).
func NewSetFromSlice(selections []Selection) *Set {
	if len(selections) == 0 {
		return NewSet(Selection{})
	}
	s := &Set{selections: make([]Selection, len(selections))}
	copy(s.selections, selections)
	s.normalize()
	return s
}

// Primary returns the primary (first) selection.
func (s *Set) Primary() Selection {
	if len(s.selections) == 0 {
		return Selection{}
	}
	return s.selections[0]
}

// All returns a copy of all selections.
func (s *Set) All() []Selection {
	out := make([]Selection, len(s.selections))
	copy(out, s.selections)
	return out
}

// Count returns the number of selections.
func (s *Set) Count() int {
	return len(s.selections)
}

// Add adds a selection, merging with overlapping ones.
func (s *Set) Add(sel Selection) {
	s.selections = append(s.selections, sel)
	s.normalize()
}

// Set replaces all selections with a single one.
func (s *Set) Set(sel Selection) {
	s.selections = []Selection{sel}
}

// Map applies fn to every selection against the same frozen snapshot
// and renormalizes. No call observes another selection's in-progress
// result, so any evaluation order yields the same set.
func (s *Set) Map(fn func(Selection) Selection) {
	for i, sel := range s.selections {
		s.selections[i] = fn(sel)
	}
	s.normalize()
}

// Collapse reduces every selection to a caret at its cursor.
func (s *Set) Collapse() {
	s.Map(func(sel Selection) Selection {
		return NewCaret(sel.Cursor)
	})
}

// normalize sorts selections by their lesser endpoint and merges
// overlapping ones. The merged selection keeps the direction of the
// earlier selection.
func (s *Set) normalize() {
	if len(s.selections) < 2 {
		return
	}
	sort.SliceStable(s.selections, func(i, j int) bool {
		return s.selections[i].Min().Before(s.selections[j].Min())
	})

	merged := s.selections[:1]
	for _, sel := range s.selections[1:] {
		last := &merged[len(merged)-1]
		if !last.Overlaps(sel) {
			merged = append(merged, sel)
			continue
		}
		lo, hi := last.Min(), last.Max()
		if sel.Min().Before(lo) {
			lo = sel.Min()
		}
		if sel.Max().After(hi) {
			hi = sel.Max()
		}
		if last.IsForward() {
			*last = Selection{Anchor: lo, Cursor: hi}
		} else {
			*last = Selection{Anchor: hi, Cursor: lo}
		}
	}
	s.selections = merged
}
