package text

import "fmt"

// Region is a directed range between two positions, both inclusive.
// Start may come after Stop; direction is caller-defined. Callers
// using Kakoune-style selections treat Start as the anchor and Stop as
// the cursor.
type Region struct {
	Start Position
	Stop  Position
}

// NewRegion creates a region from start to stop.
func NewRegion(start, stop Position) Region {
	return Region{Start: start, Stop: stop}
}

// String returns a human-readable representation of the region.
func (r Region) String() string {
	return fmt.Sprintf("[%s..%s]", r.Start, r.Stop)
}

// IsEmpty returns true when both endpoints coincide.
func (r Region) IsEmpty() bool {
	return r.Start == r.Stop
}

// IsForward returns true when Start does not come after Stop.
func (r Region) IsForward() bool {
	return !r.Start.After(r.Stop)
}

// Min returns the lesser endpoint.
func (r Region) Min() Position {
	if r.Start.Before(r.Stop) {
		return r.Start
	}
	return r.Stop
}

// Max returns the greater endpoint.
func (r Region) Max() Position {
	if r.Start.After(r.Stop) {
		return r.Start
	}
	return r.Stop
}

// Contains returns true when p lies within the region's inclusive
// bounds, regardless of direction.
func (r Region) Contains(p Position) bool {
	return p.Compare(r.Min()) >= 0 && p.Compare(r.Max()) <= 0
}

// Reverse returns the region with its endpoints swapped.
func (r Region) Reverse() Region {
	return Region{Start: r.Stop, Stop: r.Start}
}
