// Package text provides the positional foundation of the motion engine.
//
// The package defines:
//
//   - Source: read-only, line-indexed access to buffer content
//   - Position: an immutable (line, character) value with bounded arithmetic
//   - Delta: a composable relative offset with snap-to-line-start variants
//   - Region: a directed, inclusive range between two positions
//   - LineIter: restartable lazy span iteration over a Source
//
// Characters are rune indices within a line. A character index equal to
// the line's rune length means "at line end, after the last character";
// an index of length+1 is reserved for positions that include the
// trailing line terminator and is only produced by
// LineEndIncludingTerminator.
//
// All positional operations clamp rather than error: moving left at
// document begin is a no-op returning the same value. Position, Delta,
// and Region are immutable value types and safe for concurrent use.
package text
