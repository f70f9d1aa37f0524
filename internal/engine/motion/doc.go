// Package motion implements the movement computations of the engine.
//
// Every motion is a pure, stateless function over a Context (frozen
// text Source, shared Classifier, option flags) and a starting
// Position. Point motions return a single new Position; region
// motions return a directed text.Region meant to replace the active
// selection outright. Count repetition is the caller's responsibility
// except for the find family, where the occurrence count is part of
// the primitive search.
//
// Word motions search the current line's run boundaries first and
// continue onto following (or preceding) lines when none qualifies;
// the first boundary found on another line is accepted regardless of
// inclusivity, so a motion can never get stuck mid-document. When the
// whole document is exhausted the motion lands on document begin
// (searching left) or document end (searching right).
//
// Find motions are asymmetric by design: forward search wraps across
// line breaks up to document end, backward search is restricted to the
// current line. Both return a not-found flag instead of an error when
// fewer than count occurrences exist.
package motion
