// Package selection provides the anchor/cursor selection model and
// the point-motion versus region-motion contract.
//
// A Selection pairs an Anchor (the fixed end) with a Cursor (the
// moving end). When both coincide the selection is just a caret. Point
// motions produce a single position: the caller decides whether to
// move the whole selection there or extend it by moving only the
// cursor. Region motions produce a {Start, Stop} region that replaces
// the selection outright, Kakoune-style, with Start becoming the
// anchor and Stop the cursor.
//
// Set manages multiple selections for multi-cursor editing. Motions
// applied through Set.Map read the same frozen text snapshot, so
// evaluation order across selections is irrelevant.
package selection
