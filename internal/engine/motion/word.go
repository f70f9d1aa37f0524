package motion

import (
	"github.com/selkie-editor/selkie/internal/engine/classify"
	"github.com/selkie-editor/selkie/internal/engine/text"
)

// WordRight moves to the start of the next word or punctuation run.
// inclusive also accepts a run start exactly under the cursor.
func WordRight(c Context, p text.Position, inclusive bool) text.Position {
	return boundaryRight(c, p, classify.VariantWord, startBoundaries, inclusive)
}

// WordLeft moves to the start of the previous word or punctuation run.
func WordLeft(c Context, p text.Position, inclusive bool) text.Position {
	return boundaryLeft(c, p, classify.VariantWord, startBoundaries, inclusive)
}

// BigWordRight moves to the start of the next whitespace-delimited
// word.
func BigWordRight(c Context, p text.Position) text.Position {
	return boundaryRight(c, p, classify.VariantBigWord, startBoundaries, false)
}

// BigWordLeft moves to the start of the previous whitespace-delimited
// word.
func BigWordLeft(c Context, p text.Position) text.Position {
	return boundaryLeft(c, p, classify.VariantBigWord, startBoundaries, false)
}

// CamelWordRight moves to the start of the next camel subword.
func CamelWordRight(c Context, p text.Position) text.Position {
	return boundaryRight(c, p, classify.VariantCamel, startBoundaries, false)
}

// CamelWordLeft moves to the start of the previous camel subword.
func CamelWordLeft(c Context, p text.Position) text.Position {
	return boundaryLeft(c, p, classify.VariantCamel, startBoundaries, false)
}

// FilePathRight moves to the start of the next file-path token.
func FilePathRight(c Context, p text.Position) text.Position {
	return boundaryRight(c, p, classify.VariantFilePath, startBoundaries, false)
}

// FilePathLeft moves to the start of the previous file-path token.
func FilePathLeft(c Context, p text.Position) text.Position {
	return boundaryLeft(c, p, classify.VariantFilePath, startBoundaries, false)
}

// CurrentWordEnd moves to the end of the current or next word.
func CurrentWordEnd(c Context, p text.Position, inclusive bool) text.Position {
	return boundaryRight(c, p, classify.VariantWord, endBoundaries, inclusive)
}

// CurrentBigWordEnd moves to the end of the current or next
// whitespace-delimited word.
func CurrentBigWordEnd(c Context, p text.Position, inclusive bool) text.Position {
	return boundaryRight(c, p, classify.VariantBigWord, endBoundaries, inclusive)
}

// LastWordEnd moves to the end of the previous word.
func LastWordEnd(c Context, p text.Position) text.Position {
	return boundaryLeft(c, p, classify.VariantWord, endBoundaries, false)
}
