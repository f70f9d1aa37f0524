package config

import (
	"github.com/selkie-editor/selkie/internal/engine/classify"
	"github.com/selkie-editor/selkie/internal/engine/motion"
	"github.com/selkie-editor/selkie/internal/engine/text"
)

// DefaultKeywordCharacters is the stock separator set. Characters in
// this string form punctuation runs; everything else letter-or-digit
// forms word runs.
const DefaultKeywordCharacters = "`~!@#$%^&*()-=+[{]}\\|;:'\",.<>/?"

// Options are the user-tunable knobs of the motion engine.
type Options struct {
	// KeywordCharacters lists the characters treated as punctuation
	// regardless of their Unicode category.
	KeywordCharacters string `toml:"keyword_characters" yaml:"keyword_characters"`

	// SnapToFirstNonBlankOnVerticalMotion makes vertical motions land
	// on the first non-blank character of the target line.
	SnapToFirstNonBlankOnVerticalMotion bool `toml:"snap_to_first_non_blank_on_vertical_motion" yaml:"snap_to_first_non_blank_on_vertical_motion"`

	// RespectIndentOnLineBegin makes line-begin motions land on the
	// first non-blank character instead of column 0.
	RespectIndentOnLineBegin bool `toml:"respect_indent_on_line_begin" yaml:"respect_indent_on_line_begin"`

	// WhitespaceBlankLines makes whitespace-only lines count as blank
	// for paragraph motions.
	WhitespaceBlankLines bool `toml:"whitespace_blank_lines" yaml:"whitespace_blank_lines"`

	// Keymap is the path to a user keymap file, empty for the
	// defaults.
	Keymap string `toml:"keymap" yaml:"keymap"`
}

// Default returns the built-in options.
func Default() Options {
	return Options{
		KeywordCharacters: DefaultKeywordCharacters,
	}
}

// MotionContext builds a motion context over src from the options.
// The classifier is rebuilt on every call; callers on a hot path
// should reuse the result while the options are unchanged.
func (o Options) MotionContext(src text.Source) motion.Context {
	return motion.Context{
		Source:                   src,
		Classifier:               classify.New(o.KeywordCharacters),
		SnapToFirstNonBlank:      o.SnapToFirstNonBlankOnVerticalMotion,
		RespectIndentOnLineBegin: o.RespectIndentOnLineBegin,
		WhitespaceBlankLines:     o.WhitespaceBlankLines,
	}
}
