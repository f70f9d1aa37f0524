package config

import (
	"fmt"
	"os"
	"strconv"
)

// Environment variables recognized by ApplyEnv.
const (
	EnvKeywordCharacters    = "SELKIE_KEYWORD_CHARACTERS"
	EnvSnapToFirstNonBlank  = "SELKIE_SNAP_TO_FIRST_NON_BLANK"
	EnvRespectIndent        = "SELKIE_RESPECT_INDENT_ON_LINE_BEGIN"
	EnvWhitespaceBlankLines = "SELKIE_WHITESPACE_BLANK_LINES"
	EnvKeymap               = "SELKIE_KEYMAP"
)

// ApplyEnv overlays SELKIE_* environment variables onto the options.
// Environment values win over the file.
func ApplyEnv(o Options) (Options, error) {
	if v, ok := os.LookupEnv(EnvKeywordCharacters); ok {
		o.KeywordCharacters = v
	}
	if v, ok := os.LookupEnv(EnvKeymap); ok {
		o.Keymap = v
	}

	for _, entry := range []struct {
		name string
		dst  *bool
	}{
		{EnvSnapToFirstNonBlank, &o.SnapToFirstNonBlankOnVerticalMotion},
		{EnvRespectIndent, &o.RespectIndentOnLineBegin},
		{EnvWhitespaceBlankLines, &o.WhitespaceBlankLines},
	} {
		v, ok := os.LookupEnv(entry.name)
		if !ok {
			continue
		}
		parsed, err := strconv.ParseBool(v)
		if err != nil {
			return o, fmt.Errorf("%s=%q: %w", entry.name, v, ErrInvalidValue)
		}
		*entry.dst = parsed
	}
	return o, nil
}
