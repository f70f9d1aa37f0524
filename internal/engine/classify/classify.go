package classify

import (
	"strings"
	"unicode"
)

// Class tags a boundary run with the kind of characters it contains.
type Class uint8

const (
	// ClassWord is a run of word characters.
	ClassWord Class = iota

	// ClassPunctuation is a run of configured punctuation characters.
	ClassPunctuation

	// ClassWhitespace is a run of whitespace. Whitespace separates
	// runs of every other class and is skipped by boundary search.
	ClassWhitespace

	// ClassGeneralPunctuation covers the Unicode general punctuation
	// and CJK symbol blocks.
	ClassGeneralPunctuation

	// ClassSuperscript covers the superscript block.
	ClassSuperscript

	// ClassSubscript covers the subscript block.
	ClassSubscript

	// ClassBraille covers Braille patterns.
	ClassBraille

	// ClassCJKIdeograph covers CJK unified and compatibility
	// ideographs.
	ClassCJKIdeograph

	// ClassHiragana covers the Hiragana block.
	ClassHiragana

	// ClassKatakana covers the Katakana blocks.
	ClassKatakana

	// ClassHangul covers Hangul syllables.
	ClassHangul
)

// String returns the class name.
func (c Class) String() string {
	switch c {
	case ClassWord:
		return "word"
	case ClassPunctuation:
		return "punctuation"
	case ClassWhitespace:
		return "whitespace"
	case ClassGeneralPunctuation:
		return "generalPunctuation"
	case ClassSuperscript:
		return "superscript"
	case ClassSubscript:
		return "subscript"
	case ClassBraille:
		return "braille"
	case ClassCJKIdeograph:
		return "cjkIdeograph"
	case ClassHiragana:
		return "hiragana"
	case ClassKatakana:
		return "katakana"
	case ClassHangul:
		return "hangul"
	default:
		return "unknown"
	}
}

// Variant selects one of the four run-partitioning rules.
type Variant uint8

const (
	// VariantWord uses the configured keyword-character split.
	VariantWord Variant = iota

	// VariantBigWord treats everything non-whitespace as one kind.
	VariantBigWord

	// VariantCamel subdivides word runs at identifier transitions.
	VariantCamel

	// VariantFilePath uses a fixed punctuation set of quotes,
	// brackets and separators.
	VariantFilePath
)

// String returns the variant name.
func (v Variant) String() string {
	switch v {
	case VariantWord:
		return "word"
	case VariantBigWord:
		return "bigword"
	case VariantCamel:
		return "camel"
	case VariantFilePath:
		return "filepath"
	default:
		return "unknown"
	}
}

// filePathPunctuation is the fixed separator set for VariantFilePath.
const filePathPunctuation = "\"'`;:,{}()[]<>|"

// unicodeRanges maps code point ranges to run classes. Whitespace is
// classified before this table applies, so the space code points
// inside the general punctuation block never reach it.
var unicodeRanges = []struct {
	lo, hi rune
	class  Class
}{
	{0x2000, 0x206F, ClassGeneralPunctuation}, // General Punctuation
	{0x2070, 0x207F, ClassSuperscript},        // Superscripts
	{0x2080, 0x209F, ClassSubscript},          // Subscripts
	{0x2800, 0x28FF, ClassBraille},            // Braille Patterns
	{0x3000, 0x303F, ClassGeneralPunctuation}, // CJK Symbols and Punctuation
	{0x3040, 0x309F, ClassHiragana},           // Hiragana
	{0x30A0, 0x30FF, ClassKatakana},           // Katakana
	{0x3400, 0x4DBF, ClassCJKIdeograph},       // CJK Extension A
	{0x4E00, 0x9FFF, ClassCJKIdeograph},       // CJK Unified Ideographs
	{0xAC00, 0xD7AF, ClassHangul},             // Hangul Syllables
	{0xF900, 0xFAFF, ClassCJKIdeograph},       // CJK Compatibility Ideographs
	{0xFF66, 0xFF9D, ClassKatakana},           // Halfwidth Katakana
}

func unicodeClassOf(r rune) (Class, bool) {
	for _, rng := range unicodeRanges {
		if r >= rng.lo && r <= rng.hi {
			return rng.class, true
		}
	}
	return ClassWord, false
}

// Classifier partitions line text into boundary runs. It is immutable
// once built and safe for concurrent use.
type Classifier struct {
	punctuation map[rune]struct{}
	camel       *camelMatcher
}

// New builds a Classifier from the keyword-character configuration.
// The characters of keywordCharacters form the punctuation class for
// VariantWord and VariantCamel; every other non-whitespace character
// outside the Unicode range table counts as a word character.
func New(keywordCharacters string) *Classifier {
	punct := make(map[rune]struct{}, len(keywordCharacters))
	for _, r := range keywordCharacters {
		punct[r] = struct{}{}
	}
	return &Classifier{
		punctuation: punct,
		camel:       newCamelMatcher(),
	}
}

// classOf classifies a single rune under the given variant.
func (c *Classifier) classOf(r rune, v Variant) Class {
	if unicode.IsSpace(r) {
		return ClassWhitespace
	}
	if v == VariantBigWord {
		// Only whitespace separates bigwords.
		return ClassWord
	}
	if v == VariantFilePath {
		if strings.ContainsRune(filePathPunctuation, r) {
			return ClassPunctuation
		}
	} else if _, ok := c.punctuation[r]; ok {
		// Configured characters override the Unicode kind.
		return ClassPunctuation
	}
	if class, ok := unicodeClassOf(r); ok {
		return class
	}
	return ClassWord
}
