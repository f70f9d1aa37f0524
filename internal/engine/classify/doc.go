// Package classify partitions line text into boundary runs for word
// motions.
//
// A Classifier is built once from the configured keyword-character set
// and shared read-only by every motion call; configuration changes
// produce a fresh Classifier instead of mutating a shared one. Four
// variants exist:
//
//   - VariantWord: maximal runs of word characters and, separately,
//     maximal runs of configured punctuation characters
//   - VariantBigWord: only whitespace separates runs
//   - VariantCamel: word runs further subdivided at case, digit and
//     underscore transitions
//   - VariantFilePath: the word rule with a fixed punctuation set of
//     quotes, brackets and separators
//
// Code points outside ASCII are classified by a fixed range table
// (general punctuation, superscript, subscript, Braille, CJK
// ideographs, Hiragana, Katakana, Hangul). Each kind forms its own run
// class, so a Hiragana run and an adjacent Latin run are always
// boundary-separated even without whitespace between them. Characters
// in the configured keyword set are forced into the punctuation class
// regardless of their Unicode kind.
//
// For any line, the ordered runs cover every character index exactly
// once: no gaps, no overlaps, zero runs for the empty line. Whitespace
// stretches are represented as ClassWhitespace runs, which the
// boundary searches skip.
package classify
