package text

import "github.com/rivo/uniseg"

// Graphemes splits s into user-perceived characters (grapheme
// clusters). Display layers use this to place a cursor on cluster
// boundaries instead of raw runes.
func Graphemes(s string) []string {
	if s == "" {
		return nil
	}
	clusters := make([]string, 0, len(s))
	state := -1
	for len(s) > 0 {
		var cluster string
		cluster, s, _, state = uniseg.FirstGraphemeClusterInString(s, state)
		clusters = append(clusters, cluster)
	}
	return clusters
}

// DisplayWidth returns the monospace cell width of s.
func DisplayWidth(s string) int {
	return uniseg.StringWidth(s)
}

// PrefixWidth returns the monospace cell width of the first chars
// runes of line. It is used to translate a Position's character index
// into a screen column.
func PrefixWidth(line string, chars int) int {
	if chars <= 0 {
		return 0
	}
	col := 0
	width := 0
	for _, r := range line {
		if col >= chars {
			break
		}
		width += uniseg.StringWidth(string(r))
		col++
	}
	return width
}
