package classify

// Run is a maximal contiguous span of one class. Start and End are
// rune indices into the line, End exclusive.
type Run struct {
	Class Class
	Start int
	End   int
	Text  string
}

// Runs partitions line into ordered, gap-free, non-overlapping runs
// under the given variant. The empty line yields no runs. Under
// VariantCamel, word runs are further subdivided at identifier
// transitions.
func (c *Classifier) Runs(v Variant, line string) []Run {
	runes := []rune(line)
	if len(runes) == 0 {
		return nil
	}

	runs := make([]Run, 0, 8)
	i := 0
	for i < len(runes) {
		run := c.scanRun(runes, i, v)
		if run.End <= run.Start {
			// A zero-length match must not stall the scan; force the
			// cursor forward to guarantee termination.
			i++
			continue
		}
		if v == VariantCamel && run.Class == ClassWord {
			runs = append(runs, c.splitCamel(runes, run)...)
		} else {
			runs = append(runs, run)
		}
		i = run.End
	}
	return runs
}

// scanRun reads the maximal run starting at index i.
func (c *Classifier) scanRun(runes []rune, i int, v Variant) Run {
	class := c.classOf(runes[i], v)
	end := i + 1
	for end < len(runes) && c.classOf(runes[end], v) == class {
		end++
	}
	return Run{Class: class, Start: i, End: end, Text: string(runes[i:end])}
}

// splitCamel subdivides a word run at camel transitions.
func (c *Classifier) splitCamel(runes []rune, run Run) []Run {
	word := runes[run.Start:run.End]
	boundaries := c.camel.boundaries(word)
	if len(boundaries) == 0 {
		return []Run{run}
	}

	parts := make([]Run, 0, len(boundaries)+1)
	prev := 0
	for _, b := range boundaries {
		if b <= prev || b >= len(word) {
			continue
		}
		parts = append(parts, Run{
			Class: ClassWord,
			Start: run.Start + prev,
			End:   run.Start + b,
			Text:  string(word[prev:b]),
		})
		prev = b
	}
	parts = append(parts, Run{
		Class: ClassWord,
		Start: run.Start + prev,
		End:   run.End,
		Text:  string(word[prev:]),
	})
	return parts
}

// StartPositions returns the rune indices where non-whitespace runs
// begin, in ascending order.
func (c *Classifier) StartPositions(v Variant, line string) []int {
	var starts []int
	for _, run := range c.Runs(v, line) {
		if run.Class == ClassWhitespace {
			continue
		}
		starts = append(starts, run.Start)
	}
	return starts
}

// EndPositions returns the rune indices of the last character of each
// non-whitespace run, in ascending order.
func (c *Classifier) EndPositions(v Variant, line string) []int {
	var ends []int
	for _, run := range c.Runs(v, line) {
		if run.Class == ClassWhitespace {
			continue
		}
		ends = append(ends, run.End-1)
	}
	return ends
}
