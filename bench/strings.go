package bench

import (
	"io"
	"strings"
)

const (
	concatRepeats = 500_000
	concatUnit    = "hello"
	splitRepeats  = 100_000
	splitInput    = "alpha,bravo,charlie,delta,echo,foxtrot,golf,hotel"
	substRepeats  = 200_000
	substTemplate = "Hello NAME, welcome to PLACE on DATE"
)

// RunStrings exercises string concatenation, splitting, and template
// substitution.
func RunStrings(w io.Writer) error {
	if err := emit(w, "concat len", len(concat(concatRepeats))); err != nil {
		return err
	}

	if err := emit(w, "split parts", splitParts(splitRepeats)); err != nil {
		return err
	}

	return emit(w, "regex result", substitute(substRepeats))
}

func concat(n int) string {
	var b strings.Builder
	for i := 0; i < n; i++ {
		b.WriteString(concatUnit)
	}

	return b.String()
}

func splitParts(n int) int {
	total := 0

	for j := 0; j < n; j++ {
		parts := strings.Split(splitInput, ",")
		total += len(parts)
	}

	return total
}

// substitute runs n independent substitution passes over the template,
// replacing each placeholder exactly once in NAME, PLACE, DATE order, and
// returns the last pass's output. The placeholders are fixed literals, so
// literal replacement stands in for the original's compiled patterns.
func substitute(n int) string {
	var result string

	for m := 0; m < n; m++ {
		result = substTemplate
		result = strings.Replace(result, "NAME", "World", 1)
		result = strings.Replace(result, "PLACE", "Strada", 1)
		result = strings.Replace(result, "DATE", "today", 1)
	}

	return result
}
