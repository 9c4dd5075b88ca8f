// Package harness builds and executes the per-category benchmark
// binaries, times them externally, and verifies their checkpoint output.
package harness

import (
	"fmt"

	"github.com/strada-lang/stradabench/manifest"
)

// Checkpoint is one parsed "<label>: <value>" line of category output.
type Checkpoint struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// Result holds the outcome of one category execution. ElapsedMs is wall
// time measured by the harness; the category binaries never time
// themselves.
type Result struct {
	Category    string       `json:"category"`
	Checkpoints []Checkpoint `json:"checkpoints"`
	ElapsedMs   int64        `json:"elapsed_ms"`
	Mismatches  []Mismatch   `json:"mismatches,omitempty"`
}

// Mismatch records one checkpoint that deviated from its expectation.
type Mismatch struct {
	Label string `json:"label"`
	Want  string `json:"want"`
	Got   string `json:"got"`
}

func (m Mismatch) String() string {
	return fmt.Sprintf("%s: got %q, want %q", m.Label, m.Got, m.Want)
}

// Verify compares a result's checkpoints against the expected sequence,
// in order. Labels and values must both match; missing and surplus
// checkpoints are reported as mismatches.
func Verify(r *Result, expected []manifest.Expectation) []Mismatch {
	var mismatches []Mismatch

	n := len(r.Checkpoints)
	if len(expected) < n {
		n = len(expected)
	}

	for i := 0; i < n; i++ {
		got := r.Checkpoints[i]
		want := expected[i]

		if got.Label != want.Label || got.Value != want.Value {
			mismatches = append(mismatches, Mismatch{
				Label: want.Label,
				Want:  want.Value,
				Got:   fmt.Sprintf("%s: %s", got.Label, got.Value),
			})
		}
	}

	for _, want := range expected[n:] {
		mismatches = append(mismatches, Mismatch{
			Label: want.Label,
			Want:  want.Value,
			Got:   "<missing>",
		})
	}

	for _, got := range r.Checkpoints[n:] {
		mismatches = append(mismatches, Mismatch{
			Label: got.Label,
			Want:  "<no further output>",
			Got:   fmt.Sprintf("%s: %s", got.Label, got.Value),
		})
	}

	return mismatches
}
