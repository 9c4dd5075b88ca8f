// Package report formats benchmark run results into comparison tables.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/strada-lang/stradabench/harness"
)

// Report is the JSON output envelope for one suite run.
type Report struct {
	RunID       string           `json:"run_id"`
	GeneratedAt time.Time        `json:"generated_at"`
	Results     []harness.Result `json:"results"`
}

// Generate writes a markdown report for the given results.
func Generate(w io.Writer, runID string, results []harness.Result) error {
	if len(results) == 0 {
		return fmt.Errorf("no results to report")
	}

	badCategories := countMismatched(results)
	totalMs := totalElapsed(results)

	// Header.
	fmt.Fprintln(w, "## Benchmark Results")
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Run: %s\n", runID)
	fmt.Fprintln(w)

	// Checksum verification.
	if badCategories == 0 {
		fmt.Fprintln(w, "Checksums: **all verified**")
	} else {
		fmt.Fprintf(w, "Checksums: **MISMATCH** in %d categories\n", badCategories)

		for _, r := range results {
			for _, m := range r.Mismatches {
				fmt.Fprintf(w, "  - %s: %s\n", r.Category, m)
			}
		}
	}

	fmt.Fprintln(w)

	// Summary table.
	fmt.Fprintln(w, "| Category | Checkpoints | Elapsed | Share |")
	fmt.Fprintln(w, "|----------|-------------|---------|-------|")

	for _, r := range results {
		share := 0.0
		if totalMs > 0 {
			share = 100 * float64(r.ElapsedMs) / float64(totalMs)
		}

		fmt.Fprintf(w, "| %s | %d | %s | %.1f%% |\n",
			r.Category,
			len(r.Checkpoints),
			formatMs(r.ElapsedMs),
			share,
		)
	}

	fmt.Fprintf(w, "| total | | %s | |\n", formatMs(totalMs))

	fmt.Fprintln(w)

	// Checkpoint detail.
	fmt.Fprintln(w, "| Category | Checkpoint | Value |")
	fmt.Fprintln(w, "|----------|------------|-------|")

	for _, r := range results {
		for _, c := range r.Checkpoints {
			fmt.Fprintf(w, "| %s | %s | %s |\n", r.Category, c.Label, c.Value)
		}
	}

	return nil
}

// GenerateJSON writes the run as indented JSON to w.
func GenerateJSON(w io.Writer, runID string, results []harness.Result) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(Report{
		RunID:       runID,
		GeneratedAt: time.Now().UTC(),
		Results:     results,
	})
}

func countMismatched(results []harness.Result) int {
	count := 0

	for _, r := range results {
		if len(r.Mismatches) > 0 {
			count++
		}
	}

	return count
}

func totalElapsed(results []harness.Result) int64 {
	var total int64
	for _, r := range results {
		total += r.ElapsedMs
	}

	return total
}

func formatMs(ms int64) string {
	if ms < 1000 {
		return fmt.Sprintf("%dms", ms)
	}

	return fmt.Sprintf("%.2fs", float64(ms)/1000)
}
