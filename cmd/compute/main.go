// Compute category benchmark: iterative summation and naive recursive
// fibonacci. Prints one checkpoint line per workload.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/strada-lang/stradabench/bench"
)

func main() {
	if err := bench.RunCategory("compute", os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", filepath.Base(os.Args[0]), err)
		os.Exit(1)
	}
}
