// Container category benchmark: array append/index and hash
// insert/lookup/delete. Prints one checkpoint line per workload.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/strada-lang/stradabench/bench"
)

func main() {
	if err := bench.RunCategory("container", os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", filepath.Base(os.Args[0]), err)
		os.Exit(1)
	}
}
