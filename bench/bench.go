// Package bench implements the deterministic workload categories of the
// Strada runtime micro-benchmark suite. Each category is a fixed sequence
// of workloads with hard-coded input sizes; every workload produces a
// checksum that is printed as a checkpoint line the moment the workload
// completes, so an external harness can verify correctness independent of
// timing. The categories never time themselves.
package bench

import (
	"fmt"
	"io"
)

// Checkpoint is one verifiable output of a workload, emitted on stdout
// as "<label>: <value>".
type Checkpoint struct {
	Label string
	Value string
}

// Category is one independently executable workload group. Run executes
// its workloads in fixed order, writing one checkpoint line to w after
// each. A returned error indicates an implementation defect (e.g. a
// missing hash key) and must terminate the process with a non-zero exit.
type Category struct {
	Name string
	Run  func(w io.Writer) error
}

// Categories is the fixed catalog of workload categories, in the order
// the suite runs them.
var Categories = []Category{
	{Name: "container", Run: RunContainer},
	{Name: "compute", Run: RunCompute},
	{Name: "functions", Run: RunFunctions},
	{Name: "oop", Run: RunOOP},
	{Name: "strings", Run: RunStrings},
}

// Lookup returns the category with the given name.
func Lookup(name string) (Category, bool) {
	for _, c := range Categories {
		if c.Name == name {
			return c, true
		}
	}

	return Category{}, false
}

// RunCategory runs the named category against w. It is the shared body
// of the per-category binaries.
func RunCategory(name string, w io.Writer) error {
	cat, ok := Lookup(name)
	if !ok {
		return fmt.Errorf("category %q not registered", name)
	}

	return cat.Run(w)
}

// Names returns the category names in catalog order.
func Names() []string {
	names := make([]string, len(Categories))
	for i, c := range Categories {
		names[i] = c.Name
	}

	return names
}

func emit(w io.Writer, label string, value any) error {
	if _, err := fmt.Fprintf(w, "%s: %v\n", label, value); err != nil {
		return fmt.Errorf("emit %s: %w", label, err)
	}

	return nil
}
