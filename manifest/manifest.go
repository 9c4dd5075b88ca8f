// Package manifest declares the benchmark catalog: which categories the
// suite runs and the checkpoint values each one must print. The embedded
// default covers the built-in categories; a TOML file can override it so
// modified workloads stay verifiable.
package manifest

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Expectation is one required checkpoint line, matched by label and
// rendered value in order of appearance.
type Expectation struct {
	Label string `toml:"label"`
	Value string `toml:"value"`
}

// Category lists the expected checkpoints of one workload category.
type Category struct {
	Name        string        `toml:"name"`
	Checkpoints []Expectation `toml:"checkpoints"`
}

// Manifest is the ordered catalog of categories.
type Manifest struct {
	Categories []Category `toml:"categories"`
}

// Default returns the catalog for the built-in workload categories. The
// values are the closed-form checksums of the fixed workload sizes.
func Default() *Manifest {
	return &Manifest{
		Categories: []Category{
			{
				Name: "container",
				Checkpoints: []Expectation{
					{Label: "array size", Value: "2000000"},
					{Label: "array checksum", Value: "19999000000"},
					{Label: "hash size", Value: "500000"},
					{Label: "lookup sum", Value: "124999750000"},
					{Label: "after delete", Value: "0"},
				},
			},
			{
				Name: "compute",
				Checkpoints: []Expectation{
					{Label: "sum", Value: "1250000025000000"},
					{Label: "fib(35)", Value: "9227465"},
				},
			},
			{
				Name: "functions",
				Checkpoints: []Expectation{
					{Label: "call sum", Value: "37500007500000"},
					{Label: "ackermann(3,8)", Value: "2045"},
				},
			},
			{
				Name: "oop",
				Checkpoints: []Expectation{
					{Label: "point sum", Value: "3283500000"},
					{Label: "point3d sum", Value: "4925250000"},
					{Label: "isa checks", Value: "200000"},
				},
			},
			{
				Name: "strings",
				Checkpoints: []Expectation{
					{Label: "concat len", Value: "2500000"},
					{Label: "split parts", Value: "800000"},
					{Label: "regex result", Value: "Hello World, welcome to Strada on today"},
				},
			},
		},
	}
}

// Load reads a manifest from a TOML file. Unknown keys are rejected so a
// typo in an expectation never silently weakens verification.
func Load(path string) (*Manifest, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("manifest file: %w", err)
	}

	var m Manifest

	meta, err := toml.DecodeFile(path, &m)
	if err != nil {
		return nil, fmt.Errorf("decode manifest %s: %w", path, err)
	}

	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("manifest %s: unknown key %q", path, undecoded[0].String())
	}

	if err := m.validate(); err != nil {
		return nil, fmt.Errorf("manifest %s: %w", path, err)
	}

	return &m, nil
}

func (m *Manifest) validate() error {
	if len(m.Categories) == 0 {
		return fmt.Errorf("no categories declared")
	}

	seen := make(map[string]bool, len(m.Categories))

	for _, c := range m.Categories {
		if c.Name == "" {
			return fmt.Errorf("category with empty name")
		}
		if seen[c.Name] {
			return fmt.Errorf("duplicate category %q", c.Name)
		}

		seen[c.Name] = true

		if len(c.Checkpoints) == 0 {
			return fmt.Errorf("category %q has no checkpoints", c.Name)
		}

		for _, e := range c.Checkpoints {
			if e.Label == "" {
				return fmt.Errorf("category %q has a checkpoint with empty label", c.Name)
			}
		}
	}

	return nil
}

// Lookup returns the expectations for the named category.
func (m *Manifest) Lookup(name string) (Category, bool) {
	for _, c := range m.Categories {
		if c.Name == name {
			return c, true
		}
	}

	return Category{}, false
}

// Names returns the category names in manifest order.
func (m *Manifest) Names() []string {
	names := make([]string, len(m.Categories))
	for i, c := range m.Categories {
		names[i] = c.Name
	}

	return names
}
