package harness

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/strada-lang/stradabench/manifest"
)

func TestParseCheckpoints(t *testing.T) {
	input := "array size: 2000000\n" +
		"array checksum: 19999000000\n" +
		"regex result: Hello World, welcome to Strada on today\n"

	checkpoints, err := parseCheckpoints(strings.NewReader(input))
	if err != nil {
		t.Fatalf("parseCheckpoints failed: %v", err)
	}

	if len(checkpoints) != 3 {
		t.Fatalf("got %d checkpoints, want 3", len(checkpoints))
	}

	if checkpoints[0].Label != "array size" || checkpoints[0].Value != "2000000" {
		t.Errorf("checkpoint 0 = %+v", checkpoints[0])
	}

	// Values may contain commas and spaces; only the first ": " splits.
	if checkpoints[2].Label != "regex result" {
		t.Errorf("checkpoint 2 label = %q", checkpoints[2].Label)
	}
	if checkpoints[2].Value != "Hello World, welcome to Strada on today" {
		t.Errorf("checkpoint 2 value = %q", checkpoints[2].Value)
	}
}

func TestParseCheckpointsLabelWithParens(t *testing.T) {
	checkpoints, err := parseCheckpoints(strings.NewReader("ackermann(3,8): 2045\n"))
	if err != nil {
		t.Fatalf("parseCheckpoints failed: %v", err)
	}

	if checkpoints[0].Label != "ackermann(3,8)" || checkpoints[0].Value != "2045" {
		t.Errorf("checkpoint = %+v", checkpoints[0])
	}
}

func TestParseCheckpointsMalformed(t *testing.T) {
	tests := []string{
		"no separator here\n",
		"sum: 1\ngarbage\n",
		": 42\n",
	}

	for _, input := range tests {
		if _, err := parseCheckpoints(strings.NewReader(input)); err == nil {
			t.Errorf("expected error for %q", input)
		}
	}
}

func TestParseCheckpointsEmpty(t *testing.T) {
	if _, err := parseCheckpoints(strings.NewReader("")); err == nil {
		t.Error("expected error for empty output")
	}
}

func TestVerifyMatch(t *testing.T) {
	result := &Result{
		Category: "compute",
		Checkpoints: []Checkpoint{
			{Label: "sum", Value: "1250000025000000"},
			{Label: "fib(35)", Value: "9227465"},
		},
	}

	expected := []manifest.Expectation{
		{Label: "sum", Value: "1250000025000000"},
		{Label: "fib(35)", Value: "9227465"},
	}

	if mismatches := Verify(result, expected); len(mismatches) != 0 {
		t.Errorf("unexpected mismatches: %v", mismatches)
	}
}

func TestVerifyMismatches(t *testing.T) {
	expected := []manifest.Expectation{
		{Label: "sum", Value: "10"},
		{Label: "fib(35)", Value: "9227465"},
	}

	tests := []struct {
		name        string
		checkpoints []Checkpoint
		want        int
	}{
		{
			name: "wrong value",
			checkpoints: []Checkpoint{
				{Label: "sum", Value: "11"},
				{Label: "fib(35)", Value: "9227465"},
			},
			want: 1,
		},
		{
			name: "wrong label",
			checkpoints: []Checkpoint{
				{Label: "total", Value: "10"},
				{Label: "fib(35)", Value: "9227465"},
			},
			want: 1,
		},
		{
			name: "missing checkpoint",
			checkpoints: []Checkpoint{
				{Label: "sum", Value: "10"},
			},
			want: 1,
		},
		{
			name: "surplus checkpoint",
			checkpoints: []Checkpoint{
				{Label: "sum", Value: "10"},
				{Label: "fib(35)", Value: "9227465"},
				{Label: "extra", Value: "1"},
			},
			want: 1,
		},
		{
			name:        "everything missing",
			checkpoints: nil,
			want:        2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := &Result{Category: "compute", Checkpoints: tt.checkpoints}

			mismatches := Verify(result, expected)
			if len(mismatches) != tt.want {
				t.Errorf("got %d mismatches, want %d: %v",
					len(mismatches), tt.want, mismatches)
			}
		})
	}
}

func TestResolveBinary(t *testing.T) {
	got := ResolveBinary("bin", "oop")
	if !strings.HasSuffix(got, "bench-oop") {
		t.Errorf("ResolveBinary = %q", got)
	}
}

func TestFindModuleRoot(t *testing.T) {
	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, "go.mod"), []byte("module x\n"), 0o644); err != nil {
		t.Fatalf("write go.mod: %v", err)
	}

	nested := filepath.Join(root, "cmd", "oop")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	tests := []struct {
		name string
		dir  string
	}{
		{name: "from root", dir: root},
		{name: "from nested dir", dir: nested},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := findModuleRoot(tt.dir)
			if err != nil {
				t.Fatalf("findModuleRoot failed: %v", err)
			}
			if got != root {
				t.Errorf("findModuleRoot(%s) = %q, want %q", tt.dir, got, root)
			}
		})
	}
}

func TestFindModuleRootNotFound(t *testing.T) {
	if _, err := findModuleRoot(t.TempDir()); err == nil {
		t.Error("expected error outside any module")
	}
}
