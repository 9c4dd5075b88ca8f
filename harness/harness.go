package harness

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os/exec"
	"strings"
	"time"
)

// RunConfig holds parameters for a single category execution.
type RunConfig struct {
	Timeout time.Duration
}

// Runner launches and manages a single category binary. The binaries take
// no arguments, read nothing, and speak only checkpoint lines on stdout.
type Runner struct {
	Name       string
	BinaryPath string
	Logger     *slog.Logger
}

// NewRunner creates a Runner for the named category.
func NewRunner(name, binaryPath string, logger *slog.Logger) *Runner {
	return &Runner{
		Name:       name,
		BinaryPath: binaryPath,
		Logger:     logger.With(slog.String("category", name)),
	}
}

// Run executes the category binary once, measures its wall time, and
// parses its stdout into checkpoints. A non-zero exit or malformed output
// is an error carrying the binary's stderr.
func (r *Runner) Run(ctx context.Context, cfg RunConfig) (*Result, error) {
	if cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.Timeout)
		defer cancel()
	}

	cmd := exec.CommandContext(ctx, r.BinaryPath)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	r.Logger.Info("starting category",
		slog.String("binary", r.BinaryPath),
	)

	wallStart := time.Now()

	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf(
			"category %s failed: %w\nstderr: %s",
			r.Name, err, stderr.String(),
		)
	}

	wallElapsed := time.Since(wallStart)

	r.Logger.Info("category finished",
		slog.Duration("wall_time", wallElapsed),
	)

	checkpoints, err := parseCheckpoints(&stdout)
	if err != nil {
		return nil, fmt.Errorf(
			"parse %s output: %w\nstdout: %s",
			r.Name, err, stdout.String(),
		)
	}

	return &Result{
		Category:    r.Name,
		Checkpoints: checkpoints,
		ElapsedMs:   wallElapsed.Milliseconds(),
	}, nil
}

// parseCheckpoints reads "<label>: <value>" lines. Values may contain
// anything except the first ": " separator, which never appears inside a
// label.
func parseCheckpoints(r io.Reader) ([]Checkpoint, error) {
	var checkpoints []Checkpoint

	scanner := bufio.NewScanner(r)
	lineNum := 0

	for scanner.Scan() {
		lineNum++
		line := scanner.Text()

		if line == "" {
			continue
		}

		label, value, found := strings.Cut(line, ": ")
		if !found || label == "" {
			return nil, fmt.Errorf("line %d: malformed checkpoint %q", lineNum, line)
		}

		checkpoints = append(checkpoints, Checkpoint{Label: label, Value: value})
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan output: %w", err)
	}

	if len(checkpoints) == 0 {
		return nil, fmt.Errorf("no checkpoints emitted")
	}

	return checkpoints, nil
}
