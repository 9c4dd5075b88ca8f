package harness

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
)

// ResolveBinary returns the expected binary path for a category given the
// build output directory.
func ResolveBinary(binDir, category string) string {
	return filepath.Join(binDir, "bench-"+category)
}

// Build compiles the binary for the given category from the module's
// cmd/<category> package into binDir.
func Build(
	ctx context.Context,
	logger *slog.Logger,
	binDir string,
	category string,
) (string, error) {
	binPath, err := filepath.Abs(ResolveBinary(binDir, category))
	if err != nil {
		return "", fmt.Errorf("resolve binary path: %w", err)
	}

	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("getwd: %w", err)
	}

	moduleRoot, err := findModuleRoot(wd)
	if err != nil {
		return "", fmt.Errorf("locate module root: %w", err)
	}

	logger.InfoContext(ctx, "building category",
		slog.String("category", category),
		slog.String("binary", binPath),
	)

	cmd := exec.CommandContext(
		ctx, "go", "build", "-o", binPath, "./cmd/"+category,
	)
	cmd.Dir = moduleRoot
	cmd.Stdout = os.Stderr
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("build %s: %w", category, err)
	}

	if _, err := os.Stat(binPath); err != nil {
		return "", fmt.Errorf(
			"build %s: binary not found at %s", category, binPath,
		)
	}

	return binPath, nil
}

// findModuleRoot walks up from dir to the directory containing go.mod,
// so category builds resolve the cmd/ packages no matter where the
// harness is invoked from.
func findModuleRoot(dir string) (string, error) {
	start := dir

	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("go.mod not found in %s or any parent", start)
		}

		dir = parent
	}
}
