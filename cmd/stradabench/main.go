// Package main provides the CLI entry point for stradabench, the harness
// that runs the Strada runtime micro-benchmark categories.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/strada-lang/stradabench/bench"
	"github.com/strada-lang/stradabench/harness"
	"github.com/strada-lang/stradabench/manifest"
	"github.com/strada-lang/stradabench/report"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	root := newRootCmd(logger)
	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(logger *slog.Logger) *cobra.Command {
	root := &cobra.Command{
		Use:   "stradabench",
		Short: "Deterministic runtime micro-benchmark suite",
		Long: `Stradabench runs fixed-size workloads across five categories (container,
compute, functions, oop, strings), each as a separate cold process timed
externally, and verifies every printed checksum against the expected value.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(newRunCmd(logger))
	root.AddCommand(newListCmd())

	return root
}

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the registered workload categories",
		RunE: func(cmd *cobra.Command, _ []string) error {
			for _, name := range bench.Names() {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}

			return nil
		},
	}
}

func newRunCmd(logger *slog.Logger) *cobra.Command {
	var (
		categories   []string
		binDir       string
		manifestPath string
		timeout      time.Duration
		skipBuild    bool
		outputJSON   bool
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run benchmark categories and verify their checksums",
		Long: `Build the category binaries, run each one once in a fresh process,
measure wall-clock time, and compare every checkpoint line against the
manifest of expected values.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSuite(cmd.Context(), logger, suiteConfig{
				categories:   categories,
				binDir:       binDir,
				manifestPath: manifestPath,
				timeout:      timeout,
				skipBuild:    skipBuild,
				outputJSON:   outputJSON,
			})
		},
	}

	flags := cmd.Flags()
	flags.StringSliceVar(&categories, "categories", nil,
		"Categories to run (default: all)")
	flags.StringVar(&binDir, "bin-dir", "bin",
		"Directory for category binaries")
	flags.StringVar(&manifestPath, "manifest", "",
		"Path to a TOML manifest of expected checkpoints (default: built-in)")
	flags.DurationVar(&timeout, "timeout", 10*time.Minute,
		"Per-category execution timeout")
	flags.BoolVar(&skipBuild, "skip-build", false,
		"Skip building category binaries")
	flags.BoolVar(&outputJSON, "json", false,
		"Output results as JSON instead of a table")

	return cmd
}

type suiteConfig struct {
	categories   []string
	binDir       string
	manifestPath string
	timeout      time.Duration
	skipBuild    bool
	outputJSON   bool
}

func runSuite(
	ctx context.Context,
	logger *slog.Logger,
	cfg suiteConfig,
) error {
	m := manifest.Default()

	if cfg.manifestPath != "" {
		var err error

		m, err = manifest.Load(cfg.manifestPath)
		if err != nil {
			return fmt.Errorf("load manifest: %w", err)
		}
	}

	categories := cfg.categories
	if len(categories) == 0 {
		categories = m.Names()
	}

	for _, name := range categories {
		if _, ok := m.Lookup(name); !ok {
			return fmt.Errorf("unknown category %q", name)
		}
	}

	runID := uuid.NewString()

	logger.InfoContext(ctx, "starting suite",
		slog.String("run_id", runID),
		slog.Any("categories", categories),
	)

	// Step 1: Build category binaries (unless --skip-build).
	binaries := make(map[string]string, len(categories))

	for _, name := range categories {
		binPath := harness.ResolveBinary(cfg.binDir, name)

		if !cfg.skipBuild {
			var err error

			binPath, err = harness.Build(ctx, logger, cfg.binDir, name)
			if err != nil {
				return fmt.Errorf("build %s: %w", name, err)
			}
		}

		binaries[name] = binPath
	}

	// Step 2: Run each category sequentially and verify its checkpoints.
	results := make([]harness.Result, 0, len(categories))
	mismatched := 0

	for _, name := range categories {
		runner := harness.NewRunner(name, binaries[name], logger)

		result, err := runner.Run(ctx, harness.RunConfig{
			Timeout: cfg.timeout,
		})
		if err != nil {
			return fmt.Errorf("run %s: %w", name, err)
		}

		expected, _ := m.Lookup(name)

		result.Mismatches = harness.Verify(result, expected.Checkpoints)
		if len(result.Mismatches) > 0 {
			mismatched++
		}

		results = append(results, *result)
	}

	// Step 3: Generate report.
	if cfg.outputJSON {
		if err := report.GenerateJSON(os.Stdout, runID, results); err != nil {
			return fmt.Errorf("generate JSON report: %w", err)
		}
	} else {
		if err := report.Generate(os.Stdout, runID, results); err != nil {
			return fmt.Errorf("generate report: %w", err)
		}
	}

	if mismatched > 0 {
		return fmt.Errorf("checksum mismatch in %d of %d categories",
			mismatched, len(results))
	}

	logger.InfoContext(ctx, "suite complete",
		slog.String("run_id", runID),
		slog.Int("categories", len(results)),
	)

	return nil
}
