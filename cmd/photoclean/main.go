// Command photoclean reconciles a RAW photo tree against a JPEG tree and
// deletes JPEGs according to whether a RAW counterpart exists.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	cli "github.com/urfave/cli/v3"

	"github.com/backmassage/photoclean/internal/config"
	"github.com/backmassage/photoclean/internal/display"
	"github.com/backmassage/photoclean/internal/logging"
	"github.com/backmassage/photoclean/internal/pipeline"
)

// version and commit are injected at build time via -ldflags.
var (
	version = "1.0.0"
	commit  = "unknown"
)

func main() {
	// Cancel between files on SIGINT/SIGTERM; a single os.Remove is atomic,
	// so stopping mid-run never leaves partial state.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := newRootCommand().Run(ctx, os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "photoclean: %v\n", err)
		os.Exit(1)
	}
}

// newRootCommand assembles the CLI command tree.
func newRootCommand() *cli.Command {
	return &cli.Command{
		Name:    "photoclean",
		Usage:   "Reconcile a RAW photo tree against its JPEG tree",
		Version: version,
		Commands: []*cli.Command{
			cleanCommand(),
			cleanMatchedCommand(),
		},
	}
}

func cleanCommand() *cli.Command {
	return &cli.Command{
		Name:  "clean",
		Usage: "Delete JPEGs that have no matching RAW file",
		Flags: reconcileFlags(),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return runReconcile(ctx, cmd, config.ModeOrphans)
		},
	}
}

func cleanMatchedCommand() *cli.Command {
	return &cli.Command{
		Name:  "clean-matched",
		Usage: "Delete JPEGs that have a matching RAW file (inverse of clean)",
		Flags: reconcileFlags(),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return runReconcile(ctx, cmd, config.ModeMatched)
		},
	}
}

// reconcileFlags returns the flag set shared by both subcommands.
func reconcileFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:     "raw",
			Aliases:  []string{"r"},
			Usage:    "Root of the RAW tree",
			Required: true,
		},
		&cli.StringFlag{
			Name:     "compressed",
			Aliases:  []string{"c"},
			Usage:    "Root of the JPEG tree",
			Required: true,
		},
		&cli.BoolFlag{
			Name:  "dry",
			Usage: "Preview only; do not delete anything",
		},
		&cli.BoolFlag{
			Name:    "verbose",
			Aliases: []string{"v"},
			Usage:   "Also print files that are kept",
		},
		&cli.BoolFlag{
			Name:  "summary-only",
			Usage: "Suppress per-file lines, print only the summary",
		},
		&cli.BoolFlag{
			Name:  "color",
			Usage: "Force colored logs",
		},
		&cli.BoolFlag{
			Name:  "no-color",
			Usage: "Disable colored logs",
		},
		&cli.StringFlag{
			Name:    "log",
			Aliases: []string{"l"},
			Usage:   "Append logs to file",
		},
	}
}

// runReconcile builds the Config from flags, validates the roots, and runs
// the pipeline. It returns an error only for fatal conditions (bad flags,
// missing or nested roots, failed root walk); per-file delete failures are
// reported in the summary and keep the exit status at zero.
func runReconcile(ctx context.Context, cmd *cli.Command, mode config.Mode) error {
	cfg := config.DefaultConfig()
	cfg.Mode = mode
	cfg.RawDir = config.NormalizeDirArg(cmd.String("raw"))
	cfg.CompressedDir = config.NormalizeDirArg(cmd.String("compressed"))
	cfg.DryRun = cmd.Bool("dry")
	cfg.Verbose = cmd.Bool("verbose")
	cfg.SummaryOnly = cmd.Bool("summary-only")
	cfg.LogFile = cmd.String("log")
	if cmd.Bool("no-color") {
		cfg.ColorMode = config.ColorNever
	} else if cmd.Bool("color") {
		cfg.ColorMode = config.ColorAlways
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	log, err := logging.NewLogger(&cfg)
	if err != nil {
		return err
	}
	defer log.Close()

	display.PrintBanner()

	// Resolve and validate paths: both roots must exist, and neither may
	// contain the other (the delete pass must never reach the RAW tree).
	rawAbs, err := absPath(cfg.RawDir)
	if err != nil {
		return fmt.Errorf("RAW root: %w", err)
	}
	jpegAbs, err := absPath(cfg.CompressedDir)
	if err != nil {
		return fmt.Errorf("JPEG root: %w", err)
	}
	if err := cfg.ValidatePaths(rawAbs, jpegAbs); err != nil {
		return err
	}
	cfg.RawDir = rawAbs
	cfg.CompressedDir = jpegAbs

	log.Info("=== photoclean v%s (%s) ===", version, commit)
	log.Info("RAW:  %s", cfg.RawDir)
	log.Info("JPEG: %s", cfg.CompressedDir)
	log.Info("Mode: %s", cfg.Mode)
	if cfg.DryRun {
		log.Warn("DRY RUN — no files will be deleted")
	}
	log.Info("")

	if _, err := pipeline.Run(ctx, &cfg, log); err != nil {
		return err
	}
	return nil
}

// absPath returns the absolute, symlink-resolved path. It fails when the
// path does not exist, which doubles as the existence check for both roots.
func absPath(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	resolved, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return "", err
	}
	fi, err := os.Stat(resolved)
	if err != nil {
		return "", err
	}
	if !fi.IsDir() {
		return "", fmt.Errorf("not a directory: %s", resolved)
	}
	return resolved, nil
}
