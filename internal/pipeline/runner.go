// Package pipeline orchestrates the two-pass reconcile: index the RAW tree,
// then walk the JPEG tree classifying each file and applying the deletion
// policy, with per-file and summary reporting.
//
// Per-file output policy: delete, would-delete, and delete-failed lines
// print whenever SummaryOnly is off; kept-file lines additionally require
// Verbose. SummaryOnly suppresses every per-file line, Verbose included.
package pipeline

import (
	"context"
	"fmt"
	"os"

	"github.com/backmassage/photoclean/internal/config"
	"github.com/backmassage/photoclean/internal/display"
	"github.com/backmassage/photoclean/internal/index"
	"github.com/backmassage/photoclean/internal/logging"
	"github.com/backmassage/photoclean/internal/planner"
	"github.com/backmassage/photoclean/internal/scan"
)

// Run is the top-level entry point. The index pass completes before the
// match pass begins: any JPEG may match any RAW regardless of discovery
// order. A non-nil error means a root walk failed and nothing (more) was
// deleted; per-file delete failures are counted in the stats instead.
func Run(ctx context.Context, cfg *config.Config, log *logging.Logger) (RunStats, error) {
	var stats RunStats

	// --- Index pass ---
	rawEntries, rawSkipped, err := scan.Walk(cfg.RawDir, scan.RawExtensions)
	if err != nil {
		return stats, fmt.Errorf("indexing RAW tree %s: %w", cfg.RawDir, err)
	}
	ix := index.Build(rawEntries)
	stats.RawIndexed = ix.Files()
	stats.SkippedDirs += rawSkipped

	log.Info("Indexed %d RAW files (%d distinct keys)", ix.Files(), ix.Len())
	if rawSkipped > 0 {
		log.Warn("Skipped %d unreadable subdirectories in the RAW tree", rawSkipped)
	}

	// --- Match pass ---
	jpegEntries, jpegSkipped, err := scan.Walk(cfg.CompressedDir, scan.JpegExtensions)
	if err != nil {
		return stats, fmt.Errorf("walking JPEG tree %s: %w", cfg.CompressedDir, err)
	}
	stats.Scanned = len(jpegEntries)
	stats.SkippedDirs += jpegSkipped

	log.Info("Found %d JPEG files", stats.Scanned)
	if jpegSkipped > 0 {
		log.Warn("Skipped %d unreadable subdirectories in the JPEG tree", jpegSkipped)
	}

	for _, e := range jpegEntries {
		if ctx.Err() != nil {
			log.Warn("Interrupted")
			break
		}
		processEntry(cfg, log, ix, e, &stats)
	}

	logSummary(cfg, log, &stats)
	return stats, nil
}

// processEntry classifies one JPEG and applies the deletion policy.
// Per file: Discovered → Classified → {Skipped | Deleted | WouldDelete |
// DeleteFailed}; delete failures never abort the run.
func processEntry(
	cfg *config.Config,
	log *logging.Logger,
	ix *index.RawIndex,
	e scan.FileEntry,
	stats *RunStats,
) {
	class := planner.Classify(ix, e)
	switch class {
	case planner.Matched:
		stats.Matched++
	case planner.Orphaned:
		stats.Orphaned++
	}

	plan := planner.BuildPlan(cfg.Mode, e, class)

	if plan.Action == planner.ActionKeep {
		if !cfg.SummaryOnly {
			log.Debug(cfg.Verbose, "Keep (%s): %s", class, e.AbsPath)
		}
		return
	}

	if cfg.DryRun {
		stats.WouldDelete++
		stats.BytesReclaimed += e.Size
		if !cfg.SummaryOnly {
			log.Info("[DRY] Would delete (%s): %s", class, e.AbsPath)
		}
		return
	}

	if err := os.Remove(e.AbsPath); err != nil {
		stats.DeleteErrors++
		if !cfg.SummaryOnly {
			log.Error("Delete failed: %s: %v", e.AbsPath, err)
		}
		return
	}
	stats.Deleted++
	stats.BytesReclaimed += e.Size
	if !cfg.SummaryOnly {
		log.Info("Deleted (%s): %s", class, e.AbsPath)
	}
}

func logSummary(cfg *config.Config, log *logging.Logger, stats *RunStats) {
	log.Info("==============================")
	log.Info("Summary:")
	log.Info("  JPEGs scanned:   %d", stats.Scanned)
	log.Info("  Matched:         %d", stats.Matched)
	log.Info("  Orphaned:        %d", stats.Orphaned)

	if cfg.DryRun {
		log.Info("  Would delete:    %d", stats.WouldDelete)
		log.Info("  Space reclaimed: n/a (dry run; %s would be freed)",
			display.FormatBytes(stats.BytesReclaimed))
	} else {
		log.Info("  Deleted:         %d", stats.Deleted)
		log.Success("  Space reclaimed: %s", display.FormatBytes(stats.BytesReclaimed))
	}

	if stats.DeleteErrors > 0 {
		log.Warn("  Delete errors:   %d", stats.DeleteErrors)
	}
	if stats.SkippedDirs > 0 {
		log.Warn("  Unreadable subdirectories skipped: %d", stats.SkippedDirs)
	}
}
