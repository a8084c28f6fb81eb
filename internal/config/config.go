// Package config holds runtime configuration: defaults, enum types shared
// across packages, and validation.
package config

import (
	"errors"
	"path/filepath"
	"strings"
)

// --- Enum types for validated string fields ---

// Mode selects which side of the match partition gets deleted.
type Mode string

const (
	ModeOrphans Mode = "orphans" // Delete JPEGs with no RAW counterpart (the "clean" subcommand).
	ModeMatched Mode = "matched" // Delete JPEGs that have a RAW counterpart (the "clean-matched" subcommand).
)

// ColorMode controls ANSI color output.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"   // Enable colors when stdout is a TTY (default).
	ColorAlways ColorMode = "always" // Force colors on.
	ColorNever  ColorMode = "never"  // Disable colors entirely.
)

// Config holds all runtime settings. It is populated by [DefaultConfig] and
// then mutated by the CLI layer before being passed (by pointer) to packages
// that need it.
type Config struct {
	// Paths (set from --raw / --compressed).
	RawDir        string
	CompressedDir string

	// Reconcile behavior.
	Mode   Mode
	DryRun bool

	// Display and logging.
	Verbose     bool
	SummaryOnly bool // Suppress per-file lines regardless of Verbose.
	ColorMode   ColorMode
	LogFile     string // Optional log file path.
}

// DefaultConfig returns a Config with all defaults. Used as the base before
// the CLI layer applies flag values.
func DefaultConfig() Config {
	return Config{
		Mode:        ModeOrphans,
		DryRun:      false,
		Verbose:     false,
		SummaryOnly: false,
		ColorMode:   ColorAuto,
	}
}

// NormalizeDirArg strips trailing slashes from a directory path.
// The filesystem root "/" is returned unchanged so we don't produce an empty string.
func NormalizeDirArg(path string) string {
	if path == "/" {
		return "/"
	}
	return strings.TrimRight(path, "/")
}

// Validate checks that enum fields hold valid values and that both root
// paths are non-empty.
func (c *Config) Validate() error {
	switch c.Mode {
	case ModeOrphans, ModeMatched:
		// valid
	default:
		return errors.New("invalid mode (use 'orphans' or 'matched')")
	}

	switch c.ColorMode {
	case ColorAuto, ColorAlways, ColorNever:
		// valid
	default:
		return errors.New("invalid color mode (use 'auto', 'always' or 'never')")
	}

	if c.RawDir == "" || c.CompressedDir == "" {
		return errors.New("need both a RAW root (--raw) and a JPEG root (--compressed)")
	}
	return nil
}

// ValidatePaths ensures the resolved RAW and JPEG roots are distinct and not
// nested inside each other. A nested or shared root would let the deletion
// pass reach into the RAW tree. Both arguments must be absolute,
// symlink-resolved paths.
func (c *Config) ValidatePaths(rawAbs, compressedAbs string) error {
	sep := string(filepath.Separator)
	if rawAbs == compressedAbs {
		return errors.New("RAW root and JPEG root must be different directories")
	}
	if strings.HasPrefix(compressedAbs+sep, rawAbs+sep) {
		return errors.New("JPEG root must not be inside RAW root")
	}
	if strings.HasPrefix(rawAbs+sep, compressedAbs+sep) {
		return errors.New("RAW root must not be inside JPEG root")
	}
	return nil
}
