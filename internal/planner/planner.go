// Package planner decides the per-file action (keep or delete) from the
// match classification and the run mode.
package planner

import (
	"github.com/backmassage/photoclean/internal/config"
	"github.com/backmassage/photoclean/internal/index"
	"github.com/backmassage/photoclean/internal/scan"
)

// Classification says whether a JPEG has a RAW counterpart.
type Classification int

const (
	Matched Classification = iota
	Orphaned
)

// String returns the lowercase label used in per-file output.
func (c Classification) String() string {
	if c == Matched {
		return "matched"
	}
	return "orphaned"
}

// Action describes the per-file processing decision.
type Action int

const (
	ActionKeep Action = iota
	ActionDelete
)

// FilePlan holds the decision for a single JPEG file. It is produced by
// BuildPlan and consumed immediately by the pipeline's delete step.
type FilePlan struct {
	Entry  scan.FileEntry
	Class  Classification
	Action Action
}

// Classify looks the entry's key up in the RAW index. A JPEG is Matched iff
// a RAW file shares its relative directory and stem, regardless of which
// RAW extension produced the index entry.
func Classify(ix *index.RawIndex, e scan.FileEntry) Classification {
	if ix.Contains(index.KeyFor(e)) {
		return Matched
	}
	return Orphaned
}

// BuildPlan applies the deletion policy: orphans mode removes JPEGs with no
// match, matched mode removes JPEGs with a match.
func BuildPlan(mode config.Mode, e scan.FileEntry, class Classification) FilePlan {
	plan := FilePlan{Entry: e, Class: class, Action: ActionKeep}
	if (mode == config.ModeOrphans && class == Orphaned) ||
		(mode == config.ModeMatched && class == Matched) {
		plan.Action = ActionDelete
	}
	return plan
}
