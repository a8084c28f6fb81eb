// Package index builds the lookup table of RAW files keyed by relative
// directory and filename stem.
package index

import (
	"path"

	"github.com/backmassage/photoclean/internal/scan"
)

// RawIndex maps (relative directory, stem) keys to the existence of at
// least one RAW file. Built once per run and read-only afterward.
type RawIndex struct {
	keys  map[string]struct{}
	files int
}

// KeyFor returns the lookup key for an entry: the slash-normalized relative
// directory joined with the stem (e.g. "2023/iceland/DSCF0042"). Keys are
// case-sensitive; the extension does not participate.
func KeyFor(e scan.FileEntry) string {
	return path.Join(e.RelDir, e.Stem)
}

// Build indexes the given RAW entries. Sibling RAW files sharing a stem
// (e.g. x.cr2 next to x.dng) collapse into a single key.
func Build(entries []scan.FileEntry) *RawIndex {
	ix := &RawIndex{
		keys:  make(map[string]struct{}, len(entries)),
		files: len(entries),
	}
	for _, e := range entries {
		ix.keys[KeyFor(e)] = struct{}{}
	}
	return ix
}

// Contains reports whether a RAW file exists for the given key.
func (ix *RawIndex) Contains(key string) bool {
	_, ok := ix.keys[key]
	return ok
}

// Len returns the number of distinct keys.
func (ix *RawIndex) Len() int { return len(ix.keys) }

// Files returns the number of RAW files indexed (counting siblings).
func (ix *RawIndex) Files() int { return ix.files }
