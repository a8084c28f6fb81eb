// Package scan walks a photo tree and records, for every file matching an
// extension set, its relative directory, filename stem, and absolute path.
package scan

import (
	"io/fs"
	"path/filepath"
	"sort"
	"strings"
)

// RawExtensions are the recognized RAW file extensions (lowercase, with
// leading dot). Extension matching is case-insensitive.
var RawExtensions = map[string]bool{
	".raf": true,
	".cr2": true,
	".cr3": true,
	".nef": true,
	".arw": true,
	".dng": true,
	".orf": true,
	".rw2": true,
	".raw": true,
}

// JpegExtensions are the recognized compressed-side extensions.
var JpegExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
}

// FileEntry is one discovered file. RelDir and Stem together identify the
// file across the two trees; both are case-sensitive.
type FileEntry struct {
	AbsPath string
	RelDir  string // Directory path relative to the walk root, slash-normalized; "." at the root.
	Stem    string // Filename without its extension, case preserved.
	Ext     string // Lowercased extension with leading dot.
	Size    int64
}

// Walk recursively collects files under root whose extension is in exts,
// sorted by (RelDir, Stem) for deterministic processing order. Unreadable
// subdirectories are skipped (their subtrees contribute zero entries) and
// counted in the second return value; an unreadable or missing root is a
// hard error. Symlinks are not followed.
func Walk(root string, exts map[string]bool) ([]FileEntry, int, error) {
	root = filepath.Clean(root)

	entries := make([]FileEntry, 0, 128)
	skippedDirs := 0
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			// The root failing is fatal; anything deeper is skipped so one
			// permission-restricted subtree cannot abort the whole walk.
			if filepath.Clean(path) == root {
				return walkErr
			}
			if d != nil && d.IsDir() {
				skippedDirs++
				return fs.SkipDir
			}
			// A non-directory entry with a walk error is just skipped; it
			// is not an unreadable subtree.
			return nil
		}

		if d.IsDir() {
			return nil
		}

		name := d.Name()
		ext := strings.ToLower(filepath.Ext(name))
		if !exts[ext] {
			return nil
		}

		info, err := d.Info()
		if err != nil {
			// File vanished between readdir and stat; nothing to record.
			return nil
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}

		entries = append(entries, FileEntry{
			AbsPath: path,
			RelDir:  filepath.ToSlash(filepath.Dir(rel)),
			Stem:    strings.TrimSuffix(name, filepath.Ext(name)),
			Ext:     ext,
			Size:    info.Size(),
		})
		return nil
	})
	if err != nil {
		return nil, skippedDirs, err
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].RelDir != entries[j].RelDir {
			return entries[i].RelDir < entries[j].RelDir
		}
		return entries[i].Stem < entries[j].Stem
	})
	return entries, skippedDirs, nil
}
