package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func touch(t *testing.T, root, rel string) {
	t.Helper()
	path := filepath.Join(root, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("data"), 0o644))
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func run(t *testing.T, args ...string) error {
	t.Helper()
	argv := append([]string{"photoclean"}, args...)
	return newRootCommand().Run(context.Background(), argv)
}

func TestClean_EndToEnd(t *testing.T) {
	rawDir, jpegDir := t.TempDir(), t.TempDir()
	touch(t, rawDir, "foo/test.cr2")
	touch(t, jpegDir, "foo/test.jpeg")
	touch(t, jpegDir, "foo/other.jpeg")

	err := run(t, "clean", "-r", rawDir, "-c", jpegDir, "--summary-only", "--no-color")
	require.NoError(t, err)

	assert.True(t, exists(filepath.Join(jpegDir, "foo", "test.jpeg")))
	assert.False(t, exists(filepath.Join(jpegDir, "foo", "other.jpeg")))
}

func TestCleanMatched_EndToEnd(t *testing.T) {
	rawDir, jpegDir := t.TempDir(), t.TempDir()
	touch(t, rawDir, "foo/test.cr2")
	touch(t, jpegDir, "foo/test.jpeg")
	touch(t, jpegDir, "foo/other.jpeg")

	err := run(t, "clean-matched", "-r", rawDir, "-c", jpegDir, "--summary-only", "--no-color")
	require.NoError(t, err)

	assert.False(t, exists(filepath.Join(jpegDir, "foo", "test.jpeg")))
	assert.True(t, exists(filepath.Join(jpegDir, "foo", "other.jpeg")))
}

func TestClean_DryRunKeepsEverything(t *testing.T) {
	rawDir, jpegDir := t.TempDir(), t.TempDir()
	touch(t, jpegDir, "stray.jpg")

	err := run(t, "clean", "-r", rawDir, "-c", jpegDir, "--dry", "--summary-only", "--no-color")
	require.NoError(t, err)
	assert.True(t, exists(filepath.Join(jpegDir, "stray.jpg")))
}

func TestClean_MissingRawRootFails(t *testing.T) {
	jpegDir := t.TempDir()
	err := run(t, "clean",
		"-r", filepath.Join(t.TempDir(), "nope"),
		"-c", jpegDir,
		"--no-color")
	assert.Error(t, err)
}

func TestClean_NestedRootsRejected(t *testing.T) {
	rawDir := t.TempDir()
	jpegDir := filepath.Join(rawDir, "jpeg")
	require.NoError(t, os.MkdirAll(jpegDir, 0o755))

	err := run(t, "clean", "-r", rawDir, "-c", jpegDir, "--no-color")
	assert.Error(t, err)
}

func TestClean_RequiredFlags(t *testing.T) {
	err := run(t, "clean", "-c", t.TempDir())
	assert.Error(t, err, "--raw is required")

	err = run(t, "clean", "-r", t.TempDir())
	assert.Error(t, err, "--compressed is required")
}
