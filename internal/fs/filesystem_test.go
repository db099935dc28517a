package fs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fspaths/internal/paths"
	"fspaths/internal/testutil"
)

func TestOSFilesystem_IsDir(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "file.txt")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0644))

	f := NewOSFilesystem()

	assert.True(t, f.IsDir(dir))
	assert.False(t, f.IsDir(file))
	assert.False(t, f.IsDir(filepath.Join(dir, "missing")))
}

func TestOSFilesystem_Exists(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "file.txt")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0644))

	f := NewOSFilesystem()

	assert.True(t, f.Exists(dir))
	assert.True(t, f.Exists(file))
	assert.False(t, f.Exists(filepath.Join(dir, "missing")))
}

func TestOSFilesystem_WriteEmptyFile(t *testing.T) {
	t.Run("creates a missing file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "empty")

		require.NoError(t, NewOSFilesystem().WriteEmptyFile(path))

		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.Zero(t, info.Size())
	})

	t.Run("truncates an existing file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "full")
		require.NoError(t, os.WriteFile(path, []byte("previous contents"), 0644))

		require.NoError(t, NewOSFilesystem().WriteEmptyFile(path))

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Empty(t, data)
	})

	t.Run("fails when the directory is missing", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "missing", "file")

		err := NewOSFilesystem().WriteEmptyFile(path)
		assert.Error(t, err)
	})
}

// requireFlatTempDir skips when the host temp dir is nested, since stripping
// its separators would not name a real directory.
func requireFlatTempDir(t *testing.T) {
	t.Helper()
	if len(paths.SegmentsFromPath(os.TempDir())) != 1 {
		t.Skipf("temp dir %q is not a single directory below the root", os.TempDir())
	}
}

func TestExistingPaths_onRealFilesystem(t *testing.T) {
	f := NewOSFilesystem()

	t.Run("working directory is kept", func(t *testing.T) {
		wd, err := os.Getwd()
		require.NoError(t, err)
		segments := paths.SegmentsFromPath(wd)

		dir := paths.NewExistingDirectoryPath(f, segments)

		assert.Equal(t, segments, dir.Segments())
		assert.Equal(t, wd, dir.String())
		assert.DirExists(t, dir.String())
	})

	t.Run("missing directory falls back to temp dir", func(t *testing.T) {
		requireFlatTempDir(t)

		dir := paths.NewExistingDirectoryPath(f, []paths.Segment{"does", "not", "exist", testutil.RandomSegment()})

		assert.Equal(t, filepath.Clean(os.TempDir()), dir.String())
		assert.DirExists(t, dir.String())
	})

	t.Run("existing file is kept", func(t *testing.T) {
		wd, err := os.Getwd()
		require.NoError(t, err)
		dir := paths.NewExistingDirectoryPath(f, paths.SegmentsFromPath(wd))

		file, err := paths.NewExistingFilePath(f, dir, "filesystem.go")
		require.NoError(t, err)

		assert.True(t, file.Directory().Equal(dir))
		assert.Equal(t, paths.Segment("filesystem.go"), file.Name())
		assert.FileExists(t, file.String())
	})

	t.Run("missing file falls back to empty temp file", func(t *testing.T) {
		requireFlatTempDir(t)

		tmpFile := filepath.Join(os.TempDir(), paths.TempFileName)
		require.NoError(t, os.WriteFile(tmpFile, []byte("left over"), 0644))

		wd, err := os.Getwd()
		require.NoError(t, err)
		dir := paths.NewExistingDirectoryPath(f, paths.SegmentsFromPath(wd))

		file, err := paths.NewExistingFilePath(f, dir, "nonexistent-file-xyz")
		require.NoError(t, err)

		assert.Equal(t, filepath.Clean(tmpFile), file.String())
		info, err := os.Stat(file.String())
		require.NoError(t, err)
		assert.Zero(t, info.Size())
	})
}
