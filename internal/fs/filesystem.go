package fs

import (
	"fmt"
	"os"

	"github.com/gofrs/flock"

	"fspaths/internal/paths"
)

// OSFilesystem is the real filesystem implementation of paths.Filesystem.
// It performs actual filesystem operations using the os package.
type OSFilesystem struct{}

// NewOSFilesystem creates a filesystem that operates on the real filesystem.
func NewOSFilesystem() *OSFilesystem {
	return &OSFilesystem{}
}

// IsDir stats path, following symlinks. Any stat error counts as absent.
func (f *OSFilesystem) IsDir(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.IsDir()
}

// Exists stats path, following symlinks. Any stat error counts as absent.
func (f *OSFilesystem) Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// TempDir returns os.TempDir().
func (f *OSFilesystem) TempDir() string {
	return os.TempDir()
}

// WriteEmptyFile opens path without truncating, takes an exclusive flock on
// it, then truncates it to zero length.
func (f *OSFilesystem) WriteEmptyFile(path string) error {
	file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE, 0644)
	if err != nil {
		return fmt.Errorf("opening file: %w", err)
	}
	defer file.Close()

	lock := flock.New(path)
	if err := lock.Lock(); err != nil {
		return fmt.Errorf("locking file: %w", err)
	}
	defer lock.Unlock()

	if err := file.Truncate(0); err != nil {
		return fmt.Errorf("truncating file: %w", err)
	}
	if err := file.Sync(); err != nil {
		return fmt.Errorf("syncing file: %w", err)
	}
	return nil
}

// Compile-time check that OSFilesystem implements paths.Filesystem
var _ paths.Filesystem = (*OSFilesystem)(nil)
