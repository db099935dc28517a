package paths

import (
	"errors"
	"fmt"
	"path/filepath"
)

// TempFileName is the name of the empty file created in the system temp
// directory when an ExistingFilePath falls back. Every fallback shares this
// one file; callers that construct fallbacks concurrently, across goroutines
// or processes, must coordinate among themselves, since each construction
// truncates it.
const TempFileName = "PHPFileSystemPathsEmptyTmpFile"

// ErrTempFile is wrapped by the error returned when the fallback temp file
// cannot be written.
var ErrTempFile = errors.New("creating fallback temp file")

// ExistingFilePath is a path that referenced an existing filesystem entry
// when it was constructed. Values are immutable.
type ExistingFilePath struct {
	directory   ExistingDirectoryPath
	name        Segment
	substituted bool
}

// NewExistingFilePath builds an ExistingFilePath for name inside dir.
//
// If nothing exists at dir/name, both are replaced: the directory becomes the
// system temp directory and the name becomes TempFileName. That file is
// created, or truncated to empty if it is already there, every time the
// fallback is taken. The file is left on disk afterwards.
//
// The existence check accepts directories as well as files.
//
// The only error is a failure to write the fallback file; it wraps
// ErrTempFile.
func NewExistingFilePath(fsys Filesystem, dir ExistingDirectoryPath, name Segment) (ExistingFilePath, error) {
	if fsys.Exists(joinFile(dir, name)) {
		return ExistingFilePath{directory: dir, name: name}, nil
	}

	tmpDir := NewExistingDirectoryPath(fsys, []Segment{tempDirSegment(fsys)})
	tmpName := Segment(TempFileName)
	tmpPath := joinFile(tmpDir, tmpName)

	// Rewritten on every fallback so the file is always empty.
	if err := fsys.WriteEmptyFile(tmpPath); err != nil {
		return ExistingFilePath{}, fmt.Errorf("%w %s: %w", ErrTempFile, tmpPath, err)
	}

	return ExistingFilePath{
		directory:   tmpDir,
		name:        tmpName,
		substituted: true,
	}, nil
}

func joinFile(dir ExistingDirectoryPath, name Segment) string {
	return dir.String() + string(filepath.Separator) + string(name)
}

// Directory returns the directory the file lives in. After a fallback this
// is the temp directory, built with NewExistingDirectoryPath. Its own
// Substituted reports only that directory's check, so use
// ExistingFilePath.Substituted to detect the fallback.
func (p ExistingFilePath) Directory() ExistingDirectoryPath {
	return p.directory
}

// Name returns the file's name.
func (p ExistingFilePath) Name() Segment {
	return p.name
}

// Substituted reports whether the temp file replaced the caller's path.
func (p ExistingFilePath) Substituted() bool {
	return p.substituted
}

// String returns the directory path, a separator and the file name.
func (p ExistingFilePath) String() string {
	return joinFile(p.directory, p.name)
}

// Equal reports whether both paths have the same directory and name.
func (p ExistingFilePath) Equal(other ExistingFilePath) bool {
	return p.name == other.name && p.directory.Equal(other.directory)
}
