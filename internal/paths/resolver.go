package paths

import (
	"fmt"
	"path/filepath"
)

// Resolver builds existing paths against one Filesystem and logs every
// substitution it makes.
type Resolver struct {
	fsys   Filesystem
	logger Logger
}

// NewResolver creates a Resolver. A nil logger discards output.
func NewResolver(fsys Filesystem, logger Logger) *Resolver {
	if logger == nil {
		logger = NewNopLogger()
	}
	return &Resolver{fsys: fsys, logger: logger}
}

// Directory returns the ExistingDirectoryPath for segments.
func (r *Resolver) Directory(segments ...Segment) ExistingDirectoryPath {
	requested := joinSegments(segments)
	r.logger.Debug("resolving directory", "path", requested)

	dir := NewExistingDirectoryPath(r.fsys, segments)
	if dir.Substituted() {
		r.logger.Warn("directory does not exist, using temp directory", "requested", requested, "path", dir.String())
	}
	return dir
}

// File returns the ExistingFilePath for name inside dir.
func (r *Resolver) File(dir ExistingDirectoryPath, name Segment) (ExistingFilePath, error) {
	requested := joinFile(dir, name)
	r.logger.Debug("resolving file", "path", requested)

	file, err := NewExistingFilePath(r.fsys, dir, name)
	if err != nil {
		r.logger.Error("fallback file could not be created", "requested", requested, "error", err)
		return ExistingFilePath{}, err
	}
	if file.Substituted() {
		r.logger.Warn("file does not exist, using empty temp file", "requested", requested, "path", file.String())
	}
	return file, nil
}

// ParseDirectory splits an absolute raw path into segments and resolves it.
func (r *Resolver) ParseDirectory(raw string) ExistingDirectoryPath {
	return r.Directory(SegmentsFromPath(raw)...)
}

// ParseFile resolves the directory part of raw and then the file named by
// its last element. A last element of "." or "..", or one that sanitizes to
// nothing, is an error.
func (r *Resolver) ParseFile(raw string) (ExistingFilePath, error) {
	dirPart, namePart := filepath.Split(raw)
	if namePart == "." || namePart == ".." {
		return ExistingFilePath{}, fmt.Errorf("path has no file name: %q", raw)
	}
	name := NewSegment(namePart)
	if name == "" {
		return ExistingFilePath{}, fmt.Errorf("path has no file name: %q", raw)
	}
	dir := r.ParseDirectory(dirPart)
	return r.File(dir, name)
}
