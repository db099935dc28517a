package paths

import "slices"

// ExistingDirectoryPath is a path that referenced an existing directory when
// it was constructed. Values are immutable.
type ExistingDirectoryPath struct {
	segments    []Segment
	substituted bool
}

// NewExistingDirectoryPath builds an ExistingDirectoryPath from segments.
//
// If joining the segments does not yield an existing directory, the segments
// are replaced by a single segment naming the system temp directory (with
// its separators stripped). No error is ever returned: invalid input is
// absorbed by the substitution.
func NewExistingDirectoryPath(fsys Filesystem, segments []Segment) ExistingDirectoryPath {
	if fsys.IsDir(joinSegments(segments)) {
		return ExistingDirectoryPath{segments: slices.Clone(segments)}
	}
	return tempDirectoryPath(fsys)
}

func tempDirectoryPath(fsys Filesystem) ExistingDirectoryPath {
	return ExistingDirectoryPath{
		segments:    []Segment{tempDirSegment(fsys)},
		substituted: true,
	}
}

// Segments returns a copy of the segments that make up the path.
func (p ExistingDirectoryPath) Segments() []Segment {
	return slices.Clone(p.segments)
}

// Substituted reports whether the temp directory replaced the caller's
// segments.
func (p ExistingDirectoryPath) Substituted() bool {
	return p.substituted
}

// String returns the segments joined with the host separator, each one
// prefixed by a separator.
func (p ExistingDirectoryPath) String() string {
	return joinSegments(p.segments)
}

// Equal reports whether both paths have the same segments.
func (p ExistingDirectoryPath) Equal(other ExistingDirectoryPath) bool {
	return slices.Equal(p.segments, other.segments)
}
