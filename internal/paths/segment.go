package paths

import (
	"path/filepath"
	"strings"
)

// Segment is a single path component. It never contains a path separator or
// a ".." traversal sequence when built with NewSegment.
type Segment string

// NewSegment sanitizes raw into a Segment by removing separators and ".."
// sequences. Values handed over by an upstream sanitizer can be converted
// directly with Segment(s); this constructor is for raw user input.
func NewSegment(raw string) Segment {
	s := strings.ReplaceAll(raw, string(filepath.Separator), "")
	s = strings.ReplaceAll(s, "/", "")
	for strings.Contains(s, "..") {
		s = strings.ReplaceAll(s, "..", "")
	}
	return Segment(s)
}

// SegmentsFromPath splits a raw OS path on the host separator and sanitizes
// each part with NewSegment. Empty, "." and ".." parts are dropped, not
// resolved.
func SegmentsFromPath(raw string) []Segment {
	parts := strings.Split(raw, string(filepath.Separator))
	segments := make([]Segment, 0, len(parts))
	for _, part := range parts {
		if part == "." || part == ".." {
			continue
		}
		if s := NewSegment(part); s != "" {
			segments = append(segments, s)
		}
	}
	return segments
}

func (s Segment) String() string {
	return string(s)
}

// joinSegments builds "<sep>s1<sep>s2...". An empty list yields a lone
// separator.
func joinSegments(segments []Segment) string {
	if len(segments) == 0 {
		return string(filepath.Separator)
	}
	var b strings.Builder
	for _, s := range segments {
		b.WriteRune(filepath.Separator)
		b.WriteString(string(s))
	}
	return b.String()
}

// tempDirSegment collapses the host temp dir into one segment by stripping
// every separator from it.
func tempDirSegment(fsys Filesystem) Segment {
	return Segment(strings.ReplaceAll(fsys.TempDir(), string(filepath.Separator), ""))
}
