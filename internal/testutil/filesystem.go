package testutil

import (
	"path/filepath"
	"strings"
	"sync"

	"github.com/google/uuid"

	"fspaths/internal/paths"
)

// MockFile represents an entry in the mock filesystem.
type MockFile struct {
	Content     []byte
	IsDirectory bool
}

// MockFilesystem is an in-memory paths.Filesystem for testing.
// Safe for concurrent use.
type MockFilesystem struct {
	mu      sync.Mutex
	files   map[string]*MockFile
	tempDir string
	writes  []string

	// WriteErr, when set, is returned by every WriteEmptyFile call.
	WriteErr error
}

// NewMockFilesystem creates a mock filesystem whose temp directory is tempDir.
// The temp directory and the root are created up front.
func NewMockFilesystem(tempDir string) *MockFilesystem {
	m := &MockFilesystem{
		files:   make(map[string]*MockFile),
		tempDir: tempDir,
	}
	m.AddDirectory(string(filepath.Separator))
	m.AddDirectory(tempDir)
	return m
}

// AddFile adds a file, creating its parent directories.
func (m *MockFilesystem) AddFile(path string, content []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.addParents(path)
	m.files[filepath.Clean(path)] = &MockFile{Content: content}
}

// AddDirectory adds a directory, creating its parents.
func (m *MockFilesystem) AddDirectory(path string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.addParents(path)
	m.files[filepath.Clean(path)] = &MockFile{IsDirectory: true}
}

func (m *MockFilesystem) addParents(path string) {
	for dir := filepath.Dir(filepath.Clean(path)); ; dir = filepath.Dir(dir) {
		if _, ok := m.files[dir]; !ok {
			m.files[dir] = &MockFile{IsDirectory: true}
		}
		if dir == filepath.Dir(dir) {
			return
		}
	}
}

// File returns the entry at path, or nil.
func (m *MockFilesystem) File(path string) *MockFile {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.files[filepath.Clean(path)]
}

// Writes returns every path passed to WriteEmptyFile, in call order.
func (m *MockFilesystem) Writes() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.writes...)
}

func (m *MockFilesystem) IsDir(path string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	f, ok := m.files[filepath.Clean(path)]
	return ok && f.IsDirectory
}

func (m *MockFilesystem) Exists(path string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.files[filepath.Clean(path)]
	return ok
}

func (m *MockFilesystem) TempDir() string {
	return m.tempDir
}

func (m *MockFilesystem) WriteEmptyFile(path string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.writes = append(m.writes, path)
	if m.WriteErr != nil {
		return m.WriteErr
	}
	m.addParents(path)
	m.files[filepath.Clean(path)] = &MockFile{Content: []byte{}}
	return nil
}

// RandomSegment returns a segment that is vanishingly unlikely to name an
// existing entry.
func RandomSegment() paths.Segment {
	return paths.Segment(strings.ReplaceAll(uuid.New().String(), "-", ""))
}

// RandomSegments returns n random segments.
func RandomSegments(n int) []paths.Segment {
	segments := make([]paths.Segment, n)
	for i := range segments {
		segments[i] = RandomSegment()
	}
	return segments
}

// Compile-time check
var _ paths.Filesystem = (*MockFilesystem)(nil)
