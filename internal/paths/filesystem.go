package paths

// Filesystem provides the existence checks and the single write the path
// types need. It abstracts file access to enable testing without touching
// the real filesystem.
type Filesystem interface {
	// IsDir reports whether path exists and is a directory.
	IsDir(path string) bool

	// Exists reports whether anything exists at path, file or directory.
	Exists(path string) bool

	// TempDir returns the host's temporary directory.
	TempDir() string

	// WriteEmptyFile creates path, or truncates it if it already exists,
	// holding an exclusive lock on it for the duration of the write.
	WriteEmptyFile(path string) error
}
