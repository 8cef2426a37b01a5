// Package fs defines the filesystem abstraction git-fixme walks and reads through.
// Production code runs on an OS-backed implementation; tests use an in-memory one.
// Both are provided by the fs/billy package.
package fs

import "os"

// ReadFS is the read-only surface needed to enumerate a working tree and scan its files.
// Paths are slash separated and relative to the filesystem root.
type ReadFS interface {
	// Open opens the named file for reading.
	Open(name string) (File, error)

	// Stat returns file info for name, following symbolic links.
	Stat(name string) (os.FileInfo, error)

	// ReadDir lists the direct children of dirname. Entries for symbolic links
	// describe the link itself.
	ReadDir(dirname string) ([]os.FileInfo, error)

	// ReadFile reads the whole named file.
	ReadFile(name string) ([]byte, error)

	// Exists reports whether path exists. A missing path is not an error.
	Exists(path string) (bool, error)
}

// Filesystem extends ReadFS with the write operations used to build fixtures
// and in-memory repositories.
type Filesystem interface {
	ReadFS

	Create(name string) (File, error)
	WriteFile(filename string, data []byte, perm os.FileMode) error
	MkdirAll(path string, perm os.FileMode) error
	Remove(name string) error
	Symlink(target, link string) error
}
