package fs

import "io/fs"

// File represents an open file handle.
// Scanning only reads sequentially; Write is used when building fixtures.
type File interface {
	Close() error
	Name() string
	Read(p []byte) (n int, err error)
	Stat() (fs.FileInfo, error)
	Write(p []byte) (n int, err error)
}
