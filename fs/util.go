package fs

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// GetAbs returns an absolute, cleaned version of path on the native filesystem.
func GetAbs(path string) (string, error) {
	if filepath.IsAbs(path) {
		return filepath.Clean(path), nil
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("fs: abs %q: %w", path, err)
	}
	return abs, nil
}

// Exists reports whether path exists on the native filesystem.
func Exists(path string) (bool, error) {
	_, err := os.Stat(path)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, os.ErrNotExist):
		return false, nil
	default:
		return false, fmt.Errorf("fs: stat %q: %w", path, err)
	}
}
