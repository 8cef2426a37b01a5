package git

import (
	"path"
	"path/filepath"
	"strings"
)

// cleanPath normalizes a worktree path into the slash-separated form used by
// the index and by gitignore matching. The worktree root cleans to "".
func cleanPath(p string) (string, error) {
	p = path.Clean(filepath.ToSlash(p))
	switch {
	case p == ".":
		return "", nil
	case path.IsAbs(p), p == "..", strings.HasPrefix(p, "../"):
		return "", WrapErrorf(ErrPathOutsideRepo, "%q", p)
	}
	return p, nil
}
