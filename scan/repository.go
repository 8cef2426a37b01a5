package scan

import "context"

// Repository answers the version-control questions the walk depends on.
// Paths are slash separated and relative to the working-tree root.
type Repository interface {
	// IsIgnored reports whether path matches an ignore rule.
	IsIgnored(path string, isDir bool) (bool, error)
	// IsTracked reports whether path has an index entry.
	IsTracked(path string) (bool, error)
	// Blame computes line attribution for the committed content of path.
	Blame(ctx context.Context, path string) (Attribution, error)
}

// Attribution maps 1-based line numbers to the revision that last changed them.
type Attribution interface {
	Revision(line int) (string, error)
}
