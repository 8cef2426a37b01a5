package scan

import "fmt"

// Stats counts matches across a walk.
type Stats struct {
	// FilesWithMatches is the number of files with at least one match.
	FilesWithMatches int
	// TotalMatches is the number of matching lines.
	TotalMatches int
}

// Add folds one file's match count into the totals.
func (s Stats) Add(count int) Stats {
	if count <= 0 {
		return s
	}
	return Stats{
		FilesWithMatches: s.FilesWithMatches + 1,
		TotalMatches:     s.TotalMatches + count,
	}
}

// String renders the totals as "<files> <matches>".
func (s Stats) String() string {
	return fmt.Sprintf("%d %d", s.FilesWithMatches, s.TotalMatches)
}

// Result is the outcome of a walk.
type Result struct {
	Stats Stats
	// Failures counts faulted entries, files and lines.
	Failures int
}

// Failed reports whether any fault occurred.
func (r Result) Failed() bool {
	return r.Failures > 0
}
