package git

import (
	"context"

	"github.com/go-git/go-git/v5"
)

// Blame maps each line of a file, as committed at HEAD, to the commit that
// last changed it.
type Blame struct {
	path string
	revs []string
}

// Blame computes line attribution for path (worktree relative) at HEAD.
// A path that is not part of the HEAD tree is an error.
func (r *Repo) Blame(ctx context.Context, path string) (*Blame, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	p, err := cleanPath(path)
	if err != nil {
		return nil, err
	}
	if p == "" {
		return nil, WrapErrorf(ErrPathOutsideRepo, "cannot blame the worktree root")
	}

	head, err := r.headCommit()
	if err != nil {
		return nil, err
	}

	res, err := git.Blame(head, p)
	if err != nil {
		return nil, WrapErrorf(err, "failed to blame %q", p)
	}

	revs := make([]string, len(res.Lines))
	for i, l := range res.Lines {
		revs[i] = l.Hash.String()
	}

	return &Blame{path: p, revs: revs}, nil
}

// Path returns the blamed path.
func (b *Blame) Path() string {
	return b.path
}

// Lines returns the number of attributed lines.
func (b *Blame) Lines() int {
	return len(b.revs)
}

// Revision returns the commit hash that last modified the 1-based line.
func (b *Blame) Revision(line int) (string, error) {
	if line < 1 || line > b.Lines() {
		return "", WrapErrorf(ErrLineOutOfRange, "%s:%d (%d lines at HEAD)", b.Path(), line, b.Lines())
	}
	return b.revs[line-1], nil
}
