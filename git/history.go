package git

import (
	"context"
	"errors"

	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
)

// Head returns the hash of the commit HEAD points to.
func (r *Repo) Head(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	c, err := r.headCommit()
	if err != nil {
		return "", err
	}
	return c.Hash.String(), nil
}

// headCommit resolves HEAD once. An unborn branch maps to ErrNoHead.
func (r *Repo) headCommit() (*object.Commit, error) {
	if r.head != nil {
		return r.head, nil
	}

	ref, err := r.repo.Head()
	if err != nil {
		if errors.Is(err, plumbing.ErrReferenceNotFound) {
			return nil, ErrNoHead
		}
		return nil, WrapError(err, "failed to resolve HEAD")
	}

	c, err := r.repo.CommitObject(ref.Hash())
	if err != nil {
		return nil, WrapErrorf(err, "failed to load HEAD commit %s", ref.Hash())
	}
	r.head = c

	return r.head, nil
}
