package main

import (
	"context"

	"github.com/input-output-hk/git-fixme/git"
	"github.com/input-output-hk/git-fixme/scan"
)

// repository adapts *git.Repo to scan.Repository.
type repository struct {
	*git.Repo
}

//nolint:ireturn // scan.Repository returns the Attribution interface
func (r repository) Blame(ctx context.Context, path string) (scan.Attribution, error) {
	b, err := r.Repo.Blame(ctx, path)
	if err != nil {
		return nil, err
	}
	return b, nil
}
