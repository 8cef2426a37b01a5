package scan

import (
	"context"

	"github.com/input-output-hk/git-fixme/errors"
)

// attributor resolves revisions for the lines of a single file. Blame is
// computed on the first request; the result, or the failure, is reused for
// every later line of the same file.
type attributor struct {
	ctx  context.Context
	repo Repository
	path string

	loaded bool
	blame  Attribution
	err    error
}

func newAttributor(ctx context.Context, repo Repository, path string) *attributor {
	return &attributor{ctx: ctx, repo: repo, path: path}
}

func (a *attributor) revision(line int) (string, error) {
	if !a.loaded {
		a.blame, a.err = a.repo.Blame(a.ctx, a.path)
		if a.err == nil && a.blame == nil {
			a.err = errors.New(errors.CodeInternal, "repository returned no attribution")
		}
		a.loaded = true
	}
	if a.err != nil {
		return "", errors.Wrap(a.err, errors.CodeAttribution, "blame failed")
	}

	rev, err := a.blame.Revision(line)
	if err != nil {
		return "", errors.Wrapf(err, errors.CodeAttribution, "no revision for line %d", line)
	}
	return rev, nil
}
