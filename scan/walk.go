package scan

import (
	"context"
	"log/slog"
	"os"
	"path"

	"github.com/input-output-hk/git-fixme/errors"
	"github.com/input-output-hk/git-fixme/fs"
)

// Walker scans a working tree. It is not safe for concurrent use.
type Walker struct {
	fs     fs.ReadFS
	repo   Repository
	cfg    Config
	out    *Printer
	logger *slog.Logger
}

// NewWalker creates a Walker reading through fsys, whose root must be the
// working-tree root of repo.
func NewWalker(fsys fs.ReadFS, repo Repository, cfg Config, out *Printer, opts ...Option) (*Walker, error) {
	switch {
	case fsys == nil:
		return nil, errors.New(errors.CodeInvalidInput, "filesystem is required")
	case repo == nil:
		return nil, errors.New(errors.CodeInvalidInput, "repository is required")
	case out == nil:
		return nil, errors.New(errors.CodeInvalidInput, "printer is required")
	}
	if cfg.Markers == nil {
		cfg.Markers = NewMarkerSet(nil)
	}

	w := &Walker{fs: fsys, repo: repo, cfg: cfg, out: out}
	for _, opt := range opts {
		opt(w)
	}
	if w.logger == nil {
		w.logger = discardLogger()
	}

	return w, nil
}

// frame is a directory whose children are being visited.
type frame struct {
	dir     string
	entries []os.FileInfo
	next    int
}

// Walk visits the tree below start depth first, in pre-order, with the
// children of each directory in ReadDir order. Faults on entries below start
// are reported through the Printer and counted in the Result; Walk itself
// only fails when start cannot be listed or ctx is done.
func (w *Walker) Walk(ctx context.Context, start string) (Result, error) {
	start = path.Clean(start)

	var res Result
	entries, err := w.fs.ReadDir(start)
	if err != nil {
		return res, errors.Wrapf(err, errors.CodeIO, "cannot list %q", start)
	}

	w.logger.Debug("walk started", "start", start, "mode", w.cfg.Mode.String(), "keys", w.cfg.Markers.Keys())

	stack := []frame{{dir: start, entries: entries}}
	for len(stack) > 0 {
		if err := ctx.Err(); err != nil {
			return res, err
		}

		top := &stack[len(stack)-1]
		if top.next == len(top.entries) {
			stack = stack[:len(stack)-1]
			continue
		}
		info := top.entries[top.next]
		top.next++

		name := path.Join(top.dir, info.Name())
		d := Classify(w.repo, name, info)

		switch d.Action {
		case ActionSkip:
			w.logger.Debug("skipping entry", "path", name, "reason", d.Reason)

		case ActionEnter:
			children, err := w.fs.ReadDir(name)
			if err != nil {
				res.Failures++
				w.fault(name, errors.Wrap(err, errors.CodeIO, "cannot list directory"))
				continue
			}
			w.logger.Debug("entering directory", "path", name, "entries", len(children))
			stack = append(stack, frame{dir: name, entries: children})

		case ActionCheck:
			sr, err := w.scanFile(ctx, name)
			res.Failures += sr.faults
			if err != nil {
				res.Failures++
				w.fault(name, err)
				continue
			}
			res.Stats = res.Stats.Add(sr.matches)

		case ActionFault:
			res.Failures++
			w.fault(name, d.Err)
		}
	}

	w.logger.Debug("walk finished",
		"files_with_matches", res.Stats.FilesWithMatches,
		"total_matches", res.Stats.TotalMatches,
		"failures", res.Failures)

	return res, nil
}

func (w *Walker) fault(name string, err error) {
	w.logger.Warn("scan fault", "path", name, "code", string(errors.CodeOf(err)), "error", err)
	w.out.Fault(name, err)
}
