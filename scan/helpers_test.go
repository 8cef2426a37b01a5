package scan

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/input-output-hk/git-fixme/fs"
	billyfs "github.com/input-output-hk/git-fixme/fs/billy"
	"github.com/input-output-hk/git-fixme/git"
	"github.com/input-output-hk/git-fixme/internal/gittest"
)

// gitRepository adapts *git.Repo to Repository.
type gitRepository struct {
	*git.Repo
}

func (r gitRepository) Blame(ctx context.Context, path string) (Attribution, error) {
	b, err := r.Repo.Blame(ctx, path)
	if err != nil {
		return nil, err
	}
	return b, nil
}

// output captures both streams of a Printer.
type output struct {
	stdout bytes.Buffer
	stderr bytes.Buffer
}

func (o *output) printer(base string) *Printer {
	return NewPrinter(&o.stdout, &o.stderr, base)
}

// scanRepo walks tr from start and returns what was printed.
func scanRepo(t *testing.T, tr *gittest.Repo, mode Mode, keys, start string) (*output, Result) {
	t.Helper()

	repo, err := git.Open(context.Background(), &git.Options{FS: tr.FS()})
	require.NoError(t, err)

	var out output
	w, err := NewWalker(repo.Filesystem(), gitRepository{repo}, Config{Markers: ParseMarkers(keys), Mode: mode}, out.printer(start))
	require.NoError(t, err)

	res, err := w.Walk(context.Background(), start)
	require.NoError(t, err)

	if mode == ModeStats {
		_ = out.printer(start).Finish(mode, res)
	}
	return &out, res
}

// fakeRepo is a Repository driven by maps.
type fakeRepo struct {
	ignored   map[string]bool
	tracked   map[string]bool
	ignoreErr map[string]error
	trackErr  map[string]error

	revs       map[string][]string
	blameErr   error
	blameCalls map[string]int
}

func newFakeRepo(tracked ...string) *fakeRepo {
	r := &fakeRepo{
		ignored:    map[string]bool{},
		tracked:    map[string]bool{},
		ignoreErr:  map[string]error{},
		trackErr:   map[string]error{},
		revs:       map[string][]string{},
		blameCalls: map[string]int{},
	}
	for _, p := range tracked {
		r.tracked[p] = true
	}
	return r
}

func (r *fakeRepo) IsIgnored(path string, _ bool) (bool, error) {
	if err := r.ignoreErr[path]; err != nil {
		return false, err
	}
	return r.ignored[path], nil
}

func (r *fakeRepo) IsTracked(path string) (bool, error) {
	if err := r.trackErr[path]; err != nil {
		return false, err
	}
	return r.tracked[path], nil
}

//nolint:ireturn // implements Repository
func (r *fakeRepo) Blame(_ context.Context, path string) (Attribution, error) {
	r.blameCalls[path]++
	if r.blameErr != nil {
		return nil, r.blameErr
	}
	return fakeBlame(r.revs[path]), nil
}

type fakeBlame []string

func (b fakeBlame) Revision(line int) (string, error) {
	if line < 1 || line > len(b) {
		return "", git.ErrLineOutOfRange
	}
	return b[line-1], nil
}

// faultyFS fails selected operations of an underlying filesystem.
type faultyFS struct {
	fs.ReadFS
	readDirErr map[string]error
	openErr    map[string]error
	readErr    map[string]error
}

func newFaultyFS(base fs.ReadFS) *faultyFS {
	return &faultyFS{
		ReadFS:     base,
		readDirErr: map[string]error{},
		openErr:    map[string]error{},
		readErr:    map[string]error{},
	}
}

func (f *faultyFS) ReadDir(name string) ([]os.FileInfo, error) {
	if err := f.readDirErr[name]; err != nil {
		return nil, err
	}
	return f.ReadFS.ReadDir(name)
}

//nolint:ireturn // implements fs.ReadFS
func (f *faultyFS) Open(name string) (fs.File, error) {
	if err := f.openErr[name]; err != nil {
		return nil, err
	}
	file, err := f.ReadFS.Open(name)
	if err != nil {
		return nil, err
	}
	if err := f.readErr[name]; err != nil {
		return &failingFile{File: file, err: err}, nil
	}
	return file, nil
}

// failingFile returns err from every Read.
type failingFile struct {
	fs.File
	err error
}

func (f *failingFile) Read([]byte) (int, error) {
	return 0, f.err
}

// memTree creates an in-memory filesystem holding files.
func memTree(t *testing.T, files map[string]string) *billyfs.FS {
	t.Helper()

	fsys := billyfs.NewInMemoryFS()
	for name, content := range files {
		if dir := path.Dir(name); dir != "." {
			require.NoError(t, fsys.MkdirAll(dir, 0o755))
		}
		require.NoError(t, fsys.WriteFile(name, []byte(content), 0o644))
	}
	return fsys
}

// fakeInfo is a minimal os.FileInfo.
type fakeInfo struct {
	name string
	mode os.FileMode
}

func (i fakeInfo) Name() string       { return i.name }
func (i fakeInfo) Size() int64        { return 0 }
func (i fakeInfo) Mode() os.FileMode  { return i.mode }
func (i fakeInfo) ModTime() time.Time { return time.Time{} }
func (i fakeInfo) IsDir() bool        { return i.mode.IsDir() }
func (i fakeInfo) Sys() any           { return nil }

var errBoom = errors.New("boom")
