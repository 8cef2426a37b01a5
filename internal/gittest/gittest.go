// Package gittest builds throwaway git repositories for tests, either in
// memory or in a temporary directory, using go-git directly.
package gittest

import (
	"path"
	"testing"
	"time"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/cache"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/go-git/go-git/v5/storage/filesystem"
	"github.com/stretchr/testify/require"

	billyfs "github.com/input-output-hk/git-fixme/fs/billy"
)

// Author is the signature used for every commit.
var Author = object.Signature{
	Name:  "Fixme Tester",
	Email: "tester@example.com",
	When:  time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC),
}

// Repo is a repository under construction.
type Repo struct {
	t       testing.TB
	fs      *billyfs.FS
	repo    *gogit.Repository
	wt      *gogit.Worktree
	commits int
}

// NewInMemory initializes an empty repository on an in-memory filesystem
// with .git at the filesystem root.
func NewInMemory(t testing.TB) *Repo {
	t.Helper()

	fsys := billyfs.NewInMemoryFS()
	dotGit, err := fsys.Raw().Chroot(".git")
	require.NoError(t, err, "failed to chroot .git")

	storage := filesystem.NewStorage(dotGit, cache.NewObjectLRUDefault())
	repo, err := gogit.Init(storage, fsys.Raw())
	require.NoError(t, err, "failed to initialize in-memory repository")

	return newRepo(t, fsys, repo)
}

// NewOnDisk initializes an empty repository in a fresh temporary directory.
func NewOnDisk(t testing.TB) *Repo {
	t.Helper()

	dir := t.TempDir()
	repo, err := gogit.PlainInit(dir, false)
	require.NoError(t, err, "failed to initialize repository in %s", dir)

	return newRepo(t, billyfs.NewOSFS(dir), repo)
}

func newRepo(t testing.TB, fsys *billyfs.FS, repo *gogit.Repository) *Repo {
	t.Helper()

	wt, err := repo.Worktree()
	require.NoError(t, err, "failed to get worktree")

	return &Repo{t: t, fs: fsys, repo: repo, wt: wt}
}

// FS returns the filesystem holding the worktree and its .git directory.
func (r *Repo) FS() *billyfs.FS {
	return r.fs
}

// Root returns the worktree root path of the underlying filesystem.
func (r *Repo) Root() string {
	return r.fs.Root()
}

// Write creates or replaces a worktree file without staging it.
func (r *Repo) Write(name, content string) *Repo {
	r.t.Helper()

	if dir := path.Dir(name); dir != "." {
		require.NoError(r.t, r.fs.MkdirAll(dir, 0o755), "failed to create %s", dir)
	}
	require.NoError(r.t, r.fs.WriteFile(name, []byte(content), 0o644), "failed to write %s", name)
	return r
}

// Symlink creates a symbolic link in the worktree without staging it.
func (r *Repo) Symlink(target, link string) *Repo {
	r.t.Helper()

	require.NoError(r.t, r.fs.Symlink(target, link), "failed to link %s", link)
	return r
}

// Add stages the named paths.
func (r *Repo) Add(names ...string) *Repo {
	r.t.Helper()

	for _, name := range names {
		_, err := r.wt.Add(name)
		require.NoError(r.t, err, "failed to add %s", name)
	}
	return r
}

// Commit records the staged changes and returns the commit hash.
func (r *Repo) Commit(msg string) string {
	r.t.Helper()

	sig := Author
	sig.When = sig.When.Add(time.Duration(r.commits) * time.Minute)
	r.commits++

	hash, err := r.wt.Commit(msg, &gogit.CommitOptions{Author: &sig, Committer: &sig})
	require.NoError(r.t, err, "failed to commit %q", msg)
	return hash.String()
}

// CommitFiles writes, stages and commits the given files in one step.
func (r *Repo) CommitFiles(msg string, files map[string]string) string {
	r.t.Helper()

	for name, content := range files {
		r.Write(name, content)
		r.Add(name)
	}
	return r.Commit(msg)
}
