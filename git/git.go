package git

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/format/gitignore"
	"github.com/go-git/go-git/v5/plumbing/object"

	"github.com/input-output-hk/git-fixme/fs"
	billyfs "github.com/input-output-hk/git-fixme/fs/billy"
	"github.com/input-output-hk/git-fixme/git/internal/fsbridge"
)

const (
	// DefaultStorerCacheSize is the default size for the LRU object cache.
	// Blame walks history, so a warm object cache matters.
	DefaultStorerCacheSize = 1000

	// DefaultWorkdir is the default worktree directory name.
	DefaultWorkdir = "."
)

// Options configures Open.
type Options struct {
	// FS is the REQUIRED filesystem holding the repository (OS or in-memory).
	// It must be a *billy.FS from the fs/billy package.
	FS fs.Filesystem

	// Workdir is the path within FS for the worktree root.
	// Defaults to "." (the root of FS).
	Workdir string

	// StorerCacheSize sets the LRU objects cache entries.
	// Defaults to DefaultStorerCacheSize.
	StorerCacheSize int

	// SystemExcludes adds the user's core.excludesFile (or $XDG_CONFIG_HOME/git/ignore)
	// and the system gitconfig excludes to the ignore rules. Only meaningful for
	// repositories on the native filesystem.
	SystemExcludes bool
}

// Validate checks that the Options are properly configured.
func (o *Options) Validate() error {
	if o.FS == nil {
		return WrapError(ErrInvalidOptions, "FS is required")
	}

	if o.StorerCacheSize < 0 {
		return WrapError(ErrInvalidOptions, "StorerCacheSize cannot be negative")
	}

	return nil
}

// applyDefaults sets default values for any unset fields in Options.
func (o *Options) applyDefaults() {
	if o.Workdir == "" {
		o.Workdir = DefaultWorkdir
	}

	if o.StorerCacheSize == 0 {
		o.StorerCacheSize = DefaultStorerCacheSize
	}
}

// Repo is a git repository bound to one working-tree root.
// It is not safe for concurrent use; the lazily loaded state is unguarded.
type Repo struct {
	repo     *git.Repository
	worktree *git.Worktree
	fs       *billyfs.FS
	root     string
	options  Options

	matcher gitignore.Matcher
	tracked map[string]struct{}
	head    *object.Commit
}

// Open opens an existing non-bare repository stored in opts.FS at opts.Workdir.
// The .git directory must live directly under the workdir.
func Open(ctx context.Context, opts *Options) (*Repo, error) {
	if err := opts.Validate(); err != nil {
		return nil, WrapError(err, "invalid options")
	}

	opts.applyDefaults()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Convert fs.Filesystem to billy.Filesystem
	billyFS, err := fsbridge.ToBillyFilesystem(opts.FS)
	if err != nil {
		return nil, fmt.Errorf("filesystem conversion failed: %w", err)
	}

	// Chroot to the workdir to scope the repository location
	scopedFS, err := billyFS.Chroot(opts.Workdir)
	if err != nil {
		return nil, fmt.Errorf("failed to chroot to workdir %q: %w", opts.Workdir, err)
	}

	dotGitFS, err := scopedFS.Chroot(".git")
	if err != nil {
		return nil, fmt.Errorf("failed to access .git directory: %w", err)
	}
	storage := fsbridge.NewStorage(dotGitFS, opts.StorerCacheSize)

	repo, err := git.Open(storage, scopedFS)
	if err != nil {
		if errors.Is(err, git.ErrRepositoryNotExists) {
			return nil, WrapErrorf(ErrNotRepository, "open %q", opts.Workdir)
		}
		return nil, WrapError(err, "failed to open repository")
	}

	return newRepo(repo, *opts)
}

// Discover finds the repository enclosing start on the native filesystem,
// searching parent directories like git does. Linked worktrees and
// submodule checkouts (a .git file instead of a directory) are supported.
func Discover(ctx context.Context, start string) (*Repo, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	abs, err := fs.GetAbs(start)
	if err != nil {
		return nil, err
	}

	exists, err := fs.Exists(abs)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, WrapErrorf(ErrNotRepository, "start directory %q does not exist", abs)
	}

	repo, err := git.PlainOpenWithOptions(abs, &git.PlainOpenOptions{
		DetectDotGit:          true,
		EnableDotGitCommonDir: true,
	})
	if err != nil {
		if errors.Is(err, git.ErrRepositoryNotExists) {
			return nil, WrapErrorf(ErrNotRepository, "no repository encloses %q", abs)
		}
		return nil, WrapErrorf(err, "failed to open repository at %q", abs)
	}

	return newRepo(repo, Options{
		Workdir:         DefaultWorkdir,
		StorerCacheSize: DefaultStorerCacheSize,
		SystemExcludes:  true,
	})
}

func newRepo(repo *git.Repository, opts Options) (*Repo, error) {
	worktree, err := repo.Worktree()
	if err != nil {
		if errors.Is(err, git.ErrIsBareRepository) {
			return nil, ErrBareRepository
		}
		return nil, WrapError(err, "failed to get worktree")
	}

	wtFS := billyfs.NewFS(worktree.Filesystem)
	if opts.FS == nil {
		opts.FS = wtFS
	}

	return &Repo{
		repo:     repo,
		worktree: worktree,
		fs:       wtFS,
		root:     worktree.Filesystem.Root(),
		options:  opts,
	}, nil
}

// Root returns the working-tree root. For discovered repositories this is an
// absolute native path; for Open it is the root of the scoped filesystem.
func (r *Repo) Root() string {
	return r.root
}

// Filesystem returns the working tree as a filesystem rooted at Root.
// Paths passed to the query methods are paths within this filesystem.
func (r *Repo) Filesystem() *billyfs.FS {
	return r.fs
}

// Rel converts a native path into a slash-separated path relative to Root.
// The root itself is ".".
func (r *Repo) Rel(path string) (string, error) {
	abs, err := fs.GetAbs(path)
	if err != nil {
		return "", err
	}
	rel, err := filepath.Rel(r.root, abs)
	if err != nil {
		return "", WrapErrorf(ErrPathOutsideRepo, "%q", path)
	}
	rel = filepath.ToSlash(rel)
	if _, err := cleanPath(rel); err != nil {
		return "", err
	}
	return rel, nil
}
