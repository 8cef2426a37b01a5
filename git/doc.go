// Package git answers the three repository questions a working-tree scan needs:
// is a path ignored, is it tracked in the index, and which commit last touched a line.
//
// It is a thin facade over go-git. A Repo is bound to one working-tree root,
// resolved once, and every query takes a path relative to that root.
//
// # Opening a repository
//
// From a directory on disk, searching upward like git does:
//
//	repo, err := git.Discover(ctx, ".")
//	if errors.Is(err, git.ErrNotRepository) {
//	    // not inside a work tree
//	}
//
// From the project filesystem abstraction (on-disk or in-memory):
//
//	repo, err := git.Open(ctx, &git.Options{
//	    FS:      billyfs.NewInMemoryFS(),
//	    Workdir: ".",
//	})
//
// # Queries
//
//	ignored, err := repo.IsIgnored("build/out.o", false)
//	tracked, err := repo.IsTracked("cmd/main.go")
//	blame, err := repo.Blame(ctx, "cmd/main.go")
//	rev, err := blame.Revision(42)
//
// Ignore rules come from .gitignore files, .git/info/exclude, and, for
// discovered repositories, core.excludesFile and the system gitconfig.
// The matcher and the index are loaded on first use and reused afterwards.
// A load failure is returned from every query rather than cached.
//
// Blame attributes the content committed at HEAD. Uncommitted edits are not
// reflected, so line numbers refer to HEAD's version of the file.
package git
