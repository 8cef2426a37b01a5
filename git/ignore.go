package git

import (
	"bufio"
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/go-git/go-git/v5/plumbing/format/gitignore"

	billyfs "github.com/input-output-hk/git-fixme/fs/billy"
)

// IsIgnored reports whether path matches the repository's ignore rules:
// .gitignore files at every level, .git/info/exclude and, for repositories
// opened with SystemExcludes, the user and system excludes files.
// The worktree root itself is never ignored.
func (r *Repo) IsIgnored(path string, isDir bool) (bool, error) {
	p, err := cleanPath(path)
	if err != nil {
		return false, err
	}
	if p == "" {
		return false, nil
	}

	m, err := r.ignoreMatcher()
	if err != nil {
		return false, err
	}

	return m.Match(strings.Split(p, "/"), isDir), nil
}

// ignoreMatcher builds the matcher on first use. A load failure is not
// remembered, so the next query retries.
func (r *Repo) ignoreMatcher() (gitignore.Matcher, error) {
	if r.matcher != nil {
		return r.matcher, nil
	}

	var patterns []gitignore.Pattern
	if r.options.SystemExcludes {
		ps, err := userExcludes()
		if err != nil {
			return nil, err
		}
		patterns = append(patterns, ps...)
	}

	ps, err := gitignore.ReadPatterns(r.worktree.Filesystem, nil)
	if err != nil {
		return nil, WrapError(err, "failed to read ignore files")
	}
	patterns = append(patterns, ps...)
	patterns = append(patterns, r.worktree.Excludes...)

	// Later patterns take precedence, so repository rules override user rules.
	r.matcher = gitignore.NewMatcher(patterns)
	return r.matcher, nil
}

// userExcludes loads the system excludes followed by the user's. When
// core.excludesFile is unset, git falls back to $XDG_CONFIG_HOME/git/ignore.
func userExcludes() ([]gitignore.Pattern, error) {
	root := billyfs.NewBaseOSFS().Raw()

	system, err := gitignore.LoadSystemPatterns(root)
	if err != nil {
		return nil, WrapError(err, "failed to load system excludes")
	}

	global, err := gitignore.LoadGlobalPatterns(root)
	if err != nil {
		return nil, WrapError(err, "failed to load core.excludesFile")
	}
	if len(global) == 0 {
		global, err = readExcludesFile(filepath.Join(xdg.ConfigHome, "git", "ignore"))
		if err != nil {
			return nil, err
		}
	}

	return append(system, global...), nil
}

func readExcludesFile(name string) ([]gitignore.Pattern, error) {
	data, err := os.ReadFile(name)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, WrapErrorf(err, "failed to read excludes file %q", name)
	}

	var ps []gitignore.Pattern
	sc := bufio.NewScanner(bytes.NewReader(data))
	for sc.Scan() {
		line := strings.TrimRight(sc.Text(), "\r")
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		ps = append(ps, gitignore.ParsePattern(line, nil))
	}
	return ps, WrapErrorf(sc.Err(), "failed to read excludes file %q", name)
}
