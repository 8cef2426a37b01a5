// Package config loads git-fixme settings from layered sources.
//
// Sources, lowest precedence first:
//
//  1. Built-in defaults (marker key FIXME)
//  2. The user file, $XDG_CONFIG_HOME/git-fixme/config.yaml
//  3. The repository file, .git-fixme.yaml at the working-tree root
//  4. Environment variables prefixed with GIT_FIXME_
//
// Keys may be given as a YAML list or as a colon-separated string:
//
//	keys: [TODO, FIXME]
//	keys: "TODO:FIXME"
//
// # Basic Usage
//
//	cfg, err := config.Load(ctx, config.LoadOptions{Repo: repo.Filesystem()})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	markers := scan.NewMarkerSet(cfg.Keys)
package config

import (
	"github.com/input-output-hk/git-fixme/fs"
)

const (
	// DefaultKey is the marker key used when no source sets one.
	DefaultKey = "FIXME"

	// KeySeparator splits keys given as a single string.
	KeySeparator = ":"

	// EnvPrefix prefixes every environment variable the loader reads.
	EnvPrefix = "GIT_FIXME_"

	// RepoFile is the repository config file, relative to the working-tree root.
	RepoFile = ".git-fixme.yaml"

	// UserFile is the user config file, relative to the XDG config directories.
	UserFile = "git-fixme/config.yaml"

	// SourceDefault names the built-in layer in Config.KeysSource.
	SourceDefault = "default"

	// SourceEnv names the environment layer in Config.KeysSource.
	SourceEnv = "env"
)

// Config is the resolved configuration. It is not modified after Load.
type Config struct {
	// Keys are the marker keys, never empty.
	Keys []string

	// KeysSource names the layer that set Keys: SourceDefault, a file path or SourceEnv.
	KeysSource string

	// Strict makes a run with scan faults exit non-zero.
	Strict bool
}

// LoadOptions controls which sources Load reads.
type LoadOptions struct {
	// Repo is the working tree. RepoFile is read from its root when present.
	Repo fs.ReadFS

	// UserFile overrides the user config path. When empty the XDG config
	// directories are searched for the UserFile name.
	UserFile string

	// SkipUserFile disables the user config layer.
	SkipUserFile bool

	// SkipEnv disables the environment layer.
	SkipEnv bool
}
