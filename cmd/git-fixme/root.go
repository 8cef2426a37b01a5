package main

import (
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/input-output-hk/git-fixme/config"
	"github.com/input-output-hk/git-fixme/errors"
	"github.com/input-output-hk/git-fixme/git"
	"github.com/input-output-hk/git-fixme/scan"
)

// rootOptions holds the command-line flags.
type rootOptions struct {
	file      bool
	insertion bool
	stats     bool
	dir       string
	strict    bool
	verbose   bool
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "git-fixme",
		Short: "List FIXME markers in the tracked files of a git repository",
		Long: `git-fixme scans the tracked, non-ignored files of the current git working tree
for marker keys and prints every matching line.

Marker keys default to FIXME. Set GIT_FIXME_KEYS to a colon-separated list,
or "keys" in .git-fixme.yaml or $XDG_CONFIG_HOME/git-fixme/config.yaml.

Examples:
  # Every FIXME with its line number
  git-fixme

  # Files containing TODO or FIXME
  GIT_FIXME_KEYS=TODO:FIXME git-fixme --file

  # The commit that introduced each marker
  git-fixme --insertion

  # Number of files with markers and total markers
  git-fixme --stats`,
		Version:       version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runScan(cmd, opts)
		},
	}

	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	flags := cmd.Flags()
	flags.BoolVar(&opts.file, "file", false, "only report each file with a marker once")
	flags.BoolVar(&opts.insertion, "insertion", false, "report the commit that last changed each marker line")
	flags.BoolVar(&opts.stats, "stats", false, "only report the number of files with markers and the number of markers")
	flags.StringVarP(&opts.dir, "directory", "C", "", "run as if started in `dir`")
	flags.BoolVar(&opts.strict, "strict", false, "exit with status 1 when any file could not be scanned")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "log debug details to stderr")
	cmd.MarkFlagsMutuallyExclusive("file", "insertion", "stats")

	return cmd
}

func runScan(cmd *cobra.Command, opts *rootOptions) error {
	ctx := cmd.Context()
	logger := newLogger(cmd.ErrOrStderr(), opts.verbose)

	mode, err := scan.ModeFromFlags(opts.file, opts.insertion, opts.stats)
	if err != nil {
		return err
	}

	start := opts.dir
	if start == "" {
		if start, err = os.Getwd(); err != nil {
			return errors.Wrap(err, errors.CodeDiscovery, "cannot determine working directory")
		}
	}

	repo, err := git.Discover(ctx, start)
	if err != nil {
		return errors.Wrap(err, errors.CodeDiscovery, "cannot open repository")
	}
	base, err := repo.Rel(start)
	if err != nil {
		return errors.Wrap(err, errors.CodeDiscovery, "cannot open repository")
	}
	logger.Debug("repository discovered", "root", repo.Root(), "start", base)

	cfg, err := config.Load(ctx, config.LoadOptions{Repo: repo.Filesystem()})
	if err != nil {
		return err
	}
	logger.Debug("configuration loaded", "keys", cfg.Keys, "source", cfg.KeysSource, "strict", cfg.Strict)

	if mode == scan.ModeInsertion {
		if head, err := repo.Head(ctx); err == nil {
			logger.Debug("attributing against HEAD", "commit", head)
		} else {
			logger.Debug("HEAD unavailable, attribution will fail", "error", err)
		}
	}

	printer := scan.NewPrinter(cmd.OutOrStdout(), cmd.ErrOrStderr(), base)
	walker, err := scan.NewWalker(
		repo.Filesystem(),
		repository{repo},
		scan.Config{Markers: scan.NewMarkerSet(cfg.Keys), Mode: mode},
		printer,
		scan.WithLogger(logger),
	)
	if err != nil {
		return err
	}

	res, err := walker.Walk(ctx, base)
	if err != nil {
		return err
	}

	if err := printer.Finish(mode, res); err != nil && (opts.strict || cfg.Strict) {
		return err
	}
	return nil
}

// newLogger logs to w. Scan faults are already printed inline, so only
// errors are logged unless verbose.
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelError
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
