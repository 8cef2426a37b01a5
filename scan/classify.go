package scan

import (
	"os"

	"github.com/input-output-hk/git-fixme/errors"
)

// gitDir is the repository storage entry, never part of the working tree.
const gitDir = ".git"

// Action is what the walker does with a directory entry.
type Action int

const (
	// ActionSkip ignores the entry.
	ActionSkip Action = iota
	// ActionEnter descends into a directory.
	ActionEnter
	// ActionCheck scans a file.
	ActionCheck
	// ActionFault reports the entry as failed.
	ActionFault
)

// String implements fmt.Stringer.
func (a Action) String() string {
	switch a {
	case ActionSkip:
		return "skip"
	case ActionEnter:
		return "enter"
	case ActionCheck:
		return "check"
	case ActionFault:
		return "fault"
	default:
		return "unknown"
	}
}

// Decision is the classification of one entry.
type Decision struct {
	Action Action
	// Reason says why an entry is skipped.
	Reason string
	// Err is set for ActionFault.
	Err error
}

// Classify decides what to do with the entry at path, whose metadata is info.
// A nil info means the metadata could not be read.
func Classify(repo Repository, path string, info os.FileInfo) Decision {
	if info == nil {
		return Decision{Action: ActionFault, Err: errors.New(errors.CodeIO, "unreadable entry metadata")}
	}

	if info.Name() == gitDir {
		return Decision{Action: ActionSkip, Reason: "repository storage"}
	}

	if info.Mode()&os.ModeSymlink != 0 {
		return Decision{Action: ActionSkip, Reason: "symbolic link"}
	}

	isDir := info.IsDir()
	ignored, err := repo.IsIgnored(path, isDir)
	if err != nil {
		return Decision{Action: ActionFault, Err: errors.Wrap(err, errors.CodeRepositoryQuery, "ignore check failed")}
	}
	if ignored {
		return Decision{Action: ActionSkip, Reason: "ignored"}
	}

	if isDir {
		return Decision{Action: ActionEnter}
	}

	tracked, err := repo.IsTracked(path)
	if err != nil {
		return Decision{Action: ActionFault, Err: errors.Wrap(err, errors.CodeRepositoryQuery, "index lookup failed")}
	}
	if !tracked {
		return Decision{Action: ActionSkip, Reason: "untracked"}
	}

	return Decision{Action: ActionCheck}
}
