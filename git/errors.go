// Package git provides sentinel errors for repository queries.
// All errors can be checked using errors.Is() for programmatic handling.
package git

import (
	"errors"
	"fmt"
)

// Common sentinel errors that can be checked with errors.Is().
// These wrap underlying go-git errors while providing a stable API for consumers.

// ErrNotRepository is returned when no git repository encloses the start directory.
var ErrNotRepository = errors.New("not a git repository")

// ErrBareRepository is returned when the repository has no working tree to scan.
var ErrBareRepository = errors.New("repository has no working tree")

// ErrNoHead is returned when HEAD does not resolve to a commit, as in a
// freshly initialized repository. Blame needs a commit to attribute lines to.
var ErrNoHead = errors.New("HEAD does not point to a commit")

// ErrPathOutsideRepo is returned when a path cannot be expressed relative to
// the working-tree root (absolute, or escaping with "..").
var ErrPathOutsideRepo = errors.New("path is outside the repository")

// ErrLineOutOfRange is returned when a blame lookup asks for a line the
// committed content does not have.
var ErrLineOutOfRange = errors.New("line out of range")

// ErrInvalidOptions is returned when Options fail validation.
var ErrInvalidOptions = errors.New("invalid options")

// WrapError wraps an error with additional context while preserving
// the ability to check against sentinel errors using errors.Is().
func WrapError(err error, msg string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", msg, err)
}

// WrapErrorf wraps an error with formatted additional context while preserving
// the ability to check against sentinel errors using errors.Is().
func WrapErrorf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf(format+": %w", append(args, err)...)
}
