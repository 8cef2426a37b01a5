package scan

import (
	"github.com/input-output-hk/git-fixme/errors"
)

// Mode selects what is reported for each match.
type Mode int

const (
	// ModeDefault reports every matching line with its line number.
	ModeDefault Mode = iota
	// ModeFileOnly reports each file with a match once and stops reading it.
	ModeFileOnly
	// ModeInsertion reports every matching line with the commit that last changed it.
	ModeInsertion
	// ModeStats reports only totals after the walk.
	ModeStats
)

// String implements fmt.Stringer.
func (m Mode) String() string {
	switch m {
	case ModeDefault:
		return "default"
	case ModeFileOnly:
		return "file"
	case ModeInsertion:
		return "insertion"
	case ModeStats:
		return "stats"
	default:
		return "unknown"
	}
}

// ModeFromFlags maps the command-line mode switches to a Mode.
// At most one switch may be set.
func ModeFromFlags(file, insertion, stats bool) (Mode, error) {
	mode := ModeDefault
	set := 0
	if file {
		mode = ModeFileOnly
		set++
	}
	if insertion {
		mode = ModeInsertion
		set++
	}
	if stats {
		mode = ModeStats
		set++
	}
	if set > 1 {
		return ModeDefault, errors.New(errors.CodeInvalidInput, "--file, --insertion and --stats are mutually exclusive")
	}
	return mode, nil
}
