package scan

import (
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/input-output-hk/git-fixme/errors"
)

// AggregateMessage is reported once after a walk with faults.
const AggregateMessage = "some errors happened while scanning"

// Printer renders records on one stream and faults on another.
// Paths are shown relative to base, the directory the walk started in.
type Printer struct {
	out    io.Writer
	errOut io.Writer
	base   string
}

// NewPrinter returns a Printer writing records to out and faults to errOut.
func NewPrinter(out, errOut io.Writer, base string) *Printer {
	return &Printer{out: out, errOut: errOut, base: path.Clean(base)}
}

// Display converts a worktree path to the form shown to the user.
func (p *Printer) Display(name string) string {
	if p.base == "." {
		return name
	}
	if rel, ok := strings.CutPrefix(name, p.base+"/"); ok {
		return rel
	}
	return name
}

// Line prints a ModeDefault record.
func (p *Printer) Line(name string, line int, content string) {
	fmt.Fprintf(p.out, "%s:%d %s\n", p.Display(name), line, content)
}

// File prints a ModeFileOnly record.
func (p *Printer) File(name string) {
	fmt.Fprintf(p.out, "%s\n", p.Display(name))
}

// Insertion prints a ModeInsertion record.
func (p *Printer) Insertion(name, content, rev string) {
	fmt.Fprintf(p.out, "%s:%s @ %s\n", p.Display(name), content, rev)
}

// Fault reports a per-entry failure inline.
func (p *Printer) Fault(name string, err error) {
	fmt.Fprintf(p.errOut, "%s:%v\n", p.Display(name), err)
}

// Tally prints the ModeStats summary.
func (p *Printer) Tally(s Stats) {
	fmt.Fprintln(p.out, s.String())
}

// Aggregate prints an error line that concerns the whole run.
func (p *Printer) Aggregate(err error) {
	fmt.Fprintf(p.errOut, "error: %v\n", err)
}

// Finish prints what a mode reports after the walk: the totals for
// ModeStats and the aggregate error line when anything faulted. The
// returned error carries CodeScanFailed when res failed.
func (p *Printer) Finish(mode Mode, res Result) error {
	if mode == ModeStats {
		p.Tally(res.Stats)
	}
	if !res.Failed() {
		return nil
	}

	err := errors.New(errors.CodeScanFailed, AggregateMessage)
	p.Aggregate(err)
	return err
}
