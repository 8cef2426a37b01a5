package scan

import (
	"bufio"
	"context"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/input-output-hk/git-fixme/errors"
)

// fileResult is the outcome of scanning one file.
type fileResult struct {
	matches int
	// faults counts lines whose attribution failed.
	faults int
}

// scanFile reads the file at name line by line and dispatches each match
// according to the configured mode.
//
// A line that is not valid UTF-8 ends the scan with zero matches and no
// error; records already printed for earlier lines remain. In ModeFileOnly
// the scan stops at the first match. Any read error other than EOF fails
// the whole file.
func (w *Walker) scanFile(ctx context.Context, name string) (fileResult, error) {
	var res fileResult

	f, err := w.fs.Open(name)
	if err != nil {
		return res, errors.Wrap(err, errors.CodeIO, "cannot open file")
	}
	defer f.Close()

	var attr *attributor
	if w.cfg.Mode == ModeInsertion {
		attr = newAttributor(ctx, w.repo, name)
	}

	r := bufio.NewReader(f)
	for lineNo := 1; ; lineNo++ {
		line, readErr := r.ReadString('\n')
		if readErr != nil && !errors.Is(readErr, io.EOF) {
			return fileResult{}, errors.Wrapf(readErr, errors.CodeIO, "read failed at line %d", lineNo)
		}
		if line == "" {
			break
		}

		if !utf8.ValidString(line) {
			w.logger.Debug("stopping at undecodable line", "path", name, "line", lineNo)
			return fileResult{faults: res.faults}, nil
		}

		content := strings.TrimSuffix(line, "\n")
		content = strings.TrimSuffix(content, "\r")

		if w.cfg.Markers.Match(content) {
			res.matches++

			switch w.cfg.Mode {
			case ModeFileOnly:
				w.out.File(name)
				return res, nil
			case ModeInsertion:
				rev, err := attr.revision(lineNo)
				if err != nil {
					res.faults++
					w.fault(name, err)
					break
				}
				w.out.Insertion(name, content, rev)
			case ModeStats:
			default:
				w.out.Line(name, lineNo, content)
			}
		}

		if readErr != nil {
			break
		}
	}

	w.logger.Debug("scanned file", "path", name, "matches", res.matches)
	return res, nil
}
