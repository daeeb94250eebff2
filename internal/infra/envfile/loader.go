// Package envfile parses KEY=VALUE env files for a launch target.
package envfile

import (
	"bufio"
	"bytes"
	"errors"
	"io"
	"os"
	"regexp"

	"github.com/aalvaropc/launchenv/internal/domain"
	"github.com/aalvaropc/launchenv/internal/ports"
)

const defaultMaxLineSize = 1 << 20

// space is Unicode whitespace: \t-\r, the \x1c-\x1f separators, space, NEL and
// the Z categories (NBSP, en/em spaces, line and paragraph separators, ...).
const space = `\t-\r\x1c-\x20\x{85}\p{Z}`

var (
	blankOrComment = regexp.MustCompile(`^[` + space + `]*(#.*)?$`)
	assignment     = regexp.MustCompile(`^[` + space + `]*([^` + space + `=]+)[` + space + `]*=(.*)$`)
)

type Loader struct {
	maxLineSize int
}

type Option func(*Loader)

// WithMaxLineSize bounds the length of a single line; longer lines fail the load.
func WithMaxLineSize(n int) Option {
	return func(l *Loader) {
		if n > 0 {
			l.maxLineSize = n
		}
	}
}

func NewLoader(opts ...Option) *Loader {
	l := &Loader{maxLineSize: defaultMaxLineSize}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

var _ ports.EnvFileLoader = (*Loader)(nil)

// Load reads path and returns its assignments in file order.
// Open and read errors are returned as is; the first malformed line
// aborts the load with a *domain.FormatError.
func (l *Loader) Load(path string) (domain.EnvAssignmentList, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	list, err := l.Parse(f)
	if err != nil {
		var fe *domain.FormatError
		if errors.As(err, &fe) {
			fe.Path = path
		}
		return nil, err
	}
	return list, nil
}

// Parse applies the line grammar to r.
func (l *Loader) Parse(r io.Reader) (domain.EnvAssignmentList, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, min(4096, l.maxLineSize)), l.maxLineSize)
	sc.Split(scanLines)

	out := domain.EnvAssignmentList{}
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := sc.Text()

		if blankOrComment.MatchString(line) {
			continue
		}

		m := assignment.FindStringSubmatch(line)
		if m == nil {
			return nil, &domain.FormatError{LineNo: lineNo, Line: line}
		}
		out = append(out, domain.EnvAssignment{Key: m[1], Value: m[2]})
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// scanLines splits on \n, \r\n and a lone \r. None of them is part of the line.
func scanLines(data []byte, atEOF bool) (advance int, token []byte, err error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}
	if i := bytes.IndexAny(data, "\r\n"); i >= 0 {
		if data[i] == '\n' {
			return i + 1, data[:i], nil
		}
		if i+1 < len(data) {
			if data[i+1] == '\n' {
				return i + 2, data[:i], nil
			}
			return i + 1, data[:i], nil
		}
		if atEOF {
			return i + 1, data[:i], nil
		}
		// A trailing \r may be the first half of \r\n.
		return 0, nil, nil
	}
	if atEOF {
		return len(data), data, nil
	}
	return 0, nil, nil
}

// Load parses path with a default Loader.
func Load(path string) (domain.EnvAssignmentList, error) {
	return NewLoader().Load(path)
}
