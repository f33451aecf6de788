package hashcode

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ErrSyntax marks input that does not follow the file format.
var ErrSyntax = errors.New("hashcode: syntax error")

// maxLine bounds a single line. Library lines of the largest data sets hold
// tens of thousands of ids.
const maxLine = 16 << 20

// maxPrealloc caps capacities derived from counts in the input.
const maxPrealloc = 1 << 12

// lineReader yields the non-blank lines of r as integer fields.
type lineReader struct {
	sc   *bufio.Scanner
	line int
}

func newLineReader(r io.Reader) *lineReader {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLine)

	return &lineReader{sc: sc}
}

// next returns the fields of the next non-blank line as integers.
// want < 0 accepts any count; otherwise exactly want fields are required.
// At end of input it returns io.ErrUnexpectedEOF wrapped in ErrSyntax.
func (lr *lineReader) next(what string, want int) ([]int64, error) {
	for lr.sc.Scan() {
		lr.line++
		fields := strings.Fields(lr.sc.Text())
		if len(fields) == 0 {
			continue
		}
		if want >= 0 && len(fields) != want {
			return nil, fmt.Errorf("%w: line %d: %s: want %d fields, got %d",
				ErrSyntax, lr.line, what, want, len(fields))
		}
		out := make([]int64, len(fields))
		for i, f := range fields {
			v, err := strconv.ParseInt(f, 10, 64)
			if err != nil {
				return nil, fmt.Errorf("%w: line %d: %s: field %d: %v", ErrSyntax, lr.line, what, i+1, err)
			}
			out[i] = v
		}

		return out, nil
	}
	if err := lr.sc.Err(); err != nil {
		return nil, fmt.Errorf("hashcode: line %d: %w", lr.line+1, err)
	}

	return nil, fmt.Errorf("%w: %s: %w", ErrSyntax, what, io.ErrUnexpectedEOF)
}

// trailing reports an error when anything but blank lines remains.
func (lr *lineReader) trailing() error {
	for lr.sc.Scan() {
		lr.line++
		if strings.TrimSpace(lr.sc.Text()) != "" {
			return fmt.Errorf("%w: line %d: unexpected trailing content", ErrSyntax, lr.line)
		}
	}

	return lr.sc.Err()
}

// ints converts parsed fields to int, rejecting values outside [lo, max int].
func (lr *lineReader) ints(what string, vals []int64, lo int64) ([]int, error) {
	out := make([]int, len(vals))
	for i, v := range vals {
		if v < lo || v != int64(int(v)) {
			return nil, fmt.Errorf("%w: line %d: %s: value %d out of range", ErrSyntax, lr.line, what, v)
		}
		out[i] = int(v)
	}

	return out, nil
}
