package hashcode

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/katalvlaran/bookscan/instance"
	"github.com/katalvlaran/bookscan/scoring"
)

// WriteSubmission writes the signups of ev that scan at least one book, in
// signup order, using the instance's library and book ids.
func WriteSubmission(w io.Writer, in *instance.Instance, ev scoring.Evaluation) error {
	bw := bufio.NewWriter(w)

	var count int
	for _, s := range ev.Signups {
		if len(s.Books) > 0 {
			count++
		}
	}
	buf := strconv.AppendInt(nil, int64(count), 10)
	buf = append(buf, '\n')
	if _, err := bw.Write(buf); err != nil {
		return fmt.Errorf("hashcode: write submission: %w", err)
	}

	for _, s := range ev.Signups {
		if len(s.Books) == 0 {
			continue
		}
		buf = buf[:0]
		buf = strconv.AppendInt(buf, int64(in.Library(s.Library).ID), 10)
		buf = append(buf, ' ')
		buf = strconv.AppendInt(buf, int64(len(s.Books)), 10)
		buf = append(buf, '\n')
		for i, b := range s.Books {
			if i > 0 {
				buf = append(buf, ' ')
			}
			buf = strconv.AppendInt(buf, int64(in.Book(b).ID), 10)
		}
		buf = append(buf, '\n')
		if _, err := bw.Write(buf); err != nil {
			return fmt.Errorf("hashcode: write submission: %w", err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("hashcode: write submission: %w", err)
	}

	return nil
}

// ParseSubmission reads a submission for in and returns it as a solution in
// index form. Ids unknown to in are syntax errors; structural problems such as
// a library listed twice are reported by scoring.ValidateSolution.
func ParseSubmission(r io.Reader, in *instance.Instance) (scoring.Solution, error) {
	lr := newLineReader(r)

	head, err := lr.next("library count", 1)
	if err != nil {
		return scoring.Solution{}, err
	}
	count, err := lr.ints("library count", head, 0)
	if err != nil {
		return scoring.Solution{}, err
	}

	sol := scoring.Solution{Assignments: make([]scoring.Assignment, 0, min(count[0], maxPrealloc))}
	for k := 0; k < count[0]; k++ {
		what := fmt.Sprintf("signup %d", k)
		raw, err := lr.next(what, 2)
		if err != nil {
			return scoring.Solution{}, err
		}
		yk, err := lr.ints(what, raw, 0)
		if err != nil {
			return scoring.Solution{}, err
		}
		lib, ok := in.LibraryIndex(yk[0])
		if !ok {
			return scoring.Solution{}, fmt.Errorf("%w: line %d: unknown library id %d", ErrSyntax, lr.line, yk[0])
		}
		if yk[1] < 1 {
			return scoring.Solution{}, fmt.Errorf("%w: line %d: library %d scans no books", ErrSyntax, lr.line, yk[0])
		}

		raw, err = lr.next(what+" books", yk[1])
		if err != nil {
			return scoring.Solution{}, err
		}
		ids, err := lr.ints(what+" books", raw, math.MinInt)
		if err != nil {
			return scoring.Solution{}, err
		}
		books := make([]int, len(ids))
		for i, id := range ids {
			b, ok := in.BookIndex(id)
			if !ok {
				return scoring.Solution{}, fmt.Errorf("%w: line %d: unknown book id %d", ErrSyntax, lr.line, id)
			}
			books[i] = b
		}
		sol.Assignments = append(sol.Assignments, scoring.Assignment{Library: lib, Books: books})
	}
	if err = lr.trailing(); err != nil {
		return scoring.Solution{}, err
	}
	if err = scoring.ValidateSolution(in, sol); err != nil {
		return scoring.Solution{}, err
	}

	return sol, nil
}
