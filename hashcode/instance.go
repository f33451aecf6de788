package hashcode

import (
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/katalvlaran/bookscan/instance"
)

// Parse reads an instance file.
//
// Layout:
//
//	B L D
//	S_0 … S_{B-1}
//	N_j T_j M_j        ┐ once per library
//	id … (N_j ids)     ┘
//
// Counts must be non-negative. Book scores, signup times and throughputs are
// passed through to instance.New, which enforces the model rules.
func Parse(r io.Reader) (*instance.Instance, error) {
	lr := newLineReader(r)

	head, err := lr.next("header", 3)
	if err != nil {
		return nil, err
	}
	counts, err := lr.ints("header", head[:2], 0)
	if err != nil {
		return nil, err
	}
	// A negative day count is a model error, reported by instance.New.
	d, err := lr.ints("header", head[2:], math.MinInt)
	if err != nil {
		return nil, err
	}
	nb, nl, days := counts[0], counts[1], d[0]

	// Counts come from the file: slices grow with the lines actually read,
	// so a lying header ends in ErrSyntax rather than a huge allocation.
	var books []instance.Book
	if nb > 0 {
		scores, err := lr.next("book scores", nb)
		if err != nil {
			return nil, err
		}
		books = make([]instance.Book, len(scores))
		for i, s := range scores {
			books[i] = instance.Book{ID: i, Score: s}
		}
	}

	libs := make([]instance.Library, 0, min(nl, maxPrealloc))
	for i := 0; i < nl; i++ {
		what := fmt.Sprintf("library %d", i)
		raw, err := lr.next(what, 3)
		if err != nil {
			return nil, err
		}
		// Signup and throughput may be ≤ 0 here; instance.New rejects them.
		n, err := lr.ints(what, raw[:1], 0)
		if err != nil {
			return nil, err
		}
		rest, err := lr.ints(what, raw[1:], math.MinInt)
		if err != nil {
			return nil, err
		}
		var held []int
		if n[0] > 0 {
			ids, err := lr.next(what+" books", n[0])
			if err != nil {
				return nil, err
			}
			if held, err = lr.ints(what+" books", ids, math.MinInt); err != nil {
				return nil, err
			}
		}
		libs = append(libs, instance.Library{ID: i, SignupDays: rest[0], BooksPerDay: rest[1], Books: held})
	}
	if err = lr.trailing(); err != nil {
		return nil, err
	}

	return instance.New(days, books, libs)
}

// ParseFile opens path and parses it.
func ParseFile(path string) (*instance.Instance, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("hashcode: open instance: %w", err)
	}
	defer f.Close()

	in, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filepath.Base(path), err)
	}

	return in, nil
}

// DatasetKey returns the data set letter of an instance path, for example
// "c" for "inputs/c_incunabula.txt". It is the lower-cased first rune of the
// base name, or "" for an empty name.
func DatasetKey(path string) string {
	base := filepath.Base(path)
	if base == "." || base == string(filepath.Separator) || base == "" {
		return ""
	}
	for _, r := range base {
		return strings.ToLower(string(r))
	}

	return ""
}
