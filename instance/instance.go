package instance

import (
	"fmt"
	"sort"
)

// Instance is an immutable, validated problem instance.
type Instance struct {
	days      int
	books     []Book
	libraries []Library

	bookIndex    map[int]int // book ID → index in books
	libraryIndex map[int]int // library ID → index in libraries

	sorted   [][]int   // per library: book indices, descending score, stable
	totals   []int64   // per library: sum of its book scores
	density  []float64 // per library: totals / signup days
	maxScore int64     // sum of all book scores
}

// New validates the input and builds an Instance.
//
// The books and libraries slices are copied; later changes by the caller do
// not affect the Instance.
//
// Validation order:
//  1. D ≥ 0.
//  2. Book IDs unique, scores ≥ 0.
//  3. Library IDs unique, signup and throughput > 0.
//  4. Every library book ID exists and appears once in that library.
//
// Complexity: O(B + Σ|books(l)|·log|books(l)|).
func New(days int, books []Book, libraries []Library) (*Instance, error) {
	// 1) Day budget.
	if days < 0 {
		return nil, fmt.Errorf("%w: D=%d", ErrNegativeDays, days)
	}

	in := &Instance{
		days:         days,
		books:        make([]Book, len(books)),
		libraries:    make([]Library, len(libraries)),
		bookIndex:    make(map[int]int, len(books)),
		libraryIndex: make(map[int]int, len(libraries)),
		sorted:       make([][]int, len(libraries)),
		totals:       make([]int64, len(libraries)),
		density:      make([]float64, len(libraries)),
	}
	copy(in.books, books)

	// 2) Books.
	var (
		i  int
		b  Book
		ok bool
	)
	for i, b = range in.books {
		if _, ok = in.bookIndex[b.ID]; ok {
			return nil, fmt.Errorf("%w: book %d", ErrDuplicateBook, b.ID)
		}
		if b.Score < 0 {
			return nil, fmt.Errorf("%w: book %d score=%d", ErrNegativeScore, b.ID, b.Score)
		}
		in.bookIndex[b.ID] = i
		in.maxScore += b.Score
	}

	// 3) and 4) Libraries and their book lists.
	var lib Library
	for i, lib = range libraries {
		if _, ok = in.libraryIndex[lib.ID]; ok {
			return nil, fmt.Errorf("%w: library %d", ErrDuplicateLibrary, lib.ID)
		}
		if lib.SignupDays <= 0 {
			return nil, fmt.Errorf("%w: library %d signup=%d", ErrBadSignup, lib.ID, lib.SignupDays)
		}
		if lib.BooksPerDay <= 0 {
			return nil, fmt.Errorf("%w: library %d books/day=%d", ErrBadThroughput, lib.ID, lib.BooksPerDay)
		}
		in.libraryIndex[lib.ID] = i

		idx, total, err := in.resolveBooks(lib)
		if err != nil {
			return nil, err
		}
		lib.Books = append([]int(nil), lib.Books...)
		in.libraries[i] = lib
		in.sorted[i] = idx
		in.totals[i] = total
		in.density[i] = float64(total) / float64(lib.SignupDays)
	}

	return in, nil
}

// resolveBooks maps a library's book IDs to indices and sorts them by
// descending score. sort.SliceStable keeps input order among equal scores, so
// the view is reproducible.
func (in *Instance) resolveBooks(lib Library) ([]int, int64, error) {
	idx := make([]int, 0, len(lib.Books))
	seen := make(map[int]struct{}, len(lib.Books))

	var (
		id, bi int
		ok     bool
		total  int64
	)
	for _, id = range lib.Books {
		bi, ok = in.bookIndex[id]
		if !ok {
			return nil, 0, fmt.Errorf("%w: library %d book %d", ErrUnknownBook, lib.ID, id)
		}
		if _, ok = seen[id]; ok {
			return nil, 0, fmt.Errorf("%w: library %d book %d", ErrRepeatedBook, lib.ID, id)
		}
		seen[id] = struct{}{}
		idx = append(idx, bi)
		total += in.books[bi].Score
	}
	sort.SliceStable(idx, func(a, b int) bool {
		return in.books[idx[a]].Score > in.books[idx[b]].Score
	})

	return idx, total, nil
}

// Days returns the day budget D.
func (in *Instance) Days() int { return in.days }

// NumBooks returns B.
func (in *Instance) NumBooks() int { return len(in.books) }

// NumLibraries returns L.
func (in *Instance) NumLibraries() int { return len(in.libraries) }

// Book returns the book at index i.
func (in *Instance) Book(i int) Book { return in.books[i] }

// BookScore returns the score of the book at index i.
func (in *Instance) BookScore(i int) int64 { return in.books[i].Score }

// Library returns the library at index i. The Books slice must not be modified.
func (in *Instance) Library(i int) Library { return in.libraries[i] }

// SortedBooks returns the book indices of library i in descending score order.
// The slice is shared: callers must treat it as read-only.
func (in *Instance) SortedBooks(i int) []int { return in.sorted[i] }

// TotalScore returns the sum of the scores of every book library i holds.
func (in *Instance) TotalScore(i int) int64 { return in.totals[i] }

// Density returns TotalScore(i) / SignupDays of library i.
func (in *Instance) Density(i int) float64 { return in.density[i] }

// MaxScore returns the sum of all book scores, an upper bound on any solution.
func (in *Instance) MaxScore() int64 { return in.maxScore }

// BookIndex maps a book ID to its index.
func (in *Instance) BookIndex(id int) (int, bool) {
	i, ok := in.bookIndex[id]
	return i, ok
}

// LibraryIndex maps a library ID to its index.
func (in *Instance) LibraryIndex(id int) (int, bool) {
	i, ok := in.libraryIndex[id]
	return i, ok
}

// Holds reports whether library lib holds the book at index book.
//
// Complexity: O(|books(lib)|).
func (in *Instance) Holds(lib, book int) bool {
	var b int
	for _, b = range in.sorted[lib] {
		if b == book {
			return true
		}
	}

	return false
}
