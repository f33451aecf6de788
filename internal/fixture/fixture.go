// Package fixture builds small, deterministic problem instances shared by the
// tests, examples and benchmarks of every strategy package.
package fixture

import (
	"math"
	"math/rand"

	"github.com/katalvlaran/bookscan/instance"
)

// Must panics on error. Fixtures are hand-written, so an error is a bug in the fixture.
func Must(in *instance.Instance, err error) *instance.Instance {
	if err != nil {
		panic(err)
	}

	return in
}

// TwoLibraries is the canonical D=5 scenario:
//
//	A: signup 1, 2 books/day, books {5, 3}  → density 8
//	B: signup 2, 1 book/day,  books {10}    → density 5
//
// Greedy signs up A then B for a total of 18.
func TwoLibraries() *instance.Instance {
	return Must(instance.New(5,
		[]instance.Book{{ID: 0, Score: 5}, {ID: 1, Score: 3}, {ID: 2, Score: 10}},
		[]instance.Library{
			{ID: 0, SignupDays: 1, BooksPerDay: 2, Books: []int{0, 1}},
			{ID: 1, SignupDays: 2, BooksPerDay: 1, Books: []int{2}},
		},
	))
}

// SharedBook has one book (score 7) held by both libraries plus one private
// book each. Both libraries fit in D, so the shared book must count once.
func SharedBook() *instance.Instance {
	return Must(instance.New(10,
		[]instance.Book{{ID: 0, Score: 7}, {ID: 1, Score: 2}, {ID: 2, Score: 1}},
		[]instance.Library{
			{ID: 0, SignupDays: 1, BooksPerDay: 5, Books: []int{0, 1}},
			{ID: 1, SignupDays: 1, BooksPerDay: 5, Books: []int{0, 2}},
		},
	))
}

// Oversized holds one library whose signup exceeds D and carries the most
// valuable book, next to a small library that fits.
func Oversized() *instance.Instance {
	return Must(instance.New(4,
		[]instance.Book{{ID: 0, Score: 1000}, {ID: 1, Score: 4}},
		[]instance.Library{
			{ID: 0, SignupDays: 9, BooksPerDay: 10, Books: []int{0}},
			{ID: 1, SignupDays: 1, BooksPerDay: 1, Books: []int{1}},
		},
	))
}

// SingleLibrary has exactly one library.
func SingleLibrary() *instance.Instance {
	return Must(instance.New(6,
		[]instance.Book{{ID: 0, Score: 4}, {ID: 1, Score: 9}, {ID: 2, Score: 1}},
		[]instance.Library{{ID: 0, SignupDays: 2, BooksPerDay: 1, Books: []int{0, 1, 2}}},
	))
}

// ZeroDays is a non-empty instance with D=0.
func ZeroDays() *instance.Instance {
	return Must(instance.New(0,
		[]instance.Book{{ID: 0, Score: 3}, {ID: 1, Score: 8}},
		[]instance.Library{
			{ID: 0, SignupDays: 1, BooksPerDay: 1, Books: []int{0, 1}},
			{ID: 1, SignupDays: 2, BooksPerDay: 3, Books: []int{1}},
		},
	))
}

// HugeThroughput has one library scanning math.MaxInt/2+1 books per day for
// two days, so days × books/day overflows int. Both books fit: score 16.
func HugeThroughput() *instance.Instance {
	return Must(instance.New(3,
		[]instance.Book{{ID: 0, Score: 7}, {ID: 1, Score: 9}},
		[]instance.Library{{ID: 0, SignupDays: 1, BooksPerDay: math.MaxInt/2 + 1, Books: []int{0, 1}}},
	))
}

// Empty has no books and no libraries.
func Empty() *instance.Instance {
	return Must(instance.New(10, nil, nil))
}

// Random builds a reproducible instance with b books, l libraries and d days.
// Book scores are in [0,100), signups in [1,maxSignup], throughput in [1,4],
// and each library holds between 1 and min(b, 12) distinct books.
func Random(seed int64, b, l, d, maxSignup int) *instance.Instance {
	r := rand.New(rand.NewSource(seed))
	books := make([]instance.Book, b)

	var i int
	for i = 0; i < b; i++ {
		books[i] = instance.Book{ID: i, Score: int64(r.Intn(100))}
	}
	libs := make([]instance.Library, l)
	for i = 0; i < l; i++ {
		limit := b
		if limit > 12 {
			limit = 12
		}
		var held []int
		if limit > 0 {
			held = r.Perm(b)[:1+r.Intn(limit)]
		}
		libs[i] = instance.Library{
			ID:          i,
			SignupDays:  1 + r.Intn(maxSignup),
			BooksPerDay: 1 + r.Intn(4),
			Books:       held,
		}
	}

	return Must(instance.New(d, books, libs))
}

// RemovalHelps is ranked A, B, C by density and scores 100 in that order,
// because C (signup 3) gets no scanning days. Dropping A scores 130, dropping
// B scores 150, dropping C keeps 100, so first and best improvement differ.
func RemovalHelps() *instance.Instance {
	return Must(instance.New(5,
		[]instance.Book{
			{ID: 0, Score: 60}, {ID: 1, Score: 40},
			{ID: 2, Score: 30}, {ID: 3, Score: 30}, {ID: 4, Score: 30},
		},
		[]instance.Library{
			{ID: 0, SignupDays: 1, BooksPerDay: 1, Books: []int{0}},       // A: density 60
			{ID: 1, SignupDays: 1, BooksPerDay: 1, Books: []int{1}},       // B: density 40
			{ID: 2, SignupDays: 3, BooksPerDay: 3, Books: []int{2, 3, 4}}, // C: density 30
		},
	))
}
