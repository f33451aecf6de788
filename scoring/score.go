package scoring

import "github.com/katalvlaran/bookscan/instance"

// Scorer evaluates solutions for one instance with a reusable scanned-set.
//
// The scanned-set is a stamp slice: a book is "scanned in this walk" when its
// stamp equals the current epoch, so resetting between walks is O(1).
type Scorer struct {
	in    *instance.Instance
	stamp []uint32
	epoch uint32
}

// NewScorer returns a Scorer bound to in.
func NewScorer(in *instance.Instance) *Scorer {
	return &Scorer{in: in, stamp: make([]uint32, in.NumBooks())}
}

// Instance returns the instance the scorer is bound to.
func (s *Scorer) Instance() *instance.Instance { return s.in }

// Score returns the value of sol.
//
// Complexity: O(Σ offered books).
func (s *Scorer) Score(sol Solution) int64 {
	a := sol.Assignments

	return s.walk(len(a), func(k int) (int, []int) { return a[k].Library, a[k].Books }, nil)
}

// ScoreOrder scores a library order with unrestricted book selection,
// equivalent to Score(FromOrder(in, order)) without building the solution.
func (s *Scorer) ScoreOrder(order []int) int64 {
	in := s.in

	return s.walk(len(order), func(k int) (int, []int) { return order[k], in.SortedBooks(order[k]) }, nil)
}

// Evaluate runs the walk and records every signup and the books it scans.
func (s *Scorer) Evaluate(sol Solution) Evaluation {
	var ev Evaluation
	a := sol.Assignments
	ev.Score = s.walk(len(a), func(k int) (int, []int) { return a[k].Library, a[k].Books }, &ev)

	return ev
}

// walk is the feasibility and scoring rule shared by every entry point.
// at(k) yields the library index and offered books of the k-th entry.
func (s *Scorer) walk(n int, at func(k int) (int, []int), rec *Evaluation) int64 {
	s.nextEpoch()

	var (
		remaining = s.in.Days()
		total     int64
		k, lib    int
		offered   []int
		library   instance.Library
		capacity  int
		taken     int
		b         int
		sign      *Signup
	)
	for k = 0; k < n; k++ {
		lib, offered = at(k)
		library = s.in.Library(lib)

		// Too late to sign up: this and every later library are skipped.
		if remaining <= 0 || remaining < library.SignupDays {
			break
		}
		if rec != nil {
			rec.Signups = append(rec.Signups, Signup{Library: lib, Start: s.in.Days() - remaining})
			sign = &rec.Signups[len(rec.Signups)-1]
		}
		remaining -= library.SignupDays

		capacity = Capacity(remaining, library.BooksPerDay, len(offered))
		taken = 0
		for _, b = range offered {
			if taken >= capacity {
				break
			}
			if s.stamp[b] == s.epoch {
				continue
			}
			s.stamp[b] = s.epoch
			total += s.in.BookScore(b)
			taken++
			if rec != nil {
				sign.Books = append(sign.Books, b)
			}
		}
	}

	return total
}

// Capacity returns min(days*perDay, limit) for non-negative inputs without
// overflowing: a library can never scan more books than it is offered, so
// the product only matters while it stays below limit.
//
// Complexity: O(1).
func Capacity(days, perDay, limit int) int {
	if days <= 0 || perDay <= 0 || limit <= 0 {
		return 0
	}
	if perDay > limit/days {
		return limit
	}

	return min(days*perDay, limit)
}

// nextEpoch advances the stamp epoch, clearing the set on wrap-around.
func (s *Scorer) nextEpoch() {
	s.epoch++
	if s.epoch == 0 {
		clear(s.stamp)
		s.epoch = 1
	}
}

// Score is a convenience wrapper: NewScorer(in).Score(sol).
func Score(in *instance.Instance, sol Solution) int64 {
	return NewScorer(in).Score(sol)
}

// ScoreOrder is a convenience wrapper: NewScorer(in).ScoreOrder(order).
func ScoreOrder(in *instance.Instance, order []int) int64 {
	return NewScorer(in).ScoreOrder(order)
}

// Evaluate is a convenience wrapper: NewScorer(in).Evaluate(sol).
func Evaluate(in *instance.Instance, sol Solution) Evaluation {
	return NewScorer(in).Evaluate(sol)
}
