package scoring

import "github.com/katalvlaran/bookscan/instance"

// FromOrder builds a solution from a library order with unrestricted book
// selection: each library is offered its full descending-score list.
// The offered slices are the instance's shared read-only views.
//
// Complexity: O(len(order)).
func FromOrder(in *instance.Instance, order []int) Solution {
	sol := Solution{Assignments: make([]Assignment, len(order))}

	var (
		k, lib int
	)
	for k, lib = range order {
		sol.Assignments[k] = Assignment{Library: lib, Books: in.SortedBooks(lib)}
	}

	return sol
}

// Order returns the library indices of s in signup order.
func (s Solution) Order() []int {
	out := make([]int, len(s.Assignments))
	for k, a := range s.Assignments {
		out[k] = a.Library
	}

	return out
}

// Clone returns a deep copy of s.
func (s Solution) Clone() Solution {
	out := Solution{Assignments: make([]Assignment, len(s.Assignments))}
	for k, a := range s.Assignments {
		out.Assignments[k] = Assignment{Library: a.Library, Books: append([]int(nil), a.Books...)}
	}

	return out
}

// Len returns the number of assignments.
func (s Solution) Len() int { return len(s.Assignments) }

// Solution turns a recorded walk into a plan that offers each signed-up library
// exactly the books it scanned. Scoring that plan reproduces e.Score.
func (e Evaluation) Solution() Solution {
	sol := Solution{Assignments: make([]Assignment, len(e.Signups))}
	for k, s := range e.Signups {
		sol.Assignments[k] = Assignment{Library: s.Library, Books: append([]int{}, s.Books...)}
	}

	return sol
}
