package scoring

import (
	"fmt"

	"github.com/katalvlaran/bookscan/instance"
)

// ValidateSolution checks the structure of sol against in:
//   - every library index is in range and appears at most once,
//   - every book index is in range, held by its library, and listed once per library.
//
// It does not check the day budget: running out of days is a scoring outcome,
// not a structural error.
//
// Complexity: O(L + Σ|books(l)| + Σ offered).
func ValidateSolution(in *instance.Instance, sol Solution) error {
	var (
		usedLib = make([]bool, in.NumLibraries())
		held    = make([]int, in.NumBooks()) // held[b] == k+1 ⇔ library of entry k holds b
		listed  = make([]int, in.NumBooks()) // listed[b] == k+1 ⇔ entry k already offers b
		k, b    int
		a       Assignment
	)
	for k, a = range sol.Assignments {
		if a.Library < 0 || a.Library >= in.NumLibraries() {
			return fmt.Errorf("%w: entry %d: library index %d out of range", ErrInvalidSolution, k, a.Library)
		}
		if usedLib[a.Library] {
			return fmt.Errorf("%w: entry %d: library index %d repeated", ErrInvalidSolution, k, a.Library)
		}
		usedLib[a.Library] = true

		for _, b = range in.SortedBooks(a.Library) {
			held[b] = k + 1
		}
		for _, b = range a.Books {
			if b < 0 || b >= in.NumBooks() {
				return fmt.Errorf("%w: entry %d: book index %d out of range", ErrInvalidSolution, k, b)
			}
			if held[b] != k+1 {
				return fmt.Errorf("%w: entry %d: library %d does not hold book %d",
					ErrInvalidSolution, k, in.Library(a.Library).ID, in.Book(b).ID)
			}
			if listed[b] == k+1 {
				return fmt.Errorf("%w: entry %d: book %d listed twice", ErrInvalidSolution, k, in.Book(b).ID)
			}
			listed[b] = k + 1
		}
	}

	return nil
}
