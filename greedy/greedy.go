package greedy

import (
	"sort"

	"github.com/katalvlaran/bookscan/instance"
	"github.com/katalvlaran/bookscan/scoring"
)

// Rank returns every library index ordered by density, highest first.
func Rank(in *instance.Instance) []int {
	order := make([]int, in.NumLibraries())

	var i int
	for i = range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return in.Density(order[a]) > in.Density(order[b])
	})

	return order
}

// Solve runs the greedy construction.
//
// Steps:
//  1. Rank libraries by density, see Rank.
//  2. Sign them up in that order; each scans its best not-yet-scanned books
//     up to its capacity. The plan ends at the first library that cannot
//     finish signup before the deadline.
//
// The plan is scored exactly once.
//
// Complexity: O(L log L + Σ books).
func Solve(in *instance.Instance) scoring.Result {
	ev := scoring.Evaluate(in, scoring.FromOrder(in, Rank(in)))

	return scoring.Result{Score: ev.Score, Solution: ev.Solution(), Evaluations: 1}
}
