package anneal

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/katalvlaran/bookscan/greedy"
	"github.com/katalvlaran/bookscan/instance"
	"github.com/katalvlaran/bookscan/internal/rng"
	"github.com/katalvlaran/bookscan/scoring"
)

// Run anneals from the initial plan and returns the best plan seen during the
// whole schedule, not the final current plan. The best plan is never worse
// than the final one, and with WarmStart never worse than greedy.
//
// Steps:
//  1. Build the initial plan (greedy-based or cold, see WarmStart) and score it.
//  2. Per stage: IterationsPerStage proposals from Neighbor, each accepted by
//     the Metropolis rule; remember the best plan seen.
//  3. Call OnStage, multiply T by CoolingRate; stop once T ≤ MinTemperature.
//
// Complexity: O(stages · IterationsPerStage · (L + Σ offered books)).
func Run(in *instance.Instance, opts Options) (scoring.Result, error) {
	if err := opts.Validate(); err != nil {
		return scoring.Result{}, err
	}

	var (
		r           = rng.Resolve(opts.Rand, opts.Seed)
		sc          = scoring.NewScorer(in)
		cur         = initialSolution(in, opts.WarmStart)
		curScore    = sc.Score(cur)
		best        = cur
		bestScore   = curScore
		evaluations = 1
		temperature = opts.InitialTemperature
		stage       int
		it          int
		cand        scoring.Solution
		candScore   int64
		err         error
	)
	for temperature > opts.MinTemperature {
		for it = 0; it < opts.IterationsPerStage; it++ {
			if cand, err = Neighbor(in, cur, r); err != nil {
				return scoring.Result{}, err
			}
			candScore = sc.Score(cand)
			evaluations++

			if !accept(candScore-curScore, temperature, r) {
				continue
			}
			cur, curScore = cand, candScore
			if curScore > bestScore {
				best, bestScore = cur, curScore
			}
		}
		if opts.OnStage != nil {
			opts.OnStage(stage, temperature, curScore, bestScore)
		}
		temperature *= opts.CoolingRate
		stage++
	}

	return scoring.Result{Score: bestScore, Solution: best.Clone(), Evaluations: evaluations}, nil
}

// accept is the Metropolis criterion.
func accept(delta int64, temperature float64, r *rand.Rand) bool {
	if delta >= 0 {
		return true
	}

	return r.Float64() < math.Exp(float64(delta)/temperature)
}

// initialSolution builds the starting plan; see the package doc.
func initialSolution(in *instance.Instance, warm bool) scoring.Solution {
	var (
		sol    scoring.Solution
		placed = make([]bool, in.NumLibraries())
		order  []int
		lib    int
	)
	if warm {
		for _, a := range greedy.Solve(in).Solution.Assignments {
			sol.Assignments = append(sol.Assignments, a)
			placed[a.Library] = true
		}
		order = greedy.Rank(in)
	} else {
		order = make([]int, in.NumLibraries())
		for lib = range order {
			order[lib] = lib
		}
	}
	for _, lib = range order {
		if placed[lib] || in.Library(lib).SignupDays > in.Days() {
			continue
		}
		sol.Assignments = append(sol.Assignments, scoring.Assignment{Library: lib, Books: []int{}})
	}

	return sol
}

// Neighbor returns a new plan one elementary edit away from sol.
// sol is never modified; unchanged book lists are shared with it.
// The error is non-nil only if drawing the book subset fails.
func Neighbor(in *instance.Instance, sol scoring.Solution, r *rand.Rand) (scoring.Solution, error) {
	n := len(sol.Assignments)
	if n == 0 {
		return scoring.Solution{}, nil
	}
	out := scoring.Solution{Assignments: make([]scoring.Assignment, n)}
	copy(out.Assignments, sol.Assignments)

	idx := r.Intn(n)
	if r.Float64() < 0.5 {
		j := r.Intn(n)
		out.Assignments[idx], out.Assignments[j] = out.Assignments[j], out.Assignments[idx]

		return out, nil
	}
	books, err := resample(in, out, idx, r)
	if err != nil {
		return scoring.Solution{}, err
	}
	out.Assignments[idx].Books = books

	return out, nil
}

// resample draws a uniform subset of the books of entry idx, sized to the scan
// capacity left after every signup up to and including that entry.
//
// Steps:
//  1. Subtract the signup days of entries 0..idx from D, stopping at zero.
//  2. Size = scoring.Capacity(days left, books/day, held books).
//  3. Draw that many positions of the sorted view, keep them ascending so the
//     subset stays in descending score order.
//
// Complexity: O(idx + |books(lib)| log |books(lib)|).
func resample(in *instance.Instance, sol scoring.Solution, idx int, r *rand.Rand) ([]int, error) {
	var (
		remaining = in.Days()
		k         int
	)
	for k = 0; k <= idx && remaining > 0; k++ {
		remaining -= in.Library(sol.Assignments[k].Library).SignupDays
	}
	lib := sol.Assignments[idx].Library
	sorted := in.SortedBooks(lib)
	size := scoring.Capacity(remaining, in.Library(lib).BooksPerDay, len(sorted))

	pos, err := rng.SortedSample(len(sorted), size, r)
	if err != nil {
		return nil, fmt.Errorf("anneal: resample library %d: %w", in.Library(lib).ID, err)
	}
	books := make([]int, size)
	for k = range pos {
		books[k] = sorted[pos[k]]
	}

	return books, nil
}
