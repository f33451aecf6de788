package localsearch

import (
	"github.com/katalvlaran/bookscan/greedy"
	"github.com/katalvlaran/bookscan/instance"
	"github.com/katalvlaran/bookscan/scoring"
)

// Run improves the greedy baseline.
func Run(in *instance.Instance, opts Options) (scoring.Result, error) {
	return Improve(in, greedy.Rank(in), opts)
}

// Improve sweeps the single-removal neighborhood of order.
// order is not modified. The baseline score is the unrestricted score of order.
func Improve(in *instance.Instance, order []int, opts Options) (scoring.Result, error) {
	if err := opts.Validate(); err != nil {
		return scoring.Result{}, err
	}

	var (
		sc          = scoring.NewScorer(in)
		cur         = append([]int(nil), order...)
		curScore    = sc.ScoreOrder(cur)
		evaluations = 1
		pass        int
		drop        int
		score       int64
		evals       int
	)
	for pass = 0; pass < opts.MaxPasses; pass++ {
		drop, score, evals = sweep(sc, cur, curScore, opts.Policy)
		evaluations += evals
		if drop < 0 {
			break // local optimum under single removal
		}
		cur = append(cur[:drop], cur[drop+1:]...)
		curScore = score
	}

	ev := sc.Evaluate(scoring.FromOrder(in, cur))

	return scoring.Result{Score: ev.Score, Solution: ev.Solution(), Evaluations: evaluations}, nil
}

// sweep scores every single-removal neighbor of order (or stops at the first
// improvement) and returns the position to drop, or -1 if none beats base.
func sweep(sc *scoring.Scorer, order []int, base int64, policy Policy) (int, int64, int) {
	if len(order) == 0 {
		return -1, base, 0
	}

	var (
		nb        = make([]int, 0, len(order)-1)
		bestIdx   = -1
		bestScore = base
		evals     int
		i         int
		s         int64
	)
	for i = range order {
		nb = append(nb[:0], order[:i]...)
		nb = append(nb, order[i+1:]...)
		s = sc.ScoreOrder(nb)
		evals++

		if s <= bestScore {
			continue
		}
		bestIdx, bestScore = i, s
		if policy == FirstImprovement {
			break
		}
	}

	return bestIdx, bestScore, evals
}
