package genetic

import (
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/bookscan/instance"
	"github.com/katalvlaran/bookscan/internal/rng"
	"github.com/katalvlaran/bookscan/scoring"
)

// Fitness is the unrestricted score of a signup order.
func Fitness(in *instance.Instance, individual []int) int64 {
	return scoring.ScoreOrder(in, individual)
}

// Run evolves a population and returns the fittest individual of the final one.
//
// Steps:
//  1. Validate opts and draw PopulationSize uniform random permutations.
//  2. Per generation: copy the Elitism fittest unchanged, then fill the rest
//     with children of two tournament winners (ordered crossover, mutation).
//  3. Score the new population once; fitness values are reused by every
//     tournament of the next generation.
//  4. Return the fittest member of the final population with its plan.
//
// All random draws happen on the calling goroutine, so a fixed seed yields
// the same result for any Workers value.
//
// Complexity: O((Generations+1) · PopulationSize · (L + Σ books)).
func Run(in *instance.Instance, opts Options) (scoring.Result, error) {
	if err := opts.Validate(); err != nil {
		return scoring.Result{}, err
	}

	var (
		r    = rng.Resolve(opts.Rand, opts.Seed)
		n    = in.NumLibraries()
		size = opts.PopulationSize
		ev   = newEvaluator(in, opts.Workers)
		pop  = make([][]int, size)
		fit  = make([]int64, size)
		i    int
		gen  int
	)
	// 1) Initial population: uniform random permutations.
	for i = 0; i < size; i++ {
		pop[i] = rng.Perm(n, r)
	}
	if err := ev.fitness(pop, fit); err != nil {
		return scoring.Result{}, err
	}
	evaluations := size

	// 2) Generations.
	for gen = 0; gen < opts.Generations; gen++ {
		next := make([][]int, 0, size)
		for _, e := range elite(fit, opts.Elitism) {
			next = append(next, append([]int(nil), pop[e]...))
		}
		for len(next) < size {
			p1 := Tournament(fit, opts.TournamentSize, r)
			p2 := Tournament(fit, opts.TournamentSize, r)
			child := Crossover(pop[p1], pop[p2], r)
			Mutate(child, opts.MutationProbability, opts.SwapProbability, r)
			next = append(next, child)
		}

		nextFit := make([]int64, size)
		if err := ev.fitness(next, nextFit); err != nil {
			return scoring.Result{}, err
		}
		pop, fit = next, nextFit
		evaluations += size

		if opts.OnGeneration != nil {
			opts.OnGeneration(gen, fit[argmax(fit)])
		}
	}

	// 3) Fittest of the final population.
	best := argmax(fit)
	detail := scoring.Evaluate(in, scoring.FromOrder(in, pop[best]))

	return scoring.Result{Score: fit[best], Solution: detail.Solution(), Evaluations: evaluations}, nil
}

// argmax returns the first index holding the maximum.
func argmax(fit []int64) int {
	best := 0
	for i := 1; i < len(fit); i++ {
		if fit[i] > fit[best] {
			best = i
		}
	}

	return best
}

// elite returns the indices of the k fittest individuals, ties by index.
func elite(fit []int64, k int) []int {
	if k <= 0 {
		return nil
	}
	idx := make([]int, len(fit))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool { return fit[idx[a]] > fit[idx[b]] })

	return idx[:k]
}

// evaluator computes population fitness, optionally in parallel.
type evaluator struct {
	scorers []*scoring.Scorer // one per worker
}

// newEvaluator prepares one scorer per worker; workers < 1 means one.
// Scorers keep scratch state, so they are never shared between goroutines.
func newEvaluator(in *instance.Instance, workers int) *evaluator {
	if workers < 1 {
		workers = 1
	}
	e := &evaluator{scorers: make([]*scoring.Scorer, workers)}
	for w := range e.scorers {
		e.scorers[w] = scoring.NewScorer(in)
	}

	return e
}

// fitness fills out[i] with the fitness of pop[i]. Each worker owns a
// contiguous chunk and its own scorer, so no state is shared.
//
// Complexity: O(len(pop) · (L + Σ books)) work, split across the workers.
func (e *evaluator) fitness(pop [][]int, out []int64) error {
	workers := len(e.scorers)
	if workers == 1 || len(pop) < 2 {
		sc := e.scorers[0]
		for i := range pop {
			out[i] = sc.ScoreOrder(pop[i])
		}
		return nil
	}

	var g errgroup.Group
	g.SetLimit(workers)
	chunk := (len(pop) + workers - 1) / workers
	for w := 0; w < workers; w++ {
		lo := w * chunk
		if lo >= len(pop) {
			break
		}
		hi := min(lo+chunk, len(pop))
		sc := e.scorers[w]
		g.Go(func() error {
			for i := lo; i < hi; i++ {
				out[i] = sc.ScoreOrder(pop[i])
			}
			return nil
		})
	}

	return g.Wait()
}
