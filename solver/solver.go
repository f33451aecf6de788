package solver

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/katalvlaran/bookscan/anneal"
	"github.com/katalvlaran/bookscan/genetic"
	"github.com/katalvlaran/bookscan/greedy"
	"github.com/katalvlaran/bookscan/instance"
	"github.com/katalvlaran/bookscan/internal/logging"
	"github.com/katalvlaran/bookscan/internal/rng"
	"github.com/katalvlaran/bookscan/localsearch"
	"github.com/katalvlaran/bookscan/scoring"
)

// Solve runs opts.Algo on in.
//
// Steps:
//  1. Reject a nil instance or an unknown algorithm.
//  2. Tag the run with a fresh UUID and log its start.
//  3. Dispatch to the strategy; Debug-level logging adds per-stage and
//     per-generation progress hooks.
//  4. Log the outcome and, when opts.Metrics is set, record it.
//
// Complexity: that of the chosen strategy.
func Solve(in *instance.Instance, opts Options) (Report, error) {
	if in == nil {
		return Report{}, ErrNilInstance
	}
	if _, err := ParseAlgo(opts.Algo.String()); err != nil {
		return Report{}, err
	}

	var (
		id     = uuid.NewString()
		logger = logging.OrDiscard(opts.Logger).With("run_id", id, "algo", opts.Algo.String())
		start  = time.Now()
	)
	logger.Info("run started",
		"days", in.Days(), "books", in.NumBooks(), "libraries", in.NumLibraries())

	res, err := run(in, opts, logger)
	if err != nil {
		logger.Error("run failed", "error", err)
		return Report{}, fmt.Errorf("%s: %w", opts.Algo, err)
	}

	rep := Report{RunID: id, Algo: opts.Algo, Result: res, Elapsed: time.Since(start)}
	logger.Info("run finished",
		"score", res.Score, "evaluations", res.Evaluations,
		"signups", res.Solution.Len(), "elapsed", rep.Elapsed)
	if opts.Metrics != nil {
		opts.Metrics.Observe(rep)
	}

	return rep, nil
}

// Compare runs each algorithm in order and returns one report per entry.
// It stops at the first error.
func Compare(in *instance.Instance, opts Options, algos ...Algo) ([]Report, error) {
	reports := make([]Report, 0, len(algos))
	for i, a := range algos {
		o := opts
		o.Algo = a
		if opts.Annealing.Rand != nil {
			o.Annealing.Rand = rng.Derive(opts.Annealing.Rand, uint64(i))
		}
		if opts.Genetic.Rand != nil {
			o.Genetic.Rand = rng.Derive(opts.Genetic.Rand, uint64(i))
		}

		rep, err := Solve(in, o)
		if err != nil {
			return reports, err
		}
		reports = append(reports, rep)
	}

	return reports, nil
}

func run(in *instance.Instance, opts Options, logger *slog.Logger) (scoring.Result, error) {
	debug := logger.Enabled(context.Background(), slog.LevelDebug)

	switch opts.Algo {
	case Greedy:
		return greedy.Solve(in), nil

	case Annealing:
		o := opts.Annealing
		if debug {
			o.OnStage = chainStage(o.OnStage, func(stage int, t float64, cur, best int64) {
				logger.Debug("annealing stage",
					"stage", stage, "temperature", t, "current", cur, "best", best)
			})
		}
		return anneal.Run(in, o)

	case LocalFirst, LocalBest:
		o := opts.LocalSearch
		o.Policy = localsearch.BestImprovement
		if opts.Algo == LocalFirst {
			o.Policy = localsearch.FirstImprovement
		}
		return localsearch.Run(in, o)

	case Genetic:
		o := opts.Genetic
		if debug {
			o.OnGeneration = chainGeneration(o.OnGeneration, func(gen int, best int64) {
				logger.Debug("genetic generation", "generation", gen, "best", best)
			})
		}
		return genetic.Run(in, o)
	}

	return scoring.Result{}, fmt.Errorf("%w: %s", ErrUnsupportedAlgorithm, opts.Algo)
}

func chainStage(a, b anneal.StageHook) anneal.StageHook {
	if a == nil {
		return b
	}
	return func(stage int, t float64, cur, best int64) {
		a(stage, t, cur, best)
		b(stage, t, cur, best)
	}
}

func chainGeneration(a, b genetic.GenerationHook) genetic.GenerationHook {
	if a == nil {
		return b
	}
	return func(gen int, best int64) {
		a(gen, best)
		b(gen, best)
	}
}
