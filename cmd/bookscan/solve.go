package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/bookscan/config"
	"github.com/katalvlaran/bookscan/hashcode"
	"github.com/katalvlaran/bookscan/instance"
	"github.com/katalvlaran/bookscan/scoring"
	"github.com/katalvlaran/bookscan/solver"
)

type solveFlags struct {
	algo    string
	config  string
	seed    int64
	preset  string
	out     string
	metrics string
}

func newSolveCmd(g *globals) *cobra.Command {
	f := &solveFlags{}
	cmd := &cobra.Command{
		Use:   "solve <instance>",
		Short: "Run one strategy and optionally write the submission",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSolve(cmd, g, f, args[0])
		},
	}
	fl := cmd.Flags()
	fl.StringVar(&f.algo, "algo", "", "greedy, annealing, local-first, local-best or genetic (default from config)")
	fl.StringVar(&f.config, "config", "", "YAML configuration file")
	fl.Int64Var(&f.seed, "seed", 0, "random seed for annealing and genetic (default from config)")
	fl.StringVar(&f.preset, "preset", "", `genetic preset: a..f, or "auto" to use the instance file's letter`)
	fl.StringVar(&f.out, "out", "", "write the submission to this file")
	fl.StringVar(&f.metrics, "metrics", "", "write Prometheus metrics in text format to this file")

	return cmd
}

// applyFlags layers the command-line overrides on top of cfg.
func (f *solveFlags) applyFlags(cmd *cobra.Command, cfg *config.Config, path string) error {
	if cmd.Flags().Changed("algo") {
		a, err := solver.ParseAlgo(f.algo)
		if err != nil {
			return err
		}
		cfg.Algorithm = a.String()
	}
	if cmd.Flags().Changed("seed") {
		cfg.Seed = f.seed
	}
	if f.preset != "" {
		key := f.preset
		if key == "auto" {
			key = hashcode.DatasetKey(path)
		}
		p := config.GeneticPreset(key)
		cfg.Genetic.PopulationSize = p.PopulationSize
		cfg.Genetic.Generations = p.Generations
		cfg.Genetic.MutationProbability = p.MutationProbability
		cfg.Genetic.SwapProbability = p.SwapProbability
		cfg.Genetic.PopulationVariation = p.PopulationVariation
	}

	return cfg.Validate()
}

func runSolve(cmd *cobra.Command, g *globals, f *solveFlags, path string) error {
	cfg, err := loadConfig(f.config)
	if err != nil {
		return err
	}
	if err = f.applyFlags(cmd, &cfg, path); err != nil {
		return err
	}
	logger, err := g.logger(cmd, cfg)
	if err != nil {
		return err
	}
	opts, err := cfg.SolverOptions()
	if err != nil {
		return err
	}
	opts.Logger = logger
	if f.metrics != "" {
		opts.Metrics = solver.NewMetrics(nil)
	}

	in, err := hashcode.ParseFile(path)
	if err != nil {
		return err
	}
	rep, err := solver.Solve(in, opts)
	if err != nil {
		return err
	}

	fmt.Fprintf(g.stdout, "algo=%s score=%d max=%d signups=%d evaluations=%d elapsed=%s run_id=%s\n",
		rep.Algo, rep.Result.Score, in.MaxScore(), rep.Result.Solution.Len(),
		rep.Result.Evaluations, rep.Elapsed, rep.RunID)

	if f.out != "" {
		if err = writeSubmission(f.out, in, rep.Result.Solution); err != nil {
			return err
		}
		logger.Info("submission written", "path", f.out)
	}
	if opts.Metrics != nil {
		if err = opts.Metrics.WriteTextfile(f.metrics); err != nil {
			return fmt.Errorf("write metrics: %w", err)
		}
	}

	return nil
}

// writeSubmission evaluates sol and writes the scanned books to path.
func writeSubmission(path string, in *instance.Instance, sol scoring.Solution) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create submission: %w", err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("close submission: %w", cerr)
		}
	}()

	return hashcode.WriteSubmission(f, in, scoring.Evaluate(in, sol))
}
