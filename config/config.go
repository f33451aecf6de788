// Package config loads the YAML run configuration of the bookscan CLI and
// turns it into solver options.
//
// A configuration file only needs the keys it changes; everything else keeps
// the value from Default:
//
//	algorithm: genetic
//	seed: 42
//	genetic:
//	  population_size: 20
//	  generations: 500
//	log:
//	  level: debug
//
// Unknown keys are rejected so that typos do not silently fall back to
// defaults.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/bookscan/anneal"
	"github.com/katalvlaran/bookscan/genetic"
	"github.com/katalvlaran/bookscan/internal/logging"
	"github.com/katalvlaran/bookscan/localsearch"
	"github.com/katalvlaran/bookscan/solver"
)

// ErrInvalidConfig wraps every parse and validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

var validate = validator.New()

// Config is the root of the YAML document.
type Config struct {
	Algorithm   string            `json:"algorithm" yaml:"algorithm" validate:"oneof=greedy annealing local-first local-best genetic"`
	Seed        int64             `json:"seed" yaml:"seed"`
	Annealing   AnnealingConfig   `json:"annealing" yaml:"annealing"`
	Genetic     GeneticConfig     `json:"genetic" yaml:"genetic"`
	LocalSearch LocalSearchConfig `json:"local_search" yaml:"local_search"`
	Log         LogConfig         `json:"log" yaml:"log"`
}

// AnnealingConfig mirrors anneal.Options.
type AnnealingConfig struct {
	InitialTemperature float64 `json:"initial_temperature" yaml:"initial_temperature" validate:"gt=0"`
	MinTemperature     float64 `json:"min_temperature" yaml:"min_temperature" validate:"gt=0"`
	CoolingRate        float64 `json:"cooling_rate" yaml:"cooling_rate" validate:"gt=0,lt=1"`
	IterationsPerStage int     `json:"iterations_per_stage" yaml:"iterations_per_stage" validate:"gte=1"`
	WarmStart          bool    `json:"warm_start" yaml:"warm_start"`
}

// GeneticConfig mirrors genetic.Options.
type GeneticConfig struct {
	PopulationSize      int     `json:"population_size" yaml:"population_size" validate:"gte=1"`
	Generations         int     `json:"generations" yaml:"generations" validate:"gte=0"`
	MutationProbability float64 `json:"mutation_probability" yaml:"mutation_probability" validate:"gte=0,lte=1"`
	SwapProbability     float64 `json:"swap_probability" yaml:"swap_probability" validate:"gte=0,lte=1"`
	PopulationVariation float64 `json:"population_variation" yaml:"population_variation" validate:"gte=0,lte=1"`
	TournamentSize      int     `json:"tournament_size" yaml:"tournament_size" validate:"gte=1"`
	Elitism             int     `json:"elitism" yaml:"elitism" validate:"gte=0,ltefield=PopulationSize"`
	Workers             int     `json:"workers" yaml:"workers" validate:"gte=0"`
}

// LocalSearchConfig configures both local search algorithms.
type LocalSearchConfig struct {
	MaxPasses int `json:"max_passes" yaml:"max_passes" validate:"gte=1"`
}

// LogConfig selects the log level and format.
type LogConfig struct {
	Level string `json:"level" yaml:"level" validate:"oneof=debug info warn warning error"`
	JSON  bool   `json:"json" yaml:"json"`
}

// Default returns the built-in configuration: greedy, seed 0 (the default
// stream), every strategy at its package defaults, info-level text logs.
func Default() Config {
	a := anneal.DefaultOptions()
	l := localsearch.DefaultOptions()

	return Config{
		Algorithm: solver.Greedy.String(),
		Annealing: AnnealingConfig{
			InitialTemperature: a.InitialTemperature,
			MinTemperature:     a.MinTemperature,
			CoolingRate:        a.CoolingRate,
			IterationsPerStage: a.IterationsPerStage,
			WarmStart:          a.WarmStart,
		},
		Genetic:     GeneticPreset(""),
		LocalSearch: LocalSearchConfig{MaxPasses: l.MaxPasses},
		Log:         LogConfig{Level: "info"},
	}
}

// Parse decodes data over Default and validates the result. Empty input
// yields the defaults.
func Parse(data []byte) (Config, error) {
	cfg := Default()

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Load reads and parses the file at path.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks every field against its constraints.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	return nil
}

// SolverOptions converts c into solver options. Seed seeds both stochastic
// strategies. Logger and Metrics are left for the caller.
func (c Config) SolverOptions() (solver.Options, error) {
	algo, err := solver.ParseAlgo(c.Algorithm)
	if err != nil {
		return solver.Options{}, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	o := solver.DefaultOptions()
	o.Algo = algo
	o.Annealing = anneal.Options{
		InitialTemperature: c.Annealing.InitialTemperature,
		MinTemperature:     c.Annealing.MinTemperature,
		CoolingRate:        c.Annealing.CoolingRate,
		IterationsPerStage: c.Annealing.IterationsPerStage,
		WarmStart:          c.Annealing.WarmStart,
		Seed:               c.Seed,
	}
	o.Genetic = genetic.Options{
		PopulationSize:      c.Genetic.PopulationSize,
		Generations:         c.Genetic.Generations,
		MutationProbability: c.Genetic.MutationProbability,
		SwapProbability:     c.Genetic.SwapProbability,
		PopulationVariation: c.Genetic.PopulationVariation,
		TournamentSize:      c.Genetic.TournamentSize,
		Elitism:             c.Genetic.Elitism,
		Workers:             c.Genetic.Workers,
		Seed:                c.Seed,
	}
	o.LocalSearch.MaxPasses = c.LocalSearch.MaxPasses

	return o, nil
}

// Logging converts the log section into a logging.Config writing to out.
func (l LogConfig) Logging(out io.Writer) (logging.Config, error) {
	lvl, err := logging.ParseLevel(l.Level)
	if err != nil {
		return logging.Config{}, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	return logging.Config{Level: lvl, JSON: l.JSON, Output: out, Service: "bookscan"}, nil
}
