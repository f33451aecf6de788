package config_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/bookscan/anneal"
	"github.com/katalvlaran/bookscan/config"
	"github.com/katalvlaran/bookscan/genetic"
	"github.com/katalvlaran/bookscan/internal/logging"
	"github.com/katalvlaran/bookscan/localsearch"
	"github.com/katalvlaran/bookscan/solver"
)

func TestDefault_MatchesPackageDefaults(t *testing.T) {
	cfg := config.Default()
	require.NoError(t, cfg.Validate())

	o, err := cfg.SolverOptions()
	require.NoError(t, err)
	assert.Equal(t, solver.Greedy, o.Algo)
	assert.Equal(t, anneal.DefaultOptions(), o.Annealing)
	assert.Equal(t, genetic.DefaultOptions(), o.Genetic)
	assert.Equal(t, localsearch.DefaultOptions(), o.LocalSearch)
}

func TestParse_EmptyIsDefault(t *testing.T) {
	cfg, err := config.Parse(nil)
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestLoad_OverridesOnlyGivenKeys(t *testing.T) {
	cfg, err := config.Load("testdata/genetic.yaml")
	require.NoError(t, err)

	assert.Equal(t, "genetic", cfg.Algorithm)
	assert.Equal(t, int64(42), cfg.Seed)
	assert.Equal(t, 20, cfg.Genetic.PopulationSize)
	assert.Equal(t, 500, cfg.Genetic.Generations)
	assert.Equal(t, 0.2, cfg.Genetic.MutationProbability, "untouched key keeps its default")
	assert.Equal(t, 3, cfg.LocalSearch.MaxPasses)
	assert.Equal(t, config.Default().Annealing, cfg.Annealing)

	o, err := cfg.SolverOptions()
	require.NoError(t, err)
	assert.Equal(t, solver.Genetic, o.Algo)
	assert.Equal(t, int64(42), o.Genetic.Seed)
	assert.Equal(t, int64(42), o.Annealing.Seed)
	assert.Equal(t, 2, o.Genetic.Elitism)
	assert.Equal(t, 4, o.Genetic.Workers)
	assert.Equal(t, 3, o.LocalSearch.MaxPasses)
	require.NoError(t, o.Genetic.Validate())

	lc, err := cfg.Log.Logging(&bytes.Buffer{})
	require.NoError(t, err)
	assert.Equal(t, logging.LevelDebug, lc.Level)
	assert.True(t, lc.JSON)
}

func TestLoad_Missing(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"unknown algorithm", "algorithm: tabu\n"},
		{"unknown key", "algoritm: greedy\n"},
		{"malformed", "annealing: [1, 2\n"},
		{"cooling one", "annealing:\n  cooling_rate: 1\n"},
		{"zero temperature", "annealing:\n  min_temperature: 0\n"},
		{"no iterations", "annealing:\n  iterations_per_stage: 0\n"},
		{"probability", "genetic:\n  swap_probability: 1.5\n"},
		{"population", "genetic:\n  population_size: 0\n"},
		{"elitism above population", "genetic:\n  population_size: 4\n  elitism: 5\n"},
		{"negative workers", "genetic:\n  workers: -1\n"},
		{"passes", "local_search:\n  max_passes: 0\n"},
		{"log level", "log:\n  level: loud\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := config.Parse([]byte(tt.yaml))
			assert.ErrorIs(t, err, config.ErrInvalidConfig)
		})
	}
}

func TestGeneticPreset(t *testing.T) {
	tests := []struct {
		key       string
		pop, gens int
		mut, swap float64
		variation float64
	}{
		{"a", 50, 1000, 0.2, 0.2, 0.2},
		{"B", 50, 1000, 0.2, 0.2, 0.2},
		{"c", 10, 10, 0.05, 0.05, 0.01},
		{"d", 10, 10, 0.05, 0.05, 0.001},
		{"e", 20, 500, 0.2, 0.2, 0.2},
		{"f", 20, 100, 0.2, 0.2, 0.2},
		{"zzz", 50, 1000, 0.2, 0.2, 0.2},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			g := config.GeneticPreset(tt.key)
			assert.Equal(t, tt.pop, g.PopulationSize)
			assert.Equal(t, tt.gens, g.Generations)
			assert.Equal(t, tt.mut, g.MutationProbability)
			assert.Equal(t, tt.swap, g.SwapProbability)
			assert.Equal(t, tt.variation, g.PopulationVariation)
			assert.Equal(t, genetic.DefaultTournamentSize, g.TournamentSize)

			cfg := config.Default()
			cfg.Genetic = g
			assert.NoError(t, cfg.Validate())
		})
	}
}

func TestSolverOptions_RejectsBadAlgorithm(t *testing.T) {
	cfg := config.Default()
	cfg.Algorithm = "nope"
	_, err := cfg.SolverOptions()
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
	assert.ErrorIs(t, cfg.Validate(), config.ErrInvalidConfig)
}
