package solver_test

import (
	"bytes"
	"math/rand"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/bookscan/genetic"
	"github.com/katalvlaran/bookscan/internal/fixture"
	"github.com/katalvlaran/bookscan/internal/logging"
	"github.com/katalvlaran/bookscan/solver"
)

// quick keeps annealing and the GA short enough for unit tests.
func quick(a solver.Algo) solver.Options {
	o := solver.DefaultOptions()
	o.Algo = a
	o.Annealing.IterationsPerStage = 10
	o.Genetic.PopulationSize = 8
	o.Genetic.Generations = 10
	return o
}

func TestParseAlgo(t *testing.T) {
	tests := []struct {
		in   string
		want solver.Algo
	}{
		{"greedy", solver.Greedy},
		{"Annealing", solver.Annealing},
		{"sa", solver.Annealing},
		{"simulated_annealing", solver.Annealing},
		{"local-first", solver.LocalFirst},
		{"LOCAL_BEST", solver.LocalBest},
		{"local", solver.LocalBest},
		{"genetic", solver.Genetic},
		{"ga", solver.Genetic},
	}
	for _, tt := range tests {
		got, err := solver.ParseAlgo(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}

	_, err := solver.ParseAlgo("tabu")
	assert.ErrorIs(t, err, solver.ErrUnsupportedAlgorithm)

	for _, a := range solver.Algos() {
		back, err := solver.ParseAlgo(a.String())
		require.NoError(t, err)
		assert.Equal(t, a, back)
	}
	assert.Equal(t, "Algo(42)", solver.Algo(42).String())
}

func TestSolve_Errors(t *testing.T) {
	_, err := solver.Solve(nil, solver.DefaultOptions())
	assert.ErrorIs(t, err, solver.ErrNilInstance)

	_, err = solver.Solve(fixture.TwoLibraries(), quick(solver.Algo(42)))
	assert.ErrorIs(t, err, solver.ErrUnsupportedAlgorithm)

	o := quick(solver.Genetic)
	o.Genetic.PopulationSize = 0
	_, err = solver.Solve(fixture.TwoLibraries(), o)
	assert.ErrorIs(t, err, genetic.ErrBadPopulation)
}

// TestSolve_EveryAlgorithmOnTwoLibraries: 18 is the maximum, so every
// strategy must reach it.
func TestSolve_EveryAlgorithmOnTwoLibraries(t *testing.T) {
	in := fixture.TwoLibraries()
	for _, a := range solver.Algos() {
		t.Run(a.String(), func(t *testing.T) {
			rep, err := solver.Solve(in, quick(a))
			require.NoError(t, err)
			assert.Equal(t, a, rep.Algo)
			assert.Equal(t, int64(18), rep.Result.Score)
			assert.Positive(t, rep.Result.Evaluations)
			_, err = uuid.Parse(rep.RunID)
			assert.NoError(t, err)
		})
	}
}

func TestSolve_LocalPolicyFollowsAlgo(t *testing.T) {
	in := fixture.RemovalHelps()

	first, err := solver.Solve(in, quick(solver.LocalFirst))
	require.NoError(t, err)
	assert.Equal(t, int64(130), first.Result.Score)

	best, err := solver.Solve(in, quick(solver.LocalBest))
	require.NoError(t, err)
	assert.Equal(t, int64(150), best.Result.Score)
}

func TestSolve_DegenerateInstances(t *testing.T) {
	for _, a := range solver.Algos() {
		rep, err := solver.Solve(fixture.ZeroDays(), quick(a))
		require.NoError(t, err, a)
		assert.Equal(t, int64(0), rep.Result.Score, a)

		rep, err = solver.Solve(fixture.Empty(), quick(a))
		require.NoError(t, err, a)
		assert.Equal(t, int64(0), rep.Result.Score, a)
	}
}

func TestSolve_RunIDsAreUnique(t *testing.T) {
	a, err := solver.Solve(fixture.TwoLibraries(), quick(solver.Greedy))
	require.NoError(t, err)
	b, err := solver.Solve(fixture.TwoLibraries(), quick(solver.Greedy))
	require.NoError(t, err)
	assert.NotEqual(t, a.RunID, b.RunID)
}

func TestSolve_DebugLoggingKeepsCallerHooks(t *testing.T) {
	var buf bytes.Buffer
	o := quick(solver.Annealing)
	o.Annealing.InitialTemperature = 1
	o.Annealing.MinTemperature = 0.5
	o.Annealing.CoolingRate = 0.5
	o.Logger = logging.New(logging.Config{Level: logging.LevelDebug, Output: &buf})

	stages := 0
	o.Annealing.OnStage = func(int, float64, int64, int64) { stages++ }

	rep, err := solver.Solve(fixture.TwoLibraries(), o)
	require.NoError(t, err)
	assert.Equal(t, 1, stages)

	out := buf.String()
	assert.Contains(t, out, "run started")
	assert.Contains(t, out, "annealing stage")
	assert.Contains(t, out, "run finished")
	assert.Contains(t, out, "run_id="+rep.RunID)
}

func TestSolve_InfoLoggingSkipsProgress(t *testing.T) {
	var buf bytes.Buffer
	o := quick(solver.Genetic)
	o.Logger = logging.New(logging.Config{Level: logging.LevelInfo, Output: &buf})

	_, err := solver.Solve(fixture.TwoLibraries(), o)
	require.NoError(t, err)
	assert.NotContains(t, buf.String(), "genetic generation")
	assert.Contains(t, buf.String(), "algo=genetic")
}

// TestCompare_MatchesSolve: strategies that seed their own stream are
// unaffected by running next to others.
func TestCompare_MatchesSolve(t *testing.T) {
	in := fixture.Random(5, 120, 30, 40, 6)
	o := quick(solver.Greedy)
	o.Annealing.Seed = 11
	o.Genetic.Seed = 12

	reps, err := solver.Compare(in, o, solver.Genetic, solver.Greedy, solver.Annealing, solver.LocalBest)
	require.NoError(t, err)
	require.Len(t, reps, 4)

	for _, rep := range reps {
		single := o
		single.Algo = rep.Algo
		want, err := solver.Solve(in, single)
		require.NoError(t, err)
		assert.Equal(t, want.Result, rep.Result, rep.Algo)
	}
	assert.Equal(t, solver.Genetic, reps[0].Algo)
	assert.Equal(t, solver.LocalBest, reps[3].Algo)
	assert.GreaterOrEqual(t, reps[3].Result.Score, reps[1].Result.Score)
}

func TestCompare_InjectedRandIsReproducible(t *testing.T) {
	in := fixture.Random(8, 100, 25, 30, 5)
	runOnce := func() []solver.Report {
		o := quick(solver.Greedy)
		o.Annealing.Rand = rand.New(rand.NewSource(3))
		o.Genetic.Rand = rand.New(rand.NewSource(4))
		reps, err := solver.Compare(in, o, solver.Annealing, solver.Genetic, solver.Annealing)
		require.NoError(t, err)
		return reps
	}

	a, b := runOnce(), runOnce()
	require.Len(t, a, 3)
	for i := range a {
		assert.Equal(t, a[i].Result, b[i].Result, i)
	}
}

func TestCompare_StopsAtFirstError(t *testing.T) {
	reps, err := solver.Compare(fixture.TwoLibraries(), quick(solver.Greedy), solver.Greedy, solver.Algo(9), solver.Genetic)
	assert.ErrorIs(t, err, solver.ErrUnsupportedAlgorithm)
	assert.Len(t, reps, 1)
}
