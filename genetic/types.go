package genetic

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
)

// Sentinel errors returned by Options.Validate.
var (
	ErrBadPopulation  = errors.New("genetic: population size must be at least 1")
	ErrBadGenerations = errors.New("genetic: generations must be non-negative")
	ErrBadProbability = errors.New("genetic: probabilities must be in [0,1]")
	ErrBadTournament  = errors.New("genetic: tournament size must be at least 1")
	ErrBadElitism     = errors.New("genetic: elitism must be in [0, population size]")
	ErrBadWorkers     = errors.New("genetic: workers must be non-negative")
)

// DefaultTournamentSize is the classic tournament of five.
const DefaultTournamentSize = 5

// GenerationHook is called after each generation with its number (0-based) and
// the best fitness of the new population.
type GenerationHook func(generation int, best int64)

// Options configures Run.
type Options struct {
	PopulationSize      int
	Generations         int
	MutationProbability float64
	SwapProbability     float64
	PopulationVariation float64 // reserved; validated, no effect

	TournamentSize int // individuals per tournament
	Elitism        int // fittest individuals copied into the next generation
	Workers        int // goroutines for fitness evaluation; ≤1 means sequential

	Seed int64      // used when Rand is nil; 0 ⇒ rng.DefaultSeed
	Rand *rand.Rand // injected stream; takes precedence over Seed

	OnGeneration GenerationHook // optional
}

// DefaultOptions returns population 50, 1000 generations, mutation, swap and
// variation 0.2, tournaments of 5, no elitism, sequential evaluation.
func DefaultOptions() Options {
	return Options{
		PopulationSize:      50,
		Generations:         1000,
		MutationProbability: 0.2,
		SwapProbability:     0.2,
		PopulationVariation: 0.2,
		TournamentSize:      DefaultTournamentSize,
		Workers:             1,
	}
}

// Validate checks every knob.
func (o Options) Validate() error {
	if o.PopulationSize < 1 {
		return fmt.Errorf("%w: got %d", ErrBadPopulation, o.PopulationSize)
	}
	if o.Generations < 0 {
		return fmt.Errorf("%w: got %d", ErrBadGenerations, o.Generations)
	}
	if !unit(o.MutationProbability) || !unit(o.SwapProbability) || !unit(o.PopulationVariation) {
		return fmt.Errorf("%w: mutation=%v swap=%v variation=%v",
			ErrBadProbability, o.MutationProbability, o.SwapProbability, o.PopulationVariation)
	}
	if o.TournamentSize < 1 {
		return fmt.Errorf("%w: got %d", ErrBadTournament, o.TournamentSize)
	}
	if o.Elitism < 0 || o.Elitism > o.PopulationSize {
		return fmt.Errorf("%w: got %d", ErrBadElitism, o.Elitism)
	}
	if o.Workers < 0 {
		return fmt.Errorf("%w: got %d", ErrBadWorkers, o.Workers)
	}

	return nil
}

func unit(p float64) bool {
	return !math.IsNaN(p) && p >= 0 && p <= 1
}
