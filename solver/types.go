package solver

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/katalvlaran/bookscan/anneal"
	"github.com/katalvlaran/bookscan/genetic"
	"github.com/katalvlaran/bookscan/localsearch"
	"github.com/katalvlaran/bookscan/scoring"
)

// Sentinel errors.
var (
	ErrUnsupportedAlgorithm = errors.New("solver: unsupported algorithm")
	ErrNilInstance          = errors.New("solver: nil instance")
)

// Algo names a strategy.
type Algo int

const (
	// Greedy signs libraries up by density and scans at full capacity.
	Greedy Algo = iota
	// Annealing runs simulated annealing from the greedy plan.
	Annealing
	// LocalFirst is removal local search taking the first improvement.
	LocalFirst
	// LocalBest is removal local search taking the best improvement.
	LocalBest
	// Genetic evolves signup orders with the generational GA.
	Genetic
)

var algoNames = [...]string{
	Greedy:     "greedy",
	Annealing:  "annealing",
	LocalFirst: "local-first",
	LocalBest:  "local-best",
	Genetic:    "genetic",
}

// Algos lists every strategy in declaration order.
func Algos() []Algo {
	return []Algo{Greedy, Annealing, LocalFirst, LocalBest, Genetic}
}

// String returns the canonical name, e.g. "local-best".
func (a Algo) String() string {
	if a >= 0 && int(a) < len(algoNames) {
		return algoNames[a]
	}

	return fmt.Sprintf("Algo(%d)", int(a))
}

// ParseAlgo accepts the canonical names case-insensitively, with '_' in place
// of '-', and the short forms "sa", "ga", "local".
func ParseAlgo(s string) (Algo, error) {
	key := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "_", "-")
	switch key {
	case "sa", "simulated-annealing":
		return Annealing, nil
	case "ga":
		return Genetic, nil
	case "local":
		return LocalBest, nil
	}
	for i, name := range algoNames {
		if key == name {
			return Algo(i), nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnsupportedAlgorithm, s)
}

// Options configures Solve and Compare.
// The Policy of LocalSearch is overridden by LocalFirst and LocalBest.
type Options struct {
	Algo        Algo
	Annealing   anneal.Options
	LocalSearch localsearch.Options
	Genetic     genetic.Options

	Logger  *slog.Logger // nil ⇒ no logging
	Metrics *Metrics     // nil ⇒ no metrics
}

// DefaultOptions selects greedy with every strategy at its defaults.
func DefaultOptions() Options {
	return Options{
		Algo:        Greedy,
		Annealing:   anneal.DefaultOptions(),
		LocalSearch: localsearch.DefaultOptions(),
		Genetic:     genetic.DefaultOptions(),
	}
}

// Report is the outcome of one run.
type Report struct {
	RunID   string
	Algo    Algo
	Result  scoring.Result
	Elapsed time.Duration
}
