package localsearch

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by Options.Validate.
var (
	ErrUnsupportedPolicy = errors.New("localsearch: unsupported policy")
	ErrBadPasses         = errors.New("localsearch: MaxPasses must be at least 1")
)

// Policy selects how a sweep moves.
type Policy int

const (
	// FirstImprovement accepts the first strictly improving neighbor.
	FirstImprovement Policy = iota

	// BestImprovement scans the whole neighborhood and accepts the best improving neighbor.
	BestImprovement
)

// String returns "first" or "best".
func (p Policy) String() string {
	switch p {
	case FirstImprovement:
		return "first"
	case BestImprovement:
		return "best"
	default:
		return fmt.Sprintf("Policy(%d)", int(p))
	}
}

// Options configures Run and Improve.
type Options struct {
	Policy    Policy
	MaxPasses int // sweeps to run; 1 = single sweep
}

// DefaultOptions returns a single best-improvement sweep.
func DefaultOptions() Options {
	return Options{Policy: BestImprovement, MaxPasses: 1}
}

// Validate checks the policy and pass budget.
func (o Options) Validate() error {
	switch o.Policy {
	case FirstImprovement, BestImprovement:
	default:
		return fmt.Errorf("%w: %v", ErrUnsupportedPolicy, o.Policy)
	}
	if o.MaxPasses < 1 {
		return fmt.Errorf("%w: got %d", ErrBadPasses, o.MaxPasses)
	}

	return nil
}
