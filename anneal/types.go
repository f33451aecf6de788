package anneal

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
)

// Sentinel errors returned by Options.Validate.
var (
	ErrBadTemperature = errors.New("anneal: temperatures must be finite and positive")
	ErrBadCoolingRate = errors.New("anneal: cooling rate must be in (0,1)")
	ErrBadIterations  = errors.New("anneal: iterations per stage must be positive")
)

// StageHook is called after every temperature stage with the stage number
// (0-based), the temperature the stage ran at, and the current and best scores.
type StageHook func(stage int, temperature float64, current, best int64)

// Options configures Run.
type Options struct {
	InitialTemperature float64 // starting T, > 0
	MinTemperature     float64 // stop once T ≤ MinTemperature, > 0
	CoolingRate        float64 // T multiplier per stage, in (0,1)
	IterationsPerStage int     // neighbor proposals per stage, > 0

	WarmStart bool // start from the greedy plan instead of empty book lists

	Seed int64      // used when Rand is nil; 0 ⇒ rng.DefaultSeed
	Rand *rand.Rand // injected stream; takes precedence over Seed

	OnStage StageHook // optional
}

// DefaultOptions returns the classic schedule: T from 1.0 down to 0.001,
// cooling 0.9, 100 proposals per stage, warm start.
func DefaultOptions() Options {
	return Options{
		InitialTemperature: 1.0,
		MinTemperature:     0.001,
		CoolingRate:        0.9,
		IterationsPerStage: 100,
		WarmStart:          true,
	}
}

// Validate checks every numeric knob.
func (o Options) Validate() error {
	if !positiveFinite(o.InitialTemperature) || !positiveFinite(o.MinTemperature) {
		return fmt.Errorf("%w: initial=%v min=%v", ErrBadTemperature, o.InitialTemperature, o.MinTemperature)
	}
	if !(o.CoolingRate > 0 && o.CoolingRate < 1) {
		return fmt.Errorf("%w: got %v", ErrBadCoolingRate, o.CoolingRate)
	}
	if o.IterationsPerStage <= 0 {
		return fmt.Errorf("%w: got %d", ErrBadIterations, o.IterationsPerStage)
	}

	return nil
}

// positiveFinite reports whether x is a usable temperature: > 0, not NaN, not ±Inf.
func positiveFinite(x float64) bool {
	return x > 0 && !math.IsInf(x, 0) && !math.IsNaN(x)
}
