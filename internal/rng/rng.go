// Package rng centralizes deterministic random generation for every search
// strategy in bookscan.
//
// Goals:
//   - Determinism: same seed ⇒ identical results across platforms.
//   - Injection: strategies accept a caller-owned *rand.Rand; a seed is only the fallback.
//   - No time-based sources hidden anywhere.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. Do not share a *rand.Rand across goroutines.
//   - Use Derive to create independent streams for parallel runs or workers.
package rng

import (
	"errors"
	"math/rand"
	"sort"
)

// DefaultSeed is the fixed “zero” seed used when callers pass seed==0.
const DefaultSeed int64 = 1

// ErrBadSample is returned when a sample size is negative or exceeds the population.
var ErrBadSample = errors.New("rng: sample size out of range")

// FromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ use DefaultSeed; otherwise use the provided seed verbatim.
//
// Complexity: O(1).
func FromSeed(seed int64) *rand.Rand {
	var s int64
	s = seed
	if s == 0 {
		s = DefaultSeed
	}

	return rand.New(rand.NewSource(s))
}

// Resolve returns r when it is non-nil, otherwise a fresh stream built from seed.
// Strategies call it once at entry so an injected stream always wins over a seed.
func Resolve(r *rand.Rand, seed int64) *rand.Rand {
	if r != nil {
		return r
	}

	return FromSeed(seed)
}

// deriveSeed mixes a parent seed and a stream identifier into a new 64-bit seed
// with a SplitMix64 finalizer, so neighbouring stream ids decorrelate fully.
//
// Complexity: O(1).
func deriveSeed(parent int64, stream uint64) int64 {
	var x uint64
	x = uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31

	return int64(x)
}

// Derive creates an independent deterministic stream from a base stream and a
// stream identifier. If base==nil, DefaultSeed is used as the parent.
// Otherwise base.Int63() is consumed once, so two derivations with the same
// stream id still differ.
//
// Complexity: O(1).
func Derive(base *rand.Rand, stream uint64) *rand.Rand {
	var parent int64
	if base == nil {
		parent = DefaultSeed
	} else {
		parent = base.Int63()
	}

	return rand.New(rand.NewSource(deriveSeed(parent, stream)))
}

// Shuffle performs an in-place Fisher–Yates shuffle of a using r.
// If r==nil, the default deterministic stream is used.
//
// Complexity: O(n) time, O(1) extra space.
func Shuffle(a []int, r *rand.Rand) {
	var n int
	n = len(a)
	if n <= 1 {
		return
	}
	if r == nil {
		r = FromSeed(0)
	}

	var i, j int
	for i = n - 1; i > 0; i-- {
		j = r.Intn(i + 1)
		a[i], a[j] = a[j], a[i]
	}
}

// Perm returns a uniformly random permutation of 0..n-1. n<=0 yields an empty slice.
//
// Complexity: O(n) time, O(n) space.
func Perm(n int, r *rand.Rand) []int {
	if n <= 0 {
		return []int{}
	}
	p := make([]int, n)

	var i int
	for i = 0; i < n; i++ {
		p[i] = i
	}
	Shuffle(p, r)

	return p
}

// Sample draws k distinct values from 0..n-1 uniformly without replacement and
// returns them in draw order (partial Fisher–Yates over an index buffer).
//
// Complexity: O(n) time, O(n) space.
func Sample(n, k int, r *rand.Rand) ([]int, error) {
	if k < 0 || n < 0 || k > n {
		return nil, ErrBadSample
	}
	if r == nil {
		r = FromSeed(0)
	}
	pool := make([]int, n)

	var i, j int
	for i = 0; i < n; i++ {
		pool[i] = i
	}
	for i = 0; i < k; i++ {
		j = i + r.Intn(n-i)
		pool[i], pool[j] = pool[j], pool[i]
	}

	return pool[:k:k], nil
}

// SampleUpTo is Sample with k clamped to [0, n] (and n to ≥ 0), so it never
// fails. Tournaments larger than the population use it.
//
// Complexity: O(n) time, O(n) space.
func SampleUpTo(n, k int, r *rand.Rand) []int {
	n = max(n, 0)
	k = min(max(k, 0), n)
	s, _ := Sample(n, k, r) // 0 ≤ k ≤ n: cannot fail

	return s
}

// SortedSample is Sample with the result sorted ascending. Callers that sample
// positions of an ordered list use it to keep the original order of the picks.
func SortedSample(n, k int, r *rand.Rand) ([]int, error) {
	s, err := Sample(n, k, r)
	if err != nil {
		return nil, err
	}
	sort.Ints(s)

	return s, nil
}
