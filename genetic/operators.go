package genetic

import (
	"math/rand"

	"github.com/katalvlaran/bookscan/internal/rng"
)

// Tournament returns the index of the winner among min(size, len(fitness))
// individuals drawn without replacement.
//
// Complexity: O(len(fitness)).
func Tournament(fitness []int64, size int, r *rand.Rand) int {
	n := len(fitness)
	if n <= 1 {
		return 0
	}
	picks := rng.SampleUpTo(n, max(size, 1), r)

	winner := picks[0]
	for _, p := range picks[1:] {
		if fitness[p] > fitness[winner] {
			winner = p
		}
	}

	return winner
}

// Crossover returns the ordered-crossover child of two permutations of the
// same genes. Parents are not modified.
//
// Steps:
//  1. Draw a cut k in [1, n-1); k is 1 when n = 2, and n < 2 copies p1.
//  2. The child starts with p1[:k].
//  3. The remaining genes follow in the order they appear in p2.
//
// Complexity: O(n).
func Crossover(p1, p2 []int, r *rand.Rand) []int {
	n := len(p1)
	child := make([]int, 0, n)
	if n < 2 {
		return append(child, p1...)
	}

	var cut int
	if n == 2 {
		cut = 1
	} else {
		cut = 1 + r.Intn(n-2)
	}
	child = append(child, p1[:cut]...)

	inPrefix := make(map[int]struct{}, cut)
	for _, g := range p1[:cut] {
		inPrefix[g] = struct{}{}
	}
	for _, g := range p2 {
		if _, ok := inPrefix[g]; !ok {
			child = append(child, g)
		}
	}

	return child
}

// Mutate applies the swap mutation to ind in place.
func Mutate(ind []int, mutation, swap float64, r *rand.Rand) {
	n := len(ind)
	if n < 2 || !(r.Float64() < mutation) {
		return
	}
	i1 := r.Intn(n)
	i2 := r.Intn(n - 1)
	if i2 >= i1 {
		i2++
	}
	if r.Float64() < swap {
		i1, i2 = i2, i1
	}
	ind[i1], ind[i2] = ind[i2], ind[i1]
}
