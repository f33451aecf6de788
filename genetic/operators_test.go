package genetic_test

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/bookscan/genetic"
)

func isPerm(t *testing.T, p []int, n int) {
	t.Helper()
	got := append([]int(nil), p...)
	sort.Ints(got)
	for i := range got {
		require.Equal(t, i, got[i], "not a permutation: %v", p)
	}
	require.Len(t, p, n)
}

func TestCrossover_AlwaysPermutation(t *testing.T) {
	r := rand.New(rand.NewSource(17))
	for trial := 0; trial < 300; trial++ {
		n := r.Intn(30)
		p1, p2 := r.Perm(n), r.Perm(n)
		keep1 := append([]int{}, p1...)
		keep2 := append([]int{}, p2...)

		child := genetic.Crossover(p1, p2, r)
		isPerm(t, child, n)
		assert.Equal(t, keep1, p1, "parent1 modified")
		assert.Equal(t, keep2, p2, "parent2 modified")
		if n >= 1 {
			assert.Equal(t, p1[0], child[0], "child starts with parent1's prefix")
		}
	}
}

func TestCrossover_SuffixFollowsSecondParent(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	p1 := []int{0, 1, 2, 3, 4, 5}
	p2 := []int{5, 4, 3, 2, 1, 0}

	child := genetic.Crossover(p1, p2, r)
	// Find the cut: the longest prefix shared with p1.
	k := 0
	for k < len(child) && child[k] == p1[k] {
		k++
	}
	require.GreaterOrEqual(t, k, 1)
	// Remaining genes appear in p2's order (descending here).
	for i := k + 1; i < len(child); i++ {
		assert.Greater(t, child[i-1], child[i])
	}
}

func TestCrossover_SmallParents(t *testing.T) {
	r := rand.New(rand.NewSource(2))

	assert.Equal(t, []int{1, 0}, genetic.Crossover([]int{1, 0}, []int{0, 1}, r))

	one := []int{0}
	child := genetic.Crossover(one, []int{0}, r)
	assert.Equal(t, []int{0}, child)
	child[0] = 9
	assert.Equal(t, 0, one[0], "child must not alias parent1")

	assert.Empty(t, genetic.Crossover(nil, nil, r))
}

func TestTournament(t *testing.T) {
	r := rand.New(rand.NewSource(3))

	assert.Equal(t, 0, genetic.Tournament([]int64{42}, 5, r))
	// A tournament covering the whole population returns the global best.
	for i := 0; i < 20; i++ {
		assert.Equal(t, 1, genetic.Tournament([]int64{3, 9, 1, 5}, 4, r))
		assert.Equal(t, 1, genetic.Tournament([]int64{3, 9, 1, 5}, 50, r))
	}
	// Non-positive sizes behave like size 1 and never fail.
	for _, size := range []int{0, -3} {
		idx := genetic.Tournament([]int64{3, 9, 1, 5}, size, r)
		assert.GreaterOrEqual(t, idx, 0)
		assert.Less(t, idx, 4)
	}
	// Size 1 is uniform selection; every index must be reachable.
	hits := make(map[int]bool)
	for i := 0; i < 200; i++ {
		hits[genetic.Tournament([]int64{3, 9, 1, 5}, 1, r)] = true
	}
	assert.Len(t, hits, 4)
}

func TestMutate(t *testing.T) {
	r := rand.New(rand.NewSource(4))

	ind := []int{0, 1, 2, 3, 4}
	genetic.Mutate(ind, 0, 1, r)
	assert.Equal(t, []int{0, 1, 2, 3, 4}, ind)

	for trial := 0; trial < 50; trial++ {
		ind = []int{0, 1, 2, 3, 4}
		genetic.Mutate(ind, 1, 0.5, r)
		isPerm(t, ind, 5)
		moved := 0
		for i, g := range ind {
			if g != i {
				moved++
			}
		}
		assert.Equal(t, 2, moved)
	}

	single := []int{7}
	genetic.Mutate(single, 1, 1, r)
	assert.Equal(t, []int{7}, single)
}
