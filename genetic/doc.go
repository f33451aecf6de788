// Package genetic searches signup orders with a generational genetic algorithm.
//
// Representation: a chromosome is a permutation of library indices. It carries
// no book choice; its fitness is the unrestricted score of that signup order
// (scoring.ScoreOrder), so the book subsets follow from the permutation.
//
// Per generation:
//  1. Evaluate the fitness of every individual once.
//  2. Copy the Elitism fittest individuals unchanged (0 by default).
//  3. Until the new population is full: pick two parents by tournament,
//     build one child by ordered crossover, mutate it.
//  4. Replace the population wholesale.
//
// Operators:
//   - Tournament: sample min(TournamentSize, population) individuals without
//     replacement, the fittest wins (earliest sampled on ties). A population of
//     one always returns its sole individual.
//   - Crossover (ordered): cut k ∈ [1, n−1) (k=1 when n=2); child = parent1[:k]
//     followed by parent2's genes not in that prefix, in parent2's order. The
//     child is always a permutation.
//   - Mutate: with MutationProbability pick two distinct positions; a second coin
//     with SwapProbability decides whether to exchange the two chosen positions
//     before swapping the genes. Both draws are kept even though the second one
//     does not change the outcome.
//
// PopulationVariation is accepted and validated but reserved: it has no effect
// on selection, crossover or mutation.
//
// Concurrency: with Workers > 1 the fitness values of a generation are computed
// by up to Workers goroutines, each with its own scorer and a disjoint slice of
// the population. The generation becomes visible only after all of them finish.
// All random draws stay on the calling goroutine, so Workers never changes the
// result.
package genetic
