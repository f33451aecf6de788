// Package anneal implements simulated annealing over signup plans.
//
// State: a scoring.Solution (ordered library assignments with explicit book
// lists), a temperature T and the best plan seen so far.
//
// Schedule (geometric cooling):
//
//	T := InitialTemperature
//	while T > MinTemperature:
//	    repeat IterationsPerStage times:
//	        cand := Neighbor(current); Δ := score(cand) − score(current)
//	        accept if Δ ≥ 0, else with probability exp(Δ / T)   (Metropolis)
//	    T *= CoolingRate
//
// Termination is guaranteed: CoolingRate ∈ (0,1) makes T strictly decrease and
// MinTemperature > 0.
//
// Neighbor picks a uniform index; with probability ½ it swaps that entry with
// another uniform index, otherwise it replaces that library's books with a
// uniform sample sized to what the days left at that point allow. Samples keep
// the library's descending-score order.
//
// Initial plan:
//   - WarmStart (default): the greedy plan, followed by every other library whose
//     signup fits in D, with an empty book list, so swaps can bring them forward.
//   - Cold: every library whose signup fits in D, in input order, with empty book lists.
//
// Randomness comes only from Options.Rand (or a stream built from Options.Seed),
// so equal seeds reproduce equal runs.
package anneal
