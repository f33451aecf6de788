// Package solver dispatches a run to one of the optimisation strategies and
// wraps the outcome in a Report.
//
// Strategies:
//
//	greedy       density order, full-capacity scanning
//	annealing    simulated annealing over signup order and book subsets
//	local-first  single-removal local search, first improvement
//	local-best   single-removal local search, best improvement
//	genetic      generational GA over signup permutations
//
// Every run gets a RunID (a random UUID) that appears in each log record the
// run emits. With a Logger at debug level the annealing stages and GA
// generations are logged as they complete. With Metrics set, every finished
// run is recorded in a Prometheus registry.
//
// Compare runs several strategies on one instance. A strategy that seeds its
// own stream (Rand == nil) gets exactly the result Solve would give; an
// injected Rand is split with rng.Derive so strategies never share a stream.
package solver
