// Package bookscan plans which libraries to sign up, in which order, and which
// books each of them scans, so that the total score of distinct scanned books
// within a fixed number of days is as high as possible.
//
// 🚀 What is in the box?
//
//	• One scoring engine: every strategy is judged by the same walk
//	• Greedy: libraries by score density, full-capacity scanning
//	• Simulated annealing: swap and resample moves, Metropolis acceptance
//	• Local search: single-removal neighbourhood, first or best improvement
//	• Genetic algorithm: permutation chromosomes, tournaments, ordered crossover
//
// Everything is organized in small packages:
//
//	instance/     immutable problem model, validation, derived views
//	scoring/      solutions, the scoring walk, structural validation
//	greedy/       density ranking and the greedy plan
//	anneal/       simulated annealing
//	localsearch/  removal-based local search
//	genetic/      generational GA with optional parallel fitness
//	solver/       dispatcher, run reports, Prometheus metrics
//	hashcode/     instance and submission text formats
//	config/       YAML run configuration and per-data-set GA presets
//	cmd/bookscan/ the command-line tool
//
// Quick scenario (D = 5 days):
//
//	A: signup 1, 2 books/day, books {5, 3}
//	B: signup 2, 1 book/day,  books {10}
//
//	day 0      A signs up
//	days 1..2  B signs up, A scans 5 and 3
//	days 3..4  B scans 10                     → score 18
//
// Stochastic strategies take a seed or an injected *rand.Rand and are fully
// reproducible.
//
//	go install github.com/katalvlaran/bookscan/cmd/bookscan@latest
package bookscan
