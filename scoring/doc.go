// Package scoring is the single source of truth for "is this solution legal
// and how good is it". Every search strategy in bookscan scores candidates
// through this package, which is what makes their results comparable.
//
// The walk (Score, Evaluate, ScoreOrder):
//
//	remaining := D; scanned := ∅
//	for each (library, offered books) in solution order:
//	    if remaining <= 0 || remaining < signup: stop   // too late to sign up
//	    remaining -= signup
//	    capacity := remaining * booksPerDay
//	    for book in offered, while scanned-by-this-library < capacity:
//	        if book ∈ scanned: skip
//	        total += score(book); scanned ∪= {book}
//
// Properties:
//   - Deterministic; inputs are never mutated.
//   - 0 ≤ score ≤ instance.MaxScore(); each book counts at most once.
//   - A library whose signup cost exceeds D never contributes.
//
// Strategies keep offered book lists in descending score order; the walk takes
// them in the order given.
//
// Scorer carries a reusable scanned-set so hot loops (genetic fitness, local
// search sweeps) score without allocating. A Scorer is not goroutine-safe;
// give each goroutine its own.
package scoring
