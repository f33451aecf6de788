// Package greedy builds one solution directly with a value-density heuristic.
//
// Algorithm:
//  1. Rank libraries by density = (sum of book scores) / signup days, descending.
//     Ties keep input order (stable sort), so the ranking is deterministic.
//  2. Walk the ranking once with the scoring rule: sign up while the day budget
//     allows, let each library scan its highest-scoring books that no earlier
//     library claimed, up to remaining days × books per day.
//
// The result lists exactly the libraries that were signed up and the books each
// actually scans, so it can seed annealing and local search or be written out as
// a submission unchanged.
//
// Complexity: O(L log L + Σ|books(l)|).
//
// Failure modes: none. No libraries, no books or D=0 give score 0.
package greedy
