// Package localsearch improves a library ranking by removing one library at a time.
//
// Neighborhood (single removal):
//
//	for each position i of the current order, the neighbor is the order with
//	the i-th library dropped. Its score is recomputed from scratch with
//	unrestricted book selection, so the remaining libraries re-decide which
//	books they scan once one signup is gone.
//
// Policies:
//   - FirstImprovement: move to the first strictly better neighbor and stop the sweep.
//   - BestImprovement:  scan every neighbor and move to the best strictly better one.
//
// Baseline: Run starts from the greedy density ranking and its greedy score.
// Improve accepts any caller-provided order as baseline.
//
// A sweep is single-pass. With Options.MaxPasses > 1 the sweep is repeated on
// the improved order until a pass finds nothing or the pass budget is spent;
// the default of 1 keeps the single-sweep behavior.
//
// Guarantees: the returned score is never below the baseline; with
// FirstImprovement and one pass it is either the baseline or strictly higher.
//
// Complexity: O(passes · L · (L + Σ books)) time, O(L) extra space.
package localsearch
