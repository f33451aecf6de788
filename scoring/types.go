package scoring

import "errors"

// ErrInvalidSolution is returned by ValidateSolution for structurally broken solutions.
var ErrInvalidSolution = errors.New("scoring: invalid solution")

// Assignment pairs a library index with the book indices it is offered to scan.
type Assignment struct {
	Library int
	Books   []int
}

// Solution is an ordered signup plan. Order matters: earlier libraries sign
// up first and claim shared books first.
type Solution struct {
	Assignments []Assignment
}

// Result is what every strategy returns.
//
// Score       – the value of Solution under Score.
// Solution    – the plan achieving Score.
// Evaluations – how many times the strategy invoked the scoring walk.
type Result struct {
	Score       int64
	Solution    Solution
	Evaluations int
}

// Signup describes one library that the walk actually signed up.
type Signup struct {
	Library int   // library index
	Start   int   // day on which its signup begins (0-based)
	Books   []int // book indices it scans, in scan order
}

// Evaluation is the detailed outcome of a walk.
type Evaluation struct {
	Score   int64
	Signups []Signup
}

// Scanned returns the number of distinct books scanned across all signups.
func (e Evaluation) Scanned() int {
	var n int
	for _, s := range e.Signups {
		n += len(s.Books)
	}

	return n
}
