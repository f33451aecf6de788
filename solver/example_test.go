package solver_test

import (
	"fmt"

	"github.com/katalvlaran/bookscan/internal/fixture"
	"github.com/katalvlaran/bookscan/solver"
)

// ExampleCompare scores the five strategies on the removal scenario.
func ExampleCompare() {
	o := solver.DefaultOptions()
	o.Annealing.IterationsPerStage = 10
	o.Genetic.PopulationSize = 6
	o.Genetic.Generations = 4

	reps, err := solver.Compare(fixture.RemovalHelps(), o, solver.Greedy, solver.LocalFirst, solver.LocalBest)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, r := range reps {
		fmt.Printf("%-12s %d\n", r.Algo, r.Result.Score)
	}
	// Output:
	// greedy       100
	// local-first  130
	// local-best   150
}
