package anneal_test

import (
	"fmt"

	"github.com/katalvlaran/bookscan/anneal"
	"github.com/katalvlaran/bookscan/internal/fixture"
)

// ExampleRun anneals the two-library instance from the greedy plan.
func ExampleRun() {
	opts := anneal.DefaultOptions()
	opts.Seed = 42

	res, err := anneal.Run(fixture.TwoLibraries(), opts)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("score:", res.Score)
	// Output: score: 18
}
