package anneal_test

import (
	"testing"

	"github.com/katalvlaran/bookscan/anneal"
	"github.com/katalvlaran/bookscan/internal/fixture"
)

// BenchmarkRun_ShortSchedule anneals a medium instance with 10 proposals per stage.
func BenchmarkRun_ShortSchedule(b *testing.B) {
	in := fixture.Random(3, 2000, 150, 300, 10)
	o := anneal.DefaultOptions()
	o.IterationsPerStage = 10
	o.Seed = 1
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := anneal.Run(in, o); err != nil {
			b.Fatal(err)
		}
	}
}
