package config

import (
	"strings"

	"github.com/katalvlaran/bookscan/genetic"
)

// GeneticPreset returns the tuned GA settings for a data set letter
// ("a".."f", case-insensitive). Unknown keys get the "a" settings.
//
//	a, b  population 50, 1000 generations, mutation 0.2,  swap 0.2,  variation 0.2
//	c     population 10,   10 generations, mutation 0.05, swap 0.05, variation 0.01
//	d     population 10,   10 generations, mutation 0.05, swap 0.05, variation 0.001
//	e     population 20,  500 generations, mutation 0.2,  swap 0.2,  variation 0.2
//	f     population 20,  100 generations, mutation 0.2,  swap 0.2,  variation 0.2
//
// Tournament size, elitism and workers are the genetic package defaults.
func GeneticPreset(dataset string) GeneticConfig {
	d := genetic.DefaultOptions()
	g := GeneticConfig{
		PopulationSize:      50,
		Generations:         1000,
		MutationProbability: 0.2,
		SwapProbability:     0.2,
		PopulationVariation: 0.2,
		TournamentSize:      d.TournamentSize,
		Elitism:             d.Elitism,
		Workers:             d.Workers,
	}

	switch strings.ToLower(strings.TrimSpace(dataset)) {
	case "c":
		g.PopulationSize, g.Generations = 10, 10
		g.MutationProbability, g.SwapProbability, g.PopulationVariation = 0.05, 0.05, 0.01
	case "d":
		g.PopulationSize, g.Generations = 10, 10
		g.MutationProbability, g.SwapProbability, g.PopulationVariation = 0.05, 0.05, 0.001
	case "e":
		g.PopulationSize, g.Generations = 20, 500
	case "f":
		g.PopulationSize, g.Generations = 20, 100
	}

	return g
}
