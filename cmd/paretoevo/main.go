package main

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/tomhoffer/paretoevo/internal/config"
	"github.com/tomhoffer/paretoevo/internal/core"
	"github.com/tomhoffer/paretoevo/internal/engine"
	"github.com/tomhoffer/paretoevo/internal/genetics"
	"github.com/tomhoffer/paretoevo/internal/progress"
)

const chromosomeLength = 30

// twoMaxEval is a demonstration fitness surface: maximize the count of
// 1-bits in the first half of the chromosome and, independently, the count
// of 0-bits in the second half, giving two objectives in genuine tension.
func twoMaxEval(_ context.Context, chromosome core.Chromosome) ([]float64, bool, error) {
	half := chromosome.Len() / 2
	var ones, zeros float64
	for i := 0; i < chromosome.Len(); i++ {
		if i < half {
			if chromosome[i] == 1 {
				ones++
			}
		} else if chromosome[i] == 0 {
			zeros++
		}
	}
	return []float64{ones, zeros}, true, nil
}

func twoMaxPhenotype(chromosome core.Chromosome) (any, error) {
	return chromosome.String(), nil
}

func main() {
	// 1. Dependency injection
	cfg := config.NewDefaultConfig()
	cfg.NumOfIterations = 200
	cfg.InternalPopulationSize = 20
	cfg.ExternalPopulationSize = 50
	cfg.RandomSeed = rand.Int63()

	g := genetics.NewBitStringGenetics(chromosomeLength, cfg.RandomSeed, twoMaxEval, twoMaxPhenotype)
	listener := progress.NewBarListener(cfg.NumOfIterations)

	e, err := engine.New(cfg, g, listener)
	if err != nil {
		panic(fmt.Sprintf("failed to build engine: %v", err))
	}

	// 2. Run the evolution loop
	result, err := e.Run(context.Background(), false)
	if err != nil {
		panic(fmt.Sprintf("evolution run failed: %v", err))
	}

	// 3. Print the final front
	fmt.Printf("\nFinal Pareto front (%d individuals):\n", result.Len())
	for _, ind := range result.Individuals {
		fmt.Printf("  fitness=%v chromosome=%s\n", ind.Fitness, ind.Chromosome.String())
	}
}
