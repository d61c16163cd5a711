package variation

import (
	"context"
	"math/rand"

	"github.com/tomhoffer/paretoevo/internal/core"
	"github.com/tomhoffer/paretoevo/internal/genetics"
)

// ProduceChildren builds the next internal population of the given size
// from the archive: with probability crossoverProbability and when at
// least two archive members exist, two distinct tournament winners are
// crossed (with exactly two members, the tournament winner is crossed with
// the other member); otherwise a single tournament winner is mutated. The tournament
// comparator is a parameter so both algorithm variants share this
// implementation.
func ProduceChildren(ctx context.Context, rng *rand.Rand, archive []core.Individual, g genetics.Genetics, cmp Better, size int, crossoverProbability, mutationRate float64) (*core.Population, error) {
	children := make([]core.Individual, 0, size)
	dimensionality := 0
	if len(archive) > 0 {
		dimensionality = len(archive[0].Fitness)
	}

	for len(children) < size {
		useCrossover := len(archive) >= 2 && rng.Float64() < crossoverProbability

		if useCrossover {
			a := BinaryTournament(rng, archive, cmp)
			b := a
			if len(archive) == 2 {
				// A two-member tournament can keep returning the same
				// winner, so the second parent is the other member.
				b = 1 - a
			}
			for b == a {
				b = BinaryTournament(rng, archive, cmp)
			}
			child, err := g.Crossover(archive[a].Chromosome, archive[b].Chromosome, mutationRate)
			if err != nil {
				return nil, err
			}
			children = append(children, core.NewIndividual(child, dimensionality))
			continue
		}

		a := BinaryTournament(rng, archive, cmp)
		if a < 0 {
			// Empty archive: fall back to a fresh random individual via
			// Genetics so the loop can still make progress (e.g. the very
			// first iteration before anything has been admitted yet).
			child, err := g.InitIndividual(ctx, len(children))
			if err != nil {
				return nil, err
			}
			children = append(children, core.NewIndividual(child, dimensionality))
			continue
		}
		child, err := g.Mutate(archive[a].Chromosome, mutationRate)
		if err != nil {
			return nil, err
		}
		children = append(children, core.NewIndividual(child, dimensionality))
	}

	return core.NewPopulation(children), nil
}
