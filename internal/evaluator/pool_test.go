package evaluator

import (
	"context"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tomhoffer/paretoevo/internal/core"
)

type stubGenetics struct {
	size      int
	fail      func(chromosome core.Chromosome) bool
	evaluated atomic.Int64
}

func (s *stubGenetics) ChromosomeSize() int { return s.size }

func (s *stubGenetics) InitIndividual(_ context.Context, _ int) (core.Chromosome, error) {
	return core.NewChromosome(s.size), nil
}

func (s *stubGenetics) Evaluate(_ context.Context, chromosome core.Chromosome) ([]float64, bool, error) {
	s.evaluated.Add(1)
	if s.fail != nil && s.fail(chromosome) {
		return nil, false, nil
	}
	sum := 0.0
	for _, bit := range chromosome {
		sum += float64(bit)
	}
	return []float64{sum}, true, nil
}

func (s *stubGenetics) Crossover(a, b core.Chromosome, _ float64) (core.Chromosome, error) {
	return a.Clone(), nil
}

func (s *stubGenetics) Mutate(parent core.Chromosome, _ float64) (core.Chromosome, error) {
	return parent.Clone(), nil
}

func (s *stubGenetics) ChromosomeToPhenotype(_ core.Chromosome) (any, error) {
	return nil, nil
}

func newPopulation(n, length int) *core.Population {
	individuals := make([]core.Individual, n)
	for i := range individuals {
		individuals[i] = core.NewIndividual(core.NewChromosome(length), 1)
	}
	return core.NewPopulation(individuals)
}

func TestEvaluateBatch_SingleThreaded(t *testing.T) {
	g := &stubGenetics{size: 4}
	pop := newPopulation(5, 4)

	failures, err := EvaluateBatch(context.Background(), NewWorkerPool(1), g, pop, 1)

	require.NoError(t, err)
	assert.Equal(t, 0, failures)
	for _, ind := range pop.Individuals {
		assert.True(t, ind.Evaluated)
	}
}

func TestEvaluateBatch_Parallel(t *testing.T) {
	g := &stubGenetics{size: 4}
	pop := newPopulation(50, 4)

	failures, err := EvaluateBatch(context.Background(), NewWorkerPool(4), g, pop, 1)

	require.NoError(t, err)
	assert.Equal(t, 0, failures)
	assert.EqualValues(t, 50, g.evaluated.Load())
}

func TestEvaluateBatch_PartialFailureSetsWorstFitness(t *testing.T) {
	calls := 0
	g := &stubGenetics{size: 4, fail: func(_ core.Chromosome) bool {
		calls++
		return calls%2 == 0
	}}
	pop := newPopulation(10, 4)

	failures, err := EvaluateBatch(context.Background(), NewWorkerPool(1), g, pop, 2)

	require.NoError(t, err)
	assert.Equal(t, 5, failures)
	for i, ind := range pop.Individuals {
		if !ind.Evaluated {
			assert.Equal(t, []float64{0, 0}, ind.Fitness, "failed individual %d must carry the worst-case fitness", i)
		}
	}
}

func TestEvaluateBatch_EmptyPopulation(t *testing.T) {
	g := &stubGenetics{size: 4}
	pop := core.NewEmptyPopulation()

	failures, err := EvaluateBatch(context.Background(), NewWorkerPool(4), g, pop, 1)

	require.NoError(t, err)
	assert.Equal(t, 0, failures)
}
