// Package evaluator implements the bounded fitness-evaluator pool (C2).
package evaluator

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/tomhoffer/paretoevo/internal/core"
	"github.com/tomhoffer/paretoevo/internal/genetics"
)

// WorkerPool evaluates a population's chromosomes with bounded concurrency.
// An errgroup with SetLimit dispatches one goroutine per individual,
// capturing the loop index explicitly so each goroutine writes only its
// own slot. When Workers is 1, evaluation runs in the caller's goroutine
// and no group machinery is started at all.
type WorkerPool struct {
	Workers int
}

// NewWorkerPool builds a pool with the given worker count. workers must be
// >= 1; that invariant is enforced by config validation before the engine
// starts.
func NewWorkerPool(workers int) *WorkerPool {
	return &WorkerPool{Workers: workers}
}

// EvaluateBatch fills in the Fitness field of every individual in pop by
// invoking g.Evaluate. It returns only after every individual has been
// evaluated. A failed evaluation does not abort the batch: the
// individual's fitness is set to the zero (worst) vector and Evaluated is
// left false so the caller can detect it.
//
// failures reports how many individuals failed; the caller escalates to
// AllEvalsFailed when failures equals the batch size.
func EvaluateBatch(ctx context.Context, pool *WorkerPool, g genetics.Genetics, pop *core.Population, dimensionality int) (failures int, err error) {
	n := pop.Len()
	if n == 0 {
		return 0, nil
	}

	if pool.Workers <= 1 {
		for i := range pop.Individuals {
			if evalOne(ctx, g, &pop.Individuals[i], dimensionality) {
				failures++
			}
		}
		return failures, nil
	}

	var eg errgroup.Group
	eg.SetLimit(pool.Workers)

	results := make([]bool, n)
	for i := range pop.Individuals {
		i := i
		eg.Go(func() error {
			results[i] = evalOne(ctx, g, &pop.Individuals[i], dimensionality)
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return 0, err
	}
	for _, failed := range results {
		if failed {
			failures++
		}
	}
	return failures, nil
}

// evalOne evaluates a single individual in place, reporting whether it
// failed.
func evalOne(ctx context.Context, g genetics.Genetics, ind *core.Individual, dimensionality int) (failed bool) {
	fitness, ok, err := g.Evaluate(ctx, ind.Chromosome)
	if err != nil || !ok {
		ind.Fitness = make([]float64, dimensionality)
		ind.Evaluated = false
		return true
	}
	ind.Fitness = fitness
	ind.Evaluated = true
	return false
}
