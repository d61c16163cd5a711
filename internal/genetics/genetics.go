// Package genetics defines the Genetics capability: the sole bridge
// between the evolution loop and a user's problem encoding. Chromosome
// initialization, evaluation, crossover, mutation, and phenotype decoding
// are merged into one capability because the engine binds exactly one
// implementation per run rather than composing independent strategies.
package genetics

import (
	"context"

	"github.com/tomhoffer/paretoevo/internal/core"
)

// Genetics is the capability a caller implements to describe their problem.
// Every method may be called concurrently from multiple worker goroutines;
// implementations are responsible for their own concurrency discipline.
// The core never mutates a Genetics implementation's internal state itself.
type Genetics interface {
	// ChromosomeSize reports L, the fixed bit length of every chromosome
	// this capability produces and consumes.
	ChromosomeSize() int

	// InitIndividual produces a fresh random chromosome for the given
	// 0-based seed index. It may reject a candidate by returning a non-nil
	// error; the caller retries with a new index.
	InitIndividual(ctx context.Context, seedIndex int) (core.Chromosome, error)

	// Evaluate computes the fitness vector for a chromosome. ok is false if
	// evaluation failed; the caller substitutes the worst-case fitness
	// (zero in every dimension) and continues.
	Evaluate(ctx context.Context, chromosome core.Chromosome) (fitness []float64, ok bool, err error)

	// Crossover produces one child chromosome from two parents, applying
	// mutation at mutationRate afterward. mutationRate lies in [0, 1].
	Crossover(parentA, parentB core.Chromosome, mutationRate float64) (core.Chromosome, error)

	// Mutate produces one child chromosome by bit-flipping parent at
	// mutationRate.
	Mutate(parent core.Chromosome, mutationRate float64) (core.Chromosome, error)

	// ChromosomeToPhenotype decodes a chromosome into the opaque parameter
	// object the caller's problem consumes. Used only at the front-file
	// boundary; never called from a worker goroutine.
	ChromosomeToPhenotype(chromosome core.Chromosome) (any, error)
}
