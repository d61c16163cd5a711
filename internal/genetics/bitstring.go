package genetics

import (
	"context"
	"fmt"
	"math/rand"
	"sync"

	"github.com/tomhoffer/paretoevo/internal/core"
)

// EvalFunc computes the fitness vector for a decoded chromosome. It must be
// safe to call concurrently; BitStringGenetics never serializes calls to it.
type EvalFunc func(ctx context.Context, chromosome core.Chromosome) ([]float64, bool, error)

// PhenotypeFunc decodes a chromosome into the caller's parameter object.
type PhenotypeFunc func(chromosome core.Chromosome) (any, error)

// BitStringGenetics is the reference Genetics implementation for
// fixed-length bit chromosomes: crossover performs uniform crossover
// followed by independent bit-flip mutation; mutation performs bit-flip
// mutation alone.
//
// Own randomness (chromosome init, crossover, mutation) is drawn from a
// private, mutex-guarded RNG so the type is safe to share across the
// evolution loop and any caller that constructs individuals concurrently;
// Evaluate itself defers entirely to the caller-supplied EvalFunc.
type BitStringGenetics struct {
	length    int
	eval      EvalFunc
	phenotype PhenotypeFunc

	mu  sync.Mutex
	rng *rand.Rand
}

// NewBitStringGenetics builds a BitStringGenetics of the given chromosome
// length, backed by eval for fitness and phenotype for decoding.
func NewBitStringGenetics(length int, seed int64, eval EvalFunc, phenotype PhenotypeFunc) *BitStringGenetics {
	return &BitStringGenetics{
		length:    length,
		eval:      eval,
		phenotype: phenotype,
		rng:       rand.New(rand.NewSource(seed)),
	}
}

// ChromosomeSize implements Genetics.
func (g *BitStringGenetics) ChromosomeSize() int {
	return g.length
}

// InitIndividual implements Genetics: a uniformly random bit string.
func (g *BitStringGenetics) InitIndividual(_ context.Context, _ int) (core.Chromosome, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	ch := core.NewChromosome(g.length)
	for i := range ch {
		ch[i] = byte(g.rng.Intn(2))
	}
	return ch, nil
}

// Evaluate implements Genetics by delegating to the caller-supplied
// EvalFunc, which must itself be concurrency-safe.
func (g *BitStringGenetics) Evaluate(ctx context.Context, chromosome core.Chromosome) ([]float64, bool, error) {
	if len(chromosome) != g.length {
		return nil, false, fmt.Errorf("bitstring genetics: chromosome length %d does not match %d", len(chromosome), g.length)
	}
	return g.eval(ctx, chromosome)
}

// Crossover implements Genetics: uniform crossover (each bit independently
// taken from parentA or parentB with equal probability) followed by
// independent bit-flip mutation at mutationRate.
func (g *BitStringGenetics) Crossover(parentA, parentB core.Chromosome, mutationRate float64) (core.Chromosome, error) {
	if len(parentA) != g.length || len(parentB) != g.length {
		return nil, core.NewInvalidChromosomeError("crossover parent length mismatch", nil)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	child := core.NewChromosome(g.length)
	for i := range child {
		if g.rng.Intn(2) == 0 {
			child[i] = parentA[i]
		} else {
			child[i] = parentB[i]
		}
		if g.rng.Float64() < mutationRate {
			child[i] ^= 1
		}
	}
	return child, nil
}

// Mutate implements Genetics: independent bit-flip at mutationRate.
func (g *BitStringGenetics) Mutate(parent core.Chromosome, mutationRate float64) (core.Chromosome, error) {
	if len(parent) != g.length {
		return nil, core.NewInvalidChromosomeError("mutate parent length mismatch", nil)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	child := parent.Clone()
	for i := range child {
		if g.rng.Float64() < mutationRate {
			child[i] ^= 1
		}
	}
	return child, nil
}

// ChromosomeToPhenotype implements Genetics.
func (g *BitStringGenetics) ChromosomeToPhenotype(chromosome core.Chromosome) (any, error) {
	return g.phenotype(chromosome)
}
