package core

import "math/rand"

// IterationState is the evolution loop's mutable state carried across
// iterations: the iteration counter, the annealed mutation rate, the
// fitness bounding box and its derived sigmas, and the loop's own RNG.
//
// The RNG is owned exclusively by the evolution-loop thread; workers
// evaluating fitness must never draw from it.
type IterationState struct {
	Iteration    int
	MutationRate float64
	Box          *FitnessBox
	Sigmas       []float64
	Rng          *rand.Rand
}

// NewIterationState builds the initial state for a run of the given
// dimensionality and seed.
func NewIterationState(dimensionality int, seed int64) *IterationState {
	return &IterationState{
		Box:    NewFitnessBox(dimensionality),
		Sigmas: make([]float64, dimensionality),
		Rng:    rand.New(rand.NewSource(seed)),
	}
}
