// Package variation implements the variation stage (C6): binary tournament
// selection, child production, and the mutation-rate annealing schedule.
package variation

import (
	"math/rand"

	"github.com/tomhoffer/paretoevo/internal/core"
	"github.com/tomhoffer/paretoevo/internal/density/nsga2"
)

// Better compares two archive members and reports whether a should win a
// tournament against b. For PESA, lower density score wins; for NSGA-II,
// lower rank wins, ties broken by higher crowding distance.
type Better func(a, b *core.Individual) bool

// PESABetter is the Better comparator for PESA: lower density score wins.
func PESABetter(a, b *core.Individual) bool {
	return a.Score < b.Score
}

// NSGA2Better is the Better comparator for NSGA-II: lower rank wins, ties
// broken by higher crowding distance (density/nsga2.Less).
func NSGA2Better(a, b *core.Individual) bool {
	return nsga2.Less(a, b)
}

// BinaryTournament draws two distinct indices uniformly at random from
// population and returns the winner by cmp, breaking exact ties with a
// fair coin.
func BinaryTournament(rng *rand.Rand, population []core.Individual, cmp Better) int {
	n := len(population)
	switch {
	case n == 0:
		return -1
	case n == 1:
		return 0
	case n == 2:
		if cmp(&population[0], &population[1]) {
			return 0
		}
		if cmp(&population[1], &population[0]) {
			return 1
		}
		return rng.Intn(2)
	}

	a := rng.Intn(n)
	b := rng.Intn(n - 1)
	if b >= a {
		b++
	}

	if cmp(&population[a], &population[b]) {
		return a
	}
	if cmp(&population[b], &population[a]) {
		return b
	}
	if rng.Intn(2) == 0 {
		return a
	}
	return b
}
