package core

import "sort"

// Population is an ordered collection of Individuals. The internal
// population and the external archive are both represented with this
// type; which invariants apply to a given Population (size cap, mutual
// non-dominance) is enforced by the component that owns it, not by the
// type itself.
type Population struct {
	Individuals []Individual
}

// NewPopulation wraps the given individuals without copying them.
func NewPopulation(individuals []Individual) *Population {
	return &Population{Individuals: individuals}
}

// NewEmptyPopulation returns a Population with a non-nil, zero-length slice.
func NewEmptyPopulation() *Population {
	return &Population{Individuals: make([]Individual, 0)}
}

// Len reports the number of individuals.
func (p *Population) Len() int {
	if p == nil {
		return 0
	}
	return len(p.Individuals)
}

// Clone returns a deep copy of the population.
func (p *Population) Clone() *Population {
	out := make([]Individual, len(p.Individuals))
	for i, ind := range p.Individuals {
		out[i] = ind.Clone()
	}
	return &Population{Individuals: out}
}

// SortScanningOrder sorts the population in place: descending by the last
// fitness dimension, ties broken by the next-to-last dimension, and so on
// down to the first.
func (p *Population) SortScanningOrder() {
	sort.SliceStable(p.Individuals, func(i, j int) bool {
		a, b := p.Individuals[i].Fitness, p.Individuals[j].Fitness
		for d := len(a) - 1; d >= 0; d-- {
			if a[d] != b[d] {
				return a[d] > b[d]
			}
		}
		return false
	})
}
