package core

import "math"

// FitnessBox is the running per-dimension [min, max] envelope of every
// fitness value observed so far. It seeds the PESA density kernel's
// bandwidths and is reported to callers via Engine.FitnessBox.
type FitnessBox struct {
	Min []float64
	Max []float64
}

// NewFitnessBox returns an empty box of the given dimensionality, with Min
// set to +Inf and Max to -Inf so the first Extend always widens it.
func NewFitnessBox(dimensionality int) *FitnessBox {
	box := &FitnessBox{
		Min: make([]float64, dimensionality),
		Max: make([]float64, dimensionality),
	}
	for d := 0; d < dimensionality; d++ {
		box.Min[d] = math.Inf(1)
		box.Max[d] = math.Inf(-1)
	}
	return box
}

// Dimensionality reports D.
func (b *FitnessBox) Dimensionality() int {
	return len(b.Min)
}

// Extend widens the box to cover fitness, returning true if the box changed.
func (b *FitnessBox) Extend(fitness []float64) bool {
	changed := false
	for d, v := range fitness {
		if v < b.Min[d] {
			b.Min[d] = v
			changed = true
		}
		if v > b.Max[d] {
			b.Max[d] = v
			changed = true
		}
	}
	return changed
}

// Range reports max[d] - min[d].
func (b *FitnessBox) Range(d int) float64 {
	return b.Max[d] - b.Min[d]
}

// Contains reports whether every coordinate of fitness lies within the box.
func (b *FitnessBox) Contains(fitness []float64) bool {
	for d, v := range fitness {
		if v < b.Min[d] || v > b.Max[d] {
			return false
		}
	}
	return true
}

// Clone returns an independent copy.
func (b *FitnessBox) Clone() *FitnessBox {
	return &FitnessBox{
		Min: append([]float64(nil), b.Min...),
		Max: append([]float64(nil), b.Max...),
	}
}
