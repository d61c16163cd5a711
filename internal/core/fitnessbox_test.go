package core

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFitnessBox_Extend(t *testing.T) {
	box := NewFitnessBox(2)
	assert.True(t, math.IsInf(box.Min[0], 1))
	assert.True(t, math.IsInf(box.Max[0], -1))

	t.Run("first extend always changes the box", func(t *testing.T) {
		changed := box.Extend([]float64{1, 2})
		assert.True(t, changed)
		assert.Equal(t, []float64{1, 2}, box.Min)
		assert.Equal(t, []float64{1, 2}, box.Max)
	})

	t.Run("interior point does not change the box", func(t *testing.T) {
		changed := box.Extend([]float64{1, 2})
		assert.False(t, changed)
	})

	t.Run("wider point extends the box", func(t *testing.T) {
		changed := box.Extend([]float64{-1, 5})
		assert.True(t, changed)
		assert.Equal(t, []float64{-1, 2}, box.Min)
		assert.Equal(t, []float64{1, 5}, box.Max)
	})
}

func TestFitnessBox_ContainsAndRange(t *testing.T) {
	box := NewFitnessBox(1)
	box.Extend([]float64{0})
	box.Extend([]float64{10})

	assert.Equal(t, 10.0, box.Range(0))
	assert.True(t, box.Contains([]float64{5}))
	assert.False(t, box.Contains([]float64{11}))
}
