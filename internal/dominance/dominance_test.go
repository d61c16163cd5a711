package dominance

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDominates(t *testing.T) {
	tests := []struct {
		name string
		a, b []float64
		want bool
	}{
		{"strictly better in every dim", []float64{2, 2}, []float64{1, 1}, true},
		{"better in one, equal in other", []float64{2, 1}, []float64{1, 1}, true},
		{"equal in every dim", []float64{1, 1}, []float64{1, 1}, false},
		{"worse in one dim", []float64{2, 0}, []float64{1, 1}, false},
		{"worse in every dim", []float64{0, 0}, []float64{1, 1}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Dominates(tt.a, tt.b))
		})
	}
}

func TestNonDominated(t *testing.T) {
	t.Run("no dominator present", func(t *testing.T) {
		assert.True(t, NonDominated([]float64{1, 1}, [][]float64{{0, 0}, {1, 0}}))
	})

	t.Run("a dominator is present", func(t *testing.T) {
		assert.False(t, NonDominated([]float64{1, 1}, [][]float64{{2, 2}}))
	})

	t.Run("empty others is trivially non-dominated", func(t *testing.T) {
		assert.True(t, NonDominated([]float64{1, 1}, nil))
	})
}
