package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChromosome_StringRoundTrip(t *testing.T) {
	t.Run("round trips through String and ParseChromosome", func(t *testing.T) {
		ch := Chromosome{1, 0, 1, 1, 0}

		parsed, err := ParseChromosome(ch.String())

		require.NoError(t, err)
		assert.True(t, ch.Equal(parsed))
		assert.Equal(t, "10110", ch.String())
	})

	t.Run("rejects non-bit characters", func(t *testing.T) {
		_, err := ParseChromosome("1012")

		require.Error(t, err)
		var invalid *InvalidChromosomeError
		assert.ErrorAs(t, err, &invalid)
	})
}

func TestChromosome_Clone(t *testing.T) {
	original := Chromosome{1, 0, 1}
	clone := original.Clone()
	clone[0] = 0

	assert.Equal(t, byte(1), original[0], "mutating the clone must not affect the original")
	assert.True(t, original.Equal(Chromosome{1, 0, 1}))
}

func TestChromosome_Equal(t *testing.T) {
	tests := []struct {
		name string
		a, b Chromosome
		want bool
	}{
		{"identical", Chromosome{1, 0}, Chromosome{1, 0}, true},
		{"different length", Chromosome{1, 0}, Chromosome{1, 0, 1}, false},
		{"different bits", Chromosome{1, 0}, Chromosome{1, 1}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.Equal(tt.b))
		})
	}
}
