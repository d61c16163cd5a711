package logstore

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tomhoffer/paretoevo/internal/core"
)

func TestEncodeDecodeRecord_RoundTrip(t *testing.T) {
	ind := core.Individual{
		Chromosome: core.Chromosome{1, 0, 1, 1},
		Fitness:    []float64{1.5, -2.25},
	}

	line := EncodeRecord(ind)
	decoded, dead, err := DecodeRecord(line, 2, 4)

	require.NoError(t, err)
	assert.False(t, dead)
	assert.Equal(t, ind.Fitness, decoded.Fitness)
	assert.True(t, ind.Chromosome.Equal(decoded.Chromosome))
}

func TestDecodeRecord_DeadMarker(t *testing.T) {
	ind := core.Individual{Chromosome: core.Chromosome{0, 1}, Fitness: []float64{1}}
	line := EncodeRecord(ind) + " ;; x"

	_, dead, err := DecodeRecord(line, 1, 2)

	require.NoError(t, err)
	assert.True(t, dead)
}

func TestDecodeRecord_DimensionMismatch(t *testing.T) {
	ind := core.Individual{Chromosome: core.Chromosome{0, 1}, Fitness: []float64{1, 2}}
	line := EncodeRecord(ind)

	_, _, err := DecodeRecord(line, 3, 2)
	require.Error(t, err)
}

func TestDecodeRecord_Malformed(t *testing.T) {
	_, _, err := DecodeRecord("not a record", 1, 2)
	require.Error(t, err)
}

func TestIterationMarker(t *testing.T) {
	assert.Equal(t, ";; Iteration: 5 Front size: 10 New individuals: 3", IterationMarker(5, 10, 3))
}
