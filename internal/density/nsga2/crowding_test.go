package nsga2

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tomhoffer/paretoevo/internal/core"
)

// buildFront constructs a front of 2D individuals from flat (f0,f1) pairs.
func buildFront(coords ...float64) []*core.Individual {
	front := make([]*core.Individual, 0, len(coords)/2)
	for i := 0; i+1 < len(coords); i += 2 {
		front = append(front, ind(coords[i], coords[i+1]))
	}
	return front
}

func TestCrowdingDistance_BoundariesAreInfinite(t *testing.T) {
	pop := buildFront(1, 5, 3, 3, 5, 1)
	CrowdingDistance(pop)

	assert.True(t, math.IsInf(pop[0].Crowding, 1))
	assert.True(t, math.IsInf(pop[2].Crowding, 1))
	assert.False(t, math.IsInf(pop[1].Crowding, 1))
	assert.Greater(t, pop[1].Crowding, 0.0)
}

func TestCrowdingDistance_SmallFrontAllInfinite(t *testing.T) {
	pop := buildFront(1, 1, 2, 2)
	CrowdingDistance(pop)
	for _, p := range pop {
		assert.True(t, math.IsInf(p.Crowding, 1))
	}
}

func TestCrowdingDistance_ZeroSpreadDimensionSkipped(t *testing.T) {
	pop := buildFront(1, 1, 1, 1, 1, 1)
	assert.NotPanics(t, func() { CrowdingDistance(pop) })
}

func TestLess_RankThenCrowding(t *testing.T) {
	a := ind(1, 1)
	b := ind(1, 1)
	a.Rank, b.Rank = 1, 2
	assert.True(t, Less(a, b))

	a.Rank, b.Rank = 1, 1
	a.Crowding, b.Crowding = 2, 1
	assert.True(t, Less(a, b))
}
