package nsga2

import (
	"math"
	"sort"

	"github.com/tomhoffer/paretoevo/internal/core"
)

// CrowdingDistance assigns Crowding to every individual within a single
// front in place: boundary individuals (extremes of some objective) get an
// infinite contribution; interior individuals accumulate the normalized
// gap between their neighbors, summed over every objective.
func CrowdingDistance(front []*core.Individual) {
	n := len(front)
	if n == 0 {
		return
	}
	for _, ind := range front {
		ind.Crowding = 0
	}
	if n <= 2 {
		for _, ind := range front {
			ind.Crowding = math.Inf(1)
		}
		return
	}

	dimensionality := len(front[0].Fitness)
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}

	for d := 0; d < dimensionality; d++ {
		sort.SliceStable(order, func(a, b int) bool {
			return front[order[a]].Fitness[d] < front[order[b]].Fitness[d]
		})

		min := front[order[0]].Fitness[d]
		max := front[order[n-1]].Fitness[d]
		front[order[0]].Crowding = math.Inf(1)
		front[order[n-1]].Crowding = math.Inf(1)

		spread := max - min
		if spread == 0 {
			continue
		}
		for k := 1; k < n-1; k++ {
			ind := front[order[k]]
			if math.IsInf(ind.Crowding, 1) {
				continue
			}
			prev := front[order[k-1]].Fitness[d]
			next := front[order[k+1]].Fitness[d]
			ind.Crowding += (next - prev) / spread
		}
	}
}

// Less implements the NSGA-II tournament comparator: lower rank wins;
// ties broken by higher crowding distance.
func Less(a, b *core.Individual) bool {
	if a.Rank != b.Rank {
		return a.Rank < b.Rank
	}
	return a.Crowding > b.Crowding
}
