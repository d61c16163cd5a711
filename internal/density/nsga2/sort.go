// Package nsga2 implements the NSGA-II density estimator: fast
// non-dominated sort for rank assignment and crowding distance within each
// rank, using core.Individual's Rank field directly rather than a side map.
//
// Sort runs as a single sequential O(n^2) pass; rank buckets are not
// processed concurrently.
package nsga2

import (
	"github.com/tomhoffer/paretoevo/internal/core"
	"github.com/tomhoffer/paretoevo/internal/dominance"
)

// Sort assigns Rank (1-based, rank 1 is the current Pareto front) to every
// individual in place and returns the individuals grouped by front, front 1
// first.
func Sort(individuals []*core.Individual) [][]*core.Individual {
	n := len(individuals)
	dominationCount := make([]int, n)
	dominatedBy := make([][]int, n)

	var fronts [][]int
	first := make([]int, 0, n)

	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			if dominance.Dominates(individuals[i].Fitness, individuals[j].Fitness) {
				dominatedBy[i] = append(dominatedBy[i], j)
			} else if dominance.Dominates(individuals[j].Fitness, individuals[i].Fitness) {
				dominationCount[i]++
			}
		}
		if dominationCount[i] == 0 {
			individuals[i].Rank = 1
			first = append(first, i)
		}
	}
	fronts = append(fronts, first)

	rank := 1
	for len(fronts[rank-1]) > 0 {
		next := make([]int, 0)
		for _, i := range fronts[rank-1] {
			for _, j := range dominatedBy[i] {
				dominationCount[j]--
				if dominationCount[j] == 0 {
					individuals[j].Rank = rank + 1
					next = append(next, j)
				}
			}
		}
		if len(next) == 0 {
			break
		}
		fronts = append(fronts, next)
		rank++
	}

	result := make([][]*core.Individual, 0, len(fronts))
	for _, front := range fronts {
		if len(front) == 0 {
			continue
		}
		members := make([]*core.Individual, len(front))
		for k, idx := range front {
			members[k] = individuals[idx]
		}
		result = append(result, members)
	}
	return result
}
