package archive

import (
	"sort"

	"github.com/tomhoffer/paretoevo/internal/core"
	"github.com/tomhoffer/paretoevo/internal/density/pesa"
	"github.com/tomhoffer/paretoevo/internal/dominance"
)

// PESAArchive is the Archive implementation for the PESA variant. Its
// batch admission runs three stages: mutual non-dominance within the
// candidate batch, non-dominance against the existing archive, and
// density-aware insertion with score bookkeeping on eviction, followed by
// a final cap truncation by score with incremental score correction.
type PESAArchive struct {
	cap    int
	sigmas []float64 // shared backing slice with the engine's IterationState.Sigmas

	members []core.Individual
	dead    []core.Individual
	logAll  bool
	nextSeq uint64
}

// NewPESAArchive builds an empty archive bounded at capacity, sharing
// sigmas with the caller (the engine recomputes it in place as the fitness
// box changes; PESAArchive always reads the current values).
func NewPESAArchive(capacity int, sigmas []float64, logAllEvaluations bool) *PESAArchive {
	return &PESAArchive{
		cap:     capacity,
		sigmas:  sigmas,
		members: make([]core.Individual, 0, capacity),
		logAll:  logAllEvaluations,
	}
}

// Individuals implements Archive.
func (a *PESAArchive) Individuals() []core.Individual {
	return a.members
}

// Len implements Archive.
func (a *PESAArchive) Len() int {
	return len(a.members)
}

// DeadIndividuals implements Archive.
func (a *PESAArchive) DeadIndividuals() []core.Individual {
	return a.dead
}

func (a *PESAArchive) markDead(ind core.Individual) {
	if a.logAll {
		a.dead = append(a.dead, ind)
	}
}

// Rescore implements Archive: recompute every member's density score from
// scratch against the current sigmas. Called when the fitness box changed.
func (a *PESAArchive) Rescore() {
	fitnesses := a.fitnessSlice()
	for i := range a.members {
		score := 0.0
		for j, other := range fitnesses {
			if j == i {
				continue
			}
			score += pesa.KernelDistance(a.members[i].Fitness, other, a.sigmas)
		}
		a.members[i].Score = score
	}
}

func (a *PESAArchive) fitnessSlice() [][]float64 {
	out := make([][]float64, len(a.members))
	for i := range a.members {
		out[i] = a.members[i].Fitness
	}
	return out
}

// Admit implements Archive: the three-stage admission.
func (a *PESAArchive) Admit(batch []core.Individual) int {
	// Stage 1: mutual non-dominance within the batch. A candidate whose
	// chromosome duplicates one already kept earlier in the batch loses to
	// that earlier copy, so the batch itself never hands stage 3 more than
	// one copy of the same chromosome.
	keepable := make([]core.Individual, 0, len(batch))
	for i, candidate := range batch {
		dominated := false
		for j, other := range batch {
			if i == j {
				continue
			}
			if dominance.Dominates(other.Fitness, candidate.Fitness) {
				dominated = true
				break
			}
			if j < i && candidate.Chromosome.Equal(other.Chromosome) {
				dominated = true
				break
			}
		}
		if dominated {
			a.markDead(candidate)
			continue
		}
		keepable = append(keepable, candidate)
	}

	// Stage 2: non-dominance against the existing archive.
	survivors := keepable[:0:0]
	for _, candidate := range keepable {
		dominated := false
		for _, e := range a.members {
			if dominance.Dominates(e.Fitness, candidate.Fitness) {
				dominated = true
				break
			}
		}
		if dominated {
			a.markDead(candidate)
			continue
		}
		survivors = append(survivors, candidate)
	}

	// Stage 3: density-aware insertion with eviction.
	inserted := 0
	for _, candidate := range survivors {
		a.insertOne(candidate)
		inserted++
	}

	if len(a.members) > a.cap {
		a.truncateToCap()
	}

	return inserted
}

// insertOne evicts every archive member that candidate dominates or that
// carries an identical chromosome (so E never holds two copies of the same
// chromosome side by side), corrects the remaining members' scores for the
// eviction, scores candidate against what remains, and appends it. The
// candidate still has to clear truncateToCap afterward, so a duplicate
// chromosome does not automatically guarantee the newer copy a spot.
func (a *PESAArchive) insertOne(candidate core.Individual) {
	kept := a.members[:0:0]
	var evictedFitness [][]float64
	for _, e := range a.members {
		if dominance.Dominates(candidate.Fitness, e.Fitness) || candidate.Chromosome.Equal(e.Chromosome) {
			a.markDead(e)
			evictedFitness = append(evictedFitness, e.Fitness)
			continue
		}
		kept = append(kept, e)
	}
	a.members = kept

	if len(evictedFitness) > 0 {
		for i := range a.members {
			for _, ef := range evictedFitness {
				a.members[i].Score -= pesa.KernelDistance(a.members[i].Fitness, ef, a.sigmas)
			}
		}
	}

	candidate.Score = 0
	for i := range a.members {
		k := pesa.KernelDistance(candidate.Fitness, a.members[i].Fitness, a.sigmas)
		candidate.Score += k
		a.members[i].Score += k
	}
	candidate.Sequence = a.nextSeq
	a.nextSeq++
	a.members = append(a.members, candidate)
}

// truncateToCap sorts members by (Score ascending, Sequence
// ascending) and drops everything past the cap, correcting the survivors'
// scores for each dropped member's kernel contribution.
func (a *PESAArchive) truncateToCap() {
	sort.SliceStable(a.members, func(i, j int) bool {
		if a.members[i].Score != a.members[j].Score {
			return a.members[i].Score < a.members[j].Score
		}
		return a.members[i].Sequence < a.members[j].Sequence
	})

	kept := a.members[:a.cap]
	dropped := a.members[a.cap:]

	for _, d := range dropped {
		a.markDead(d)
		for i := range kept {
			kept[i].Score -= pesa.KernelDistance(kept[i].Fitness, d.Fitness, a.sigmas)
		}
	}

	a.members = append([]core.Individual(nil), kept...)
}
