package archive

import (
	"sort"

	"github.com/tomhoffer/paretoevo/internal/core"
	"github.com/tomhoffer/paretoevo/internal/density/nsga2"
)

// NSGA2Archive is the Archive implementation for the NSGA-II variant: rank
// via fast non-dominated sort, truncate by crowding distance, keeping only
// the rank-1 front as the archive. Every archive member must be mutually
// non-dominated, so lower-ranked fronts are never admitted — they exist
// only as scratch state inside a single Admit call, unlike a textbook
// NSGA-II generational population which keeps them across fronts.
type NSGA2Archive struct {
	cap int

	members []core.Individual
	dead    []core.Individual
	logAll  bool
	nextSeq uint64
}

// NewNSGA2Archive builds an empty archive bounded at capacity.
func NewNSGA2Archive(capacity int, logAllEvaluations bool) *NSGA2Archive {
	return &NSGA2Archive{
		cap:     capacity,
		members: make([]core.Individual, 0, capacity),
		logAll:  logAllEvaluations,
	}
}

// Individuals implements Archive.
func (a *NSGA2Archive) Individuals() []core.Individual {
	return a.members
}

// Len implements Archive.
func (a *NSGA2Archive) Len() int {
	return len(a.members)
}

// DeadIndividuals implements Archive.
func (a *NSGA2Archive) DeadIndividuals() []core.Individual {
	return a.dead
}

// Rescore implements Archive. NSGA-II's rank/crowding score is fully
// recomputed on every Admit call rather than maintained incrementally, so
// there is nothing to do here.
func (a *NSGA2Archive) Rescore() {}

// Admit implements Archive: combine, dedup, rank, and fill by crowding
// distance.
func (a *NSGA2Archive) Admit(batch []core.Individual) int {
	combined := make([]core.Individual, 0, len(a.members)+len(batch))
	combined = append(combined, a.members...)
	for _, candidate := range batch {
		candidate.Sequence = a.nextSeq
		a.nextSeq++
		combined = append(combined, candidate)
	}
	combined = a.dedupeByChromosome(combined)

	refs := make([]*core.Individual, len(combined))
	for i := range combined {
		refs[i] = &combined[i]
	}

	fronts := nsga2.Sort(refs)
	if len(fronts) > 1 {
		for _, front := range fronts[1:] {
			for _, m := range front {
				a.markDead(*m)
			}
		}
	}

	next := make([]core.Individual, 0, a.cap)
	inserted := 0
	batchSeqMin := a.nextSeq - uint64(len(batch))
	if len(fronts) > 0 {
		first := fronts[0]
		for _, m := range first {
			if m.Sequence >= batchSeqMin {
				inserted++
			}
		}
		nsga2.CrowdingDistance(first)
		if len(first) <= a.cap {
			for _, m := range first {
				next = append(next, *m)
			}
		} else {
			sort.SliceStable(first, func(i, j int) bool {
				return first[i].Crowding > first[j].Crowding
			})
			for i, m := range first {
				if i < a.cap {
					next = append(next, *m)
				} else {
					a.markDead(*m)
				}
			}
		}
	}

	a.members = next
	return inserted
}

func (a *NSGA2Archive) markDead(ind core.Individual) {
	if a.logAll {
		a.dead = append(a.dead, ind)
	}
}

// dedupeByChromosome drops every individual whose chromosome duplicates a
// later one in individuals, keeping the most recent copy (highest
// Sequence). This runs before ranking so rank/crowding never has to choose
// between two individuals carrying the same chromosome; the cap and
// crowding-distance truncation that follow still decide whether the
// surviving copy makes it into the archive.
func (a *NSGA2Archive) dedupeByChromosome(individuals []core.Individual) []core.Individual {
	out := make([]core.Individual, 0, len(individuals))
	for i, ind := range individuals {
		duplicate := false
		for j := i + 1; j < len(individuals); j++ {
			if ind.Chromosome.Equal(individuals[j].Chromosome) {
				duplicate = true
				break
			}
		}
		if duplicate {
			a.markDead(ind)
			continue
		}
		out = append(out, ind)
	}
	return out
}
