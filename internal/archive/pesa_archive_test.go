package archive

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tomhoffer/paretoevo/internal/core"
)

// mkIndividual builds an individual whose chromosome encodes its (small,
// integer) fitness values, so candidates with different fitnesses never
// share a chromosome and are not merged by chromosome de-duplication.
func mkIndividual(fitness ...float64) core.Individual {
	chromosome := core.NewChromosome(8 * len(fitness))
	for d, v := range fitness {
		for bit := 0; bit < 8; bit++ {
			chromosome[8*d+bit] = byte(int(v)>>bit) & 1
		}
	}
	return core.Individual{Chromosome: chromosome, Fitness: fitness}
}

func TestPESAArchive_AdmitFirstNonDominated(t *testing.T) {
	sigmas := []float64{1, 1}
	a := NewPESAArchive(10, sigmas, false)

	inserted := a.Admit([]core.Individual{mkIndividual(1, 1)})

	assert.Equal(t, 1, inserted)
	require.Equal(t, 1, a.Len())
	assert.Equal(t, 0.0, a.Individuals()[0].Score)
}

func TestPESAArchive_MutualDominanceWithinBatch(t *testing.T) {
	sigmas := []float64{1, 1}
	a := NewPESAArchive(10, sigmas, false)

	inserted := a.Admit([]core.Individual{
		mkIndividual(5, 5),
		mkIndividual(1, 1), // dominated by the first, discarded
	})

	assert.Equal(t, 1, inserted)
	require.Equal(t, 1, a.Len())
	assert.Equal(t, []float64{5, 5}, a.Individuals()[0].Fitness)
}

func TestPESAArchive_DiscardsCandidatesDominatedByArchive(t *testing.T) {
	sigmas := []float64{1, 1}
	a := NewPESAArchive(10, sigmas, false)
	a.Admit([]core.Individual{mkIndividual(5, 5)})

	inserted := a.Admit([]core.Individual{mkIndividual(1, 1)})

	assert.Equal(t, 0, inserted)
	assert.Equal(t, 1, a.Len())
}

func TestPESAArchive_EvictsDominatedIncumbents(t *testing.T) {
	sigmas := []float64{1, 1}
	a := NewPESAArchive(10, sigmas, false)
	a.Admit([]core.Individual{mkIndividual(1, 1)})

	inserted := a.Admit([]core.Individual{mkIndividual(5, 5)})

	assert.Equal(t, 1, inserted)
	require.Equal(t, 1, a.Len())
	assert.Equal(t, []float64{5, 5}, a.Individuals()[0].Fitness)
}

func TestPESAArchive_TruncatesToCapByScore(t *testing.T) {
	sigmas := []float64{10, 10}
	a := NewPESAArchive(2, sigmas, true)

	a.Admit([]core.Individual{
		mkIndividual(1, 5),
		mkIndividual(3, 3),
		mkIndividual(5, 1),
	})

	assert.LessOrEqual(t, a.Len(), 2)
	assert.NotEmpty(t, a.DeadIndividuals())
}

func TestPESAArchive_Rescore(t *testing.T) {
	sigmas := []float64{1, 1}
	a := NewPESAArchive(10, sigmas, false)
	a.Admit([]core.Individual{mkIndividual(5, 1), mkIndividual(1, 5)})

	sigmas[0] = 2
	sigmas[1] = 2
	a.Rescore()

	for _, m := range a.Individuals() {
		assert.Greater(t, m.Score, 0.0)
	}
}
