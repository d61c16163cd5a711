package engine

import (
	"context"

	"github.com/tomhoffer/paretoevo/internal/archive"
	"github.com/tomhoffer/paretoevo/internal/core"
	"github.com/tomhoffer/paretoevo/internal/density/pesa"
	"github.com/tomhoffer/paretoevo/internal/logstore"
)

// initStallThreshold is the consecutive-rejection limit: if InitIndividual
// refuses more than this many candidates in a row while filling the initial
// internal population, the run aborts rather than spin forever.
const initStallThreshold = 1_000_000

// buildInitialPopulation fills a fresh internal population of
// cfg.InternalPopulationSize individuals by calling Genetics.InitIndividual,
// retrying rejected candidates with the next seed index until more than
// initStallThreshold consecutive rejections trip an InitStallError.
func (e *Engine) buildInitialPopulation(ctx context.Context) (*core.Population, error) {
	individuals := make([]core.Individual, 0, e.cfg.InternalPopulationSize)
	consecutiveRejections := 0
	seedIndex := 0

	for len(individuals) < e.cfg.InternalPopulationSize {
		chromosome, err := e.genetics.InitIndividual(ctx, seedIndex)
		seedIndex++
		if err != nil {
			consecutiveRejections++
			if consecutiveRejections > initStallThreshold {
				return nil, core.NewInitStallError("initializer rejected too many consecutive candidates", err)
			}
			continue
		}
		consecutiveRejections = 0
		individuals = append(individuals, core.NewIndividual(chromosome, e.cfg.FitnessSpaceDimensionality))
	}

	return core.NewPopulation(individuals), nil
}

// resumeState reconstructs the internal population and the archive from
// an existing log file: the archive is rebuilt by re-admitting every
// recorded individual (which recomputes density scores against the
// freshly observed fitness box rather than trusting stale scores from
// before a crash), the iteration counter is set to the iteration Resume
// reports (max(last recorded - 1, marker count - 2), so the last recorded
// iteration runs again), and the internal population is refilled with fresh random
// individuals up to its configured size.
func (e *Engine) resumeState(ctx context.Context, logPath string) (*core.Population, error) {
	result, err := logstore.Resume(logPath, e.cfg.FitnessSpaceDimensionality, e.genetics.ChromosomeSize())
	if err != nil {
		return nil, err
	}

	for _, ind := range result.Individuals {
		e.state.Box.Extend(ind.Fitness)
	}
	if _, ok := e.arch.(*archive.PESAArchive); ok {
		pesa.UpdateSigmas(e.state.Box, e.cfg.FitnessSpacePartition, e.state.Sigmas)
	}
	e.arch.Admit(result.Individuals)
	for _, ind := range e.arch.Individuals() {
		if ind.Sequence > e.lastLoggedSeq {
			e.lastLoggedSeq = ind.Sequence
		}
	}

	e.state.Iteration = result.LastIteration

	return e.buildInitialPopulation(ctx)
}
