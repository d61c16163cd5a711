package engine

import (
	"context"
	"fmt"

	"github.com/tomhoffer/paretoevo/internal/core"
	"github.com/tomhoffer/paretoevo/internal/evaluator"
	"github.com/tomhoffer/paretoevo/internal/logstore"
	"github.com/tomhoffer/paretoevo/internal/variation"
)

// Run executes the state machine to completion: start, evaluate, density,
// update, admit, log, check, vary, looping until the iteration budget is
// exhausted or an external cancel is observed. It returns the current
// archive in the success and the cancelled case, and also alongside an
// AllEvalsFailedError or any other error raised once the loop has started.
// Errors raised before the loop starts (creating or opening the log,
// LogReadError, InitStallError) return a nil population. ConfigError and
// GeneticsBindError are reported by New, not by Run.
//
// When resumeFromLog is true, the run continues from cfg.LogFilename
// instead of starting from a fresh random population.
func (e *Engine) Run(ctx context.Context, resumeFromLog bool) (*core.Population, error) {
	var writer *logstore.Writer
	var err error

	if resumeFromLog {
		if writer, err = e.openResumedLog(); err != nil {
			return nil, err
		}
	} else if e.cfg.LogFront {
		if writer, err = logstore.Create(e.cfg.LogFilename, e.buildHeader()); err != nil {
			return nil, err
		}
	}
	if writer != nil {
		defer writer.Close()
	}

	var pop *core.Population
	if resumeFromLog {
		pop, err = e.resumeState(ctx, e.cfg.LogFilename)
	} else {
		pop, err = e.buildInitialPopulation(ctx)
	}
	if err != nil {
		return nil, err
	}

	rInf := variation.ResolveRate(e.cfg.FinalMutationRate, e.genetics.ChromosomeSize())
	r0 := variation.ResolveRate(e.cfg.InitialMutationRate, e.genetics.ChromosomeSize())
	e.state.MutationRate = variation.MutationRate(e.state.Iteration, r0, rInf, e.cfg.MutationDecayRate)

	for {
		// evaluate
		failures, evalErr := evaluator.EvaluateBatch(ctx, e.pool, e.genetics, pop, e.cfg.FitnessSpaceDimensionality)
		if evalErr != nil {
			return e.snapshot(), evalErr
		}
		if failures == pop.Len() && pop.Len() > 0 {
			return e.snapshot(), core.NewAllEvalsFailedError(
				fmt.Sprintf("all evaluations in one iteration failed (iteration %d, %d candidates)", e.state.Iteration, failures), nil)
		}

		// density / update_E
		boxChanged := false
		for _, ind := range pop.Individuals {
			if !ind.Evaluated {
				continue
			}
			if e.state.Box.Extend(ind.Fitness) {
				boxChanged = true
			}
		}
		e.updateDensity(boxChanged)

		// admit
		deadBefore := len(e.arch.DeadIndividuals())
		e.arch.Admit(pop.Individuals)

		// log
		if writer != nil {
			if err := e.logIteration(writer, deadBefore); err != nil {
				return e.snapshot(), err
			}
		}
		e.listener.Step(fmt.Sprintf("iteration %d: front size %d", e.state.Iteration, e.arch.Len()))

		// check
		if e.state.Iteration >= e.cfg.NumOfIterations {
			break
		}
		if e.listener.BreakRequested() {
			return e.snapshot(), core.ErrCancelled
		}

		// vary
		e.state.MutationRate = variation.MutationRate(e.state.Iteration, r0, rInf, e.cfg.MutationDecayRate)
		children, err := variation.ProduceChildren(ctx, e.state.Rng, e.arch.Individuals(), e.genetics, e.cmp,
			e.cfg.InternalPopulationSize, e.cfg.CrossoverProbability, e.state.MutationRate)
		if err != nil {
			return e.snapshot(), err
		}
		pop = children
		e.state.Iteration++
	}

	result := e.snapshot()
	if e.cfg.SortResult {
		result.SortScanningOrder()
	}
	if e.cfg.CreateFrontFile {
		if err := e.WriteFrontFile(e.cfg.FrontFile); err != nil {
			return result, err
		}
	}
	return result, nil
}

// Resume is equivalent to Run(ctx, true).
func (e *Engine) Resume(ctx context.Context) (*core.Population, error) {
	return e.Run(ctx, true)
}

// snapshot wraps the current archive members into a Population, the shape
// Run returns to callers regardless of which Archive variant is active.
func (e *Engine) snapshot() *core.Population {
	return core.NewPopulation(append([]core.Individual(nil), e.arch.Individuals()...))
}

// openResumedLog reopens the existing log for append. It does not read the
// header; Resume reads it afterwards, and the only checks made against the
// running config are Resume's per-record dimensionality/length checks.
func (e *Engine) openResumedLog() (*logstore.Writer, error) {
	if !e.cfg.LogFront {
		return nil, core.NewLogReadError("resume requested but logFront is disabled", nil)
	}
	return logstore.OpenAppend(e.cfg.LogFilename)
}

// logIteration appends every archive member admitted since the previous
// iteration (identified by Sequence, which the active Archive assigns
// monotonically on insertion) plus, when logAllEvaluations is enabled, the
// newly dead individuals, followed by the iteration marker.
func (e *Engine) logIteration(writer *logstore.Writer, deadBefore int) error {
	newCount := 0
	maxSeq := e.lastLoggedSeq
	for _, ind := range e.arch.Individuals() {
		if ind.Sequence > e.lastLoggedSeq {
			if err := writer.AppendRecord(ind, false); err != nil {
				return err
			}
			if ind.Sequence > maxSeq {
				maxSeq = ind.Sequence
			}
			newCount++
		}
	}
	e.lastLoggedSeq = maxSeq

	if e.cfg.LogAllEvaluations {
		dead := e.arch.DeadIndividuals()
		for _, ind := range dead[deadBefore:] {
			if err := writer.AppendRecord(ind, true); err != nil {
				return err
			}
		}
	}

	return writer.AppendMarker(e.state.Iteration, e.arch.Len(), newCount)
}
