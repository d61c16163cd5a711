// Package engine implements the evolution loop: the state machine that
// ties the Genetics capability, the fitness evaluator pool, the density
// estimator, the archive manager, the variation stage, and the log store
// together into one run.
package engine

import (
	"github.com/tomhoffer/paretoevo/internal/archive"
	"github.com/tomhoffer/paretoevo/internal/config"
	"github.com/tomhoffer/paretoevo/internal/core"
	"github.com/tomhoffer/paretoevo/internal/density/pesa"
	"github.com/tomhoffer/paretoevo/internal/evaluator"
	"github.com/tomhoffer/paretoevo/internal/genetics"
	"github.com/tomhoffer/paretoevo/internal/progress"
	"github.com/tomhoffer/paretoevo/internal/variation"
)

// Engine binds one Genetics implementation, one configuration, and one
// archive variant (selected by config.EngineName) into a runnable
// evolution loop.
type Engine struct {
	cfg      *config.Config
	genetics genetics.Genetics
	pool     *evaluator.WorkerPool
	arch     archive.Archive
	cmp      variation.Better
	state    *core.IterationState
	listener progress.Listener

	// lastLoggedSeq is the highest core.Individual.Sequence already
	// written to the log store; logIteration logs only members above it.
	lastLoggedSeq uint64
}

// New validates cfg and g, then builds an Engine ready to Run. Returns
// *core.ConfigError or *core.GeneticsBindError if either fails its
// pre-flight check.
func New(cfg *config.Config, g genetics.Genetics, listener progress.Listener) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if g == nil {
		return nil, core.NewGeneticsBindError("no Genetics capability installed", nil)
	}
	if g.ChromosomeSize() <= 0 {
		return nil, core.NewGeneticsBindError("genetics reports a non-positive chromosome size", nil)
	}

	if listener == nil {
		listener = progress.Noop{}
	}

	state := core.NewIterationState(cfg.FitnessSpaceDimensionality, cfg.RandomSeed)

	var arch archive.Archive
	var cmp variation.Better
	switch cfg.EngineName {
	case config.NSGA2:
		arch = archive.NewNSGA2Archive(cfg.ExternalPopulationSize, cfg.LogAllEvaluations)
		cmp = variation.NSGA2Better
	default:
		arch = archive.NewPESAArchive(cfg.ExternalPopulationSize, state.Sigmas, cfg.LogAllEvaluations)
		cmp = variation.PESABetter
	}

	return &Engine{
		cfg:      cfg,
		genetics: g,
		pool:     evaluator.NewWorkerPool(cfg.NumberOfThreads),
		arch:     arch,
		cmp:      cmp,
		state:    state,
		listener: listener,
	}, nil
}

// Archive exposes the engine's current external population, readable at
// any point (including after a cancelled or failed run).
func (e *Engine) Archive() archive.Archive {
	return e.arch
}

// FitnessBox exposes the running fitness bounding box.
func (e *Engine) FitnessBox() *core.FitnessBox {
	return e.state.Box
}

// Iteration reports the 0-based iteration the engine has reached.
func (e *Engine) Iteration() int {
	return e.state.Iteration
}

// updateDensity recomputes sigmas and/or rescales scores after the
// fitness box changed, dispatching on the active archive type. NSGA-II's
// density estimator (rank + crowding) never depends on a running box, so
// its rescore is a no-op, matching Archive.Rescore's documented contract.
func (e *Engine) updateDensity(boxChanged bool) {
	if !boxChanged {
		return
	}
	if _, ok := e.arch.(*archive.PESAArchive); ok {
		pesa.UpdateSigmas(e.state.Box, e.cfg.FitnessSpacePartition, e.state.Sigmas)
	}
	e.arch.Rescore()
}
