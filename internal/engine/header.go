package engine

import (
	"fmt"
	"strconv"

	"github.com/tomhoffer/paretoevo/internal/logstore"
)

// buildHeader serializes the engine parameters into a flat key/value
// header. The Genetics capability's own state is opaque to this engine
// (the interface exposes no serialization hook beyond the chromosome
// codec), so only its concrete Go type name is recorded — enough to catch
// a resume against a mismatched Genetics implementation, which is the
// failure mode the header guards against in practice.
func (e *Engine) buildHeader() logstore.Header {
	c := e.cfg
	return logstore.Header{
		"crossoverProbability":       strconv.FormatFloat(c.CrossoverProbability, 'g', -1, 64),
		"initialMutationRate":        strconv.FormatFloat(c.InitialMutationRate, 'g', -1, 64),
		"finalMutationRate":          strconv.FormatFloat(c.FinalMutationRate, 'g', -1, 64),
		"mutationDecayRate":          strconv.FormatFloat(c.MutationDecayRate, 'g', -1, 64),
		"externalPopulationSize":     strconv.Itoa(c.ExternalPopulationSize),
		"internalPopulationSize":     strconv.Itoa(c.InternalPopulationSize),
		"fitnessSpaceDimensionality": strconv.Itoa(c.FitnessSpaceDimensionality),
		"numOfIterations":            strconv.Itoa(c.NumOfIterations),
		"fitnessSpacePartition":      strconv.Itoa(c.FitnessSpacePartition),
		"numberOfThreads":            strconv.Itoa(c.NumberOfThreads),
		"engineName":                 string(c.EngineName),
		"randomSeed":                 strconv.FormatInt(c.RandomSeed, 10),
		"chromosomeSize":             strconv.Itoa(e.genetics.ChromosomeSize()),
		"geneticsType":               fmt.Sprintf("%T", e.genetics),
	}
}
