// Package config defines the engine's configuration record and its
// validation rules.
package config

import "github.com/tomhoffer/paretoevo/internal/core"

// EngineName selects which algorithm variant drives the archive.
type EngineName string

const (
	PESA  EngineName = "PESA"
	NSGA2 EngineName = "NSGA2"
)

// Config is the plain configuration record for a run. Every field has a
// documented default, applied by NewDefaultConfig, following a plain
// factory-constructor pattern rather than functional options.
type Config struct {
	CrossoverProbability       float64
	InitialMutationRate        float64
	FinalMutationRate          float64
	MutationDecayRate          float64
	ExternalPopulationSize     int
	InternalPopulationSize     int
	FitnessSpaceDimensionality int
	NumOfIterations            int
	LogAllEvaluations          bool
	FitnessSpacePartition      int
	SortResult                 bool
	NumberOfThreads            int
	LogFront                   bool
	LogFilename                string
	CreateFrontFile            bool
	FrontFile                  string
	EngineName                 EngineName
	RandomSeed                 int64
}

// NewDefaultConfig returns the configuration with every default value.
func NewDefaultConfig() *Config {
	return &Config{
		CrossoverProbability:       0.7,
		InitialMutationRate:        -1,
		FinalMutationRate:          -1,
		MutationDecayRate:          33.3808200696,
		ExternalPopulationSize:     100,
		InternalPopulationSize:     10,
		FitnessSpaceDimensionality: 2,
		NumOfIterations:            1000,
		LogAllEvaluations:          false,
		FitnessSpacePartition:      32,
		SortResult:                 true,
		NumberOfThreads:            1,
		LogFront:                   true,
		LogFilename:                "pareto.log",
		CreateFrontFile:            false,
		FrontFile:                  "pareto.pf",
		EngineName:                 PESA,
	}
}

// Validate checks the configuration for invalid values. It is called
// before the engine does any work; a non-nil result means the engine must
// not run.
func (c *Config) Validate() error {
	switch {
	case c.MutationDecayRate <= 0:
		return core.NewConfigError("mutationDecayRate must be strictly positive", nil)
	case c.FitnessSpaceDimensionality <= 0:
		return core.NewConfigError("fitnessSpaceDimensionality must be positive", nil)
	case c.InternalPopulationSize <= 0:
		return core.NewConfigError("internalPopulationSize must be positive", nil)
	case c.ExternalPopulationSize <= 0:
		return core.NewConfigError("externalPopulationSize must be positive", nil)
	case c.NumberOfThreads < 1:
		return core.NewConfigError("numberOfThreads must be at least 1", nil)
	case c.CrossoverProbability < 0 || c.CrossoverProbability > 1:
		return core.NewConfigError("crossoverProbability must lie in [0, 1]", nil)
	case c.FitnessSpacePartition <= 0:
		return core.NewConfigError("fitnessSpacePartition must be positive", nil)
	case c.NumOfIterations < 0:
		return core.NewConfigError("numOfIterations must not be negative", nil)
	case c.EngineName != PESA && c.EngineName != NSGA2:
		return core.NewConfigError("engineName must be PESA or NSGA2", nil)
	}
	return nil
}
