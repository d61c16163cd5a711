package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// fileRecord is the TOML-tagged mirror of Config. Kept separate from
// Config itself so the engine's in-memory record stays free of struct
// tags, keeping file-format concerns out of the plain config struct.
type fileRecord struct {
	CrossoverProbability       float64 `toml:"crossover_probability"`
	InitialMutationRate        float64 `toml:"initial_mutation_rate"`
	FinalMutationRate          float64 `toml:"final_mutation_rate"`
	MutationDecayRate          float64 `toml:"mutation_decay_rate"`
	ExternalPopulationSize     int     `toml:"external_population_size"`
	InternalPopulationSize     int     `toml:"internal_population_size"`
	FitnessSpaceDimensionality int     `toml:"fitness_space_dimensionality"`
	NumOfIterations            int     `toml:"num_of_iterations"`
	LogAllEvaluations          bool    `toml:"log_all_evaluations"`
	FitnessSpacePartition      int     `toml:"fitness_space_partition"`
	SortResult                 bool    `toml:"sort_result"`
	NumberOfThreads            int     `toml:"number_of_threads"`
	LogFront                   bool    `toml:"log_front"`
	LogFilename                string  `toml:"log_filename"`
	CreateFrontFile            bool    `toml:"create_front_file"`
	FrontFile                  string  `toml:"front_file"`
	EngineName                 string  `toml:"engine_name"`
	RandomSeed                 int64   `toml:"random_seed"`
}

func toFileRecord(c *Config) fileRecord {
	return fileRecord{
		CrossoverProbability:       c.CrossoverProbability,
		InitialMutationRate:        c.InitialMutationRate,
		FinalMutationRate:          c.FinalMutationRate,
		MutationDecayRate:          c.MutationDecayRate,
		ExternalPopulationSize:     c.ExternalPopulationSize,
		InternalPopulationSize:     c.InternalPopulationSize,
		FitnessSpaceDimensionality: c.FitnessSpaceDimensionality,
		NumOfIterations:            c.NumOfIterations,
		LogAllEvaluations:          c.LogAllEvaluations,
		FitnessSpacePartition:      c.FitnessSpacePartition,
		SortResult:                 c.SortResult,
		NumberOfThreads:            c.NumberOfThreads,
		LogFront:                   c.LogFront,
		LogFilename:                c.LogFilename,
		CreateFrontFile:            c.CreateFrontFile,
		FrontFile:                  c.FrontFile,
		EngineName:                 string(c.EngineName),
		RandomSeed:                 c.RandomSeed,
	}
}

func (r fileRecord) toConfig() *Config {
	return &Config{
		CrossoverProbability:       r.CrossoverProbability,
		InitialMutationRate:        r.InitialMutationRate,
		FinalMutationRate:          r.FinalMutationRate,
		MutationDecayRate:          r.MutationDecayRate,
		ExternalPopulationSize:     r.ExternalPopulationSize,
		InternalPopulationSize:     r.InternalPopulationSize,
		FitnessSpaceDimensionality: r.FitnessSpaceDimensionality,
		NumOfIterations:            r.NumOfIterations,
		LogAllEvaluations:          r.LogAllEvaluations,
		FitnessSpacePartition:      r.FitnessSpacePartition,
		SortResult:                 r.SortResult,
		NumberOfThreads:            r.NumberOfThreads,
		LogFront:                   r.LogFront,
		LogFilename:                r.LogFilename,
		CreateFrontFile:            r.CreateFrontFile,
		FrontFile:                  r.FrontFile,
		EngineName:                 EngineName(r.EngineName),
		RandomSeed:                 r.RandomSeed,
	}
}

// LoadFile reads a TOML config file. If the file does not exist, the
// defaults are returned rather than an error.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return NewDefaultConfig(), nil
		}
		return nil, fmt.Errorf("config: failed to read %s: %w", path, err)
	}

	var record fileRecord
	if err := toml.Unmarshal(data, &record); err != nil {
		return nil, fmt.Errorf("config: failed to parse %s: %w", path, err)
	}
	return record.toConfig(), nil
}

// SaveFile writes c to path as TOML, creating parent directories as
// needed.
func SaveFile(path string, c *Config) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("config: failed to create directory %s: %w", dir, err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("config: failed to create %s: %w", path, err)
	}
	defer f.Close()

	encoder := toml.NewEncoder(f)
	if err := encoder.Encode(toFileRecord(c)); err != nil {
		return fmt.Errorf("config: failed to write %s: %w", path, err)
	}
	return nil
}
