package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDefaultConfig_Valid(t *testing.T) {
	c := NewDefaultConfig()
	require.NoError(t, c.Validate())
	assert.Equal(t, PESA, c.EngineName)
	assert.Equal(t, 0.7, c.CrossoverProbability)
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"valid defaults", func(c *Config) {}, false},
		{"non-positive decay rate", func(c *Config) { c.MutationDecayRate = 0 }, true},
		{"zero dimensionality", func(c *Config) { c.FitnessSpaceDimensionality = 0 }, true},
		{"zero internal population", func(c *Config) { c.InternalPopulationSize = 0 }, true},
		{"zero external population", func(c *Config) { c.ExternalPopulationSize = 0 }, true},
		{"zero threads", func(c *Config) { c.NumberOfThreads = 0 }, true},
		{"crossover probability above 1", func(c *Config) { c.CrossoverProbability = 1.5 }, true},
		{"crossover probability negative", func(c *Config) { c.CrossoverProbability = -0.1 }, true},
		{"negative iterations", func(c *Config) { c.NumOfIterations = -1 }, true},
		{"unknown engine name", func(c *Config) { c.EngineName = "bogus" }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewDefaultConfig()
			tt.mutate(c)
			err := c.Validate()
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}
