package api

import (
	"fmt"

	"github.com/skillsenselab/statkit/bootstrap"
)

// Config holds request limits and defaults for the API.
type Config struct {
	// DefaultRepetitions is used when a request omits repetitions.
	DefaultRepetitions int `yaml:"default_repetitions" mapstructure:"default_repetitions"`
	// MaxRepetitions caps the repetitions a single request may ask for.
	MaxRepetitions int `yaml:"max_repetitions" mapstructure:"max_repetitions"`
	// MaxSampleSize caps the number of observations per group or sample.
	MaxSampleSize int `yaml:"max_sample_size" mapstructure:"max_sample_size"`
}

// ApplyDefaults sets sensible default values for unset fields.
func (c *Config) ApplyDefaults() {
	if c.DefaultRepetitions == 0 {
		c.DefaultRepetitions = bootstrap.DefaultRepetitions
	}
	if c.MaxRepetitions == 0 {
		c.MaxRepetitions = 100000
	}
	if c.MaxSampleSize == 0 {
		c.MaxSampleSize = 100000
	}
}

// Validate checks the configuration for invalid values.
func (c *Config) Validate() error {
	if c.DefaultRepetitions < 1 {
		return fmt.Errorf("api.default_repetitions must be positive (got: %d)", c.DefaultRepetitions)
	}
	if c.MaxRepetitions < c.DefaultRepetitions {
		return fmt.Errorf("api.max_repetitions must be >= default_repetitions (got: %d < %d)", c.MaxRepetitions, c.DefaultRepetitions)
	}
	if c.MaxSampleSize < 1 {
		return fmt.Errorf("api.max_sample_size must be positive (got: %d)", c.MaxSampleSize)
	}
	return nil
}
