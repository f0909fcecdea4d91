package observability

import "time"

// Config holds the observability section of a service config.
type Config struct {
	Enabled    bool    `yaml:"enabled" mapstructure:"enabled"`
	Endpoint   string  `yaml:"endpoint" mapstructure:"endpoint"`
	Insecure   bool    `yaml:"insecure" mapstructure:"insecure"`
	SampleRate float64 `yaml:"sample_rate" mapstructure:"sample_rate"`
	// Interval is the metric export interval in seconds.
	Interval int `yaml:"interval" mapstructure:"interval"`
}

// ApplyDefaults sets development-friendly defaults for unset fields.
func (c *Config) ApplyDefaults() {
	if c.Endpoint == "" {
		c.Endpoint = "localhost:4318"
		c.Insecure = true
	}
	if c.SampleRate == 0 {
		c.SampleRate = 1.0
	}
	if c.Interval == 0 {
		c.Interval = 15
	}
}

// TracerConfig builds a TracerConfig for the given service identity.
func (c *Config) TracerConfig(serviceName, serviceVersion, environment string) TracerConfig {
	return TracerConfig{
		ServiceName:    serviceName,
		ServiceVersion: serviceVersion,
		Environment:    environment,
		Endpoint:       c.Endpoint,
		Insecure:       c.Insecure,
		SampleRate:     c.SampleRate,
	}
}

// MeterConfig builds a MeterConfig for the given service identity.
func (c *Config) MeterConfig(serviceName, serviceVersion, environment string) MeterConfig {
	return MeterConfig{
		ServiceName:    serviceName,
		ServiceVersion: serviceVersion,
		Environment:    environment,
		Endpoint:       c.Endpoint,
		Insecure:       c.Insecure,
		Interval:       time.Duration(c.Interval) * time.Second,
	}
}
