package config

import (
	"github.com/spf13/viper"

	"github.com/mupshaw/gopond/internal/ponding"
)

// Config holds runtime defaults for the analysis commands. Values are
// populated from .gopond.toml, GOPOND_* env vars, and CLI flags.
type Config struct {
	Tolerance        float64 `mapstructure:"tolerance"`
	DivergenceRatio  float64 `mapstructure:"divergence_ratio"`
	DivergenceCycles int     `mapstructure:"divergence_cycles"`
	MaxIterations    int     `mapstructure:"max_iterations"`
}

// Load reads configuration from viper, applying built-in defaults for any
// values not set by config file, environment, or flags.
func Load() Config {
	viper.SetDefault("tolerance", ponding.DefaultTolerance)
	viper.SetDefault("divergence_ratio", ponding.DefaultDivergenceRatio)
	viper.SetDefault("divergence_cycles", ponding.DefaultDivergenceCycles)
	viper.SetDefault("max_iterations", ponding.DefaultMaxIterations)

	var cfg Config
	_ = viper.Unmarshal(&cfg)
	return cfg
}

// Iteration converts the runtime defaults into a ponding configuration.
func (c Config) Iteration() ponding.Config {
	return ponding.Config{
		Tolerance:        c.Tolerance,
		DivergenceRatio:  c.DivergenceRatio,
		DivergenceCycles: c.DivergenceCycles,
		MaxIterations:    c.MaxIterations,
	}
}
