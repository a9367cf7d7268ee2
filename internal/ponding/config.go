package ponding

import "fmt"

// Defaults for the iteration configuration.
const (
	DefaultTolerance        = 0.005
	DefaultDivergenceRatio  = 1.0
	DefaultDivergenceCycles = 2
	DefaultMaxIterations    = 25
)

// Config controls the convergence behavior of a ponding run.
type Config struct {
	// Tolerance is the relative change in max deflection between cycles
	// below which the run has converged.
	Tolerance float64

	// DivergenceRatio is the relative growth at or above which a cycle
	// counts toward divergence.
	DivergenceRatio float64

	// DivergenceCycles is the number of consecutive growing cycles
	// required before the run is declared diverged. The default of two
	// keeps a single noisy overshoot from being flagged as instability.
	DivergenceCycles int

	// MaxIterations caps the number of cycles. A run that hits the cap
	// without converging or diverging ends IndeterminateAtLimit.
	MaxIterations int
}

// DefaultConfig returns the standard iteration settings.
func DefaultConfig() Config {
	return Config{
		Tolerance:        DefaultTolerance,
		DivergenceRatio:  DefaultDivergenceRatio,
		DivergenceCycles: DefaultDivergenceCycles,
		MaxIterations:    DefaultMaxIterations,
	}
}

// Validate checks every setting eagerly, before the first cycle.
func (c Config) Validate() error {
	if c.Tolerance <= 0 {
		return &ConfigError{msg: fmt.Sprintf("convergence tolerance must be positive, got %g", c.Tolerance)}
	}
	if c.DivergenceRatio <= 0 {
		return &ConfigError{msg: fmt.Sprintf("divergence ratio must be positive, got %g", c.DivergenceRatio)}
	}
	if c.DivergenceCycles < 1 {
		return &ConfigError{msg: fmt.Sprintf("divergence cycles must be at least 1, got %d", c.DivergenceCycles)}
	}
	if c.MaxIterations < 2 {
		return &ConfigError{msg: fmt.Sprintf("max iterations must be at least 2, got %d", c.MaxIterations)}
	}
	return nil
}
