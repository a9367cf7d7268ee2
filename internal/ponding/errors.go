package ponding

import "fmt"

// SolverError reports a deflection solve that failed mid-run. The run is
// aborted immediately: a non-convergent structural solve is not a ponding
// instability signal and is never retried or papered over with a default
// deflection.
type SolverError struct {
	// Cycle is the 1-based cycle on which the solve failed.
	Cycle int
	// PeakLoad is the peak line load of the distribution that triggered
	// the failure, in plf.
	PeakLoad float64
	Err      error
}

func (e *SolverError) Error() string {
	return fmt.Sprintf("deflection solve failed on cycle %d (peak load %.1f plf): %v", e.Cycle, e.PeakLoad, e.Err)
}

func (e *SolverError) Unwrap() error {
	return e.Err
}

// ConfigError reports an analysis configuration value outside its valid
// domain. It is raised before any cycle executes.
type ConfigError struct {
	msg string
}

func (e *ConfigError) Error() string {
	return e.msg
}
