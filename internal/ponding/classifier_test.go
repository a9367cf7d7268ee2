package ponding

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func historyOf(maxima ...float64) []Cycle {
	history := make([]Cycle, len(maxima))
	for i, m := range maxima {
		history[i] = Cycle{Index: i, MaxDeflection: m}
	}
	return history
}

func TestClassify(t *testing.T) {
	cfg := DefaultConfig()

	tests := []struct {
		name         string
		history      []Cycle
		limitReached bool
		wantVerdict  Verdict
		wantDecided  bool
	}{
		{
			name:    "single cycle always continues",
			history: historyOf(1.0),
		},
		{
			name:        "small relative change converges",
			history:     historyOf(1.0, 1.002),
			wantVerdict: Converged,
			wantDecided: true,
		},
		{
			name:        "two zero cycles converge",
			history:     historyOf(0, 0),
			wantVerdict: Converged,
			wantDecided: true,
		},
		{
			name:    "moderate growth continues",
			history: historyOf(1.0, 1.5),
		},
		{
			name:    "single doubling does not yet diverge",
			history: historyOf(1.0, 2.5),
		},
		{
			name:        "two consecutive doublings diverge",
			history:     historyOf(1.0, 2.5, 6.0),
			wantVerdict: Diverged,
			wantDecided: true,
		},
		{
			name:    "doubling then stall resets the divergence count",
			history: historyOf(1.0, 2.5, 3.0),
		},
		{
			name:         "limit reached while undecided is indeterminate",
			history:      historyOf(1.0, 1.5, 2.0),
			limitReached: true,
			wantVerdict:  IndeterminateAtLimit,
			wantDecided:  true,
		},
		{
			name:        "shrinking deflection within tolerance converges",
			history:     historyOf(1.0, 0.999),
			wantVerdict: Converged,
			wantDecided: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			verdict, decided := Classify(tt.history, cfg, tt.limitReached)
			assert.Equal(t, tt.wantDecided, decided)
			if tt.wantDecided {
				assert.Equal(t, tt.wantVerdict, verdict)
			}
		})
	}
}

func TestClassifyIsPure(t *testing.T) {
	cfg := DefaultConfig()
	history := historyOf(1.0, 2.5, 6.0)

	first, firstDecided := Classify(history, cfg, false)
	second, secondDecided := Classify(history, cfg, false)

	assert.Equal(t, first, second)
	assert.Equal(t, firstDecided, secondDecided)
}

func TestClassifyGrowthFromZero(t *testing.T) {
	cfg := DefaultConfig()
	cfg.DivergenceCycles = 1

	// A jump from effectively zero to a finite deflection is unbounded
	// growth, never a division error.
	verdict, decided := Classify(historyOf(0, 0.5), cfg, false)
	require.True(t, decided)
	assert.Equal(t, Diverged, verdict)
}

func TestClassifyConvergedBeatsDivergenceCheck(t *testing.T) {
	// A growth cycle followed by a stable one must read as converged even
	// though an earlier cycle exceeded the ratio.
	cfg := DefaultConfig()
	verdict, decided := Classify(historyOf(1.0, 2.5, 2.5001), cfg, false)
	require.True(t, decided)
	assert.Equal(t, Converged, verdict)
}

func TestVerdictString(t *testing.T) {
	assert.Equal(t, "converged", Converged.String())
	assert.Equal(t, "diverged", Diverged.String())
	assert.Equal(t, "indeterminate-at-limit", IndeterminateAtLimit.String())
	assert.Equal(t, "unknown", Verdict(99).String())
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		valid  bool
	}{
		{name: "defaults", mutate: func(*Config) {}, valid: true},
		{name: "zero tolerance", mutate: func(c *Config) { c.Tolerance = 0 }},
		{name: "negative tolerance", mutate: func(c *Config) { c.Tolerance = -0.01 }},
		{name: "zero divergence ratio", mutate: func(c *Config) { c.DivergenceRatio = 0 }},
		{name: "zero divergence cycles", mutate: func(c *Config) { c.DivergenceCycles = 0 }},
		{name: "single iteration", mutate: func(c *Config) { c.MaxIterations = 1 }},
		{name: "tight but legal", mutate: func(c *Config) { c.MaxIterations = 2; c.DivergenceCycles = 1 }, valid: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.valid {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			var cfgErr *ConfigError
			assert.ErrorAs(t, err, &cfgErr)
		})
	}
}

func TestSolverErrorWrapsCause(t *testing.T) {
	cause := fmt.Errorf("stiffness matrix is singular")
	err := &SolverError{Cycle: 4, PeakLoad: 312.5, Err: cause}

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "cycle 4")
}

func TestNewResultCopiesHistory(t *testing.T) {
	history := historyOf(1.0, 1.001)
	result := newResult(Converged, history)

	history[0].MaxDeflection = 99
	assert.InDelta(t, 1.0, result.History[0].MaxDeflection, 1e-12)
}
