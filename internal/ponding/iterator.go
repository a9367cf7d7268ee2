package ponding

import (
	"context"
	"fmt"
	"math"

	"github.com/mupshaw/gopond/internal/member"
	"github.com/mupshaw/gopond/internal/waterload"
)

// DeflectionProvider abstracts the structural solver: given a member and a
// line load distribution, it returns the deflection at each station in
// inches, downward positive. Implementations may be slow; the iterator
// never issues overlapping calls for the same run.
type DeflectionProvider interface {
	Deflect(ctx context.Context, m *member.Member, load waterload.Distribution) ([]float64, error)
}

// Run executes the ponding feedback loop for one member and scenario.
//
// Each cycle derives the ponded water depth from the previous cycle's
// deflection (zero on the first cycle, so the first load is dead plus
// static water only), converts it to a load distribution, asks the
// provider for a new deflection, and classifies the history. The loop
// stops on a verdict or at the iteration cap.
//
// All iteration state is local to the call; concurrent runs on different
// members or scenarios share nothing. A provider failure aborts the run
// with a *SolverError carrying the failing cycle.
func Run(ctx context.Context, m *member.Member, scenario waterload.Scenario, provider DeflectionProvider, cfg Config) (*AnalysisResult, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	if err := scenario.Validate(); err != nil {
		return nil, err
	}

	elevations := m.Elevations()
	deflection := make([]float64, len(elevations))
	history := make([]Cycle, 0, cfg.MaxIterations)

	for i := 0; i < cfg.MaxIterations; i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		depths := scenario.Depths(elevations, deflection)
		load := scenario.Distribution(m, depths)

		next, err := provider.Deflect(ctx, m, load)
		if err != nil {
			return nil, &SolverError{Cycle: i + 1, PeakLoad: load.MaxIntensity(), Err: err}
		}
		if len(next) != len(elevations) {
			return nil, &SolverError{
				Cycle:    i + 1,
				PeakLoad: load.MaxIntensity(),
				Err:      fmt.Errorf("provider returned %d stations, member has %d", len(next), len(elevations)),
			}
		}

		deflection = next
		history = append(history, Cycle{Index: i, MaxDeflection: maxAbs(next)})

		verdict, decided := Classify(history, cfg, i == cfg.MaxIterations-1)
		if decided {
			return newResult(verdict, history), nil
		}
	}

	return newResult(IndeterminateAtLimit, history), nil
}

func maxAbs(profile []float64) float64 {
	var max float64
	for _, v := range profile {
		if a := math.Abs(v); a > max {
			max = a
		}
	}
	return max
}
