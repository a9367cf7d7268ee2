package waterload

import (
	"fmt"

	"github.com/mupshaw/gopond/internal/member"
)

// WaterWeight is the weight of ponded water per inch of depth (psf/in).
const WaterWeight = 5.2

// Scenario describes the loading on a roof bay independent of any
// deflection: the dead load, the design water depths, and the bay
// geometry that converts depth into load. Read-only during a run.
type Scenario struct {
	DeadLoad       float64 // psf, uniform
	StaticHead     float64 // in, water depth at the drain inlet at design flow
	HydraulicHead  float64 // in, additional depth driving flow to the drain
	TributaryWidth float64 // ft
	OverflowDepth  float64 // in, depth at which water spills over a dam or scupper; 0 = unbounded
}

// Datum returns the design water surface elevation in inches: the depth of
// water at the low end of an undeflected member.
func (s Scenario) Datum() float64 {
	return s.StaticHead + s.HydraulicHead
}

// Validate checks the scenario invariants before a run.
func (s Scenario) Validate() error {
	if s.DeadLoad < 0 {
		return &ValidationError{msg: fmt.Sprintf("dead load must not be negative, got %.2f psf", s.DeadLoad)}
	}
	if s.StaticHead < 0 || s.HydraulicHead < 0 {
		return &ValidationError{msg: fmt.Sprintf("water depths must not be negative, got static %.2f in, hydraulic %.2f in", s.StaticHead, s.HydraulicHead)}
	}
	if s.TributaryWidth <= 0 {
		return &ValidationError{msg: fmt.Sprintf("tributary width must be positive, got %.2f ft", s.TributaryWidth)}
	}
	if s.OverflowDepth < 0 {
		return &ValidationError{msg: fmt.Sprintf("overflow depth must not be negative, got %.2f in", s.OverflowDepth)}
	}
	return nil
}

// Depths computes the ponded water depth at each station from the roof
// elevations and the current deflection profile, both in inches with
// deflection downward positive. The depth is never negative: deflection
// cannot pull ponded water below the roof surface. When an overflow depth
// is set, water beyond it spills over the dam or scupper and the depth is
// capped there.
func (s Scenario) Depths(elevations, deflection []float64) []float64 {
	datum := s.Datum()
	depths := make([]float64, len(elevations))
	for i := range elevations {
		d := datum + deflection[i] - elevations[i]
		if d < 0 {
			d = 0
		}
		if s.OverflowDepth > 0 && d > s.OverflowDepth {
			d = s.OverflowDepth
		}
		depths[i] = d
	}
	return depths
}

// Distribution holds the line load applied to a member at each of its
// stations, in plf. Dead load and water load are already summed.
type Distribution struct {
	Stations  []float64 // ft
	Intensity []float64 // plf, downward positive
}

// Distribution converts a ponded depth profile into the line load for the
// next solve: uniform dead load plus water weight times depth, both scaled
// by the bay tributary width.
func (s Scenario) Distribution(m *member.Member, depths []float64) Distribution {
	stations := m.Stations()
	dead := s.DeadLoad*s.TributaryWidth + m.Section.Weight
	intensity := make([]float64, len(stations))
	for i := range stations {
		intensity[i] = dead + WaterWeight*depths[i]*s.TributaryWidth
	}
	return Distribution{Stations: stations, Intensity: intensity}
}

// MaxIntensity returns the peak line load in plf.
func (d Distribution) MaxIntensity() float64 {
	var peak float64
	for _, w := range d.Intensity {
		if w > peak {
			peak = w
		}
	}
	return peak
}

// Total integrates the distribution over the span by the trapezoid rule,
// returning pounds.
func (d Distribution) Total() float64 {
	var total float64
	for i := 1; i < len(d.Stations); i++ {
		dx := d.Stations[i] - d.Stations[i-1]
		total += dx * (d.Intensity[i] + d.Intensity[i-1]) / 2
	}
	return total
}

// ValidationError represents an invalid load scenario.
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string {
	return e.msg
}
