package member

import (
	"fmt"

	"github.com/mupshaw/gopond/internal/section"
)

// SupportType identifies the support arrangement of a roof member.
type SupportType int

const (
	// SimplySupported pins both ends against translation.
	SimplySupported SupportType = iota
	// Cantilever fixes the left end and leaves the right end free.
	Cantilever
	// Continuous adds an interior support at midspan to the pinned ends.
	Continuous
)

// String returns the lowercase name used in model files and CLI flags.
func (s SupportType) String() string {
	switch s {
	case SimplySupported:
		return "simple"
	case Cantilever:
		return "cantilever"
	case Continuous:
		return "continuous"
	}
	return "unknown"
}

// ParseSupportType converts a model-file or flag value to a SupportType.
func ParseSupportType(s string) (SupportType, error) {
	switch s {
	case "simple", "simply-supported":
		return SimplySupported, nil
	case "cantilever":
		return Cantilever, nil
	case "continuous":
		return Continuous, nil
	}
	return 0, fmt.Errorf("invalid support type %q: must be simple, cantilever, or continuous", s)
}

// stationCount fixes the discretization of every member at 100 equal
// segments. Distributions and deflection profiles share this grid.
const stationCount = 101

// Member represents a roof framing member (joist or beam) to be checked
// for ponding. All fields are set before analysis and read-only afterward.
type Member struct {
	Name string

	// Geometry
	Span  float64 // ft
	Slope float64 // in/ft, rise toward the right end

	Support SupportType

	// Section must be fully resolved (via section.Resolve) before a run.
	Section section.Properties
}

// New creates a member with a resolved section.
func New(name string, span, slope float64, support SupportType, props section.Properties) *Member {
	return &Member{
		Name:    name,
		Span:    span,
		Slope:   slope,
		Support: support,
		Section: props,
	}
}

// Stations returns the analysis stations along the span in feet.
func (m *Member) Stations() []float64 {
	stations := make([]float64, stationCount)
	step := m.Span / float64(stationCount-1)
	for i := range stations {
		stations[i] = float64(i) * step
	}
	stations[stationCount-1] = m.Span
	return stations
}

// Elevations returns the roof surface elevation at each station in inches,
// measured from the low end of the member.
func (m *Member) Elevations() []float64 {
	elevations := make([]float64, stationCount)
	step := m.Span / float64(stationCount-1)
	for i := range elevations {
		elevations[i] = float64(i) * step * m.Slope
	}
	return elevations
}

// Validate checks that the member can be analyzed. The section must be
// resolved up front; nothing is looked up lazily during iteration.
func (m *Member) Validate() error {
	if m.Span <= 0 {
		return &ValidationError{msg: fmt.Sprintf("span must be positive, got %.2f ft", m.Span)}
	}
	if m.Slope < 0 {
		return &ValidationError{msg: fmt.Sprintf("slope must not be negative, got %.3f in/ft", m.Slope)}
	}
	if m.Section.MomentOfInertia <= 0 {
		return &ValidationError{msg: fmt.Sprintf("section %q is not resolved: moment of inertia must be positive", m.Section.Designation)}
	}
	if m.Section.Modulus <= 0 {
		return &ValidationError{msg: fmt.Sprintf("section %q is not resolved: elastic modulus must be positive", m.Section.Designation)}
	}
	return nil
}

// ValidationError represents an invalid member definition.
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string {
	return e.msg
}
