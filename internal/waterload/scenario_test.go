package waterload_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mupshaw/gopond/internal/member"
	"github.com/mupshaw/gopond/internal/section"
	"github.com/mupshaw/gopond/internal/waterload"
)

func flatMember(t *testing.T, span, slope float64) *member.Member {
	t.Helper()
	props, err := section.Resolve("W12X14", span)
	require.NoError(t, err)
	return member.New("test", span, slope, member.SimplySupported, props)
}

func TestScenarioDatum(t *testing.T) {
	s := waterload.Scenario{StaticHead: 2, HydraulicHead: 1.5}
	assert.InDelta(t, 3.5, s.Datum(), 1e-12)
}

func TestScenarioValidate(t *testing.T) {
	valid := waterload.Scenario{DeadLoad: 15, StaticHead: 2, HydraulicHead: 1, TributaryWidth: 6}

	tests := []struct {
		name   string
		mutate func(*waterload.Scenario)
		valid  bool
	}{
		{name: "valid", mutate: func(*waterload.Scenario) {}, valid: true},
		{name: "zero heads are legal", mutate: func(s *waterload.Scenario) { s.StaticHead = 0; s.HydraulicHead = 0 }, valid: true},
		{name: "negative dead load", mutate: func(s *waterload.Scenario) { s.DeadLoad = -1 }},
		{name: "negative static head", mutate: func(s *waterload.Scenario) { s.StaticHead = -0.5 }},
		{name: "negative hydraulic head", mutate: func(s *waterload.Scenario) { s.HydraulicHead = -0.5 }},
		{name: "zero tributary width", mutate: func(s *waterload.Scenario) { s.TributaryWidth = 0 }},
		{name: "negative overflow depth", mutate: func(s *waterload.Scenario) { s.OverflowDepth = -2 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := valid
			tt.mutate(&s)
			err := s.Validate()
			if tt.valid {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			var vErr *waterload.ValidationError
			assert.ErrorAs(t, err, &vErr)
		})
	}
}

func TestDepthsNeverNegative(t *testing.T) {
	s := waterload.Scenario{StaticHead: 1, HydraulicHead: 0.5, TributaryWidth: 6}

	// A sloped roof climbs above the water surface partway up the span.
	elevations := []float64{0, 1, 2, 3, 4}
	deflection := make([]float64, 5)

	depths := s.Depths(elevations, deflection)
	assert.InDelta(t, 1.5, depths[0], 1e-12)
	assert.InDelta(t, 0.5, depths[1], 1e-12)
	for _, d := range depths {
		assert.GreaterOrEqual(t, d, 0.0)
	}
	assert.Zero(t, depths[3])
	assert.Zero(t, depths[4])
}

func TestDepthsDeflectionDeepensPond(t *testing.T) {
	s := waterload.Scenario{StaticHead: 2, HydraulicHead: 1, TributaryWidth: 6}

	elevations := []float64{0, 0, 0}
	depths := s.Depths(elevations, []float64{0, 0.75, 0})

	assert.InDelta(t, 3.0, depths[0], 1e-12)
	assert.InDelta(t, 3.75, depths[1], 1e-12)
}

func TestDepthsOverflowCap(t *testing.T) {
	s := waterload.Scenario{StaticHead: 2, HydraulicHead: 1, TributaryWidth: 6, OverflowDepth: 3.25}

	elevations := []float64{0, 0}
	depths := s.Depths(elevations, []float64{0.1, 2.0})

	assert.InDelta(t, 3.1, depths[0], 1e-12)
	// Water beyond the overflow depth spills off the roof.
	assert.InDelta(t, 3.25, depths[1], 1e-12)
}

func TestDistributionUndeflected(t *testing.T) {
	m := flatMember(t, 30, 0)
	s := waterload.Scenario{DeadLoad: 15, StaticHead: 2, HydraulicHead: 1, TributaryWidth: 6}

	depths := s.Depths(m.Elevations(), make([]float64, len(m.Elevations())))
	dist := s.Distribution(m, depths)

	require.Len(t, dist.Intensity, len(m.Stations()))
	expected := 15.0*6 + m.Section.Weight + waterload.WaterWeight*3.0*6
	for _, w := range dist.Intensity {
		assert.InDelta(t, expected, w, 1e-9)
	}
	assert.InDelta(t, expected, dist.MaxIntensity(), 1e-9)
}

func TestDistributionTotalUniform(t *testing.T) {
	m := flatMember(t, 30, 0)
	s := waterload.Scenario{DeadLoad: 20, TributaryWidth: 5}

	dist := s.Distribution(m, make([]float64, len(m.Stations())))

	// Trapezoid integration of a uniform load is exact.
	expected := (20.0*5 + m.Section.Weight) * 30
	assert.InDelta(t, expected, dist.Total(), 1e-6)
}

func TestDistributionSlopedRoofTapers(t *testing.T) {
	m := flatMember(t, 30, 0.25)
	s := waterload.Scenario{DeadLoad: 15, StaticHead: 2, HydraulicHead: 1, TributaryWidth: 6}

	depths := s.Depths(m.Elevations(), make([]float64, len(m.Elevations())))
	dist := s.Distribution(m, depths)

	// Deepest water at the low end, dead load only past the waterline.
	assert.Greater(t, dist.Intensity[0], dist.Intensity[50])
	dry := 15.0*6 + m.Section.Weight
	assert.InDelta(t, dry, dist.Intensity[len(dist.Intensity)-1], 1e-9)
}

func TestGoverningCombination(t *testing.T) {
	dead, rain, ponding := 100.0, 90.0, 40.0

	factored, governing := waterload.Governing(dead, rain, ponding, waterload.LRFDCombinations)
	assert.Equal(t, "L3", governing.ID)
	assert.InDelta(t, 1.2*dead+1.6*rain+1.6*ponding, factored, 1e-9)

	// With no water the 1.4D case controls.
	factored, governing = waterload.Governing(dead, 0, 0, waterload.LRFDCombinations)
	assert.Equal(t, "L1", governing.ID)
	assert.InDelta(t, 140.0, factored, 1e-9)
}

func TestASDCombinationFactors(t *testing.T) {
	c := waterload.ASDCombinations[1]
	assert.InDelta(t, 230.0, c.Factored(100, 90, 40), 1e-9)
}
