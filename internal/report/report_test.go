package report_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mupshaw/gopond/internal/member"
	"github.com/mupshaw/gopond/internal/ponding"
	"github.com/mupshaw/gopond/internal/report"
	"github.com/mupshaw/gopond/internal/section"
	"github.com/mupshaw/gopond/internal/waterload"
)

func fixture(t *testing.T) (*member.Member, waterload.Scenario) {
	t.Helper()
	props, err := section.Resolve("W12X14", 30)
	require.NoError(t, err)
	m := member.New("B1", 30, 0.25, member.SimplySupported, props)
	return m, waterload.Scenario{DeadLoad: 15, StaticHead: 2, HydraulicHead: 1, TributaryWidth: 6}
}

func convergedResult() *ponding.AnalysisResult {
	return &ponding.AnalysisResult{
		Verdict:             ponding.Converged,
		AmplificationFactor: 1.35,
		FinalMaxDeflection:  0.81,
		IterationsRun:       5,
		History: []ponding.Cycle{
			{Index: 0, MaxDeflection: 0.60},
			{Index: 1, MaxDeflection: 0.75},
			{Index: 2, MaxDeflection: 0.79},
			{Index: 3, MaxDeflection: 0.805},
			{Index: 4, MaxDeflection: 0.81},
		},
	}
}

func TestBuildEchoesInputs(t *testing.T) {
	m, scenario := fixture(t)
	rec := report.Build(m, scenario, convergedResult())

	assert.Equal(t, "B1", rec.Member)
	assert.Equal(t, "W12X14", rec.Section)
	assert.Equal(t, "simple", rec.Support)
	assert.InDelta(t, 30.0, rec.Span, 1e-12)
	assert.InDelta(t, 15.0, rec.DeadLoad, 1e-12)
	assert.Equal(t, "converged", rec.Verdict)
	assert.Equal(t, 5, rec.IterationsRun)
}

func TestBuildHistoryIsOneBased(t *testing.T) {
	m, scenario := fixture(t)
	rec := report.Build(m, scenario, convergedResult())

	require.Len(t, rec.History, 5)
	assert.Equal(t, 1, rec.History[0].Cycle)
	assert.Equal(t, 5, rec.History[4].Cycle)
	assert.InDelta(t, 0.81, rec.History[4].MaxDeflection, 1e-12)
}

func TestBuildGoverningCombination(t *testing.T) {
	m, scenario := fixture(t)
	rec := report.Build(m, scenario, convergedResult())

	dead := scenario.DeadLoad*scenario.TributaryWidth + m.Section.Weight
	rain := waterload.WaterWeight * scenario.Datum() * scenario.TributaryWidth
	pond := rain * 0.35

	assert.Equal(t, "1.2D+1.6R+1.6P", rec.GoverningCombination)
	assert.InDelta(t, 1.2*dead+1.6*rain+1.6*pond, rec.FactoredLoad, 1e-9)
}

func TestBuildDivergedHasNoPondingIncrement(t *testing.T) {
	m, scenario := fixture(t)
	result := &ponding.AnalysisResult{
		Verdict:            ponding.Diverged,
		FinalMaxDeflection: 6.0,
		IterationsRun:      3,
		History: []ponding.Cycle{
			{Index: 0, MaxDeflection: 1.0},
			{Index: 1, MaxDeflection: 2.5},
			{Index: 2, MaxDeflection: 6.0},
		},
	}

	rec := report.Build(m, scenario, result)
	assert.Equal(t, "diverged", rec.Verdict)
	assert.Zero(t, rec.AmplificationFactor)

	dead := scenario.DeadLoad*scenario.TributaryWidth + m.Section.Weight
	rain := waterload.WaterWeight * scenario.Datum() * scenario.TributaryWidth
	assert.InDelta(t, 1.2*dead+1.6*rain, rec.FactoredLoad, 1e-9)
}

func TestWriteJSON(t *testing.T) {
	m, scenario := fixture(t)
	rec := report.Build(m, scenario, convergedResult())

	var buf bytes.Buffer
	require.NoError(t, report.WriteJSON(&buf, rec))

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "converged", decoded["verdict"])
	assert.EqualValues(t, 5, decoded["iterations_run"])
	assert.Contains(t, decoded, "history")
}

func TestWriteJSONOmitsAmplificationOnDiverged(t *testing.T) {
	m, scenario := fixture(t)
	result := &ponding.AnalysisResult{
		Verdict:            ponding.Diverged,
		FinalMaxDeflection: 6.0,
		IterationsRun:      3,
		History:            []ponding.Cycle{{Index: 0, MaxDeflection: 1.0}},
	}

	var buf bytes.Buffer
	require.NoError(t, report.WriteJSON(&buf, report.Build(m, scenario, result)))
	assert.NotContains(t, buf.String(), "amplification_factor")
}
