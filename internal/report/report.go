// Package report packages analysis results into flat records for
// presentation: console, JSON, PDF, and spreadsheet.
package report

import (
	"encoding/json"
	"io"

	"github.com/mupshaw/gopond/internal/member"
	"github.com/mupshaw/gopond/internal/ponding"
	"github.com/mupshaw/gopond/internal/waterload"
)

// CycleRecord mirrors one history entry.
type CycleRecord struct {
	Cycle         int     `json:"cycle"`
	MaxDeflection float64 `json:"max_deflection_in"`
}

// Record is the serializable outcome of a ponding run, with the inputs
// echoed so a record stands on its own.
type Record struct {
	Member  string `json:"member"`
	Section string `json:"section"`
	Support string `json:"support"`

	Span           float64 `json:"span_ft"`
	Slope          float64 `json:"slope_in_per_ft"`
	DeadLoad       float64 `json:"dead_load_psf"`
	StaticHead     float64 `json:"static_head_in"`
	HydraulicHead  float64 `json:"hydraulic_head_in"`
	TributaryWidth float64 `json:"tributary_width_ft"`
	OverflowDepth  float64 `json:"overflow_depth_in,omitempty"`

	Verdict             string        `json:"verdict"`
	AmplificationFactor float64       `json:"amplification_factor,omitempty"`
	FinalMaxDeflection  float64       `json:"final_max_deflection_in"`
	IterationsRun       int           `json:"iterations_run"`
	History             []CycleRecord `json:"history"`

	GoverningCombination string  `json:"governing_combination"`
	FactoredLoad         float64 `json:"factored_load_plf"`
}

// Build assembles a record from a finished run.
func Build(m *member.Member, scenario waterload.Scenario, result *ponding.AnalysisResult) Record {
	rec := Record{
		Member:  m.Name,
		Section: m.Section.Designation,
		Support: m.Support.String(),

		Span:           m.Span,
		Slope:          m.Slope,
		DeadLoad:       scenario.DeadLoad,
		StaticHead:     scenario.StaticHead,
		HydraulicHead:  scenario.HydraulicHead,
		TributaryWidth: scenario.TributaryWidth,
		OverflowDepth:  scenario.OverflowDepth,

		Verdict:             result.Verdict.String(),
		AmplificationFactor: result.AmplificationFactor,
		FinalMaxDeflection:  result.FinalMaxDeflection,
		IterationsRun:       result.IterationsRun,
	}

	for _, c := range result.History {
		rec.History = append(rec.History, CycleRecord{Cycle: c.Index + 1, MaxDeflection: c.MaxDeflection})
	}

	dead := scenario.DeadLoad*scenario.TributaryWidth + m.Section.Weight
	rain := waterload.WaterWeight * scenario.Datum() * scenario.TributaryWidth
	var pond float64
	if result.Verdict != ponding.Diverged && result.IterationsRun > 0 {
		// Ponding increment approximated from the deflection amplification
		// of the water load.
		pond = rain * (result.AmplificationFactor - 1)
		if pond < 0 {
			pond = 0
		}
	}
	factored, governing := waterload.Governing(dead, rain, pond, waterload.LRFDCombinations)
	rec.GoverningCombination = governing.Description
	rec.FactoredLoad = factored

	return rec
}

// WriteJSON writes the record as indented JSON.
func WriteJSON(w io.Writer, rec Record) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(rec)
}
