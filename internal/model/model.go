// Package model persists analysis models as .pond files, TOML documents
// describing a member, its loading, and the iteration settings.
package model

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/mupshaw/gopond/internal/member"
	"github.com/mupshaw/gopond/internal/ponding"
	"github.com/mupshaw/gopond/internal/section"
	"github.com/mupshaw/gopond/internal/waterload"
)

// File is the on-disk model document.
type File struct {
	Member   MemberDef   `toml:"member"`
	Loading  LoadingDef  `toml:"loading"`
	Analysis AnalysisDef `toml:"analysis"`
}

// MemberDef describes the framing member.
type MemberDef struct {
	Name    string  `toml:"name"`
	Span    float64 `toml:"span_ft"`
	Slope   float64 `toml:"slope_in_per_ft"`
	Support string  `toml:"support"`
	Section string  `toml:"section"`
}

// LoadingDef describes the load scenario.
type LoadingDef struct {
	DeadLoad       float64 `toml:"dead_load_psf"`
	StaticHead     float64 `toml:"static_head_in"`
	HydraulicHead  float64 `toml:"hydraulic_head_in"`
	TributaryWidth float64 `toml:"tributary_width_ft"`
	OverflowDepth  float64 `toml:"overflow_depth_in"`
}

// AnalysisDef describes the iteration settings.
type AnalysisDef struct {
	Tolerance        float64 `toml:"tolerance"`
	DivergenceRatio  float64 `toml:"divergence_ratio"`
	DivergenceCycles int     `toml:"divergence_cycles"`
	MaxIterations    int     `toml:"max_iterations"`
}

// Template returns a model file populated with workable defaults, used by
// `gopond model init`.
func Template() File {
	cfg := ponding.DefaultConfig()
	return File{
		Member: MemberDef{
			Name:    "Roof Beam",
			Span:    30,
			Slope:   0.25,
			Support: "simple",
			Section: "W12X14",
		},
		Loading: LoadingDef{
			DeadLoad:       15,
			StaticHead:     2,
			HydraulicHead:  1,
			TributaryWidth: 6,
		},
		Analysis: AnalysisDef{
			Tolerance:        cfg.Tolerance,
			DivergenceRatio:  cfg.DivergenceRatio,
			DivergenceCycles: cfg.DivergenceCycles,
			MaxIterations:    cfg.MaxIterations,
		},
	}
}

// Save writes the model to path.
func Save(path string, f File) error {
	data, err := toml.Marshal(f)
	if err != nil {
		return fmt.Errorf("encoding model: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing model %s: %w", path, err)
	}
	return nil
}

// Load reads a model from path.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading model %s: %w", path, err)
	}
	var f File
	if err := toml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing model %s: %w", path, err)
	}
	return &f, nil
}

// Build resolves the model into analysis inputs. The section lookup runs
// here, before any iteration begins.
func (f *File) Build() (*member.Member, waterload.Scenario, ponding.Config, error) {
	support, err := member.ParseSupportType(f.Member.Support)
	if err != nil {
		return nil, waterload.Scenario{}, ponding.Config{}, err
	}

	props, err := section.Resolve(f.Member.Section, f.Member.Span)
	if err != nil {
		return nil, waterload.Scenario{}, ponding.Config{}, err
	}

	m := member.New(f.Member.Name, f.Member.Span, f.Member.Slope, support, props)

	scenario := waterload.Scenario{
		DeadLoad:       f.Loading.DeadLoad,
		StaticHead:     f.Loading.StaticHead,
		HydraulicHead:  f.Loading.HydraulicHead,
		TributaryWidth: f.Loading.TributaryWidth,
		OverflowDepth:  f.Loading.OverflowDepth,
	}

	cfg := ponding.DefaultConfig()
	if f.Analysis.Tolerance > 0 {
		cfg.Tolerance = f.Analysis.Tolerance
	}
	if f.Analysis.DivergenceRatio > 0 {
		cfg.DivergenceRatio = f.Analysis.DivergenceRatio
	}
	if f.Analysis.DivergenceCycles > 0 {
		cfg.DivergenceCycles = f.Analysis.DivergenceCycles
	}
	if f.Analysis.MaxIterations > 0 {
		cfg.MaxIterations = f.Analysis.MaxIterations
	}

	return m, scenario, cfg, nil
}
