package cmd

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	appconfig "github.com/mupshaw/gopond/internal/config"
	"github.com/mupshaw/gopond/internal/diagram"
	"github.com/mupshaw/gopond/internal/member"
	"github.com/mupshaw/gopond/internal/model"
	"github.com/mupshaw/gopond/internal/ponding"
	"github.com/mupshaw/gopond/internal/report"
	"github.com/mupshaw/gopond/internal/section"
	"github.com/mupshaw/gopond/internal/solver"
	"github.com/mupshaw/gopond/internal/waterload"
)

var (
	// Model file input
	analyzeModelPath string

	// Member inputs
	analyzeName    string
	analyzeSpan    float64
	analyzeSlope   float64
	analyzeSupport string
	analyzeSection string

	// Loading inputs
	analyzeDead     float64
	analyzeStatic   float64
	analyzeHyd      float64
	analyzeTrib     float64
	analyzeOverflow float64

	// Iteration settings
	analyzeTolerance float64
	analyzeDivRatio  float64
	analyzeDivCycles int
	analyzeMaxIter   int

	// Output options
	analyzeJSON     bool
	analyzePlot     string
	analyzeHistPlot string
	analyzePDF      string
	analyzeXLSX     string
	analyzeWatch    bool
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Run a ponding stability analysis on a roof member",
	Long: `Iterate the rain-on-roof feedback loop for a member until its
deflection converges, diverges, or the iteration cap is reached.

The first cycle applies dead load plus the static water depth only;
each following cycle re-ponds water into the deflected shape and
re-solves. The verdict is one of:

  converged               deflection stabilized; member is ponding-stable
  diverged                deflection grows without bound; ponding-unstable
  indeterminate-at-limit  cap reached without a verdict; inconclusive

Examples:
  # 30 ft W12X14 roof beam, 2 in static head, 6 ft tributary width
  gopond analyze --span 30 --section W12X14 --dead 15 --static-head 2 --trib-width 6

  # From a model file, re-running whenever it changes
  gopond analyze --model bay12.pond --watch

  # Export the converged profile and a PDF report
  gopond analyze --model bay12.pond --plot profile.png --pdf report.pdf`,
	RunE: runAnalyze,
}

func init() {
	rootCmd.AddCommand(analyzeCmd)

	analyzeCmd.Flags().StringVarP(&analyzeModelPath, "model", "m", "", "Model file (.pond); flags override its values")

	// Member flags
	analyzeCmd.Flags().StringVar(&analyzeName, "name", "Roof Member", "Member name for reports")
	analyzeCmd.Flags().Float64Var(&analyzeSpan, "span", 0, "Member span (ft)")
	analyzeCmd.Flags().Float64Var(&analyzeSlope, "slope", 0, "Roof slope (in/ft)")
	analyzeCmd.Flags().StringVar(&analyzeSupport, "support", "simple", "Support type: simple, cantilever, or continuous")
	analyzeCmd.Flags().StringVar(&analyzeSection, "section", "", "Section designation (W-shape or SJI joist)")

	// Loading flags
	analyzeCmd.Flags().Float64Var(&analyzeDead, "dead", 0, "Dead load (psf)")
	analyzeCmd.Flags().Float64Var(&analyzeStatic, "static-head", 0, "Static water head (in)")
	analyzeCmd.Flags().Float64Var(&analyzeHyd, "hydraulic-head", 0, "Hydraulic head above the drain inlet (in)")
	analyzeCmd.Flags().Float64Var(&analyzeTrib, "trib-width", 0, "Tributary width (ft)")
	analyzeCmd.Flags().Float64Var(&analyzeOverflow, "overflow", 0, "Overflow depth cap from a dam or scupper (in, 0 = none)")

	// Iteration flags
	analyzeCmd.Flags().Float64Var(&analyzeTolerance, "tolerance", ponding.DefaultTolerance, "Convergence tolerance (relative change in max deflection)")
	analyzeCmd.Flags().Float64Var(&analyzeDivRatio, "divergence-ratio", ponding.DefaultDivergenceRatio, "Relative growth counting toward divergence")
	analyzeCmd.Flags().IntVar(&analyzeDivCycles, "divergence-cycles", ponding.DefaultDivergenceCycles, "Consecutive growth cycles required to declare divergence")
	analyzeCmd.Flags().IntVar(&analyzeMaxIter, "max-iterations", ponding.DefaultMaxIterations, "Iteration cap")

	// Output flags
	analyzeCmd.Flags().BoolVar(&analyzeJSON, "json", false, "Print the result record as JSON")
	analyzeCmd.Flags().StringVar(&analyzePlot, "plot", "", "Export the converged depth profile to an image file")
	analyzeCmd.Flags().StringVar(&analyzeHistPlot, "history-plot", "", "Export the iteration history to an image file")
	analyzeCmd.Flags().StringVar(&analyzePDF, "pdf", "", "Export a PDF report")
	analyzeCmd.Flags().StringVar(&analyzeXLSX, "xlsx", "", "Export a spreadsheet with the iteration history")
	analyzeCmd.Flags().BoolVar(&analyzeWatch, "watch", false, "Re-run the analysis whenever the model file changes")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	if analyzeWatch && analyzeModelPath == "" {
		return fmt.Errorf("--watch requires --model")
	}

	if err := analyzeOnce(cmd); err != nil {
		return err
	}
	if !analyzeWatch {
		return nil
	}
	return watchAndRerun(cmd)
}

func analyzeOnce(cmd *cobra.Command) error {
	m, scenario, cfg, err := buildAnalysisInputs(cmd)
	if err != nil {
		return err
	}

	result, err := ponding.Run(context.Background(), m, scenario, solver.New(), cfg)
	if err != nil {
		return err
	}

	rec := report.Build(m, scenario, result)

	if analyzeJSON {
		if err := report.WriteJSON(os.Stdout, rec); err != nil {
			return err
		}
	} else {
		printAnalysisReport(m, scenario, result, rec)
	}

	return exportAnalysisOutputs(m, scenario, result, rec)
}

// buildAnalysisInputs assembles the member, scenario, and iteration config
// from the model file and flags, flags taking precedence.
func buildAnalysisInputs(cmd *cobra.Command) (*member.Member, waterload.Scenario, ponding.Config, error) {
	defaults := appconfig.Load().Iteration()

	var (
		m        *member.Member
		scenario waterload.Scenario
		cfg      = defaults
	)

	if analyzeModelPath != "" {
		file, err := model.Load(analyzeModelPath)
		if err != nil {
			return nil, waterload.Scenario{}, ponding.Config{}, err
		}
		m, scenario, cfg, err = file.Build()
		if err != nil {
			return nil, waterload.Scenario{}, ponding.Config{}, err
		}
	}

	if m == nil {
		if analyzeSection == "" {
			return nil, waterload.Scenario{}, ponding.Config{}, fmt.Errorf("provide --model or at least --span and --section")
		}
		support, err := member.ParseSupportType(analyzeSupport)
		if err != nil {
			return nil, waterload.Scenario{}, ponding.Config{}, err
		}
		props, err := section.Resolve(analyzeSection, analyzeSpan)
		if err != nil {
			return nil, waterload.Scenario{}, ponding.Config{}, err
		}
		m = member.New(analyzeName, analyzeSpan, analyzeSlope, support, props)
		scenario = waterload.Scenario{
			DeadLoad:       analyzeDead,
			StaticHead:     analyzeStatic,
			HydraulicHead:  analyzeHyd,
			TributaryWidth: analyzeTrib,
			OverflowDepth:  analyzeOverflow,
		}
	}

	flags := cmd.Flags()
	if flags.Changed("tolerance") {
		cfg.Tolerance = analyzeTolerance
	}
	if flags.Changed("divergence-ratio") {
		cfg.DivergenceRatio = analyzeDivRatio
	}
	if flags.Changed("divergence-cycles") {
		cfg.DivergenceCycles = analyzeDivCycles
	}
	if flags.Changed("max-iterations") {
		cfg.MaxIterations = analyzeMaxIter
	}

	return m, scenario, cfg, nil
}

func printAnalysisReport(m *member.Member, scenario waterload.Scenario, result *ponding.AnalysisResult, rec report.Record) {
	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("            PONDING STABILITY ANALYSIS - ASCE 7 CH.8")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	fmt.Println("INPUT DATA:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Member:\t%s\n", m.Name)
	fmt.Fprintf(w, "  Section:\t%s (I = %.1f in⁴)\n", m.Section.Designation, m.Section.MomentOfInertia)
	fmt.Fprintf(w, "  Support:\t%s\n", m.Support)
	fmt.Fprintf(w, "  Span:\t%.2f ft\n", m.Span)
	fmt.Fprintf(w, "  Slope:\t%.3f in/ft\n", m.Slope)
	fmt.Fprintf(w, "  Dead Load:\t%.1f psf\n", scenario.DeadLoad)
	fmt.Fprintf(w, "  Static Head:\t%.2f in\n", scenario.StaticHead)
	fmt.Fprintf(w, "  Hydraulic Head:\t%.2f in\n", scenario.HydraulicHead)
	fmt.Fprintf(w, "  Tributary Width:\t%.2f ft\n", scenario.TributaryWidth)
	if scenario.OverflowDepth > 0 {
		fmt.Fprintf(w, "  Overflow Depth:\t%.2f in\n", scenario.OverflowDepth)
	}
	w.Flush()
	fmt.Println()

	fmt.Println("ITERATION HISTORY:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Cycle\tMax Deflection (in)\tChange\n")
	fmt.Fprintf(w, "  ─────\t───────────────────\t──────\n")
	for i, c := range result.History {
		if i == 0 {
			fmt.Fprintf(w, "  %d\t%.4f\t—\n", c.Index+1, c.MaxDeflection)
			continue
		}
		prev := result.History[i-1].MaxDeflection
		if prev > 0 {
			fmt.Fprintf(w, "  %d\t%.4f\t%+.2f%%\n", c.Index+1, c.MaxDeflection, 100*(c.MaxDeflection-prev)/prev)
		} else {
			fmt.Fprintf(w, "  %d\t%.4f\t—\n", c.Index+1, c.MaxDeflection)
		}
	}
	w.Flush()

	maxima := make([]float64, len(result.History))
	for i, c := range result.History {
		maxima[i] = c.MaxDeflection
	}
	fmt.Print(diagram.DrawHistoryChart(maxima))
	fmt.Println()

	fmt.Println("LOAD COMBINATIONS:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Governing:\t%s\n", rec.GoverningCombination)
	fmt.Fprintf(w, "  Factored Load:\t%.1f plf\n", rec.FactoredLoad)
	w.Flush()
	fmt.Println()

	lines := []string{
		fmt.Sprintf("Verdict: %s", result.Verdict),
		fmt.Sprintf("Final max deflection: %.3f in", result.FinalMaxDeflection),
		fmt.Sprintf("Iterations run: %d", result.IterationsRun),
	}
	if result.Verdict != ponding.Diverged {
		lines = append(lines, fmt.Sprintf("Amplification factor: %.3f", result.AmplificationFactor))
	} else {
		lines = append(lines, "Member is PONDING-UNSTABLE under this scenario")
	}
	fmt.Println(diagram.DrawSummaryBox("STABILITY VERDICT", lines))
}

func exportAnalysisOutputs(m *member.Member, scenario waterload.Scenario, result *ponding.AnalysisResult, rec report.Record) error {
	if analyzePlot != "" || analyzeHistPlot != "" {
		profile := convergedProfile(m, scenario, result)
		if analyzePlot != "" {
			if err := diagram.ExportProfile(profile, analyzePlot); err != nil {
				return fmt.Errorf("exporting profile plot: %w", err)
			}
			fmt.Printf("Profile plot written to %s\n", analyzePlot)
		}
		if analyzeHistPlot != "" {
			maxima := make([]float64, len(result.History))
			for i, c := range result.History {
				maxima[i] = c.MaxDeflection
			}
			if err := diagram.ExportHistory(maxima, analyzeHistPlot); err != nil {
				return fmt.Errorf("exporting history plot: %w", err)
			}
			fmt.Printf("History plot written to %s\n", analyzeHistPlot)
		}
	}
	if analyzePDF != "" {
		if err := report.ExportPDF(rec, analyzePDF); err != nil {
			return fmt.Errorf("exporting PDF report: %w", err)
		}
		fmt.Printf("PDF report written to %s\n", analyzePDF)
	}
	if analyzeXLSX != "" {
		if err := report.ExportXLSX(rec, analyzeXLSX); err != nil {
			return fmt.Errorf("exporting spreadsheet: %w", err)
		}
		fmt.Printf("Spreadsheet written to %s\n", analyzeXLSX)
	}
	return nil
}

// convergedProfile re-solves the final load state to recover the full
// deflected shape for plotting; the iterator only retains maxima.
func convergedProfile(m *member.Member, scenario waterload.Scenario, result *ponding.AnalysisResult) diagram.ProfileData {
	elevations := m.Elevations()
	deflection := make([]float64, len(elevations))

	s := solver.New()
	for i := 0; i < result.IterationsRun; i++ {
		depths := scenario.Depths(elevations, deflection)
		load := scenario.Distribution(m, depths)
		next, err := s.Deflect(context.Background(), m, load)
		if err != nil {
			break
		}
		deflection = next
	}

	return diagram.ProfileData{
		Stations:   m.Stations(),
		Elevations: elevations,
		Deflection: deflection,
		Datum:      scenario.Datum(),
	}
}

func watchAndRerun(cmd *cobra.Command) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	if err := watcher.Add(analyzeModelPath); err != nil {
		return err
	}

	fmt.Printf("Watching %s for changes (Ctrl-C to stop)...\n", analyzeModelPath)
	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			fmt.Printf("\nModel changed, re-running analysis...\n")
			if err := analyzeOnce(cmd); err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			fmt.Fprintf(os.Stderr, "Watch error: %v\n", err)
		}
	}
}
