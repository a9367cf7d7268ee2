package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/mupshaw/gopond/internal/model"
	"github.com/spf13/cobra"
)

var modelCmd = &cobra.Command{
	Use:   "model",
	Short: "Create and inspect .pond model files",
	Long: `Manage analysis model files. A .pond file is a TOML document
holding a member definition, its loading, and the iteration settings
consumed by 'gopond analyze --model'.`,
}

var modelInitForce bool

var modelInitCmd = &cobra.Command{
	Use:   "init <file>",
	Short: "Write a template model file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]
		if _, err := os.Stat(path); err == nil && !modelInitForce {
			return fmt.Errorf("%s already exists (use --force to overwrite)", path)
		}
		if err := model.Save(path, model.Template()); err != nil {
			return err
		}
		fmt.Printf("Model template written to %s\n", path)
		return nil
	},
}

var modelShowCmd = &cobra.Command{
	Use:   "show <file>",
	Short: "Print a model file's resolved inputs",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		file, err := model.Load(args[0])
		if err != nil {
			return err
		}
		m, scenario, cfg, err := file.Build()
		if err != nil {
			return err
		}

		fmt.Println()
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
		fmt.Fprintf(w, "  Overflow Depth:\t%.2f in\n", scenario.OverflowDepth)
		fmt.Fprintf(w, "  Tolerance:\t%g\n", cfg.Tolerance)
		fmt.Fprintf(w, "  Divergence Ratio:\t%g\n", cfg.DivergenceRatio)
		fmt.Fprintf(w, "  Divergence Cycles:\t%d\n", cfg.DivergenceCycles)
		fmt.Fprintf(w, "  Max Iterations:\t%d\n", cfg.MaxIterations)
		w.Flush()
		fmt.Println()
		return nil
	},
}

func init() {
	rootCmd.AddCommand(modelCmd)
	modelCmd.AddCommand(modelInitCmd)
	modelCmd.AddCommand(modelShowCmd)

	modelInitCmd.Flags().BoolVarP(&modelInitForce, "force", "f", false, "Overwrite an existing file")
}
