package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/mupshaw/gopond/internal/section"
	"github.com/spf13/cobra"
)

var sectionCmd = &cobra.Command{
	Use:   "section",
	Short: "Section catalog lookups for W-shapes and SJI joists",
	Long: `Look up the section properties used by the ponding analysis.

Subcommands:
  list  - List every catalog designation
  show  - Resolve one designation to its properties

Joist moments of inertia are span-dependent (SJI approximation), so
'show' takes a span for joist designations.`,
}

var sectionListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all catalog designations",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println()
		fmt.Println("AVAILABLE SECTIONS:")
		fmt.Println("───────────────────────────────────────")
		for _, des := range section.Designations() {
			fmt.Printf("  %s\n", des)
		}
		fmt.Println()
	},
}

var sectionShowSpan float64

var sectionShowCmd = &cobra.Command{
	Use:   "show <designation>",
	Short: "Resolve a designation to its section properties",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		props, err := section.Resolve(args[0], sectionShowSpan)
		if err != nil {
			return err
		}

		fmt.Println()
		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintf(w, "  Designation:\t%s\n", props.Designation)
		fmt.Fprintf(w, "  Moment of Inertia:\t%.1f in⁴\n", props.MomentOfInertia)
		fmt.Fprintf(w, "  Area:\t%.2f in²\n", props.Area)
		fmt.Fprintf(w, "  Self Weight:\t%.1f plf\n", props.Weight)
		fmt.Fprintf(w, "  Elastic Modulus:\t%.0f ksi\n", props.Modulus)
		w.Flush()
		fmt.Println()
		return nil
	},
}

func init() {
	rootCmd.AddCommand(sectionCmd)
	sectionCmd.AddCommand(sectionListCmd)
	sectionCmd.AddCommand(sectionShowCmd)

	sectionShowCmd.Flags().Float64Var(&sectionShowSpan, "span", 20, "Span for joist inertia (ft)")
}
