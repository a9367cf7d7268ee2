package cmd

import (
	"fmt"

	"github.com/mupshaw/gopond/internal/rain"
	"github.com/spf13/cobra"
)

var rainCmd = &cobra.Command{
	Use:   "rain",
	Short: "Scupper flow rate and hydraulic head calculations",
	Long: `Calculate the flow rate to a roof drainage device and the
hydraulic head it develops, per ASCE 7 Chapter 8 commentary.

Subcommands:
  flow  - Flow rate from drained area and rainfall intensity
  head  - Hydraulic head for an open, closed, or circular scupper

The hydraulic head feeds the analyze command's --hydraulic-head input.`,
}

var (
	rainFlowArea      float64
	rainFlowIntensity float64
)

var rainFlowCmd = &cobra.Command{
	Use:   "flow",
	Short: "Flow rate to a drainage device (ASCE Eq. C8.3-1)",
	RunE: func(cmd *cobra.Command, args []string) error {
		if rainFlowArea <= 0 || rainFlowIntensity <= 0 {
			return fmt.Errorf("provide positive --area and --intensity")
		}
		q := rain.FlowRate(rainFlowArea, rainFlowIntensity)
		fmt.Printf("\n  Q = 0.0104 · A · i = %.1f gal/min\n\n", q)
		return nil
	},
}

var (
	rainHeadType     string
	rainHeadFlow     float64
	rainHeadWidth    float64
	rainHeadHeight   float64
	rainHeadDiameter float64
)

var rainHeadCmd = &cobra.Command{
	Use:   "head",
	Short: "Hydraulic head for a scupper at a given flow",
	Long: `Interpolate the hydraulic head for a scupper from the ASCE 7
commentary tables.

Examples:
  gopond rain head --type open --flow 150 --width 12
  gopond rain head --type closed --flow 150 --width 12 --height 4
  gopond rain head --type circular --flow 150 --diameter 8`,
	RunE: func(cmd *cobra.Command, args []string) error {
		var (
			dh  float64
			err error
		)
		switch rainHeadType {
		case "open":
			dh, err = rain.OpenScupperHead(rainHeadFlow, rainHeadWidth)
		case "closed":
			dh, err = rain.ClosedScupperHead(rainHeadFlow, rainHeadWidth, rainHeadHeight)
		case "circular":
			dh, err = rain.CircularScupperHead(rainHeadFlow, rainHeadDiameter)
		default:
			return fmt.Errorf("invalid scupper type %q: must be open, closed, or circular", rainHeadType)
		}
		if err != nil {
			return err
		}
		fmt.Printf("\n  Hydraulic head dh = %.2f in\n\n", dh)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(rainCmd)
	rainCmd.AddCommand(rainFlowCmd)
	rainCmd.AddCommand(rainHeadCmd)

	rainFlowCmd.Flags().Float64VarP(&rainFlowArea, "area", "a", 0, "Drained roof area (ft²)")
	rainFlowCmd.Flags().Float64VarP(&rainFlowIntensity, "intensity", "i", 0, "Rainfall intensity (in/hr)")

	rainHeadCmd.Flags().StringVarP(&rainHeadType, "type", "t", "open", "Scupper type: open, closed, or circular")
	rainHeadCmd.Flags().Float64VarP(&rainHeadFlow, "flow", "q", 0, "Flow rate (gal/min)")
	rainHeadCmd.Flags().Float64VarP(&rainHeadWidth, "width", "w", 0, "Scupper opening width (in)")
	rainHeadCmd.Flags().Float64Var(&rainHeadHeight, "height", 4, "Closed scupper opening height (in)")
	rainHeadCmd.Flags().Float64VarP(&rainHeadDiameter, "diameter", "d", 0, "Circular scupper diameter (in)")
}
