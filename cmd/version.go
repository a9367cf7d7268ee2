package cmd

import (
	"fmt"

	"github.com/mupshaw/gopond/internal/version"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of gopond",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("gopond v%s\n", version.Version)
		fmt.Println("Roof Ponding Stability Analysis Tool")
		fmt.Println("Rain loads per ASCE 7 Chapter 8")
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
