package cmd

import (
	"fmt"
	"os"

	"github.com/mupshaw/gopond/internal/version"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var rootCmd = &cobra.Command{
	Use:   "gopond",
	Short: "Roof Ponding Stability Analysis Tool",
	Long: `gopond - Roof Ponding Stability Analyzer

A CLI tool for checking roof framing members against ponding
instability: the feedback loop where rainwater accumulating in a
deflected bay adds load, which adds deflection, which ponds more water.

This tool helps structural engineers perform:
  - Iterative ponding stability analysis (converged / diverged verdicts)
  - Deflection amplification checks against a dead-load reference
  - Scupper hydraulic head and flow rate calculations
  - Section lookups for W-shapes and SJI joists

Water loads follow ASCE 7 Chapter 8 rain provisions.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println()
		fmt.Println("  ╔═══════════════════════════════════════════════════════════╗")
		fmt.Println("  ║                                                           ║")
		fmt.Printf("  ║   gopond v%-48s║\n", version.Version)
		fmt.Println("  ║   Roof Ponding Stability Analyzer                         ║")
		fmt.Println("  ║                                                           ║")
		fmt.Println("  ╚═══════════════════════════════════════════════════════════╝")
		fmt.Println()
		fmt.Println("  A CLI tool for checking roof framing members against")
		fmt.Println("  ponding instability per ASCE 7 Chapter 8.")
		fmt.Println()
		fmt.Println("  Features:")
		fmt.Println("    • Iterative rain-on-roof ponding analysis")
		fmt.Println("    • W-shape and SJI joist section lookups")
		fmt.Println("    • Scupper hydraulic head calculations")
		fmt.Println("    • Depth profile and convergence plots")
		fmt.Println()
		fmt.Println("  Use 'gopond --help' to see available commands.")
		fmt.Println()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default .gopond.toml)")
	rootCmd.CompletionOptions.DisableDefaultCmd = true
}

func initConfig() {
	if cfgFile, _ := rootCmd.Flags().GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName(".gopond")
		viper.SetConfigType("toml")
		viper.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			viper.AddConfigPath(home)
		}
	}

	viper.SetEnvPrefix("GOPOND")
	viper.AutomaticEnv()

	// It's fine if no config file is found; we use defaults.
	_ = viper.ReadInConfig()
}
