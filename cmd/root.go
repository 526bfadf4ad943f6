package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mecheng-tools/goshaft/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "goshaft",
	Short: "Stepped Shaft Design & Fatigue Sizing Tool",
	Long: `goshaft - Go Shaft Designer

A CLI tool for the structural analysis and fatigue-based sizing of
stepped circular transmission shafts.

This tool helps mechanical engineers perform:
  - Two-plane statics of simply supported shafts (singularity functions)
  - Shear, bending moment and torque diagrams (alternating/mean split)
  - Marin-corrected endurance limit estimation
  - ASME-elliptic minimum diameter checks
  - Iterative auto-dimensioning against standard catalog diameters

Calculations follow the Shigley rotating-shaft design methodology.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println()
		fmt.Println("  ╔═══════════════════════════════════════════════════════════╗")
		fmt.Println("  ║                                                           ║")
		fmt.Printf("  ║   goshaft v%-47s║\n", version.Version)
		fmt.Println("  ║   Stepped Shaft Design & Fatigue Sizing Tool              ║")
		fmt.Println("  ║                                                           ║")
		fmt.Println("  ╚═══════════════════════════════════════════════════════════╝")
		fmt.Println()
		fmt.Println("  Commands:")
		fmt.Println("    • analyze    - reactions, V/M/T diagrams, required diameters")
		fmt.Println("    • optimize   - auto-dimension shaft zones to a safety factor")
		fmt.Println("    • diameter   - ASME-elliptic minimum diameter from local loads")
		fmt.Println("    • endurance  - Marin endurance limit factor breakdown")
		fmt.Println("    • materials  - built-in material and diameter catalogs")
		fmt.Println("    • export     - STL solid model of the shaft")
		fmt.Println()
		fmt.Println("  Use 'goshaft --help' to see available commands.")
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
	rootCmd.CompletionOptions.DisableDefaultCmd = true
}
