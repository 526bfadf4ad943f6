package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mecheng-tools/goshaft/internal/fatigue"
	"github.com/mecheng-tools/goshaft/internal/optimize"
	"github.com/mecheng-tools/goshaft/internal/statics"
)

var (
	optimizeDesignFile string
	optimizeOutFile    string
	optimizeSafety     float64
	optimizeIterations int

	optimizeSurface     string
	optimizeReliability string
	optimizeTemp        float64
)

var optimizeCmd = &cobra.Command{
	Use:   "optimize",
	Short: "Auto-dimension the shaft to meet a target safety factor",
	Long: `Iteratively resize the shaft's diameter zones (the start span and each
shoulder-governed span) until every zone meets the target fatigue safety
factor, rounding up to standard catalog diameters.

The loop stops when an iteration changes nothing, or after --iterations
passes; stopping at the cap is not an error. Only diameters change:
positions, loads and total length stay fixed.

Examples:
  # Size the shaft for n = 2 and write the updated design
  goshaft optimize --design shaft.json --out shaft_sized.json

  # Stricter target, more iterations
  goshaft optimize --design shaft.json -n 2.5 --iterations 8 --out shaft.json`,
	RunE: runOptimize,
}

func init() {
	rootCmd.AddCommand(optimizeCmd)

	optimizeCmd.Flags().StringVarP(&optimizeDesignFile, "design", "d", "", "Shaft design file (JSON) [required]")
	optimizeCmd.Flags().StringVarP(&optimizeOutFile, "out", "o", "", "Write the updated design to this file")
	optimizeCmd.Flags().Float64VarP(&optimizeSafety, "safety", "n", 2.0, "Target fatigue safety factor")
	optimizeCmd.Flags().IntVarP(&optimizeIterations, "iterations", "i", 5, "Maximum sizing iterations")

	optimizeCmd.Flags().StringVar(&optimizeSurface, "surface", string(fatigue.Machined), "Surface finish (ground|machined|cold-rolled|hot-rolled|forged)")
	optimizeCmd.Flags().StringVar(&optimizeReliability, "reliability", "99%", "Reliability (50%..99.9999%)")
	optimizeCmd.Flags().Float64Var(&optimizeTemp, "temp", 20, "Operating temperature (°C)")

	optimizeCmd.MarkFlagRequired("design")
}

func runOptimize(cmd *cobra.Command, args []string) error {
	design, err := loadDesign(optimizeDesignFile)
	if err != nil {
		return err
	}

	opts := optimize.Options{
		SafetyFactor:  optimizeSafety,
		MaxIterations: optimizeIterations,
		NumPoints:     statics.DefaultNumPoints,
		Fatigue: fatigue.Config{
			Surface:     fatigue.SurfaceFinish(optimizeSurface),
			Reliability: optimizeReliability,
			Temperature: optimizeTemp,
			Kf:          1.0,
		},
	}

	result := optimize.Run(design, opts)

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("     SHAFT AUTO-DIMENSIONING")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	if !result.Success {
		fmt.Printf("  ✗ Optimization failed: %s\n", result.Message)
		fmt.Println()
		return fmt.Errorf("optimization failed")
	}

	if len(result.Log) == 0 {
		fmt.Println("  ✓ Shaft already meets the target safety factor; no changes.")
	} else {
		fmt.Printf("  ✓ Converged in %d iteration(s). Changes:\n", result.Iterations)
		for _, entry := range result.Log {
			fmt.Printf("    • %s\n", entry)
		}
	}
	fmt.Println()

	if optimizeOutFile != "" {
		if err := saveDesign(optimizeOutFile, design); err != nil {
			return fmt.Errorf("write updated design: %w", err)
		}
		fmt.Printf("  Wrote %s\n", optimizeOutFile)
		fmt.Println()
	}
	return nil
}
