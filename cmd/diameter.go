package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/mecheng-tools/goshaft/internal/catalog"
	"github.com/mecheng-tools/goshaft/internal/fatigue"
)

var (
	diaMa float64
	diaMm float64
	diaTa float64
	diaTm float64

	diaKf  float64
	diaKfs float64
	diaN   float64

	diaMaterial string
	diaSut      float64
	diaSy       float64
	diaGuess    float64

	diaSurface     string
	diaReliability string
	diaTemp        float64
)

var diameterCmd = &cobra.Command{
	Use:   "diameter",
	Short: "Minimum shaft diameter from local loads (ASME-elliptic)",
	Long: `Calculate the minimum solid-shaft diameter satisfying the generalized
ASME-elliptic fatigue criterion for a given local load state.

Moments and torques are magnitudes in N·m. With --mm and --ta left at
zero this is the classical fully reversed bending / steady torque case.

Examples:
  # Classical case: alternating moment + mean torque, AISI 1045, n = 2
  goshaft diameter --ma 125 --tm 50 --material "AISI 1045"

  # Full load state with stress concentration
  goshaft diameter --ma 125 --mm 10 --ta 20 --tm 50 --kf 1.6 --kfs 1.4 -n 2.5`,
	RunE: runDiameter,
}

func init() {
	rootCmd.AddCommand(diameterCmd)

	diameterCmd.Flags().Float64Var(&diaMa, "ma", 0, "Alternating bending moment (N·m)")
	diameterCmd.Flags().Float64Var(&diaMm, "mm", 0, "Mean bending moment (N·m)")
	diameterCmd.Flags().Float64Var(&diaTa, "ta", 0, "Alternating torque (N·m)")
	diameterCmd.Flags().Float64Var(&diaTm, "tm", 0, "Mean torque (N·m)")

	diameterCmd.Flags().Float64Var(&diaKf, "kf", 1.0, "Bending fatigue concentration factor Kf")
	diameterCmd.Flags().Float64Var(&diaKfs, "kfs", 1.0, "Torsion fatigue concentration factor Kfs")
	diameterCmd.Flags().Float64VarP(&diaN, "safety", "n", 2.0, "Target safety factor")

	diameterCmd.Flags().StringVar(&diaMaterial, "material", catalog.DefaultMaterial, "Material name from the built-in database")
	diameterCmd.Flags().Float64Var(&diaSut, "sut", 0, "Ultimate tensile strength (Pa), overrides --material")
	diameterCmd.Flags().Float64Var(&diaSy, "sy", 0, "Yield strength (Pa), overrides --material")
	diameterCmd.Flags().Float64Var(&diaGuess, "guess", fatigue.DefaultDiameterGuess, "Assumed diameter for the size factor (mm)")

	diameterCmd.Flags().StringVar(&diaSurface, "surface", string(fatigue.Machined), "Surface finish")
	diameterCmd.Flags().StringVar(&diaReliability, "reliability", "99%", "Reliability")
	diameterCmd.Flags().Float64Var(&diaTemp, "temp", 20, "Operating temperature (°C)")
}

func runDiameter(cmd *cobra.Command, args []string) error {
	sut, sy := diaSut, diaSy
	matName := "custom"
	if sut == 0 || sy == 0 {
		mat, ok := catalog.GetMaterial(diaMaterial)
		if !ok {
			return fmt.Errorf("unknown material %q (try 'goshaft materials')", diaMaterial)
		}
		matName = mat.Name
		if sut == 0 {
			sut = mat.Sut
		}
		if sy == 0 {
			sy = mat.Sy
		}
	}

	cfg := fatigue.Config{
		Surface:     fatigue.SurfaceFinish(diaSurface),
		Reliability: diaReliability,
		Temperature: diaTemp,
		Kf:          1.0,
	}
	se := fatigue.EnduranceLimit(sut, diaGuess, fatigue.Bending, cfg)

	in := fatigue.DiameterInput{
		Ma: diaMa, Mm: diaMm, Ta: diaTa, Tm: diaTm,
		Kf: diaKf, Kfs: diaKfs,
		N:  diaN,
		Se: se,
		Sy: sy,
	}
	required := fatigue.MinDiameter(in)
	standard := catalog.RoundUp(required)
	achieved := fatigue.SafetyFactor(in, standard)

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("     MINIMUM DIAMETER - ASME ELLIPTIC CRITERION")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	fmt.Println("INPUT DATA:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Material:\t%s (Sut %.0f MPa, Sy %.0f MPa)\n", matName, sut/1e6, sy/1e6)
	fmt.Fprintf(w, "  Ma / Mm:\t%.2f / %.2f N·m\n", diaMa, diaMm)
	fmt.Fprintf(w, "  Ta / Tm:\t%.2f / %.2f N·m\n", diaTa, diaTm)
	fmt.Fprintf(w, "  Kf / Kfs:\t%.2f / %.2f\n", diaKf, diaKfs)
	fmt.Fprintf(w, "  Endurance limit Se:\t%.1f MPa (kb guess d = %.0f mm)\n", se/1e6, diaGuess)
	fmt.Fprintf(w, "  Target safety factor:\t%.2f\n", diaN)
	w.Flush()
	fmt.Println()

	fmt.Printf("  ╔═════════════════════════════════════════╗\n")
	fmt.Printf("  ║  REQUIRED DIAMETER d = %.2f mm\n", required)
	fmt.Printf("  ║  NEXT STANDARD     d = %.0f mm  (n = %.2f)\n", standard, achieved)
	fmt.Printf("  ╚═════════════════════════════════════════╝\n")
	fmt.Println()
	return nil
}
