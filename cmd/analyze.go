package cmd

import (
	"fmt"
	"math"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/mecheng-tools/goshaft/internal/diagram"
	"github.com/mecheng-tools/goshaft/internal/fatigue"
	"github.com/mecheng-tools/goshaft/internal/model"
	"github.com/mecheng-tools/goshaft/internal/report"
	"github.com/mecheng-tools/goshaft/internal/statics"
)

var (
	analyzeDesignFile string
	analyzePoints     int
	analyzeSafety     float64

	analyzeSurface     string
	analyzeReliability string
	analyzeTemp        float64
	analyzeKfMisc      float64

	analyzePNGDir   string
	analyzePDFFile  string
	analyzeXLSXFile string
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Run statics and fatigue analysis on a shaft design",
	Long: `Solve the support reactions and internal load diagrams of a shaft
design file, then evaluate the fatigue-required diameter along the shaft.

The shaft must carry exactly two bearings; other configurations are
reported as unsolvable rather than failing.

Examples:
  # Analyze a design and show terminal diagrams
  goshaft analyze --design shaft.json

  # Export diagram images, a PDF report and the sampled arrays
  goshaft analyze --design shaft.json --png out/ --pdf report.pdf --xlsx samples.xlsx`,
	RunE: runAnalyze,
}

func init() {
	rootCmd.AddCommand(analyzeCmd)

	analyzeCmd.Flags().StringVarP(&analyzeDesignFile, "design", "d", "", "Shaft design file (JSON) [required]")
	analyzeCmd.Flags().IntVarP(&analyzePoints, "points", "p", statics.DefaultNumPoints, "Number of diagram sample points")
	analyzeCmd.Flags().Float64VarP(&analyzeSafety, "safety", "n", 2.0, "Target fatigue safety factor")

	analyzeCmd.Flags().StringVar(&analyzeSurface, "surface", string(fatigue.Machined), "Surface finish (ground|machined|cold-rolled|hot-rolled|forged)")
	analyzeCmd.Flags().StringVar(&analyzeReliability, "reliability", "99%", "Reliability (50%..99.9999%)")
	analyzeCmd.Flags().Float64Var(&analyzeTemp, "temp", 20, "Operating temperature (°C)")
	analyzeCmd.Flags().Float64Var(&analyzeKfMisc, "kf-misc", 1.0, "Miscellaneous Marin factor kf")

	analyzeCmd.Flags().StringVar(&analyzePNGDir, "png", "", "Directory for V/M/T diagram images")
	analyzeCmd.Flags().StringVar(&analyzePDFFile, "pdf", "", "Write a PDF design report")
	analyzeCmd.Flags().StringVar(&analyzeXLSXFile, "xlsx", "", "Write the sampled arrays to a spreadsheet")

	analyzeCmd.MarkFlagRequired("design")
}

func fatigueConfig() fatigue.Config {
	return fatigue.Config{
		Surface:     fatigue.SurfaceFinish(analyzeSurface),
		Reliability: analyzeReliability,
		Temperature: analyzeTemp,
		Kf:          analyzeKfMisc,
	}
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	design, err := loadDesign(analyzeDesignFile)
	if err != nil {
		return err
	}
	shaft := model.Build(*design)
	cfg := fatigueConfig()

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("     SHAFT STATICS & FATIGUE ANALYSIS")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Print(diagram.DrawShaftProfile(shaft))
	fmt.Println()

	reactions, solvable := statics.CalculateReactions(shaft)
	diagrams := statics.CalculateDiagrams(shaft, analyzePoints)

	fmt.Println("SUPPORT REACTIONS:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	if solvable {
		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintf(w, "  %s @ %.1f mm:\tRy = %.1f N\tRz = %.1f N\n",
			reactions.A.Name, reactions.A.Position, reactions.A.Fy, reactions.A.Fz)
		fmt.Fprintf(w, "  %s @ %.1f mm:\tRy = %.1f N\tRz = %.1f N\n",
			reactions.B.Name, reactions.B.Position, reactions.B.Fy, reactions.B.Fz)
		w.Flush()
	} else {
		fmt.Println("  ⚠ Unsolvable: the shaft must carry exactly two bearings.")
	}
	fmt.Println()

	if diagrams.Empty() {
		fmt.Println("  No diagram samples: shaft has zero length.")
		return nil
	}

	maxMaNm := maxAbs(diagrams.Ma) / 1000
	fmt.Println("INTERNAL LOAD MAXIMA:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Max shear force:\t%.2f N\n", maxAbs(diagrams.V))
	fmt.Fprintf(w, "  Max alternating moment:\t%.2f N·m\n", maxMaNm)
	fmt.Fprintf(w, "  Max mean torque:\t%.2f N·m\n", maxAbs(diagrams.Tm))
	fmt.Fprintf(w, "  Max alternating torque:\t%.2f N·m\n", maxAbs(diagrams.Ta))
	w.Flush()
	fmt.Println()

	maNm := make([]float64, len(diagrams.Ma))
	for i, v := range diagrams.Ma {
		maNm[i] = v / 1000
	}
	fmt.Print(diagram.PlotSeries("Shear V (N)", diagrams.V))
	fmt.Println()
	fmt.Print(diagram.PlotSeries("Alternating bending moment Ma (N·m)", maNm))
	fmt.Println()
	fmt.Print(diagram.PlotSeries("Mean torque Tm (N·m)", diagrams.Tm))
	fmt.Println()

	// Fatigue check: required diameter at every station against the
	// local current diameter.
	maxRequired, worstPos := requiredDiameterSweep(shaft, diagrams, cfg, analyzeSafety)

	fmt.Print(diagram.SummaryBox("FATIGUE SIZING", []string{
		fmt.Sprintf("Material: %s (Sut %.0f MPa, Sy %.0f MPa)",
			shaft.Material.Name, shaft.Material.Sut/1e6, shaft.Material.Sy/1e6),
		fmt.Sprintf("Target safety factor: n = %.2f", analyzeSafety),
		fmt.Sprintf("Max required diameter: %.2f mm @ %.1f mm", maxRequired, worstPos),
	}))
	fmt.Println()

	if analyzePNGDir != "" {
		files, err := diagram.ExportAll(analyzePNGDir, diagrams)
		if err != nil {
			return err
		}
		for _, f := range files {
			fmt.Printf("  Wrote %s\n", f)
		}
	}
	if analyzeXLSXFile != "" {
		if err := report.WriteXLSX(analyzeXLSXFile, diagrams); err != nil {
			return err
		}
		fmt.Printf("  Wrote %s\n", analyzeXLSXFile)
	}
	if analyzePDFFile != "" {
		err := report.WritePDF(analyzePDFFile, report.Data{
			Design:       *design,
			Diagrams:     diagrams,
			Reactions:    reactions,
			Solvable:     solvable,
			SafetyFactor: analyzeSafety,
			Fatigue:      cfg,
		})
		if err != nil {
			return err
		}
		fmt.Printf("  Wrote %s\n", analyzePDFFile)
	}
	return nil
}

// requiredDiameterSweep evaluates the ASME-elliptic minimum diameter at
// every sample station, using the local current diameter as the size
// factor guess, and returns the governing requirement and its position.
func requiredDiameterSweep(shaft *model.Shaft, d statics.Diagrams, cfg fatigue.Config, n float64) (maxReq, worstPos float64) {
	for i, x := range d.X {
		guess := shaft.DiameterAt(x)
		se := fatigue.EnduranceLimit(shaft.Material.Sut, guess, fatigue.Bending, cfg)
		req := fatigue.MinDiameter(fatigue.DiameterInput{
			Ma: math.Abs(d.Ma[i]) / 1000,
			Mm: math.Abs(d.Mm[i]) / 1000,
			Ta: math.Abs(d.Ta[i]),
			Tm: math.Abs(d.Tm[i]),
			N:  n,
			Se: se,
			Sy: shaft.Material.Sy,
		})
		if req > maxReq {
			maxReq = req
			worstPos = x
		}
	}
	return maxReq, worstPos
}

// maxAbs returns the largest absolute value in xs.
func maxAbs(xs []float64) float64 {
	m := 0.0
	for _, v := range xs {
		if math.Abs(v) > m {
			m = math.Abs(v)
		}
	}
	return m
}
