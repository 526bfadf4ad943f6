package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/mecheng-tools/goshaft/internal/catalog"
)

var materialsCmd = &cobra.Command{
	Use:   "materials",
	Short: "List the built-in material and standard diameter catalogs",
	Run:   runMaterials,
}

func init() {
	rootCmd.AddCommand(materialsCmd)
}

func runMaterials(cmd *cobra.Command, args []string) {
	fmt.Println()
	fmt.Println("MATERIALS:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Name\tSut (MPa)\tSy (MPa)\tE (GPa)\n")
	fmt.Fprintf(w, "  ────\t─────────\t────────\t───────\n")
	for _, name := range catalog.MaterialNames() {
		m, _ := catalog.GetMaterial(name)
		fmt.Fprintf(w, "  %s\t%.0f\t%.0f\t%.0f\n", m.Name, m.Sut/1e6, m.Sy/1e6, m.E/1e9)
	}
	w.Flush()
	fmt.Println()

	fmt.Println("STANDARD DIAMETERS (mm):")
	fmt.Println("───────────────────────────────────────────────────────────────")
	fmt.Print("  ")
	for i, d := range catalog.StandardDiameters {
		if i > 0 {
			fmt.Print(", ")
		}
		fmt.Printf("%.0f", d)
	}
	fmt.Println()
	fmt.Println()
}
