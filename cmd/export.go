package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mecheng-tools/goshaft/internal/model"
	"github.com/mecheng-tools/goshaft/internal/solid"
)

var (
	exportDesignFile string
	exportOutFile    string
	exportMeshCells  int
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export geometry artifacts from a shaft design",
}

var exportSTLCmd = &cobra.Command{
	Use:   "stl",
	Short: "Export the shaft as an STL solid model",
	Long: `Model the stepped shaft as a union of cylinders and tessellate it to an
STL mesh, dimensions in mm.

Examples:
  goshaft export stl --design shaft.json --out shaft.stl
  goshaft export stl --design shaft.json --out shaft.stl --cells 300`,
	RunE: runExportSTL,
}

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.AddCommand(exportSTLCmd)

	exportSTLCmd.Flags().StringVarP(&exportDesignFile, "design", "d", "", "Shaft design file (JSON) [required]")
	exportSTLCmd.Flags().StringVarP(&exportOutFile, "out", "o", "shaft.stl", "Output STL path")
	exportSTLCmd.Flags().IntVar(&exportMeshCells, "cells", 0, "Marching cubes resolution (default 200)")

	exportSTLCmd.MarkFlagRequired("design")
}

func runExportSTL(cmd *cobra.Command, args []string) error {
	design, err := loadDesign(exportDesignFile)
	if err != nil {
		return err
	}
	shaft := model.Build(*design)

	if err := solid.ExportSTL(shaft, exportOutFile, exportMeshCells); err != nil {
		return err
	}
	fmt.Printf("  Wrote %s\n", exportOutFile)
	return nil
}
