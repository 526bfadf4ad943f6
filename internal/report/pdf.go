// Package report renders analysis results to engineer-facing artifacts:
// a PDF design report and a spreadsheet of the sampled diagrams.
package report

import (
	"fmt"
	"time"

	"github.com/phpdave11/gofpdf"

	"github.com/mecheng-tools/goshaft/internal/fatigue"
	"github.com/mecheng-tools/goshaft/internal/model"
	"github.com/mecheng-tools/goshaft/internal/statics"
)

// Data aggregates everything a report draws from.
type Data struct {
	Design    model.Design
	Diagrams  statics.Diagrams
	Reactions statics.Reactions
	Solvable  bool

	SafetyFactor float64
	Fatigue      fatigue.Config

	// Optimizer change log, empty when no optimization ran.
	Changes []string
}

// maxAbs returns the largest absolute value in xs.
func maxAbs(xs []float64) float64 {
	m := 0.0
	for _, v := range xs {
		if v < 0 {
			v = -v
		}
		if v > m {
			m = v
		}
	}
	return m
}

// WritePDF renders the design report to path.
func WritePDF(path string, data Data) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	title := data.Design.Name
	if title == "" {
		title = "Shaft Design Report"
	}
	pdf.Cell(0, 10, title)
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 10)
	pdf.Cell(0, 5, fmt.Sprintf("Date: %s", time.Now().Format("2006-01-02")))
	pdf.Ln(8)

	section := func(name string) {
		pdf.SetFont("Helvetica", "B", 12)
		pdf.Cell(0, 8, name)
		pdf.Ln(8)
		pdf.SetFont("Helvetica", "", 10)
	}
	row := func(label, value string) {
		pdf.Cell(70, 5, label)
		pdf.Cell(0, 5, value)
		pdf.Ln(5)
	}

	section("Geometry & Material")
	row("Total length", fmt.Sprintf("%.1f mm", data.Design.TotalLength))
	row("Start diameter", fmt.Sprintf("%.1f mm", data.Design.StartDiameter))
	row("Bearing positions", fmt.Sprintf("%.1f mm / %.1f mm", data.Design.BearingA, data.Design.BearingB))
	mat := data.Design.Material
	row("Material", mat.Name)
	row("Sut / Sy", fmt.Sprintf("%.0f MPa / %.0f MPa", mat.Sut/1e6, mat.Sy/1e6))
	pdf.Ln(3)

	section("Fatigue Configuration")
	row("Surface finish", string(data.Fatigue.Surface))
	row("Reliability", data.Fatigue.Reliability)
	row("Temperature", fmt.Sprintf("%.0f C", data.Fatigue.Temperature))
	row("Target safety factor", fmt.Sprintf("%.2f", data.SafetyFactor))
	pdf.Ln(3)

	section("Support Reactions")
	if data.Solvable {
		r := data.Reactions
		row(r.A.Name, fmt.Sprintf("Ry = %.1f N, Rz = %.1f N @ %.1f mm", r.A.Fy, r.A.Fz, r.A.Position))
		row(r.B.Name, fmt.Sprintf("Ry = %.1f N, Rz = %.1f N @ %.1f mm", r.B.Fy, r.B.Fz, r.B.Position))
	} else {
		pdf.Cell(0, 5, "Geometry unsolvable: the shaft does not carry exactly two bearings.")
		pdf.Ln(5)
	}
	pdf.Ln(3)

	section("Internal Load Maxima")
	if data.Diagrams.Empty() {
		pdf.Cell(0, 5, "No diagram samples available.")
		pdf.Ln(5)
	} else {
		row("Max shear force", fmt.Sprintf("%.1f N", maxAbs(data.Diagrams.V)))
		row("Max alternating moment", fmt.Sprintf("%.2f N.m", maxAbs(data.Diagrams.Ma)/1000))
		row("Max mean torque", fmt.Sprintf("%.2f N.m", maxAbs(data.Diagrams.Tm)))
		row("Max alternating torque", fmt.Sprintf("%.2f N.m", maxAbs(data.Diagrams.Ta)))
	}
	pdf.Ln(3)

	if len(data.Changes) > 0 {
		section("Optimization Changes")
		for _, change := range data.Changes {
			pdf.Cell(0, 5, change)
			pdf.Ln(5)
		}
	}

	return pdf.OutputFileAndClose(path)
}
