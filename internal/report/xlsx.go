package report

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/mecheng-tools/goshaft/internal/statics"
)

// xlsxSheet is the sheet the diagram samples land on.
const xlsxSheet = "Diagrams"

// WriteXLSX exports the sampled diagram arrays to a spreadsheet, one row
// per station. Moments are written in N·m for consistency with torques.
func WriteXLSX(path string, d statics.Diagrams) error {
	if d.Empty() {
		return fmt.Errorf("no diagram samples to export")
	}

	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(xlsxSheet)
	if err != nil {
		return err
	}
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	headers := []string{"x (mm)", "V (N)", "Ma (N·m)", "Mm (N·m)", "Ta (N·m)", "Tm (N·m)"}
	for col, h := range headers {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(xlsxSheet, cell, h); err != nil {
			return err
		}
	}

	for i := range d.X {
		values := []float64{d.X[i], d.V[i], d.Ma[i] / 1000, d.Mm[i] / 1000, d.Ta[i], d.Tm[i]}
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, i+2)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(xlsxSheet, cell, v); err != nil {
				return err
			}
		}
	}

	return f.SaveAs(path)
}
