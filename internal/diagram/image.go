package diagram

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/mecheng-tools/goshaft/internal/statics"
)

// Series is one named curve of a diagram plot.
type Series struct {
	Name  string
	Y     []float64
	Color color.RGBA
}

// ExportDiagram writes an XY line plot of the given series against x to
// an image file (format from the extension, .png default).
func ExportDiagram(filename, title, yLabel string, x []float64, series ...Series) error {
	if len(x) == 0 {
		return fmt.Errorf("no samples to plot")
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "Position (mm)"
	p.Y.Label.Text = yLabel
	p.Legend.Top = true

	for _, s := range series {
		if len(s.Y) != len(x) {
			return fmt.Errorf("series %q: %d samples, expected %d", s.Name, len(s.Y), len(x))
		}
		pts := make(plotter.XYs, len(x))
		for i := range x {
			pts[i] = plotter.XY{X: x[i], Y: s.Y[i]}
		}
		line, err := plotter.NewLine(pts)
		if err != nil {
			return err
		}
		line.LineStyle.Width = vg.Points(1.5)
		line.LineStyle.Color = s.Color
		p.Add(line)
		p.Legend.Add(s.Name, line)
	}

	// Zero reference line.
	zero, err := plotter.NewLine(plotter.XYs{
		{X: x[0], Y: 0},
		{X: x[len(x)-1], Y: 0},
	})
	if err != nil {
		return err
	}
	zero.LineStyle.Color = color.Gray{Y: 128}
	zero.LineStyle.Dashes = []vg.Length{vg.Points(3), vg.Points(3)}
	p.Add(zero)

	dir := filepath.Dir(filename)
	if dir != "" && dir != "." {
		os.MkdirAll(dir, 0755)
	}

	if filepath.Ext(filename) == "" {
		filename += ".png"
	}
	return p.Save(8*vg.Inch, 4*vg.Inch, filename)
}

// ExportAll writes the shear, bending moment and torque diagrams next to
// each other under dir and returns the written file paths. Moment arrays
// arrive in N·mm and are plotted in N·m.
func ExportAll(dir string, d statics.Diagrams) ([]string, error) {
	if d.Empty() {
		return nil, fmt.Errorf("no diagram samples to export")
	}

	maNm := make([]float64, len(d.Ma))
	for i, v := range d.Ma {
		maNm[i] = v / 1000
	}

	red := color.RGBA{R: 200, A: 255}
	blue := color.RGBA{B: 180, A: 255}
	green := color.RGBA{G: 140, A: 255}

	files := []struct {
		name, title, yLabel string
		series              []Series
	}{
		{"shear.png", "Shear Force Diagram", "V (N)",
			[]Series{{Name: "V", Y: d.V, Color: blue}}},
		{"moment.png", "Bending Moment Diagram", "M (N·m)",
			[]Series{{Name: "Ma (alternating)", Y: maNm, Color: red}}},
		{"torque.png", "Torque Diagram", "T (N·m)",
			[]Series{
				{Name: "Tm (mean)", Y: d.Tm, Color: green},
				{Name: "Ta (alternating)", Y: d.Ta, Color: red},
			}},
	}

	var written []string
	for _, f := range files {
		path := filepath.Join(dir, f.name)
		if err := ExportDiagram(path, f.title, f.yLabel, d.X, f.series...); err != nil {
			return written, fmt.Errorf("export %s: %w", f.name, err)
		}
		written = append(written, path)
	}
	return written, nil
}
