package statics

import (
	"math"

	"github.com/mecheng-tools/goshaft/internal/model"
)

// DefaultNumPoints is the sampling resolution of the diagram arrays.
const DefaultNumPoints = 200

// Diagrams holds the position-indexed internal load distributions,
// decomposed into the alternating and mean components a fatigue check
// needs. All slices share the same length.
//
// Units: X in mm, V in N, Ma and Mm in N·mm (force in N times distance in
// mm), Ta and Tm in N·m (torque inputs are already N·m). Divide the
// moment arrays by 1000 before combining them with the torque arrays.
type Diagrams struct {
	X  []float64 // sample positions, mm
	V  []float64 // resultant shear magnitude, N
	Ma []float64 // alternating bending moment, N·mm
	Mm []float64 // mean bending moment, N·mm (zero in this model)
	Ta []float64 // alternating torque, N·m
	Tm []float64 // mean torque, N·m
}

// Empty reports whether the solver produced no samples.
func (d Diagrams) Empty() bool {
	return len(d.X) == 0
}

// CalculateDiagrams samples shear, bending moment and torque at numPoints
// evenly spaced stations along the shaft by superposing the Macaulay
// contributions of the reactions and applied loads.
//
// A static transverse load on a rotating shaft produces a fully reversed
// bending cycle, so the entire resultant bending moment is classified as
// alternating and Mm stays zero. Torque is stepped directly from each
// torque entry; no torque-balance correction is applied, so an unbalanced
// input shows up as a non-zero diagram at the free end.
//
// Degenerate geometry never produces an error: zero total length returns
// empty arrays, unsolvable reactions return zero-filled arrays.
func CalculateDiagrams(s *model.Shaft, numPoints int) Diagrams {
	if numPoints <= 0 {
		numPoints = DefaultNumPoints
	}

	length := s.TotalLength()
	if length == 0 {
		return Diagrams{}
	}

	x := Linspace(0, length, numPoints)
	d := Diagrams{
		X:  x,
		V:  make([]float64, numPoints),
		Ma: make([]float64, numPoints),
		Mm: make([]float64, numPoints),
		Ta: make([]float64, numPoints),
		Tm: make([]float64, numPoints),
	}

	reactions, ok := CalculateReactions(s)
	if !ok {
		return d
	}

	forces, torques := s.AllLoads()

	for i, xi := range x {
		vy := reactions.A.Fy*Macaulay(xi, reactions.A.Position, 0) +
			reactions.B.Fy*Macaulay(xi, reactions.B.Position, 0)
		vz := reactions.A.Fz*Macaulay(xi, reactions.A.Position, 0) +
			reactions.B.Fz*Macaulay(xi, reactions.B.Position, 0)
		my := reactions.A.Fy*Macaulay(xi, reactions.A.Position, 1) +
			reactions.B.Fy*Macaulay(xi, reactions.B.Position, 1)
		mz := reactions.A.Fz*Macaulay(xi, reactions.A.Position, 1) +
			reactions.B.Fz*Macaulay(xi, reactions.B.Position, 1)

		for _, f := range forces {
			vy += f.Fy() * Macaulay(xi, f.Position, 0)
			vz += f.Fz() * Macaulay(xi, f.Position, 0)
			my += f.Fy() * Macaulay(xi, f.Position, 1)
			mz += f.Fz() * Macaulay(xi, f.Position, 1)
		}

		d.V[i] = math.Hypot(vy, vz)
		d.Ma[i] = math.Hypot(my, mz)

		for _, t := range torques {
			d.Ta[i] += t.Alternating * Macaulay(xi, t.Position, 0)
			d.Tm[i] += t.Mean * Macaulay(xi, t.Position, 0)
		}
	}
	return d
}
