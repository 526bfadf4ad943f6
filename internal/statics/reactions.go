package statics

import "github.com/mecheng-tools/goshaft/internal/model"

// Reaction is the support load at one bearing, split into the two
// orthogonal bending planes.
type Reaction struct {
	Name     string
	Position float64 // mm
	Fy       float64 // N, vertical plane
	Fz       float64 // N, horizontal plane
}

// Reactions holds the two bearing reactions, A upstream of B.
type Reactions struct {
	A Reaction
	B Reaction
}

// CalculateReactions solves the two support reactions of a simply
// supported shaft, independently per bending plane:
//
//	ΣM_A = 0:  R_B = -Σ F_i·(x_i - x_A) / L
//	ΣF   = 0:  R_A = -R_B - Σ F_i
//
// ok is false when the shaft does not carry exactly two bearings; a zero
// span yields zero reactions. Neither case is an error.
func CalculateReactions(s *model.Shaft) (Reactions, bool) {
	bearings := s.Bearings()
	if len(bearings) != 2 {
		return Reactions{}, false
	}

	nodeA, nodeB := bearings[0], bearings[1]
	r := Reactions{
		A: Reaction{Name: nodeA.Element.Name, Position: nodeA.Position},
		B: Reaction{Name: nodeB.Element.Name, Position: nodeB.Position},
	}

	span := nodeB.Position - nodeA.Position
	if span == 0 {
		return r, true
	}

	forces, _ := s.AllLoads()

	var momentY, sumY, momentZ, sumZ float64
	for _, f := range forces {
		dist := f.Position - nodeA.Position
		momentY += f.Fy() * dist
		sumY += f.Fy()
		momentZ += f.Fz() * dist
		sumZ += f.Fz()
	}

	r.B.Fy = -momentY / span
	r.A.Fy = -r.B.Fy - sumY
	r.B.Fz = -momentZ / span
	r.A.Fz = -r.B.Fz - sumZ
	return r, true
}
