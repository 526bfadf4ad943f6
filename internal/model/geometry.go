package model

import (
	"math"
	"sort"
)

// positionTol is the tolerance within which two node positions are
// considered the same point on the shaft.
const positionTol = 1e-5

// defaultDiameter is used when a node is added to an empty shaft with no
// diameter given.
const defaultDiameter = 20.0

// Node is a point of interest on the shaft: a diameter change, a mounted
// element, or both.
type Node struct {
	Position      float64        // mm
	DiameterLeft  float64        // mm
	DiameterRight float64        // mm
	Element       *Element       // optional mounted element
	Stress        *StressFeature // optional stress raiser at this point
}

// IsShoulder reports whether the diameter steps at this node.
func (n *Node) IsShoulder() bool {
	return n.DiameterLeft != n.DiameterRight
}

// Segment is the cylindrical span between two consecutive nodes. Segments
// are derived from the node list on demand and never stored.
type Segment struct {
	Start *Node
	End   *Node
}

// Length returns the segment length in mm.
func (s Segment) Length() float64 {
	return s.End.Position - s.Start.Position
}

// Diameter returns the constant diameter of the segment, taken from the
// right side of the start node.
func (s Segment) Diameter() float64 {
	return s.Start.DiameterRight
}

// Material holds the strength properties of the shaft material.
type Material struct {
	Name string  `json:"name"`
	Sut  float64 `json:"sut"` // ultimate tensile strength, Pa
	Sy   float64 `json:"sy"`  // yield strength, Pa
	E    float64 `json:"e"`   // Young's modulus, Pa
}

// Shaft is the aggregate root for a stepped circular shaft: an ordered
// node list plus the loads applied to it. It is rebuilt wholesale from a
// Design each analysis cycle; the optimizer only touches diameters.
type Shaft struct {
	Nodes    []*Node
	Material Material
	Forces   []RadialForce
	Torques  []Torque
}

// NewShaft returns an empty shaft.
func NewShaft() *Shaft {
	return &Shaft{}
}

// AddNode inserts a node keeping the list sorted by position. If a node
// already exists within tolerance of the position, only the provided
// (non-zero, non-nil) fields are merged into it so duplicate positions
// never occur. Unset diameters on a new node default to the nearest known
// diameter, or 20 mm on an empty shaft.
func (s *Shaft) AddNode(n Node) {
	for _, existing := range s.Nodes {
		if math.Abs(existing.Position-n.Position) < positionTol {
			if n.DiameterLeft > 0 {
				existing.DiameterLeft = n.DiameterLeft
			}
			if n.DiameterRight > 0 {
				existing.DiameterRight = n.DiameterRight
			}
			if n.Element != nil {
				existing.Element = n.Element
			}
			if n.Stress != nil {
				existing.Stress = n.Stress
			}
			return
		}
	}

	if n.DiameterLeft <= 0 {
		n.DiameterLeft = s.nearestDiameter(n.Position)
	}
	if n.DiameterRight <= 0 {
		n.DiameterRight = s.nearestDiameter(n.Position)
	}

	node := n
	s.Nodes = append(s.Nodes, &node)
	sort.Slice(s.Nodes, func(i, j int) bool {
		return s.Nodes[i].Position < s.Nodes[j].Position
	})
}

// nearestDiameter returns the diameter of the node closest to pos, used
// to infer defaults for partially specified nodes.
func (s *Shaft) nearestDiameter(pos float64) float64 {
	if len(s.Nodes) == 0 {
		return defaultDiameter
	}
	best := s.Nodes[0]
	for _, n := range s.Nodes[1:] {
		if math.Abs(n.Position-pos) < math.Abs(best.Position-pos) {
			best = n
		}
	}
	if best.Position <= pos {
		return best.DiameterRight
	}
	return best.DiameterLeft
}

// Segments returns the N-1 spans between consecutive nodes; empty when
// the shaft has fewer than two nodes.
func (s *Shaft) Segments() []Segment {
	if len(s.Nodes) < 2 {
		return nil
	}
	segments := make([]Segment, 0, len(s.Nodes)-1)
	for i := 0; i < len(s.Nodes)-1; i++ {
		segments = append(segments, Segment{Start: s.Nodes[i], End: s.Nodes[i+1]})
	}
	return segments
}

// TotalLength returns the distance between the first and last node.
func (s *Shaft) TotalLength() float64 {
	if len(s.Nodes) == 0 {
		return 0
	}
	return s.Nodes[len(s.Nodes)-1].Position - s.Nodes[0].Position
}

// DiameterAt returns the local diameter at position pos, or 0 when pos
// falls outside every segment.
func (s *Shaft) DiameterAt(pos float64) float64 {
	for _, seg := range s.Segments() {
		if seg.Start.Position <= pos && pos <= seg.End.Position {
			return seg.Diameter()
		}
	}
	return 0
}

// Bearings returns the nodes carrying bearing elements, in position order.
func (s *Shaft) Bearings() []*Node {
	var bearings []*Node
	for _, n := range s.Nodes {
		if n.Element.IsBearing() {
			bearings = append(bearings, n)
		}
	}
	return bearings
}

// AllLoads returns the union of shaft-level loads and loads carried by
// node elements, every entry tagged with its absolute position.
func (s *Shaft) AllLoads() ([]RadialForce, []Torque) {
	forces := make([]RadialForce, len(s.Forces))
	copy(forces, s.Forces)
	torques := make([]Torque, 0, len(s.Torques))
	for _, t := range s.Torques {
		t.Normalize()
		torques = append(torques, t)
	}

	for _, n := range s.Nodes {
		ef, et := n.Element.Loads(n.Position)
		forces = append(forces, ef...)
		torques = append(torques, et...)
	}
	return forces, torques
}

// Reset clears nodes and load lists.
func (s *Shaft) Reset() {
	s.Nodes = nil
	s.Forces = nil
	s.Torques = nil
}
