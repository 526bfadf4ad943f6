package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddNodeSortsAndDefaults(t *testing.T) {
	s := NewShaft()
	s.AddNode(Node{Position: 300})
	s.AddNode(Node{Position: 0, DiameterLeft: 30, DiameterRight: 30})

	require.Len(t, s.Nodes, 2)
	assert.Equal(t, 0.0, s.Nodes[0].Position, "nodes stay sorted by position")

	// First node on an empty shaft falls back to the 20 mm default.
	assert.Equal(t, 20.0, s.Nodes[1].DiameterLeft)
	assert.Equal(t, 20.0, s.Nodes[1].DiameterRight)

	// A later partial node inherits the nearest known diameter.
	s.AddNode(Node{Position: 10})
	assert.Equal(t, 30.0, s.Nodes[1].DiameterLeft)
}

func TestAddNodeMergesWithinTolerance(t *testing.T) {
	s := NewShaft()
	s.AddNode(Node{Position: 100, DiameterLeft: 25, DiameterRight: 25})
	s.AddNode(Node{Position: 100.000001, Element: &Element{Kind: KindBearing, Name: "Bearing A"}})

	require.Len(t, s.Nodes, 1, "positions within tolerance merge into one node")
	assert.Equal(t, 25.0, s.Nodes[0].DiameterLeft, "merge keeps existing diameters")
	assert.True(t, s.Nodes[0].Element.IsBearing())

	// Zero-valued fields on the incoming node never clobber set ones.
	s.AddNode(Node{Position: 100, DiameterRight: 35})
	assert.Equal(t, 25.0, s.Nodes[0].DiameterLeft)
	assert.Equal(t, 35.0, s.Nodes[0].DiameterRight)
}

func TestShoulderDetection(t *testing.T) {
	step := &Node{DiameterLeft: 20, DiameterRight: 25}
	flat := &Node{DiameterLeft: 25, DiameterRight: 25}
	assert.True(t, step.IsShoulder())
	assert.False(t, flat.IsShoulder())
}

func TestSegmentsAndLength(t *testing.T) {
	s := NewShaft()
	assert.Nil(t, s.Segments())
	assert.Equal(t, 0.0, s.TotalLength())

	s.AddNode(Node{Position: 0, DiameterLeft: 20, DiameterRight: 20})
	s.AddNode(Node{Position: 200, DiameterLeft: 20, DiameterRight: 30})
	s.AddNode(Node{Position: 500, DiameterLeft: 30, DiameterRight: 30})

	segs := s.Segments()
	require.Len(t, segs, 2)
	assert.Equal(t, 200.0, segs[0].Length())
	assert.Equal(t, 20.0, segs[0].Diameter())
	assert.Equal(t, 30.0, segs[1].Diameter(), "segment diameter reads the start node's right side")
	assert.Equal(t, 500.0, s.TotalLength())

	assert.Equal(t, 20.0, s.DiameterAt(100))
	assert.Equal(t, 30.0, s.DiameterAt(350))
	assert.Equal(t, 0.0, s.DiameterAt(600))
}

func TestBearings(t *testing.T) {
	s := NewShaft()
	s.AddNode(Node{Position: 0, Element: &Element{Kind: KindBearing, Name: "Bearing A"}})
	s.AddNode(Node{Position: 250, Element: &Element{Kind: KindSpurGear, Name: "Gear"}})
	s.AddNode(Node{Position: 500, Element: &Element{Kind: KindBearing, Name: "Bearing B"}})

	bearings := s.Bearings()
	require.Len(t, bearings, 2)
	assert.Equal(t, "Bearing A", bearings[0].Element.Name)
	assert.Equal(t, "Bearing B", bearings[1].Element.Name)
}

func TestAllLoadsCollectsElementLoads(t *testing.T) {
	s := NewShaft()
	s.Forces = []RadialForce{{Magnitude: 500, Angle: 90, Position: 50}}
	s.Torques = []Torque{{Magnitude: 40, Position: 50}}
	s.AddNode(Node{
		Position: 250,
		Element: &Element{
			Kind: KindSpurGear, Name: "Gear",
			PowerKW: 10, SpeedRPM: 2000,
			Forces: []RadialForce{{Magnitude: 800, Angle: 20}},
		},
	})

	forces, torques := s.AllLoads()
	require.Len(t, forces, 2)
	assert.Equal(t, 250.0, forces[1].Position, "element loads pick up the node position")

	require.Len(t, torques, 2)
	assert.Equal(t, 40.0, torques[0].Mean, "legacy magnitude normalizes to mean")
	assert.InDelta(t, 47.7465, torques[1].Mean, 1e-4, "gear torque 9549.3·P/n")
	assert.Equal(t, 250.0, torques[1].Position)
}

func TestGearTorqueRequiresPowerAndSpeed(t *testing.T) {
	e := &Element{Kind: KindSpurGear, Name: "Gear", PowerKW: 10}
	_, torques := e.Loads(100)
	assert.Empty(t, torques, "no speed, no transmitted torque")
}

func TestRadialForceComponents(t *testing.T) {
	f := RadialForce{Magnitude: 1000, Angle: 0}
	assert.InDelta(t, 1000, f.Fy(), 1e-9)
	assert.InDelta(t, 0, f.Fz(), 1e-9)

	f.Angle = 90
	assert.InDelta(t, 0, f.Fy(), 1e-9)
	assert.InDelta(t, 1000, f.Fz(), 1e-9)
}

func TestStressFeatureFactors(t *testing.T) {
	var sf *StressFeature
	kf, kfs := sf.Factors()
	assert.Equal(t, 1.0, kf)
	assert.Equal(t, 1.0, kfs)

	sf = &StressFeature{Kind: FeatureKeyway, KfBending: 2.14}
	kf, kfs = sf.Factors()
	assert.Equal(t, 2.14, kf)
	assert.Equal(t, 1.0, kfs, "unset torsion factor defaults to unity")
}

func TestReset(t *testing.T) {
	s := NewShaft()
	s.AddNode(Node{Position: 0})
	s.Forces = []RadialForce{{Magnitude: 100}}
	s.Torques = []Torque{{Mean: 10}}

	s.Reset()
	assert.Empty(t, s.Nodes)
	assert.Empty(t, s.Forces)
	assert.Empty(t, s.Torques)
}
