package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testDesign() Design {
	return Design{
		Name:          "intermediate shaft",
		TotalLength:   500,
		StartDiameter: 20,
		Material:      Material{Name: "AISI 1045", Sut: 565e6, Sy: 310e6, E: 207e9},
		BearingA:      0,
		BearingB:      500,
		Features: []Feature{
			{ID: "s1", Kind: FeatureShoulder, Position: 150, Diameter: 30},
			{ID: "g1", Kind: FeatureGear, Position: 250, PitchDiameter: 120, PowerKW: 10, SpeedRPM: 2000},
			{ID: "s2", Kind: FeatureShoulder, Position: 350, Diameter: 25},
		},
		Forces: []RadialForce{{Magnitude: 1000, Angle: 0, Position: 250}},
	}
}

func TestBuildNodesAndDiameters(t *testing.T) {
	s := Build(testDesign())

	require.Len(t, s.Nodes, 5)
	assert.Equal(t, 500.0, s.TotalLength())

	assert.Equal(t, 20.0, s.DiameterAt(100), "start diameter up to the first shoulder")
	assert.Equal(t, 30.0, s.DiameterAt(250), "stepped up past the first shoulder")
	assert.Equal(t, 25.0, s.DiameterAt(400), "stepped down past the second shoulder")

	first := s.Nodes[1]
	assert.True(t, first.IsShoulder())
	assert.Equal(t, 20.0, first.DiameterLeft)
	assert.Equal(t, 30.0, first.DiameterRight)
}

func TestBuildMountsBearingsAndElements(t *testing.T) {
	s := Build(testDesign())

	bearings := s.Bearings()
	require.Len(t, bearings, 2, "bearings merge into the end nodes")
	assert.Equal(t, 0.0, bearings[0].Position)
	assert.Equal(t, 500.0, bearings[1].Position)

	gear := s.Nodes[2].Element
	require.NotNil(t, gear)
	assert.Equal(t, KindSpurGear, gear.Kind)
	assert.Equal(t, 120.0, gear.Diameter)

	// Gear power shows up as a transmitted mean torque.
	_, torques := s.AllLoads()
	require.Len(t, torques, 1)
	assert.InDelta(t, 47.7465, torques[0].Mean, 1e-4)
}

func TestBuildDefaultsBearingBToEnd(t *testing.T) {
	d := testDesign()
	d.BearingB = 0

	s := Build(d)
	bearings := s.Bearings()
	require.Len(t, bearings, 2)
	assert.Equal(t, 500.0, bearings[1].Position)
}

func TestBuildIsPure(t *testing.T) {
	d := testDesign()
	a := Build(d)
	b := Build(d)

	require.Equal(t, len(a.Nodes), len(b.Nodes))
	for i := range a.Nodes {
		assert.Equal(t, a.Nodes[i].Position, b.Nodes[i].Position)
		assert.Equal(t, a.Nodes[i].DiameterRight, b.Nodes[i].DiameterRight)
	}

	// Build must not reorder the design's own feature list.
	d.Features[0], d.Features[2] = d.Features[2], d.Features[0]
	Build(d)
	assert.Equal(t, "s2", d.Features[0].ID)
}

func TestShouldersSorted(t *testing.T) {
	d := testDesign()
	d.Features[0], d.Features[2] = d.Features[2], d.Features[0]

	shoulders := d.Shoulders()
	require.Len(t, shoulders, 2)
	assert.Equal(t, 150.0, shoulders[0].Position)
	assert.Equal(t, 350.0, shoulders[1].Position)
}

func TestBuildZeroShoulderKeepsDiameter(t *testing.T) {
	d := Design{
		TotalLength:   300,
		StartDiameter: 25,
		BearingB:      300,
		Features:      []Feature{{Kind: FeatureShoulder, Position: 150}},
	}
	s := Build(d)
	assert.Equal(t, 25.0, s.DiameterAt(200), "unset shoulder diameter carries the current one")
}
