package optimize

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mecheng-tools/goshaft/internal/model"
)

// sizingDesign is an undersized uniform shaft: 500 mm span, 20 mm start
// diameter, 1000 N transverse load and 50 N·m steady torque at midspan.
func sizingDesign() model.Design {
	return model.Design{
		Name:          "test shaft",
		TotalLength:   500,
		StartDiameter: 20,
		Material:      model.Material{Name: "AISI 1045", Sut: 565e6, Sy: 310e6, E: 207e9},
		BearingA:      0,
		BearingB:      500,
		Forces:        []model.RadialForce{{Magnitude: 1000, Angle: 0, Position: 250}},
		Torques:       []model.Torque{{Mean: 50, Position: 250}},
	}
}

func TestRunSizesUpToCatalog(t *testing.T) {
	design := sizingDesign()
	res := Run(&design, DefaultOptions())

	require.True(t, res.Success)
	assert.Equal(t, 25.0, design.StartDiameter, "20 mm cannot carry the load at n = 2")

	require.NotEmpty(t, res.Log)
	assert.Equal(t, "Start segments: 20 -> 25 mm", res.Log[0])
	assert.LessOrEqual(t, res.Iterations, DefaultOptions().MaxIterations)
}

func TestRunReachesFixedPoint(t *testing.T) {
	design := sizingDesign()
	Run(&design, DefaultOptions())

	// A converged design must pass through a second run untouched.
	before := design.StartDiameter
	res := Run(&design, DefaultOptions())
	assert.True(t, res.Success)
	assert.Empty(t, res.Log, "no zone changes on an already converged design")
	assert.Equal(t, 1, res.Iterations)
	assert.Equal(t, before, design.StartDiameter)
}

func TestRunUpdatesShoulderZones(t *testing.T) {
	design := sizingDesign()
	design.Features = []model.Feature{
		{ID: "s1", Kind: model.FeatureShoulder, Position: 200, Diameter: 22},
		{ID: "s2", Kind: model.FeatureShoulder, Position: 300, Diameter: 20},
	}

	res := Run(&design, DefaultOptions())
	require.True(t, res.Success)

	// The midspan zone carries the peak moment and must grow; every zone
	// lands on a catalog diameter.
	assert.Greater(t, design.Features[0].Diameter, 22.0)
	for _, f := range design.Features {
		assert.Contains(t, []float64{20, 25, 30, 35, 40}, f.Diameter)
	}

	// Geometry is never touched.
	assert.Equal(t, 200.0, design.Features[0].Position)
	assert.Equal(t, 500.0, design.TotalLength)
}

func TestRunFailsOnUnsolvableGeometry(t *testing.T) {
	design := model.Design{}
	res := Run(&design, DefaultOptions())

	assert.False(t, res.Success)
	assert.Equal(t, "analysis failed to run: shaft has no solvable geometry", res.Message)
}

func TestRunDefaultsMaterial(t *testing.T) {
	design := sizingDesign()
	design.Material = model.Material{}

	res := Run(&design, DefaultOptions())
	require.True(t, res.Success)
	// AISI 1020 is weaker than 1045, so the result cannot be smaller.
	assert.GreaterOrEqual(t, design.StartDiameter, 25.0)
}

func TestControllingZone(t *testing.T) {
	design := model.Design{
		Features: []model.Feature{
			{ID: "s1", Kind: model.FeatureShoulder, Position: 150},
			{ID: "s2", Kind: model.FeatureShoulder, Position: 350},
		},
	}
	shoulders := design.Shoulders()

	assert.Equal(t, startZone, controllingZone(shoulders, 0))
	assert.Equal(t, startZone, controllingZone(shoulders, 149.9))
	assert.Equal(t, 0, controllingZone(shoulders, 150))
	assert.Equal(t, 0, controllingZone(shoulders, 300))
	assert.Equal(t, 1, controllingZone(shoulders, 480))
}

func TestRunResizesAnonymousShoulder(t *testing.T) {
	// Feature IDs are optional in design files; an unnamed shoulder must
	// still get its zone sized.
	design := model.Design{
		TotalLength:   500,
		StartDiameter: 25,
		Material:      model.Material{Name: "AISI 1045", Sut: 565e6, Sy: 310e6, E: 207e9},
		BearingB:      500,
		Features: []model.Feature{
			{Kind: model.FeatureShoulder, Position: 100, Diameter: 12},
		},
		Forces: []model.RadialForce{{Magnitude: 4000, Angle: 0, Position: 250}},
	}

	res := Run(&design, DefaultOptions())
	require.True(t, res.Success)
	require.NotEmpty(t, res.Log)
	assert.Equal(t, 40.0, design.Features[0].Diameter, "the 12 mm step cannot carry 500 N·m at n = 2")
}
