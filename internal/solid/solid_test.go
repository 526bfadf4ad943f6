package solid

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mecheng-tools/goshaft/internal/model"
)

func steppedShaft() *model.Shaft {
	return model.Build(model.Design{
		TotalLength:   100,
		StartDiameter: 20,
		BearingB:      100,
		Features: []model.Feature{
			{ID: "s1", Kind: model.FeatureShoulder, Position: 50, Diameter: 30},
		},
	})
}

func TestBuild(t *testing.T) {
	shape, err := Build(steppedShaft())
	require.NoError(t, err)
	require.NotNil(t, shape)

	// The bounding box must cover the full length and the widest step.
	bb := shape.BoundingBox()
	assert.InDelta(t, 100, bb.Max.Z-bb.Min.Z, 1e-6)
	assert.InDelta(t, 30, bb.Max.X-bb.Min.X, 1e-6)
}

func TestBuildEmptyShaft(t *testing.T) {
	_, err := Build(model.NewShaft())
	assert.Error(t, err)
}

func TestExportSTL(t *testing.T) {
	if testing.Short() {
		t.Skip("mesh tessellation is slow")
	}

	path := filepath.Join(t.TempDir(), "shaft.stl")
	require.NoError(t, ExportSTL(steppedShaft(), path, 40))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(84), "more than an empty STL header")
}
