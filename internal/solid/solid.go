// Package solid models the stepped shaft as an SDF solid and exports it
// as an STL mesh.
package solid

import (
	"fmt"
	"os"

	"github.com/deadsy/sdfx/render"
	"github.com/deadsy/sdfx/sdf"
	v3 "github.com/deadsy/sdfx/vec/v3"

	"github.com/mecheng-tools/goshaft/internal/model"
)

// defaultMeshCells controls marching cubes tessellation resolution.
const defaultMeshCells = 200

// Build returns the shaft as a union of stacked cylinders along the Z
// axis, one per constant-diameter segment, dimensions in mm.
func Build(s *model.Shaft) (sdf.SDF3, error) {
	segments := s.Segments()
	if len(segments) == 0 {
		return nil, fmt.Errorf("shaft has no segments to model")
	}

	origin := s.Nodes[0].Position

	var shape sdf.SDF3
	for _, seg := range segments {
		h := seg.Length()
		d := seg.Diameter()
		if h <= 0 || d <= 0 {
			continue
		}
		cyl, err := sdf.Cylinder3D(h, d/2, 0)
		if err != nil {
			return nil, fmt.Errorf("segment at %.1f mm: %w", seg.Start.Position, err)
		}
		// Cylinder3D is centered at the origin; shift it to span the
		// segment's interval along Z.
		mid := seg.Start.Position - origin + h/2
		placed := sdf.Transform3D(cyl, sdf.Translate3d(v3.Vec{Z: mid}))
		if shape == nil {
			shape = placed
		} else {
			shape = sdf.Union3D(shape, placed)
		}
	}
	if shape == nil {
		return nil, fmt.Errorf("shaft has no solid segments")
	}
	return shape, nil
}

// ExportSTL tessellates the shaft solid with marching cubes and writes an
// STL file to path. meshCells <= 0 selects the default resolution.
func ExportSTL(s *model.Shaft, path string, meshCells int) error {
	shape, err := Build(s)
	if err != nil {
		return err
	}
	if meshCells <= 0 {
		meshCells = defaultMeshCells
	}

	render.ToSTL(shape, path, render.NewMarchingCubesUniform(meshCells))

	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("stl export produced no file: %w", err)
	}
	return nil
}
