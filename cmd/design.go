package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/mecheng-tools/goshaft/internal/catalog"
	"github.com/mecheng-tools/goshaft/internal/model"
)

// loadDesign reads a shaft design file (JSON) and resolves its material
// against the built-in database when only a name is given.
func loadDesign(path string) (*model.Design, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read design file: %w", err)
	}

	var design model.Design
	if err := json.Unmarshal(raw, &design); err != nil {
		return nil, fmt.Errorf("parse design file %s: %w", path, err)
	}

	if design.Material.Sut == 0 {
		name := design.Material.Name
		if name == "" {
			name = catalog.DefaultMaterial
		}
		mat, ok := catalog.GetMaterial(name)
		if !ok {
			return nil, fmt.Errorf("unknown material %q (try 'goshaft materials')", name)
		}
		design.Material = mat
	}
	return &design, nil
}

// saveDesign writes the design back to a file, indented for hand editing.
func saveDesign(path string, design *model.Design) error {
	raw, err := json.MarshalIndent(design, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(raw, '\n'), 0644)
}
