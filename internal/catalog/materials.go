package catalog

import (
	"sort"

	"github.com/mecheng-tools/goshaft/internal/model"
)

// materials is the built-in shaft steel database. Strengths in Pa.
var materials = map[string]model.Material{
	"AISI 1020": {Name: "AISI 1020", Sy: 205e6, Sut: 380e6, E: 207e9},
	"AISI 1045": {Name: "AISI 1045", Sy: 310e6, Sut: 565e6, E: 207e9},
	"AISI 4140": {Name: "AISI 4140", Sy: 655e6, Sut: 1020e6, E: 207e9},
	"AISI 4340": {Name: "AISI 4340", Sy: 710e6, Sut: 1110e6, E: 207e9},
}

// DefaultMaterial is used when a design names no material.
const DefaultMaterial = "AISI 1020"

// GetMaterial looks up a material by name.
func GetMaterial(name string) (model.Material, bool) {
	m, ok := materials[name]
	return m, ok
}

// MaterialNames returns the database keys in sorted order.
func MaterialNames() []string {
	names := make([]string, 0, len(materials))
	for name := range materials {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
