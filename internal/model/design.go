package model

import "sort"

// FeatureKind identifies an entry in a design's feature list.
type FeatureKind string

const (
	FeatureShoulder FeatureKind = "shoulder"
	FeatureGear     FeatureKind = "gear"
	FeaturePulley   FeatureKind = "pulley"
)

// Feature is one entry of the flat feature list a shaft is built from.
// A shoulder changes the diameter from its position onward; gears and
// pulleys mount an element and may carry manual loads.
type Feature struct {
	ID       string      `json:"id"`
	Kind     FeatureKind `json:"kind"`
	Position float64     `json:"position"` // mm

	// Shoulder: diameter to the right of the feature, mm.
	Diameter float64 `json:"diameter,omitempty"`

	// Gear / pulley properties.
	PitchDiameter float64       `json:"pitch_diameter,omitempty"` // mm
	Width         float64       `json:"width,omitempty"`          // mm
	PowerKW       float64       `json:"power_kw,omitempty"`
	SpeedRPM      float64       `json:"speed_rpm,omitempty"`
	Forces        []RadialForce `json:"forces,omitempty"`
	Torques       []Torque      `json:"torques,omitempty"`

	Stress *StressFeature `json:"stress,omitempty"`
}

// Design is the flat, serializable description of a shaft: global
// dimensions, material, bearing positions, the feature list and the
// shaft-level loads. Build turns it into a Shaft; the optimizer mutates
// only StartDiameter and shoulder diameters between iterations.
type Design struct {
	Name          string   `json:"name,omitempty"`
	TotalLength   float64  `json:"total_length"`   // mm
	StartDiameter float64  `json:"start_diameter"` // mm
	Material      Material `json:"material"`

	BearingA float64 `json:"bearing_a"` // mm
	BearingB float64 `json:"bearing_b"` // mm

	Features []Feature     `json:"features,omitempty"`
	Forces   []RadialForce `json:"forces,omitempty"`
	Torques  []Torque      `json:"torques,omitempty"`
}

// Shoulders returns the shoulder features sorted by position.
func (d *Design) Shoulders() []*Feature {
	var shoulders []*Feature
	for i := range d.Features {
		if d.Features[i].Kind == FeatureShoulder {
			shoulders = append(shoulders, &d.Features[i])
		}
	}
	sort.Slice(shoulders, func(i, j int) bool {
		return shoulders[i].Position < shoulders[j].Position
	})
	return shoulders
}

// Build constructs a Shaft from the design. It is a pure function of its
// input: repeated calls with the same design produce equivalent shafts,
// and the analysis cycle rebuilds wholesale rather than patching.
func Build(d Design) *Shaft {
	s := NewShaft()
	s.Material = d.Material

	start := d.StartDiameter
	if start <= 0 {
		start = defaultDiameter
	}
	s.AddNode(Node{Position: 0, DiameterLeft: start, DiameterRight: start})

	features := make([]Feature, len(d.Features))
	copy(features, d.Features)
	sort.Slice(features, func(i, j int) bool {
		return features[i].Position < features[j].Position
	})

	current := start
	for i := range features {
		f := &features[i]
		switch f.Kind {
		case FeatureShoulder:
			next := f.Diameter
			if next <= 0 {
				next = current
			}
			s.AddNode(Node{
				Position:      f.Position,
				DiameterLeft:  current,
				DiameterRight: next,
				Stress:        f.Stress,
			})
			current = next
		case FeatureGear, FeaturePulley:
			s.AddNode(Node{
				Position:      f.Position,
				DiameterLeft:  current,
				DiameterRight: current,
				Element:       f.element(),
				Stress:        f.Stress,
			})
		}
	}

	if d.TotalLength > 0 {
		s.AddNode(Node{
			Position:      d.TotalLength,
			DiameterLeft:  current,
			DiameterRight: current,
		})
	}

	posB := d.BearingB
	if posB <= 0 {
		posB = d.TotalLength
	}
	s.AddNode(Node{Position: d.BearingA, Element: &Element{Kind: KindBearing, Name: "Bearing A"}})
	s.AddNode(Node{Position: posB, Element: &Element{Kind: KindBearing, Name: "Bearing B"}})

	s.Forces = append(s.Forces, d.Forces...)
	for _, t := range d.Torques {
		t.Normalize()
		s.Torques = append(s.Torques, t)
	}
	return s
}

// element builds the machine element for a gear or pulley feature.
func (f *Feature) element() *Element {
	kind := KindSpurGear
	name := f.ID
	if f.Kind == FeaturePulley {
		kind = KindPulley
		if name == "" {
			name = "Pulley"
		}
	} else if name == "" {
		name = "Gear"
	}
	return &Element{
		Kind:     kind,
		Name:     name,
		Width:    f.Width,
		Diameter: f.PitchDiameter,
		PowerKW:  f.PowerKW,
		SpeedRPM: f.SpeedRPM,
		Forces:   f.Forces,
		Torques:  f.Torques,
	}
}
