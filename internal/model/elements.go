package model

// ElementKind identifies the machine element attached to a shaft node.
// The set is closed: rendering, load generation and diagram lookups all
// dispatch on the kind tag.
type ElementKind string

const (
	KindBearing  ElementKind = "bearing"
	KindSpurGear ElementKind = "gear"
	KindPulley   ElementKind = "pulley"
)

// Element is a machine element mounted on the shaft. Fields not relevant
// to a given kind are left at their zero value.
type Element struct {
	Kind ElementKind `json:"kind"`
	Name string      `json:"name"`

	// Bearing
	Width      float64 `json:"width,omitempty"`       // mm
	FixedAxial bool    `json:"fixed_axial,omitempty"` // locates the shaft axially

	// Gear / pulley
	Diameter float64 `json:"diameter,omitempty"` // pitch diameter, mm
	PowerKW  float64 `json:"power_kw,omitempty"`
	SpeedRPM float64 `json:"speed_rpm,omitempty"`

	// Manually specified loads acting at the element's node.
	Forces  []RadialForce `json:"forces,omitempty"`
	Torques []Torque      `json:"torques,omitempty"`
}

// IsBearing reports whether the element is a support bearing.
func (e *Element) IsBearing() bool {
	return e != nil && e.Kind == KindBearing
}

// Loads returns the forces and torques this element contributes to the
// shaft, positioned at pos. A gear with power and speed set transmits a
// mean torque of 9549.3·P/n N·m in addition to any manual loads.
func (e *Element) Loads(pos float64) ([]RadialForce, []Torque) {
	if e == nil {
		return nil, nil
	}

	forces := make([]RadialForce, 0, len(e.Forces))
	for _, f := range e.Forces {
		f.Position = pos
		forces = append(forces, f)
	}

	torques := make([]Torque, 0, len(e.Torques))
	for _, t := range e.Torques {
		t.Position = pos
		t.Normalize()
		torques = append(torques, t)
	}

	if e.Kind == KindSpurGear && e.PowerKW > 0 && e.SpeedRPM > 0 {
		// T = 60·P / (2π·n) = 9549.3·P[kW]/n[rpm]
		torques = append(torques, Torque{
			Name:     e.Name,
			Mean:     9549.3 * e.PowerKW / e.SpeedRPM,
			Position: pos,
		})
	}

	return forces, torques
}

// StressFeatureKind identifies a geometric stress raiser at a node.
type StressFeatureKind string

const (
	FeatureFillet StressFeatureKind = "fillet"
	FeatureKeyway StressFeatureKind = "keyway"
	FeatureGroove StressFeatureKind = "groove"
)

// StressFeature is a geometric feature causing local stress concentration.
// The fatigue concentration factors are user supplied.
type StressFeature struct {
	Kind      StressFeatureKind `json:"kind"`
	KfBending float64           `json:"kf_bending"` // Kf
	KfTorsion float64           `json:"kf_torsion"` // Kfs

	Radius float64 `json:"radius,omitempty"` // fillet radius, mm
	Width  float64 `json:"width,omitempty"`  // groove width, mm
	Depth  float64 `json:"depth,omitempty"`  // groove depth, mm
}

// Factors returns the bending and torsion concentration factors,
// substituting 1.0 for unset values.
func (sf *StressFeature) Factors() (kf, kfs float64) {
	kf, kfs = 1.0, 1.0
	if sf == nil {
		return kf, kfs
	}
	if sf.KfBending > 0 {
		kf = sf.KfBending
	}
	if sf.KfTorsion > 0 {
		kfs = sf.KfTorsion
	}
	return kf, kfs
}
