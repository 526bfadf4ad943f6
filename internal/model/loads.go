package model

import "math"

// RadialForce is a point force in the shaft's transverse (YZ) plane.
// In a rotating shaft a static radial force produces a fully reversed
// bending stress cycle, so its entire bending contribution is alternating.
type RadialForce struct {
	Name      string  `json:"name,omitempty"`
	Magnitude float64 `json:"magnitude"` // N
	Angle     float64 `json:"angle"`     // degrees, 0 = +Y, 90 = +Z
	Position  float64 `json:"position"`  // mm
}

// Fy returns the vertical component of the force.
func (f RadialForce) Fy() float64 {
	return f.Magnitude * math.Cos(f.Angle*math.Pi/180)
}

// Fz returns the horizontal component of the force.
func (f RadialForce) Fz() float64 {
	return f.Magnitude * math.Sin(f.Angle*math.Pi/180)
}

// Torque is a twisting load applied at a position along the shaft.
// Power transmission gives a steady (mean) torque; start/stop or
// reciprocating drives add an alternating component.
type Torque struct {
	Name        string  `json:"name,omitempty"`
	Magnitude   float64 `json:"magnitude,omitempty"` // N·m, legacy single-value input
	Alternating float64 `json:"alternating"`         // N·m
	Mean        float64 `json:"mean"`                // N·m
	Position    float64 `json:"position"`            // mm
}

// Normalize resolves the legacy single-magnitude form: a magnitude with no
// explicit mean component is treated as mean torque.
func (t *Torque) Normalize() {
	if t.Magnitude != 0 && t.Mean == 0 {
		t.Mean = t.Magnitude
	}
	t.Magnitude = t.Mean
}
