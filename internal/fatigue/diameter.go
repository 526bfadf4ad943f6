package fatigue

import "math"

// DiameterInput collects the local load state and strengths for a
// minimum-diameter evaluation. Moments and torques in N·m as magnitudes;
// Se and Sy in Pa. Non-positive Se or Sy is a caller error and is not
// validated here.
type DiameterInput struct {
	Ma float64 // alternating bending moment
	Mm float64 // mean bending moment
	Ta float64 // alternating torque
	Tm float64 // mean torque

	Kf  float64 // bending concentration factor, default 1.0
	Kfs float64 // torsion concentration factor, default 1.0

	N  float64 // target safety factor
	Se float64 // corrected endurance limit
	Sy float64 // yield strength
}

// MinDiameter returns the minimum solid-shaft diameter (mm) satisfying
// the generalized ASME-elliptic fatigue criterion:
//
//	A  = √(4(Kf·Ma)² + 3(Kfs·Ta)²)
//	B  = √(4(Kf·Mm)² + 3(Kfs·Tm)²)
//	d³ = (16n/π)·√((A/Se)² + (B/Sy)²)
//
// With Mm = Ta = 0 this degenerates to the classical fully reversed
// bending / steady torque case.
func MinDiameter(in DiameterInput) float64 {
	kf := in.Kf
	if kf <= 0 {
		kf = 1.0
	}
	kfs := in.Kfs
	if kfs <= 0 {
		kfs = 1.0
	}

	a := math.Sqrt(4*math.Pow(kf*in.Ma, 2) + 3*math.Pow(kfs*in.Ta, 2))
	b := math.Sqrt(4*math.Pow(kf*in.Mm, 2) + 3*math.Pow(kfs*in.Tm, 2))

	cubed := (16 * in.N / math.Pi) * math.Sqrt(math.Pow(a/in.Se, 2)+math.Pow(b/in.Sy, 2))
	return math.Cbrt(cubed) * 1000 // m → mm
}

// SafetyFactor inverts the ASME-elliptic criterion for an existing
// diameter d (mm), returning the achieved safety factor. Inputs as for
// MinDiameter; returns +Inf when the load terms vanish.
func SafetyFactor(in DiameterInput, d float64) float64 {
	kf := in.Kf
	if kf <= 0 {
		kf = 1.0
	}
	kfs := in.Kfs
	if kfs <= 0 {
		kfs = 1.0
	}

	a := math.Sqrt(4*math.Pow(kf*in.Ma, 2) + 3*math.Pow(kfs*in.Ta, 2))
	b := math.Sqrt(4*math.Pow(kf*in.Mm, 2) + 3*math.Pow(kfs*in.Tm, 2))

	dM := d / 1000
	denom := (16 / (math.Pi * dM * dM * dM)) * math.Sqrt(math.Pow(a/in.Se, 2)+math.Pow(b/in.Sy, 2))
	if denom == 0 {
		return math.Inf(1)
	}
	return 1 / denom
}
