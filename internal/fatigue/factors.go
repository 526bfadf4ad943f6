// Package fatigue estimates corrected endurance limits via the Marin
// equation and sizes shaft diameters against the generalized ASME-elliptic
// failure criterion.
package fatigue

import "math"

// SurfaceFinish selects the surface factor coefficients.
type SurfaceFinish string

const (
	Ground     SurfaceFinish = "ground"
	Machined   SurfaceFinish = "machined"
	ColdRolled SurfaceFinish = "cold-rolled"
	HotRolled  SurfaceFinish = "hot-rolled"
	Forged     SurfaceFinish = "forged"
)

// LoadType selects the size and load factors.
type LoadType string

const (
	Bending LoadType = "bending"
	Axial   LoadType = "axial"
	Torsion LoadType = "torsion"
)

// surfaceCoeffs holds the (a, b) pairs of ka = a·Sut^b with Sut in MPa.
var surfaceCoeffs = map[SurfaceFinish][2]float64{
	Ground:     {1.58, -0.085},
	Machined:   {4.51, -0.265},
	ColdRolled: {4.51, -0.265},
	HotRolled:  {57.7, -0.718},
	Forged:     {272.0, -0.995},
}

// SurfaceFactor returns ka = a·Sut^b for the given finish, with Sut in Pa.
// Unknown finishes fall back to the machined coefficients.
func SurfaceFactor(sut float64, finish SurfaceFinish) float64 {
	coeffs, ok := surfaceCoeffs[finish]
	if !ok {
		coeffs = surfaceCoeffs[Machined]
	}
	sutMPa := sut / 1e6
	return coeffs[0] * math.Pow(sutMPa, coeffs[1])
}

// SizeFactor returns kb for a solid round section of diameter d (mm).
// Bending and torsion follow the piecewise power law; axial loading has
// no size effect. Below the tabulated range the value is clamped at
// d = 2.79 mm; above 254 mm a conservative 0.6 applies.
func SizeFactor(load LoadType, d float64) float64 {
	if load != Bending && load != Torsion {
		return 1.0
	}
	switch {
	case d < 2.79:
		return 1.24 * math.Pow(2.79, -0.107)
	case d <= 51:
		return 1.24 * math.Pow(d, -0.107)
	case d <= 254:
		return 1.51 * math.Pow(d, -0.157)
	default:
		return 0.6
	}
}

// LoadFactor returns kc for the load type; unknown types default to 1.0.
func LoadFactor(load LoadType) float64 {
	switch load {
	case Bending:
		return 1.0
	case Axial:
		return 0.85
	case Torsion:
		return 0.59
	}
	return 1.0
}

// tempTable holds kd at the canonical test temperatures (°C).
var tempTable = map[int]float64{
	20:  1.0,
	50:  1.010,
	100: 1.020,
	150: 1.025,
	200: 1.020,
	250: 1.0,
	300: 0.975,
	350: 0.943,
	400: 0.900,
	450: 0.843,
	500: 0.768,
	550: 0.672,
	600: 0.549,
}

// TemperatureFactor returns kd for a temperature in °C: the exact table
// value at a canonical temperature, otherwise a 4th-order polynomial
// approximation clamped to [0.1, 1.025].
func TemperatureFactor(tc float64) float64 {
	if kd, ok := tempTable[int(tc)]; ok && tc == math.Trunc(tc) {
		return kd
	}

	kd := 0.9877 + 0.6507e-3*tc - 0.3414e-5*tc*tc + 0.562e-8*tc*tc*tc - 6.246e-12*tc*tc*tc*tc
	if kd > 1.025 {
		kd = 1.025
	}
	if kd < 0.1 {
		kd = 0.1
	}
	return kd
}

// reliabilityTable maps a reliability percentage to ke.
var reliabilityTable = map[string]float64{
	"50%":       1.0,
	"90%":       0.897,
	"95%":       0.868,
	"99%":       0.814,
	"99.9%":     0.753,
	"99.99%":    0.702,
	"99.999%":   0.659,
	"99.9999%":  0.620,
}

// ReliabilityFactor returns ke for a reliability percentage string,
// defaulting to the 99 % value for unmatched keys.
func ReliabilityFactor(reliability string) float64 {
	if ke, ok := reliabilityTable[reliability]; ok {
		return ke
	}
	return 0.814
}
