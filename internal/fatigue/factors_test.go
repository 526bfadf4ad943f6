package fatigue

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSurfaceFactor(t *testing.T) {
	// Machined, Sut = 565 MPa: ka = 4.51·565^-0.265.
	assert.InDelta(t, 4.51*math.Pow(565, -0.265), SurfaceFactor(565e6, Machined), 1e-9)

	// Cold-rolled shares the machined coefficients.
	assert.Equal(t, SurfaceFactor(565e6, Machined), SurfaceFactor(565e6, ColdRolled))

	// Ground beats machined, hot-rolled and forged fall below it.
	ka := func(f SurfaceFinish) float64 { return SurfaceFactor(565e6, f) }
	assert.Greater(t, ka(Ground), ka(Machined))
	assert.Less(t, ka(HotRolled), ka(Machined))
	assert.Less(t, ka(Forged), ka(HotRolled))

	// Unknown finish falls back to machined.
	assert.Equal(t, ka(Machined), SurfaceFactor(565e6, SurfaceFinish("polished")))
}

func TestSizeFactor(t *testing.T) {
	assert.InDelta(t, 1.24*math.Pow(30, -0.107), SizeFactor(Bending, 30), 1e-9)
	assert.InDelta(t, 1.51*math.Pow(100, -0.157), SizeFactor(Bending, 100), 1e-9)
	assert.InDelta(t, 0.8617, SizeFactor(Bending, 30), 1e-4)
	assert.InDelta(t, 0.7328, SizeFactor(Bending, 100), 1e-4)

	// Clamped below the tabulated range, conservative above it.
	assert.Equal(t, SizeFactor(Bending, 2.79), SizeFactor(Bending, 1))
	assert.Equal(t, 0.6, SizeFactor(Bending, 300))

	// Torsion uses the same law, axial has no size effect.
	assert.Equal(t, SizeFactor(Bending, 30), SizeFactor(Torsion, 30))
	assert.Equal(t, 1.0, SizeFactor(Axial, 30))
}

func TestLoadFactor(t *testing.T) {
	assert.Equal(t, 1.0, LoadFactor(Bending))
	assert.Equal(t, 0.85, LoadFactor(Axial))
	assert.Equal(t, 0.59, LoadFactor(Torsion))
	assert.Equal(t, 1.0, LoadFactor(LoadType("shock")))
}

func TestTemperatureFactor(t *testing.T) {
	// Canonical temperatures come straight from the table.
	assert.Equal(t, 1.0, TemperatureFactor(20))
	assert.Equal(t, 0.975, TemperatureFactor(300))
	assert.Equal(t, 0.549, TemperatureFactor(600))

	// In-between temperatures use the polynomial fit.
	assert.InDelta(t, 1.0213, TemperatureFactor(175), 1e-3)

	// Extreme temperatures clamp.
	assert.Equal(t, 0.1, TemperatureFactor(1000))
	assert.LessOrEqual(t, TemperatureFactor(120), 1.025)
}

func TestReliabilityFactor(t *testing.T) {
	assert.Equal(t, 1.0, ReliabilityFactor("50%"))
	assert.Equal(t, 0.814, ReliabilityFactor("99%"))
	assert.Equal(t, 0.753, ReliabilityFactor("99.9%"))
	assert.Equal(t, 0.620, ReliabilityFactor("99.9999%"))
	assert.Equal(t, 0.814, ReliabilityFactor("hopefully"))
}

func TestUncorrectedLimit(t *testing.T) {
	assert.Equal(t, 190e6, UncorrectedLimit(380e6))
	assert.Equal(t, 700e6, UncorrectedLimit(1400e6))
	assert.Equal(t, 700e6, UncorrectedLimit(2000e6))
}

func TestEnduranceFactorsProduct(t *testing.T) {
	f := EnduranceFactors(565e6, 50, Bending, DefaultConfig())

	assert.InDelta(t, f.Ka*f.Kb*f.Kc*f.Kd*f.Ke*f.Kf*f.SePrime, f.Se, 1)
	assert.Equal(t, 282.5e6, f.SePrime)
	assert.Equal(t, 1.0, f.Kc)
	assert.Equal(t, 1.0, f.Kd)
	assert.Equal(t, 0.814, f.Ke)
	assert.Equal(t, 1.0, f.Kf)

	// Machined 565 MPa steel at d = 50 mm lands near 158 MPa.
	assert.InDelta(t, 157.8e6, f.Se, 0.5e6)
}

func TestEnduranceFactorsDefaults(t *testing.T) {
	// Non-positive diameter and kf fall back to their defaults.
	f := EnduranceFactors(565e6, 0, Bending, Config{Surface: Machined, Reliability: "99%", Temperature: 20})
	ref := EnduranceFactors(565e6, DefaultDiameterGuess, Bending, DefaultConfig())
	assert.Equal(t, ref.Se, f.Se)
}
