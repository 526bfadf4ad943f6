package fatigue

// DefaultDiameterGuess is the assumed diameter (mm) for the size factor
// when the true diameter is not yet known. The size factor depends on the
// final diameter, so unless the caller re-solves with an updated guess
// this stays a one-shot approximation.
const DefaultDiameterGuess = 50.0

// Config carries the fatigue-factor configuration supplied by the caller.
type Config struct {
	Surface     SurfaceFinish `json:"surface"`
	Reliability string        `json:"reliability"` // e.g. "99%"
	Temperature float64       `json:"temperature"` // °C
	Kf          float64       `json:"kf"`          // miscellaneous factor, default 1.0
}

// DefaultConfig is a machined shaft at room temperature, 99 % reliability.
func DefaultConfig() Config {
	return Config{Surface: Machined, Reliability: "99%", Temperature: 20, Kf: 1.0}
}

// UncorrectedLimit returns Se', the rotating-beam endurance limit
// estimate: half of Sut up to 1400 MPa, a fixed 700 MPa above. Sut in Pa.
func UncorrectedLimit(sut float64) float64 {
	if sut <= 1400e6 {
		return 0.5 * sut
	}
	return 700e6
}

// Factors is the per-factor breakdown of a Marin correction.
type Factors struct {
	SePrime float64 // Pa
	Ka      float64
	Kb      float64
	Kc      float64
	Kd      float64
	Ke      float64
	Kf      float64
	Se      float64 // Pa
}

// EnduranceFactors computes the corrected endurance limit
// Se = ka·kb·kc·kd·ke·kf·Se' and returns every factor alongside the
// result. Sut in Pa, diameter in mm.
func EnduranceFactors(sut, diameter float64, load LoadType, cfg Config) Factors {
	if diameter <= 0 {
		diameter = DefaultDiameterGuess
	}
	kfMisc := cfg.Kf
	if kfMisc <= 0 {
		kfMisc = 1.0
	}

	f := Factors{
		SePrime: UncorrectedLimit(sut),
		Ka:      SurfaceFactor(sut, cfg.Surface),
		Kb:      SizeFactor(load, diameter),
		Kc:      LoadFactor(load),
		Kd:      TemperatureFactor(cfg.Temperature),
		Ke:      ReliabilityFactor(cfg.Reliability),
		Kf:      kfMisc,
	}
	f.Se = f.Ka * f.Kb * f.Kc * f.Kd * f.Ke * f.Kf * f.SePrime
	return f
}

// EnduranceLimit returns the corrected endurance limit Se in Pa.
func EnduranceLimit(sut, diameter float64, load LoadType, cfg Config) float64 {
	return EnduranceFactors(sut, diameter, load, cfg).Se
}
