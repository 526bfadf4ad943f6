// Package catalog holds the standard diameter series and the material
// database the sizing routines draw from.
package catalog

// StandardDiameters is the ascending series of preferred shaft diameters
// in mm, matching common bearing bore sizes.
var StandardDiameters = []float64{
	10, 12, 15, 17, 20, 25, 30, 35, 40, 45, 50, 55, 60, 65, 70, 75, 80, 85, 90, 95, 100,
}

// RoundUp returns the smallest standard diameter >= d, or the catalog
// maximum when d exceeds the series. Idempotent: RoundUp(RoundUp(d))
// equals RoundUp(d).
func RoundUp(d float64) float64 {
	for _, std := range StandardDiameters {
		if std >= d {
			return std
		}
	}
	return StandardDiameters[len(StandardDiameters)-1]
}

// NextStandard steps to the adjacent standard diameter above (stepUp) or
// below the current one, saturating at the ends of the series. Used for
// initial parameterization only; actual sizing comes from the fatigue
// analysis.
func NextStandard(current float64, stepUp bool) float64 {
	if stepUp {
		for _, std := range StandardDiameters {
			if std > current {
				return std
			}
		}
		return current
	}
	for i := len(StandardDiameters) - 1; i >= 0; i-- {
		if StandardDiameters[i] < current {
			return StandardDiameters[i]
		}
	}
	return current
}
