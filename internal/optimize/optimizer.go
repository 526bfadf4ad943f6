// Package optimize sizes the diameter zones of a shaft design until the
// target fatigue safety factor is met everywhere, rounding to catalog
// diameters.
package optimize

import (
	"fmt"
	"math"

	"github.com/mecheng-tools/goshaft/internal/catalog"
	"github.com/mecheng-tools/goshaft/internal/fatigue"
	"github.com/mecheng-tools/goshaft/internal/model"
	"github.com/mecheng-tools/goshaft/internal/statics"
)

// diameterTol is the minimum change (mm) considered an actual update.
const diameterTol = 1e-3

// startZone keys the zone governed by the start diameter rather than a
// shoulder feature.
const startZone = -1

// Options configure an optimization run.
type Options struct {
	SafetyFactor  float64
	MaxIterations int
	NumPoints     int
	Fatigue       fatigue.Config
}

// DefaultOptions returns the standard run configuration.
func DefaultOptions() Options {
	return Options{
		SafetyFactor:  2.0,
		MaxIterations: 5,
		NumPoints:     statics.DefaultNumPoints,
		Fatigue:       fatigue.DefaultConfig(),
	}
}

// Result reports the outcome of an optimization run. Success is false
// only when the statics solver could not produce any samples; stopping at
// the iteration cap with outstanding deltas is still a success, visible
// through the log.
type Result struct {
	Success    bool
	Iterations int
	Log        []string
	Message    string
}

// Run iterates statics analysis and fatigue sizing on the design until no
// diameter zone changes or the iteration cap is reached. The design's
// StartDiameter and shoulder diameters are updated in place; positions,
// loads and total length are never touched. The shaft is rebuilt from the
// feature list before every iteration.
func Run(design *model.Design, opts Options) Result {
	if opts.SafetyFactor <= 0 {
		opts.SafetyFactor = 2.0
	}
	if opts.MaxIterations <= 0 {
		opts.MaxIterations = 5
	}

	result := Result{Success: true}

	for iter := 0; iter < opts.MaxIterations; iter++ {
		result.Iterations = iter + 1

		shaft := model.Build(*design)
		diagrams := statics.CalculateDiagrams(shaft, opts.NumPoints)
		if diagrams.Empty() {
			return Result{
				Success:    false,
				Iterations: iter + 1,
				Log:        result.Log,
				Message:    "analysis failed to run: shaft has no solvable geometry",
			}
		}

		sut := shaft.Material.Sut
		sy := shaft.Material.Sy
		if sut <= 0 || sy <= 0 {
			fallback, _ := catalog.GetMaterial(catalog.DefaultMaterial)
			sut, sy = fallback.Sut, fallback.Sy
		}

		shoulders := design.Shoulders()

		// Maximum rounded requirement per zone, keyed by the governing
		// shoulder's index in the sorted shoulder list (startZone for the
		// span before the first shoulder). Shoulder IDs are user input and
		// may be empty or duplicated, so they cannot serve as keys.
		zoneReq := make(map[int]float64)
		var zoneOrder []int

		for _, seg := range shaft.Segments() {
			ma, mm, ta, tm, any := maxLoadsInSpan(diagrams, seg.Start.Position, seg.End.Position)
			if !any {
				continue
			}

			kf, kfs := seg.Start.Stress.Factors()
			se := fatigue.EnduranceLimit(sut, seg.Diameter(), fatigue.Bending, opts.Fatigue)
			required := fatigue.MinDiameter(fatigue.DiameterInput{
				Ma: ma, Mm: mm, Ta: ta, Tm: tm,
				Kf: kf, Kfs: kfs,
				N:  opts.SafetyFactor,
				Se: se,
				Sy: sy,
			})
			suggested := catalog.RoundUp(required)

			zone := controllingZone(shoulders, seg.Start.Position)
			if _, seen := zoneReq[zone]; !seen {
				zoneOrder = append(zoneOrder, zone)
				zoneReq[zone] = suggested
			} else if suggested > zoneReq[zone] {
				zoneReq[zone] = suggested
			}
		}

		changed := false
		for _, zone := range zoneOrder {
			required := zoneReq[zone]
			if zone == startZone {
				if math.Abs(design.StartDiameter-required) > diameterTol {
					result.Log = append(result.Log,
						fmt.Sprintf("Start segments: %g -> %g mm", design.StartDiameter, required))
					design.StartDiameter = required
					changed = true
				}
				continue
			}
			f := shoulders[zone]
			if math.Abs(f.Diameter-required) > diameterTol {
				result.Log = append(result.Log,
					fmt.Sprintf("Shoulder @ %g mm: %g -> %g mm", f.Position, f.Diameter, required))
				f.Diameter = required
				changed = true
			}
		}

		if !changed {
			break
		}
	}
	return result
}

// maxLoadsInSpan returns the maximum absolute alternating/mean moment
// (converted N·mm → N·m) and torque among the samples falling inside
// [start, end]. any is false when no sample lies in the span.
func maxLoadsInSpan(d statics.Diagrams, start, end float64) (ma, mm, ta, tm float64, any bool) {
	for i, x := range d.X {
		if x < start || x > end {
			continue
		}
		any = true
		ma = math.Max(ma, math.Abs(d.Ma[i])/1000)
		mm = math.Max(mm, math.Abs(d.Mm[i])/1000)
		ta = math.Max(ta, math.Abs(d.Ta[i]))
		tm = math.Max(tm, math.Abs(d.Tm[i]))
	}
	return ma, mm, ta, tm, any
}

// controllingZone finds the shoulder governing the diameter at pos: the
// index of the last shoulder at or before pos, or startZone when pos
// lies before every shoulder.
func controllingZone(shoulders []*model.Feature, pos float64) int {
	zone := startZone
	for i, s := range shoulders {
		if s.Position <= pos+1e-5 {
			zone = i
		} else {
			break
		}
	}
	return zone
}
