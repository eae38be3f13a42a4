// perf/solver.go
// Copyright(c) 2024-2026 rwyperf contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package perf

import (
	"github.com/mstrasser/rwyperf/aviation"
	"github.com/mstrasser/rwyperf/math"
	"github.com/mstrasser/rwyperf/wx"
)

// LimitingFactor explains why a weight bound was chosen.
type LimitingFactor int

const (
	// LimitAFM: the flight-manual chart boundary itself.
	LimitAFM LimitingFactor = iota
	// LimitFieldLength: required distance exceeds the available runway.
	LimitFieldLength
	// LimitObstacle: obstacle-clearance climb gradient shortfall.
	LimitObstacle
	// LimitClimb: go-around or climb-gradient requirement shortfall.
	LimitClimb
)

func (l LimitingFactor) String() string {
	return [...]string{"AFM limit", "field length", "obstacle clearance",
		"climb gradient"}[l]
}

// DefaultWeightIncrementLb is the solver's weight quantum.
const DefaultWeightIncrementLb = 50

// DefaultMinClimbGradientPct is the minimum takeoff climb gradient required
// when the caller doesn't specify one (200 ft/nm, roughly 3.3%).
const DefaultMinClimbGradientPct = 3.3

// SearchMaxWeight finds the highest weight in [minLb, maxLb], quantized to
// incrementLb, for which isValid holds. The search assumes validity is
// monotonically non-increasing in weight. It returns the best valid weight
// (zero if none) and the limiting factor from the last failing probe; if
// every probe succeeded the weight ceiling itself is the limit and the
// default AFM factor is returned.
func SearchMaxWeight(minLb, maxLb, incrementLb float32,
	isValid func(weightLb float32) (bool, LimitingFactor)) (float32, LimitingFactor) {
	if incrementLb <= 0 {
		incrementLb = DefaultWeightIncrementLb
	}
	low := math.Ceil(minLb/incrementLb) * incrementLb
	high := math.Floor(maxLb/incrementLb) * incrementLb

	var best float32
	factor := LimitAFM
	for low <= high {
		mid := math.Floor((low+high)/2/incrementLb) * incrementLb
		if ok, f := isValid(mid); ok {
			best = mid
			low = mid + incrementLb
		} else {
			factor = f
			high = mid - incrementLb
		}
	}
	return best, factor
}

// RunwayOracle returns a solver validity oracle for the given model and
// inputs. The checks run in a fixed priority order — chart boundary, field
// length, obstacle clearance, climb — so that when a weight violates
// several constraints at once the reported factor is the most fundamental
// one.
func RunwayOracle(m Model, conds wx.Conditions, cfg Configuration, rwy aviation.RunwayInput,
	sf SafetyFactors, takeoff bool, minClimbGradientPct float32) func(float32) (bool, LimitingFactor) {
	if minClimbGradientPct <= 0 {
		minClimbGradientPct = DefaultMinClimbGradientPct
	}

	return func(weightLb float32) (bool, LimitingFactor) {
		in := Input{
			Conditions: conds,
			Config:     Configuration{WeightLb: weightLb, Flaps: cfg.Flaps},
			Runway:     rwy,
			Safety:     sf,
		}

		var dist Value[float32]
		var availFt float32
		if takeoff {
			dist = m.TakeoffDistance(in)
			availFt = rwy.TORA()
		} else {
			dist = m.LandingDistance(in)
			availFt = rwy.LDA()
		}
		if n := rwy.NOTAM; n != nil {
			if takeoff {
				availFt -= n.TakeoffShorteningFt
			} else {
				availFt -= n.LandingShorteningFt
			}
		}

		d, ok := dist.Get()
		if !ok {
			return false, LimitAFM
		}
		if d > availFt {
			return false, LimitFieldLength
		}

		if takeoff {
			if n := rwy.NOTAM; n != nil && n.ObstacleHeightFt > 0 && n.ObstacleDistanceFt > 0 {
				roll, rollOK := m.TakeoffRoll(in).Get()
				grad, gradOK := m.ClimbGradient(in).Get()
				if !rollOK || !gradOK {
					return false, LimitObstacle
				}
				climbOver := n.ObstacleDistanceFt - roll
				if climbOver <= 0 || grad < 100*n.ObstacleHeightFt/climbOver {
					return false, LimitObstacle
				}
			}
			if grad, ok := m.ClimbGradient(in).Get(); !ok || grad < minClimbGradientPct {
				return false, LimitClimb
			}
		} else if !m.MeetsGoAroundClimb(in) {
			return false, LimitClimb
		}

		return true, LimitAFM
	}
}
