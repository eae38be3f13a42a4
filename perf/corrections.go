// perf/corrections.go
// Copyright(c) 2024-2026 rwyperf contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package perf

import (
	"github.com/mstrasser/rwyperf/util"
)

// correctionParams are the per-variant wind and slope correction
// coefficients. Wind coefficients are the fractional distance change per
// knot; the *W terms make some of them linear functions of weight (per
// 1000 lb), matching the flight-manual tables. Slope coefficients are the
// fractional change per unit gradient.
type correctionParams struct {
	toRollHead, toRollHeadW, toRollTail float32
	toDistHead, toDistHeadW, toDistTail float32
	ldRollHead, ldRollHeadW, ldRollTail float32
	ldDistHead, ldDistHeadW, ldDistTail float32

	toSlopeUp, toSlopeDown float32 // takeoff: uphill penalty, downhill credit
	ldSlopeDown, ldSlopeUp float32 // landing: downhill penalty, uphill credit

	// slopeOnTotal folds the ground-roll slope correction into the total
	// distance before the airborne segment; when false, total distances
	// carry no slope correction at all.
	slopeOnTotal bool
}

// windFactor returns the multiplicative wind correction for the quantity:
// below one into a headwind, above one with a tailwind. Coefficients differ
// between ground-roll and total-distance quantities.
func (m *perfModel) windFactor(q quantity, env evalEnv) float32 {
	p := &m.data.corr
	wKlb := env.weightLb / 1000

	var head, tail float32
	switch q {
	case qTakeoffRoll:
		head, tail = p.toRollHead+p.toRollHeadW*wKlb, p.toRollTail
	case qTakeoffDistance:
		head, tail = p.toDistHead+p.toDistHeadW*wKlb, p.toDistTail
	case qLandingRoll:
		head, tail = p.ldRollHead+p.ldRollHeadW*wKlb, p.ldRollTail
	case qLandingDistance:
		head, tail = p.ldDistHead+p.ldDistHeadW*wKlb, p.ldDistTail
	default:
		return 1
	}

	if env.headwind >= 0 {
		// Strong headwinds never reduce the distance below a fifth of the
		// baseline; the published tables stop well before that.
		return max(1-head*env.headwind, 0.2)
	}
	return 1 + tail*(-env.headwind)
}

// slopeFactor returns the multiplicative runway-slope correction for a
// ground roll. Takeoff is penalized uphill; landing is penalized downhill;
// the credits for the favorable direction are smaller than the penalties.
func (m *perfModel) slopeFactor(takeoff bool, up, down float32) float32 {
	p := &m.data.corr
	if takeoff {
		return 1 + p.toSlopeUp*up - p.toSlopeDown*down
	}
	return 1 + p.ldSlopeDown*down - p.ldSlopeUp*up
}

// applySlope applies the slope correction: ground rolls are always
// corrected; total distances follow the variant's slopeOnTotal treatment.
func (m *perfModel) applySlope(q quantity, d Value[float32], in Input, env evalEnv, defl int) Value[float32] {
	sf := m.slopeFactor(q.takeoff(), in.Runway.UphillGradient(), in.Runway.DownhillGradient())
	switch q {
	case qTakeoffRoll, qLandingRoll:
		return d.Scale(sf)
	case qTakeoffDistance, qLandingDistance:
		if !m.data.corr.slopeOnTotal {
			return d
		}
		// Fold the slope delta into the ground-roll share of the total,
		// leaving the airborne segment uncorrected.
		rollQ := util.Select(q == qTakeoffDistance, qTakeoffRoll, qLandingRoll)
		roll := m.fit.baseline(rollQ, defl, env.weightLb, env.paFt, env.tempC)
		rv, ok := roll.Get()
		if !ok {
			return d
		}
		if rollQ == qLandingRoll && in.Config.Flaps.Ice() {
			rv *= iceGroundRollFactor
		}
		return d.Offset(rv * (sf - 1))
	default:
		return d
	}
}

// landingRollPreSafety is the landing ground roll corrected through the
// surface stage, before contamination and the safety factor; it is the
// argument of the contamination polynomial.
func (m *perfModel) landingRollPreSafety(in Input, env evalEnv, defl int) Value[float32] {
	base := m.fit.baseline(qLandingRoll, defl, env.weightLb, env.paFt, env.tempC)
	if base.IsTerminal() {
		return base
	}
	if in.Config.Flaps.Ice() {
		base = base.Scale(iceGroundRollFactor)
	}
	d := base.Scale(m.windFactor(qLandingRoll, env))
	d = d.Scale(m.slopeFactor(false, in.Runway.UphillGradient(), in.Runway.DownhillGradient()))
	if in.Runway.Unpaved {
		d = d.Scale(m.data.unpavedFactor)
	}
	return d
}

// contamCoeffs define the per-contamination-type distance increment as a
// second-order polynomial in (ground roll, depth):
// inc = (k0 + kd·d + kd2·d²)·roll + kr2·roll².
type contamCoeffs struct {
	k0, kd, kd2, kr2 float32
}

// addContamination adds the contamination-specific landing distance
// increment. Depth-free contamination types ignore the depth entirely.
func (m *perfModel) addContamination(d Value[float32], in Input, env evalEnv) Value[float32] {
	n := env.notam
	if n == nil || n.Contamination == nil {
		return d
	}
	roll := m.landingRollPreSafety(in, env, in.Config.Flaps.deflIndex())
	rv, ok := roll.Get()
	if !ok {
		return roll
	}

	c := n.Contamination
	cc := m.data.contam[c.Type]
	var depth float32
	if c.Type.HasDepth() {
		depth = c.DepthIn
	}
	inc := (cc.k0+cc.kd*depth+cc.kd2*depth*depth)*rv + cc.kr2*rv*rv
	return d.Offset(inc)
}
