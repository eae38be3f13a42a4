// aviation/runway.go
// Copyright(c) 2024-2026 rwyperf contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package aviation

import (
	"strconv"
	"strings"

	"github.com/mstrasser/rwyperf/math"
	"github.com/mstrasser/rwyperf/util"
)

// RunwayID identifies one direction of a physical runway, e.g. "9", "27L",
// "36C". Every physical runway contributes exactly two opposite-direction
// inputs whose headings differ by 180 degrees.
type RunwayID string

// Number returns the runway number, or -1 if the identifier is malformed.
func (id RunwayID) Number() int {
	s := strings.TrimRight(string(id), "LCR")
	n, err := strconv.Atoi(s)
	if err != nil {
		return -1
	}
	return n
}

// sideRank orders parallel-runway side letters: bare < L < C < R.
func (id RunwayID) sideRank() int {
	switch {
	case strings.HasSuffix(string(id), "L"):
		return 1
	case strings.HasSuffix(string(id), "C"):
		return 2
	case strings.HasSuffix(string(id), "R"):
		return 3
	default:
		return 0
	}
}

// Compare orders runway identifiers by number and then by side letter, so
// that "9" < "9L" < "9C" < "9R" < "27". Malformed identifiers sort after
// well-formed ones, by string.
func (id RunwayID) Compare(o RunwayID) int {
	an, bn := id.Number(), o.Number()
	if an == -1 || bn == -1 {
		if an != bn {
			return util.Select(an == -1, 1, -1)
		}
		return strings.Compare(string(id), string(o))
	}
	if an != bn {
		return an - bn
	}
	return id.sideRank() - o.sideRank()
}

// RunwaySpec carries the raw, possibly-incomplete description of a runway
// direction; MakeRunwayInput resolves the optional fields into a complete
// RunwayInput snapshot.
type RunwaySpec struct {
	Id                     string
	ElevationFt            *float32 // threshold elevation; nil falls back to airport elevation
	AirportElevationFt     float32
	TrueHeading            float32
	Gradient               *float32 // signed fraction; nil is estimated from the opposite end
	OppositeEndElevationFt *float32
	LengthFt               float32
	TORAFt                 *float32 // nil falls back to length
	TODAFt                 *float32
	LDAFt                  *float32
	Unpaved                bool
	NOTAM                  *NOTAMSnapshot
	MagneticVariation      float32
}

// RunwayInput is an immutable snapshot of one runway direction, complete
// after fallback resolution. It is a value type: callers snapshot it once
// per calculation and the engine never sees it change.
type RunwayInput struct {
	Id                RunwayID
	ElevationFt       float32
	TrueHeading       float32
	Gradient          float32 // signed fraction, positive uphill in this direction
	LengthFt          float32
	toraFt            float32 // 0 means undeclared
	todaFt            float32
	ldaFt             float32
	Unpaved           bool
	NOTAM             *NOTAMSnapshot
	MagneticVariation float32
}

// MakeRunwayInput resolves a RunwaySpec's optional fields: elevation falls
// back to the airport elevation, the gradient is estimated from the
// reciprocal end's elevation difference if not declared, and the NOTAM is
// snapshotted so later mutation of the source can't be observed.
func MakeRunwayInput(spec RunwaySpec) RunwayInput {
	r := RunwayInput{
		Id:                RunwayID(spec.Id),
		ElevationFt:       spec.AirportElevationFt,
		TrueHeading:       spec.TrueHeading,
		LengthFt:          spec.LengthFt,
		Unpaved:           spec.Unpaved,
		MagneticVariation: spec.MagneticVariation,
	}
	if spec.ElevationFt != nil {
		r.ElevationFt = *spec.ElevationFt
	}
	if spec.Gradient != nil {
		r.Gradient = *spec.Gradient
	} else if spec.OppositeEndElevationFt != nil && spec.LengthFt > 0 {
		r.Gradient = (*spec.OppositeEndElevationFt - r.ElevationFt) / spec.LengthFt
	}
	if spec.TORAFt != nil {
		r.toraFt = *spec.TORAFt
	}
	if spec.TODAFt != nil {
		r.todaFt = *spec.TODAFt
	}
	if spec.LDAFt != nil {
		r.ldaFt = *spec.LDAFt
	}
	if spec.NOTAM != nil {
		n := util.Snapshot(*spec.NOTAM)
		r.NOTAM = &n
	}
	return r
}

// TORA returns the declared takeoff run available, falling back to the
// total runway length.
func (r RunwayInput) TORA() float32 {
	return util.Select(r.toraFt > 0, r.toraFt, r.LengthFt)
}

// TODA returns the declared takeoff distance available, falling back to the
// total runway length.
func (r RunwayInput) TODA() float32 {
	return util.Select(r.todaFt > 0, r.todaFt, r.LengthFt)
}

// LDA returns the declared landing distance available, falling back to the
// total runway length.
func (r RunwayInput) LDA() float32 {
	return util.Select(r.ldaFt > 0, r.ldaFt, r.LengthFt)
}

// UphillGradient returns the uphill part of the gradient, zero if the
// runway slopes down. Correction formulas apply different penalties for up-
// and downslope, so the two are split.
func (r RunwayInput) UphillGradient() float32 {
	return max(r.Gradient, 0)
}

// DownhillGradient returns the magnitude of the downhill part of the
// gradient, zero if the runway slopes up.
func (r RunwayInput) DownhillGradient() float32 {
	return math.Abs(min(r.Gradient, 0))
}

// Contamination returns the runway's NOTAMed contamination, if any.
func (r RunwayInput) Contamination() *Contamination {
	if r.NOTAM == nil {
		return nil
	}
	return r.NOTAM.Contamination
}

// WindComponents decomposes the wind into the headwind and crosswind
// components relative to the given runway true heading. A nil direction
// (variable or calm wind) or nil speed yields zero components. A negative
// headwind is a tailwind; the crosswind sign is positive from the right.
func WindComponents(windDir, windSpeed *float32, rwyTrueHeading float32) (headwind, crosswind float32) {
	if windDir == nil || windSpeed == nil {
		return 0, 0
	}
	delta := math.Radians(*windDir - rwyTrueHeading)
	return *windSpeed * math.Cos(delta), *windSpeed * math.Sin(delta)
}
