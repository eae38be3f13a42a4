// perf/model.go
// Copyright(c) 2024-2026 rwyperf contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package perf

import (
	"fmt"

	"github.com/mstrasser/rwyperf/aviation"
	"github.com/mstrasser/rwyperf/wx"
)

// FlapSetting is the flap-deflection configuration. The two Ice settings
// select the ice-protection-active performance curves at the same
// deflection.
type FlapSetting int

const (
	FlapsUp FlapSetting = iota
	Flaps50
	Flaps100
	Flaps50Ice
	Flaps100Ice
)

func (f FlapSetting) String() string {
	return [...]string{"flaps up", "flaps 50", "flaps 100", "flaps 50 ice",
		"flaps 100 ice"}[f]
}

// Ice reports whether the setting is an ice-protection variant.
func (f FlapSetting) Ice() bool {
	return f == Flaps50Ice || f == Flaps100Ice
}

// deflIndex maps the setting to its deflection curve: 0 for the 50% curves,
// 1 for the 100% curves, -1 for flaps up (no landing curve defined).
func (f FlapSetting) deflIndex() int {
	switch f {
	case Flaps50, Flaps50Ice:
		return 0
	case Flaps100, Flaps100Ice:
		return 1
	default:
		return -1
	}
}

// Configuration is the aircraft loading state. Immutable; rebuilt whenever
// weight or flaps change.
type Configuration struct {
	WeightLb float32
	Flaps    FlapSetting
}

// SafetyFactors are the caller-supplied outermost distance multipliers.
// They are an explicit parameter of every evaluation, never ambient state;
// callers wanting a single factor set all three to the same value.
type SafetyFactors struct {
	Takeoff    float32
	LandingDry float32
	LandingWet float32
}

// UnitySafetyFactors applies no safety margin.
func UnitySafetyFactors() SafetyFactors {
	return SafetyFactors{Takeoff: 1, LandingDry: 1, LandingWet: 1}
}

// Variant selects the thrust-schedule generation.
type Variant int

const (
	G1 Variant = iota
	G2
)

func (v Variant) String() string {
	return [...]string{"G1", "G2"}[v]
}

// FitMethod selects how the flight-manual chart data is approximated: a
// closed-form polynomial regression or piecewise-linear interpolation over
// a sampled grid of the same data.
type FitMethod int

const (
	PolynomialFit FitMethod = iota
	TableFit
)

func (f FitMethod) String() string {
	return [...]string{"polynomial", "table"}[f]
}

// Input bundles the snapshotted inputs of a single model evaluation. NOTAM,
// when non-nil, takes precedence over the runway's own snapshot.
type Input struct {
	Conditions wx.Conditions
	Config     Configuration
	Runway     aviation.RunwayInput
	NOTAM      *aviation.NOTAMSnapshot
	Safety     SafetyFactors
}

func (in Input) notam() *aviation.NOTAMSnapshot {
	if in.NOTAM != nil {
		return in.NOTAM
	}
	return in.Runway.NOTAM
}

// Model computes the performance quantities for one aircraft variant and
// fit method. All methods are pure functions of their input; failures are
// expressed through the Value terminal states, never through errors.
type Model interface {
	TakeoffRoll(in Input) Value[float32]
	TakeoffDistance(in Input) Value[float32]
	LandingRoll(in Input) Value[float32]
	LandingDistance(in Input) Value[float32]
	ClimbGradient(in Input) Value[float32] // percent
	ClimbRate(in Input) Value[float32]     // ft/min
	Vref(in Input) Value[float32]          // knots

	// MeetsGoAroundClimb checks the configuration against the published
	// go-around climb exclusion boundaries.
	MeetsGoAroundClimb(in Input) bool

	Variant() Variant
	Fit() FitMethod
}

// NewModel returns the model for the given variant and fit method. The four
// combinations are interchangeable behind the Model interface.
func NewModel(v Variant, f FitMethod) Model {
	var data *variantData
	switch v {
	case G1:
		data = &g1Data
	case G2:
		data = &g2Data
	default:
		panic(fmt.Sprintf("unknown variant %d", v))
	}

	var fit baselineFit
	switch f {
	case PolynomialFit:
		fit = polyFit{data: data}
	case TableFit:
		fit = newTableFit(data)
	default:
		panic(fmt.Sprintf("unknown fit method %d", f))
	}

	return &perfModel{variant: v, fitMethod: f, data: data, fit: fit}
}

// quantity identifies a model output for baseline lookup and envelope
// classification.
type quantity int

const (
	qTakeoffRoll quantity = iota
	qTakeoffDistance
	qLandingRoll
	qLandingDistance
	qClimbGradient
	qClimbRate
	qVref
	numQuantities
)

func (q quantity) takeoff() bool {
	return q == qTakeoffRoll || q == qTakeoffDistance || q == qClimbGradient || q == qClimbRate
}

// baselineFit produces the uncorrected baseline for a quantity in terms of
// weight, pressure altitude and temperature (and, for landing quantities,
// the flap deflection curve).
type baselineFit interface {
	baseline(q quantity, defl int, weightLb, paFt, tempC float32) Value[float32]
}

type perfModel struct {
	variant   Variant
	fitMethod FitMethod
	data      *variantData
	fit       baselineFit
}

func (m *perfModel) Variant() Variant { return m.variant }
func (m *perfModel) Fit() FitMethod   { return m.fitMethod }

// evalEnv is the derived environment for one evaluation, computed once.
type evalEnv struct {
	weightLb float32
	paFt     float32
	tempC    float32
	headwind float32 // knots; negative is a tailwind
	notam    *aviation.NOTAMSnapshot
}

// prepare derives the evaluation environment. A non-KindValue result kind
// reports why the evaluation cannot proceed.
func (m *perfModel) prepare(in Input) (evalEnv, Kind) {
	if in.Config.WeightLb <= 0 || in.Runway.LengthFt <= 0 {
		return evalEnv{}, KindInvalid
	}
	slp, ok := in.Conditions.SeaLevelPressureHPa()
	if !ok {
		return evalEnv{}, KindNotAuthorized
	}
	temp, ok := in.Conditions.TemperatureAt(in.Runway.ElevationFt)
	if !ok {
		return evalEnv{}, KindNotAuthorized
	}
	hw, _ := aviation.WindComponents(in.Conditions.WindDir, in.Conditions.WindSpeed,
		in.Runway.TrueHeading)
	return evalEnv{
		weightLb: in.Config.WeightLb,
		paFt:     wx.PressureAltitude(in.Runway.ElevationFt, slp),
		tempC:    temp,
		headwind: hw,
		notam:    in.notam(),
	}, KindValue
}

// available reports whether the quantity is defined for the flap setting.
func (m *perfModel) available(q quantity, f FlapSetting) bool {
	if q.takeoff() {
		// Takeoff performance is published for the 50% deflection only.
		return f == Flaps50 || f == Flaps50Ice
	}
	// Landing quantities have no flaps-up model.
	return f.deflIndex() >= 0
}

// evaluate runs the full pipeline for a distance quantity: baseline, then
// wind, slope, surface, contamination and safety factor, in that order. The
// order is load-bearing: wind and slope factors are percentages of the
// uncorrected baseline, and the safety factor must scale the fully
// corrected distance.
func (m *perfModel) evaluate(q quantity, in Input) Value[float32] {
	env, kind := m.prepare(in)
	if kind != KindValue {
		return Value[float32]{kind: kind}
	}
	if !m.available(q, in.Config.Flaps) {
		return MakeNotAvailable[float32]()
	}
	if k := m.data.envelopeFor(q, in.Config.Flaps).classify(env.weightLb, env.paFt, env.tempC); k != KindValue {
		return Value[float32]{kind: k}
	}

	defl := in.Config.Flaps.deflIndex()
	base := m.fit.baseline(q, defl, env.weightLb, env.paFt, env.tempC)
	if base.IsTerminal() {
		return base
	}

	switch q {
	case qClimbGradient, qClimbRate:
		// Climb performance is a function of weight/altitude/temperature
		// only; no runway corrections apply.
		return base
	case qVref:
		if in.Config.Flaps.Ice() {
			base = base.Offset(m.data.iceVrefAddKt)
		}
		return base
	}

	landing := !q.takeoff()
	if landing && in.Config.Flaps.Ice() {
		// Published ice-protection ground-roll multiplier relative to the
		// non-ice curve at the same deflection. The total distance folds the
		// roll increment in, leaving the airborne segment unscaled.
		if q == qLandingRoll {
			base = base.Scale(iceGroundRollFactor)
		} else if roll := m.fit.baseline(qLandingRoll, defl, env.weightLb, env.paFt, env.tempC); !roll.IsTerminal() {
			rv, _ := roll.Get()
			base = base.Offset(rv * (iceGroundRollFactor - 1))
		}
	}

	d := base.Scale(m.windFactor(q, env))
	d = m.applySlope(q, d, in, env, defl)
	if in.Runway.Unpaved {
		d = d.Scale(m.data.unpavedFactor)
	}
	if landing && q == qLandingDistance {
		d = m.addContamination(d, in, env)
	}
	return d.Scale(m.safetyFactor(q, in, env))
}

func (m *perfModel) safetyFactor(q quantity, in Input, env evalEnv) float32 {
	if q.takeoff() {
		return in.Safety.Takeoff
	}
	if env.notam != nil && env.notam.Contamination != nil {
		return in.Safety.LandingWet
	}
	return in.Safety.LandingDry
}

func (m *perfModel) TakeoffRoll(in Input) Value[float32] {
	return m.evaluate(qTakeoffRoll, in)
}

func (m *perfModel) TakeoffDistance(in Input) Value[float32] {
	return m.evaluate(qTakeoffDistance, in)
}

func (m *perfModel) LandingRoll(in Input) Value[float32] {
	return m.evaluate(qLandingRoll, in)
}

func (m *perfModel) LandingDistance(in Input) Value[float32] {
	return m.evaluate(qLandingDistance, in)
}

func (m *perfModel) ClimbGradient(in Input) Value[float32] {
	return m.evaluate(qClimbGradient, in)
}

func (m *perfModel) ClimbRate(in Input) Value[float32] {
	return m.evaluate(qClimbRate, in)
}

func (m *perfModel) Vref(in Input) Value[float32] {
	return m.evaluate(qVref, in)
}
