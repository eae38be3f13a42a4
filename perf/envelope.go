// perf/envelope.go
// Copyright(c) 2024-2026 rwyperf contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package perf

// envelope is the validated input range of a chart family. Inputs outside
// it yield an offscale state in the direction of the violation; the model
// never returns both a number and an offscale tag.
type envelope struct {
	wtMin, wtMax float32 // lb
	paMin, paMax float32 // ft
	tMin, tMax   float32 // Celsius
}

// classify checks the inputs against the envelope, weight first, then
// pressure altitude, then temperature.
func (e envelope) classify(weightLb, paFt, tempC float32) Kind {
	switch {
	case weightLb < e.wtMin:
		return KindOffscaleLow
	case weightLb > e.wtMax:
		return KindOffscaleHigh
	case paFt < e.paMin:
		return KindOffscaleLow
	case paFt > e.paMax:
		return KindOffscaleHigh
	case tempC < e.tMin:
		return KindOffscaleLow
	case tempC > e.tMax:
		return KindOffscaleHigh
	default:
		return KindValue
	}
}

// envelopeFor returns the validated range for a quantity: takeoff and
// landing chart families differ in weight range, and the ice-protection
// curves are only published up to a lower temperature limit.
func (d *variantData) envelopeFor(q quantity, f FlapSetting) envelope {
	var e envelope
	switch {
	case q == qVref:
		e = d.vrefEnv
	case q.takeoff():
		e = d.takeoffEnv
	default:
		e = d.landingEnv
	}
	if f.Ice() && e.tMax > d.iceTempMaxC {
		e.tMax = d.iceTempMaxC
	}
	return e
}
