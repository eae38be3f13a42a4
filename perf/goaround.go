// perf/goaround.go
// Copyright(c) 2024-2026 rwyperf contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package perf

// gaExclusion is one published go-around climb exclusion boundary: the
// combination fails the check when weight, pressure altitude and
// temperature all reach their respective minimums simultaneously.
type gaExclusion struct {
	MinWeightLb float32
	MinPAFt     float32
	MinTempC    float32
}

func (g gaExclusion) excludes(weightLb, paFt, tempC float32) bool {
	return weightLb >= g.MinWeightLb && paFt >= g.MinPAFt && tempC >= g.MinTempC
}

// MeetsGoAroundClimb checks the configuration against the category-specific
// exclusion boundaries. The answer is conservative: configurations whose
// inputs can't be evaluated, fall outside the landing envelope, or have no
// landing flap curve never meet the requirement.
func (m *perfModel) MeetsGoAroundClimb(in Input) bool {
	env, kind := m.prepare(in)
	if kind != KindValue {
		return false
	}
	defl := in.Config.Flaps.deflIndex()
	if defl < 0 {
		return false
	}
	if m.data.envelopeFor(qLandingRoll, in.Config.Flaps).classify(env.weightLb, env.paFt, env.tempC) != KindValue {
		return false
	}

	ice := 0
	if in.Config.Flaps.Ice() {
		ice = 1
	}
	for _, excl := range m.data.goAround[defl][ice] {
		if excl.excludes(env.weightLb, env.paFt, env.tempC) {
			return false
		}
	}
	return true
}
