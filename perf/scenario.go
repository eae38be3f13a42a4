// perf/scenario.go
// Copyright(c) 2024-2026 rwyperf contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package perf

import (
	"fmt"
	"strings"

	"github.com/mstrasser/rwyperf/aviation"
	"github.com/mstrasser/rwyperf/math"
	"github.com/mstrasser/rwyperf/wx"
)

// Scenario is a named bundle of what-if deltas and overrides applied to the
// base conditions, configuration and runway before a model evaluation. The
// zero Scenario is the identity.
type Scenario struct {
	Name          string
	DeltaTempC    float32
	DeltaWindKt   float32
	DeltaWeightLb float32

	// Flaps, when non-nil, replaces the configuration's flap setting.
	Flaps *FlapSetting

	// Contamination replaces the runway's contamination outright; ForceDry
	// clears it. The two are mutually exclusive in effect: a contamination
	// override wins over ForceDry.
	Contamination *aviation.Contamination
	ForceDry      bool
}

// IsZero reports whether the scenario adjusts nothing.
func (s Scenario) IsZero() bool {
	return s.DeltaTempC == 0 && s.DeltaWindKt == 0 && s.DeltaWeightLb == 0 &&
		s.Flaps == nil && s.Contamination == nil && !s.ForceDry
}

// Apply returns new conditions, configuration and runway with the
// scenario's deltas applied; the base values are never mutated.
func (s Scenario) Apply(c wx.Conditions, cfg Configuration, rwy aviation.RunwayInput) (wx.Conditions, Configuration, aviation.RunwayInput) {
	if s.DeltaTempC != 0 && c.Temperature != nil {
		t := *c.Temperature + s.DeltaTempC
		c.Temperature = &t
	}

	if s.DeltaWindKt != 0 {
		var speed float32
		if c.WindSpeed != nil {
			speed = *c.WindSpeed
		}
		speed += s.DeltaWindKt
		if speed < 0 {
			// The wind crossed through zero: what was a headwind component
			// is now a tailwind of the same magnitude.
			speed = -speed
			if c.WindDir != nil {
				d := math.OppositeHeading(*c.WindDir)
				c.WindDir = &d
			}
		}
		c.WindSpeed = &speed
	}

	cfg.WeightLb += s.DeltaWeightLb
	if s.Flaps != nil {
		cfg.Flaps = *s.Flaps
	}

	if s.Contamination != nil || s.ForceDry {
		var n aviation.NOTAMSnapshot
		if rwy.NOTAM != nil {
			n = *rwy.NOTAM
		}
		if s.Contamination != nil {
			contam := *s.Contamination
			n.Contamination = &contam
		} else {
			n.Contamination = nil
		}
		rwy.NOTAM = &n
	}

	return c, cfg, rwy
}

// DisplayName returns the scenario's name, deriving one from its non-default
// adjustments if none was given. A scenario with no adjustments is the
// baseline "Forecast Conditions".
func (s Scenario) DisplayName() string {
	if s.Name != "" {
		return s.Name
	}
	if s.IsZero() {
		return "Forecast Conditions"
	}

	var parts []string
	if s.DeltaTempC != 0 {
		parts = append(parts, fmt.Sprintf("%+g°C", s.DeltaTempC))
	}
	if s.DeltaWindKt != 0 {
		parts = append(parts, fmt.Sprintf("%+g kt wind", s.DeltaWindKt))
	}
	if s.DeltaWeightLb != 0 {
		parts = append(parts, fmt.Sprintf("%+.0f lb", s.DeltaWeightLb))
	}
	if s.Flaps != nil {
		parts = append(parts, s.Flaps.String())
	}
	if s.Contamination != nil {
		c := *s.Contamination
		if c.Type.HasDepth() {
			parts = append(parts, fmt.Sprintf("%s %.2f in", c.Type, c.DepthIn))
		} else {
			parts = append(parts, c.Type.String())
		}
	} else if s.ForceDry {
		parts = append(parts, "dry runway")
	}
	return strings.Join(parts, ", ")
}
