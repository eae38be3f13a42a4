// wx/conditions.go
// Copyright(c) 2024-2026 rwyperf contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package wx

import (
	"fmt"

	"github.com/mstrasser/rwyperf/util"
)

// ConditionsSource records where a set of atmospheric conditions came from;
// it is carried along so that downstream consumers can distinguish observed
// weather from forecasts and fallbacks.
type ConditionsSource int

const (
	SourceObserved ConditionsSource = iota
	SourceForecast
	SourcePlatformWeather
	SourceAugmented // merged from multiple sources
	SourceStandardAtmosphere
	SourceUserEntered
)

func (s ConditionsSource) String() string {
	return [...]string{"observed", "forecast", "platform weather", "augmented",
		"standard atmosphere", "user entered"}[s]
}

// Conditions is an immutable snapshot of the atmospheric state used for a
// calculation. Missing measurements are nil; a nil WindDir with a non-nil
// WindSpeed indicates variable winds.
type Conditions struct {
	WindDir          *float32 // true degrees, nil for variable/calm
	WindSpeed        *float32 // knots
	Temperature      *float32 // Celsius
	Dewpoint         *float32 // Celsius
	SeaLevelPressure *float32 // hPa
	Valid            util.TimeInterval
	Source           ConditionsSource
}

// StandardConditions returns ISA sea-level conditions: 15.04C, 1013.25 hPa,
// calm wind.
func StandardConditions() Conditions {
	t := float32(ISATemperatureC)
	p := float32(ISASeaLevelPressureHPa)
	z := float32(0)
	return Conditions{
		Temperature:      &t,
		SeaLevelPressure: &p,
		WindSpeed:        &z,
		Source:           SourceStandardAtmosphere,
	}
}

// FillMissingFrom returns a copy of c where fields that c is missing are
// taken from o. Present fields are never overwritten. Wind is treated as a
// single field: it is taken from o only if c has no wind speed at all. If
// anything was filled in, the result is tagged as merged.
func (c Conditions) FillMissingFrom(o Conditions) Conditions {
	filled := false
	if c.WindSpeed == nil && o.WindSpeed != nil {
		c.WindSpeed = o.WindSpeed
		c.WindDir = o.WindDir
		filled = true
	}
	if c.Temperature == nil && o.Temperature != nil {
		c.Temperature = o.Temperature
		filled = true
	}
	if c.Dewpoint == nil && o.Dewpoint != nil {
		c.Dewpoint = o.Dewpoint
		filled = true
	}
	if c.SeaLevelPressure == nil && o.SeaLevelPressure != nil {
		c.SeaLevelPressure = o.SeaLevelPressure
		filled = true
	}
	if filled {
		c.Source = SourceAugmented
	}
	return c
}

// Override returns a copy of c where every field present in o replaces the
// corresponding field of c; this is the user-override merge and the result
// is always tagged as user entered.
func (c Conditions) Override(o Conditions) Conditions {
	if o.WindSpeed != nil {
		c.WindSpeed = o.WindSpeed
		c.WindDir = o.WindDir
	}
	if o.Temperature != nil {
		c.Temperature = o.Temperature
	}
	if o.Dewpoint != nil {
		c.Dewpoint = o.Dewpoint
	}
	if o.SeaLevelPressure != nil {
		c.SeaLevelPressure = o.SeaLevelPressure
	}
	c.Source = SourceUserEntered
	return c
}

// TemperatureAt returns the temperature to use at the given altitude. A
// measured temperature is returned directly. For standard-atmosphere
// conditions the stored temperature is the sea-level value of a lapsed
// profile, so the ISA lapse-rate temperature at the altitude is shifted by
// the deviation from ISA; adjusting the temperature (a what-if delta, an
// override) therefore shifts the whole profile rather than being ignored.
// The second return value is false if no temperature can be determined.
func (c Conditions) TemperatureAt(altFt float32) (float32, bool) {
	if c.Source == SourceStandardAtmosphere {
		var dev float32
		if c.Temperature != nil {
			dev = *c.Temperature - ISATemperatureC
		}
		return ISATemperatureAt(altFt) + dev, true
	}
	if c.Temperature != nil {
		return *c.Temperature, true
	}
	return 0, false
}

// SeaLevelPressureHPa returns the sea-level pressure, falling back to the
// ISA standard for standard-atmosphere conditions. The second return value
// is false if no pressure can be determined.
func (c Conditions) SeaLevelPressureHPa() (float32, bool) {
	if c.SeaLevelPressure != nil {
		return *c.SeaLevelPressure, true
	}
	if c.Source == SourceStandardAtmosphere {
		return ISASeaLevelPressureHPa, true
	}
	return 0, false
}

func (c Conditions) String() string {
	wind := "calm"
	if c.WindSpeed != nil && *c.WindSpeed > 0 {
		if c.WindDir != nil {
			wind = fmt.Sprintf("%03d at %d", int(*c.WindDir), int(*c.WindSpeed))
		} else {
			wind = fmt.Sprintf("VRB at %d", int(*c.WindSpeed))
		}
	}
	s := "Wind " + wind
	if c.Temperature != nil {
		s += fmt.Sprintf(", temp %.1fC", *c.Temperature)
	}
	if c.Dewpoint != nil {
		s += fmt.Sprintf(", dewpoint %.1fC", *c.Dewpoint)
	}
	if c.SeaLevelPressure != nil {
		s += fmt.Sprintf(", pressure %.1f hPa", *c.SeaLevelPressure)
	}
	return s + " (" + c.Source.String() + ")"
}
