// wx/conditions_test.go
// Copyright(c) 2024-2026 rwyperf contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package wx

import "testing"

func fp(v float32) *float32 { return &v }

func TestStandardConditions(t *testing.T) {
	c := StandardConditions()
	if c.Source != SourceStandardAtmosphere {
		t.Errorf("source = %v, want standard atmosphere", c.Source)
	}
	if c.Temperature == nil || *c.Temperature != 15.04 {
		t.Errorf("temperature = %v, want 15.04", c.Temperature)
	}
	if c.SeaLevelPressure == nil || *c.SeaLevelPressure != 1013.25 {
		t.Errorf("pressure = %v, want 1013.25", c.SeaLevelPressure)
	}
	if c.WindSpeed == nil || *c.WindSpeed != 0 {
		t.Errorf("wind speed = %v, want 0", c.WindSpeed)
	}
}

func TestFillMissingFrom(t *testing.T) {
	base := Conditions{Temperature: fp(22), Source: SourceObserved}
	other := Conditions{
		Temperature:      fp(10),
		Dewpoint:         fp(5),
		SeaLevelPressure: fp(1020),
		WindDir:          fp(270),
		WindSpeed:        fp(8),
		Source:           SourceForecast,
	}

	merged := base.FillMissingFrom(other)
	if *merged.Temperature != 22 {
		t.Errorf("present temperature overwritten: got %g", *merged.Temperature)
	}
	if merged.Dewpoint == nil || *merged.Dewpoint != 5 {
		t.Errorf("dewpoint not filled: %v", merged.Dewpoint)
	}
	if merged.WindDir == nil || *merged.WindDir != 270 || *merged.WindSpeed != 8 {
		t.Errorf("wind not filled: %v %v", merged.WindDir, merged.WindSpeed)
	}
	if merged.Source != SourceAugmented {
		t.Errorf("source = %v, want augmented", merged.Source)
	}

	// Base objects untouched
	if base.Dewpoint != nil || base.Source != SourceObserved {
		t.Errorf("base conditions mutated: %+v", base)
	}

	// Nothing to fill: source unchanged
	full := other.FillMissingFrom(base)
	if full.Source != SourceForecast {
		t.Errorf("source = %v, want forecast when nothing filled", full.Source)
	}
}

func TestTemperatureAt(t *testing.T) {
	// Standard atmosphere lapses with altitude.
	std := StandardConditions()
	if got, ok := std.TemperatureAt(0); !ok || got != 15.04 {
		t.Errorf("standard temperature at sea level = %g (%v), want 15.04", got, ok)
	}
	if got, _ := std.TemperatureAt(10000); got >= 0 {
		t.Errorf("standard temperature at 10000 ft = %g, want below 0", got)
	}

	// Shifting a standard-atmosphere temperature shifts the whole profile.
	hot := StandardConditions()
	*hot.Temperature += 20
	if got, _ := hot.TemperatureAt(0); got != 35.04 {
		t.Errorf("shifted standard temperature at sea level = %g, want 35.04", got)
	}
	base, _ := std.TemperatureAt(5000)
	if got, _ := hot.TemperatureAt(5000); got != base+20 {
		t.Errorf("shifted standard temperature at 5000 ft = %g, want %g", got, base+20)
	}

	// A measured temperature is returned directly, independent of altitude.
	obs := Conditions{Temperature: fp(28), Source: SourceObserved}
	if got, ok := obs.TemperatureAt(5000); !ok || got != 28 {
		t.Errorf("observed temperature = %g (%v), want 28", got, ok)
	}

	// No temperature and no standard-atmosphere fallback: no answer.
	if _, ok := (Conditions{Source: SourceObserved}).TemperatureAt(0); ok {
		t.Errorf("expected no temperature for empty observed conditions")
	}
}

func TestOverride(t *testing.T) {
	base := Conditions{Temperature: fp(22), SeaLevelPressure: fp(1013), Source: SourceObserved}
	over := base.Override(Conditions{Temperature: fp(30)})
	if *over.Temperature != 30 {
		t.Errorf("temperature = %g, want 30", *over.Temperature)
	}
	if *over.SeaLevelPressure != 1013 {
		t.Errorf("pressure = %g, want 1013", *over.SeaLevelPressure)
	}
	if over.Source != SourceUserEntered {
		t.Errorf("source = %v, want user entered", over.Source)
	}
}
