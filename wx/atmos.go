// wx/atmos.go
// Copyright(c) 2024-2026 rwyperf contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package wx

import (
	"github.com/mstrasser/rwyperf/math"
)

const (
	ISATemperatureC        = 15.04
	ISASeaLevelPressureHPa = 1013.25

	FeetToMeters = 0.3048
	HPaToInHg    = 0.02953
)

// ISATemperatureAt returns the standard-atmosphere temperature in Celsius
// at the given altitude, using the tropospheric lapse rate.
func ISATemperatureAt(altFt float32) float32 {
	return ISATemperatureC - 0.001978152*altFt
}

// StationPressure returns the actual pressure in hPa at the given elevation
// given the sea-level pressure, via the barometric formula in the hPa
// domain.
func StationPressure(elevM, slpHPa float32) float32 {
	return slpHPa * math.Pow(1+elevM*(-0.0000225616), 5.25143)
}

// PressureAltitude returns the pressure altitude in feet for a field at the
// given elevation under the given sea-level pressure: the altitude in the
// standard atmosphere at which the station pressure would be found.
func PressureAltitude(elevFt, slpHPa float32) float32 {
	station := StationPressure(elevFt*FeetToMeters, slpHPa)
	return 145366.45 * (1 - math.Pow(station/ISASeaLevelPressureHPa, 0.190284))
}

// DensityAltitude returns the density altitude in feet at the given field
// elevation, using the NWS dry-air approximation. The pressure term is the
// station pressure derived from the sea-level pressure, not the raw
// altimeter setting. Returns false if the conditions don't carry enough
// information.
func DensityAltitude(elevFt float32, c Conditions) (float32, bool) {
	slp, ok := c.SeaLevelPressureHPa()
	if !ok {
		return 0, false
	}
	tempC, ok := c.TemperatureAt(elevFt)
	if !ok {
		return 0, false
	}

	pInHg := StationPressure(elevFt*FeetToMeters, slp) * HPaToInHg
	tempF := tempC*9/5 + 32
	da := 145442.16 * (1 - math.Pow(17.326*pInHg/(459.67+tempF), 0.235))
	return da, true
}
