// math/heading.go
// Copyright(c) 2024-2026 rwyperf contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package math

// NormalizeHeading returns the heading remapped to [0,360).
func NormalizeHeading(h float32) float32 {
	if h < 0 {
		return 360 - NormalizeHeading(-h)
	}
	return Mod(h, 360)
}

// OppositeHeading returns the reciprocal of the given heading.
func OppositeHeading(h float32) float32 {
	return NormalizeHeading(h + 180)
}

// HeadingDifference returns the minimum angular distance between the two
// headings; the result is always between 0 and 180.
func HeadingDifference(a float32, b float32) float32 {
	var d float32
	if a > b {
		d = a - b
	} else {
		d = b - a
	}
	if d > 180 {
		d = 360 - d
	}
	return d
}

// HeadingSignedTurn returns the signed angle from heading a to heading b,
// in (-180,180], where positive is a turn to the right.
func HeadingSignedTurn(a, b float32) float32 {
	d := NormalizeHeading(b - a)
	if d > 180 {
		d -= 360
	}
	return d
}
