// math/math_test.go
// Copyright(c) 2024-2026 rwyperf contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package math

import "testing"

func TestNormalizeHeading(t *testing.T) {
	testCases := []struct {
		h    float32
		want float32
	}{
		{0, 0},
		{360, 0},
		{365, 5},
		{-5, 355},
		{-185, 175},
		{725, 5},
	}
	for _, tc := range testCases {
		if got := NormalizeHeading(tc.h); got != tc.want {
			t.Errorf("NormalizeHeading(%g) = %g, want %g", tc.h, got, tc.want)
		}
	}
}

func TestHeadingDifference(t *testing.T) {
	testCases := []struct {
		a, b float32
		want float32
	}{
		{0, 0, 0},
		{10, 350, 20},
		{90, 270, 180},
		{180, 0, 180},
		{5, 355, 10},
	}
	for _, tc := range testCases {
		if got := HeadingDifference(tc.a, tc.b); got != tc.want {
			t.Errorf("HeadingDifference(%g, %g) = %g, want %g", tc.a, tc.b, got, tc.want)
		}
		if got := HeadingDifference(tc.b, tc.a); got != tc.want {
			t.Errorf("HeadingDifference(%g, %g) = %g, want %g", tc.b, tc.a, got, tc.want)
		}
	}
}

func TestDegreesRadians(t *testing.T) {
	testCases := []struct {
		deg, rad float32
	}{
		{0, 0},
		{180, 3.1415927},
		{90, 1.5707964},
		{-45, -0.7853982},
	}
	for _, tc := range testCases {
		if got := Radians(tc.deg); Abs(got-tc.rad) > 1e-6 {
			t.Errorf("Radians(%g) = %g, want %g", tc.deg, got, tc.rad)
		}
		if got := Degrees(tc.rad); Abs(got-tc.deg) > 1e-4 {
			t.Errorf("Degrees(%g) = %g, want %g", tc.rad, got, tc.deg)
		}
	}
}

func TestHeadingSignedTurn(t *testing.T) {
	testCases := []struct {
		a, b, want float32
	}{
		{0, 90, 90},
		{90, 0, -90},
		{350, 10, 20},
		{10, 350, -20},
		{180, 0, 180},
	}
	for _, tc := range testCases {
		if got := HeadingSignedTurn(tc.a, tc.b); got != tc.want {
			t.Errorf("HeadingSignedTurn(%g, %g) = %g, want %g", tc.a, tc.b, got, tc.want)
		}
		// The magnitude always matches the unsigned difference.
		if got := Abs(HeadingSignedTurn(tc.a, tc.b)); got != HeadingDifference(tc.a, tc.b) {
			t.Errorf("|HeadingSignedTurn(%g, %g)| = %g, want %g", tc.a, tc.b, got,
				HeadingDifference(tc.a, tc.b))
		}
	}
}

func TestClampLerp(t *testing.T) {
	if got := Clamp(5, 0, 3); got != 3 {
		t.Errorf("Clamp(5,0,3) = %d, want 3", got)
	}
	if got := Clamp(-1.5, float32(0), 3); got != 0 {
		t.Errorf("Clamp(-1.5,0,3) = %g, want 0", got)
	}
	if got := Lerp(0.5, 10, 20); got != 15 {
		t.Errorf("Lerp(0.5,10,20) = %g, want 15", got)
	}
}
