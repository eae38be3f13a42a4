// aviation/runway_test.go
// Copyright(c) 2024-2026 rwyperf contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package aviation

import (
	"slices"
	"testing"

	"github.com/mstrasser/rwyperf/math"
)

func TestRunwayIDOrdering(t *testing.T) {
	ids := []RunwayID{"27", "9R", "9", "9C", "9L"}
	slices.SortFunc(ids, RunwayID.Compare)

	want := []RunwayID{"9", "9L", "9C", "9R", "27"}
	if !slices.Equal(ids, want) {
		t.Errorf("sorted runways = %v, want %v", ids, want)
	}
}

func TestRunwayIDCompare(t *testing.T) {
	testCases := []struct {
		a, b RunwayID
		less bool
	}{
		{"1", "36", true},
		{"9", "9L", true},
		{"9L", "9C", true},
		{"9C", "9R", true},
		{"18", "18", false},
		{"36R", "36L", false},
	}
	for _, tc := range testCases {
		if got := tc.a.Compare(tc.b) < 0; got != tc.less {
			t.Errorf("Compare(%q, %q) < 0 = %v, want %v", tc.a, tc.b, got, tc.less)
		}
	}
}

func TestDeclaredDistanceFallbacks(t *testing.T) {
	tora := float32(5500)
	r := MakeRunwayInput(RunwaySpec{Id: "14", LengthFt: 6000, TORAFt: &tora})
	if got := r.TORA(); got != 5500 {
		t.Errorf("TORA = %g, want declared 5500", got)
	}
	if got := r.TODA(); got != 6000 {
		t.Errorf("TODA = %g, want length fallback 6000", got)
	}
	if got := r.LDA(); got != 6000 {
		t.Errorf("LDA = %g, want length fallback 6000", got)
	}
}

func TestGradientEstimate(t *testing.T) {
	elev, opp := float32(1000), float32(1060)
	r := MakeRunwayInput(RunwaySpec{
		Id:                     "31",
		ElevationFt:            &elev,
		OppositeEndElevationFt: &opp,
		LengthFt:               6000,
	})
	if math.Abs(r.Gradient-0.01) > 1e-6 {
		t.Errorf("estimated gradient = %g, want 0.01", r.Gradient)
	}
	if got := r.UphillGradient(); got != r.Gradient {
		t.Errorf("UphillGradient = %g, want %g", got, r.Gradient)
	}
	if got := r.DownhillGradient(); got != 0 {
		t.Errorf("DownhillGradient = %g, want 0", got)
	}

	// Declared gradient wins over the estimate.
	decl := float32(-0.005)
	r = MakeRunwayInput(RunwaySpec{
		Id: "13", ElevationFt: &elev, OppositeEndElevationFt: &opp,
		LengthFt: 6000, Gradient: &decl,
	})
	if r.Gradient != -0.005 {
		t.Errorf("gradient = %g, want declared -0.005", r.Gradient)
	}
	if got := r.DownhillGradient(); got != 0.005 {
		t.Errorf("DownhillGradient = %g, want 0.005", got)
	}
}

func TestWindComponents(t *testing.T) {
	fp := func(v float32) *float32 { return &v }

	testCases := []struct {
		name       string
		dir, speed *float32
		heading    float32
		hw, xw     float32
		tol        float32
	}{
		{"calm", nil, nil, 90, 0, 0, 0},
		{"variable", nil, fp(5), 90, 0, 0, 0},
		{"direct headwind", fp(90), fp(10), 90, 10, 0, 0.01},
		{"direct tailwind", fp(270), fp(10), 90, -10, 0, 0.01},
		{"right crosswind", fp(180), fp(10), 90, 0, 10, 0.01},
		{"quartering", fp(135), fp(10), 90, 7.07, 7.07, 0.01},
	}
	for _, tc := range testCases {
		hw, xw := WindComponents(tc.dir, tc.speed, tc.heading)
		if math.Abs(hw-tc.hw) > tc.tol || math.Abs(xw-tc.xw) > tc.tol {
			t.Errorf("%s: components = (%g, %g), want (%g, %g)", tc.name, hw, xw, tc.hw, tc.xw)
		}
	}
}

func TestNOTAMSnapshotIsEmpty(t *testing.T) {
	var n *NOTAMSnapshot
	if !n.IsEmpty() {
		t.Errorf("nil snapshot should be empty")
	}
	if !(&NOTAMSnapshot{}).IsEmpty() {
		t.Errorf("zero snapshot should be empty")
	}
	if (&NOTAMSnapshot{TakeoffShorteningFt: 500}).IsEmpty() {
		t.Errorf("snapshot with shortening should not be empty")
	}
	if (&NOTAMSnapshot{Contamination: &Contamination{Type: DrySnow}}).IsEmpty() {
		t.Errorf("snapshot with contamination should not be empty")
	}
}

func TestNOTAMSnapshotIndependence(t *testing.T) {
	src := &NOTAMSnapshot{Contamination: &Contamination{Type: WaterSlush, DepthIn: 0.25}}
	r := MakeRunwayInput(RunwaySpec{Id: "9", LengthFt: 5000, NOTAM: src})

	// Mutating the live source after snapshotting must not be observable.
	src.Contamination.DepthIn = 2
	src.TakeoffShorteningFt = 1000

	if r.NOTAM.Contamination.DepthIn != 0.25 {
		t.Errorf("snapshot depth = %g, want 0.25", r.NOTAM.Contamination.DepthIn)
	}
	if r.NOTAM.TakeoffShorteningFt != 0 {
		t.Errorf("snapshot shortening = %g, want 0", r.NOTAM.TakeoffShorteningFt)
	}
}
