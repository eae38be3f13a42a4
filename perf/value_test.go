// perf/value_test.go
// Copyright(c) 2024-2026 rwyperf contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package perf

import (
	"testing"

	"github.com/mstrasser/rwyperf/math"
)

func TestMulQuadrature(t *testing.T) {
	testCases := []struct {
		v1, s1, v2, s2 float32
	}{
		{100, 5, 200, 8},
		{1500, 30, 1.21, 0.02},
		{50, 1, 50, 1},
		{3, 0.5, 7, 0.25},
	}
	for _, tc := range testCases {
		got := OfUncertain(tc.v1, tc.s1).Mul(OfUncertain(tc.v2, tc.s2))
		v, _ := got.Get()
		sigma, ok := got.Uncertainty()
		if !ok {
			t.Fatalf("product of uncertain values dropped uncertainty")
		}
		if math.Abs(v-tc.v1*tc.v2) > 1e-3*math.Abs(tc.v1*tc.v2) {
			t.Errorf("%g*%g = %g, want %g", tc.v1, tc.v2, v, tc.v1*tc.v2)
		}
		rel := math.Sqrt(math.Sqr(tc.s1/tc.v1) + math.Sqr(tc.s2/tc.v2))
		want := rel * tc.v1 * tc.v2
		if math.Abs(sigma-want) > 1e-3*want {
			t.Errorf("sigma = %g, want %g", sigma, want)
		}
	}
}

func TestMulByDefinite(t *testing.T) {
	got := OfUncertain[float32](100, 5).Mul(Of[float32](3))
	if sigma, ok := got.Uncertainty(); !ok || sigma != 15 {
		t.Errorf("sigma = %g (%v), want 15", sigma, ok)
	}

	got = OfUncertain[float32](100, 5).Scale(-2)
	v, _ := got.Get()
	sigma, _ := got.Uncertainty()
	if v != -200 || sigma != 10 {
		t.Errorf("Scale(-2) = %g±%g, want -200±10", v, sigma)
	}
}

func TestTerminalAbsorption(t *testing.T) {
	terminals := []Kind{KindInvalid, KindNotAuthorized, KindNotAvailable,
		KindOffscaleHigh, KindOffscaleLow}

	// Any combination with a terminal operand yields that terminal state.
	for _, k := range terminals {
		tv := MakeTerminal[float32](k)
		for _, other := range []Value[float32]{Of[float32](5), OfUncertain[float32](5, 1)} {
			for _, got := range []Value[float32]{tv.Mul(other), other.Mul(tv), tv.Add(other), other.Add(tv)} {
				if got.Kind() != k {
					t.Errorf("terminal %v absorbed into %v", k, got.Kind())
				}
			}
		}
	}

	// Two terminal operands resolve by priority order.
	for i, a := range terminals {
		for j, b := range terminals {
			got := MakeTerminal[float32](a).Mul(MakeTerminal[float32](b))
			want := terminals[min(i, j)]
			if got.Kind() != want {
				t.Errorf("%v x %v = %v, want %v", a, b, got.Kind(), want)
			}
		}
	}
}

func TestMapPanicsOnUncertain(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("Map on uncertain value did not panic")
		}
	}()
	Map(OfUncertain[float32](5, 1), func(v float32) float32 { return v * 2 })
}

func TestMapUncertain(t *testing.T) {
	got := MapUncertain(OfUncertain[float32](100, 10),
		func(v, sigma float32, has bool) (float32, float32, bool) {
			return v * 0.3048, sigma * 0.3048, has
		})
	v, _ := got.Get()
	sigma, ok := got.Uncertainty()
	if !ok || math.Abs(v-30.48) > 1e-4 || math.Abs(sigma-3.048) > 1e-4 {
		t.Errorf("got %g±%g (%v), want 30.48±3.048", v, sigma, ok)
	}

	// Dropping present uncertainty is a programmer error.
	defer func() {
		if recover() == nil {
			t.Errorf("dropping uncertainty did not panic")
		}
	}()
	MapUncertain(OfUncertain[float32](100, 10),
		func(v, sigma float32, has bool) (float32, float32, bool) {
			return v, 0, false
		})
}

func TestFlatMap(t *testing.T) {
	got := FlatMap(Of[float32](4), func(v float32) Value[float32] { return Of(v * v) })
	if v, _ := got.Get(); v != 16 {
		t.Errorf("FlatMap square = %g, want 16", v)
	}

	// Terminal passthrough.
	got = FlatMap(MakeOffscaleHigh[float32](), func(v float32) Value[float32] { return Of(v) })
	if got.Kind() != KindOffscaleHigh {
		t.Errorf("FlatMap terminal = %v, want offscale high", got.Kind())
	}

	// Uncertainty is dropped; f is responsible for re-deriving it.
	got = FlatMap(OfUncertain[float32](4, 1), func(v float32) Value[float32] { return Of(v) })
	if got.Kind() != KindValue {
		t.Errorf("FlatMap of uncertain = %v, want plain value", got.Kind())
	}
}

func TestWithinConfidence(t *testing.T) {
	v := OfUncertain[float32](100, 10)
	testCases := []struct {
		x     float32
		level float32
		want  bool
	}{
		{105, 0.68, true},
		{111, 0.68, false},
		{115, 0.95, true},
		{120, 0.95, false},
		{120, 0.99, true},
		{126, 0.99, false},
		{115, 0.90, false}, // snaps down to 0.68
	}
	for _, tc := range testCases {
		if got := v.WithinConfidence(tc.x, tc.level); got != tc.want {
			t.Errorf("WithinConfidence(%g, %g) = %v, want %v", tc.x, tc.level, got, tc.want)
		}
	}

	if MakeInvalid[float32]().WithinConfidence(0, 0.99) {
		t.Errorf("terminal value reported within confidence")
	}
	if !Of[float32](5).WithinConfidence(5, 0.68) || Of[float32](5).WithinConfidence(5.1, 0.99) {
		t.Errorf("definite value confidence should be exact match only")
	}
}
