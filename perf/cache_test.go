// perf/cache_test.go
// Copyright(c) 2024-2026 rwyperf contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package perf

import (
	"testing"
)

func TestEvalCache(t *testing.T) {
	m := NewModel(G1, PolynomialFit)
	c := NewEvalCache(16)

	in := testInput(5500, Flaps50)
	first := c.Evaluate(m, in)
	second := c.Evaluate(m, in)
	if first != second {
		t.Errorf("cache hit differs from original: %+v vs %+v", first, second)
	}

	// The cached result matches a direct evaluation.
	direct, _ := m.TakeoffDistance(in).Get()
	cached, _ := first.TakeoffDistance.Get()
	if cached != direct {
		t.Errorf("cached takeoff distance %.1f differs from direct %.1f", cached, direct)
	}

	// Different inputs must not collide.
	other := c.Evaluate(m, testInput(5800, Flaps50))
	a, _ := first.TakeoffDistance.Get()
	b, _ := other.TakeoffDistance.Get()
	if a == b {
		t.Errorf("distinct weights produced identical cached distances")
	}
}

func TestEvalCacheNil(t *testing.T) {
	m := NewModel(G2, TableFit)
	var c *EvalCache

	out := c.Evaluate(m, testInput(5500, Flaps50))
	if _, ok := out.TakeoffDistance.Get(); !ok {
		t.Errorf("nil cache evaluation not numeric: %s", out.TakeoffDistance)
	}
}

func TestEvalCacheKeySensitivity(t *testing.T) {
	// Models with different variants share a cache without collisions.
	c := NewEvalCache(16)
	in := testInput(5500, Flaps50)

	g1 := c.Evaluate(NewModel(G1, PolynomialFit), in)
	g2 := c.Evaluate(NewModel(G2, PolynomialFit), in)
	a, _ := g1.TakeoffDistance.Get()
	b, _ := g2.TakeoffDistance.Get()
	if a == b {
		t.Errorf("G1 and G2 cache entries collided: both %.1f", a)
	}
}
