// perf/table.go
// Copyright(c) 2024-2026 rwyperf contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package perf

import (
	"github.com/mstrasser/rwyperf/math"
)

// Sample grid covering the validated envelopes of both chart families with
// a little margin; envelope classification happens before lookup, so
// clamping at the edges only ever moves by rounding error.
var (
	tableWeights = axis(4500, 6000, 250)
	tablePAs     = axis(-1000, 10000, 1000)
	tableTemps   = axis(-40, 50, 10)
)

func axis(lo, hi, step float32) []float32 {
	var vals []float32
	for v := lo; v <= hi+step/2; v += step {
		vals = append(vals, v)
	}
	return vals
}

// bracket returns the index of the lower axis neighbor of x and the lerp
// parameter toward the upper one, clamped to the axis range.
func bracket(vals []float32, x float32) (int, float32) {
	if x <= vals[0] {
		return 0, 0
	}
	if x >= vals[len(vals)-1] {
		return len(vals) - 2, 1
	}
	for i := 1; i < len(vals); i++ {
		if x <= vals[i] {
			return i - 1, (x - vals[i-1]) / (vals[i] - vals[i-1])
		}
	}
	return len(vals) - 2, 1
}

// tableFit holds piecewise-linear interpolation grids sampled from the same
// underlying chart data as the regression fit. Table lookups return
// definite values: interpolation between published points carries no fit
// residual.
type tableFit struct {
	grids [numQuantities][2][]float32 // flattened weight × pa × temp
}

func newTableFit(data *variantData) *tableFit {
	t := &tableFit{}
	nw, np, nt := len(tableWeights), len(tablePAs), len(tableTemps)
	for q := quantity(0); q < numQuantities; q++ {
		ndefl := 1
		if q == qLandingRoll || q == qLandingDistance || q == qVref {
			ndefl = 2
		}
		for defl := 0; defl < ndefl; defl++ {
			c := data.coeffsFor(q, defl)
			grid := make([]float32, nw*np*nt)
			for iw, w := range tableWeights {
				for ip, pa := range tablePAs {
					for it, temp := range tableTemps {
						grid[(iw*np+ip)*nt+it] = c.eval(w, pa, temp)
					}
				}
			}
			t.grids[q][defl] = grid
		}
	}
	return t
}

func (t *tableFit) baseline(q quantity, defl int, weightLb, paFt, tempC float32) Value[float32] {
	if defl < 0 {
		defl = 0
	}
	grid := t.grids[q][defl]
	if grid == nil {
		grid = t.grids[q][0]
	}

	iw, fw := bracket(tableWeights, weightLb)
	ip, fp := bracket(tablePAs, paFt)
	it, ft := bracket(tableTemps, tempC)

	np, nt := len(tablePAs), len(tableTemps)
	at := func(iw, ip, it int) float32 { return grid[(iw*np+ip)*nt+it] }

	// Trilinear interpolation: temperature, then altitude, then weight.
	lerpT := func(iw, ip int) float32 { return math.Lerp(ft, at(iw, ip, it), at(iw, ip, it+1)) }
	lerpPT := func(iw int) float32 { return math.Lerp(fp, lerpT(iw, ip), lerpT(iw, ip+1)) }
	return Of(math.Lerp(fw, lerpPT(iw), lerpPT(iw+1)))
}
