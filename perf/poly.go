// perf/poly.go
// Copyright(c) 2024-2026 rwyperf contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package perf

// polyCoeffs is one closed-form regression fit of a flight-manual chart:
// a quadratic in weight scaled by quadratic pressure-altitude and
// temperature-deviation factors, with a weight-dependent altitude
// sensitivity. Weight is in 1000 lb, altitude in 1000 ft and the
// temperature term is the deviation from 15C.
type polyCoeffs struct {
	wt  [3]float32 // wt[0] + wt[1]·W + wt[2]·W²
	pa  float32    // altitude sensitivity per 1000 ft
	paW float32    // weight-dependent part of the altitude sensitivity
	pa2 float32    // quadratic altitude term
	dt  float32    // temperature sensitivity per degree above ISA
	dt2 float32    // quadratic temperature term
}

func (p *polyCoeffs) eval(weightLb, paFt, tempC float32) float32 {
	w := weightLb / 1000
	a := paFt / 1000
	dt := tempC - 15

	base := p.wt[0] + p.wt[1]*w + p.wt[2]*w*w
	alt := 1 + (p.pa+p.paW*w)*a + p.pa2*a*a
	temp := 1 + p.dt*dt + p.dt2*dt*dt
	return base * alt * temp
}

// coeffsFor returns the fit coefficients for the quantity; landing and
// Vref quantities select the deflection-specific curve.
func (d *variantData) coeffsFor(q quantity, defl int) *polyCoeffs {
	switch q {
	case qTakeoffRoll:
		return &d.takeoffRoll
	case qTakeoffDistance:
		return &d.takeoffDistance
	case qLandingRoll:
		return &d.landingRoll[defl]
	case qLandingDistance:
		return &d.landingDistance[defl]
	case qClimbGradient:
		return &d.climbGradient
	case qClimbRate:
		return &d.climbRate
	case qVref:
		return &d.vref[defl]
	default:
		panic("unknown quantity")
	}
}

// polyFit evaluates the regression fit directly. The fit's residual against
// the underlying chart data is carried as a relative one-sigma uncertainty
// on every result.
type polyFit struct {
	data *variantData
}

func (p polyFit) baseline(q quantity, defl int, weightLb, paFt, tempC float32) Value[float32] {
	v := p.data.coeffsFor(q, defl).eval(weightLb, paFt, tempC)
	if rel := p.data.sigmaRel[q]; rel > 0 {
		sigma := rel * v
		if sigma < 0 {
			sigma = -sigma
		}
		return OfUncertain(v, sigma)
	}
	return Of(v)
}
