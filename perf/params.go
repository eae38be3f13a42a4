// perf/params.go
// Copyright(c) 2024-2026 rwyperf contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package perf

// Published ground-roll multiplier for the ice-protection landing curves
// relative to the non-ice curve at the same deflection.
const iceGroundRollFactor = 1.35

// variantData bundles everything that differs between the two
// thrust-schedule generations: chart-fit coefficients, correction
// coefficients, contamination polynomials, envelopes and go-around
// exclusion tables. The coefficients are fixed constants derived externally
// from flight-manual data; the engine never fits them itself.
type variantData struct {
	takeoffRoll     polyCoeffs
	takeoffDistance polyCoeffs
	landingRoll     [2]polyCoeffs // by deflection curve: 50%, 100%
	landingDistance [2]polyCoeffs
	climbGradient   polyCoeffs
	climbRate       polyCoeffs
	vref            [2]polyCoeffs

	// Relative one-sigma residual of the regression fit per quantity.
	sigmaRel [numQuantities]float32

	corr   correctionParams
	contam [4]contamCoeffs // indexed by aviation.ContaminationType

	takeoffEnv, landingEnv, vrefEnv envelope
	iceTempMaxC                     float32

	unpavedFactor float32
	iceVrefAddKt  float32

	// goAround[deflIndex][ice] are the published go-around climb exclusion
	// boundaries per category.
	goAround [2][2][]gaExclusion
}

// Contamination increment coefficients are shared between the generations;
// the landing gear and braking are identical.
var contamData = [4]contamCoeffs{
	{k0: 0.60, kd: 0.85, kd2: -0.18, kr2: 2.0e-5}, // standing water/slush
	{k0: 0.45, kd: 0.65, kd2: -0.12, kr2: 1.6e-5}, // slush/wet snow
	{k0: 0.55, kr2: 1.2e-5},                       // dry snow
	{k0: 0.85, kr2: 2.4e-5},                       // compacted snow/ice
}

var g1Data = variantData{
	takeoffRoll:     polyCoeffs{wt: [3]float32{2100, -900, 150}, pa: 0.055, paW: 0.004, pa2: 0.002, dt: 0.011, dt2: 0.00012},
	takeoffDistance: polyCoeffs{wt: [3]float32{3300, -1420, 240}, pa: 0.062, paW: 0.0045, pa2: 0.0025, dt: 0.012, dt2: 0.00013},
	landingRoll: [2]polyCoeffs{
		{wt: [3]float32{230, 192, 19.2}, pa: 0.031, paW: 0.002, pa2: 0.001, dt: 0.004, dt2: 0.00004}, // 50%
		{wt: [3]float32{180, 150, 15}, pa: 0.031, paW: 0.002, pa2: 0.001, dt: 0.004, dt2: 0.00004},   // 100%
	},
	landingDistance: [2]polyCoeffs{
		{wt: [3]float32{1350, 210, 20}, pa: 0.028, paW: 0.0018, pa2: 0.001, dt: 0.0038, dt2: 0.00004},
		{wt: [3]float32{1150, 170, 16}, pa: 0.028, paW: 0.0018, pa2: 0.001, dt: 0.0038, dt2: 0.00004},
	},
	climbGradient: polyCoeffs{wt: [3]float32{36, -7.2, 0.52}, pa: -0.045, pa2: -0.001, dt: -0.008, dt2: -0.0001},
	climbRate:     polyCoeffs{wt: [3]float32{3300, -560, 38}, pa: -0.04, pa2: -0.0009, dt: -0.007, dt2: -0.00009},
	vref: [2]polyCoeffs{
		{wt: [3]float32{52, 8.5, -0.3}},
		{wt: [3]float32{45, 8.5, -0.3}},
	},

	sigmaRel: [numQuantities]float32{
		qTakeoffRoll: 0.015, qTakeoffDistance: 0.015,
		qLandingRoll: 0.015, qLandingDistance: 0.015,
		qClimbGradient: 0.02, qClimbRate: 0.02, qVref: 0.01,
	},

	corr: correctionParams{
		toRollHead: 0.008, toRollHeadW: 0.0009, toRollTail: 0.050,
		toDistHead: 0.006, toDistHeadW: 0.0007, toDistTail: 0.040,
		ldRollHead: 0.007, ldRollHeadW: 0.0008, ldRollTail: 0.045,
		ldDistHead: 0.005, ldDistHeadW: 0.0006, ldDistTail: 0.038,
		toSlopeUp: 3.0, toSlopeDown: 2.2,
		ldSlopeDown: 4.3, ldSlopeUp: 2.5,
		slopeOnTotal: false,
	},
	contam: contamData,

	takeoffEnv:  envelope{wtMin: 5000, wtMax: 6000, paMin: -1000, paMax: 10000, tMin: -40, tMax: 50},
	landingEnv:  envelope{wtMin: 4500, wtMax: 5550, paMin: -1000, paMax: 10000, tMin: -40, tMax: 50},
	vrefEnv:     envelope{wtMin: 4500, wtMax: 5550, paMin: -2000, paMax: 25000, tMin: -55, tMax: 55},
	iceTempMaxC: 10,

	unpavedFactor: 1.21,
	iceVrefAddKt:  9,

	goAround: [2][2][]gaExclusion{
		{ // 50% deflection
			{ // non-ice
				{MinWeightLb: 5500, MinPAFt: 8000, MinTempC: 30},
				{MinWeightLb: 5200, MinPAFt: 10000, MinTempC: 20},
			},
			{ // ice
				{MinWeightLb: 5400, MinPAFt: 6000, MinTempC: -10},
				{MinWeightLb: 5000, MinPAFt: 8000, MinTempC: -10},
			},
		},
		{ // 100% deflection
			{
				{MinWeightLb: 5500, MinPAFt: 6000, MinTempC: 30},
				{MinWeightLb: 5300, MinPAFt: 8000, MinTempC: 20},
				{MinWeightLb: 5000, MinPAFt: 10000, MinTempC: 30},
			},
			{
				{MinWeightLb: 5300, MinPAFt: 4000, MinTempC: -10},
				{MinWeightLb: 5000, MinPAFt: 6000, MinTempC: -10},
			},
		},
	},
}

var g2Data = variantData{
	takeoffRoll:     polyCoeffs{wt: [3]float32{1950, -850, 145}, pa: 0.052, paW: 0.0038, pa2: 0.0018, dt: 0.0105, dt2: 0.00011},
	takeoffDistance: polyCoeffs{wt: [3]float32{3050, -1330, 230}, pa: 0.058, paW: 0.0042, pa2: 0.0022, dt: 0.0115, dt2: 0.00012},
	landingRoll: [2]polyCoeffs{
		{wt: [3]float32{225, 188, 18.8}, pa: 0.030, paW: 0.0019, pa2: 0.001, dt: 0.0039, dt2: 0.00004},
		{wt: [3]float32{176, 147, 14.7}, pa: 0.030, paW: 0.0019, pa2: 0.001, dt: 0.0039, dt2: 0.00004},
	},
	landingDistance: [2]polyCoeffs{
		{wt: [3]float32{1330, 206, 19.6}, pa: 0.027, paW: 0.0017, pa2: 0.001, dt: 0.0037, dt2: 0.00004},
		{wt: [3]float32{1130, 167, 15.7}, pa: 0.027, paW: 0.0017, pa2: 0.001, dt: 0.0037, dt2: 0.00004},
	},
	climbGradient: polyCoeffs{wt: [3]float32{38, -7.4, 0.53}, pa: -0.043, pa2: -0.0009, dt: -0.0075, dt2: -0.00009},
	climbRate:     polyCoeffs{wt: [3]float32{3450, -580, 39}, pa: -0.038, pa2: -0.0008, dt: -0.0065, dt2: -0.00008},
	vref: [2]polyCoeffs{
		{wt: [3]float32{52, 8.5, -0.3}},
		{wt: [3]float32{45, 8.5, -0.3}},
	},

	sigmaRel: [numQuantities]float32{
		qTakeoffRoll: 0.012, qTakeoffDistance: 0.012,
		qLandingRoll: 0.012, qLandingDistance: 0.012,
		qClimbGradient: 0.018, qClimbRate: 0.018, qVref: 0.01,
	},

	corr: correctionParams{
		toRollHead: 0.0085, toRollHeadW: 0.00085, toRollTail: 0.048,
		toDistHead: 0.0065, toDistHeadW: 0.00065, toDistTail: 0.039,
		ldRollHead: 0.007, ldRollHeadW: 0.0008, ldRollTail: 0.045,
		ldDistHead: 0.005, ldDistHeadW: 0.0006, ldDistTail: 0.038,
		toSlopeUp: 2.8, toSlopeDown: 2.0,
		ldSlopeDown: 4.0, ldSlopeUp: 2.3,
		slopeOnTotal: true,
	},
	contam: contamData,

	takeoffEnv:  envelope{wtMin: 5000, wtMax: 6000, paMin: -1000, paMax: 10000, tMin: -40, tMax: 50},
	landingEnv:  envelope{wtMin: 4500, wtMax: 5550, paMin: -1000, paMax: 10000, tMin: -40, tMax: 50},
	vrefEnv:     envelope{wtMin: 4500, wtMax: 5550, paMin: -2000, paMax: 25000, tMin: -55, tMax: 55},
	iceTempMaxC: 10,

	unpavedFactor: 1.20,
	iceVrefAddKt:  9,

	goAround: [2][2][]gaExclusion{
		{
			{
				{MinWeightLb: 5600, MinPAFt: 8000, MinTempC: 30},
				{MinWeightLb: 5300, MinPAFt: 10000, MinTempC: 20},
			},
			{
				{MinWeightLb: 5500, MinPAFt: 6000, MinTempC: -10},
				{MinWeightLb: 5100, MinPAFt: 8000, MinTempC: -10},
			},
		},
		{
			{
				{MinWeightLb: 5600, MinPAFt: 6000, MinTempC: 30},
				{MinWeightLb: 5400, MinPAFt: 8000, MinTempC: 20},
				{MinWeightLb: 5100, MinPAFt: 10000, MinTempC: 30},
			},
			{
				{MinWeightLb: 5400, MinPAFt: 4000, MinTempC: -10},
				{MinWeightLb: 5100, MinPAFt: 6000, MinTempC: -10},
			},
		},
	},
}
