// perf/report.go
// Copyright(c) 2024-2026 rwyperf contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package perf

import (
	"context"
	"slices"

	"golang.org/x/sync/errgroup"

	"github.com/mstrasser/rwyperf/aviation"
	"github.com/mstrasser/rwyperf/log"
	"github.com/mstrasser/rwyperf/wx"
)

// ReportRequest describes one full report: all runways crossed with the
// baseline and every caller-supplied scenario.
type ReportRequest struct {
	Conditions wx.Conditions
	Config     Configuration
	Runways    []aviation.RunwayInput
	Scenarios  []Scenario
	Safety     SafetyFactors
	Variant    Variant
	Fit        FitMethod

	WeightIncrementLb   float32 // solver quantum; default 50
	MinClimbGradientPct float32
	Cache               *EvalCache // optional
}

// RunwayInfo summarizes a runway under the base conditions: the maximum
// weights it permits and what limits them.
type RunwayInfo struct {
	Runway             aviation.RunwayID
	MaxTakeoffWeightLb float32
	TakeoffLimit       LimitingFactor
	MaxLandingWeightLb float32
	LandingLimit       LimitingFactor
	Contamination      *aviation.Contamination
}

// ReportCell holds the outputs for one scenario on one runway, plus the
// distance margins and a pass/fail flag used by the presentation layer to
// highlight rows; the engine decides correctness only.
type ReportCell struct {
	Scenario string
	Runway   aviation.RunwayID
	Outputs
	TakeoffMarginFt   Value[float32]
	LandingMarginFt   Value[float32]
	MeetsRequirements bool
}

// Report is the assembled result: per-runway summaries and a scenario ×
// runway grid of cells.
type Report struct {
	Scenarios []string
	Runways   []RunwayInfo
	Rows      [][]ReportCell // indexed [scenario][runway]
}

func variantDataFor(v Variant) *variantData {
	if v == G2 {
		return &g2Data
	}
	return &g1Data
}

// BuildReport evaluates every runway under every scenario. The implicit
// no-adjustment scenario always comes first; caller scenarios follow in
// order. Runways are evaluated concurrently: every evaluation works on its
// own snapshotted inputs, so the fan-out needs no coordination beyond
// collecting results.
func BuildReport(ctx context.Context, req ReportRequest, lg *log.Logger) (*Report, error) {
	model := NewModel(req.Variant, req.Fit)
	data := variantDataFor(req.Variant)

	runways := slices.Clone(req.Runways)
	slices.SortFunc(runways, func(a, b aviation.RunwayInput) int {
		return a.Id.Compare(b.Id)
	})

	scenarios := append([]Scenario{{}}, req.Scenarios...)

	rep := &Report{
		Runways: make([]RunwayInfo, len(runways)),
		Rows:    make([][]ReportCell, len(scenarios)),
	}
	for _, s := range scenarios {
		rep.Scenarios = append(rep.Scenarios, s.DisplayName())
	}
	for i := range rep.Rows {
		rep.Rows[i] = make([]ReportCell, len(runways))
	}

	eg, ctx := errgroup.WithContext(ctx)
	for r, rwy := range runways {
		r, rwy := r, rwy
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			lg.Debug("evaluating runway", "runway", string(rwy.Id))

			mtow, tlimit := SearchMaxWeight(data.takeoffEnv.wtMin, data.takeoffEnv.wtMax,
				req.WeightIncrementLb,
				RunwayOracle(model, req.Conditions, req.Config, rwy, req.Safety, true,
					req.MinClimbGradientPct))
			mlw, llimit := SearchMaxWeight(data.landingEnv.wtMin, data.landingEnv.wtMax,
				req.WeightIncrementLb,
				RunwayOracle(model, req.Conditions, req.Config, rwy, req.Safety, false,
					req.MinClimbGradientPct))

			rep.Runways[r] = RunwayInfo{
				Runway:             rwy.Id,
				MaxTakeoffWeightLb: mtow,
				TakeoffLimit:       tlimit,
				MaxLandingWeightLb: mlw,
				LandingLimit:       llimit,
				Contamination:      rwy.Contamination(),
			}

			for s, scen := range scenarios {
				conds, cfg, srwy := scen.Apply(req.Conditions, req.Config, rwy)
				in := Input{Conditions: conds, Config: cfg, Runway: srwy, Safety: req.Safety}
				out := req.Cache.Evaluate(model, in)
				rep.Rows[s][r] = makeCell(scen, srwy, out)
			}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return rep, nil
}

func makeCell(scen Scenario, rwy aviation.RunwayInput, out Outputs) ReportCell {
	toAvail, ldAvail := rwy.TORA(), rwy.LDA()
	if n := rwy.NOTAM; n != nil {
		toAvail -= n.TakeoffShorteningFt
		ldAvail -= n.LandingShorteningFt
	}

	margin := func(dist Value[float32], avail float32) Value[float32] {
		return MapUncertain(dist, func(v, sigma float32, has bool) (float32, float32, bool) {
			return avail - v, sigma, has
		})
	}

	cell := ReportCell{
		Scenario:        scen.DisplayName(),
		Runway:          rwy.Id,
		Outputs:         out,
		TakeoffMarginFt: margin(out.TakeoffDistance, toAvail),
		LandingMarginFt: margin(out.LandingDistance, ldAvail),
	}

	meets := true
	if tm, ok := cell.TakeoffMarginFt.Get(); !ok || tm < 0 {
		meets = false
	}
	// A configuration with no landing model (flaps up) can still meet
	// takeoff requirements; anything else must land with margin and have
	// go-around climb capability.
	if cell.LandingMarginFt.Kind() != KindNotAvailable {
		if lm, ok := cell.LandingMarginFt.Get(); !ok || lm < 0 {
			meets = false
		}
		if !out.MeetsGoAround {
			meets = false
		}
	}
	cell.MeetsRequirements = meets
	return cell
}
