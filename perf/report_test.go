// perf/report_test.go
// Copyright(c) 2024-2026 rwyperf contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package perf

import (
	"context"
	"testing"

	"github.com/mstrasser/rwyperf/aviation"
	"github.com/mstrasser/rwyperf/log"
	"github.com/mstrasser/rwyperf/math"
)

func TestBuildReport(t *testing.T) {
	req := ReportRequest{
		Conditions: testConditions(),
		Config:     Configuration{WeightLb: 5200, Flaps: Flaps50},
		Runways: []aviation.RunwayInput{
			aviation.MakeRunwayInput(aviation.RunwaySpec{Id: "27", TrueHeading: 270, LengthFt: 8000}),
			aviation.MakeRunwayInput(aviation.RunwaySpec{Id: "9", TrueHeading: 90, LengthFt: 2000}),
		},
		Scenarios: []Scenario{{Name: "Hot", DeltaTempC: 10}},
		Safety:    UnitySafetyFactors(),
		Variant:   G1,
		Fit:       PolynomialFit,
		Cache:     NewEvalCache(64),
	}

	rep, err := BuildReport(context.Background(), req, log.NewDiscard())
	if err != nil {
		t.Fatalf("BuildReport: %v", err)
	}

	if len(rep.Scenarios) != 2 || rep.Scenarios[0] != "Forecast Conditions" || rep.Scenarios[1] != "Hot" {
		t.Errorf("scenarios = %v, want implicit baseline then Hot", rep.Scenarios)
	}
	if len(rep.Runways) != 2 || rep.Runways[0].Runway != "9" || rep.Runways[1].Runway != "27" {
		t.Errorf("runway order = %v, want 9 then 27", rep.Runways)
	}
	if len(rep.Rows) != 2 || len(rep.Rows[0]) != 2 {
		t.Fatalf("rows = %dx%d, want 2x2", len(rep.Rows), len(rep.Rows[0]))
	}

	long := rep.Runways[1]
	if long.MaxTakeoffWeightLb != 6000 || long.TakeoffLimit != LimitAFM {
		t.Errorf("long runway max takeoff = %.0f/%s, want 6000/AFM limit",
			long.MaxTakeoffWeightLb, long.TakeoffLimit)
	}
	if long.MaxLandingWeightLb != 5550 || long.LandingLimit != LimitAFM {
		t.Errorf("long runway max landing = %.0f/%s, want 5550/AFM limit",
			long.MaxLandingWeightLb, long.LandingLimit)
	}

	short := rep.Runways[0]
	if short.MaxTakeoffWeightLb != 0 || short.TakeoffLimit != LimitFieldLength {
		t.Errorf("short runway max takeoff = %.0f/%s, want 0/field length",
			short.MaxTakeoffWeightLb, short.TakeoffLimit)
	}

	base := rep.Rows[0][1] // baseline scenario on the long runway
	if !base.MeetsRequirements {
		t.Errorf("baseline on 8000 ft runway does not meet requirements")
	}
	d, _ := base.TakeoffDistance.Get()
	margin, ok := base.TakeoffMarginFt.Get()
	if !ok || math.Abs(margin-(8000-d)) > 0.5 {
		t.Errorf("takeoff margin %.0f, want %.0f", margin, 8000-d)
	}

	if rep.Rows[0][0].MeetsRequirements {
		t.Errorf("baseline on 2000 ft runway unexpectedly meets requirements")
	}

	// The hot scenario needs more runway than the baseline.
	hd, _ := rep.Rows[1][1].TakeoffDistance.Get()
	if !(hd > d) {
		t.Errorf("hot-day takeoff distance %.0f not above baseline %.0f", hd, d)
	}
}

func TestBuildReportNoCacheNoLogger(t *testing.T) {
	req := ReportRequest{
		Conditions: testConditions(),
		Config:     Configuration{WeightLb: 5500, Flaps: Flaps50},
		Runways: []aviation.RunwayInput{
			aviation.MakeRunwayInput(aviation.RunwaySpec{Id: "18", TrueHeading: 180, LengthFt: 8000}),
		},
		Variant: G2,
		Fit:     TableFit,
		Safety:  UnitySafetyFactors(),
	}
	rep, err := BuildReport(context.Background(), req, nil)
	if err != nil {
		t.Fatalf("BuildReport: %v", err)
	}
	if len(rep.Rows) != 1 || len(rep.Rows[0]) != 1 {
		t.Fatalf("rows = %dx%d, want 1x1", len(rep.Rows), len(rep.Rows[0]))
	}
	if _, ok := rep.Rows[0][0].TakeoffDistance.Get(); !ok {
		t.Errorf("takeoff distance not numeric: %s", rep.Rows[0][0].TakeoffDistance)
	}
}

func TestBuildReportCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	req := ReportRequest{
		Conditions: testConditions(),
		Config:     Configuration{WeightLb: 5500, Flaps: Flaps50},
		Runways: []aviation.RunwayInput{
			aviation.MakeRunwayInput(aviation.RunwaySpec{Id: "27", TrueHeading: 270, LengthFt: 8000}),
		},
		Variant: G1,
		Fit:     PolynomialFit,
		Safety:  UnitySafetyFactors(),
	}
	if _, err := BuildReport(ctx, req, nil); err == nil {
		t.Errorf("BuildReport on a canceled context succeeded")
	}
}
