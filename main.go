// main.go
// Copyright(c) 2024-2026 rwyperf contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/mstrasser/rwyperf/aviation"
	"github.com/mstrasser/rwyperf/log"
	"github.com/mstrasser/rwyperf/perf"
	"github.com/mstrasser/rwyperf/util"
	"github.com/mstrasser/rwyperf/wx"
)

var (
	inputFile   = flag.String("input", "", "JSON calculation request (\"-\" for stdin)")
	variantFlag = flag.String("variant", "G1", "aircraft variant: G1 or G2")
	fitFlag     = flag.String("fit", "polynomial", "chart fit method: polynomial or table")
	logLevel    = flag.String("loglevel", "info", "logging level: debug, info, warn, error")
	logDir      = flag.String("logdir", "", "directory for log files (default: user config dir)")
	incrementLb = flag.Float64("increment", perf.DefaultWeightIncrementLb,
		"weight increment for the max-weight solver (lb)")
)

// The request file mirrors the engine's input types, with optional fields
// omitted rather than zeroed so that a missing measurement is distinguishable
// from a measured zero.
type conditionsJSON struct {
	WindDirDeg          *float32 `json:"wind_dir_deg,omitempty"`
	WindSpeedKt         *float32 `json:"wind_speed_kt,omitempty"`
	TemperatureC        *float32 `json:"temperature_c,omitempty"`
	DewpointC           *float32 `json:"dewpoint_c,omitempty"`
	SeaLevelPressureHPa *float32 `json:"sea_level_pressure_hpa,omitempty"`
	StandardAtmosphere  bool     `json:"standard_atmosphere,omitempty"`
}

type contaminationJSON struct {
	Type    string  `json:"type"`
	DepthIn float32 `json:"depth_in,omitempty"`
}

type runwayJSON struct {
	Id                     string   `json:"id"`
	ElevationFt            *float32 `json:"elevation_ft,omitempty"`
	AirportElevationFt     float32  `json:"airport_elevation_ft"`
	TrueHeading            float32  `json:"true_heading"`
	Gradient               *float32 `json:"gradient,omitempty"`
	OppositeEndElevationFt *float32 `json:"opposite_end_elevation_ft,omitempty"`
	LengthFt               float32  `json:"length_ft"`
	TORAFt                 *float32 `json:"tora_ft,omitempty"`
	TODAFt                 *float32 `json:"toda_ft,omitempty"`
	LDAFt                  *float32 `json:"lda_ft,omitempty"`
	Unpaved                bool     `json:"unpaved,omitempty"`

	Contamination       *contaminationJSON `json:"contamination,omitempty"`
	TakeoffShorteningFt float32            `json:"takeoff_shortening_ft,omitempty"`
	LandingShorteningFt float32            `json:"landing_shortening_ft,omitempty"`
	ObstacleHeightFt    float32            `json:"obstacle_height_ft,omitempty"`
	ObstacleDistanceFt  float32            `json:"obstacle_distance_ft,omitempty"`
}

type scenarioJSON struct {
	Name          string             `json:"name,omitempty"`
	DeltaTempC    float32            `json:"delta_temp_c,omitempty"`
	DeltaWindKt   float32            `json:"delta_wind_kt,omitempty"`
	DeltaWeightLb float32            `json:"delta_weight_lb,omitempty"`
	Flaps         *string            `json:"flaps,omitempty"`
	Contamination *contaminationJSON `json:"contamination,omitempty"`
	ForceDry      bool               `json:"force_dry,omitempty"`
}

type requestJSON struct {
	Conditions          conditionsJSON `json:"conditions"`
	WeightLb            float32        `json:"weight_lb"`
	Flaps               string         `json:"flaps"`
	SafetyTakeoff       float32        `json:"safety_takeoff,omitempty"`
	SafetyLandingDry    float32        `json:"safety_landing_dry,omitempty"`
	SafetyLandingWet    float32        `json:"safety_landing_wet,omitempty"`
	MinClimbGradientPct float32        `json:"min_climb_gradient_pct,omitempty"`
	Runways             []runwayJSON   `json:"runways"`
	Scenarios           []scenarioJSON `json:"scenarios,omitempty"`
}

func parseFlaps(s string, e *util.ErrorLogger) perf.FlapSetting {
	switch s {
	case "up":
		return perf.FlapsUp
	case "50":
		return perf.Flaps50
	case "100":
		return perf.Flaps100
	case "50-ice":
		return perf.Flaps50Ice
	case "100-ice":
		return perf.Flaps100Ice
	default:
		e.ErrorString("%q: unknown flap setting; expected up, 50, 100, 50-ice or 100-ice", s)
		return perf.FlapsUp
	}
}

func parseContamination(c *contaminationJSON, e *util.ErrorLogger) *aviation.Contamination {
	if c == nil {
		return nil
	}
	var typ aviation.ContaminationType
	switch c.Type {
	case "water-slush":
		typ = aviation.WaterSlush
	case "slush-wet-snow":
		typ = aviation.SlushWetSnow
	case "dry-snow":
		typ = aviation.DrySnow
	case "compacted-snow":
		typ = aviation.CompactedSnow
	default:
		e.ErrorString("%q: unknown contamination type", c.Type)
		return nil
	}
	if typ.HasDepth() && c.DepthIn <= 0 {
		e.ErrorString("%s: contamination depth must be positive", c.Type)
	}
	return &aviation.Contamination{Type: typ, DepthIn: c.DepthIn}
}

func makeConditions(c conditionsJSON) wx.Conditions {
	conds := wx.Conditions{
		WindDir:          c.WindDirDeg,
		WindSpeed:        c.WindSpeedKt,
		Temperature:      c.TemperatureC,
		Dewpoint:         c.DewpointC,
		SeaLevelPressure: c.SeaLevelPressureHPa,
		Source:           wx.SourceUserEntered,
	}
	if c.StandardAtmosphere {
		conds = conds.FillMissingFrom(wx.StandardConditions())
		// An explicit temperature is the field temperature and must stay
		// authoritative; only tag for ISA lapse when none was given.
		if c.TemperatureC == nil {
			conds.Source = wx.SourceStandardAtmosphere
		}
	}
	return conds
}

func makeRunway(r runwayJSON, e *util.ErrorLogger) aviation.RunwayInput {
	e.Push("runway " + r.Id)
	defer e.Pop()

	if r.Id == "" {
		e.ErrorString("missing runway id")
	}
	if r.LengthFt <= 0 {
		e.ErrorString("length must be positive")
	}

	var notam *aviation.NOTAMSnapshot
	n := aviation.NOTAMSnapshot{
		Contamination:       parseContamination(r.Contamination, e),
		TakeoffShorteningFt: r.TakeoffShorteningFt,
		LandingShorteningFt: r.LandingShorteningFt,
		ObstacleHeightFt:    r.ObstacleHeightFt,
		ObstacleDistanceFt:  r.ObstacleDistanceFt,
	}
	if !n.IsEmpty() {
		notam = &n
	}

	return aviation.MakeRunwayInput(aviation.RunwaySpec{
		Id:                     r.Id,
		ElevationFt:            r.ElevationFt,
		AirportElevationFt:     r.AirportElevationFt,
		TrueHeading:            r.TrueHeading,
		Gradient:               r.Gradient,
		OppositeEndElevationFt: r.OppositeEndElevationFt,
		LengthFt:               r.LengthFt,
		TORAFt:                 r.TORAFt,
		TODAFt:                 r.TODAFt,
		LDAFt:                  r.LDAFt,
		Unpaved:                r.Unpaved,
		NOTAM:                  notam,
	})
}

func makeReportRequest(req requestJSON, e *util.ErrorLogger) perf.ReportRequest {
	out := perf.ReportRequest{
		Conditions:          makeConditions(req.Conditions),
		Config:              perf.Configuration{WeightLb: req.WeightLb, Flaps: parseFlaps(req.Flaps, e)},
		Safety:              perf.UnitySafetyFactors(),
		MinClimbGradientPct: req.MinClimbGradientPct,
		WeightIncrementLb:   float32(*incrementLb),
		Cache:               perf.NewEvalCache(256),
	}

	if req.WeightLb <= 0 {
		e.ErrorString("weight_lb must be positive")
	}
	if req.SafetyTakeoff != 0 {
		out.Safety.Takeoff = req.SafetyTakeoff
	}
	if req.SafetyLandingDry != 0 {
		out.Safety.LandingDry = req.SafetyLandingDry
	}
	if req.SafetyLandingWet != 0 {
		out.Safety.LandingWet = req.SafetyLandingWet
	}
	if out.Safety.Takeoff < 1 || out.Safety.LandingDry < 1 || out.Safety.LandingWet < 1 {
		e.ErrorString("safety factors must be at least 1")
	}

	switch *variantFlag {
	case "G1":
		out.Variant = perf.G1
	case "G2":
		out.Variant = perf.G2
	default:
		e.ErrorString("%q: unknown variant; expected G1 or G2", *variantFlag)
	}
	switch *fitFlag {
	case "polynomial":
		out.Fit = perf.PolynomialFit
	case "table":
		out.Fit = perf.TableFit
	default:
		e.ErrorString("%q: unknown fit method; expected polynomial or table", *fitFlag)
	}

	if len(req.Runways) == 0 {
		e.ErrorString("no runways given")
	}
	out.Runways = util.MapSlice(req.Runways,
		func(r runwayJSON) aviation.RunwayInput { return makeRunway(r, e) })

	for i, s := range req.Scenarios {
		e.Push(fmt.Sprintf("scenario %d", i+1))
		scen := perf.Scenario{
			Name:          s.Name,
			DeltaTempC:    s.DeltaTempC,
			DeltaWindKt:   s.DeltaWindKt,
			DeltaWeightLb: s.DeltaWeightLb,
			Contamination: parseContamination(s.Contamination, e),
			ForceDry:      s.ForceDry,
		}
		if s.Flaps != nil {
			f := parseFlaps(*s.Flaps, e)
			scen.Flaps = &f
		}
		if scen.Contamination != nil && scen.ForceDry {
			e.ErrorString("contamination and force_dry are mutually exclusive")
		}
		out.Scenarios = append(out.Scenarios, scen)
		e.Pop()
	}

	return out
}

func printReport(rep *perf.Report) {
	w := tabwriter.NewWriter(os.Stdout, 0, 8, 2, ' ', 0)

	fmt.Fprintln(w, "RUNWAY\tMAX T/O WT\tLIMIT\tMAX LDG WT\tLIMIT\tSURFACE")
	for _, r := range rep.Runways {
		surface := "dry"
		if r.Contamination != nil {
			surface = r.Contamination.Type.String()
		}
		fmt.Fprintf(w, "%s\t%.0f lb\t%s\t%.0f lb\t%s\t%s\n", r.Runway,
			r.MaxTakeoffWeightLb, r.TakeoffLimit, r.MaxLandingWeightLb, r.LandingLimit,
			surface)
	}
	w.Flush()

	for s, name := range rep.Scenarios {
		fmt.Printf("\n%s\n", name)
		w := tabwriter.NewWriter(os.Stdout, 0, 8, 2, ' ', 0)
		fmt.Fprintln(w, "RUNWAY\tT/O ROLL\tT/O DIST\tT/O MARGIN\tLDG ROLL\tLDG DIST\tLDG MARGIN\tVREF\tCLIMB\tOK")
		for _, cell := range rep.Rows[s] {
			ok := ""
			if !cell.MeetsRequirements {
				ok = "NO"
			}
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s kt\t%s%%\t%s\n", cell.Runway,
				cell.TakeoffRoll, cell.TakeoffDistance, cell.TakeoffMarginFt,
				cell.LandingRoll, cell.LandingDistance, cell.LandingMarginFt,
				cell.Vref, cell.ClimbGradient, ok)
		}
		w.Flush()
	}
}

func main() {
	flag.Parse()

	lg := log.New(*logLevel, *logDir)

	if *inputFile == "" {
		fmt.Fprintln(os.Stderr, "no -input file given")
		flag.Usage()
		os.Exit(1)
	}

	var b []byte
	var err error
	if *inputFile == "-" {
		b, err = io.ReadAll(os.Stdin)
	} else {
		b, err = os.ReadFile(*inputFile)
	}
	if err != nil {
		lg.Errorf("%s: %v", *inputFile, err)
		fmt.Fprintf(os.Stderr, "%s: %v\n", *inputFile, err)
		os.Exit(1)
	}

	var req requestJSON
	if err := json.Unmarshal(b, &req); err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", *inputFile, err)
		os.Exit(1)
	}

	var e util.ErrorLogger
	rreq := makeReportRequest(req, &e)
	if e.HaveErrors() {
		e.PrintErrors(lg)
		os.Exit(1)
	}

	rep, err := perf.BuildReport(context.Background(), rreq, lg)
	if err != nil {
		lg.Errorf("building report: %v", err)
		fmt.Fprintf(os.Stderr, "building report: %v\n", err)
		os.Exit(1)
	}

	printReport(rep)
}
