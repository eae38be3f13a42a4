// perf/cache.go
// Copyright(c) 2024-2026 rwyperf contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package perf

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/mstrasser/rwyperf/aviation"
	"github.com/mstrasser/rwyperf/wx"
)

// Outputs are the full set of model results for one (conditions,
// configuration, runway) cell.
type Outputs struct {
	TakeoffRoll     Value[float32]
	TakeoffDistance Value[float32]
	LandingRoll     Value[float32]
	LandingDistance Value[float32]
	ClimbGradient   Value[float32]
	ClimbRate       Value[float32]
	Vref            Value[float32]
	MeetsGoAround   bool
}

// EvalCache memoizes model evaluations. Report generation re-evaluates
// identical cells whenever scenario overrides collapse to the same
// effective inputs, and the max-weight solver probes repeat across
// scenarios; the cache is keyed on the full snapshotted input so a hit is
// exact by construction.
type EvalCache struct {
	lru *expirable.LRU[string, Outputs]
}

// NewEvalCache returns a cache holding up to size entries.
func NewEvalCache(size int) *EvalCache {
	return &EvalCache{lru: expirable.NewLRU[string, Outputs](size, nil, time.Hour)}
}

// evalKey is the serialized identity of an evaluation. Fallback-resolved
// accessors are expanded so that two runways that resolve to the same
// declared distances key identically.
type evalKey struct {
	Variant   Variant
	Fit       FitMethod
	WeightLb  float32
	Flaps     FlapSetting
	Safety    SafetyFactors
	WindDir   *float32
	WindSpeed *float32
	TempC     *float32
	SLP       *float32
	Source    wx.ConditionsSource
	RunwayID  aviation.RunwayID
	ElevFt    float32
	Heading   float32
	Gradient  float32
	LengthFt  float32
	TORAFt    float32
	TODAFt    float32
	LDAFt     float32
	Unpaved   bool
	NOTAM     *aviation.NOTAMSnapshot
}

func cacheKey(m Model, in Input) (string, bool) {
	k := evalKey{
		Variant:   m.Variant(),
		Fit:       m.Fit(),
		WeightLb:  in.Config.WeightLb,
		Flaps:     in.Config.Flaps,
		Safety:    in.Safety,
		WindDir:   in.Conditions.WindDir,
		WindSpeed: in.Conditions.WindSpeed,
		TempC:     in.Conditions.Temperature,
		SLP:       in.Conditions.SeaLevelPressure,
		Source:    in.Conditions.Source,
		RunwayID:  in.Runway.Id,
		ElevFt:    in.Runway.ElevationFt,
		Heading:   in.Runway.TrueHeading,
		Gradient:  in.Runway.Gradient,
		LengthFt:  in.Runway.LengthFt,
		TORAFt:    in.Runway.TORA(),
		TODAFt:    in.Runway.TODA(),
		LDAFt:     in.Runway.LDA(),
		Unpaved:   in.Runway.Unpaved,
		NOTAM:     in.notam(),
	}
	b, err := msgpack.Marshal(k)
	if err != nil {
		return "", false
	}
	return string(b), true
}

// Evaluate runs all model outputs for the input, consulting the cache when
// c is non-nil.
func (c *EvalCache) Evaluate(m Model, in Input) Outputs {
	var key string
	if c != nil {
		if k, ok := cacheKey(m, in); ok {
			key = k
			if out, hit := c.lru.Get(key); hit {
				return out
			}
		}
	}

	out := Outputs{
		TakeoffRoll:     m.TakeoffRoll(in),
		TakeoffDistance: m.TakeoffDistance(in),
		LandingRoll:     m.LandingRoll(in),
		LandingDistance: m.LandingDistance(in),
		ClimbGradient:   m.ClimbGradient(in),
		ClimbRate:       m.ClimbRate(in),
		Vref:            m.Vref(in),
		MeetsGoAround:   m.MeetsGoAroundClimb(in),
	}

	if c != nil && key != "" {
		c.lru.Add(key, out)
	}
	return out
}
