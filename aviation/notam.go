// aviation/notam.go
// Copyright(c) 2024-2026 rwyperf contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package aviation

// ContaminationType enumerates the runway contamination states that the
// landing-distance model knows how to correct for.
type ContaminationType int

const (
	// WaterSlush is standing water or slush; carries a depth.
	WaterSlush ContaminationType = iota
	// SlushWetSnow is slush or wet snow; carries a depth.
	SlushWetSnow
	// DrySnow carries no depth.
	DrySnow
	// CompactedSnow is compacted snow or ice; carries no depth.
	CompactedSnow
)

func (c ContaminationType) String() string {
	return [...]string{"standing water/slush", "slush/wet snow", "dry snow",
		"compacted snow/ice"}[c]
}

// HasDepth reports whether this contamination type carries a depth.
func (c ContaminationType) HasDepth() bool {
	return c == WaterSlush || c == SlushWetSnow
}

// Contamination describes the state of a contaminated runway surface.
// DepthIn is meaningful only for types where HasDepth() is true.
type Contamination struct {
	Type    ContaminationType
	DepthIn float32 // inches
}

// NOTAMSnapshot holds temporary runway restrictions as captured at
// calculation time. The live source NOTAM may be mutated concurrently;
// snapshots never change after creation, which is what makes them safe to
// share across the calculation boundary.
type NOTAMSnapshot struct {
	Contamination       *Contamination
	TakeoffShorteningFt float32
	LandingShorteningFt float32
	ObstacleHeightFt    float32
	ObstacleDistanceFt  float32 // from threshold
}

// IsEmpty reports whether the snapshot carries no restrictions at all.
func (n *NOTAMSnapshot) IsEmpty() bool {
	return n == nil || (n.Contamination == nil && n.TakeoffShorteningFt == 0 &&
		n.LandingShorteningFt == 0 && n.ObstacleHeightFt == 0 && n.ObstacleDistanceFt == 0)
}
