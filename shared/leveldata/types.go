// Package leveldata provides TMX city map parsing.
// It has no dependencies on ebitengine, donburi, or resolv; pure data only.
package leveldata

// BeamLayout selects where support beams are placed around a building.
type BeamLayout string

const (
	BeamsCorners BeamLayout = "corners"
	BeamsEdges   BeamLayout = "edges"
	BeamsNone    BeamLayout = "none"
)

// CityData holds everything parsed from a TMX city map.
type CityData struct {
	Name          string
	Buildings     []BuildingFootprint
	VehicleSpawns []SpawnPoint
	MapWidth      int
	MapHeight     int
}

// BuildingFootprint is one building's bounding box and layout hints.
type BuildingFootprint struct {
	Name         string
	X, Y, W, H   float64
	MaxParticles int // 0 = use default
	Beams        BeamLayout
}

// SpawnPoint represents a vehicle spawn location.
type SpawnPoint struct {
	X, Y    float64
	Heading float64 // radians
	Index   int
}
