package components

import (
	"github.com/idiovoidi/gta-classic-arcade/shared/gamemath"
	"github.com/idiovoidi/gta-classic-arcade/shared/structure"
	"github.com/yohamta/donburi"
)

// BuildingData owns a building's footprint. The collider shares Bounds.
type BuildingData struct {
	Name         string
	Bounds       *gamemath.Rect
	MaxParticles int // destruction particle ceiling for each wall
	Collider     *structure.Collider
	Walls        []donburi.Entity
	Beams        []donburi.Entity
	Collapsed    bool // every wall destroyed; vehicles drive through
}

var Building = donburi.NewComponentType[BuildingData]()

// WallData links a wall to its building by entity handle only.
type WallData struct {
	*structure.Wall
	Building donburi.Entity
}

var Wall = donburi.NewComponentType[WallData]()

type BeamData struct {
	*structure.Beam
	Building donburi.Entity
}

var Beam = donburi.NewComponentType[BeamData]()
