package components

import (
	"github.com/idiovoidi/gta-classic-arcade/shared/gamemath"
	"github.com/yohamta/donburi"
)

type PhysicsData struct {
	Velocity     gamemath.Vector
	Heading      float64 // radians, 0 = facing right
	Acceleration float64
	Friction     float64
	MaxSpeed     float64
}

var Physics = donburi.NewComponentType[PhysicsData]()
