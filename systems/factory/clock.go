package factory

import (
	"github.com/idiovoidi/gta-classic-arcade/archetypes"
	"github.com/idiovoidi/gta-classic-arcade/components"
	"github.com/idiovoidi/gta-classic-arcade/shared/structure"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateClock spawns the game clock every wall reads its hit times from.
func CreateClock(ecs *ecs.ECS) *donburi.Entry {
	clock := archetypes.Clock.Spawn(ecs)
	components.Clock.Set(clock, &components.ClockData{FrameClock: structure.NewFrameClock()})
	return clock
}
