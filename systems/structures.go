package systems

import (
	"github.com/idiovoidi/gta-classic-arcade/components"
	cfg "github.com/idiovoidi/gta-classic-arcade/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateStructures ticks beam glow timers and walls by one frame.
func UpdateStructures(ecs *ecs.ECS) {
	dt := cfg.C.FrameMillis

	components.Beam.Each(ecs.World, func(e *donburi.Entry) {
		components.Beam.Get(e).Update(dt)
	})
	components.Wall.Each(ecs.World, func(e *donburi.Entry) {
		components.Wall.Get(e).Update(dt)
	})
}
