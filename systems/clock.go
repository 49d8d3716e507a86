package systems

import (
	"github.com/idiovoidi/gta-classic-arcade/components"
	cfg "github.com/idiovoidi/gta-classic-arcade/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateClock advances the game clock by one tick. Runs first each frame.
func UpdateClock(ecs *ecs.ECS) {
	components.Clock.Each(ecs.World, func(e *donburi.Entry) {
		components.Clock.Get(e).Advance(cfg.C.FrameMillis)
	})
}
