package systems

import (
	"log"

	"github.com/idiovoidi/gta-classic-arcade/components"
	cfg "github.com/idiovoidi/gta-classic-arcade/config"
	"github.com/idiovoidi/gta-classic-arcade/shared/structure"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCombat routes queued damage to walls and beams in delivery order.
// Walls take damage; beams only glow.
func UpdateCombat(ecs *ecs.ECS) {
	var hit []*donburi.Entry
	for e := range components.DamageEvent.Iter(ecs.World) {
		hit = append(hit, e)
	}

	for _, e := range hit {
		dmg := components.DamageEvent.Get(e)
		obstacle := obstacleOf(e)
		if obstacle == nil {
			log.Printf("Warning: damage queued on entity %v with no obstacle", e.Entity())
			donburi.Remove[components.DamageEventData](e, components.DamageEvent)
			continue
		}

		wasDestroyed := isDestroyedWall(e)
		for _, amount := range dmg.Amounts {
			structure.ApplyHit(obstacle, amount)
		}

		donburi.Remove[components.DamageEventData](e, components.DamageEvent)

		if !wasDestroyed && isDestroyedWall(e) {
			onWallDestroyed(ecs, e)
		}
	}
}

func obstacleOf(e *donburi.Entry) structure.Obstacle {
	switch {
	case e.HasComponent(components.Wall):
		return components.Wall.Get(e).Wall
	case e.HasComponent(components.Beam):
		return components.Beam.Get(e).Beam
	}
	return nil
}

func isDestroyedWall(e *donburi.Entry) bool {
	return e.HasComponent(components.Wall) && components.Wall.Get(e).IsDestroyed()
}

// onWallDestroyed takes the wall out of the collision space and collapses its
// building once no wall is left standing.
func onWallDestroyed(ecs *ecs.ECS, e *donburi.Entry) {
	obj := components.Object.Get(e)
	if obj.Object != nil && obj.Space != nil {
		obj.Space.Remove(obj.Object)
	}

	buildingEntity := components.Wall.Get(e).Building
	if !ecs.World.Valid(buildingEntity) {
		return
	}
	bEntry := ecs.World.Entry(buildingEntity)
	building := components.Building.Get(bEntry)
	if building.Collapsed {
		return
	}

	for _, w := range building.Walls {
		if !ecs.World.Valid(w) {
			continue
		}
		if !components.Wall.Get(ecs.World.Entry(w)).IsDestroyed() {
			return
		}
	}

	building.Collapsed = true
	TriggerScreenShake(ecs, cfg.ScreenShake.CollapseIntensity, cfg.ScreenShake.CollapseDuration)
	log.Printf("Building %q collapsed", building.Name)
}
