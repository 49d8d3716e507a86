package systems

import (
	"github.com/idiovoidi/gta-classic-arcade/components"
	"github.com/idiovoidi/gta-classic-arcade/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateProjectiles moves bullets and queues damage on the first wall or beam they touch.
func UpdateProjectiles(ecs *ecs.ECS) {
	var toRemove []*donburi.Entry
	var hits []projectileHit

	var mapW, mapH float64
	if level, ok := components.Level.First(ecs.World); ok {
		if city := components.Level.Get(level).CurrentCity; city != nil {
			mapW, mapH = float64(city.MapWidth), float64(city.MapHeight)
		}
	}

	tags.Projectile.Each(ecs.World, func(e *donburi.Entry) {
		projectile := components.Projectile.Get(e)
		physics := components.Physics.Get(e)
		obj := components.Object.Get(e)

		obj.X += physics.Velocity.X
		obj.Y += physics.Velocity.Y
		obj.Update()

		projectile.LifeTime--
		if projectile.LifeTime <= 0 {
			toRemove = append(toRemove, e)
			return
		}
		if mapW > 0 && (obj.X+obj.W < 0 || obj.X > mapW || obj.Y+obj.H < 0 || obj.Y > mapH) {
			toRemove = append(toRemove, e)
			return
		}

		if target := structureHit(obj); target != nil {
			hits = append(hits, projectileHit{target: target, damage: projectile.Damage})
			toRemove = append(toRemove, e)
		}
	})

	for _, h := range hits {
		components.QueueDamage(h.target, h.damage)
	}
	for _, p := range toRemove {
		destroyProjectile(ecs, p)
	}
}

type projectileHit struct {
	target *donburi.Entry
	damage float64
}

// structureHit returns the first wall or beam that overlaps obj, or nil.
func structureHit(obj *components.ObjectData) *donburi.Entry {
	check := obj.Check(0, 0, tags.ResolvWall, tags.ResolvBeam)
	if check == nil {
		return nil
	}

	bounds := obj.Rect()
	for _, other := range check.Objects {
		target, ok := other.Data.(*donburi.Entry)
		if !ok || target == nil || !target.Valid() {
			continue
		}
		if !bounds.Overlaps(components.Object.Get(target).Rect()) {
			continue
		}
		return target
	}
	return nil
}

func destroyProjectile(ecs *ecs.ECS, e *donburi.Entry) {
	obj := components.Object.Get(e)
	if obj.Object != nil && obj.Space != nil {
		obj.Space.Remove(obj.Object)
	}
	ecs.World.Remove(e.Entity())
}
