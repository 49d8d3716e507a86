package factory

import (
	"github.com/idiovoidi/gta-classic-arcade/archetypes"
	"github.com/idiovoidi/gta-classic-arcade/components"
	cfg "github.com/idiovoidi/gta-classic-arcade/config"
	"github.com/idiovoidi/gta-classic-arcade/shared/gamemath"
	"github.com/idiovoidi/gta-classic-arcade/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateProjectile fires a bullet from the front of owner along its heading.
func CreateProjectile(ecs *ecs.ECS, owner *donburi.Entry) *donburi.Entry {
	p := archetypes.Projectile.Spawn(ecs)

	ownerObj := components.Object.Get(owner)
	ownerPhysics := components.Physics.Get(owner)

	// Start just ahead of the owner so the shot never clips its own body.
	cx, cy := ownerObj.Rect().Center()
	dir := gamemath.FromAngle(ownerPhysics.Heading)
	reach := (ownerObj.W + cfg.Projectile.Size) / 2
	startX := cx + dir.X*reach
	startY := cy + dir.Y*reach

	size := cfg.Projectile.Size
	obj := resolv.NewObject(startX-size/2, startY-size/2, size, size, tags.ResolvProjectile)
	obj.SetShape(resolv.NewRectangle(0, 0, size, size))
	obj.Data = p
	components.Object.SetValue(p, components.ObjectData{Object: obj})

	components.Space.Get(components.Space.MustFirst(ecs.World)).Add(obj)

	components.Physics.SetValue(p, components.PhysicsData{
		Velocity: dir.Scale(cfg.Projectile.Speed).Add(ownerPhysics.Velocity),
		Heading:  ownerPhysics.Heading,
		MaxSpeed: cfg.Projectile.Speed + ownerPhysics.MaxSpeed,
	})

	components.Projectile.SetValue(p, components.ProjectileData{
		Owner:    owner.Entity(),
		Damage:   cfg.Projectile.Damage,
		LifeTime: cfg.Projectile.LifetimeFrames,
	})

	return p
}
