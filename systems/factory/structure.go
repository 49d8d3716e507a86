package factory

import (
	"math/rand"

	"github.com/idiovoidi/gta-classic-arcade/archetypes"
	"github.com/idiovoidi/gta-classic-arcade/components"
	cfg "github.com/idiovoidi/gta-classic-arcade/config"
	"github.com/idiovoidi/gta-classic-arcade/shared/gamemath"
	"github.com/idiovoidi/gta-classic-arcade/shared/structure"
	"github.com/idiovoidi/gta-classic-arcade/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// StructureDeps are the shared services a wall is wired to at creation.
type StructureDeps struct {
	Particles structure.ParticleSpawner
	Clock     structure.Clock
	Rand      *rand.Rand
}

// CreateWall spawns a destructible wall segment owned by building.
func CreateWall(ecs *ecs.ECS, rect gamemath.Rect, building donburi.Entity, deps StructureDeps) *donburi.Entry {
	wall := archetypes.Wall.Spawn(ecs)

	obj := resolv.NewObject(rect.X, rect.Y, rect.W, rect.H, tags.ResolvWall)
	obj.SetShape(resolv.NewRectangle(0, 0, rect.W, rect.H))
	obj.Data = wall

	components.Object.SetValue(wall, components.ObjectData{Object: obj})

	policy := cfg.EmissionPolicy()
	components.Wall.SetValue(wall, components.WallData{
		Wall: structure.NewWall(rect, structure.WallOptions{
			MaxHealth:          cfg.Wall.MaxHealth,
			MaxImpactParticles: cfg.Wall.MaxImpactParticles,
			Palette:            &cfg.Wall.Palette,
			Policy:             &policy,
			Particles:          deps.Particles,
			Clock:              deps.Clock,
			Rand:               deps.Rand,
			Building:           buildingLookup(ecs.World, building),
		}),
		Building: building,
	})

	addToSpace(ecs, obj)

	return wall
}

// CreateBeam spawns an indestructible support beam owned by building.
func CreateBeam(ecs *ecs.ECS, rect gamemath.Rect, building donburi.Entity) *donburi.Entry {
	beam := archetypes.Beam.Spawn(ecs)

	obj := resolv.NewObject(rect.X, rect.Y, rect.W, rect.H, tags.ResolvBeam)
	obj.SetShape(resolv.NewRectangle(0, 0, rect.W, rect.H))
	obj.Data = beam

	components.Object.SetValue(beam, components.ObjectData{Object: obj})
	components.Beam.SetValue(beam, components.BeamData{
		Beam:     structure.NewBeam(rect, cfg.Beam.GlowDuration),
		Building: building,
	})

	addToSpace(ecs, obj)

	return beam
}

// buildingLookup resolves the building's particle ceiling through the world on each call,
// so a wall never keeps its building alive.
func buildingLookup(world donburi.World, building donburi.Entity) structure.BuildingLookup {
	return func() (int, bool) {
		if !world.Valid(building) {
			return 0, false
		}
		entry := world.Entry(building)
		if !entry.HasComponent(components.Building) {
			return 0, false
		}
		b := components.Building.Get(entry)
		if b.MaxParticles <= 0 {
			return 0, false
		}
		return b.MaxParticles, true
	}
}
