package factory

import (
	"github.com/idiovoidi/gta-classic-arcade/archetypes"
	"github.com/idiovoidi/gta-classic-arcade/components"
	cfg "github.com/idiovoidi/gta-classic-arcade/config"
	"github.com/idiovoidi/gta-classic-arcade/shared/gamemath"
	"github.com/idiovoidi/gta-classic-arcade/shared/leveldata"
	"github.com/idiovoidi/gta-classic-arcade/shared/structure"
	"github.com/idiovoidi/gta-classic-arcade/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateBuilding spawns a building with its perimeter walls and support beams.
// The building's collider and resolv object cover the whole footprint.
func CreateBuilding(ecs *ecs.ECS, fp leveldata.BuildingFootprint, deps StructureDeps) *donburi.Entry {
	b := archetypes.Building.Spawn(ecs)

	obj := resolv.NewObject(fp.X, fp.Y, fp.W, fp.H, tags.ResolvBuilding)
	obj.SetShape(resolv.NewRectangle(0, 0, fp.W, fp.H))
	obj.Data = b
	components.Object.SetValue(b, components.ObjectData{Object: obj})
	addToSpace(ecs, obj)

	bounds := &gamemath.Rect{X: fp.X, Y: fp.Y, W: fp.W, H: fp.H}
	components.Building.SetValue(b, components.BuildingData{
		Name:         fp.Name,
		Bounds:       bounds,
		MaxParticles: fp.MaxParticles,
		Collider:     structure.NewCollider(bounds),
	})
	data := components.Building.Get(b)

	layout := leveldata.LayoutBuilding(fp, leveldata.LayoutOptions{
		WallThickness: cfg.Building.WallThickness,
		SegmentLength: cfg.Building.SegmentLength,
		BeamSize:      cfg.Building.BeamSize,
		BeamSpacing:   cfg.Building.BeamSpacing,
	})

	for _, rect := range layout.Walls {
		wall := CreateWall(ecs, rect, b.Entity(), deps)
		data.Walls = append(data.Walls, wall.Entity())
	}
	for _, rect := range layout.Beams {
		beam := CreateBeam(ecs, rect, b.Entity())
		data.Beams = append(data.Beams, beam.Entity())
	}

	return b
}
