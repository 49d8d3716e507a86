package systems

import (
	"github.com/idiovoidi/gta-classic-arcade/components"
	"github.com/idiovoidi/gta-classic-arcade/shared/gamemath"
	"github.com/idiovoidi/gta-classic-arcade/shared/structure"
	"github.com/idiovoidi/gta-classic-arcade/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// vehicleBody lets a building collider push a vehicle's resolv object around.
type vehicleBody struct {
	obj     *resolv.Object
	physics *components.PhysicsData
}

func (b *vehicleBody) Bounds() gamemath.Rect {
	return gamemath.Rect{X: b.obj.X, Y: b.obj.Y, W: b.obj.W, H: b.obj.H}
}

func (b *vehicleBody) SetPosition(x, y float64) {
	b.obj.X = x
	b.obj.Y = y
}

func (b *vehicleBody) Velocity() *gamemath.Vector {
	return &b.physics.Velocity
}

// UpdateBuildingCollisions pushes vehicles out of standing buildings.
// resolv finds nearby buildings; each building's collider does the exact test.
func UpdateBuildingCollisions(ecs *ecs.ECS) {
	tags.Vehicle.Each(ecs.World, func(e *donburi.Entry) {
		obj := components.Object.Get(e)
		obj.Update()

		check := obj.Check(0, 0, tags.ResolvBuilding)
		if check == nil {
			return
		}

		body := &vehicleBody{obj: obj.Object, physics: components.Physics.Get(e)}
		vehicle := components.Vehicle.Get(e)

		for _, bObj := range check.ObjectsByTags(tags.ResolvBuilding) {
			bEntry, ok := bObj.Data.(*donburi.Entry)
			if !ok || bEntry == nil || !bEntry.Valid() {
				continue
			}
			building := components.Building.Get(bEntry)
			if building.Collapsed {
				continue
			}
			if !building.Collider.CheckCollision(body) {
				continue
			}
			if side := building.Collider.ResolveCollision(body); side != structure.SideNone {
				vehicle.Collisions++
			}
		}

		obj.Update()
	})
}
