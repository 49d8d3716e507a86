package systems

import (
	"github.com/idiovoidi/gta-classic-arcade/components"
	"github.com/yohamta/donburi/ecs"
)

// UpdateObjects syncs moved resolv objects with the space's cells.
func UpdateObjects(ecs *ecs.ECS) {
	for e := range components.Object.Iter(ecs.World) {
		obj := components.Object.Get(e)
		if obj.Space != nil {
			obj.Update()
		}
	}
}
