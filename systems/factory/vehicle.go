package factory

import (
	"github.com/idiovoidi/gta-classic-arcade/archetypes"
	"github.com/idiovoidi/gta-classic-arcade/components"
	cfg "github.com/idiovoidi/gta-classic-arcade/config"
	"github.com/idiovoidi/gta-classic-arcade/shared/leveldata"
	"github.com/idiovoidi/gta-classic-arcade/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateVehicle spawns the player's car centered on the spawn point.
func CreateVehicle(ecs *ecs.ECS, spawn leveldata.SpawnPoint) *donburi.Entry {
	vehicle := archetypes.Vehicle.Spawn(ecs)

	w, h := cfg.Vehicle.Width, cfg.Vehicle.Height
	obj := resolv.NewObject(spawn.X-w/2, spawn.Y-h/2, w, h, tags.ResolvVehicle)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	obj.Data = vehicle
	components.Object.SetValue(vehicle, components.ObjectData{Object: obj})
	addToSpace(ecs, obj)

	components.Physics.SetValue(vehicle, components.PhysicsData{
		Heading:      spawn.Heading,
		Acceleration: cfg.Vehicle.Acceleration,
		Friction:     cfg.Vehicle.Friction,
		MaxSpeed:     cfg.Vehicle.MaxSpeed,
	})
	components.Vehicle.SetValue(vehicle, components.VehicleData{})

	return vehicle
}
