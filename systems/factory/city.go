package factory

import (
	"github.com/idiovoidi/gta-classic-arcade/shared/leveldata"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateCity spawns every building in city and the player's vehicle.
// Without a spawn point the vehicle starts in the middle of the map.
func CreateCity(ecs *ecs.ECS, city *leveldata.CityData, deps StructureDeps) *donburi.Entry {
	for _, fp := range city.Buildings {
		CreateBuilding(ecs, fp, deps)
	}

	spawn := leveldata.SpawnPoint{
		X: float64(city.MapWidth) / 2,
		Y: float64(city.MapHeight) / 2,
	}
	if len(city.VehicleSpawns) > 0 {
		spawn = city.VehicleSpawns[0]
	}

	return CreateVehicle(ecs, spawn)
}
