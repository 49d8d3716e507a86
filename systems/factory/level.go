package factory

import (
	"github.com/idiovoidi/gta-classic-arcade/archetypes"
	"github.com/idiovoidi/gta-classic-arcade/components"
	"github.com/idiovoidi/gta-classic-arcade/shared/leveldata"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateLevel stores the loaded cities and selects one by index.
// Out of range indexes fall back to the first city.
func CreateLevel(ecs *ecs.ECS, cities []*leveldata.CityData, cityIndex int) *donburi.Entry {
	if len(cities) == 0 {
		panic("no cities to create a level from")
	}

	level := archetypes.Level.Spawn(ecs)

	if cityIndex < 0 || cityIndex >= len(cities) {
		cityIndex = 0
	}

	components.Level.Set(level, &components.LevelData{
		Cities:      cities,
		CityIndex:   cityIndex,
		CurrentCity: cities[cityIndex],
	})

	return level
}
