package components

import (
	"github.com/idiovoidi/gta-classic-arcade/shared/leveldata"
	"github.com/yohamta/donburi"
)

type LevelData struct {
	Cities      []*leveldata.CityData
	CityIndex   int
	CurrentCity *leveldata.CityData
}

var Level = donburi.NewComponentType[LevelData]()
