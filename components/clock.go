package components

import (
	"github.com/idiovoidi/gta-classic-arcade/shared/structure"
	"github.com/yohamta/donburi"
)

type ClockData struct {
	*structure.FrameClock
}

var Clock = donburi.NewComponentType[ClockData]()
