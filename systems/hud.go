package systems

import (
	"fmt"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/idiovoidi/gta-classic-arcade/components"
	cfg "github.com/idiovoidi/gta-classic-arcade/config"
	"github.com/idiovoidi/gta-classic-arcade/fonts"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CityStats summarizes destruction across the current city.
type CityStats struct {
	Walls          int
	WallsDestroyed int
	Buildings      int
	Collapsed      int
}

// CollectCityStats counts walls and buildings by state.
func CollectCityStats(ecs *ecs.ECS) CityStats {
	var s CityStats
	components.Wall.Each(ecs.World, func(e *donburi.Entry) {
		s.Walls++
		if components.Wall.Get(e).IsDestroyed() {
			s.WallsDestroyed++
		}
	})
	components.Building.Each(ecs.World, func(e *donburi.Entry) {
		s.Buildings++
		if components.Building.Get(e).Collapsed {
			s.Collapsed++
		}
	})
	return s
}

// DrawHUD renders the city name, destruction counters and vehicle speed.
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	if !fonts.Loaded(fonts.HUD) {
		return
	}
	face := fonts.HUD.Get()
	margin := int(cfg.UI.HUDMargin)
	lineHeight := int(cfg.UI.HUDFontSize * 1.5)
	y := margin + lineHeight

	if levelEntry, ok := components.Level.First(ecs.World); ok {
		if city := components.Level.Get(levelEntry).CurrentCity; city != nil {
			text.Draw(screen, city.Name, face, margin, y, cfg.UI.HUDTextColor)
			y += lineHeight
		}
	}

	stats := CollectCityStats(ecs)
	text.Draw(screen, fmt.Sprintf("Walls %d/%d", stats.WallsDestroyed, stats.Walls), face, margin, y, cfg.UI.HUDTextColor)
	y += lineHeight
	text.Draw(screen, fmt.Sprintf("Collapsed %d/%d", stats.Collapsed, stats.Buildings), face, margin, y, cfg.UI.HUDTextColor)

	if vehicleEntry, ok := components.Vehicle.First(ecs.World); ok {
		speed := components.Physics.Get(vehicleEntry).Velocity.Len()
		str := fmt.Sprintf("%d km/h", int(math.Round(speed*30)))
		x := screen.Bounds().Dx() - margin - text.BoundString(face, str).Dx()
		text.Draw(screen, str, face, x, margin+lineHeight, cfg.UI.HUDTextColor)
	}
}
