package systems

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/idiovoidi/gta-classic-arcade/components"
	cfg "github.com/idiovoidi/gta-classic-arcade/config"
	"github.com/idiovoidi/gta-classic-arcade/fonts"
	"github.com/idiovoidi/gta-classic-arcade/shared/gamemath"
	"github.com/idiovoidi/gta-classic-arcade/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// DrawDebug outlines every collision object and prints frame stats. Toggled with F3.
func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	settings := GetOrCreateSettings(ecs)
	if !settings.Debug {
		return
	}

	view, ok := newViewport(ecs, screen)
	if !ok {
		return
	}

	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		space := components.Space.Get(spaceEntry)
		for _, obj := range space.Objects() {
			rect := gamemath.Rect{X: obj.X, Y: obj.Y, W: obj.W, H: obj.H}
			if !view.visible(rect) {
				continue
			}

			c := color.RGBA{0, 255, 255, 255} // Cyan default
			switch {
			case obj.HasTags(tags.ResolvBuilding):
				c = color.RGBA{255, 255, 255, 120}
			case obj.HasTags(tags.ResolvWall):
				c = color.RGBA{100, 100, 100, 255}
			case obj.HasTags(tags.ResolvBeam):
				c = color.RGBA{255, 200, 0, 255}
			case obj.HasTags(tags.ResolvVehicle):
				c = color.RGBA{0, 0, 255, 255}
			case obj.HasTags(tags.ResolvProjectile):
				c = color.RGBA{255, 0, 0, 255}
			}

			vector.StrokeRect(screen, float32(rect.X+view.camX), float32(rect.Y+view.camY),
				float32(rect.W), float32(rect.H), 1, c, false)
		}
	}

	if !fonts.Loaded(fonts.HUDSmall) {
		return
	}

	particles := 0
	components.Particle.Each(ecs.World, func(*donburi.Entry) { particles++ })

	var now float64
	if clockEntry, ok := components.Clock.First(ecs.World); ok {
		now = components.Clock.Get(clockEntry).Now()
	}

	var contacts int
	if vehicleEntry, ok := components.Vehicle.First(ecs.World); ok {
		contacts = components.Vehicle.Get(vehicleEntry).Collisions
	}

	lines := []string{
		fmt.Sprintf("TPS %.0f  FPS %.0f", ebiten.ActualTPS(), ebiten.ActualFPS()),
		fmt.Sprintf("clock %.0fms", now),
		fmt.Sprintf("particles %d/%d", particles, cfg.Particles.PoolCapacity),
		fmt.Sprintf("contacts %d", contacts),
	}
	face := fonts.HUDSmall.Get()
	y := screen.Bounds().Dy() - int(cfg.UI.HUDMargin) - len(lines)*int(cfg.UI.HUDFontSize)
	for _, line := range lines {
		text.Draw(screen, line, face, int(cfg.UI.HUDMargin), y, cfg.Yellow)
		y += int(cfg.UI.HUDFontSize)
	}
}
