package systems

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/idiovoidi/gta-classic-arcade/components"
	cfg "github.com/idiovoidi/gta-classic-arcade/config"
	"github.com/idiovoidi/gta-classic-arcade/shared/gamemath"
	"github.com/idiovoidi/gta-classic-arcade/tags"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const roadWidth = 28

var (
	drawOp = &ebiten.DrawImageOptions{}
	pixel  *ebiten.Image
)

// viewport is the visible world rectangle plus the world-to-screen offset.
type viewport struct {
	camX, camY float64
	bounds     gamemath.Rect
}

func newViewport(ecs *ecs.ECS, screen *ebiten.Image) (viewport, bool) {
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()
	camX, camY, ok := cameraOffset(ecs, width, height)
	if !ok {
		return viewport{}, false
	}
	return viewport{
		camX:   camX,
		camY:   camY,
		bounds: gamemath.Rect{X: -camX, Y: -camY, W: float64(width), H: float64(height)},
	}, true
}

// visible reports whether r touches the screen, with a small padding.
func (v viewport) visible(r gamemath.Rect) bool {
	const padding = 16.0
	return r.X+r.W >= v.bounds.X-padding && r.X <= v.bounds.Right()+padding &&
		r.Y+r.H >= v.bounds.Y-padding && r.Y <= v.bounds.Bottom()+padding
}

func (v viewport) fillRect(screen *ebiten.Image, r gamemath.Rect, c color.Color) {
	vector.FillRect(screen, float32(r.X+v.camX), float32(r.Y+v.camY), float32(r.W), float32(r.H), c, false)
}

// DrawGround paints the grass and the road grid under the city.
func DrawGround(ecs *ecs.ECS, screen *ebiten.Image) {
	screen.Fill(cfg.UI.GroundColor)

	view, ok := newViewport(ecs, screen)
	if !ok {
		return
	}
	levelEntry, ok := components.Level.First(ecs.World)
	if !ok {
		return
	}
	city := components.Level.Get(levelEntry).CurrentCity
	if city == nil || cfg.UI.RoadSpacing <= 0 {
		return
	}

	mapW, mapH := float64(city.MapWidth), float64(city.MapHeight)
	for x := cfg.UI.RoadSpacing / 2; x < mapW; x += cfg.UI.RoadSpacing {
		view.fillRect(screen, gamemath.Rect{X: x - roadWidth/2, W: roadWidth, H: mapH}, cfg.UI.RoadColor)
	}
	for y := cfg.UI.RoadSpacing / 2; y < mapH; y += cfg.UI.RoadSpacing {
		view.fillRect(screen, gamemath.Rect{X: 0, Y: y - roadWidth/2, W: mapW, H: roadWidth}, cfg.UI.RoadColor)
	}
}

// DrawStructures renders building floors, walls with their damage tint and
// health bars, and beams with their glow.
func DrawStructures(ecs *ecs.ECS, screen *ebiten.Image) {
	view, ok := newViewport(ecs, screen)
	if !ok {
		return
	}

	components.Building.Each(ecs.World, func(e *donburi.Entry) {
		b := components.Building.Get(e)
		if view.visible(*b.Bounds) {
			view.fillRect(screen, *b.Bounds, cfg.Building.FloorColor)
		}
	})

	components.Wall.Each(ecs.World, func(e *donburi.Entry) {
		w := components.Wall.Get(e)
		if !view.visible(w.Rect) {
			return
		}
		c := w.Color()
		c.A = uint8(float64(c.A) * w.Alpha())
		view.fillRect(screen, w.Rect, premultiply(c))

		if w.ShowHealthBar() {
			bar := gamemath.Rect{X: w.Rect.X, Y: w.Rect.Y - cfg.Wall.HealthBarHeight - 1, W: w.Rect.W, H: cfg.Wall.HealthBarHeight}
			view.fillRect(screen, bar, cfg.Wall.HealthBarBg)
			bar.W *= w.HealthRatio()
			view.fillRect(screen, bar, cfg.Wall.HealthBarFg)
		}
	})

	components.Beam.Each(ecs.World, func(e *donburi.Entry) {
		b := components.Beam.Get(e)
		if !view.visible(b.Rect) {
			return
		}
		c := cfg.Beam.Color
		if b.IsGlowing() {
			intensity := ease.OutQuad(float32(b.GlowRatio()), 0, 1, 1)
			c = lerpColor(cfg.Beam.Color, cfg.Beam.GlowColor, float64(intensity))
		}
		view.fillRect(screen, b.Rect, c)
	})
}

// DrawVehicles renders each vehicle as a rotated body with a windshield.
func DrawVehicles(ecs *ecs.ECS, screen *ebiten.Image) {
	view, ok := newViewport(ecs, screen)
	if !ok {
		return
	}

	tags.Vehicle.Each(ecs.World, func(e *donburi.Entry) {
		obj := components.Object.Get(e)
		physics := components.Physics.Get(e)
		cx, cy := obj.Rect().Center()

		// Cars are drawn longer than their square collision box
		length, width := obj.W*1.4, obj.H
		drawRotatedRect(screen, cx+view.camX, cy+view.camY, length, width, physics.Heading, cfg.Vehicle.Color)

		front := gamemath.FromAngle(physics.Heading).Scale(length / 5)
		drawRotatedRect(screen, cx+front.X+view.camX, cy+front.Y+view.camY, length/5, width*0.8, physics.Heading, cfg.Vehicle.WindowColor)
	})
}

// DrawProjectiles renders bullets as small squares.
func DrawProjectiles(ecs *ecs.ECS, screen *ebiten.Image) {
	view, ok := newViewport(ecs, screen)
	if !ok {
		return
	}

	tags.Projectile.Each(ecs.World, func(e *donburi.Entry) {
		view.fillRect(screen, components.Object.Get(e).Rect(), cfg.Projectile.Color)
	})
}

// DrawParticles renders particles with their faded alpha.
func DrawParticles(ecs *ecs.ECS, screen *ebiten.Image) {
	view, ok := newViewport(ecs, screen)
	if !ok {
		return
	}

	components.Particle.Each(ecs.World, func(e *donburi.Entry) {
		p := components.Particle.Get(e)
		r := gamemath.Rect{X: p.X - p.Size/2, Y: p.Y - p.Size/2, W: p.Size, H: p.Size}
		if !view.visible(r) {
			return
		}
		c := p.Color
		c.A = uint8(float64(c.A) * clamp01(p.Alpha))
		view.fillRect(screen, r, premultiply(c))
	})
}

func drawRotatedRect(screen *ebiten.Image, cx, cy, length, width, angle float64, c color.RGBA) {
	if pixel == nil {
		pixel = ebiten.NewImage(1, 1)
		pixel.Fill(color.White)
	}

	drawOp.GeoM.Reset()
	drawOp.ColorScale.Reset()
	drawOp.GeoM.Scale(length, width)
	drawOp.GeoM.Translate(-length/2, -width/2)
	drawOp.GeoM.Rotate(angle)
	drawOp.GeoM.Translate(cx, cy)
	drawOp.ColorScale.ScaleWithColor(c)
	screen.DrawImage(pixel, drawOp)
}

func lerpColor(a, b color.RGBA, t float64) color.RGBA {
	t = clamp01(t)
	mix := func(x, y uint8) uint8 {
		return uint8(float64(x) + (float64(y)-float64(x))*t)
	}
	return color.RGBA{R: mix(a.R, b.R), G: mix(a.G, b.G), B: mix(a.B, b.B), A: mix(a.A, b.A)}
}

// premultiply converts a straight-alpha color to the premultiplied form color.RGBA expects.
func premultiply(c color.RGBA) color.RGBA {
	a := float64(c.A) / 255
	return color.RGBA{
		R: uint8(float64(c.R) * a),
		G: uint8(float64(c.G) * a),
		B: uint8(float64(c.B) * a),
		A: c.A,
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
