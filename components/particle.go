package components

import (
	"image/color"

	"github.com/idiovoidi/gta-classic-arcade/shared/gamemath"
	"github.com/idiovoidi/gta-classic-arcade/shared/structure"
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// ParticleData is one live particle spawned by the pool.
type ParticleData struct {
	Kind     structure.ParticleKind
	X, Y     float64
	Velocity gamemath.Vector
	Drag     float64
	Size     float64
	Color    color.RGBA
	Alpha    float64
	Fade     *gween.Tween // alpha 1 -> 0 over the particle lifetime
}

var Particle = donburi.NewComponentType[ParticleData]()
