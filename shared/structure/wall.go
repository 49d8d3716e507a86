package structure

import (
	"image/color"
	"math/rand"

	"github.com/idiovoidi/gta-classic-arcade/shared/gamemath"
)

const (
	DefaultWallHealth         = 100.0
	DefaultMaxImpactParticles = 5
)

// DestroyedAlpha is the opacity a destroyed wall is drawn with.
const DestroyedAlpha = 0.3

// DefaultWallPalette maps damage levels 0..3 to fill colors.
var DefaultWallPalette = [4]color.RGBA{
	{R: 136, G: 136, B: 136, A: 255},
	{R: 120, G: 110, B: 96, A: 255},
	{R: 102, G: 84, B: 66, A: 255},
	{R: 80, G: 56, B: 44, A: 255},
}

// BuildingLookup resolves the owning building's destruction particle ceiling.
// ok is false once the building is gone. Walls never hold the building itself.
type BuildingLookup func() (maxParticles int, ok bool)

// WallOptions configures a new wall. Zero values fall back to defaults.
type WallOptions struct {
	MaxHealth          float64
	MaxImpactParticles int
	Palette            *[4]color.RGBA
	Policy             *EmissionPolicy
	Particles          ParticleSpawner
	Clock              Clock
	Rand               *rand.Rand
	Building           BuildingLookup
}

// Wall is a damageable rectangular obstacle.
type Wall struct {
	Rect gamemath.Rect

	health    float64
	maxHealth float64
	destroyed bool

	lastHitTime float64
	hasHit      bool

	maxImpactParticles int
	palette            [4]color.RGBA
	policy             EmissionPolicy
	particles          ParticleSpawner
	clock              Clock
	rng                *rand.Rand
	building           BuildingLookup
}

func NewWall(rect gamemath.Rect, opts WallOptions) *Wall {
	w := &Wall{
		Rect:               rect,
		maxHealth:          opts.MaxHealth,
		maxImpactParticles: opts.MaxImpactParticles,
		palette:            DefaultWallPalette,
		policy:             DefaultEmissionPolicy(),
		particles:          opts.Particles,
		clock:              opts.Clock,
		rng:                opts.Rand,
		building:           opts.Building,
	}
	if w.maxHealth <= 0 {
		w.maxHealth = DefaultWallHealth
	}
	if w.maxImpactParticles <= 0 {
		w.maxImpactParticles = DefaultMaxImpactParticles
	}
	if opts.Palette != nil {
		w.palette = *opts.Palette
	}
	if opts.Policy != nil {
		w.policy = *opts.Policy
	}
	if w.clock == nil {
		w.clock = NewFrameClock()
	}
	if w.rng == nil {
		w.rng = rand.New(rand.NewSource(1))
	}
	w.health = w.maxHealth
	return w
}

func (w *Wall) Bounds() gamemath.Rect { return w.Rect }

func (w *Wall) IsInvincible() bool { return false }

// TakeDamage applies amount to the wall. Destroyed walls ignore it completely.
// Negative amounts count as zero so health never rises.
func (w *Wall) TakeDamage(amount float64) {
	if w.destroyed {
		return
	}
	if amount < 0 {
		amount = 0
	}

	w.health -= amount
	if w.health < 0 {
		w.health = 0
	}

	now := w.clock.Now()
	if w.health == 0 {
		w.Destroy()
	} else if w.policy.ImpactAllowed(now, w.lastHitTime, w.hasHit) {
		w.emitImpact()
	}

	w.lastHitTime = now
	w.hasHit = true
}

// Destroy marks the wall destroyed and emits the destruction burst once.
func (w *Wall) Destroy() {
	if w.destroyed {
		return
	}
	w.destroyed = true
	w.health = 0
	w.emitDestruction()
}

// Update is a no-op; walls have no animated state.
func (w *Wall) Update(dt float64) {}

func (w *Wall) emitImpact() {
	sparks, dust := w.policy.ImpactBurst(w.maxImpactParticles)
	x, y := w.Rect.RandomPoint(w.rng)
	emit(w.particles, ParticleSpark, sparks, x, y)
	emit(w.particles, ParticleDust, dust, x, y)
}

func (w *Wall) emitDestruction() {
	concrete, dust := w.policy.DestructionBurst(w.DestructionCeiling())
	x, y := w.Rect.Center()
	emit(w.particles, ParticleConcrete, concrete, x, y)
	emit(w.particles, ParticleDust, dust, x, y)
}

// DestructionCeiling is the owning building's particle ceiling, or the policy default.
func (w *Wall) DestructionCeiling() int {
	if w.building != nil {
		if n, ok := w.building(); ok && n > 0 {
			return n
		}
	}
	return w.policy.DefaultDestructionCeiling
}

func (w *Wall) Health() float64 { return w.health }

func (w *Wall) MaxHealth() float64 { return w.maxHealth }

func (w *Wall) IsDestroyed() bool { return w.destroyed }

// LastHitTime returns when the wall was last damaged, and whether it ever was.
func (w *Wall) LastHitTime() (float64, bool) { return w.lastHitTime, w.hasHit }

func (w *Wall) HealthRatio() float64 {
	return w.health / w.maxHealth
}

// DamageLevel buckets the health ratio: >0.7 is 0, >0.4 is 1, >0.2 is 2, else 3.
func (w *Wall) DamageLevel() int {
	return DamageLevelFor(w.HealthRatio())
}

func DamageLevelFor(ratio float64) int {
	switch {
	case ratio > 0.7:
		return 0
	case ratio > 0.4:
		return 1
	case ratio > 0.2:
		return 2
	default:
		return 3
	}
}

// Color is the fill color for the current damage level.
func (w *Wall) Color() color.RGBA {
	return w.palette[w.DamageLevel()]
}

// Alpha is 1 for standing walls and DestroyedAlpha for rubble.
func (w *Wall) Alpha() float64 {
	if w.destroyed {
		return DestroyedAlpha
	}
	return 1
}

// ShowHealthBar reports whether the health overlay should be drawn.
func (w *Wall) ShowHealthBar() bool {
	return !w.destroyed && w.health < w.maxHealth
}
