package structure

import "github.com/idiovoidi/gta-classic-arcade/shared/gamemath"

// Obstacle is the shape shared by walls and beams.
type Obstacle interface {
	Bounds() gamemath.Rect
	Update(dt float64)
	IsInvincible() bool
}

type damageable interface {
	TakeDamage(amount float64)
}

type glower interface {
	TriggerGlow()
}

var (
	_ Obstacle = (*Wall)(nil)
	_ Obstacle = (*Beam)(nil)
)

// ApplyHit routes a hit: invincible obstacles glow, everything else takes damage.
func ApplyHit(o Obstacle, amount float64) {
	if o == nil {
		return
	}
	if o.IsInvincible() {
		if g, ok := o.(glower); ok {
			g.TriggerGlow()
		}
		return
	}
	if d, ok := o.(damageable); ok {
		d.TakeDamage(amount)
	}
}
