package structure

import "github.com/idiovoidi/gta-classic-arcade/shared/gamemath"

const (
	DefaultGlowDuration = 500.0

	// IndestructibleIntegrity is reported by every beam; nothing decrements it.
	IndestructibleIntegrity = 999999
)

// Beam is an indestructible support column that glows briefly when struck.
type Beam struct {
	Rect gamemath.Rect

	glowing      bool
	glowTimer    float64
	glowDuration float64
}

// NewBeam creates a beam. A non-positive glowDuration uses DefaultGlowDuration.
func NewBeam(rect gamemath.Rect, glowDuration float64) *Beam {
	if glowDuration <= 0 {
		glowDuration = DefaultGlowDuration
	}
	return &Beam{Rect: rect, glowDuration: glowDuration}
}

func (b *Beam) Bounds() gamemath.Rect { return b.Rect }

func (b *Beam) IsInvincible() bool { return true }

func (b *Beam) StructuralIntegrity() int { return IndestructibleIntegrity }

// TriggerGlow restarts the glow window. Repeated calls do not stack.
func (b *Beam) TriggerGlow() {
	b.glowing = true
	b.glowTimer = b.glowDuration
}

// Update decays the glow timer by dt milliseconds.
func (b *Beam) Update(dt float64) {
	if !b.glowing {
		return
	}
	b.glowTimer -= dt
	if b.glowTimer <= 0 {
		b.glowing = false
		b.glowTimer = 0
	}
}

func (b *Beam) IsGlowing() bool { return b.glowing }

func (b *Beam) GlowTimer() float64 { return b.glowTimer }

// GlowRatio is the remaining fraction of the glow window in [0, 1].
func (b *Beam) GlowRatio() float64 {
	if !b.glowing {
		return 0
	}
	return b.glowTimer / b.glowDuration
}
