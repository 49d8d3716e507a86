package structure

import "github.com/idiovoidi/gta-classic-arcade/shared/gamemath"

// Side identifies which face of a building was struck.
type Side int

const (
	SideNone Side = iota
	SideLeft
	SideRight
	SideTop
	SideBottom
)

func (s Side) String() string {
	switch s {
	case SideLeft:
		return "left"
	case SideRight:
		return "right"
	case SideTop:
		return "top"
	case SideBottom:
		return "bottom"
	default:
		return "none"
	}
}

// Body is anything with a position and optional size that a collider can push.
type Body interface {
	Bounds() gamemath.Rect
	SetPosition(x, y float64)
}

// Mover is a Body with a mutable velocity. A nil velocity means the body is static.
type Mover interface {
	Velocity() *gamemath.Vector
}

// Collider pushes bodies out of a building's bounding box.
type Collider struct {
	bounds *gamemath.Rect
}

// NewCollider shares the building's rectangle; later changes to it are observed.
func NewCollider(bounds *gamemath.Rect) *Collider {
	return &Collider{bounds: bounds}
}

func (c *Collider) Bounds() gamemath.Rect {
	if c.bounds == nil {
		return gamemath.Rect{}
	}
	return *c.bounds
}

// CheckCollision reports strict overlap between the building and b.
func (c *Collider) CheckCollision(b Body) bool {
	if c.bounds == nil || b == nil {
		return false
	}
	return c.bounds.Overlaps(b.Bounds())
}

// Penetration returns how far b must move to clear each face of the building.
func (c *Collider) Penetration(b Body) (left, right, top, bottom float64) {
	bb := c.Bounds()
	r := b.Bounds()
	left = r.Right() - bb.X
	right = bb.Right() - r.X
	top = r.Bottom() - bb.Y
	bottom = bb.Bottom() - r.Y
	return left, right, top, bottom
}

// ResolveCollision snaps b flush against the face with the shallowest penetration and
// zeroes the velocity component heading into the building. Ties resolve in the order
// left, right, top, bottom. Bodies without velocity are left alone. Callers gate this on
// CheckCollision; it is a discrete correction, not a swept test.
func (c *Collider) ResolveCollision(b Body) Side {
	if c.bounds == nil || b == nil {
		return SideNone
	}
	m, ok := b.(Mover)
	if !ok {
		return SideNone
	}
	vel := m.Velocity()
	if vel == nil {
		return SideNone
	}

	left, right, top, bottom := c.Penetration(b)
	side, best := SideLeft, left
	if right < best {
		side, best = SideRight, right
	}
	if top < best {
		side, best = SideTop, top
	}
	if bottom < best {
		side = SideBottom
	}

	bb := *c.bounds
	r := b.Bounds()
	switch side {
	case SideLeft:
		b.SetPosition(bb.X-r.W, r.Y)
		if vel.X > 0 {
			vel.X = 0
		}
	case SideRight:
		b.SetPosition(bb.Right(), r.Y)
		if vel.X < 0 {
			vel.X = 0
		}
	case SideTop:
		b.SetPosition(r.X, bb.Y-r.H)
		if vel.Y > 0 {
			vel.Y = 0
		}
	case SideBottom:
		b.SetPosition(r.X, bb.Bottom())
		if vel.Y < 0 {
			vel.Y = 0
		}
	}
	return side
}

// Box is a plain Body/Mover, handy for probes and projectiles.
type Box struct {
	gamemath.Rect
	Vel *gamemath.Vector
}

func (b *Box) Bounds() gamemath.Rect { return b.Rect }

func (b *Box) SetPosition(x, y float64) {
	b.X = x
	b.Y = y
}

func (b *Box) Velocity() *gamemath.Vector { return b.Vel }
