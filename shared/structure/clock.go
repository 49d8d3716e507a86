package structure

// Clock reports game time in milliseconds.
type Clock interface {
	Now() float64
}

// ClockFunc adapts a function to Clock.
type ClockFunc func() float64

func (f ClockFunc) Now() float64 { return f() }

// FrameClock is advanced once per tick by the game loop.
type FrameClock struct {
	now   float64
	ticks int
}

func NewFrameClock() *FrameClock {
	return &FrameClock{}
}

// Advance moves the clock forward by dt milliseconds. Negative steps are ignored.
func (c *FrameClock) Advance(dt float64) {
	if dt > 0 {
		c.now += dt
	}
	c.ticks++
}

func (c *FrameClock) Now() float64 { return c.now }

func (c *FrameClock) Ticks() int { return c.ticks }
