package systems

import (
	"github.com/idiovoidi/gta-classic-arcade/components"
	cfg "github.com/idiovoidi/gta-classic-arcade/config"
	"github.com/idiovoidi/gta-classic-arcade/shared/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateParticles moves particles, slows them by their drag and fades them out.
// Fully faded particles are removed.
func UpdateParticles(ecs *ecs.ECS) {
	var toDestroy []*donburi.Entry
	dt := float32(1) / float32(cfg.C.TPS)

	components.Particle.Each(ecs.World, func(e *donburi.Entry) {
		p := components.Particle.Get(e)

		p.X += p.Velocity.X
		p.Y += p.Velocity.Y
		p.Velocity = gamemath.ApplyDrag(p.Velocity, p.Drag)

		if p.Fade == nil {
			toDestroy = append(toDestroy, e)
			return
		}
		alpha, done := p.Fade.Update(dt)
		p.Alpha = float64(alpha)
		if done {
			toDestroy = append(toDestroy, e)
		}
	})

	for _, e := range toDestroy {
		e.Remove()
	}
}
