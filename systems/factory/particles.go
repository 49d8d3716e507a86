package factory

import (
	"log"
	"math"
	"math/rand"

	"github.com/idiovoidi/gta-classic-arcade/archetypes"
	"github.com/idiovoidi/gta-classic-arcade/components"
	cfg "github.com/idiovoidi/gta-classic-arcade/config"
	"github.com/idiovoidi/gta-classic-arcade/shared/gamemath"
	"github.com/idiovoidi/gta-classic-arcade/shared/structure"
	"github.com/idiovoidi/gta-classic-arcade/tags"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/filter"
)

// ParticlePool spawns particle entities on request from walls.
// Requests beyond Capacity live particles are dropped.
type ParticlePool struct {
	ecs      *ecs.ECS
	rng      *rand.Rand
	live     *donburi.Query
	Capacity int
	Dropped  int
}

var _ structure.ParticleSpawner = (*ParticlePool)(nil)

func NewParticlePool(ecs *ecs.ECS, rng *rand.Rand, capacity int) *ParticlePool {
	return &ParticlePool{
		ecs:      ecs,
		rng:      rng,
		live:     donburi.NewQuery(filter.Contains(tags.Particle)),
		Capacity: capacity,
	}
}

// Live returns how many particles currently exist.
func (p *ParticlePool) Live() int {
	return p.live.Count(p.ecs.World)
}

func (p *ParticlePool) SpawnSpecializedParticle(kind structure.ParticleKind, x, y float64) {
	kc, ok := cfg.Particles.Kinds[kind]
	if !ok {
		log.Printf("Warning: unknown particle kind %q", kind)
		return
	}
	if p.Live() >= p.Capacity {
		p.Dropped++
		return
	}

	angle := p.rng.Float64() * 2 * math.Pi
	speed := kc.MinSpeed + p.rng.Float64()*(kc.MaxSpeed-kc.MinSpeed)

	e := archetypes.Particle.Spawn(p.ecs)
	components.Particle.SetValue(e, components.ParticleData{
		Kind:     kind,
		X:        x,
		Y:        y,
		Velocity: gamemath.FromAngle(angle).Scale(speed),
		Drag:     kc.Drag,
		Size:     kc.Size,
		Color:    kc.Color,
		Alpha:    1,
		Fade:     gween.New(1, 0, float32(kc.Lifetime), ease.OutQuad),
	})
}
