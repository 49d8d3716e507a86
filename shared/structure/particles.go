// Package structure holds the destructible building pieces: walls that take damage,
// invincible support beams, the building collider and the particle budget applied to
// damage events. It has no dependencies on ebitengine, donburi, or resolv.
package structure

// ParticleKind tags a spawn request so the pool can pick visuals.
type ParticleKind string

const (
	ParticleSpark    ParticleKind = "spark"
	ParticleDust     ParticleKind = "dust"
	ParticleConcrete ParticleKind = "concrete"
)

// ParticleSpawner is the external particle pool. Calls are fire-and-forget.
type ParticleSpawner interface {
	SpawnSpecializedParticle(kind ParticleKind, x, y float64)
}

// EmissionPolicy bounds the particle bursts emitted by wall damage.
type EmissionPolicy struct {
	MinImpactInterval         float64 // ms between impact bursts
	MaxSparks                 int
	MaxConcrete               int
	DefaultDestructionCeiling int
}

// DefaultEmissionPolicy returns the stock budget: 100ms impact spacing, 3 sparks,
// 8 concrete chunks and a 30 particle destruction ceiling.
func DefaultEmissionPolicy() EmissionPolicy {
	return EmissionPolicy{
		MinImpactInterval:         100,
		MaxSparks:                 3,
		MaxConcrete:               8,
		DefaultDestructionCeiling: 30,
	}
}

// ImpactAllowed reports whether an impact burst may fire at now.
// The first hit on a wall is always allowed.
func (p EmissionPolicy) ImpactAllowed(now, lastHit float64, hasHit bool) bool {
	if !hasHit {
		return true
	}
	return now-lastHit >= p.MinImpactInterval
}

// ImpactBurst splits a per-impact ceiling into sparks and dust.
func (p EmissionPolicy) ImpactBurst(ceiling int) (sparks, dust int) {
	if ceiling <= 0 {
		return 0, 0
	}
	sparks = min(p.MaxSparks, ceiling)
	return sparks, ceiling - sparks
}

// DestructionBurst splits a destruction ceiling into concrete and dust. Concrete takes
// at most half of the ceiling and never more than MaxConcrete.
func (p EmissionPolicy) DestructionBurst(ceiling int) (concrete, dust int) {
	if ceiling <= 0 {
		return 0, 0
	}
	concrete = min(p.MaxConcrete, ceiling/2)
	return concrete, ceiling - concrete
}

// emit forwards count requests of kind to sp. A nil spawner drops them.
func emit(sp ParticleSpawner, kind ParticleKind, count int, x, y float64) {
	if sp == nil {
		return
	}
	for i := 0; i < count; i++ {
		sp.SpawnSpecializedParticle(kind, x, y)
	}
}
