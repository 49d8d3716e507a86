package structure

import (
	"math/rand"
	"testing"

	"github.com/idiovoidi/gta-classic-arcade/shared/gamemath"
)

type spawnRequest struct {
	kind ParticleKind
	x, y float64
}

type recordingSpawner struct {
	requests []spawnRequest
}

func (r *recordingSpawner) SpawnSpecializedParticle(kind ParticleKind, x, y float64) {
	r.requests = append(r.requests, spawnRequest{kind: kind, x: x, y: y})
}

func (r *recordingSpawner) count(kind ParticleKind) int {
	n := 0
	for _, req := range r.requests {
		if req.kind == kind {
			n++
		}
	}
	return n
}

func newTestWall(sp ParticleSpawner, clock *FrameClock) *Wall {
	return NewWall(gamemath.Rect{X: 10, Y: 20, W: 40, H: 8}, WallOptions{
		Particles: sp,
		Clock:     clock,
		Rand:      rand.New(rand.NewSource(42)),
	})
}

func TestNewWallDefaults(t *testing.T) {
	w := newTestWall(nil, NewFrameClock())

	if w.Health() != DefaultWallHealth || w.MaxHealth() != DefaultWallHealth {
		t.Fatalf("expected full default health, got %v/%v", w.Health(), w.MaxHealth())
	}
	if w.IsDestroyed() {
		t.Fatal("expected new wall to be standing")
	}
	if w.DamageLevel() != 0 {
		t.Fatalf("expected damage level 0, got %d", w.DamageLevel())
	}
	if w.ShowHealthBar() {
		t.Error("expected no health bar on an undamaged wall")
	}
	if _, hit := w.LastHitTime(); hit {
		t.Error("expected no recorded hit on a new wall")
	}
}

func TestDamageLevelThresholds(t *testing.T) {
	tests := []struct {
		ratio float64
		want  int
	}{
		{1.0, 0},
		{0.75, 0},
		{0.7, 1},
		{0.5, 1},
		{0.4, 2},
		{0.3, 2},
		{0.2, 3},
		{0.1, 3},
		{0, 3},
	}
	for _, tt := range tests {
		if got := DamageLevelFor(tt.ratio); got != tt.want {
			t.Errorf("ratio %v: expected level %d, got %d", tt.ratio, tt.want, got)
		}
	}
}

func TestTakeDamageUpdatesDerivedState(t *testing.T) {
	clock := NewFrameClock()
	w := newTestWall(nil, clock)

	w.TakeDamage(25)
	if w.DamageLevel() != 0 || w.Color() != DefaultWallPalette[0] {
		t.Fatalf("expected level 0 at 75%%, got %d", w.DamageLevel())
	}

	clock.Advance(200)
	w.TakeDamage(5)
	if w.DamageLevel() != 1 {
		t.Fatalf("expected level 1 at exactly 70%%, got %d", w.DamageLevel())
	}
	if w.Color() != DefaultWallPalette[1] {
		t.Fatalf("expected tier 1 color, got %v", w.Color())
	}
	if !w.ShowHealthBar() {
		t.Error("expected health bar on a damaged wall")
	}
	if w.Alpha() != 1 {
		t.Errorf("expected opaque standing wall, got alpha %v", w.Alpha())
	}
}

func TestHealthIsMonotonicAndNonNegative(t *testing.T) {
	clock := NewFrameClock()
	w := newTestWall(&recordingSpawner{}, clock)
	rng := rand.New(rand.NewSource(3))

	prev := w.Health()
	for i := 0; i < 200; i++ {
		w.TakeDamage(rng.Float64() * 7)
		clock.Advance(16)
		if w.Health() > prev {
			t.Fatalf("health rose from %v to %v", prev, w.Health())
		}
		if w.Health() < 0 {
			t.Fatalf("health dropped below zero: %v", w.Health())
		}
		prev = w.Health()
	}
	if !w.IsDestroyed() {
		t.Fatal("expected wall to be destroyed after sustained damage")
	}
}

func TestNegativeAndZeroDamageLeaveHealth(t *testing.T) {
	w := newTestWall(nil, NewFrameClock())

	w.TakeDamage(0)
	w.TakeDamage(-50)
	if w.Health() != w.MaxHealth() {
		t.Fatalf("expected health unchanged, got %v", w.Health())
	}
}

func TestOverkillClampsToZeroAndDestroys(t *testing.T) {
	sp := &recordingSpawner{}
	w := newTestWall(sp, NewFrameClock())

	w.TakeDamage(250)

	if w.Health() != 0 {
		t.Fatalf("expected health 0, got %v", w.Health())
	}
	if !w.IsDestroyed() {
		t.Fatal("expected wall destroyed")
	}
	if got := sp.count(ParticleConcrete); got != 8 {
		t.Errorf("expected 8 concrete particles, got %d", got)
	}
	if got := sp.count(ParticleDust); got != 22 {
		t.Errorf("expected 22 dust particles, got %d", got)
	}
	if got := sp.count(ParticleSpark); got != 0 {
		t.Errorf("expected no impact sparks on the destroying hit, got %d", got)
	}

	cx, cy := w.Rect.Center()
	for _, req := range sp.requests {
		if req.x != cx || req.y != cy {
			t.Fatalf("expected destruction burst at (%v,%v), got (%v,%v)", cx, cy, req.x, req.y)
		}
	}
	if w.Alpha() != DestroyedAlpha {
		t.Errorf("expected destroyed alpha, got %v", w.Alpha())
	}
	if w.ShowHealthBar() {
		t.Error("expected no health bar once destroyed")
	}
}

func TestDestroyedWallIgnoresDamage(t *testing.T) {
	sp := &recordingSpawner{}
	clock := NewFrameClock()
	w := newTestWall(sp, clock)

	w.TakeDamage(100)
	requests := len(sp.requests)
	last, _ := w.LastHitTime()
	level := w.DamageLevel()
	col := w.Color()

	clock.Advance(1000)
	w.TakeDamage(10)
	w.Destroy()

	if len(sp.requests) != requests {
		t.Fatalf("expected no new particles, got %d more", len(sp.requests)-requests)
	}
	if got, _ := w.LastHitTime(); got != last {
		t.Fatalf("expected last hit time %v, got %v", last, got)
	}
	if w.Health() != 0 || !w.IsDestroyed() || w.DamageLevel() != level || w.Color() != col {
		t.Fatal("expected destroyed wall state to be unchanged")
	}
}

func TestImpactBurstComposition(t *testing.T) {
	sp := &recordingSpawner{}
	w := newTestWall(sp, NewFrameClock())

	w.TakeDamage(10)

	if got := sp.count(ParticleSpark); got != 3 {
		t.Errorf("expected 3 sparks, got %d", got)
	}
	if got := sp.count(ParticleDust); got != 2 {
		t.Errorf("expected 2 dust, got %d", got)
	}
	for _, req := range sp.requests {
		if !w.Rect.ContainsPoint(req.x, req.y) {
			t.Fatalf("impact particle at (%v,%v) outside wall %+v", req.x, req.y, w.Rect)
		}
	}
}

func TestImpactRateLimit(t *testing.T) {
	sp := &recordingSpawner{}
	clock := NewFrameClock()
	w := newTestWall(sp, clock)

	w.TakeDamage(1)
	clock.Advance(10)
	w.TakeDamage(1)

	if got := len(sp.requests); got != 5 {
		t.Fatalf("expected a single burst of 5 particles, got %d", got)
	}
	if last, _ := w.LastHitTime(); last != 10 {
		t.Fatalf("expected suppressed hit to still record time 10, got %v", last)
	}

	clock.Advance(100)
	w.TakeDamage(1)
	if got := len(sp.requests); got != 10 {
		t.Fatalf("expected a second burst after the interval, got %d particles", got)
	}
}

func TestDestructionCeilingFromBuilding(t *testing.T) {
	sp := &recordingSpawner{}
	w := NewWall(gamemath.Rect{W: 10, H: 10}, WallOptions{
		Particles: sp,
		Building:  func() (int, bool) { return 12, true },
	})

	w.TakeDamage(100)

	if got := sp.count(ParticleConcrete); got != 6 {
		t.Errorf("expected 6 concrete, got %d", got)
	}
	if got := sp.count(ParticleDust); got != 6 {
		t.Errorf("expected 6 dust, got %d", got)
	}
}

func TestDestructionCeilingFallsBackWhenBuildingGone(t *testing.T) {
	w := NewWall(gamemath.Rect{W: 10, H: 10}, WallOptions{
		Building: func() (int, bool) { return 0, false },
	})
	if got := w.DestructionCeiling(); got != 30 {
		t.Fatalf("expected default ceiling 30, got %d", got)
	}
}

func TestNilSpawnerIsTolerated(t *testing.T) {
	w := newTestWall(nil, NewFrameClock())
	w.TakeDamage(40)
	w.TakeDamage(100)
	if !w.IsDestroyed() {
		t.Fatal("expected wall destroyed without a particle pool")
	}
}

func TestWallUpdateIsNoop(t *testing.T) {
	w := newTestWall(nil, NewFrameClock())
	w.TakeDamage(30)
	before := *w
	w.Update(1000)
	if w.Health() != before.Health() || w.IsDestroyed() != before.IsDestroyed() {
		t.Fatal("expected Update to leave the wall unchanged")
	}
}
