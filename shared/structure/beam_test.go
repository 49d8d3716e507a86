package structure

import (
	"testing"

	"github.com/idiovoidi/gta-classic-arcade/shared/gamemath"
)

func TestBeamGlowExpires(t *testing.T) {
	b := NewBeam(gamemath.Rect{W: 8, H: 8}, 0)
	b.TriggerGlow()
	b.Update(600)

	if b.IsGlowing() {
		t.Fatal("expected glow to end after 600ms")
	}
	if b.GlowTimer() != 0 {
		t.Fatalf("expected timer reset to 0, got %v", b.GlowTimer())
	}
}

func TestBeamGlowPartialDecay(t *testing.T) {
	b := NewBeam(gamemath.Rect{W: 8, H: 8}, 500)
	b.TriggerGlow()
	b.Update(100)

	if !b.IsGlowing() {
		t.Fatal("expected beam still glowing")
	}
	if b.GlowTimer() != 400 {
		t.Fatalf("expected 400ms remaining, got %v", b.GlowTimer())
	}
	if b.GlowRatio() != 0.8 {
		t.Fatalf("expected glow ratio 0.8, got %v", b.GlowRatio())
	}
}

func TestBeamGlowRestartsInsteadOfStacking(t *testing.T) {
	b := NewBeam(gamemath.Rect{}, 500)
	b.TriggerGlow()
	b.Update(300)
	b.TriggerGlow()

	if b.GlowTimer() != 500 {
		t.Fatalf("expected timer restarted at 500, got %v", b.GlowTimer())
	}

	b.TriggerGlow()
	if b.GlowTimer() != 500 {
		t.Fatalf("expected repeated trigger to stay at 500, got %v", b.GlowTimer())
	}
}

func TestBeamExactExpiry(t *testing.T) {
	b := NewBeam(gamemath.Rect{}, 500)
	b.TriggerGlow()
	b.Update(500)
	if b.IsGlowing() {
		t.Fatal("expected glow to clear when the timer reaches zero")
	}
}

func TestBeamIdleUpdateDoesNothing(t *testing.T) {
	b := NewBeam(gamemath.Rect{}, 500)
	b.Update(100)
	if b.IsGlowing() || b.GlowTimer() != 0 || b.GlowRatio() != 0 {
		t.Fatal("expected idle beam to stay dark")
	}
}

func TestBeamIsIndestructible(t *testing.T) {
	b := NewBeam(gamemath.Rect{}, 500)
	if !b.IsInvincible() {
		t.Fatal("expected beam to be invincible")
	}

	ApplyHit(b, 1000)

	if !b.IsGlowing() {
		t.Fatal("expected a hit to trigger the glow")
	}
	if b.StructuralIntegrity() != IndestructibleIntegrity {
		t.Fatalf("expected integrity %d, got %d", IndestructibleIntegrity, b.StructuralIntegrity())
	}
}

func TestApplyHitDamagesWalls(t *testing.T) {
	w := NewWall(gamemath.Rect{W: 10, H: 10}, WallOptions{})
	ApplyHit(w, 40)
	if w.Health() != 60 {
		t.Fatalf("expected 60 health, got %v", w.Health())
	}
	ApplyHit(nil, 10)
}
