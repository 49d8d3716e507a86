package config

import (
	"image/color"
	"os"
	"strconv"

	"github.com/idiovoidi/gta-classic-arcade/shared/structure"
	"github.com/yohamta/donburi/ecs"
)

// Default is the single render layer the city scene draws on.
const Default ecs.LayerID = 0

// Config holds general game configuration
type Config struct {
	Width       int
	Height      int
	TPS         int
	FrameMillis float64 // game clock advance per tick
}

// WallConfig contains destructible wall configuration values
type WallConfig struct {
	MaxHealth          float64
	MaxImpactParticles int
	Palette            [4]color.RGBA // fill color per damage level

	// Health bar overlay
	HealthBarHeight float64
	HealthBarBg     color.RGBA
	HealthBarFg     color.RGBA
}

// BeamConfig contains support beam configuration values
type BeamConfig struct {
	GlowDuration float64 // ms
	Color        color.RGBA
	GlowColor    color.RGBA
}

// ParticleKindConfig describes how one particle kind looks and moves
type ParticleKindConfig struct {
	Color    color.RGBA
	MinSpeed float64 // pixels per frame
	MaxSpeed float64
	Drag     float64 // speed lost per frame
	Lifetime float64 // seconds
	Size     float64
}

// ParticleConfig contains the emission budget and particle pool configuration
type ParticleConfig struct {
	MinImpactInterval         float64 // ms between impact bursts on one wall
	MaxSparks                 int
	MaxConcrete               int
	DefaultDestructionCeiling int

	PoolCapacity int // live particles allowed at once
	Kinds        map[structure.ParticleKind]ParticleKindConfig
}

// BuildingConfig contains building layout values
type BuildingConfig struct {
	WallThickness float64
	SegmentLength float64
	BeamSize      float64
	BeamSpacing   float64 // along edges when beams = "edges"
	FloorColor    color.RGBA
}

// VehicleConfig contains player vehicle values
type VehicleConfig struct {
	Width        float64
	Height       float64
	Acceleration float64
	Reverse      float64
	MaxSpeed     float64
	Friction     float64
	TurnRate     float64 // radians per frame at full speed
	Color        color.RGBA
	WindowColor  color.RGBA
}

// ProjectileConfig contains the vehicle gun values
type ProjectileConfig struct {
	Speed          float64
	Damage         float64
	Size           float64
	CooldownFrames int
	LifetimeFrames int
	Color          color.RGBA
}

// CameraConfig contains camera behavior configuration
type CameraConfig struct {
	FollowSmoothing float64 // How fast camera follows the vehicle (0.0-1.0)
}

// ScreenShakeConfig contains screen shake effect configuration
type ScreenShakeConfig struct {
	CollapseIntensity float64 // pixels
	CollapseDuration  int     // frames
}

// UIConfig contains HUD configuration values
type UIConfig struct {
	HUDFontSize  float64
	HUDMargin    float64
	HUDTextColor color.RGBA
	GroundColor  color.RGBA
	RoadColor    color.RGBA
	RoadSpacing  float64
}

// DebugConfig contains debug/testing options read from the environment
type DebugConfig struct {
	Collision bool  // DEBUG_COLLISION: start with collision outlines on
	Seed      int64 // CITY_SEED: particle RNG seed, 0 = time based
}

// Global configuration instances
var C *Config
var Wall WallConfig
var Beam BeamConfig
var Particles ParticleConfig
var Building BuildingConfig
var Vehicle VehicleConfig
var Projectile ProjectileConfig
var Camera CameraConfig
var ScreenShake ScreenShakeConfig
var UI UIConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Yellow       = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	Orange       = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	Red          = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	Green        = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	LightBlue    = color.RGBA{R: 100, G: 180, B: 255, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
)

func init() {
	C = &Config{
		Width:       640,
		Height:      360,
		TPS:         60,
		FrameMillis: 1000.0 / 60.0,
	}

	Wall = WallConfig{
		MaxHealth:          structure.DefaultWallHealth,
		MaxImpactParticles: structure.DefaultMaxImpactParticles,
		Palette:            structure.DefaultWallPalette,
		HealthBarHeight:    2,
		HealthBarBg:        color.RGBA{R: 60, G: 0, B: 0, A: 200},
		HealthBarFg:        color.RGBA{R: 40, G: 220, B: 40, A: 255},
	}

	Beam = BeamConfig{
		GlowDuration: structure.DefaultGlowDuration,
		Color:        color.RGBA{R: 70, G: 76, B: 92, A: 255},
		GlowColor:    color.RGBA{R: 255, G: 220, B: 120, A: 255},
	}

	policy := structure.DefaultEmissionPolicy()
	Particles = ParticleConfig{
		MinImpactInterval:         policy.MinImpactInterval,
		MaxSparks:                 policy.MaxSparks,
		MaxConcrete:               policy.MaxConcrete,
		DefaultDestructionCeiling: policy.DefaultDestructionCeiling,
		PoolCapacity:              600,
		Kinds: map[structure.ParticleKind]ParticleKindConfig{
			structure.ParticleSpark: {
				Color:    color.RGBA{R: 255, G: 210, B: 90, A: 255},
				MinSpeed: 2.0,
				MaxSpeed: 4.5,
				Drag:     0.15,
				Lifetime: 0.25,
				Size:     1.5,
			},
			structure.ParticleDust: {
				Color:    color.RGBA{R: 170, G: 160, B: 145, A: 200},
				MinSpeed: 0.3,
				MaxSpeed: 1.2,
				Drag:     0.02,
				Lifetime: 0.9,
				Size:     3,
			},
			structure.ParticleConcrete: {
				Color:    color.RGBA{R: 120, G: 120, B: 120, A: 255},
				MinSpeed: 1.0,
				MaxSpeed: 3.0,
				Drag:     0.08,
				Lifetime: 1.4,
				Size:     3.5,
			},
		},
	}

	Building = BuildingConfig{
		WallThickness: 8,
		SegmentLength: 32,
		BeamSize:      10,
		BeamSpacing:   64,
		FloorColor:    color.RGBA{R: 48, G: 44, B: 40, A: 255},
	}

	Vehicle = VehicleConfig{
		Width:        14,
		Height:       14,
		Acceleration: 0.18,
		Reverse:      0.1,
		MaxSpeed:     4.0,
		Friction:     0.05,
		TurnRate:     0.06,
		Color:        color.RGBA{R: 200, G: 40, B: 40, A: 255},
		WindowColor:  color.RGBA{R: 120, G: 200, B: 255, A: 255},
	}

	Projectile = ProjectileConfig{
		Speed:          7,
		Damage:         4,
		Size:           3,
		CooldownFrames: 4,
		LifetimeFrames: 90,
		Color:          Yellow,
	}

	Camera = CameraConfig{
		FollowSmoothing: 0.12,
	}

	ScreenShake = ScreenShakeConfig{
		CollapseIntensity: 4,
		CollapseDuration:  18,
	}

	UI = UIConfig{
		HUDFontSize:  10,
		HUDMargin:    8,
		HUDTextColor: White,
		GroundColor:  color.RGBA{R: 34, G: 70, B: 38, A: 255},
		RoadColor:    color.RGBA{R: 52, G: 52, B: 56, A: 255},
		RoadSpacing:  160,
	}

	Debug = DebugConfig{
		Collision: os.Getenv("DEBUG_COLLISION") != "",
	}
	if seed, err := strconv.ParseInt(os.Getenv("CITY_SEED"), 10, 64); err == nil {
		Debug.Seed = seed
	}
}

// EmissionPolicy builds the particle budget from Particles.
func EmissionPolicy() structure.EmissionPolicy {
	return structure.EmissionPolicy{
		MinImpactInterval:         Particles.MinImpactInterval,
		MaxSparks:                 Particles.MaxSparks,
		MaxConcrete:               Particles.MaxConcrete,
		DefaultDestructionCeiling: Particles.DefaultDestructionCeiling,
	}
}
