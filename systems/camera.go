package systems

import (
	"math"

	"github.com/idiovoidi/gta-classic-arcade/components"
	"github.com/idiovoidi/gta-classic-arcade/config"
	"github.com/idiovoidi/gta-classic-arcade/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func UpdateCamera(e *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)

	updateScreenShake(cameraEntry, camera)

	vehicleEntry, ok := tags.Vehicle.First(e.World)
	if !ok {
		return
	}
	targetX, targetY := components.Object.Get(vehicleEntry).Rect().Center()

	levelEntry, ok := components.Level.First(e.World)
	if !ok {
		return
	}
	levelData := components.Level.Get(levelEntry)
	if levelData.CurrentCity == nil {
		return
	}

	screenWidth := float64(config.C.Width)
	screenHeight := float64(config.C.Height)
	targetX = clampAxis(targetX, screenWidth, float64(levelData.CurrentCity.MapWidth))
	targetY = clampAxis(targetY, screenHeight, float64(levelData.CurrentCity.MapHeight))

	camera.Position.X += (targetX - camera.Position.X) * config.Camera.FollowSmoothing
	camera.Position.Y += (targetY - camera.Position.Y) * config.Camera.FollowSmoothing
}

// clampAxis keeps the view inside the map. Maps smaller than the screen stay centered.
func clampAxis(target, screen, size float64) float64 {
	if size <= screen {
		return size / 2
	}
	return math.Max(screen/2, math.Min(size-screen/2, target))
}

// updateScreenShake sets the camera's shake offset and decrements duration
func updateScreenShake(cameraEntry *donburi.Entry, camera *components.CameraData) {
	camera.ShakeOffset.X, camera.ShakeOffset.Y = 0, 0
	if !cameraEntry.HasComponent(components.ScreenShake) {
		return
	}

	shake := components.ScreenShake.Get(cameraEntry)
	shake.Elapsed++

	progress := float64(shake.Duration-shake.Elapsed) / float64(shake.Duration)
	if progress < 0 {
		progress = 0
	}
	currentIntensity := shake.Intensity * progress

	camera.ShakeOffset.X = math.Sin(float64(shake.Elapsed)*1.1) * currentIntensity
	camera.ShakeOffset.Y = math.Cos(float64(shake.Elapsed)*1.3) * currentIntensity

	if shake.Elapsed >= shake.Duration {
		cameraEntry.RemoveComponent(components.ScreenShake)
	}
}

// TriggerScreenShake starts a screen shake effect
func TriggerScreenShake(ecs *ecs.ECS, intensity float64, duration int) {
	cameraEntry, ok := components.Camera.First(ecs.World)
	if !ok || duration <= 0 {
		return
	}

	if cameraEntry.HasComponent(components.ScreenShake) {
		shake := components.ScreenShake.Get(cameraEntry)
		// Only override if new shake is stronger
		if intensity > shake.Intensity {
			shake.Intensity = intensity
			shake.Duration = duration
			shake.Elapsed = 0
		}
	} else {
		donburi.Add(cameraEntry, components.ScreenShake, &components.ScreenShakeData{
			Intensity: intensity,
			Duration:  duration,
		})
	}
}

// cameraOffset returns the translation from world to screen space.
func cameraOffset(ecs *ecs.ECS, width, height int) (float64, float64, bool) {
	cameraEntry, ok := components.Camera.First(ecs.World)
	if !ok {
		return 0, 0, false
	}
	camera := components.Camera.Get(cameraEntry)
	x := float64(width)/2 - camera.Position.X - camera.ShakeOffset.X
	y := float64(height)/2 - camera.Position.Y - camera.ShakeOffset.Y
	return x, y, true
}
