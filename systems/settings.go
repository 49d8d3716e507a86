package systems

import (
	"github.com/idiovoidi/gta-classic-arcade/components"
	cfg "github.com/idiovoidi/gta-classic-arcade/config"
	"github.com/yohamta/donburi/ecs"
)

// GetOrCreateSettings returns the singleton Settings component, creating it with
// defaults from config if needed.
func GetOrCreateSettings(ecs *ecs.ECS) *components.SettingsData {
	entry, ok := components.Settings.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Settings))
		components.Settings.SetValue(entry, components.SettingsData{
			Debug:           cfg.Debug.Collision,
			ResolutionIndex: cfg.Window.DefaultResolutionIndex,
		})
	}
	return components.Settings.Get(entry)
}

// UpdateSettings handles the debug, fullscreen and resolution keys and saves any change.
func UpdateSettings(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)
	settings := GetOrCreateSettings(ecs)
	changed := false

	if input.JustPressed(cfg.ActionToggleDebug) {
		settings.Debug = !settings.Debug
		changed = true
	}
	if input.JustPressed(cfg.ActionToggleFullscreen) {
		settings.Fullscreen = !settings.Fullscreen
		applyWindow(settings)
		changed = true
	}
	if input.JustPressed(cfg.ActionCycleResolution) && len(cfg.Window.Resolutions) > 0 {
		settings.ResolutionIndex = (settings.ResolutionIndex + 1) % len(cfg.Window.Resolutions)
		applyWindow(settings)
		changed = true
	}

	if changed {
		SaveCurrentSettings(settings)
	}
}
