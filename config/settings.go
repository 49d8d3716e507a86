package config

// Resolution represents a display resolution option
type Resolution struct {
	Width  int
	Height int
	Label  string
}

// WindowConfig contains window size options cycled with the resolution key
type WindowConfig struct {
	Title                  string
	Resolutions            []Resolution
	DefaultResolutionIndex int
}

// Window is the global window settings configuration
var Window WindowConfig

func init() {
	Window = WindowConfig{
		Title: "GTA Classic Arcade",
		Resolutions: []Resolution{
			{Width: 1280, Height: 720, Label: "1280 x 720"},
			{Width: 1600, Height: 900, Label: "1600 x 900"},
			{Width: 1920, Height: 1080, Label: "1920 x 1080"},
			{Width: 2560, Height: 1440, Label: "2560 x 1440"},
		},
		DefaultResolutionIndex: 0,
	}
}
