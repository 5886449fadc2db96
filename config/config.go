package config

import (
	"image/color"

	"github.com/yohamta/donburi/ecs"
)

// Units is the fixed size of the virtual viewport, in world units. The game
// is authored entirely in this coordinate system; pixel resolution only
// matters to the camera fit.
type Units struct {
	Width  float64
	Height float64
}

// Config holds top-level window and viewport configuration
type Config struct {
	Title        string
	WindowWidth  int
	WindowHeight int
	Units        Units
}

// BounceConfig contains bouncer movement configuration
type BounceConfig struct {
	Speed  float64 // units advanced per tick
	Margin float64 // extra width beyond the viewport before the turnaround
}

// SpaceConfig describes the resolv collision space that hosts the bouncer.
// The space frame is top-left anchored and covers the full bounce range.
type SpaceConfig struct {
	Width    float64
	Height   float64
	CellSize int
}

// EffectsConfig contains squash effect tuning
type EffectsConfig struct {
	SquashScale   float32 // horizontal scale at the bottom of the squash
	SquashInTime  float32 // seconds to compress
	SquashOutTime float32 // seconds to release
}

// OverlayConfig contains debug overlay layout values
type OverlayConfig struct {
	Margin     int
	LineHeight int
	TextColor  color.RGBA
}

// TitleConfig contains title scene layout values
type TitleConfig struct {
	TitleY     int
	HintMargin int
	TitleColor color.RGBA
	HintColor  color.RGBA
}

// DebugConfig contains debug/testing options
type DebugConfig struct {
	SkipTitle   bool // skip the title scene and go directly to the stage
	ShowOverlay bool // start with the debug overlay visible
}

// Default is the ECS layer all entities and renderers live on
const Default ecs.LayerID = iota

// Global configuration instances
var C *Config
var Bounce BounceConfig
var Space SpaceConfig
var Effects EffectsConfig
var Overlay OverlayConfig
var Title TitleConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White     = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Black     = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	DarkTile  = color.RGBA{R: 34, G: 38, B: 46, A: 255}
	LightTile = color.RGBA{R: 46, G: 52, B: 64, A: 255}
	Hover     = color.RGBA{R: 255, G: 214, B: 140, A: 255}
	LightBlue = color.RGBA{R: 100, G: 180, B: 255, A: 255}
)

func init() {
	C = &Config{
		Title:        "Letterbox",
		WindowWidth:  1280,
		WindowHeight: 720,
		Units: Units{
			Width:  20.0,
			Height: 15.0,
		},
	}

	Bounce = BounceConfig{
		Speed:  1.0 / 6.0,
		Margin: 4.0,
	}

	// Bounce range plus the turnaround overshoot on both sides.
	Space = SpaceConfig{
		Width:    C.Units.Width + 2*Bounce.Margin,
		Height:   C.Units.Height,
		CellSize: 1,
	}

	Effects = EffectsConfig{
		SquashScale:   0.65,
		SquashInTime:  0.08,
		SquashOutTime: 0.22,
	}

	Overlay = OverlayConfig{
		Margin:     10,
		LineHeight: 16,
		TextColor:  White,
	}

	Title = TitleConfig{
		TitleY:     120,
		HintMargin: 48,
		TitleColor: White,
		HintColor:  LightBlue,
	}

	Debug = DebugConfig{
		SkipTitle:   false,
		ShowOverlay: false,
	}
}
