package config

import (
	"image/color"

	"github.com/automoto/streakdrawer/shared/reward"
	"github.com/yohamta/donburi/ecs"
)

// Render layers
const (
	Default ecs.LayerID = iota
	Overlay
)

// Config holds the logical screen size. The reward scene reads it once at
// mount; later window or device changes are scaled by Ebitengine.
type Config struct {
	Width  int
	Height int
}

// RenderConfig contains colours and offsets of the drawn scene
type RenderConfig struct {
	BackgroundTop     color.RGBA
	BackgroundBottom  color.RGBA
	BackgroundOffsetY float64 // background image is shifted down by this many pixels
	LightBoxColor     color.RGBA

	DrawerColor     color.RGBA
	DrawerEdgeColor color.RGBA
	DrawerTopRatio  float64 // fraction of the screen height above the drawer panel
	DrawerRadius    float64

	TokenFill   color.RGBA
	TokenBorder color.RGBA
	TokenShine  color.RGBA

	BadgeFill   color.RGBA
	BadgeRing   color.RGBA
	BadgeAccent color.RGBA

	ResetButtonColor   color.RGBA
	ResetButtonHover   color.RGBA
	ResetButtonPressed color.RGBA
	ResetTextColor     color.RGBA
	CounterTextColor   color.RGBA

	// Outline of tap regions when the debug overlay is on
	HitRegionColor color.RGBA
}

// SoundID identifies a synthesized chime
type SoundID int

const (
	SoundTokenLanded SoundID = iota
	SoundClaimed
)

// AudioConfig contains synthesized chime settings
type AudioConfig struct {
	SampleRate int
	Volume     float64
	LandedHz   []float64 // notes played when the token lands
	ClaimedHz  []float64 // notes played when the claim completes
	NoteMillis int
}

// PersistenceConfig contains claim statistics storage settings
type PersistenceConfig struct {
	Enabled bool
	AppName string
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	ShowOverlay bool // channel values, phase and hit regions
	AllowQuit   bool // Escape quits (desktop builds only)
}

// Global configuration instances
var C *Config
var Render RenderConfig
var Audio AudioConfig
var Persistence PersistenceConfig
var Debug DebugConfig
var Reward reward.Tuning

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Black        = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	ResetRed     = color.RGBA{R: 0xFF, G: 0x44, B: 0x44, A: 255}
	Silver       = color.RGBA{R: 0xC0, G: 0xC0, B: 0xC0, A: 255}
	SilverBorder = color.RGBA{R: 0xA0, G: 0xA0, B: 0xA0, A: 255}
	Orange       = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	BrightOrange = color.RGBA{R: 255, G: 180, B: 50, A: 255}
	DeepPurple   = color.RGBA{R: 36, G: 22, B: 64, A: 255}
	Lime         = color.RGBA{R: 0, G: 255, B: 60, A: 160}
)

func init() {
	Defaults()
}

// Defaults resets every configuration value to its built-in default.
func Defaults() {
	C = &Config{
		Width:  390,
		Height: 844,
	}

	Render = RenderConfig{
		BackgroundTop:     color.RGBA{R: 64, G: 120, B: 200, A: 255},
		BackgroundBottom:  color.RGBA{R: 24, G: 40, B: 90, A: 255},
		BackgroundOffsetY: 70,
		LightBoxColor:     Black,

		DrawerColor:     DeepPurple,
		DrawerEdgeColor: color.RGBA{R: 90, G: 70, B: 150, A: 255},
		DrawerTopRatio:  0.22,
		DrawerRadius:    28,

		TokenFill:   Silver,
		TokenBorder: SilverBorder,
		TokenShine:  color.RGBA{R: 235, G: 235, B: 240, A: 255},

		BadgeFill:   Orange,
		BadgeRing:   BrightOrange,
		BadgeAccent: White,

		ResetButtonColor:   ResetRed,
		ResetButtonHover:   color.RGBA{R: 255, G: 90, B: 90, A: 255},
		ResetButtonPressed: color.RGBA{R: 200, G: 40, B: 40, A: 255},
		ResetTextColor:     White,
		CounterTextColor:   White,

		HitRegionColor: Lime,
	}

	Audio = AudioConfig{
		SampleRate: 48000,
		Volume:     0.6,
		LandedHz:   []float64{880, 1318.5},
		ClaimedHz:  []float64{1046.5, 1318.5, 1568},
		NoteMillis: 90,
	}

	Persistence = PersistenceConfig{
		Enabled: true,
		AppName: "streakdrawer",
	}

	Debug = DebugConfig{
		ShowOverlay: false,
		AllowQuit:   true,
	}

	Reward = reward.DefaultTuning()
}
