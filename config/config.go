package config

import (
	"image/color"

	"github.com/yohamta/donburi/ecs"
)

// Config holds the window layout
type Config struct {
	Width  int
	Height int

	// Top-left corner of the arena on screen
	ArenaX float64
	ArenaY float64
}

// ColorConfig groups the palette used by the renderers
type ColorConfig struct {
	Background color.RGBA
	Arena      color.RGBA
	ArenaEdge  color.RGBA

	Player     color.RGBA
	Hitbox     color.RGBA
	MissFlash  color.RGBA
	Shot       color.RGBA
	Bullet     color.RGBA
	Tick       color.RGBA
	SliderPart color.RGBA
	Angled     color.RGBA
	Constant   color.RGBA
}

// HUDConfig places the side panel text
type HUDConfig struct {
	X          float64
	Y          float64
	LineHeight float64
	TextColor  color.RGBA
	TitleColor color.RGBA
}

// PauseConfig contains the pause overlay configuration
type PauseConfig struct {
	OverlayColor color.RGBA
	TextColor    color.RGBA
}

// MenuConfig contains the beatmap picker configuration
type MenuConfig struct {
	BackgroundColor   color.RGBA
	TitleColor        color.RGBA
	TextColorNormal   color.RGBA
	TextColorSelected color.RGBA
	TitleY            float64
	MenuStartY        float64
	MenuItemHeight    float64
	MenuItemGap       float64
}

// ResultsConfig contains the end-of-song screen configuration
type ResultsConfig struct {
	BackgroundColor   color.RGBA
	ClearedColor      color.RGBA
	FailedColor       color.RGBA
	TextColorNormal   color.RGBA
	TextColorSelected color.RGBA
	TitleY            float64
	StatsY            float64
	MenuStartY        float64
	MenuItemHeight    float64
	MenuItemGap       float64
	MenuOptions       []string
}

// DebugConfig toggles developer aids. Values can be overridden by CLI flags.
type DebugConfig struct {
	ShowHitboxes bool
	BeatmapPath  string
	ConfigPath   string
}

var C *Config
var Colors ColorConfig
var HUD HUDConfig
var Pause PauseConfig
var Menu MenuConfig
var Results ResultsConfig
var Debug DebugConfig

// Default is the only render layer
const Default ecs.LayerID = 0

// Colors
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Yellow       = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	Orange       = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	BrightOrange = color.RGBA{R: 255, G: 180, B: 50, A: 255}
	LightGreen   = color.RGBA{R: 100, G: 255, B: 100, A: 255}
	Purple       = color.RGBA{R: 128, G: 0, B: 255, A: 255}
	LightRed     = color.RGBA{R: 255, G: 60, B: 60, A: 255}
	Magenta      = color.RGBA{R: 255, G: 0, B: 255, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
	LightBlue    = color.RGBA{R: 100, G: 180, B: 255, A: 255}
	DarkBlue     = color.RGBA{R: 20, G: 30, B: 60, A: 255}
)

func init() {
	C = &Config{
		Width:  640,
		Height: 480,
		ArenaX: 32,
		ArenaY: 48,
	}

	Colors = ColorConfig{
		Background: color.RGBA{R: 10, G: 10, B: 20, A: 255},
		Arena:      DarkBlue,
		ArenaEdge:  LightBlue,

		Player:     White,
		Hitbox:     LightRed,
		MissFlash:  LightRed,
		Shot:       LightGreen,
		Bullet:     Magenta,
		Tick:       Yellow,
		SliderPart: Purple,
		Angled:     Orange,
		Constant:   BrightOrange,
	}

	HUD = HUDConfig{
		X:          360,
		Y:          64,
		LineHeight: 22,
		TextColor:  White,
		TitleColor: BrightOrange,
	}

	Pause = PauseConfig{
		OverlayColor: BlackOverlay,
		TextColor:    White,
	}

	Menu = MenuConfig{
		BackgroundColor:   color.RGBA{R: 15, G: 25, B: 50, A: 255},
		TitleColor:        Orange,
		TextColorNormal:   White,
		TextColorSelected: BrightOrange,
		TitleY:            80,
		MenuStartY:        130,
		MenuItemHeight:    24,
		MenuItemGap:       10,
	}

	Results = ResultsConfig{
		BackgroundColor:   color.RGBA{R: 20, G: 15, B: 35, A: 255},
		ClearedColor:      LightGreen,
		FailedColor:       LightRed,
		TextColorNormal:   White,
		TextColorSelected: BrightOrange,
		TitleY:            100,
		StatsY:            150,
		MenuStartY:        260,
		MenuItemHeight:    24,
		MenuItemGap:       10,
		MenuOptions:       []string{"Retry", "Beatmaps"},
	}

	// Debug Config (defaults, can be overridden by CLI flags)
	Debug = DebugConfig{
		ShowHitboxes: false,
	}
}
