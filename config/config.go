package config

import (
	"image/color"

	"github.com/automoto/duodash/ability"
	"github.com/yohamta/donburi/ecs"
)

// Default is the single render layer every renderer draws on.
const Default ecs.LayerID = 0

// PixelsPerUnit converts world units (what the controllers use) to pixels.
const PixelsPerUnit = 32.0

// TPS is the fixed simulation rate.
const TPS = 60

// PlayerCount is the number of local players.
const PlayerCount = 2

// PlayerConfig contains per-player configuration values
type PlayerConfig struct {
	Name  string
	Color color.RGBA

	// Movement, probe and abilities, in world units and seconds
	Ability ability.Config

	// Rigid body gravity multiplier, read once by the controller
	GravityScale float64

	// Dimensions (pixels)
	CollisionWidth  int
	CollisionHeight int

	ControlScheme ControlSchemeID
}

// PhysicsConfig contains physics-related configuration values
type PhysicsConfig struct {
	Gravity      float64 // units/s^2, Y up
	MaxFallSpeed float64 // units/s
	CellSize     int     // resolv broadphase cell, pixels
}

// CameraConfig contains split-screen camera configuration
type CameraConfig struct {
	MergeDistance   float64 // world units between players before splitting
	TransitionSpeed float64 // viewport lerp rate per second
	FollowSmoothing float64 // how fast a camera follows its target (0.0-1.0)
	DividerColor    color.RGBA
	DividerWidth    float32
}

// TrailConfig contains dash trail ghost configuration
type TrailConfig struct {
	Interval   float64 // seconds between ghosts
	Lifetime   float64 // seconds for a ghost to fade out
	StartAlpha float64
}

// SquashStretchConfig contains squash/stretch effect configuration
type SquashStretchConfig struct {
	JumpScaleX float64 // horizontal scale on jump (< 1 = narrower)
	JumpScaleY float64 // vertical scale on jump (> 1 = taller)
	LandScaleX float64
	LandScaleY float64
	Duration   float64 // seconds to ease back to 1
}

// LevelConfig contains level drawing colors
type LevelConfig struct {
	BackgroundColor color.RGBA
	GroundColor     color.RGBA
	ThroughColor    color.RGBA
	EnemyColor      color.RGBA
	ProbeColor      color.RGBA
}

// HUDConfig contains ability cooldown HUD configuration
type HUDConfig struct {
	BarWidth   float64
	BarHeight  float64
	Margin     float64
	BarBgColor color.RGBA
	ReadyColor color.RGBA
	BusyColor  color.RGBA
	TextColor  color.RGBA
}

// PauseConfig contains pause menu configuration values
type PauseConfig struct {
	OverlayColor color.RGBA
	PanelColor   color.RGBA
	Title        string
}

// MenuConfig contains main menu configuration values
type MenuConfig struct {
	BackgroundColor color.RGBA
	TitleColor      color.RGBA
	Title           string
	Subtitle        string
}

// ButtonConfig contains ebitenui button colors shared by every menu
type ButtonConfig struct {
	Idle      color.RGBA
	Hover     color.RGBA
	Pressed   color.RGBA
	Disabled  color.RGBA
	TextColor color.RGBA
	Width     int
	Height    int
}

type DebugConfig struct {
	Enabled     bool   // verbose logging
	SkipMenu    bool   // Skip menu and go directly to game
	ShowProbe   bool   // draw the ground probe gizmo
	LevelIndex  int    // level loaded by -skipmenu
	TuningPath  string // optional YAML overrides
	WatchTuning bool   // reload TuningPath on change
	LogPath     string // rolling log file, empty for stderr only
}

// Config holds general game configuration
type Config struct {
	Width   int
	Height  int
	Title   string
	AppName string // gdata storage namespace
}

// Global configuration instances
var C *Config
var Players [PlayerCount]PlayerConfig
var Physics PhysicsConfig
var Camera CameraConfig
var Trail TrailConfig
var SquashStretch SquashStretchConfig
var Level LevelConfig
var HUD HUDConfig
var Pause PauseConfig
var Menu MenuConfig
var Button ButtonConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Orange       = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	BrightOrange = color.RGBA{R: 255, G: 180, B: 50, A: 255}
	Red          = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	Green        = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	LightRed     = color.RGBA{R: 255, G: 60, B: 60, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
	LightBlue    = color.RGBA{R: 100, G: 180, B: 255, A: 255}
	DarkBlue     = color.RGBA{R: 60, G: 100, B: 160, A: 255}
	Grey         = color.RGBA{R: 90, G: 90, B: 100, A: 255}
)

// Direction constants for player facing
const (
	DirectionLeft  = -1.0
	DirectionRight = 1.0
)

func init() {
	C = &Config{
		Width:   640,
		Height:  360,
		Title:   "Duodash",
		AppName: "duodash",
	}

	Physics = PhysicsConfig{
		Gravity:      -9.8,
		MaxFallSpeed: 20,
		CellSize:     16,
	}

	// Player 1 is the dash variant, player 2 the invisibility variant.
	dasher := ability.DefaultConfig()
	dasher.Dash = &ability.DashConfig{
		Power:    24,
		Time:     0.2,
		Cooldown: 1.0,
	}
	ghost := ability.DefaultConfig()
	ghost.Invisible = &ability.InvisibleConfig{
		Time:       3,
		Cooldown:   5,
		Opacity:    0.5,
		ThroughTag: ability.DefaultThrough,
	}

	Players = [PlayerCount]PlayerConfig{
		{
			Name:            "player1",
			Color:           LightBlue,
			Ability:         dasher,
			GravityScale:    1,
			CollisionWidth:  20,
			CollisionHeight: 30,
			ControlScheme:   ControlSchemeWASD,
		},
		{
			Name:            "player2",
			Color:           BrightOrange,
			Ability:         ghost,
			GravityScale:    1,
			CollisionWidth:  20,
			CollisionHeight: 30,
			ControlScheme:   ControlSchemeArrows,
		},
	}

	Camera = CameraConfig{
		MergeDistance:   8,
		TransitionSpeed: 3,
		FollowSmoothing: 0.1,
		DividerColor:    color.RGBA{R: 10, G: 10, B: 15, A: 255},
		DividerWidth:    2,
	}

	Trail = TrailConfig{
		Interval:   0.03,
		Lifetime:   0.25,
		StartAlpha: 0.6,
	}

	SquashStretch = SquashStretchConfig{
		JumpScaleX: 0.7,
		JumpScaleY: 1.4,
		LandScaleX: 1.3,
		LandScaleY: 0.75,
		Duration:   0.2,
	}

	Level = LevelConfig{
		BackgroundColor: color.RGBA{R: 18, G: 22, B: 38, A: 255},
		GroundColor:     color.RGBA{R: 70, G: 80, B: 110, A: 255},
		ThroughColor:    color.RGBA{R: 120, G: 90, B: 170, A: 160},
		EnemyColor:      LightRed,
		ProbeColor:      Green,
	}

	HUD = HUDConfig{
		BarWidth:   60,
		BarHeight:  5,
		Margin:     8,
		BarBgColor: color.RGBA{R: 40, G: 40, B: 40, A: 200},
		ReadyColor: Green,
		BusyColor:  Orange,
		TextColor:  White,
	}

	Pause = PauseConfig{
		OverlayColor: BlackOverlay,
		PanelColor:   color.RGBA{R: 20, G: 20, B: 30, A: 230},
		Title:        "PAUSED",
	}

	Menu = MenuConfig{
		BackgroundColor: color.RGBA{R: 15, G: 25, B: 50, A: 255},
		TitleColor:      Orange,
		Title:           "DUODASH",
		Subtitle:        "P1: A/D move  W jump  LShift dash   |   P2: arrows  Up jump  RShift vanish",
	}

	Button = ButtonConfig{
		Idle:      DarkBlue,
		Hover:     LightBlue,
		Pressed:   color.RGBA{R: 40, G: 70, B: 120, A: 255},
		Disabled:  Grey,
		TextColor: White,
		Width:     160,
		Height:    24,
	}

	// Debug Config (defaults, can be overridden by CLI flags)
	Debug = DebugConfig{
		LevelIndex: 0,
	}
}

// Defaults returns the compiled-in controller config for player i, before
// any tuning file is applied.
func Defaults(i int) ability.Config {
	return defaults[i]
}

var (
	defaults            [PlayerCount]ability.Config
	defaultGravityScale [PlayerCount]float64
	defaultPhysics      PhysicsConfig
	defaultCamera       CameraConfig
)

func init() {
	for i := range Players {
		defaults[i] = Players[i].Ability
		defaultGravityScale[i] = Players[i].GravityScale
	}
	defaultPhysics = Physics
	defaultCamera = Camera
}
