package config

import "image/color"

// PlayerConfig contains all player-related configuration values
type PlayerConfig struct {
	// Spawn point used on every level (re)start
	SpawnX float64 `yaml:"spawn_x"`
	SpawnY float64 `yaml:"spawn_y"`

	// Movement (speeds in px/s, Acceleration applied once per step)
	Acceleration  float64 `yaml:"acceleration"`
	MaxSpeed      float64 `yaml:"max_speed"`
	Friction      float64 `yaml:"friction"`       // velocity multiplier per step with no input
	StopThreshold float64 `yaml:"stop_threshold"` // |vx| below this snaps to zero
	JumpSpeed     float64 `yaml:"jump_speed"`

	// Combat
	Health        int     `yaml:"health"`
	InvulnSeconds float64 `yaml:"invuln_seconds"`
	FaintY        float64 `yaml:"faint_y"` // where a fainted player is parked

	// Dimensions
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PhysicsConfig contains physics-related configuration values
type PhysicsConfig struct {
	Gravity   float64 `yaml:"gravity"`    // px/s^2
	FeetProbe float64 `yaml:"feet_probe"` // px below the feet used for treadmill checks
}

// EnemyConfig contains patrol enemy configuration
type EnemyConfig struct {
	PatrolSpeed     float64 `yaml:"patrol_speed"`
	StunDrag        float64 `yaml:"stun_drag"` // velocity multiplier per step while stunned
	KnockbackX      float64 `yaml:"knockback_x"`
	KnockbackY      float64 `yaml:"knockback_y"`
	ContactDamage   int     `yaml:"contact_damage"`
	DefaultPatrolHW float64 `yaml:"default_patrol_half_width"` // used when a spawn has no bounds
}

// BossConfig contains boss configuration
type BossConfig struct {
	ChaseSpeed     float64 `yaml:"chase_speed"`
	ChaseSmoothing float64 `yaml:"chase_smoothing"`
	StunDrag       float64 `yaml:"stun_drag"`
	KnockbackX     float64 `yaml:"knockback_x"`
	KnockbackY     float64 `yaml:"knockback_y"`
	ContactDamage  int     `yaml:"contact_damage"`

	// Health bar (screen space)
	BarX          float64 `yaml:"-"`
	BarY          float64 `yaml:"-"`
	BarSegment    float64 `yaml:"-"` // width per hit point
	BarHeight     float64 `yaml:"-"`
	BarOutlineMax int     `yaml:"-"` // hit points covered by the outline
}

// MegaphoneConfig contains the charge-and-release attack configuration
type MegaphoneConfig struct {
	MaxCharge        float64 `yaml:"max_charge"` // seconds
	CooldownBase     float64 `yaml:"cooldown_base"`
	CooldownPerPower float64 `yaml:"cooldown_per_power"`
	RadiusBase       float64 `yaml:"radius_base"`
	RadiusPerPower   float64 `yaml:"radius_per_power"`

	EnemyPush         float64 `yaml:"enemy_push"`
	EnemyStunBase     float64 `yaml:"enemy_stun_base"`
	EnemyStunPerPower float64 `yaml:"enemy_stun_per_power"`

	BossPush          float64 `yaml:"boss_push"`
	BossStunBase      float64 `yaml:"boss_stun_base"`
	BossStunPerPower  float64 `yaml:"boss_stun_per_power"`
	HeavyHitThreshold float64 `yaml:"heavy_hit_threshold"` // power above this deals HeavyDamage
	HeavyDamage       int     `yaml:"heavy_damage"`
	LightDamage       int     `yaml:"light_damage"`

	ReleasePitchPerPower float64 `yaml:"release_pitch_per_power"`
}

// TreadmillConfig contains conveyor configuration
type TreadmillConfig struct {
	Speed float64 `yaml:"speed"` // px/s applied to a grounded player
}

// ProgressionConfig contains level completion configuration
type ProgressionConfig struct {
	ExitMargin float64 `yaml:"exit_margin"` // player.x must exceed width - ExitMargin
}

// CameraConfig contains camera behavior configuration
type CameraConfig struct {
	LeadRatio float64 // fraction of the screen kept left of the player
}

// LoopConfig contains fixed-timestep driver configuration
type LoopConfig struct {
	TPS        int
	StepSize   float64 // seconds per simulation step
	MaxElapsed float64 // elapsed time is clamped to this before accumulating
}

// EffectsConfig contains hit feedback timings, in seconds and pixels
type EffectsConfig struct {
	HitFlash    float64 // enemy or boss struck by the megaphone
	DamageFlash float64 // player touched by a hostile

	HitFlashColor    color.RGBA
	DamageFlashColor color.RGBA

	HeavyShakeIntensity  float64
	HeavyShakeDuration   float64
	DamageShakeIntensity float64
	DamageShakeDuration  float64
}

// ColorConfig holds the palette used by the renderers
type ColorConfig struct {
	Sky         color.RGBA
	Platform    color.RGBA
	Treadmill   color.RGBA
	Collectible color.RGBA
	Enemy       color.RGBA
	Boss        color.RGBA
	BossEyes    color.RGBA
	BossMouth   color.RGBA
	BossBar     color.RGBA
	Player      color.RGBA
	PlayerHead  color.RGBA
	Megaphone   color.RGBA
	ChargeArc   color.RGBA
	Shadow      color.RGBA
	Text        color.RGBA
}

// HUDConfig contains HUD layout and copy
type HUDConfig struct {
	X           int
	LineY       [3]int
	Ready       string
	Recharging  string
	HighlightIn float32 // seconds for a new status message to settle
}

// PauseConfig contains pause overlay configuration values
type PauseConfig struct {
	OverlayColor color.RGBA
	TextColor    color.RGBA
	Title        string
	Hint         string
}

// MenuConfig contains title screen configuration values
type MenuConfig struct {
	BackgroundColor color.RGBA
	TitleColor      color.RGBA
	TextColor       color.RGBA
	Title           string
	Subtitle        string
	Controls        string
	StartHint       string
	TitleY          float64
}

// MessageConfig holds the status messages shown in the HUD
type MessageConfig struct {
	Intro         string
	Collected     string // formatted with the collectible label
	BossHit       string // formatted with the remaining hit points
	BossDefeated  string
	Fainted       string
	FaintedByBoss string
	LevelComplete string
}

// Config holds general game configuration
type Config struct {
	Width  int
	Height int
	Title  string
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	SkipMenu  bool // Skip menu and go directly to game
	ShowBoxes bool // Outline collision objects
	Mute      bool
}

// Global configuration instances
var C *Config
var Player PlayerConfig
var Physics PhysicsConfig
var Enemy EnemyConfig
var Boss BossConfig
var Megaphone MegaphoneConfig
var Treadmill TreadmillConfig
var Progression ProgressionConfig
var Camera CameraConfig
var Loop LoopConfig
var Colors ColorConfig
var Effects EffectsConfig
var HUD HUDConfig
var Pause PauseConfig
var Menu MenuConfig
var Message MessageConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Black        = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	BrightOrange = color.RGBA{R: 255, G: 180, B: 50, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
)

// Direction constants for facing
const (
	DirectionLeft  = -1.0
	DirectionRight = 1.0
)

func hex(v uint32) color.RGBA {
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 255}
}

func init() {
	C = &Config{
		Width:  960,
		Height: 560,
		Title:  "Ricardo Sacco - Megaphone Prototype",
	}

	Physics = PhysicsConfig{
		Gravity:   1400,
		FeetProbe: 1,
	}

	Player = PlayerConfig{
		SpawnX: 40,
		SpawnY: 480,

		Acceleration:  14,
		MaxSpeed:      220,
		Friction:      0.85,
		StopThreshold: 1,
		JumpSpeed:     -520,

		Health:        3,
		InvulnSeconds: 1.0,
		FaintY:        -9999,

		Width:  36,
		Height: 48,
	}

	Enemy = EnemyConfig{
		PatrolSpeed:     60,
		StunDrag:        0.9,
		KnockbackX:      200,
		KnockbackY:      -200,
		ContactDamage:   1,
		DefaultPatrolHW: 100,
	}

	Boss = BossConfig{
		ChaseSpeed:     120,
		ChaseSmoothing: 0.05,
		StunDrag:       0.9,
		KnockbackX:     260,
		KnockbackY:     -260,
		ContactDamage:  1,

		BarX:          20,
		BarY:          20,
		BarSegment:    20,
		BarHeight:     10,
		BarOutlineMax: 6,
	}

	Megaphone = MegaphoneConfig{
		MaxCharge:        1.2,
		CooldownBase:     0.6,
		CooldownPerPower: 0.4,
		RadiusBase:       120,
		RadiusPerPower:   160,

		EnemyPush:         220,
		EnemyStunBase:     0.6,
		EnemyStunPerPower: 0.5,

		BossPush:          300,
		BossStunBase:      0.4,
		BossStunPerPower:  0.4,
		HeavyHitThreshold: 0.9,
		HeavyDamage:       2,
		LightDamage:       1,

		ReleasePitchPerPower: 300,
	}

	Treadmill = TreadmillConfig{
		Speed: 70,
	}

	Progression = ProgressionConfig{
		ExitMargin: 80,
	}

	Camera = CameraConfig{
		LeadRatio: 0.45,
	}

	Loop = LoopConfig{
		TPS:        60,
		StepSize:   1.0 / 60.0,
		MaxElapsed: 0.033,
	}

	Colors = ColorConfig{
		Sky:         hex(0xbde0fe),
		Platform:    hex(0x2b2d42),
		Treadmill:   hex(0x495057),
		Collectible: hex(0xffd166),
		Enemy:       hex(0xef476f),
		Boss:        hex(0x222222),
		BossEyes:    hex(0xf1fa8c),
		BossMouth:   hex(0xffb703),
		BossBar:     hex(0xff006e),
		Player:      hex(0xffadad),
		PlayerHead:  hex(0xffd6a5),
		Megaphone:   hex(0xadb5bd),
		ChargeArc:   hex(0x00afb9),
		Shadow:      color.RGBA{A: 51},
		Text:        Black,
	}

	Effects = EffectsConfig{
		HitFlash:    0.12,
		DamageFlash: 0.25,

		HitFlashColor:    White,
		DamageFlashColor: hex(0xd00000),

		HeavyShakeIntensity:  6,
		HeavyShakeDuration:   0.25,
		DamageShakeIntensity: 3,
		DamageShakeDuration:  0.15,
	}

	HUD = HUDConfig{
		X:           20,
		LineY:       [3]int{50, 70, 90},
		Ready:       "ready",
		Recharging:  "recharging",
		HighlightIn: 0.6,
	}

	Pause = PauseConfig{
		OverlayColor: BlackOverlay,
		TextColor:    White,
		Title:        "Paused",
		Hint:         "P to resume",
	}

	Menu = MenuConfig{
		BackgroundColor: color.RGBA{R: 15, G: 25, B: 50, A: 255},
		TitleColor:      BrightOrange,
		TextColor:       White,
		Title:           "Ricardo Sacco, the Pumped-Up Showoff",
		Subtitle:        "Prototype",
		Controls:        "Arrows/A/D move - Up/W jump - Space megaphone - R restart level",
		StartHint:       "Press ENTER to start",
		TitleY:          180,
	}

	Message = MessageConfig{
		Intro:         "Press Space to unleash the Megaphone!",
		Collected:     "Collected: %s!",
		BossHit:       "Boss hit! HP %d",
		BossDefeated:  "Boss defeated! Congratulations, level complete.",
		Fainted:       "You fainted! Press R to restart.",
		FaintedByBoss: "Defeated by the Master-Father-Luloide! Press R to restart.",
		LevelComplete: "Objective complete! Moving on...",
	}

	// Debug Config (defaults, can be overridden by CLI flags)
	Debug = DebugConfig{
		SkipMenu:  false,
		ShowBoxes: false,
	}

	defaultTuning = currentTuning()
}
