// Package gameconfig defines the tunables shared by the conversion pipeline,
// the player simulation and the client. It must have zero dependencies on
// ebiten or any graphics library so the simulation stays headless.
package gameconfig

// ArenaConfig describes the playfield. Hit object coordinates live in the
// base space; projectiles and the player live in the actual (narrowed) space.
type ArenaConfig struct {
	BaseWidth    float64 `yaml:"base_width"`
	BaseHeight   float64 `yaml:"base_height"`
	ActualWidth  float64 `yaml:"actual_width"`
	ActualHeight float64 `yaml:"actual_height"`

	// XScale maps base-space X into actual-space X. Y is always halved.
	XScale float64 `yaml:"x_scale"`
	YScale float64 `yaml:"y_scale"`
}

// PlayerConfig contains all player-related configuration values
type PlayerConfig struct {
	// Movement, in pixels per millisecond
	BaseSpeed       float64 `yaml:"base_speed"`
	FocusMultiplier float64 `yaml:"focus_multiplier"`

	// Shooting
	ShootDelay float64 `yaml:"shoot_delay"` // ms between automatic re-fires while Shoot is held

	// Footprint of the avatar; position is clamped to the arena inset by half of it
	FootprintWidth  float64 `yaml:"footprint_width"`
	FootprintHeight float64 `yaml:"footprint_height"`

	// Hitbox is the small core that collides with projectiles
	HitboxSize float64 `yaml:"hitbox_size"`

	// Spawn offset from the bottom edge
	SpawnBottomOffset float64 `yaml:"spawn_bottom_offset"`

	// Visual timings (ms)
	DeathFadeDuration float64 `yaml:"death_fade_duration"`
	MissFlashDuration float64 `yaml:"miss_flash_duration"`

	// Lives in the arena; each hit costs one and grants InvulnDuration ms of grace
	StartingLives  int     `yaml:"starting_lives"`
	InvulnDuration float64 `yaml:"invuln_duration"`
}

// PatternConfig contains the procedural generation constants
type PatternConfig struct {
	// Circles
	BulletsPerImpact      int     `yaml:"bullets_per_impact"`
	ImpactAngleOffset     float64 `yaml:"impact_angle_offset"`
	DefaultCircleMinCount int     `yaml:"default_circle_min_count"`
	DefaultCircleMaxCount int     `yaml:"default_circle_max_count"`
	DefaultCircleAngle    float64 `yaml:"default_circle_angle"` // extra rotation per index in combo

	// Sliders
	BulletsPerSliderRepeat  int     `yaml:"bullets_per_slider_repeat"`
	SliderAnglePerSpan      float64 `yaml:"slider_angle_per_span"`
	MaxBodyBulletsPerSpan   float64 `yaml:"max_body_bullets_per_span"`
	BodyBulletSpacing       float64 `yaml:"body_bullet_spacing"`  // path length per body bullet
	TailBulletDistance      int     `yaml:"tail_bullet_distance"` // path length per tail bullet
	MinTailBullets          int     `yaml:"min_tail_bullets"`
	MaxTailBullets          int     `yaml:"max_tail_bullets"`
	TickBulletAngle         float64 `yaml:"tick_bullet_angle"`
	BuzzSpanThreshold       float64 `yaml:"buzz_span_threshold"` // ms; shorter repeated spans are buzz sliders
	TickSampleName          string  `yaml:"tick_sample_name"`
	MinimumTickDistanceMult float64 `yaml:"minimum_tick_distance_mult"` // velocity multiplier kept clear of the slider end

	// Spinners
	BulletsPerSpinnerSpan int     `yaml:"bullets_per_spinner_span"`
	SpinnerSpanDelay      float64 `yaml:"spinner_span_delay"`
	SpinnerAnglePerSpan   float64 `yaml:"spinner_angle_per_span"`
	SpinnerReferenceBeat  float64 `yaml:"spinner_reference_beat"` // beat length giving magnitude 1
	SpinnerMinMagnitude   float64 `yaml:"spinner_min_magnitude"`
	SpinnerMaxMagnitude   float64 `yaml:"spinner_max_magnitude"`

	// Shaped explosions
	ShapedExplosionMagnitude float64 `yaml:"shaped_explosion_magnitude"`
}

// ConversionConfig holds the slider speed mapping used in post-processing
type ConversionConfig struct {
	SpeedFromLow  float64 `yaml:"speed_from_low"`
	SpeedFromHigh float64 `yaml:"speed_from_high"`
	SpeedToLow    float64 `yaml:"speed_to_low"`
	SpeedToHigh   float64 `yaml:"speed_to_high"`

	// Scoring distance of a slider at multiplier 1
	BaseScoringDistance float64 `yaml:"base_scoring_distance"`

	// Default beat length when a map has no timing points
	DefaultBeatLength  float64 `yaml:"default_beat_length"`
	MinSpeedMultiplier float64 `yaml:"min_speed_multiplier"`
	MaxSpeedMultiplier float64 `yaml:"max_speed_multiplier"`
}

// MotionConfig is consumed by the client when it moves active projectiles
type MotionConfig struct {
	BulletSpeed      float64 `yaml:"bullet_speed"` // px per ms at multiplier 1
	ShotSpeed        float64 `yaml:"shot_speed"`
	ShotSpread       float64 `yaml:"shot_spread"` // degrees between the side shots when unfocused
	ProjectileRadius float64 `yaml:"projectile_radius"`
	ShotSize         float64 `yaml:"shot_size"`
	DespawnMargin    float64 `yaml:"despawn_margin"`
	StaticLifetime   float64 `yaml:"static_lifetime"` // ms a non-moving marker stays in the arena
}

// Global configuration instances
var Arena ArenaConfig
var Player PlayerConfig
var Pattern PatternConfig
var Conversion ConversionConfig
var Motion MotionConfig

func init() {
	Reset()
}

// DefaultArena returns the stock playfield dimensions.
func DefaultArena() ArenaConfig {
	return ArenaConfig{
		BaseWidth:    512,
		BaseHeight:   384,
		ActualWidth:  307,
		ActualHeight: 384,
		XScale:       0.6,
		YScale:       0.5,
	}
}

// DefaultPlayer returns the stock player tuning.
func DefaultPlayer() PlayerConfig {
	return PlayerConfig{
		BaseSpeed:         0.2,
		FocusMultiplier:   0.5,
		ShootDelay:        80,
		FootprintWidth:    23.25,
		FootprintHeight:   33.75,
		HitboxSize:        3,
		SpawnBottomOffset: 20,
		DeathFadeDuration: 500,
		MissFlashDuration: 1000,
		StartingLives:     3,
		InvulnDuration:    1000,
	}
}

// DefaultPattern returns the stock generation constants.
func DefaultPattern() PatternConfig {
	return PatternConfig{
		BulletsPerImpact:      4,
		ImpactAngleOffset:     120,
		DefaultCircleMinCount: 4,
		DefaultCircleMaxCount: 12,
		DefaultCircleAngle:    15,

		BulletsPerSliderRepeat:  5,
		SliderAnglePerSpan:      2,
		MaxBodyBulletsPerSpan:   150,
		BodyBulletSpacing:       10,
		TailBulletDistance:      15,
		MinTailBullets:          5,
		MaxTailBullets:          20,
		TickBulletAngle:         180,
		BuzzSpanThreshold:       75,
		TickSampleName:          "slidertick",
		MinimumTickDistanceMult: 10,

		BulletsPerSpinnerSpan: 20,
		SpinnerSpanDelay:      250,
		SpinnerAnglePerSpan:   8,
		SpinnerReferenceBeat:  500,
		SpinnerMinMagnitude:   0.5,
		SpinnerMaxMagnitude:   2,

		ShapedExplosionMagnitude: 1.2,
	}
}

// DefaultConversion returns the stock post-processing constants.
func DefaultConversion() ConversionConfig {
	return ConversionConfig{
		SpeedFromLow:  0.8,
		SpeedFromHigh: 1.3,
		SpeedToLow:    0.5,
		SpeedToHigh:   4.5,

		BaseScoringDistance: 100,

		DefaultBeatLength:  1000,
		MinSpeedMultiplier: 0.1,
		MaxSpeedMultiplier: 10,
	}
}

// DefaultMotion returns the stock client motion tuning.
func DefaultMotion() MotionConfig {
	return MotionConfig{
		BulletSpeed:      0.12,
		ShotSpeed:        0.9,
		ShotSpread:       10,
		ProjectileRadius: 3,
		ShotSize:         6,
		DespawnMargin:    20,
		StaticLifetime:   400,
	}
}
