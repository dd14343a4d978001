// Package projectile defines the entities produced by the conversion pipeline.
// Every generated entity is a flat value; nothing owns anything else.
package projectile

import (
	"github.com/defvs/touhosu/shared/hitobject"
	"github.com/yohamta/donburi/features/math"
)

// Kind identifies the variant of a Projectile.
type Kind int

const (
	MovingBullet Kind = iota
	TickBullet
	SliderPartBullet
	AngledProjectile
	ConstantMovingProjectile
	SoundMarker
)

var kindNames = [...]string{
	MovingBullet:             "moving_bullet",
	TickBullet:               "tick_bullet",
	SliderPartBullet:         "slider_part_bullet",
	AngledProjectile:         "angled_projectile",
	ConstantMovingProjectile: "constant_moving_projectile",
	SoundMarker:              "sound",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "unknown"
	}
	return kindNames[k]
}

// Tracks reports whether entities of this kind follow the live player position.
func (k Kind) Tracks() bool {
	return k == MovingBullet || k == TickBullet
}

// HasSpeed reports whether the kind carries a speed multiplier.
func (k Kind) HasSpeed() bool {
	return k == ConstantMovingProjectile
}

// IsSound reports whether the kind only plays samples.
func (k Kind) IsSound() bool {
	return k == SoundMarker
}

// Projectile is one generated entity. Fields not used by a kind stay zero.
type Projectile struct {
	Kind      Kind
	StartTime float64

	// Position is in arena space.
	Position math.Vec2

	NewCombo       bool
	ComboOffset    int
	IndexInBeatmap int

	// Angle in degrees, 0 up and clockwise.
	Angle float64

	// DeltaMultiplier scales the travel of angled projectiles.
	DeltaMultiplier float64

	// SpeedMultiplier scales constant-moving projectiles.
	SpeedMultiplier float64

	Samples []hitobject.Sample
}

// NewMovingBullet returns a bullet fired at angle.
func NewMovingBullet(startTime float64, pos math.Vec2, angle float64) Projectile {
	return Projectile{Kind: MovingBullet, StartTime: startTime, Position: pos, Angle: angle}
}

// NewTickBullet returns a slider tick marker.
func NewTickBullet(startTime float64, pos math.Vec2, angle float64) Projectile {
	return Projectile{Kind: TickBullet, StartTime: startTime, Position: pos, Angle: angle}
}

// NewSliderPartBullet returns a slider body marker.
func NewSliderPartBullet(startTime float64, pos math.Vec2) Projectile {
	return Projectile{Kind: SliderPartBullet, StartTime: startTime, Position: pos}
}

// NewAngledProjectile returns a projectile with its own travel multiplier.
func NewAngledProjectile(startTime float64, pos math.Vec2, angle, delta float64) Projectile {
	return Projectile{Kind: AngledProjectile, StartTime: startTime, Position: pos, Angle: angle, DeltaMultiplier: delta}
}

// NewConstantMovingProjectile returns a projectile moving at a scaled speed.
func NewConstantMovingProjectile(startTime float64, pos math.Vec2, angle, speed float64) Projectile {
	return Projectile{Kind: ConstantMovingProjectile, StartTime: startTime, Position: pos, Angle: angle, SpeedMultiplier: speed}
}

// NewSoundMarker returns a marker that only plays samples.
func NewSoundMarker(startTime float64, pos math.Vec2, samples []hitobject.Sample) Projectile {
	return Projectile{Kind: SoundMarker, StartTime: startTime, Position: pos, Samples: samples}
}

// Travel returns the factor applied to the base bullet speed for this entity.
func (p *Projectile) Travel() float64 {
	switch p.Kind {
	case AngledProjectile:
		return p.DeltaMultiplier
	case ConstantMovingProjectile:
		return p.SpeedMultiplier
	case SliderPartBullet, SoundMarker:
		return 0
	}
	return 1
}
