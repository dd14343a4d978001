package components

import (
	"github.com/defvs/touhosu/shared/projectile"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// ProjectileData is a live projectile in the arena.
type ProjectileData struct {
	projectile.Projectile

	// Velocity in px per ms, fixed at spawn
	SpeedX, SpeedY float64

	// Age in ms since StartTime
	Age float64
}

var Projectile = donburi.NewComponentType[ProjectileData]()

// PositionSource exposes a live position without allowing changes to it.
type PositionSource interface {
	Position() math.Vec2
}

// TrackingData links a projectile to the position it aims at.
type TrackingData struct {
	Target PositionSource
}

var Tracking = donburi.NewComponentType[TrackingData]()
