// Package arena runs a converted beatmap against the player avatar. It owns
// the donburi world and the collision space and steps them in milliseconds,
// so it can run without a window.
package arena

import (
	"github.com/defvs/touhosu/components"
	"github.com/defvs/touhosu/shared/gameconfig"
	"github.com/defvs/touhosu/shared/player"
	"github.com/defvs/touhosu/shared/projectile"
	"github.com/defvs/touhosu/systems/factory"
	"github.com/yohamta/donburi"
	"go.uber.org/zap"
)

const spaceCellSize = 8

// Arena is a single play session. It is driven from one goroutine.
type Arena struct {
	world     donburi.World
	player    *donburi.Entry
	songClock *donburi.Entry
	logger    *zap.SugaredLogger
}

// Option configures an Arena.
type Option func(*Arena)

// WithLogger sets the logger used for session events.
func WithLogger(l *zap.SugaredLogger) Option {
	return func(a *Arena) {
		a.logger = l
	}
}

// New creates a session that plays queue from time zero.
func New(queue []projectile.Projectile, opts ...Option) *Arena {
	a := &Arena{
		world:  donburi.NewWorld(),
		logger: zap.NewNop().Sugar(),
	}
	for _, opt := range opts {
		opt(a)
	}

	factory.CreateSpace(a.world,
		int(gameconfig.Arena.ActualWidth), int(gameconfig.Arena.ActualHeight),
		spaceCellSize, spaceCellSize)
	a.songClock = factory.CreateSongClock(a.world, queue)
	a.player = factory.CreatePlayer(a.world, factory.WorldShooter{World: a.world})

	a.logger.Debugw("arena created", "queued", len(queue))
	return a
}

// World returns the session's ECS world.
func (a *Arena) World() donburi.World {
	return a.world
}

// Player returns the avatar simulation.
func (a *Arena) Player() *player.Player {
	return components.Player.Get(a.player).Sim
}

// PlayerEntry returns the avatar entity.
func (a *Arena) PlayerEntry() *donburi.Entry {
	return a.player
}

// Press forwards an action press to the player.
func (a *Arena) Press(action gameconfig.ActionID) {
	a.Player().Press(action)
}

// Release forwards an action release to the player.
func (a *Arena) Release(action gameconfig.ActionID) {
	a.Player().Release(action)
}

// Time returns the song position in milliseconds.
func (a *Arena) Time() float64 {
	return components.SongClock.Get(a.songClock).Time
}

// Lives returns the remaining lives.
func (a *Arena) Lives() int {
	return components.Lives.Get(a.player).Lives
}

// Sounds returns the sound markers that came due during the last Update.
func (a *Arena) Sounds() []projectile.Projectile {
	return components.SongClock.Get(a.songClock).Sounds
}

// Finished reports whether every queued entity has spawned and left the arena.
func (a *Arena) Finished() bool {
	return components.SongClock.Get(a.songClock).Finished
}

// Update advances the session by dt milliseconds.
func (a *Arena) Update(dt float64) {
	a.updatePlayer(dt)
	a.updateProjectiles(dt)
	a.updateShots(dt)
	a.updateSongClock(dt)
	a.checkCollisions(dt)
	a.updateFinished()
}

func (a *Arena) updateFinished() {
	clock := components.SongClock.Get(a.songClock)
	if clock.Finished || clock.Next < len(clock.Queue) {
		return
	}
	if ActiveProjectiles(a.world) > 0 {
		return
	}
	clock.Finished = true
	a.logger.Infow("song finished",
		"time", clock.Time,
		"lives", a.Lives(),
		"hits", components.Player.Get(a.player).Hits,
	)
}
