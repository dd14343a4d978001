package arena

import (
	"testing"

	"github.com/defvs/touhosu/components"
	"github.com/defvs/touhosu/shared/gameconfig"
	"github.com/defvs/touhosu/shared/hitobject"
	"github.com/defvs/touhosu/shared/projectile"
	"github.com/defvs/touhosu/tags"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func spawnPoint() math.Vec2 {
	return math.Vec2{
		X: gameconfig.Arena.ActualWidth / 2,
		Y: gameconfig.Arena.ActualHeight - gameconfig.Player.SpawnBottomOffset,
	}
}

func firstProjectile(t *testing.T, a *Arena) *donburi.Entry {
	t.Helper()
	e, ok := tags.Projectile.First(a.World())
	require.True(t, ok, "no projectile in the arena")
	return e
}

func TestTrackingBulletAimsAtPlayer(t *testing.T) {
	from := math.Vec2{X: spawnPoint().X, Y: 100}
	a := New([]projectile.Projectile{projectile.NewMovingBullet(0, from, 180)})

	a.Update(10)

	e := firstProjectile(t, a)
	data := components.Projectile.Get(e)
	assert.InDelta(t, 0, data.SpeedX, 1e-9)
	assert.InDelta(t, gameconfig.Motion.BulletSpeed, data.SpeedY, 1e-9)

	_, cy := components.Object.Get(e).Center()
	assert.InDelta(t, 100+gameconfig.Motion.BulletSpeed*10, cy, 1e-9)
}

func TestProjectilesSpawnAtStartTime(t *testing.T) {
	a := New([]projectile.Projectile{
		projectile.NewSliderPartBullet(50, math.Vec2{X: 20, Y: 20}),
	})

	a.Update(40)
	assert.Equal(t, 0, ActiveProjectiles(a.World()))

	a.Update(10)
	assert.Equal(t, 1, ActiveProjectiles(a.World()))
	assert.InDelta(t, 50, a.Time(), 1e-9)
}

func TestSoundMarkersAreCollectedNotSpawned(t *testing.T) {
	samples := []hitobject.Sample{{Name: "hitnormal"}}
	a := New([]projectile.Projectile{
		projectile.NewSoundMarker(5, math.Vec2{X: 10, Y: 10}, samples),
	})

	a.Update(10)
	require.Len(t, a.Sounds(), 1)
	assert.Equal(t, samples, a.Sounds()[0].Samples)
	assert.Equal(t, 0, ActiveProjectiles(a.World()))

	a.Update(10)
	assert.Empty(t, a.Sounds())
}

func TestOutOfArenaProjectileIsRemoved(t *testing.T) {
	a := New([]projectile.Projectile{
		projectile.NewConstantMovingProjectile(0, math.Vec2{X: 150, Y: 5}, 0, 1),
	})

	a.Update(300)
	require.Equal(t, 1, ActiveProjectiles(a.World()))
	assert.False(t, a.Finished())

	a.Update(10)
	assert.Equal(t, 0, ActiveProjectiles(a.World()))
	assert.True(t, a.Finished())
}

func TestStaticMarkerExpires(t *testing.T) {
	a := New([]projectile.Projectile{
		projectile.NewSliderPartBullet(0, math.Vec2{X: 20, Y: 20}),
	})

	a.Update(100)
	require.Equal(t, 1, ActiveProjectiles(a.World()))

	for i := 0; i < 4; i++ {
		a.Update(100)
	}
	assert.Equal(t, 0, ActiveProjectiles(a.World()))
}

func TestHitCostsLifeAndGrantsInvulnerability(t *testing.T) {
	at := spawnPoint()
	a := New([]projectile.Projectile{
		projectile.NewSliderPartBullet(0, at),
		projectile.NewSliderPartBullet(100, at),
	})

	a.Update(50)
	assert.Equal(t, gameconfig.Player.StartingLives-1, a.Lives())
	assert.Equal(t, 1, components.Player.Get(a.PlayerEntry()).Hits)
	assert.Equal(t, 1.0, a.Player().MissFlash())
	assert.True(t, a.Player().Alive())
	assert.Equal(t, 0, ActiveProjectiles(a.World()), "the hitting projectile is consumed")

	a.Update(100)
	assert.Equal(t, gameconfig.Player.StartingLives-1, a.Lives())
	assert.Equal(t, 1, ActiveProjectiles(a.World()))
}

func TestLastLifeKillsPlayer(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	at := spawnPoint()
	a := New([]projectile.Projectile{
		projectile.NewSliderPartBullet(0, at),
		projectile.NewSliderPartBullet(1100, at),
		projectile.NewSliderPartBullet(2200, at),
	}, WithLogger(zap.New(core).Sugar()))

	for i := 0; i < 25; i++ {
		a.Update(100)
	}

	assert.Equal(t, 0, a.Lives())
	assert.Equal(t, 3, components.Player.Get(a.PlayerEntry()).Hits)
	assert.False(t, a.Player().Alive())
	assert.True(t, a.Finished())
	assert.Equal(t, 1, logs.FilterMessage("player died").Len())
	assert.Equal(t, 1, logs.FilterMessage("song finished").Len())
}

func TestDeadPlayerIgnoresProjectiles(t *testing.T) {
	a := New([]projectile.Projectile{
		projectile.NewSliderPartBullet(0, spawnPoint()),
	})
	a.Player().Die()

	a.Update(10)

	assert.Equal(t, gameconfig.Player.StartingLives, a.Lives())
	assert.Equal(t, 1, ActiveProjectiles(a.World()))
}

func TestShootingSpawnsShots(t *testing.T) {
	a := New(nil)

	a.Press(gameconfig.ActionShoot)
	assert.Equal(t, 3, ActiveShots(a.World()))

	a.Release(gameconfig.ActionShoot)
	a.Press(gameconfig.ActionFocus)
	a.Press(gameconfig.ActionShoot)
	assert.Equal(t, 4, ActiveShots(a.World()))

	a.Update(gameconfig.Player.ShootDelay)
	assert.Equal(t, 5, ActiveShots(a.World()))
}

func TestShotsLeaveTheArena(t *testing.T) {
	a := New(nil)
	a.Press(gameconfig.ActionFocus)
	a.Press(gameconfig.ActionShoot)
	a.Release(gameconfig.ActionShoot)
	require.Equal(t, 1, ActiveShots(a.World()))

	a.Update(1000)

	assert.Equal(t, 0, ActiveShots(a.World()))
}

func TestPlayerHitboxFollowsMovement(t *testing.T) {
	a := New(nil)
	a.Press(gameconfig.ActionMoveLeft)

	a.Update(100)

	pos := a.Player().Position()
	cx, cy := components.Object.Get(a.PlayerEntry()).Center()
	assert.InDelta(t, pos.X, cx, 1e-9)
	assert.InDelta(t, pos.Y, cy, 1e-9)
	assert.Less(t, pos.X, spawnPoint().X)
}

func TestEmptySongFinishesImmediately(t *testing.T) {
	a := New(nil)
	a.Update(16)
	assert.True(t, a.Finished())
}
