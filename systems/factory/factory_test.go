package factory

import (
	"testing"

	"github.com/defvs/touhosu/components"
	"github.com/defvs/touhosu/shared/gameconfig"
	"github.com/defvs/touhosu/shared/projectile"
	"github.com/defvs/touhosu/tags"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

type fixedTarget struct {
	pos math.Vec2
}

func (f fixedTarget) Position() math.Vec2 { return f.pos }

func newWorld() donburi.World {
	w := donburi.NewWorld()
	CreateSpace(w, 307, 384, 8, 8)
	return w
}

func TestCreateProjectileUsesAbsoluteAngle(t *testing.T) {
	w := newWorld()
	p := projectile.NewConstantMovingProjectile(0, math.Vec2{X: 100, Y: 100}, 90, 2)

	e := CreateProjectile(w, p, nil)

	data := components.Projectile.Get(e)
	assert.InDelta(t, gameconfig.Motion.BulletSpeed*2, data.SpeedX, 1e-9)
	assert.InDelta(t, 0, data.SpeedY, 1e-9)
	assert.False(t, e.HasComponent(tags.Tracking))

	cx, cy := components.Object.Get(e).Center()
	assert.InDelta(t, 100, cx, 1e-9)
	assert.InDelta(t, 100, cy, 1e-9)
}

func TestCreateProjectileTracksTarget(t *testing.T) {
	w := newWorld()
	target := fixedTarget{pos: math.Vec2{X: 200, Y: 100}}
	p := projectile.NewMovingBullet(0, math.Vec2{X: 100, Y: 100}, 180)

	e := CreateProjectile(w, p, target)

	require.True(t, e.HasComponent(tags.Tracking))
	assert.Equal(t, target, components.Tracking.Get(e).Target)

	data := components.Projectile.Get(e)
	assert.InDelta(t, gameconfig.Motion.BulletSpeed, data.SpeedX, 1e-9)
	assert.InDelta(t, 0, data.SpeedY, 1e-9)
}

func TestCreateProjectileWithoutTargetDoesNotTrack(t *testing.T) {
	w := newWorld()
	p := projectile.NewMovingBullet(0, math.Vec2{X: 100, Y: 100}, 180)

	e := CreateProjectile(w, p, nil)

	assert.False(t, e.HasComponent(tags.Tracking))
	data := components.Projectile.Get(e)
	assert.InDelta(t, gameconfig.Motion.BulletSpeed, data.SpeedY, 1e-9)
}

func TestSliderPartStaysStill(t *testing.T) {
	w := newWorld()
	e := CreateProjectile(w, projectile.NewSliderPartBullet(0, math.Vec2{X: 10, Y: 10}), nil)

	data := components.Projectile.Get(e)
	assert.Zero(t, data.SpeedX)
	assert.Zero(t, data.SpeedY)
}

func TestDestroyRemovesEntity(t *testing.T) {
	w := newWorld()
	e := CreateProjectile(w, projectile.NewMovingBullet(0, math.Vec2{X: 10, Y: 10}, 0), nil)
	entity := e.Entity()

	Destroy(w, e)

	assert.False(t, w.Valid(entity))
}

func TestWorldShooterSpread(t *testing.T) {
	w := newWorld()
	shooter := WorldShooter{World: w}

	shooter.Shoot(math.Vec2{X: 150, Y: 300}, false)
	assert.Equal(t, 3, countShots(w))

	shooter.Shoot(math.Vec2{X: 150, Y: 300}, true)
	assert.Equal(t, 4, countShots(w))
}

func countShots(w donburi.World) int {
	n := 0
	tags.Shot.Each(w, func(*donburi.Entry) { n++ })
	return n
}

func TestCreateShotFliesUp(t *testing.T) {
	w := newWorld()
	e := CreateShot(w, math.Vec2{X: 150, Y: 300}, 0)

	shot := components.Shot.Get(e)
	assert.InDelta(t, 0, shot.SpeedX, 1e-9)
	assert.InDelta(t, -gameconfig.Motion.ShotSpeed, shot.SpeedY, 1e-9)
}

func TestCreatePlayer(t *testing.T) {
	w := newWorld()
	e := CreatePlayer(w, nil)

	sim := components.Player.Get(e).Sim
	require.NotNil(t, sim)
	assert.Equal(t, gameconfig.Player.StartingLives, components.Lives.Get(e).Lives)

	cx, cy := components.Object.Get(e).Center()
	assert.InDelta(t, sim.Position().X, cx, 1e-9)
	assert.InDelta(t, sim.Position().Y, cy, 1e-9)
}

func TestCreateSongClockSortsStably(t *testing.T) {
	w := newWorld()
	queue := []projectile.Projectile{
		projectile.NewSliderPartBullet(20, math.Vec2{}),
		projectile.NewMovingBullet(10, math.Vec2{}, 0),
		projectile.NewSoundMarker(10, math.Vec2{}, nil),
	}

	e := CreateSongClock(w, queue)

	clock := components.SongClock.Get(e)
	require.Len(t, clock.Queue, 3)
	assert.Equal(t, projectile.MovingBullet, clock.Queue[0].Kind)
	assert.Equal(t, projectile.SoundMarker, clock.Queue[1].Kind)
	assert.Equal(t, projectile.SliderPartBullet, clock.Queue[2].Kind)
	assert.Equal(t, projectile.SliderPartBullet, queue[0].Kind, "input left untouched")
}
