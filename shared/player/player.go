// Package player simulates the controllable avatar: direction accumulators,
// diagonal-corrected movement, focus, automatic re-fire and death.
package player

import (
	"math"

	"github.com/defvs/touhosu/shared/gameconfig"
	"github.com/defvs/touhosu/shared/gamemath"
	"github.com/defvs/touhosu/shared/scheduler"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	dmath "github.com/yohamta/donburi/features/math"
)

// Shooter receives the player's shots.
type Shooter interface {
	Shoot(origin dmath.Vec2, focused bool)
}

// Player is driven by Press/Release from input and Update from the frame
// clock. It is not safe for concurrent use.
type Player struct {
	position dmath.Vec2

	horizontal int
	vertical   int

	focused         bool
	speedMultiplier float64
	alive           bool
	shooting        bool

	scheduler *scheduler.Scheduler
	refire    *scheduler.Task
	shooter   Shooter

	opacity   float64
	fade      *gween.Tween
	missFlash float64
	flash     *gween.Tween
}

// New places a player at the spawn point. shooter may be nil.
func New(shooter Shooter) *Player {
	cfg := gameconfig.Player
	return &Player{
		position: dmath.Vec2{
			X: gameconfig.Arena.ActualWidth / 2,
			Y: gameconfig.Arena.ActualHeight - cfg.SpawnBottomOffset,
		},
		speedMultiplier: 1,
		alive:           true,
		scheduler:       scheduler.New(),
		shooter:         shooter,
		opacity:         1,
	}
}

// Press handles an action going down. Ignored once dead.
func (p *Player) Press(action gameconfig.ActionID) {
	if !p.alive {
		return
	}
	switch action {
	case gameconfig.ActionMoveLeft:
		p.horizontal--
	case gameconfig.ActionMoveRight:
		p.horizontal++
	case gameconfig.ActionMoveUp:
		p.vertical--
	case gameconfig.ActionMoveDown:
		p.vertical++
	case gameconfig.ActionFocus:
		p.focused = true
		p.speedMultiplier = gameconfig.Player.FocusMultiplier
	case gameconfig.ActionShoot:
		p.shooting = true
		p.fire()
	}
}

// Release handles an action going up. Ignored once dead.
func (p *Player) Release(action gameconfig.ActionID) {
	if !p.alive {
		return
	}
	switch action {
	case gameconfig.ActionMoveLeft:
		p.horizontal++
	case gameconfig.ActionMoveRight:
		p.horizontal--
	case gameconfig.ActionMoveUp:
		p.vertical++
	case gameconfig.ActionMoveDown:
		p.vertical--
	case gameconfig.ActionFocus:
		p.unfocus()
	case gameconfig.ActionShoot:
		p.stopShooting()
	}
}

func (p *Player) unfocus() {
	p.focused = false
	p.speedMultiplier = 1
}

func (p *Player) stopShooting() {
	p.shooting = false
	p.refire.Cancel()
	p.refire = nil
}

// fire shoots once and re-arms itself while shooting is held.
func (p *Player) fire() {
	if !p.alive || !p.shooting {
		return
	}
	if p.shooter != nil {
		p.shooter.Shoot(p.position, p.focused)
	}
	if !p.alive || !p.shooting {
		return
	}
	p.refire.Cancel()
	p.refire = p.scheduler.AddDelayed(p.fire, gameconfig.Player.ShootDelay)
}

// Die kills the player. Focus and shooting stop and the avatar fades out.
func (p *Player) Die() {
	if !p.alive {
		return
	}
	p.unfocus()
	p.stopShooting()
	p.alive = false
	p.fade = gween.New(1, 0, float32(gameconfig.Player.DeathFadeDuration), ease.OutQuad)
}

// Miss flashes the avatar after a hit that did not kill it.
func (p *Player) Miss() {
	if !p.alive {
		return
	}
	p.missFlash = 1
	p.flash = gween.New(1, 0, float32(gameconfig.Player.MissFlashDuration), ease.Linear)
}

// Update advances the player by dt milliseconds.
func (p *Player) Update(dt float64) {
	p.scheduler.Update(dt)

	if p.alive {
		p.move(dt)
	}

	if p.fade != nil {
		v, done := p.fade.Update(float32(dt))
		p.opacity = float64(v)
		if done {
			p.fade = nil
		}
	}
	if p.flash != nil {
		v, done := p.flash.Update(float32(dt))
		p.missFlash = float64(v)
		if done {
			p.flash = nil
		}
	}
}

func (p *Player) move(dt float64) {
	sx := gamemath.Sign(p.horizontal)
	sy := gamemath.Sign(p.vertical)
	if sx == 0 && sy == 0 {
		return
	}

	step := dt * gameconfig.Player.BaseSpeed * p.speedMultiplier
	dx := float64(sx) * step
	dy := float64(sy) * step

	if sx != 0 && sy != 0 {
		dx, dy = DiagonalDelta(dx, dy)
	}

	p.position = clampToArena(dmath.Vec2{X: p.position.X + dx, Y: p.position.Y + dy})
}

// DiagonalDelta shortens a two-axis displacement so its length matches the
// single-axis displacement.
func DiagonalDelta(dx, dy float64) (float64, float64) {
	actualDist := math.Hypot(dx, dy)
	offset := math.Sqrt(math.Pow(math.Abs(dx)-actualDist, 2) / 2)
	return shorten(dx, offset), shorten(dy, offset)
}

func shorten(v, by float64) float64 {
	if v < 0 {
		return v + by
	}
	return v - by
}

func clampToArena(v dmath.Vec2) dmath.Vec2 {
	halfW := gameconfig.Player.FootprintWidth / 2
	halfH := gameconfig.Player.FootprintHeight / 2
	return dmath.Vec2{
		X: gamemath.Clamp(v.X, halfW, gameconfig.Arena.ActualWidth-halfW),
		Y: gamemath.Clamp(v.Y, halfH, gameconfig.Arena.ActualHeight-halfH),
	}
}

// Position returns the centre of the avatar in arena space.
func (p *Player) Position() dmath.Vec2 {
	return p.position
}

// Direction returns the net horizontal and vertical accumulators.
func (p *Player) Direction() (horizontal, vertical int) {
	return p.horizontal, p.vertical
}

// State derives the display state from the horizontal accumulator.
func (p *Player) State() gameconfig.PlayerState {
	switch gamemath.Sign(p.horizontal) {
	case 1:
		return gameconfig.PlayerRight
	case -1:
		return gameconfig.PlayerLeft
	}
	return gameconfig.PlayerIdle
}

func (p *Player) Focused() bool            { return p.focused }
func (p *Player) Shooting() bool           { return p.shooting }
func (p *Player) Alive() bool              { return p.alive }
func (p *Player) SpeedMultiplier() float64 { return p.speedMultiplier }

// Opacity is 1 while alive and fades to 0 after death.
func (p *Player) Opacity() float64 { return p.opacity }

// MissFlash is 1 right after a miss and decays to 0.
func (p *Player) MissFlash() float64 { return p.missFlash }
