package arena

import (
	"github.com/defvs/touhosu/components"
	"github.com/defvs/touhosu/shared/gameconfig"
	"github.com/defvs/touhosu/systems/factory"
	"github.com/defvs/touhosu/tags"
	"github.com/yohamta/donburi"
)

func (a *Arena) updatePlayer(dt float64) {
	components.Player.Get(a.player).Sim.Update(dt)
	factory.SyncPlayerObject(a.player)
}

func (a *Arena) updateProjectiles(dt float64) {
	var expired []*donburi.Entry
	tags.Projectile.Each(a.world, func(e *donburi.Entry) {
		advanceProjectile(e, dt)
		if projectileExpired(e) {
			expired = append(expired, e)
		}
	})
	for _, e := range expired {
		factory.Destroy(a.world, e)
	}
}

func advanceProjectile(e *donburi.Entry, dt float64) {
	p := components.Projectile.Get(e)
	p.Age += dt

	obj := components.Object.Get(e)
	obj.X += p.SpeedX * dt
	obj.Y += p.SpeedY * dt
	obj.Update()
}

// projectileExpired reports whether a projectile left the arena, or for a
// static marker, whether its lifetime ran out.
func projectileExpired(e *donburi.Entry) bool {
	p := components.Projectile.Get(e)
	if p.SpeedX == 0 && p.SpeedY == 0 {
		return p.Age >= gameconfig.Motion.StaticLifetime
	}
	cx, cy := components.Object.Get(e).Center()
	return outside(cx, cy)
}

func (a *Arena) updateShots(dt float64) {
	var gone []*donburi.Entry
	tags.Shot.Each(a.world, func(e *donburi.Entry) {
		shot := components.Shot.Get(e)
		obj := components.Object.Get(e)
		obj.X += shot.SpeedX * dt
		obj.Y += shot.SpeedY * dt
		obj.Update()
		if cx, cy := obj.Center(); outside(cx, cy) {
			gone = append(gone, e)
		}
	})
	for _, e := range gone {
		factory.Destroy(a.world, e)
	}
}

func outside(x, y float64) bool {
	m := gameconfig.Motion.DespawnMargin
	return x < -m || y < -m ||
		x > gameconfig.Arena.ActualWidth+m ||
		y > gameconfig.Arena.ActualHeight+m
}

// ActiveProjectiles counts the projectiles currently in the arena.
func ActiveProjectiles(w donburi.World) int {
	n := 0
	tags.Projectile.Each(w, func(*donburi.Entry) { n++ })
	return n
}

// ActiveShots counts the player shots currently in the arena.
func ActiveShots(w donburi.World) int {
	n := 0
	tags.Shot.Each(w, func(*donburi.Entry) { n++ })
	return n
}
