package arena

import (
	"github.com/defvs/touhosu/components"
	"github.com/defvs/touhosu/shared/gameconfig"
	"github.com/defvs/touhosu/systems/factory"
	"github.com/defvs/touhosu/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// checkCollisions hits the player with the first projectile overlapping its
// hitbox, which is consumed. A hit costs a life and grants a short
// invulnerability during which projectiles pass through; the last life kills
// the player.
func (a *Arena) checkCollisions(dt float64) {
	lives := components.Lives.Get(a.player)
	if lives.Invuln > 0 {
		lives.Invuln -= dt
		return
	}

	pd := components.Player.Get(a.player)
	if !pd.Sim.Alive() {
		return
	}

	hitbox := components.Object.Get(a.player).Object
	check := hitbox.Check(0, 0, tags.ResolvProjectile)
	if check == nil {
		return
	}

	for _, obj := range check.ObjectsByTags(tags.ResolvProjectile) {
		if !overlaps(hitbox, obj) {
			continue
		}
		e, ok := obj.Data.(*donburi.Entry)
		if !ok || !e.Valid() {
			continue
		}
		factory.Destroy(a.world, e)
		a.hit(pd, lives)
		return
	}
}

func (a *Arena) hit(pd *components.PlayerData, lives *components.LivesData) {
	pd.Hits++
	lives.Lives--
	lives.Invuln = gameconfig.Player.InvulnDuration

	if lives.Lives <= 0 {
		lives.Lives = 0
		pd.Sim.Die()
		a.logger.Infow("player died", "time", a.Time(), "hits", pd.Hits)
		return
	}
	pd.Sim.Miss()
	a.logger.Debugw("player hit", "time", a.Time(), "lives", lives.Lives)
}

// overlaps tests the boxes themselves; Check only narrows by cell.
func overlaps(a, b *resolv.Object) bool {
	return a.X < b.X+b.W && b.X < a.X+a.W &&
		a.Y < b.Y+b.H && b.Y < a.Y+a.H
}
