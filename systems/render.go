package systems

import (
	"image/color"

	"github.com/defvs/touhosu/components"
	cfg "github.com/defvs/touhosu/config"
	"github.com/defvs/touhosu/shared/gameconfig"
	"github.com/defvs/touhosu/shared/projectile"
	"github.com/defvs/touhosu/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// DrawArena fills the playfield and outlines it.
func DrawArena(ecs *ecs.ECS, screen *ebiten.Image) {
	x, y := float32(cfg.C.ArenaX), float32(cfg.C.ArenaY)
	w, h := float32(gameconfig.Arena.ActualWidth), float32(gameconfig.Arena.ActualHeight)

	vector.FillRect(screen, x, y, w, h, cfg.Colors.Arena, false)
	vector.FillRect(screen, x-1, y-1, w+2, 1, cfg.Colors.ArenaEdge, false) // Top
	vector.FillRect(screen, x-1, y+h, w+2, 1, cfg.Colors.ArenaEdge, false) // Bottom
	vector.FillRect(screen, x-1, y, 1, h, cfg.Colors.ArenaEdge, false)     // Left
	vector.FillRect(screen, x+w, y, 1, h, cfg.Colors.ArenaEdge, false)     // Right
}

// DrawProjectiles renders every live projectile as a dot colored by kind.
func DrawProjectiles(ecs *ecs.ECS, screen *ebiten.Image) {
	radius := float32(gameconfig.Motion.ProjectileRadius)
	tags.Projectile.Each(ecs.World, func(e *donburi.Entry) {
		p := components.Projectile.Get(e)
		cx, cy := components.Object.Get(e).Center()
		sx, sy := toScreen(cx, cy)
		vector.DrawFilledCircle(screen, sx, sy, radius, projectileColor(p.Kind), true)
	})
}

func projectileColor(kind projectile.Kind) color.RGBA {
	switch kind {
	case projectile.TickBullet:
		return cfg.Colors.Tick
	case projectile.SliderPartBullet:
		return cfg.Colors.SliderPart
	case projectile.AngledProjectile:
		return cfg.Colors.Angled
	case projectile.ConstantMovingProjectile:
		return cfg.Colors.Constant
	}
	return cfg.Colors.Bullet
}

// DrawShots renders the player's shots.
func DrawShots(ecs *ecs.ECS, screen *ebiten.Image) {
	tags.Shot.Each(ecs.World, func(e *donburi.Entry) {
		o := components.Object.Get(e)
		sx, sy := toScreen(o.X, o.Y)
		vector.FillRect(screen, sx, sy, float32(o.W), float32(o.H), cfg.Colors.Shot, false)
	})
}

// DrawPlayer renders the avatar footprint, fading on death and flashing on a
// miss. The hitbox is shown while focused.
func DrawPlayer(ecs *ecs.ECS, screen *ebiten.Image) {
	entry, ok := components.Player.First(ecs.World)
	if !ok {
		return
	}
	sim := components.Player.Get(entry).Sim

	opacity := sim.Opacity()
	if opacity <= 0 {
		return
	}

	pos := sim.Position()
	w, h := gameconfig.Player.FootprintWidth, gameconfig.Player.FootprintHeight
	sx, sy := toScreen(pos.X-w/2, pos.Y-h/2)

	body := lerpColor(cfg.Colors.Player, cfg.Colors.MissFlash, sim.MissFlash())
	vector.FillRect(screen, sx, sy, float32(w), float32(h), scaleAlpha(body, opacity), false)

	if sim.Focused() {
		o := components.Object.Get(entry)
		hx, hy := toScreen(o.X, o.Y)
		vector.FillRect(screen, hx, hy, float32(o.W), float32(o.H), scaleAlpha(cfg.Colors.Hitbox, opacity), false)
	}
}

func toScreen(x, y float64) (float32, float32) {
	return float32(cfg.C.ArenaX + x), float32(cfg.C.ArenaY + y)
}

// scaleAlpha fades a color; RGBA is premultiplied so every channel scales.
func scaleAlpha(c color.RGBA, a float64) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * a),
		G: uint8(float64(c.G) * a),
		B: uint8(float64(c.B) * a),
		A: uint8(float64(c.A) * a),
	}
}

func lerpColor(from, to color.RGBA, t float64) color.RGBA {
	mix := func(a, b uint8) uint8 {
		return uint8(float64(a) + (float64(b)-float64(a))*t)
	}
	return color.RGBA{R: mix(from.R, to.R), G: mix(from.G, to.G), B: mix(from.B, to.B), A: mix(from.A, to.A)}
}
