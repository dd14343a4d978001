package factory

import (
	"github.com/defvs/touhosu/archetypes"
	"github.com/defvs/touhosu/components"
	"github.com/defvs/touhosu/shared/gameconfig"
	"github.com/defvs/touhosu/shared/player"
	"github.com/defvs/touhosu/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// CreatePlayer spawns the avatar. Only its small hitbox collides; the
// footprint is used for clamping inside the simulation.
func CreatePlayer(w donburi.World, shooter player.Shooter) *donburi.Entry {
	e := archetypes.Player.Spawn(w)

	sim := player.New(shooter)
	size := gameconfig.Player.HitboxSize
	pos := sim.Position()

	obj := resolv.NewObject(pos.X-size/2, pos.Y-size/2, size, size, tags.ResolvPlayer)
	obj.SetShape(resolv.NewRectangle(0, 0, size, size))
	obj.Data = e
	components.Object.SetValue(e, components.ObjectData{Object: obj})
	addToSpace(w, obj)

	components.Player.SetValue(e, components.PlayerData{Sim: sim})
	components.Lives.SetValue(e, components.LivesData{
		Lives:    gameconfig.Player.StartingLives,
		MaxLives: gameconfig.Player.StartingLives,
	})

	return e
}

// SyncPlayerObject moves the hitbox onto the simulated position.
func SyncPlayerObject(e *donburi.Entry) {
	sim := components.Player.Get(e).Sim
	obj := components.Object.Get(e).Object
	pos := sim.Position()
	obj.X = pos.X - obj.W/2
	obj.Y = pos.Y - obj.H/2
	obj.Update()
}
