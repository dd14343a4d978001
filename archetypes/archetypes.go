package archetypes

import (
	"github.com/defvs/touhosu/components"
	"github.com/defvs/touhosu/tags"
	"github.com/yohamta/donburi"
)

var (
	Player = newArchetype(
		tags.Player,
		components.Player,
		components.Object,
		components.Lives,
	)
	Projectile = newArchetype(
		tags.Projectile,
		components.Projectile,
		components.Object,
	)
	TrackingProjectile = newArchetype(
		tags.Projectile,
		tags.Tracking,
		components.Projectile,
		components.Tracking,
		components.Object,
	)
	Shot = newArchetype(
		tags.Shot,
		components.Shot,
		components.Object,
	)
	Space = newArchetype(
		components.Space,
	)
	SongClock = newArchetype(
		components.SongClock,
	)
	Input = newArchetype(
		components.Input,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

// Spawn creates an entity with the archetype's components plus cs. It takes
// the world rather than the ECS so headless code can spawn entities too.
func (a *archetype) Spawn(w donburi.World, cs ...donburi.IComponentType) *donburi.Entry {
	e := w.Entry(w.Create(
		append(a.components, cs...)...,
	))
	return e
}
