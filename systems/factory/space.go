package factory

import (
	"github.com/defvs/touhosu/archetypes"
	"github.com/defvs/touhosu/components"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

func CreateSpace(w donburi.World, width, height, cellWidth, cellHeight int) *donburi.Entry {
	space := archetypes.Space.Spawn(w)
	spaceData := resolv.NewSpace(width, height, cellWidth, cellHeight)
	components.Space.Set(space, spaceData)
	return space
}

// addToSpace registers obj with the world's collision space, if there is one.
func addToSpace(w donburi.World, obj *resolv.Object) {
	if entry, ok := components.Space.First(w); ok {
		components.Space.Get(entry).Add(obj)
	}
}

// Destroy removes an entity and its collision object.
func Destroy(w donburi.World, e *donburi.Entry) {
	if !e.Valid() {
		return
	}
	if e.HasComponent(components.Object) {
		obj := components.Object.Get(e)
		if spaceEntry, ok := components.Space.First(w); ok && obj.Object != nil {
			components.Space.Get(spaceEntry).Remove(obj.Object)
		}
	}
	w.Remove(e.Entity())
}
