package factory

import (
	"sort"

	"github.com/defvs/touhosu/archetypes"
	"github.com/defvs/touhosu/components"
	"github.com/defvs/touhosu/shared/projectile"
	"github.com/yohamta/donburi"
)

// CreateSongClock queues converted projectiles for playback from time zero.
// The queue is sorted by start time; equal times keep conversion order.
func CreateSongClock(w donburi.World, queue []projectile.Projectile) *donburi.Entry {
	e := archetypes.SongClock.Spawn(w)

	sorted := make([]projectile.Projectile, len(queue))
	copy(sorted, queue)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].StartTime < sorted[j].StartTime
	})

	components.SongClock.SetValue(e, components.SongClockData{Queue: sorted})
	return e
}
