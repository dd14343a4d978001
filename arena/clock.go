package arena

import (
	"github.com/defvs/touhosu/components"
	"github.com/defvs/touhosu/systems/factory"
)

// updateSongClock advances song time and spawns every entity whose start time
// has been reached. Sound markers are collected instead of spawned.
func (a *Arena) updateSongClock(dt float64) {
	clock := components.SongClock.Get(a.songClock)
	clock.Time += dt
	clock.Sounds = clock.Sounds[:0]

	target := components.Player.Get(a.player).Sim
	for clock.Next < len(clock.Queue) {
		p := clock.Queue[clock.Next]
		if p.StartTime > clock.Time {
			break
		}
		clock.Next++

		if p.Kind.IsSound() {
			clock.Sounds = append(clock.Sounds, p)
			clock.Played++
			continue
		}

		e := factory.CreateProjectile(a.world, p, target)
		// Catch up on the part of the frame after the start time.
		advanceProjectile(e, clock.Time-p.StartTime)
	}
}
