package components

import (
	"github.com/defvs/touhosu/shared/projectile"
	"github.com/yohamta/donburi"
)

// SongClockData drives a converted beatmap. Queue is sorted by StartTime and
// Next points at the first entry not yet spawned.
type SongClockData struct {
	Time     float64
	Queue    []projectile.Projectile
	Next     int
	Finished bool

	// Sounds collects the sound markers that came due this frame.
	Sounds []projectile.Projectile
	Played int
}

var SongClock = donburi.NewComponentType[SongClockData]()
