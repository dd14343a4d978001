package components

import (
	"github.com/defvs/touhosu/shared/player"
	"github.com/yohamta/donburi"
)

type PlayerData struct {
	Sim *player.Player

	// Hits taken since spawn, for the HUD
	Hits int
}

var Player = donburi.NewComponentType[PlayerData]()
