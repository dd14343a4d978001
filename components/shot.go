package components

import (
	"github.com/yohamta/donburi"
)

type ShotData struct {
	SpeedX, SpeedY float64
}

var Shot = donburi.NewComponentType[ShotData]()
