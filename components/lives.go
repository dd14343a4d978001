package components

import "github.com/yohamta/donburi"

type LivesData struct {
	Lives    int
	MaxLives int

	// Invuln counts down in ms after a hit
	Invuln float64
}

var Lives = donburi.NewComponentType[LivesData]()
