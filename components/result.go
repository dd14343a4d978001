package components

import "github.com/yohamta/donburi"

// ResultData summarises a finished session for the results screen.
type ResultData struct {
	Beatmap string
	Cleared bool
	Hits    int
	Lives   int
	Time    float64

	SelectedIndex int
}

var Result = donburi.NewComponentType[ResultData]()
