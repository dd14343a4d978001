package components

import "github.com/yohamta/donburi"

// MenuData is the beatmap picker state. Options holds bundled beatmap names.
type MenuData struct {
	SelectedIndex int
	Options       []string
}

var Menu = donburi.NewComponentType[MenuData]()
