package components

import (
	"github.com/defvs/touhosu/shared/gameconfig"
	"github.com/yohamta/donburi"
)

// ActionState represents the temporal state of an action
type ActionState struct {
	Pressed      bool // Currently held down
	JustPressed  bool // Pressed this frame
	JustReleased bool // Released this frame
}

// InputData stores the current and previous frame's pressed state for all actions.
// JustPressed/JustReleased are computed on-demand by comparing frames.
type InputData struct {
	Current  [gameconfig.ActionCount]bool // Current frame's Pressed state
	Previous [gameconfig.ActionCount]bool // Previous frame's Pressed state
}

// Action returns the full ActionState for an action ID.
func (in *InputData) Action(id gameconfig.ActionID) ActionState {
	curr := in.Current[id]
	prev := in.Previous[id]
	return ActionState{
		Pressed:      curr,
		JustPressed:  curr && !prev,
		JustReleased: !curr && prev,
	}
}

// Swap moves the current frame into the previous one and clears the current.
func (in *InputData) Swap() {
	in.Previous = in.Current
	in.Current = [gameconfig.ActionCount]bool{}
}

var Input = donburi.NewComponentType[InputData]()
