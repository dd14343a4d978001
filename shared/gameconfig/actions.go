package gameconfig

// ActionID represents a logical player action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionMoveLeft
	ActionMoveRight
	ActionMoveUp
	ActionMoveDown
	ActionFocus
	ActionShoot
	ActionPause
	ActionRestart
	ActionDebug
	ActionCount // Must be last - used for array sizing
)

var actionNames = [...]string{
	ActionNone:      "none",
	ActionMoveLeft:  "move_left",
	ActionMoveRight: "move_right",
	ActionMoveUp:    "move_up",
	ActionMoveDown:  "move_down",
	ActionFocus:     "focus",
	ActionShoot:     "shoot",
	ActionPause:     "pause",
	ActionRestart:   "restart",
	ActionDebug:     "debug",
}

func (a ActionID) String() string {
	if a < 0 || int(a) >= len(actionNames) {
		return "unknown"
	}
	return actionNames[a]
}

// PlayerState is the display state derived from the horizontal input.
type PlayerState int

const (
	PlayerIdle PlayerState = iota
	PlayerLeft
	PlayerRight
)

func (s PlayerState) String() string {
	switch s {
	case PlayerLeft:
		return "left"
	case PlayerRight:
		return "right"
	default:
		return "idle"
	}
}
