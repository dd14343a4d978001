package config

import "github.com/defvs/touhosu/shared/gameconfig"

// Type aliases so client code can keep using config.ActionID etc.
type ActionID = gameconfig.ActionID
type PlayerState = gameconfig.PlayerState

// Re-export action constants.
const (
	ActionNone      = gameconfig.ActionNone
	ActionMoveLeft  = gameconfig.ActionMoveLeft
	ActionMoveRight = gameconfig.ActionMoveRight
	ActionMoveUp    = gameconfig.ActionMoveUp
	ActionMoveDown  = gameconfig.ActionMoveDown
	ActionFocus     = gameconfig.ActionFocus
	ActionShoot     = gameconfig.ActionShoot
	ActionPause     = gameconfig.ActionPause
	ActionRestart   = gameconfig.ActionRestart
	ActionDebug     = gameconfig.ActionDebug
	ActionCount     = gameconfig.ActionCount
)

// Re-export player display states.
const (
	PlayerIdle  = gameconfig.PlayerIdle
	PlayerLeft  = gameconfig.PlayerLeft
	PlayerRight = gameconfig.PlayerRight
)
