package conversion

import "github.com/google/uuid"

// RunContext carries the state of one conversion run. It must not be shared
// between runs.
type RunContext struct {
	ID uuid.UUID

	index int
}

// NewRunContext starts a run with no hit object seen yet.
func NewRunContext() *RunContext {
	return &RunContext{ID: uuid.New(), index: -1}
}

// Index returns the combo index of the last converted hit object, -1 before
// the first one.
func (rc *RunContext) Index() int {
	return rc.index
}

func (rc *RunContext) advance(newCombo bool) int {
	if newCombo {
		rc.index = 0
	} else {
		rc.index++
	}
	return rc.index
}
