package timer

import (
	"errors"
	"fmt"

	"github.com/akyairhashvil/studyfocus/internal/models"
)

var ErrInvalidState = errors.New("invalid timer state")

// InvalidStateError is returned by commands that are only allowed in a
// particular phase or run state.
type InvalidStateError struct {
	Op      string
	Phase   models.Phase
	Running bool
}

func (e *InvalidStateError) Error() string {
	if e == nil {
		return ""
	}
	state := "paused"
	if e.Running {
		state = "running"
	}
	return fmt.Sprintf("%s: %v (phase %s, %s)", e.Op, ErrInvalidState, e.Phase, state)
}

func (e *InvalidStateError) Is(target error) bool { return target == ErrInvalidState }
