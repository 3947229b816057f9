package actuator

import (
	"errors"
	"fmt"
	"sync"
)

// State is a servo position. Only StateOn and StateOff are valid.
type State string

const (
	// StateOn drives the servo to its active position.
	StateOn State = "ON"

	// StateOff returns the servo to rest. This is the boot default.
	StateOff State = "OFF"
)

// ErrInvalidState is returned for any state string other than "ON" or "OFF".
var ErrInvalidState = errors.New("invalid state")

// ParseState validates a raw state string.
// Matching is exact: lowercase or padded variants are rejected so the
// wire format stays unambiguous for the actuator firmware.
func ParseState(raw string) (State, error) {
	switch State(raw) {
	case StateOn:
		return StateOn, nil
	case StateOff:
		return StateOff, nil
	default:
		return "", fmt.Errorf("%w: %q (must be ON or OFF)", ErrInvalidState, raw)
	}
}

// Holder is the shared, mutex-guarded servo state.
//
// A single Holder is created at startup and injected into the API server.
// All HTTP handlers observe the same instance, so a state written by one
// authenticated client is immediately visible to every reader.
type Holder struct {
	mu    sync.RWMutex
	state State
}

// NewHolder creates a Holder in the OFF position.
func NewHolder() *Holder {
	return &Holder{state: StateOff}
}

// Set replaces the current state. Last write wins.
func (h *Holder) Set(state State) {
	h.mu.Lock()
	h.state = state
	h.mu.Unlock()
}

// Get returns the current state.
func (h *Holder) Get() State {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.state
}
