package access

import (
	"errors"
	"fmt"
)

// Sentinel errors for common conditions.
var (
	// ErrStale indicates the live object backing a cached reference has been
	// destroyed or deactivated by the host. This is normal during screen
	// transitions, not an infrastructure failure.
	ErrStale = errors.New("backing object no longer exists")

	// ErrRejected indicates the game refused an action (selecting an already
	// claimed reward, refreshing an empty shop, etc.).
	ErrRejected = errors.New("action rejected by game")
)

// HostError represents a failure inside the host game while the layer was
// calling into it (accessor threw, action handler failed). These never
// propagate out of input dispatch; they are logged and spoken as a generic
// failure at most.
type HostError struct {
	Op  string // Operation that failed (e.g., "activate", "read_label")
	Err error  // Underlying error
}

func (e *HostError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("access: %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("access: %s", e.Op)
}

func (e *HostError) Unwrap() error {
	return e.Err
}

// NewHostError creates a new host error.
func NewHostError(op string, err error) *HostError {
	return &HostError{Op: op, Err: err}
}

// IsStale checks if an error indicates a stale live-object reference.
func IsStale(err error) bool {
	return errors.Is(err, ErrStale)
}
