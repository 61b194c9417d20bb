// Package segment: canonical validation for caller-supplied parameters.
// Encode stays total by contract, so validation is opt-in: callers that
// accept a Wiring from configuration should reject it here once, up
// front, instead of discovering Blank output later.
package segment

import "fmt"

// Validate returns nil for a declared Wiring and ErrUnknownWiring
// (wrapped with the offending value) otherwise.
//
// Pure, deterministic, allocates only on the error path.
func (w Wiring) Validate() error {
	if w >= wiringCount {
		return fmt.Errorf("wiring %d: %w", w, ErrUnknownWiring)
	}

	return nil
}
