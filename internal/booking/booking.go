// Package booking simulates the fulfillment side of the assistant: each
// Book* function validates its request, fabricates a plausible confirmation,
// and returns a typed result. Nothing here talks to a real provider.
package booking

import (
	"fmt"
	"math/rand"
)

// ValidationError reports a request that cannot be fulfilled as given.
// The dispatcher surfaces its message to the user verbatim.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

func validationf(format string, args ...any) error {
	return &ValidationError{Reason: fmt.Sprintf(format, args...)}
}

func confirmationID(prefix string) string {
	return fmt.Sprintf("%s-%06d", prefix, 100000+rand.Intn(900000))
}

func pick(options []string) string {
	return options[rand.Intn(len(options))]
}
