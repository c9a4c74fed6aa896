package thrower

import (
	"errors"
	"fmt"
)

var (
	// ErrPanic matches any [PanicError], via [errors.Is].
	ErrPanic = errors.New(`thrower: goroutine panicked`)
)

// MissingArgumentError indicates that a required argument was absent (nil).
// It is returned synchronously, by [Launcher.Go] and [Launcher.TryGo], before
// any scheduling occurs.
type MissingArgumentError struct {
	// Name is the name of the absent parameter.
	Name string
	// Message is an optional detail message.
	Message string
}

// Error implements the error interface.
func (e *MissingArgumentError) Error() string {
	if e.Message == `` {
		return fmt.Sprintf(`thrower: missing argument: %s`, e.Name)
	}
	return fmt.Sprintf(`thrower: missing argument: %s: %s`, e.Name, e.Message)
}

// PanicError wraps a panic value recovered from a work item (or handler).
type PanicError struct {
	Value any
}

// Error implements the error interface.
func (e PanicError) Error() string {
	return fmt.Sprintf(`thrower: goroutine panicked: %v`, e.Value)
}

// Unwrap returns the underlying error if the panic value is an error type.
// This enables use with [errors.Is] and [errors.As] for error matching
// through the cause chain.
//
// If the panic Value is not an error (e.g., a string or other type),
// returns nil.
func (e PanicError) Unwrap() error {
	if err, ok := e.Value.(error); ok {
		return err
	}
	return nil
}

// Is supports matching any PanicError against the [ErrPanic] sentinel.
func (e PanicError) Is(target error) bool {
	return target == ErrPanic
}
