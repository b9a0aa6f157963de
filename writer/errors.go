package writer

import (
	"errors"
	"fmt"
)

var (
	// ErrModuleNotFound is matched by every *ModuleNotFoundError.
	ErrModuleNotFound = errors.New("writer module not found")
	// ErrSymbolNotFound is matched by every *SymbolNotFoundError.
	ErrSymbolNotFound = errors.New("writer entry point not found")
	// ErrMisuse is matched by every *MisuseError.
	ErrMisuse = errors.New("writer misuse")
	// ErrNilInstance is returned when an entry point returns no backend.
	ErrNilInstance = errors.New("entry point returned a nil writer")
)

// ModuleNotFoundError is returned when the module of a writer could not
// be loaded from its location.
type ModuleNotFoundError struct {
	Name     string
	Location string
	Err      error
}

func (e *ModuleNotFoundError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("writer not found: %s (%s): %v", e.Name, e.Location, e.Err)
	}
	return fmt.Sprintf("writer not found: %s (%s)", e.Name, e.Location)
}

// Unwrap returns the underlying loading error.
func (e *ModuleNotFoundError) Unwrap() error { return e.Err }

// Is makes errors.Is(err, ErrModuleNotFound) true.
func (e *ModuleNotFoundError) Is(target error) bool { return target == ErrModuleNotFound }

// SymbolNotFoundError is returned when a loaded module does not export
// the entry point for the requested element type.
type SymbolNotFoundError struct {
	Module   string
	Location string
	Symbol   string
	Reason   string
}

func (e *SymbolNotFoundError) Error() string {
	msg := fmt.Sprintf("writer %s (%s) does not export %s", e.Module, e.Location, e.Symbol)
	if e.Reason != "" {
		msg += ": " + e.Reason
	}
	return msg
}

// Is makes errors.Is(err, ErrSymbolNotFound) true.
func (e *SymbolNotFoundError) Is(target error) bool { return target == ErrSymbolNotFound }

// MisuseError is returned when a writer is used outside of its lifecycle
// contract, like calling Init directly or saving after Teardown.
type MisuseError struct {
	Op     string
	Writer string
	State  State
	Detail string
}

func (e *MisuseError) Error() string {
	return fmt.Sprintf("%s called on writer '%s' (%s): %s", e.Op, e.Writer, e.State, e.Detail)
}

// Is makes errors.Is(err, ErrMisuse) true.
func (e *MisuseError) Is(target error) bool { return target == ErrMisuse }
