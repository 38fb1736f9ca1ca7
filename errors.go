package xcall

import (
	"errors"
	"fmt"
)

var (
	ErrNoSink                   = errors.New("xcall: sink is required")
	ErrUnknownSink              = errors.New("xcall: unknown sink")
	ErrUnknownChannel           = errors.New("xcall: unknown channel")
	ErrUnsupportedProfileFormat = errors.New("xcall: unsupported profile format")
	ErrInvalidArgSelection      = errors.New("xcall: invalid argument selection")
	ErrInvalidConfig            = errors.New("xcall: invalid config")
)

// PanicError carries a value recovered from a panicking asynchronous body.
type PanicError struct {
	Value any
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("xcall: panic: %v", e.Value)
}

// Unwrap exposes the panic value when it is itself an error.
func (e *PanicError) Unwrap() error {
	if err, ok := e.Value.(error); ok {
		return err
	}
	return nil
}
