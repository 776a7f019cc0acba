// Package panics converts recovered panics into ordinary error values.
//
// Example:
//
//	if pe := panics.Guard(func() { doWork() }); pe != nil {
//		log.Println(pe.Value, string(pe.Stack))
//	}
package panics

import (
	"fmt"
	"runtime/debug"
)

// Error carries the value passed to panic together with the stack captured at
// the recovery point.
type Error struct {
	Value any
	Stack []byte
}

func (e *Error) Error() string {
	return fmt.Sprintf("panic: %v", e.Value)
}

// Unwrap exposes the panic value when it is itself an error, so errors.Is and
// errors.As see through the panic.
func (e *Error) Unwrap() error {
	if err, ok := e.Value.(error); ok {
		return err
	}
	return nil
}

// Guard runs fn and returns a non-nil *Error when fn panics.
func Guard(fn func()) (pe *Error) {
	defer func() {
		if v := recover(); v != nil {
			pe = &Error{Value: v, Stack: debug.Stack()}
		}
	}()
	fn()
	return nil
}
