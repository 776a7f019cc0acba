// Package option implements a generic Option type for presence/absence
// semantics. Result accessors use it as their absent marker.
//
// Example:
//
//	name := result.Success[string, int]("ada").Success()
//	fmt.Println(name.GetOrElse("anonymous"))
package option

import "fmt"

// Option represents presence or absence of a value of type T. The zero value is
// None. Some(nil) is valid for nil-capable types; use IsSome to distinguish an
// explicit nil from absence.
type Option[T any] struct {
	value T
	ok    bool
}

// Some constructs an Option that wraps value.
func Some[T any](value T) Option[T] {
	return Option[T]{value: value, ok: true}
}

// None constructs an empty Option for the provided type.
func None[T any]() Option[T] {
	return Option[T]{}
}

// FromOk mirrors Go's (value, ok) returns, e.g. map lookups.
func FromOk[T any](value T, ok bool) Option[T] {
	if !ok {
		return None[T]()
	}
	return Some(value)
}

// IsSome reports whether a value is present.
func (o Option[T]) IsSome() bool {
	return o.ok
}

// IsNone reports whether the Option is empty.
func (o Option[T]) IsNone() bool {
	return !o.ok
}

// Get returns the contained value and whether it was present.
func (o Option[T]) Get() (T, bool) {
	return o.value, o.ok
}

// GetOrElse returns the contained value, or fallback when empty.
func (o Option[T]) GetOrElse(fallback T) T {
	if o.ok {
		return o.value
	}
	return fallback
}

// GetOrElseFunc is GetOrElse with a lazily computed fallback.
func (o Option[T]) GetOrElseFunc(fn func() T) T {
	if o.ok {
		return o.value
	}
	return fn()
}

// ToPtr returns a pointer to a copy of the value, or nil when empty.
func (o Option[T]) ToPtr() *T {
	if !o.ok {
		return nil
	}
	value := o.value
	return &value
}

// Map transforms the contained value with fn when present.
func Map[T any, U any](o Option[T], fn func(T) U) Option[U] {
	if o.ok {
		return Some(fn(o.value))
	}
	return None[U]()
}

// Fold collapses the Option by calling onNone or onSome.
func Fold[T any, U any](o Option[T], onNone func() U, onSome func(T) U) U {
	if o.ok {
		return onSome(o.value)
	}
	return onNone()
}

// String implements fmt.Stringer for debugging.
func (o Option[T]) String() string {
	if o.ok {
		return fmt.Sprintf("Some(%v)", o.value)
	}
	return "None"
}
