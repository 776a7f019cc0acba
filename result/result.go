// Package result provides a two-variant Success/Failure value with a typed
// failure payload, used in place of panics or bare errors for ordinary control
// flow.
//
// Example:
//
//	res := result.Success[string, NotFound]("John Doe")
//	upper := result.Map(res, strings.ToUpper)
//	fmt.Println(upper) // Success: JOHN DOE
//
// Result combinators uphold Functor/Monad laws (see laws_result_test.go) so
// chains of Map and FlatMap can be refactored freely.
package result

import (
	"errors"
	"fmt"

	"github.com/charmingruby/outcome/option"
)

// ErrInvalidState is raised by MustGetFailure when the Result is a Success.
var ErrInvalidState = errors.New("result: no failure in a success")

// Result is either a Success carrying S or a Failure carrying F. It is
// immutable; every transformation returns a new Result.
//
// The payload of the inactive variant is always the zero value, so two Results
// compare equal with == exactly when they are the same variant with equal
// payloads (S must be comparable for ==). The zero value is Failure(zero F).
//
// Example:
//
//	var res result.Result[int, string] = result.Failure[int]("empty")
//	fmt.Println(res.IsFailure()) // true
type Result[S any, F comparable] struct {
	value   S
	failure F
	ok      bool
}

// Success constructs a successful Result carrying value.
//
// Example:
//
//	res := result.Success[int, string](200)
//	fmt.Println(res.IsSuccess()) // true
func Success[S any, F comparable](value S) Result[S, F] {
	return Result[S, F]{value: value, ok: true}
}

// Failure constructs a failed Result carrying failure.
//
// Example:
//
//	res := result.Failure[int](NotFound{Code: 404})
func Failure[S any, F comparable](failure F) Result[S, F] {
	return Result[S, F]{failure: failure}
}

// FromTuple converts a standard Go (value, error) pair to a Result whose
// failure type is error.
//
// Example:
//
//	res := result.FromTuple(strconv.Atoi(raw))
func FromTuple[S any](value S, err error) Result[S, error] {
	if err != nil {
		return Failure[S](err)
	}
	return Success[S, error](value)
}

// FromOption converts an Option into a Result, calling onNone for the failure
// payload when the Option is empty.
//
// Example:
//
//	res := result.FromOption(cache.Lookup(id), func() Miss { return Miss{ID: id} })
func FromOption[S any, F comparable](o option.Option[S], onNone func() F) Result[S, F] {
	if value, ok := o.Get(); ok {
		return Success[S, F](value)
	}
	return Failure[S](onNone())
}

// IsSuccess reports whether the Result is a Success.
func (r Result[S, F]) IsSuccess() bool {
	return r.ok
}

// IsFailure reports whether the Result is a Failure.
func (r Result[S, F]) IsFailure() bool {
	return !r.ok
}

// Success returns the success payload, or None for a Failure.
func (r Result[S, F]) Success() option.Option[S] {
	return option.FromOk(r.value, r.ok)
}

// Failure returns the failure payload, or None for a Success.
func (r Result[S, F]) Failure() option.Option[F] {
	return option.FromOk(r.failure, !r.ok)
}

// Get returns the success payload and whether the Result is a Success.
//
// Example:
//
//	if user, ok := res.Get(); ok {
//		greet(user)
//	}
func (r Result[S, F]) Get() (S, bool) {
	return r.value, r.ok
}

// GetFailure returns the failure payload and whether the Result is a Failure.
func (r Result[S, F]) GetFailure() (F, bool) {
	return r.failure, !r.ok
}

// GetOrNil returns a pointer to a copy of the success payload, or nil for a
// Failure.
func (r Result[S, F]) GetOrNil() *S {
	return r.Success().ToPtr()
}

// MustGet returns the success payload. On a Failure it panics with the stored
// failure value itself, so a recover sees the original F.
//
// Example:
//
//	defer func() {
//		if nf, ok := recover().(NotFound); ok {
//			log.Println("missing", nf.Code)
//		}
//	}()
//	user := res.MustGet()
func (r Result[S, F]) MustGet() S {
	if !r.ok {
		panic(r.failure)
	}
	return r.value
}

// MustGetFailure returns the failure payload. On a Success it panics with
// ErrInvalidState; the success value is not carried.
func (r Result[S, F]) MustGetFailure() F {
	if r.ok {
		panic(ErrInvalidState)
	}
	return r.failure
}

// GetOrElse returns the success payload, or the value of orElse for a Failure.
// orElse is only invoked on a Failure.
//
// Example:
//
//	name := res.GetOrElse(func() string { return "anonymous" })
func (r Result[S, F]) GetOrElse(orElse func() S) S {
	if r.ok {
		return r.value
	}
	return orElse()
}

// Match calls onSuccess or onFailure depending on the variant. A nil handler
// is a no-op for its branch.
//
// Example:
//
//	res.Match(
//		func(u User) { render(u) },
//		func(nf NotFound) { renderMissing(nf) },
//	)
func (r Result[S, F]) Match(onSuccess func(S), onFailure func(F)) {
	if r.ok {
		if onSuccess != nil {
			onSuccess(r.value)
		}
		return
	}
	if onFailure != nil {
		onFailure(r.failure)
	}
}

// ForEach calls fn with the success payload; it does nothing on a Failure.
func (r Result[S, F]) ForEach(fn func(S)) {
	if r.ok {
		fn(r.value)
	}
}

// String renders "Success: <value>" or "Failure: <failure>".
func (r Result[S, F]) String() string {
	if r.ok {
		return fmt.Sprintf("Success: %v", r.value)
	}
	return fmt.Sprintf("Failure: %v", r.failure)
}

// Unwrap returns the success payload and a nil error, or the failure payload
// itself as the error. Callers can errors.As the returned error back to F.
//
// Example:
//
//	user, err := result.Unwrap(loadUser(id))
//	if err != nil {
//		return err
//	}
func Unwrap[S any, F interface {
	comparable
	error
}](r Result[S, F]) (S, error) {
	if r.ok {
		return r.value, nil
	}
	var zero S
	return zero, r.failure
}

// Map transforms the success payload; a Failure passes through unchanged.
//
// Example:
//
//	length := result.Map(res, func(s string) int { return len(s) })
func Map[S any, U any, F comparable](r Result[S, F], fn func(S) U) Result[U, F] {
	if r.ok {
		return Success[U, F](fn(r.value))
	}
	return Failure[U](r.failure)
}

// MapFailure transforms the failure payload; a Success passes through
// unchanged.
//
// Example:
//
//	res := result.MapFailure(load(), func(nf NotFound) int { return nf.Code })
func MapFailure[S any, F comparable, E comparable](r Result[S, F], fn func(F) E) Result[S, E] {
	if r.ok {
		return Success[S, E](r.value)
	}
	return Failure[S](fn(r.failure))
}

// FlatMap chains a Result-producing function. fn is not invoked on a Failure.
//
// Example:
//
//	profile := result.FlatMap(loadUser(id), loadProfile)
func FlatMap[S any, U any, F comparable](r Result[S, F], fn func(S) Result[U, F]) Result[U, F] {
	if r.ok {
		return fn(r.value)
	}
	return Failure[U](r.failure)
}

// FlatMapFailure chains a recovery function on the failure payload. fn is not
// invoked on a Success.
//
// Example:
//
//	cfg := result.FlatMapFailure(loadFile(path), func(Missing) result.Result[Config, Missing] {
//		return loadDefaults()
//	})
func FlatMapFailure[S any, F comparable, E comparable](r Result[S, F], fn func(F) Result[S, E]) Result[S, E] {
	if r.ok {
		return Success[S, E](r.value)
	}
	return fn(r.failure)
}

// Fold collapses the Result into a single value by invoking exactly one of
// onSuccess or onFailure.
//
// Example:
//
//	status := result.Fold(res,
//		func(u User) int { return http.StatusOK },
//		func(nf NotFound) int { return nf.Code },
//	)
func Fold[S any, F comparable, U any](r Result[S, F], onSuccess func(S) U, onFailure func(F) U) U {
	if r.ok {
		return onSuccess(r.value)
	}
	return onFailure(r.failure)
}

// Sequence converts a slice of Results into a Result of the success values,
// stopping at the first Failure.
func Sequence[S any, F comparable](results []Result[S, F]) Result[[]S, F] {
	values := make([]S, 0, len(results))
	for _, r := range results {
		if !r.ok {
			return Failure[[]S](r.failure)
		}
		values = append(values, r.value)
	}
	return Success[[]S, F](values)
}

// Traverse maps items to Results in order and sequences them. fn is not called
// for items after the first Failure.
//
// Example:
//
//	users := result.Traverse(ids, loadUser)
func Traverse[A any, S any, F comparable](items []A, fn func(A) Result[S, F]) Result[[]S, F] {
	values := make([]S, 0, len(items))
	for _, item := range items {
		r := fn(item)
		if !r.ok {
			return Failure[[]S](r.failure)
		}
		values = append(values, r.value)
	}
	return Success[[]S, F](values)
}
