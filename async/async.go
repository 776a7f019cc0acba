// Package async lifts the result algebra over a pending computation.
//
// An async.Result is a Future that eventually settles with a result.Result.
// Every operation registers a continuation on that Future and returns a new
// pending value; nothing blocks until the caller awaits. A rejection of the
// underlying Future (as opposed to a settled Failure) passes through every
// operation untouched. Use TryCatch or FromTask at the boundary to turn
// raised errors into Failures.
//
// Example:
//
//	user := async.FromTask(ctx, loadUser, toLoadError)
//	name := async.Map(user, func(u User) string { return u.Name })
//	res, err := name.Await(ctx)
package async

import (
	"context"
	"errors"

	"github.com/charmingruby/outcome/future"
	"github.com/charmingruby/outcome/internal/panics"
	"github.com/charmingruby/outcome/option"
	"github.com/charmingruby/outcome/result"
	"github.com/charmingruby/outcome/task"
)

// Result is a pending result.Result[S, F]. The zero value has no underlying
// Future and must not be used; build one with Of, From, Success, Failure,
// TryCatch or FromTask.
type Result[S any, F comparable] struct {
	f *future.Future[result.Result[S, F]]
}

// Of wraps a Future that settles with a result.Result.
func Of[S any, F comparable](f *future.Future[result.Result[S, F]]) Result[S, F] {
	return Result[S, F]{f: f}
}

// From wraps an already available result.Result.
func From[S any, F comparable](r result.Result[S, F]) Result[S, F] {
	return Of(future.Resolved(r))
}

// Success returns a settled pending Success.
func Success[S any, F comparable](value S) Result[S, F] {
	return From(result.Success[S, F](value))
}

// Failure returns a settled pending Failure.
func Failure[S any, F comparable](failure F) Result[S, F] {
	return From(result.Failure[S](failure))
}

// TryCatch calls run and converts the outcome of the Future it returns into a
// Result. A rejection, a panic while calling run, or a nil Future becomes a
// Failure built by onError; trace carries the stack when the cause is a
// panic. The returned value never rejects unless onError itself panics.
//
// Example:
//
//	user := async.TryCatch(
//		func() *future.Future[User] { return future.Go(ctx, repo.Load) },
//		func(cause error, _ []byte) LoadError { return LoadError{Cause: cause.Error()} },
//	)
func TryCatch[S any, F comparable](run func() *future.Future[S], onError func(cause error, trace []byte) F) Result[S, F] {
	var src *future.Future[S]
	if pe := panics.Guard(func() { src = run() }); pe != nil {
		return Failure[S](onError(pe, pe.Stack))
	}
	if src == nil {
		return Failure[S](onError(future.ErrNilFuture, nil))
	}
	return Of(future.Handle(src, func(value S, err error) (result.Result[S, F], error) {
		if err != nil {
			return result.Failure[S](onError(err, traceOf(err))), nil
		}
		return result.Success[S, F](value), nil
	}))
}

// FromTask starts t and guards its outcome like TryCatch.
func FromTask[S any, F comparable](ctx context.Context, t task.Task[S], onError func(cause error, trace []byte) F) Result[S, F] {
	return TryCatch(func() *future.Future[S] { return task.Start(ctx, t) }, onError)
}

func traceOf(err error) []byte {
	var pe *panics.Error
	if errors.As(err, &pe) {
		return pe.Stack
	}
	return nil
}

// Future exposes the underlying pending computation.
func (r Result[S, F]) Future() *future.Future[result.Result[S, F]] {
	return r.f
}

// Done returns a channel closed once the underlying Future settles.
func (r Result[S, F]) Done() <-chan struct{} {
	return r.f.Done()
}

// Wait blocks until settlement. The error is non-nil only when the underlying
// Future rejected.
func (r Result[S, F]) Wait() (result.Result[S, F], error) {
	return r.f.Wait()
}

// Await is Wait bounded by ctx.
func (r Result[S, F]) Await(ctx context.Context) (result.Result[S, F], error) {
	return r.f.Await(ctx)
}

func lift[S any, F comparable, U any](r Result[S, F], fn func(result.Result[S, F]) U) *future.Future[U] {
	return future.Then(r.f, func(res result.Result[S, F]) (U, error) {
		return fn(res), nil
	})
}

// IsSuccess settles with whether the Result is a Success.
func (r Result[S, F]) IsSuccess() *future.Future[bool] {
	return lift(r, result.Result[S, F].IsSuccess)
}

// IsFailure settles with whether the Result is a Failure.
func (r Result[S, F]) IsFailure() *future.Future[bool] {
	return lift(r, result.Result[S, F].IsFailure)
}

// Success settles with the success payload, or None.
func (r Result[S, F]) Success() *future.Future[option.Option[S]] {
	return lift(r, result.Result[S, F].Success)
}

// Failure settles with the failure payload, or None.
func (r Result[S, F]) Failure() *future.Future[option.Option[F]] {
	return lift(r, result.Result[S, F].Failure)
}

// GetOrNil settles with a pointer to the success payload, or nil.
func (r Result[S, F]) GetOrNil() *future.Future[*S] {
	return lift(r, result.Result[S, F].GetOrNil)
}

// GetOrElse settles with the success payload, or the value of orElse.
func (r Result[S, F]) GetOrElse(orElse func() S) *future.Future[S] {
	return lift(r, func(res result.Result[S, F]) S {
		return res.GetOrElse(orElse)
	})
}

// MustGet settles with the success payload. On a Failure it rejects with a
// *future.PanicError whose Value is the stored failure.
func (r Result[S, F]) MustGet() *future.Future[S] {
	return lift(r, result.Result[S, F].MustGet)
}

// MustGetFailure settles with the failure payload. On a Success it rejects
// with a *future.PanicError wrapping result.ErrInvalidState.
func (r Result[S, F]) MustGetFailure() *future.Future[F] {
	return lift(r, result.Result[S, F].MustGetFailure)
}

// Match runs onSuccess or onFailure after settlement; nil handlers are
// skipped.
func (r Result[S, F]) Match(onSuccess func(S), onFailure func(F)) *future.Future[struct{}] {
	return lift(r, func(res result.Result[S, F]) struct{} {
		res.Match(onSuccess, onFailure)
		return struct{}{}
	})
}

// ForEach runs fn with the success payload after settlement.
func (r Result[S, F]) ForEach(fn func(S)) *future.Future[struct{}] {
	return lift(r, func(res result.Result[S, F]) struct{} {
		res.ForEach(fn)
		return struct{}{}
	})
}

// Unwrap settles with the success payload, or rejects with the failure
// payload itself.
//
// Example:
//
//	user, err := async.Unwrap(fetchUser(ctx, id)).Await(ctx)
func Unwrap[S any, F interface {
	comparable
	error
}](r Result[S, F]) *future.Future[S] {
	return future.Then(r.f, result.Unwrap[S, F])
}

// Map transforms the success payload once settled.
//
// Example:
//
//	names := async.Map(users, func(u User) string { return u.Name })
func Map[S any, U any, F comparable](r Result[S, F], fn func(S) U) Result[U, F] {
	return Of(lift(r, func(res result.Result[S, F]) result.Result[U, F] {
		return result.Map(res, fn)
	}))
}

// MapFailure transforms the failure payload once settled.
func MapFailure[S any, F comparable, E comparable](r Result[S, F], fn func(F) E) Result[S, E] {
	return Of(lift(r, func(res result.Result[S, F]) result.Result[S, E] {
		return result.MapFailure(res, fn)
	}))
}

// FlatMap chains a synchronous Result-producing step.
func FlatMap[S any, U any, F comparable](r Result[S, F], fn func(S) result.Result[U, F]) Result[U, F] {
	return Of(lift(r, func(res result.Result[S, F]) result.Result[U, F] {
		return result.FlatMap(res, fn)
	}))
}

// FlatMapAsync chains a step that is itself pending. The outcome is flattened
// one level: the returned value settles with the Result of fn's pending
// Result, never with a nested one. fn is not invoked on a Failure.
//
// Example:
//
//	profile := async.FlatMapAsync(user, func(u User) async.Result[Profile, LoadError] {
//		return fetchProfile(ctx, u.ID)
//	})
func FlatMapAsync[S any, U any, F comparable](r Result[S, F], fn func(S) Result[U, F]) Result[U, F] {
	return Of(future.Chain(r.f, func(res result.Result[S, F]) *future.Future[result.Result[U, F]] {
		if value, ok := res.Get(); ok {
			return fn(value).f
		}
		failure, _ := res.GetFailure()
		return future.Resolved(result.Failure[U](failure))
	}))
}

// FlatMapFailure chains a synchronous recovery step on the failure payload.
func FlatMapFailure[S any, F comparable, E comparable](r Result[S, F], fn func(F) result.Result[S, E]) Result[S, E] {
	return Of(lift(r, func(res result.Result[S, F]) result.Result[S, E] {
		return result.FlatMapFailure(res, fn)
	}))
}

// Fold settles with the value of exactly one of onSuccess or onFailure.
func Fold[S any, F comparable, U any](r Result[S, F], onSuccess func(S) U, onFailure func(F) U) *future.Future[U] {
	return lift(r, func(res result.Result[S, F]) U {
		return result.Fold(res, onSuccess, onFailure)
	})
}
