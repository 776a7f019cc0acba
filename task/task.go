// Package task defines lazy, context-aware computations that can be started
// as pending Futures.
//
// Example:
//
//	load := task.From(func(ctx context.Context) (User, error) {
//		return repo.Load(ctx)
//	})
//	pending := task.Start(ctx, task.Timeout(load, time.Second))
package task

import (
	"context"
	"errors"
	"time"

	"github.com/charmingruby/outcome/future"
	"github.com/charmingruby/outcome/result"
)

// Task represents a computation that can be executed with a context.
//
// Example:
//
//	var fetchUser Task[User] = func(ctx context.Context) (User, error) {
//		return repo.Load(ctx)
//	}
type Task[T any] func(ctx context.Context) (T, error)

// From wraps a context-aware function into a Task that refuses to start on a
// done context.
func From[T any](fn func(ctx context.Context) (T, error)) Task[T] {
	return func(ctx context.Context) (T, error) {
		if err := ctx.Err(); err != nil {
			var zero T
			return zero, err
		}
		return fn(ctx)
	}
}

// Pure lifts a value into a Task that respects cancellation.
func Pure[T any](value T) Task[T] {
	return func(ctx context.Context) (T, error) {
		if err := ctx.Err(); err != nil {
			var zero T
			return zero, err
		}
		return value, nil
	}
}

// Fail creates a Task that fails with err (or the context error when the
// context is already done).
func Fail[T any](err error) Task[T] {
	failureErr := err
	if failureErr == nil {
		failureErr = errors.New("task: nil error")
	}
	return func(ctx context.Context) (T, error) {
		var zero T
		if ctxErr := ctx.Err(); ctxErr != nil {
			return zero, ctxErr
		}
		return zero, failureErr
	}
}

// Map transforms the Task value when it succeeds.
//
// Example:
//
//	getName := Map(fetchUser, func(u User) string { return u.Name })
func Map[T any, U any](t Task[T], fn func(T) U) Task[U] {
	return func(ctx context.Context) (U, error) {
		val, err := t(ctx)
		if err != nil {
			var zero U
			return zero, err
		}
		if err := ctx.Err(); err != nil {
			var zero U
			return zero, err
		}
		return fn(val), nil
	}
}

// FlatMap chains two Tasks.
func FlatMap[T any, U any](t Task[T], fn func(T) Task[U]) Task[U] {
	return func(ctx context.Context) (U, error) {
		val, err := t(ctx)
		if err != nil {
			var zero U
			return zero, err
		}
		if err := ctx.Err(); err != nil {
			var zero U
			return zero, err
		}
		return fn(val)(ctx)
	}
}

// Timeout bounds the execution time of a Task. A non-positive d leaves the
// Task unbounded.
//
// Example:
//
//	fast := Timeout(fetchUser, 500*time.Millisecond)
func Timeout[T any](t Task[T], d time.Duration) Task[T] {
	if d <= 0 {
		return t
	}
	return func(ctx context.Context) (T, error) {
		ctxWithTimeout, cancel := context.WithTimeout(ctx, d)
		defer cancel()
		return t(ctxWithTimeout)
	}
}

// FromResult lifts a Result whose failure type is an error into a Task.
// Context cancellation takes precedence over the stored failure.
//
// Example:
//
//	t := FromResult(result.FromTuple(strconv.Atoi(raw)))
func FromResult[S any, F interface {
	comparable
	error
}](res result.Result[S, F]) Task[S] {
	return func(ctx context.Context) (S, error) {
		if err := ctx.Err(); err != nil {
			var zero S
			return zero, err
		}
		return result.Unwrap(res)
	}
}

// Start runs t on a new goroutine and returns the pending Future for its
// outcome.
//
// Example:
//
//	pending := task.Start(ctx, fetchUser)
//	user, err := pending.Await(ctx)
func Start[T any](ctx context.Context, t Task[T]) *future.Future[T] {
	return future.Go[T](ctx, t)
}
