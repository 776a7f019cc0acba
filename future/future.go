// Package future implements a settle-once pending computation with
// continuation registration.
//
// A Future is settled exactly once, either with a value or with an error.
// Continuations registered before settlement run in registration order on the
// goroutine that settles it; continuations registered afterwards run
// immediately on the registering goroutine.
//
// Example:
//
//	user := future.Go(ctx, repo.Load)
//	name := future.Then(user, func(u User) (string, error) { return u.Name, nil })
//	value, err := name.Await(ctx)
package future

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/eapache/queue"

	"github.com/charmingruby/outcome/internal/panics"
	"github.com/charmingruby/outcome/internal/timeutil"
)

var (
	// ErrNilFuture rejects a chained Future whose continuation returned nil.
	ErrNilFuture = errors.New("future: continuation returned a nil future")
	// ErrNilRejection replaces a nil error passed to Reject.
	ErrNilRejection = errors.New("future: nil rejection")
)

// PanicError rejects a Future whose work or continuation panicked.
type PanicError = panics.Error

// Future is the read side of a pending computation producing T.
type Future[T any] struct {
	mu      sync.Mutex
	done    chan struct{}
	pending *queue.Queue // func(T, error); nil once settled
	value   T
	err     error
}

// Promise is the write side of a Future.
//
// Example:
//
//	p := future.NewPromise[int]()
//	go func() { p.Settle(compute()) }()
//	return p.Future()
type Promise[T any] struct {
	f *Future[T]
}

// NewPromise returns an unsettled Promise.
func NewPromise[T any]() *Promise[T] {
	return &Promise[T]{f: &Future[T]{
		done:    make(chan struct{}),
		pending: queue.New(),
	}}
}

// Future returns the Future settled by p.
func (p *Promise[T]) Future() *Future[T] {
	return p.f
}

// Resolve settles the Future with value. It reports false when the Future was
// already settled.
func (p *Promise[T]) Resolve(value T) bool {
	return p.f.settle(value, nil)
}

// Reject settles the Future with err. A nil err is replaced by
// ErrNilRejection.
func (p *Promise[T]) Reject(err error) bool {
	if err == nil {
		err = ErrNilRejection
	}
	var zero T
	return p.f.settle(zero, err)
}

// Settle resolves with value when err is nil and rejects with err otherwise.
func (p *Promise[T]) Settle(value T, err error) bool {
	if err != nil {
		return p.Reject(err)
	}
	return p.Resolve(value)
}

func (f *Future[T]) settle(value T, err error) bool {
	f.mu.Lock()
	if f.pending == nil {
		f.mu.Unlock()
		return false
	}
	f.value, f.err = value, err
	pending := f.pending
	f.pending = nil
	close(f.done)
	f.mu.Unlock()

	for pending.Length() > 0 {
		pending.Remove().(func(T, error))(value, err)
	}
	return true
}

// Resolved returns a Future already settled with value.
func Resolved[T any](value T) *Future[T] {
	p := NewPromise[T]()
	p.Resolve(value)
	return p.Future()
}

// Rejected returns a Future already settled with err.
func Rejected[T any](err error) *Future[T] {
	p := NewPromise[T]()
	p.Reject(err)
	return p.Future()
}

// Go runs fn on a new goroutine and settles the returned Future with its
// outcome. A panic in fn rejects the Future with a *PanicError. ctx is handed
// to fn untouched.
//
// Example:
//
//	f := future.Go(ctx, func(ctx context.Context) (User, error) {
//		return repo.Load(ctx, id)
//	})
func Go[T any](ctx context.Context, fn func(context.Context) (T, error)) *Future[T] {
	p := NewPromise[T]()
	go func() {
		var (
			value T
			err   error
		)
		if pe := panics.Guard(func() { value, err = fn(ctx) }); pe != nil {
			p.Reject(pe)
			return
		}
		p.Settle(value, err)
	}()
	return p.Future()
}

// After settles with value once d has elapsed, or with ctx.Err() when ctx ends
// first.
//
// Example:
//
//	slow := future.After(ctx, 50*time.Millisecond, "payload")
func After[T any](ctx context.Context, d time.Duration, value T) *Future[T] {
	p := NewPromise[T]()
	go func() {
		if err := timeutil.Sleep(ctx, d); err != nil {
			p.Reject(err)
			return
		}
		p.Resolve(value)
	}()
	return p.Future()
}

// Done returns a channel closed once the Future is settled.
func (f *Future[T]) Done() <-chan struct{} {
	return f.done
}

// Wait blocks until the Future is settled and returns its outcome.
func (f *Future[T]) Wait() (T, error) {
	<-f.done
	return f.value, f.err
}

// Await is Wait bounded by ctx. Cancelling ctx abandons the wait only; the
// underlying computation keeps running.
//
// Example:
//
//	value, err := f.Await(ctx)
//	if errors.Is(err, context.DeadlineExceeded) {
//		return err
//	}
func (f *Future[T]) Await(ctx context.Context) (T, error) {
	select {
	case <-f.done:
		return f.value, f.err
	default:
	}
	select {
	case <-f.done:
		return f.value, f.err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}

// OnSettle registers fn to receive the outcome once the Future settles.
func (f *Future[T]) OnSettle(fn func(T, error)) {
	f.mu.Lock()
	if f.pending != nil {
		f.pending.Add(fn)
		f.mu.Unlock()
		return
	}
	f.mu.Unlock()
	fn(f.value, f.err)
}

// Handle derives a Future from both outcomes of f. fn always runs once f
// settles; a panic in fn rejects the derived Future with a *PanicError.
func Handle[T any, U any](f *Future[T], fn func(T, error) (U, error)) *Future[U] {
	p := NewPromise[U]()
	f.OnSettle(func(value T, err error) {
		var (
			out    U
			outErr error
		)
		if pe := panics.Guard(func() { out, outErr = fn(value, err) }); pe != nil {
			p.Reject(pe)
			return
		}
		p.Settle(out, outErr)
	})
	return p.Future()
}

// Then applies fn to the resolved value. A rejection of f propagates unchanged
// and fn is not invoked.
//
// Example:
//
//	name := future.Then(user, func(u User) (string, error) { return u.Name, nil })
func Then[T any, U any](f *Future[T], fn func(T) (U, error)) *Future[U] {
	return Handle(f, func(value T, err error) (U, error) {
		if err != nil {
			var zero U
			return zero, err
		}
		return fn(value)
	})
}

// Chain is Then for continuations that start another pending computation. The
// returned Future settles with the outcome of the Future fn returns.
//
// Example:
//
//	profile := future.Chain(user, func(u User) *future.Future[Profile] {
//		return future.Go(ctx, profiles.Loader(u.ID))
//	})
func Chain[T any, U any](f *Future[T], fn func(T) *Future[U]) *Future[U] {
	p := NewPromise[U]()
	f.OnSettle(func(value T, err error) {
		if err != nil {
			p.Reject(err)
			return
		}
		var next *Future[U]
		if pe := panics.Guard(func() { next = fn(value) }); pe != nil {
			p.Reject(pe)
			return
		}
		if next == nil {
			p.Reject(ErrNilFuture)
			return
		}
		next.OnSettle(func(out U, outErr error) {
			p.Settle(out, outErr)
		})
	})
	return p.Future()
}
