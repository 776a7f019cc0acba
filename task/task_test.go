package task_test

import (
	"context"
	"errors"
	"testing"
	"testing/quick"
	"time"

	"github.com/charmingruby/outcome/result"
	"github.com/charmingruby/outcome/task"
)

func TestTaskMapIdentityLaw(t *testing.T) {
	identity := func(x int) int { return x }
	check := func(value int) bool {
		base := task.Pure(value)
		mapped := task.Map(base, identity)
		return equalTasks(base, mapped)
	}
	if err := quick.Check(check, nil); err != nil {
		t.Fatalf("map identity law failed: %v", err)
	}
}

func TestTaskFlatMapAssociativity(t *testing.T) {
	f := func(x int) task.Task[int] {
		return task.From(func(context.Context) (int, error) {
			if x%2 == 0 {
				return x / 2, nil
			}
			return 0, errors.New("odd")
		})
	}
	g := func(x int) task.Task[int] {
		return task.Map(task.Pure(x), func(v int) int { return v + 3 })
	}
	check := func(value int) bool {
		left := task.FlatMap(task.FlatMap(task.Pure(value), f), g)
		right := task.FlatMap(task.Pure(value), func(v int) task.Task[int] {
			return task.FlatMap(f(v), g)
		})
		return equalTasks(left, right)
	}
	if err := quick.Check(check, nil); err != nil {
		t.Fatalf("flatmap associativity failed: %v", err)
	}
}

func TestTaskContextErrorsTakePrecedence(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	failing := task.Fail[int](errors.New("boom"))
	if _, err := failing(ctx); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context cancellation, got %v", err)
	}
	mapped := task.Map(failing, func(v int) int { return v })
	if _, err := mapped(ctx); !errors.Is(err, context.Canceled) {
		t.Fatalf("map should propagate context cancellation")
	}
	fromRes := task.FromResult(result.FromTuple(1, nil))
	if _, err := fromRes(ctx); !errors.Is(err, context.Canceled) {
		t.Fatalf("from result should propagate context cancellation")
	}
}

func TestTimeout(t *testing.T) {
	work := task.From(func(ctx context.Context) (int, error) {
		select {
		case <-ctx.Done():
			return 0, ctx.Err()
		case <-time.After(100 * time.Millisecond):
			return 1, nil
		}
	})
	_, err := task.Timeout(work, 10*time.Millisecond)(context.Background())
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected timeout error, got %v", err)
	}
}

func TestFromResultUnwrapsFailure(t *testing.T) {
	boom := errors.New("boom")
	_, err := task.FromResult(result.FromTuple(0, boom))(context.Background())
	if !errors.Is(err, boom) {
		t.Fatalf("expected boom, got %v", err)
	}
}

func TestStartSettlesFuture(t *testing.T) {
	ctx := context.Background()
	pending := task.Start(ctx, task.Map(task.Pure(20), func(v int) int { return v + 1 }))
	value, err := pending.Await(ctx)
	if err != nil || value != 21 {
		t.Fatalf("unexpected outcome %v %v", value, err)
	}
}

func equalTasks[T comparable](a task.Task[T], b task.Task[T]) bool {
	ctx := context.Background()
	av, aerr := a(ctx)
	bv, berr := b(ctx)
	if (aerr == nil) != (berr == nil) {
		return false
	}
	if aerr != nil {
		return true
	}
	return av == bv
}
