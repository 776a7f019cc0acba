package panics_test

import (
	"errors"
	"testing"

	"github.com/charmingruby/outcome/internal/panics"
)

func TestGuardNoPanic(t *testing.T) {
	ran := false
	if err := panics.Guard(func() { ran = true }); err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if !ran {
		t.Fatalf("fn was not invoked")
	}
}

func TestGuardCapturesValueAndStack(t *testing.T) {
	pe := panics.Guard(func() { panic("boom") })
	if pe == nil {
		t.Fatalf("expected captured panic")
	}
	if pe.Value != "boom" {
		t.Fatalf("unexpected panic value %v", pe.Value)
	}
	if len(pe.Stack) == 0 {
		t.Fatalf("expected captured stack")
	}
	if pe.Unwrap() != nil {
		t.Fatalf("string panic should not unwrap to an error")
	}
}

func TestGuardUnwrapsErrorValues(t *testing.T) {
	sentinel := errors.New("sentinel")
	err := panics.Guard(func() { panic(sentinel) })
	if !errors.Is(err, sentinel) {
		t.Fatalf("expected errors.Is to reach the panic value, got %v", err)
	}
}
