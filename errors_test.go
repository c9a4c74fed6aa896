package thrower

import (
	"errors"
	"io"
	"testing"
)

func TestMissingArgumentError_Error(t *testing.T) {
	err := &MissingArgumentError{Name: `work`}

	if err.Error() != `thrower: missing argument: work` {
		t.Fatalf("unexpected message: %s", err.Error())
	}

	err = &MissingArgumentError{Name: `work`, Message: `a work item is required`}

	if err.Error() != `thrower: missing argument: work: a work item is required` {
		t.Fatalf("unexpected message: %s", err.Error())
	}
}

func TestPanicError_Error(t *testing.T) {
	err := PanicError{Value: `bang`}

	if err.Error() != `thrower: goroutine panicked: bang` {
		t.Fatalf("unexpected message: %s", err.Error())
	}
}

func TestPanicError_Unwrap(t *testing.T) {
	if err := (PanicError{Value: io.EOF}).Unwrap(); err != io.EOF {
		t.Fatalf("expected io.EOF, got %v", err)
	}

	if err := (PanicError{Value: `not an error`}).Unwrap(); err != nil {
		t.Fatalf("expected nil, got %v", err)
	}
}

func TestPanicError_Is(t *testing.T) {
	if !errors.Is(PanicError{Value: `bang`}, ErrPanic) {
		t.Fatal("expected any PanicError to match ErrPanic")
	}

	if !errors.Is(PanicError{Value: io.EOF}, io.EOF) {
		t.Fatal("expected the cause to match through the chain")
	}

	if errors.Is(PanicError{Value: `bang`}, io.EOF) {
		t.Fatal("expected no match for an unrelated error")
	}
}

func TestPanicError_As(t *testing.T) {
	var target PanicError

	if !errors.As(PanicError{Value: 42}, &target) {
		t.Fatal("expected errors.As to match")
	}

	if target.Value != 42 {
		t.Fatalf("expected 42, got %v", target.Value)
	}
}
