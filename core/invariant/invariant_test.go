package invariant_test

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/ovum-lang/ovum/core/invariant"
)

// expectPanic runs fn and returns the recovered panic message
func expectPanic(t *testing.T, fn func()) string {
	t.Helper()
	var msg string
	func() {
		defer func() {
			r := recover()
			if r == nil {
				t.Fatal("expected panic")
			}
			msg = fmt.Sprintf("%v", r)
		}()
		fn()
	}()
	return msg
}

func TestPreconditionPass(t *testing.T) {
	invariant.Precondition(true, "this should pass")
	invariant.Precondition(len("fun") == 3, "keyword length")
}

func TestPreconditionFail(t *testing.T) {
	msg := expectPanic(t, func() {
		invariant.Precondition(false, "kind %s is not a literal", "IDENT")
	})
	if !strings.Contains(msg, "PRECONDITION VIOLATION") {
		t.Errorf("expected PRECONDITION VIOLATION, got: %s", msg)
	}
	if !strings.Contains(msg, "kind IDENT is not a literal") {
		t.Errorf("expected formatted message, got: %s", msg)
	}
	if !strings.Contains(msg, "at ") {
		t.Errorf("expected caller location, got: %s", msg)
	}
}

func TestPostconditionFail(t *testing.T) {
	msg := expectPanic(t, func() {
		invariant.Postcondition(false, "stream must end with EOF")
	})
	if !strings.Contains(msg, "POSTCONDITION VIOLATION") {
		t.Errorf("expected POSTCONDITION VIOLATION, got: %s", msg)
	}
}

func TestInvariantFail(t *testing.T) {
	msg := expectPanic(t, func() {
		invariant.Invariant(false, "cursor ahead of buffer")
	})
	if !strings.Contains(msg, "INVARIANT VIOLATION: cursor ahead of buffer") {
		t.Errorf("unexpected message: %s", msg)
	}
}

func TestProgress(t *testing.T) {
	invariant.Progress(3, 4, "scan loop")

	msg := expectPanic(t, func() {
		invariant.Progress(4, 4, "scan loop")
	})
	if !strings.Contains(msg, "scan loop: no forward progress (offset 4 -> 4)") {
		t.Errorf("unexpected message: %s", msg)
	}
}

func TestNotNil(t *testing.T) {
	invariant.NotNil(&struct{}{}, "ptr")

	var typed *strings.Builder
	for name, v := range map[string]interface{}{"untyped": nil, "typed": typed} {
		t.Run(name, func(t *testing.T) {
			msg := expectPanic(t, func() { invariant.NotNil(v, "builder") })
			if !strings.Contains(msg, "builder must not be nil") {
				t.Errorf("unexpected message: %s", msg)
			}
		})
	}
}

func TestInRange(t *testing.T) {
	invariant.InRange(0, 0, 255, "byte")
	invariant.InRange(255, 0, 255, "byte")

	msg := expectPanic(t, func() { invariant.InRange(256, 0, 255, "byte") })
	if !strings.Contains(msg, "byte must be in range [0, 255], got 256") {
		t.Errorf("unexpected message: %s", msg)
	}
}

func TestPositive(t *testing.T) {
	invariant.Positive(1, "line")

	msg := expectPanic(t, func() { invariant.Positive(0, "line") })
	if !strings.Contains(msg, "line must be positive, got 0") {
		t.Errorf("unexpected message: %s", msg)
	}
}

func TestExpectNoError(t *testing.T) {
	invariant.ExpectNoError(nil, "encode")

	msg := expectPanic(t, func() { invariant.ExpectNoError(errors.New("boom"), "encode") })
	if !strings.Contains(msg, "encode must not fail: boom") {
		t.Errorf("unexpected message: %s", msg)
	}
}

func ExampleInvariant() {
	input := "abc"
	prev := -1
	for pos := 0; pos < len(input); pos++ {
		invariant.Progress(prev, pos, "example loop")
		prev = pos
	}
	fmt.Println("done")
	// Output: done
}
