// Package invariant provides contract assertions for the Ovum toolchain.
//
// Assertions guard programming errors, not user input: a malformed source
// file is reported as an error value, while a scanner that stops making
// progress or a token built with a mismatched value is a bug and panics.
//
// All functions panic on violation.
package invariant

import (
	"fmt"
	"reflect"
	"runtime"
)

// Precondition checks an input contract at function entry.
// Panics with PRECONDITION VIOLATION if condition is false.
//
// Example:
//
//	func NewLiteral(kind Kind, v value.Value) Token {
//	    invariant.Precondition(kind.IsLiteral(), "kind %s is not a literal", kind)
//	    // ...
//	}
func Precondition(condition bool, format string, args ...interface{}) {
	if !condition {
		fail("PRECONDITION", format, args...)
	}
}

// Postcondition checks an output contract before function return.
// Panics with POSTCONDITION VIOLATION if condition is false.
func Postcondition(condition bool, format string, args ...interface{}) {
	if !condition {
		fail("POSTCONDITION", format, args...)
	}
}

// Invariant checks an internal invariant during function execution.
// Panics with INVARIANT VIOLATION if condition is false.
//
// Example:
//
//	prev := l.cur.offset
//	for !l.IsAtEnd() {
//	    // ... scan one token ...
//	    invariant.Invariant(l.cur.offset > prev, "scan loop must advance")
//	    prev = l.cur.offset
//	}
func Invariant(condition bool, format string, args ...interface{}) {
	if !condition {
		fail("INVARIANT", format, args...)
	}
}

// Progress panics unless cur moved strictly past prev.
// Scanning loops use it to prove termination.
func Progress(prev, cur int, where string) {
	if cur <= prev {
		fail("INVARIANT", "%s: no forward progress (offset %d -> %d)", where, prev, cur)
	}
}

// NotNil panics if value is nil, including typed nils.
func NotNil(value interface{}, name string) {
	if value == nil || isNilValue(value) {
		fail("PRECONDITION", "%s must not be nil", name)
	}
}

func isNilValue(value interface{}) bool {
	v := reflect.ValueOf(value)
	switch v.Kind() {
	case reflect.Ptr, reflect.Interface, reflect.Slice, reflect.Map, reflect.Chan, reflect.Func:
		return v.IsNil()
	default:
		return false
	}
}

// InRange panics if value is outside [minVal, maxVal].
func InRange(value, minVal, maxVal int, name string) {
	if value < minVal || value > maxVal {
		fail("PRECONDITION", "%s must be in range [%d, %d], got %d",
			name, minVal, maxVal, value)
	}
}

// Positive panics if value <= 0.
func Positive(value int, name string) {
	if value <= 0 {
		fail("POSTCONDITION", "%s must be positive, got %d", name, value)
	}
}

// ExpectNoError panics if err is not nil.
// For operations that cannot fail on well-formed input, such as encoding
// a token stream the package itself built.
func ExpectNoError(err error, msg string) {
	if err != nil {
		fail("POSTCONDITION", "%s must not fail: %v", msg, err)
	}
}

// fail panics with a formatted message and the caller's file:line.
func fail(kind, format string, args ...interface{}) {
	pc := make([]uintptr, 10)
	n := runtime.Callers(3, pc)
	frames := runtime.CallersFrames(pc[:n])

	msg := fmt.Sprintf("%s VIOLATION: "+format, append([]interface{}{kind}, args...)...)

	if frame, ok := frames.Next(); ok {
		msg += fmt.Sprintf("\n  at %s:%d", frame.File, frame.Line)
	}

	panic(msg)
}
