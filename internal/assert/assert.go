// Package assert holds invariant checks that must never fail.
// A failed check is a bug in the caller, so it panics instead of
// returning an error.
package assert

import "fmt"

// That panics with an error wrapping err when ok is false.
func That(ok bool, err error, format string, args ...any) {
	if !ok {
		panic(fmt.Errorf("assertion failed: %w: "+format, append([]any{err}, args...)...))
	}
}
