//go:build debugchecks

package fixedmath

import "testing"

func mustPanic(t *testing.T, name string, fn func()) {
	t.Helper()

	defer func() {
		if recover() == nil {
			t.Fatalf("%s: expected panic", name)
		}
	}()
	fn()
}

func TestDebugChecksPanic(t *testing.T) {
	mustPanic(t, "format", func() { Multiply(1, 1, 0) })
	mustPanic(t, "dividend", func() { Reciprocal(0, 28) })
	mustPanic(t, "radicand", func() { InverseSqrt(-1, 28) })
}
