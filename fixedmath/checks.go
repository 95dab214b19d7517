//go:build !debugchecks

package fixedmath

// Release builds perform no precondition validation; out-of-domain inputs
// yield unspecified results rather than faults. Build with the debugchecks
// tag to panic on violations instead.

func checkFormat(q uint) {}

func checkNonZero(d int32) {}

func checkNonNegative(d int32) {}
