//go:build debugchecks

package fixedmath

import "fmt"

func checkFormat(q uint) {
	if q < 1 || q > 31 {
		panic(fmt.Sprintf("fixedmath: q-format %d outside [1, 31]", q))
	}
}

func checkNonZero(d int32) {
	if d == 0 {
		panic("fixedmath: zero dividend")
	}
}

func checkNonNegative(d int32) {
	if d < 0 {
		panic(fmt.Sprintf("fixedmath: negative radicand %d", d))
	}
}
