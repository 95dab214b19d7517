package qformat

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Raw container bounds shared by every format. A fixed-point value lives in
// a signed 32-bit integer regardless of how many fractional bits it carries.
const (
	Min int32 = math.MinInt32
	Max int32 = math.MaxInt32
)

// One returns the raw representation of 1.0 at format q.
func One(q uint) int32 {
	return 1 << q
}

// Half returns the raw representation of 0.5 at format q.
func Half(q uint) int32 {
	return 1 << (q - 1)
}

// FromFloat converts a real value to its raw fixed-point representation at
// format q, rounding to nearest (half away from zero) and clamping to the
// representable range.
func FromFloat[T constraints.Float](v T, q uint) int32 {
	scaled := math.Round(float64(v) * float64(int64(1)<<q))
	if scaled >= float64(Max) {
		return Max
	}
	if scaled <= float64(Min) {
		return Min
	}

	return int32(scaled)
}

// ToFloat converts a raw fixed-point value at format q to a real value.
func ToFloat[T constraints.Float](raw int32, q uint) T {
	return T(raw) / T(int64(1)<<q)
}
