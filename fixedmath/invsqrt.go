package fixedmath

import "github.com/cwbudde/algo-fixedpoint/qformat"

// inverseSqrtIterations is the unconditional Newton-Raphson step count for
// InverseSqrt.
const inverseSqrtIterations = 10

// InverseSqrt computes 1/sqrt(d) at format q using Newton-Raphson
// iteration:
//
//	y[0]   = 1.0
//	y[k+1] = y[k] + y[k]*(1 - d*y[k]^2)/2
//
// with every multiply saturating at format q. The halving is a truncating
// integer divide of the correction term, not a fixed-point multiply by 0.5.
// d must be non-negative; the result for d < 0 is undefined.
func InverseSqrt(d int32, q uint) int32 {
	checkFormat(q)
	checkNonNegative(d)

	one := int64(1) << (2 * q)
	y := qformat.One(q)
	for i := 0; i < inverseSqrtIterations; i++ {
		t := mulAddSat(y, y, 0, q)   // y^2
		t = mulAddSat(t, -d, one, q) // 1 - d*y^2
		t = mulAddSat(y, t/2, 0, q)
		y += t
	}

	return y
}
