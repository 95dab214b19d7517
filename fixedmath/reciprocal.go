package fixedmath

import "github.com/cwbudde/algo-fixedpoint/qformat"

// reciprocalIterations is the unconditional Newton-Raphson step count for
// Reciprocal. Kept fixed so the worst-case cost is input-independent.
const reciprocalIterations = 30

// Reciprocal computes 1/d at format q using Newton-Raphson iteration:
//
//	x[0]   = smallest positive value representable at format q
//	x[k+1] = x[k] + x[k]*(1 - d*x[k])
//
// with every multiply saturating at format q. d must be nonzero; the result
// for d == 0 is undefined. The initial guess 2^(2q-32) collapses to zero
// for q < 16, so the useful domain is 16 <= q <= 31.
//
// At q == 31 the representable magnitude is below one, so no reciprocal can
// be expressed by the general iteration; the closest representable value to
// 1.0 is returned directly instead.
func Reciprocal(d int32, q uint) int32 {
	checkFormat(q)
	checkNonZero(d)

	neg := d < 0
	if neg {
		// The +1 bias offsets the asymmetry of two's complement negation.
		d = -d + 1
	}

	var result int32
	if q == 31 {
		result = qformat.Max
	} else {
		one := int64(1) << (2 * q) // 1.0 at the accumulator's product scale
		result = int32(uint32(1) << 31 >> (63 - 2*q))
		for i := 0; i < reciprocalIterations; i++ {
			t := mulAddSat(result, -d, one, q) // 1 - d*x
			t = mulAddSat(result, t, 0, q)     // x*(1 - d*x)
			result += t
		}
	}

	if neg {
		result = -result
	}

	return result
}
