package fixedmath

// saturate clamps a wide accumulator so that the final value still fits a
// signed 32-bit integer after the shift by q.
func saturate(acc int64, q uint) int64 {
	if hi := int64(1)<<(31+q) - 1; acc > hi {
		return hi
	}

	if lo := -(int64(1) << (31 + q)); acc < lo {
		return lo
	}

	return acc
}

// mulAddSat emulates a widening saturating multiply-accumulate: the exact
// product a*b is accumulated into acc in 64 bits together with a rounding
// bias of 2^(q-1), the accumulator is saturated, and the low 32 bits of
// acc >> q are returned.
func mulAddSat(a, b int32, acc int64, q uint) int32 {
	acc += int64(a)*int64(b) + int64(1)<<(q-1)
	return int32(saturate(acc, q) >> q)
}

// Multiply returns a*b at format q, rounding half up before truncation.
// The result is committed to 32 bits without overflow protection: products
// outside the representable range of the format wrap. Callers choose this
// variant only when the operand range is known safe.
func Multiply(a, b int32, q uint) int32 {
	checkFormat(q)

	acc := int64(a)*int64(b) + int64(1)<<(q-1)

	return int32(acc >> q)
}

// MultiplySat returns a*b at format q, rounding half up before truncation.
// The wide intermediate is clamped to the representable extreme before the
// final shift, so the result never wraps.
func MultiplySat(a, b int32, q uint) int32 {
	checkFormat(q)

	return mulAddSat(a, b, 0, q)
}
