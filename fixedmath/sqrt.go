package fixedmath

// Sqrt computes sqrt(d) at format q as d * InverseSqrt(d, q). The final
// multiply saturates but carries no rounding bias, unlike MultiplySat.
// d must be non-negative; the result for d < 0 is undefined.
func Sqrt(d int32, q uint) int32 {
	checkFormat(q)
	checkNonNegative(d)

	acc := int64(InverseSqrt(d, q)) * int64(d)

	return int32(saturate(acc, q) >> q)
}
