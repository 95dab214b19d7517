// Package fixedmath implements scalar fixed-point arithmetic on signed
// 32-bit values in Q-format, emulating a hardware saturating
// multiply-accumulate with a 64-bit software accumulator.
//
// Included operations:
//   - Multiply, MultiplySat: rounding fixed-point multiply with wrap or
//     saturation on overflow.
//   - Reciprocal: Newton-Raphson 1/d with a fixed count of 30 iterations.
//   - InverseSqrt: Newton-Raphson 1/sqrt(d) with a fixed count of 10 iterations.
//   - Sqrt: d * InverseSqrt(d, q).
//   - Sin, Cos: quadrant range reduction and a degree-7 odd polynomial,
//     with coefficients in Q8.24.
//
// All operations are pure functions of their scalar inputs, allocate
// nothing, and are safe for concurrent use. Iteration counts are fixed
// rather than tolerance-driven, so worst-case latency is input-independent.
//
// Preconditions (nonzero dividend, non-negative radicand, q-format range)
// are documented contracts, not runtime checks; out-of-domain inputs yield
// unspecified results. Builds with the debugchecks tag panic on violations
// instead.
package fixedmath
