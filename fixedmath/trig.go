package fixedmath

// The reduction constants and polynomial coefficients below follow the
// fixed-point sine chapter of Cody and Waite, "Software Manual for the
// Elementary Functions", and are expressed in Q8.24. Sin and Cos take a
// q parameter for symmetry with the other operations but do not rescale
// the constants: results are only meaningful at q = 24.
const (
	// TwoPi is the closest Q8.24 representation of 2*pi.
	TwoPi int32 = 105414357
	// HalfPi is the Q8.24 representation of pi/2.
	HalfPi int32 = 26353589
)

const (
	oneOverHalfPi int32 = 10680707 // 2/pi in Q8.24

	sinR0 int32 = -11184804
	sinR1 int32 = 2236879
	sinR2 int32 = -212681
	sinR3 int32 = 11175
)

// Sin returns the sine of rad, an angle in radians at format q. |rad| must
// be less than the representable maximum minus pi.
//
// The angle is reduced into the principal [0, pi/2] wedge by quadrant:
// whole turns are subtracted first, quadrants 3 and 4 fold onto 1 and 2
// with a sign flip, and quadrant 2 reflects about pi/2. The folded angle
// feeds a degree-7 odd polynomial evaluated in the half-angle squared.
func Sin(rad int32, q uint) int32 {
	checkFormat(q)

	sign := int32(1)
	if rad < 0 {
		rad = -rad
		sign = -1
	}

	// Quadrant index: floor(rad / (pi/2)).
	quad := MultiplySat(rad, oneOverHalfPi, q) >> q
	rad -= (quad >> 2) * TwoPi
	if quad&2 != 0 {
		sign = -sign
		rad -= (TwoPi + 1) >> 1
	}

	if quad&1 != 0 {
		rad = (TwoPi+1)>>1 - rad
	}

	s := MultiplySat(rad/2, rad/2, q)
	p := MultiplySat(sinR3, s, q) + sinR2
	p = MultiplySat(p, s, q) + sinR1
	p = MultiplySat(p, s, q) + sinR0
	p = MultiplySat(p, s, q)

	return sign * (rad + MultiplySat(p, rad, q))
}

// Cos returns the cosine of rad, an angle in radians at format q. It is
// Sin phase-shifted by pi/2, not an independent approximation. The input
// domain matches Sin.
func Cos(rad int32, q uint) int32 {
	return Sin(rad+HalfPi, q)
}
