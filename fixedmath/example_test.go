package fixedmath_test

import (
	"fmt"

	"github.com/cwbudde/algo-fixedpoint/fixedmath"
	"github.com/cwbudde/algo-fixedpoint/qformat"
)

func ExampleMultiplySat() {
	a := qformat.FromFloat(0.5, 28)
	fmt.Printf("%.2f\n", qformat.ToFloat[float64](fixedmath.MultiplySat(a, a, 28), 28))

	// Output:
	// 0.25
}

func ExampleReciprocal() {
	d := qformat.FromFloat(4.0, 28)
	fmt.Printf("%.2f\n", qformat.ToFloat[float64](fixedmath.Reciprocal(d, 28), 28))

	// Output:
	// 0.25
}

func ExampleSqrt() {
	d := qformat.FromFloat(2.0, 28)
	fmt.Printf("%.6f\n", qformat.ToFloat[float64](fixedmath.Sqrt(d, 28), 28))

	// Output:
	// 1.414214
}

func ExampleSin() {
	fmt.Printf("%.4f\n", qformat.ToFloat[float64](fixedmath.Sin(fixedmath.HalfPi, 24), 24))

	// Output:
	// 1.0000
}
