package fixedmath

import (
	"testing"

	"github.com/cwbudde/algo-fixedpoint/qformat"
)

func TestInverseSqrtKnownValues(t *testing.T) {
	const q = 28
	one := qformat.One(q)

	tests := []struct {
		name string
		d    int32
		want int32
	}{
		{"quarter", one / 4, 2 * one},
		{"one", one, one},
		{"two", 2 * one, 189812531}, // 1/sqrt(2)
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := InverseSqrt(tt.d, q); got != tt.want {
				t.Fatalf("InverseSqrt(%d, %d) = %d, want %d", tt.d, q, got, tt.want)
			}
		})
	}
}

func TestInverseSqrtSquaresToReciprocal(t *testing.T) {
	const q = 28
	one := qformat.One(q)
	for _, d := range []int32{one / 4, one, 2 * one} {
		y := InverseSqrt(d, q)
		if got, want := MultiplySat(y, y, q), Reciprocal(d, q); got != want {
			t.Fatalf("d=%d: y*y = %d, Reciprocal = %d", d, got, want)
		}
	}
}
