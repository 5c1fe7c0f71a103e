// Package math provides the dimensionless numeric primitives the quantity
// packages are built on: Scalar, Vector3, Mat4 and Quat.
package math

import (
	"cmp"
	"math"
)

// Scalar is a dimensionless float64.
type Scalar float64

// IsNaN reports whether s is NaN.
func (s Scalar) IsNaN() bool {
	return math.IsNaN(float64(s))
}

// IsZero reports whether s is zero (either sign).
func (s Scalar) IsZero() bool {
	return s == 0
}

// IsPositive reports whether s is strictly greater than zero.
func (s Scalar) IsPositive() bool {
	return s > 0
}

// IsNegative reports whether the sign bit of s is set, so -0 is negative.
func (s Scalar) IsNegative() bool {
	return math.Signbit(float64(s))
}

// IsFinite reports whether s is neither NaN nor infinite.
func (s Scalar) IsFinite() bool {
	return !math.IsNaN(float64(s)) && !math.IsInf(float64(s), 0)
}

// IsInfinite reports whether s is +Inf or -Inf.
func (s Scalar) IsInfinite() bool {
	return math.IsInf(float64(s), 0)
}

// IsPositiveInfinity reports whether s is +Inf.
func (s Scalar) IsPositiveInfinity() bool {
	return math.IsInf(float64(s), 1)
}

// IsNegativeInfinity reports whether s is -Inf.
func (s Scalar) IsNegativeInfinity() bool {
	return math.IsInf(float64(s), -1)
}

// Abs returns |s|.
func (s Scalar) Abs() Scalar {
	return Scalar(math.Abs(float64(s)))
}

// Floor returns the greatest integer value <= s.
func (s Scalar) Floor() Scalar {
	return Scalar(math.Floor(float64(s)))
}

// Ceil returns the least integer value >= s.
func (s Scalar) Ceil() Scalar {
	return Scalar(math.Ceil(float64(s)))
}

// Round rounds s to the nearest integer, ties to even.
func (s Scalar) Round() Scalar {
	return Scalar(math.RoundToEven(float64(s)))
}

// Sign returns -1, 0 or +1. NaN yields 0.
func (s Scalar) Sign() int {
	switch {
	case s > 0:
		return 1
	case s < 0:
		return -1
	default:
		return 0
	}
}

// Reciprocal returns 1 / s.
func (s Scalar) Reciprocal() Scalar {
	return 1 / s
}

// Square returns s * s.
func (s Scalar) Square() Scalar {
	return s * s
}

// Cube returns s * s * s.
func (s Scalar) Cube() Scalar {
	return s * s * s
}

// Sqrt returns the square root of s. Negative values yield NaN.
func (s Scalar) Sqrt() Scalar {
	return Scalar(math.Sqrt(float64(s)))
}

// CubeRoot returns the cube root of s.
func (s Scalar) CubeRoot() Scalar {
	return Scalar(math.Cbrt(float64(s)))
}

// Pow returns s raised to exponent.
func (s Scalar) Pow(exponent Scalar) Scalar {
	return Scalar(math.Pow(float64(s), float64(exponent)))
}

// Compare returns -1, 0 or +1. NaN sorts before every other value and is
// equal to itself.
func (s Scalar) Compare(other Scalar) int {
	return cmp.Compare(s, other)
}
