// Package quantity implements typed physical quantities.
//
// A quantity stores its magnitude in SI units and carries its kind as a
// type parameter, so a Time cannot be added to a Length and a Torque
// cannot be passed where an Energy is expected. Conversions between units
// of one kind go through unit descriptors; combinations of two kinds are
// either declared relations (see relations.go) or fall back to Unhandled.
//
// All values are immutable and safe for concurrent use.
package quantity

import (
	"cmp"
	"fmt"
	gomath "math"

	"github.com/Faultbox/measures/pkg/kind"
	"github.com/Faultbox/measures/pkg/math"
	"github.com/Faultbox/measures/pkg/unit"
)

// ScalarQuantity is implemented by every scalar quantity. It is the
// operand type of the generic composition helpers.
type ScalarQuantity interface {
	Magnitude() math.Scalar
}

// Scalar is a scalar quantity of kind K, stored in the SI unit of D.
type Scalar[K kind.Of[D], D unit.Dimension] struct {
	magnitude float64
}

// New returns magnitude expressed in u as a quantity of kind K.
func New[K kind.Of[D], D unit.Dimension](magnitude float64, u unit.Of[D]) Scalar[K, D] {
	return Scalar[K, D]{magnitude: u.ToSI(magnitude)}
}

// FromSI returns a quantity of kind K whose SI magnitude is magnitude.
// It has the shape expected of a factory by the composition helpers.
func FromSI[K kind.Of[D], D unit.Dimension](magnitude float64) Scalar[K, D] {
	return Scalar[K, D]{magnitude: magnitude}
}

// FromScalar is FromSI for a math.Scalar.
func FromScalar[K kind.Of[D], D unit.Dimension](s math.Scalar) Scalar[K, D] {
	return Scalar[K, D]{magnitude: float64(s)}
}

// As relabels q as kind K2 of the same dimension, e.g. Energy as Torque.
// The magnitude is copied unchanged.
func As[K2 kind.Of[D], K kind.Of[D], D unit.Dimension](q Scalar[K, D]) Scalar[K2, D] {
	return Scalar[K2, D]{magnitude: q.magnitude}
}

// Magnitude returns the SI magnitude.
func (q Scalar[K, D]) Magnitude() math.Scalar {
	return math.Scalar(q.magnitude)
}

// InUnit returns the magnitude expressed in u.
func (q Scalar[K, D]) InUnit(u unit.Of[D]) math.Scalar {
	return math.Scalar(u.FromSI(q.magnitude))
}

// Plus returns q unchanged.
func (q Scalar[K, D]) Plus() Scalar[K, D] {
	return q
}

// Negate returns -q.
func (q Scalar[K, D]) Negate() Scalar[K, D] {
	return Scalar[K, D]{magnitude: -q.magnitude}
}

// Add returns q + other.
func (q Scalar[K, D]) Add(other Scalar[K, D]) Scalar[K, D] {
	return Scalar[K, D]{magnitude: q.magnitude + other.magnitude}
}

// Subtract returns q - other.
func (q Scalar[K, D]) Subtract(other Scalar[K, D]) Scalar[K, D] {
	return Scalar[K, D]{magnitude: q.magnitude - other.magnitude}
}

// Multiply scales q by factor.
func (q Scalar[K, D]) Multiply(factor float64) Scalar[K, D] {
	return Scalar[K, D]{magnitude: q.magnitude * factor}
}

// Divide scales q by 1 / divisor. Division by zero is not checked.
func (q Scalar[K, D]) Divide(divisor float64) Scalar[K, D] {
	return Scalar[K, D]{magnitude: q.magnitude / divisor}
}

// Remainder returns the remainder of q / divisor, with the sign of q.
func (q Scalar[K, D]) Remainder(divisor float64) Scalar[K, D] {
	return Scalar[K, D]{magnitude: gomath.Mod(q.magnitude, divisor)}
}

// MultiplyScalar scales q by s.
func (q Scalar[K, D]) MultiplyScalar(s math.Scalar) Scalar[K, D] {
	return q.Multiply(float64(s))
}

// DivideScalar scales q by 1 / s.
func (q Scalar[K, D]) DivideScalar(s math.Scalar) Scalar[K, D] {
	return q.Divide(float64(s))
}

// MultiplyQuantity returns the product of q and any scalar quantity. The
// result has no declared kind; use a declared relation or Multiply with a
// factory to obtain a named kind.
func (q Scalar[K, D]) MultiplyQuantity(other ScalarQuantity) Unhandled {
	if other == nil {
		panic(nilArgument("other"))
	}
	return Unhandled{magnitude: q.magnitude * float64(other.Magnitude())}
}

// DivideQuantity returns the quotient of q and any scalar quantity as
// Unhandled.
func (q Scalar[K, D]) DivideQuantity(other ScalarQuantity) Unhandled {
	if other == nil {
		panic(nilArgument("other"))
	}
	return Unhandled{magnitude: q.magnitude / float64(other.Magnitude())}
}

// MultiplyVector returns q times the dimensionless direction v, e.g. an
// Acceleration times (1, 0, 0) is an Acceleration3.
func (q Scalar[K, D]) MultiplyVector(v math.Vector3) Vector3[K, D] {
	return Vector3[K, D]{components: v.Scale(q.magnitude)}
}

// Compare returns -1, 0 or +1. NaN orders before every other magnitude.
func (q Scalar[K, D]) Compare(other Scalar[K, D]) int {
	return cmp.Compare(q.magnitude, other.magnitude)
}

// Less reports q < other. It is false when either magnitude is NaN.
func (q Scalar[K, D]) Less(other Scalar[K, D]) bool {
	return q.magnitude < other.magnitude
}

// LessOrEqual reports q <= other.
func (q Scalar[K, D]) LessOrEqual(other Scalar[K, D]) bool {
	return q.magnitude <= other.magnitude
}

// Greater reports q > other.
func (q Scalar[K, D]) Greater(other Scalar[K, D]) bool {
	return q.magnitude > other.magnitude
}

// GreaterOrEqual reports q >= other.
func (q Scalar[K, D]) GreaterOrEqual(other Scalar[K, D]) bool {
	return q.magnitude >= other.magnitude
}

func (q Scalar[K, D]) IsNaN() bool              { return q.Magnitude().IsNaN() }
func (q Scalar[K, D]) IsZero() bool             { return q.Magnitude().IsZero() }
func (q Scalar[K, D]) IsPositive() bool         { return q.Magnitude().IsPositive() }
func (q Scalar[K, D]) IsNegative() bool         { return q.Magnitude().IsNegative() }
func (q Scalar[K, D]) IsFinite() bool           { return q.Magnitude().IsFinite() }
func (q Scalar[K, D]) IsInfinite() bool         { return q.Magnitude().IsInfinite() }
func (q Scalar[K, D]) IsPositiveInfinity() bool { return q.Magnitude().IsPositiveInfinity() }
func (q Scalar[K, D]) IsNegativeInfinity() bool { return q.Magnitude().IsNegativeInfinity() }

// Sign returns -1, 0 or +1.
func (q Scalar[K, D]) Sign() int {
	return q.Magnitude().Sign()
}

// Abs returns |q|.
func (q Scalar[K, D]) Abs() Scalar[K, D] {
	return Scalar[K, D]{magnitude: float64(q.Magnitude().Abs())}
}

// Floor rounds the SI magnitude down.
func (q Scalar[K, D]) Floor() Scalar[K, D] {
	return Scalar[K, D]{magnitude: float64(q.Magnitude().Floor())}
}

// Ceil rounds the SI magnitude up.
func (q Scalar[K, D]) Ceil() Scalar[K, D] {
	return Scalar[K, D]{magnitude: float64(q.Magnitude().Ceil())}
}

// Round rounds the SI magnitude to the nearest integer, ties to even.
func (q Scalar[K, D]) Round() Scalar[K, D] {
	return Scalar[K, D]{magnitude: float64(q.Magnitude().Round())}
}

// String formats q as "magnitude [symbol]" in SI. Unhandled quantities
// have no symbol and print the bare magnitude.
func (q Scalar[K, D]) String() string {
	var k K
	if k.Symbol() == "" {
		return fmt.Sprint(q.magnitude)
	}
	return fmt.Sprintf("%v [%s]", q.magnitude, k.Symbol())
}
