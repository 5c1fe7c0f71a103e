package quantity

import (
	"fmt"

	"github.com/Faultbox/measures/pkg/kind"
	"github.com/Faultbox/measures/pkg/math"
	"github.com/Faultbox/measures/pkg/unit"
)

// VectorQuantity is implemented by every vector quantity.
type VectorQuantity interface {
	Components() math.Vector3
}

// Vector3 is a three-component quantity whose magnitude is a Scalar of
// kind K. Velocity3, for instance, is a Vector3 of kind.Speed.
type Vector3[K kind.Of[D], D unit.Dimension] struct {
	components math.Vector3
}

// New3 returns components expressed in u as a vector quantity.
func New3[K kind.Of[D], D unit.Dimension](components math.Vector3, u unit.Of[D]) Vector3[K, D] {
	return Vector3[K, D]{components: math.Vector3{
		X: u.ToSI(components.X),
		Y: u.ToSI(components.Y),
		Z: u.ToSI(components.Z),
	}}
}

// FromComponents returns a vector quantity from SI components. It has the
// shape expected of a vector factory by the composition helpers.
func FromComponents[K kind.Of[D], D unit.Dimension](components math.Vector3) Vector3[K, D] {
	return Vector3[K, D]{components: components}
}

// FromScalars assembles a vector from three scalar quantities of its kind.
func FromScalars[K kind.Of[D], D unit.Dimension](x, y, z Scalar[K, D]) Vector3[K, D] {
	return Vector3[K, D]{components: math.Vector3{X: x.magnitude, Y: y.magnitude, Z: z.magnitude}}
}

// As3 relabels v as kind K2 of the same dimension.
func As3[K2 kind.Of[D], K kind.Of[D], D unit.Dimension](v Vector3[K, D]) Vector3[K2, D] {
	return Vector3[K2, D]{components: v.components}
}

func (v Vector3[K, D]) X() Scalar[K, D] { return Scalar[K, D]{magnitude: v.components.X} }
func (v Vector3[K, D]) Y() Scalar[K, D] { return Scalar[K, D]{magnitude: v.components.Y} }
func (v Vector3[K, D]) Z() Scalar[K, D] { return Scalar[K, D]{magnitude: v.components.Z} }

// Components returns the SI components.
func (v Vector3[K, D]) Components() math.Vector3 {
	return v.components
}

// InUnit returns the components expressed in u.
func (v Vector3[K, D]) InUnit(u unit.Of[D]) math.Vector3 {
	return math.Vector3{
		X: u.FromSI(v.components.X),
		Y: u.FromSI(v.components.Y),
		Z: u.FromSI(v.components.Z),
	}
}

// Magnitude returns |v| as a scalar of the vector's kind.
func (v Vector3[K, D]) Magnitude() Scalar[K, D] {
	return Scalar[K, D]{magnitude: v.components.Length()}
}

// SquaredMagnitude returns v·v. Prefer it to Magnitude when only comparing
// lengths.
func (v Vector3[K, D]) SquaredMagnitude() Unhandled {
	return Unhandled{magnitude: v.components.SquaredLength()}
}

// Normalize divides v by its SI magnitude. The zero vector yields NaN
// components.
func (v Vector3[K, D]) Normalize() Vector3[K, D] {
	return Vector3[K, D]{components: v.components.Normalize()}
}

// Transform applies the linear part of m. Translation is ignored since a
// vector quantity is a direction or rate, not a position.
func (v Vector3[K, D]) Transform(m math.Mat4) Vector3[K, D] {
	return Vector3[K, D]{components: math.Transform(v.components, m)}
}

// Plus returns v unchanged.
func (v Vector3[K, D]) Plus() Vector3[K, D] {
	return v
}

// Negate returns -v.
func (v Vector3[K, D]) Negate() Vector3[K, D] {
	return Vector3[K, D]{components: v.components.Negate()}
}

// Add returns v + other.
func (v Vector3[K, D]) Add(other Vector3[K, D]) Vector3[K, D] {
	return Vector3[K, D]{components: v.components.Add(other.components)}
}

// Subtract returns v - other.
func (v Vector3[K, D]) Subtract(other Vector3[K, D]) Vector3[K, D] {
	return Vector3[K, D]{components: v.components.Sub(other.components)}
}

// Multiply scales every component by factor.
func (v Vector3[K, D]) Multiply(factor float64) Vector3[K, D] {
	return Vector3[K, D]{components: v.components.Scale(factor)}
}

// Divide scales every component by 1 / divisor.
func (v Vector3[K, D]) Divide(divisor float64) Vector3[K, D] {
	return Vector3[K, D]{components: v.components.Divide(divisor)}
}

// Remainder applies the floating-point remainder to every component.
func (v Vector3[K, D]) Remainder(divisor float64) Vector3[K, D] {
	return Vector3[K, D]{components: v.components.Remainder(divisor)}
}

// MultiplyScalar scales v by s.
func (v Vector3[K, D]) MultiplyScalar(s math.Scalar) Vector3[K, D] {
	return v.Multiply(float64(s))
}

// DivideScalar scales v by 1 / s.
func (v Vector3[K, D]) DivideScalar(s math.Scalar) Vector3[K, D] {
	return v.Divide(float64(s))
}

// MultiplyQuantity scales v by any scalar quantity. The result has no
// declared kind.
func (v Vector3[K, D]) MultiplyQuantity(s ScalarQuantity) Unhandled3 {
	if s == nil {
		panic(nilArgument("other"))
	}
	return Unhandled3{components: v.components.Scale(float64(s.Magnitude()))}
}

// DivideQuantity divides v by any scalar quantity as Unhandled3.
func (v Vector3[K, D]) DivideQuantity(s ScalarQuantity) Unhandled3 {
	if s == nil {
		panic(nilArgument("other"))
	}
	return Unhandled3{components: v.components.Divide(float64(s.Magnitude()))}
}

// Dot returns v·other for any vector quantity.
func (v Vector3[K, D]) Dot(other VectorQuantity) Unhandled {
	if other == nil {
		panic(nilArgument("other"))
	}
	return Unhandled{magnitude: v.components.Dot(other.Components())}
}

// Cross returns v×other for any vector quantity.
func (v Vector3[K, D]) Cross(other VectorQuantity) Unhandled3 {
	if other == nil {
		panic(nilArgument("other"))
	}
	return Unhandled3{components: v.components.Cross(other.Components())}
}

// DotVector projects v onto a dimensionless vector, keeping v's kind.
func (v Vector3[K, D]) DotVector(direction math.Vector3) Scalar[K, D] {
	return Scalar[K, D]{magnitude: v.components.Dot(direction)}
}

// CrossVector returns v×direction, keeping v's kind.
func (v Vector3[K, D]) CrossVector(direction math.Vector3) Vector3[K, D] {
	return Vector3[K, D]{components: v.components.Cross(direction)}
}

func (v Vector3[K, D]) IsNaN() bool      { return v.components.IsNaN() }
func (v Vector3[K, D]) IsZero() bool     { return v.components.IsZero() }
func (v Vector3[K, D]) IsFinite() bool   { return v.components.IsFinite() }
func (v Vector3[K, D]) IsInfinite() bool { return v.components.IsInfinite() }

// String formats v as "(x, y, z) [symbol]" in SI.
func (v Vector3[K, D]) String() string {
	var k K
	if k.Symbol() == "" {
		return v.components.String()
	}
	return fmt.Sprintf("%s [%s]", v.components, k.Symbol())
}
