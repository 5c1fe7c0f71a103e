package math

import (
	"fmt"
	"math"
)

// Vector3 is a dimensionless 3D vector.
type Vector3 struct {
	X, Y, Z float64
}

// Zero3 is the zero vector.
var Zero3 = Vector3{}

// Add returns v + other.
func (v Vector3) Add(other Vector3) Vector3 {
	return Vector3{v.X + other.X, v.Y + other.Y, v.Z + other.Z}
}

// Sub returns v - other.
func (v Vector3) Sub(other Vector3) Vector3 {
	return Vector3{v.X - other.X, v.Y - other.Y, v.Z - other.Z}
}

// Negate returns -v.
func (v Vector3) Negate() Vector3 {
	return Vector3{-v.X, -v.Y, -v.Z}
}

// Scale returns v * s.
func (v Vector3) Scale(s float64) Vector3 {
	return Vector3{v.X * s, v.Y * s, v.Z * s}
}

// Divide returns v / s.
func (v Vector3) Divide(s float64) Vector3 {
	return Vector3{v.X / s, v.Y / s, v.Z / s}
}

// Remainder returns the componentwise remainder of v / s.
func (v Vector3) Remainder(s float64) Vector3 {
	return Vector3{math.Mod(v.X, s), math.Mod(v.Y, s), math.Mod(v.Z, s)}
}

// Dot returns the dot product.
func (v Vector3) Dot(other Vector3) float64 {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z
}

// Cross returns the cross product.
func (v Vector3) Cross(other Vector3) Vector3 {
	return Vector3{
		v.Y*other.Z - v.Z*other.Y,
		v.Z*other.X - v.X*other.Z,
		v.X*other.Y - v.Y*other.X,
	}
}

// SquaredLength returns v·v.
func (v Vector3) SquaredLength() float64 {
	return v.Dot(v)
}

// Length returns the magnitude.
func (v Vector3) Length() float64 {
	return math.Sqrt(v.SquaredLength())
}

// Normalize returns v divided by its length. The zero vector yields NaN
// components.
func (v Vector3) Normalize() Vector3 {
	return v.Divide(v.Length())
}

// Distance returns the distance to another point.
func (v Vector3) Distance(other Vector3) float64 {
	return v.Sub(other).Length()
}

// IsNaN reports whether any component is NaN.
func (v Vector3) IsNaN() bool {
	return math.IsNaN(v.X) || math.IsNaN(v.Y) || math.IsNaN(v.Z)
}

// IsZero reports whether every component is zero.
func (v Vector3) IsZero() bool {
	return v.X == 0 && v.Y == 0 && v.Z == 0
}

// IsFinite reports whether every component is finite.
func (v Vector3) IsFinite() bool {
	return Scalar(v.X).IsFinite() && Scalar(v.Y).IsFinite() && Scalar(v.Z).IsFinite()
}

// IsInfinite reports whether any component is infinite.
func (v Vector3) IsInfinite() bool {
	return math.IsInf(v.X, 0) || math.IsInf(v.Y, 0) || math.IsInf(v.Z, 0)
}

// String formats v as (x, y, z).
func (v Vector3) String() string {
	return fmt.Sprintf("(%v, %v, %v)", v.X, v.Y, v.Z)
}

// Dot returns a·b.
func Dot(a, b Vector3) float64 {
	return a.Dot(b)
}

// Cross returns a×b.
func Cross(a, b Vector3) Vector3 {
	return a.Cross(b)
}

// Norm returns |v|.
func Norm(v Vector3) float64 {
	return v.Length()
}

// Normalize returns v / |v|.
func Normalize(v Vector3) Vector3 {
	return v.Normalize()
}

// Transform applies the linear part of m to v. Translation is ignored, so
// v is treated as a direction or rate rather than a position.
func Transform(v Vector3, m Mat4) Vector3 {
	return m.TransformDirection(v)
}
