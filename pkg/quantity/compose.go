package quantity

import (
	gomath "math"

	"github.com/Faultbox/measures/pkg/math"
)

// The helpers below combine quantities of any kind and hand the raw SI
// result to a caller-supplied factory, typically FromSI[K] or
// FromComponents[K]. They extend the declared relations to kinds this
// package knows nothing about. Each panics with an *ArgumentError when an
// operand or the factory is nil.

// Multiply returns factory(a * b).
func Multiply[R any](a, b ScalarQuantity, factory func(float64) R) R {
	checkFactory(factory == nil)
	checkScalars(a, b)
	return factory(float64(a.Magnitude() * b.Magnitude()))
}

// Divide returns factory(a / b).
func Divide[R any](a, b ScalarQuantity, factory func(float64) R) R {
	checkFactory(factory == nil)
	checkScalars(a, b)
	return factory(float64(a.Magnitude() / b.Magnitude()))
}

// Invert returns factory(1 / q).
func Invert[R any](q ScalarQuantity, factory func(float64) R) R {
	checkFactory(factory == nil)
	checkScalars(q)
	return factory(float64(q.Magnitude().Reciprocal()))
}

// Square returns factory(q²).
func Square[R any](q ScalarQuantity, factory func(float64) R) R {
	checkFactory(factory == nil)
	checkScalars(q)
	return factory(float64(q.Magnitude().Square()))
}

// SquareRoot returns factory(√q). Negative magnitudes yield NaN.
func SquareRoot[R any](q ScalarQuantity, factory func(float64) R) R {
	checkFactory(factory == nil)
	checkScalars(q)
	return factory(float64(q.Magnitude().Sqrt()))
}

// Cube returns factory(q³).
func Cube[R any](q ScalarQuantity, factory func(float64) R) R {
	checkFactory(factory == nil)
	checkScalars(q)
	return factory(float64(q.Magnitude().Cube()))
}

// CubeRoot returns factory(∛q).
func CubeRoot[R any](q ScalarQuantity, factory func(float64) R) R {
	checkFactory(factory == nil)
	checkScalars(q)
	return factory(float64(q.Magnitude().CubeRoot()))
}

// Pow returns factory(q^exponent).
func Pow[R any](q ScalarQuantity, exponent float64, factory func(float64) R) R {
	checkFactory(factory == nil)
	checkScalars(q)
	return factory(gomath.Pow(float64(q.Magnitude()), exponent))
}

// Retype hands the magnitude of q to factory unchanged. It is the only
// way to give an Unhandled value a named kind.
func Retype[R any](q ScalarQuantity, factory func(float64) R) R {
	checkFactory(factory == nil)
	checkScalars(q)
	return factory(float64(q.Magnitude()))
}

// Dot returns factory(a·b).
func Dot[R any](a, b VectorQuantity, factory func(float64) R) R {
	checkFactory(factory == nil)
	checkVectors(a, b)
	return factory(math.Dot(a.Components(), b.Components()))
}

// Cross returns factory(a×b).
func Cross[R any](a, b VectorQuantity, factory func(math.Vector3) R) R {
	checkFactory(factory == nil)
	checkVectors(a, b)
	return factory(math.Cross(a.Components(), b.Components()))
}

// ScaleVector returns factory(s * v).
func ScaleVector[R any](s ScalarQuantity, v VectorQuantity, factory func(math.Vector3) R) R {
	checkFactory(factory == nil)
	checkVectors(v)
	checkScalars(s)
	return factory(v.Components().Scale(float64(s.Magnitude())))
}

// DivideVector returns factory(v / s).
func DivideVector[R any](v VectorQuantity, s ScalarQuantity, factory func(math.Vector3) R) R {
	checkFactory(factory == nil)
	checkVectors(v)
	checkScalars(s)
	return factory(v.Components().Divide(float64(s.Magnitude())))
}

func checkFactory(missing bool) {
	if missing {
		panic(nilArgument("factory"))
	}
}

func checkScalars(operands ...ScalarQuantity) {
	for _, q := range operands {
		if q == nil {
			panic(nilArgument("operand"))
		}
	}
}

func checkVectors(operands ...VectorQuantity) {
	for _, v := range operands {
		if v == nil {
			panic(nilArgument("operand"))
		}
	}
}
