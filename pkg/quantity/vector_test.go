package quantity

import (
	gomath "math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Faultbox/measures/pkg/kind"
	"github.com/Faultbox/measures/pkg/math"
	"github.com/Faultbox/measures/pkg/unit"
)

var (
	ex = FromComponents[kind.Length](math.Vector3{X: 1})
	ey = FromComponents[kind.Length](math.Vector3{Y: 1})
	ez = FromComponents[kind.Length](math.Vector3{Z: 1})
)

func TestVelocityMagnitude(t *testing.T) {
	v := New3[kind.Speed](math.Vector3{X: 1, Y: 2, Z: 3}, unit.MetrePerSecond)

	var speed Speed = v.Magnitude()
	assert.Equal(t, math.Scalar(gomath.Sqrt(14)), speed.Magnitude())
}

func TestNew3ConvertsComponents(t *testing.T) {
	v := New3[kind.Length](math.Vector3{X: 1, Y: -2, Z: 0.5}, unit.Kilometre)

	assert.Equal(t, math.Vector3{X: 1000, Y: -2000, Z: 500}, v.Components())
	assert.Equal(t, math.Vector3{X: 1, Y: -2, Z: 0.5}, v.InUnit(unit.Kilometre))
	assert.Equal(t, FromSI[kind.Length](-2000), v.Y())
	assert.Equal(t, v, FromScalars(v.X(), v.Y(), v.Z()))
}

func TestBasisProducts(t *testing.T) {
	assert.Equal(t, ez.Components(), ex.Cross(ey).Components())
	assert.Equal(t, NewUnhandled(1), ex.Dot(ex))
	assert.Equal(t, NewUnhandled(0), ex.Dot(ey))
	assert.Equal(t, ez, ex.CrossVector(math.Vector3{Y: 1}))
	assert.Equal(t, OneMetre, ex.DotVector(math.Vector3{X: 1}))
}

func TestSquaredMagnitudeConsistency(t *testing.T) {
	vectors := []math.Vector3{{X: 1, Y: 2, Z: 3}, {X: -4, Y: 0.5, Z: 8}, {X: 1e-3, Y: 2e3, Z: -7}}
	for _, c := range vectors {
		v := FromComponents[kind.Force](c)
		m := float64(v.Magnitude().Magnitude())
		assert.InDelta(t, m*m, float64(v.SquaredMagnitude().Magnitude()), 1e-9*m*m)
	}
}

func TestNormalize(t *testing.T) {
	v := New3[kind.Speed](math.Vector3{X: 3, Y: -4, Z: 12}, unit.KilometrePerHour)
	assert.InDelta(t, 1, float64(v.Normalize().Magnitude().Magnitude()), 1e-12)

	zero := FromComponents[kind.Speed](math.Zero3)
	assert.True(t, zero.IsZero())
	assert.True(t, zero.Normalize().IsNaN())
}

func TestTransformIgnoresTranslation(t *testing.T) {
	v := FromComponents[kind.Acceleration](math.Vector3{X: 1})
	m := math.Translate(100, 200, 300).Mul(math.RotateZ(gomath.Pi / 2))

	got := v.Transform(m).Components()
	assert.InDelta(t, 0, got.X, 1e-12)
	assert.InDelta(t, 1, got.Y, 1e-12)
	assert.InDelta(t, 0, got.Z, 1e-12)
}

func TestVectorArithmetic(t *testing.T) {
	a := FromComponents[kind.Force](math.Vector3{X: 1, Y: 2, Z: 3})
	b := FromComponents[kind.Force](math.Vector3{X: 4, Y: 5, Z: 6})

	assert.Equal(t, FromComponents[kind.Force](math.Vector3{X: 5, Y: 7, Z: 9}), a.Add(b))
	assert.Equal(t, a, a.Add(b).Subtract(b))
	assert.Equal(t, a, a.Plus())
	assert.Equal(t, FromComponents[kind.Force](math.Vector3{X: -1, Y: -2, Z: -3}), a.Negate())
	assert.Equal(t, FromComponents[kind.Force](math.Vector3{X: 2, Y: 4, Z: 6}), a.Multiply(2))
	assert.Equal(t, a.Multiply(2), a.MultiplyScalar(2))
	assert.Equal(t, FromComponents[kind.Force](math.Vector3{X: 2, Y: 2.5, Z: 3}), b.Divide(2))
	assert.Equal(t, b.Divide(2), b.DivideScalar(2))
	assert.Equal(t, FromComponents[kind.Force](math.Vector3{X: 0, Y: 1, Z: 0}), b.Remainder(2))
}

func TestVectorTimesQuantityIsUnhandled(t *testing.T) {
	a := FromComponents[kind.Force](math.Vector3{X: 1, Y: 2, Z: 3})

	assert.Equal(t, NewUnhandled3(math.Vector3{X: 2, Y: 4, Z: 6}), a.MultiplyQuantity(FromSI[kind.Time](2)))
	assert.Equal(t, NewUnhandled3(math.Vector3{X: 0.5, Y: 1, Z: 1.5}), a.DivideQuantity(FromSI[kind.Time](2)))
	assert.Equal(t, NewUnhandled(14), a.Dot(a))

	assert.PanicsWithError(t, "other: nil argument", func() {
		a.Dot(nil)
	})
	assert.PanicsWithError(t, "other: nil argument", func() {
		a.Cross(nil)
	})
}

func TestVectorPredicates(t *testing.T) {
	v := FromComponents[kind.Speed](math.Vector3{X: gomath.Inf(1)})
	assert.True(t, v.IsInfinite())
	assert.False(t, v.IsFinite())
	assert.False(t, v.IsNaN())
}

func TestVectorString(t *testing.T) {
	v := New3[kind.Speed](math.Vector3{X: 1, Y: 2, Z: 3}, unit.MetrePerSecond)
	assert.Equal(t, "(1, 2, 3) [m / s]", v.String())

	torque := FromComponents[kind.Torque](math.Vector3{Z: 2})
	assert.Equal(t, "(0, 0, 2) [N * m]", torque.String())

	assert.Equal(t, "(1, 0, 0)", NewUnhandled3(math.Vector3{X: 1}).String())
}

func TestAs3(t *testing.T) {
	torque := FromComponents[kind.Torque](math.Vector3{X: 1, Y: 2})
	energy := As3[kind.Energy](torque)
	assert.Equal(t, torque.Components(), energy.Components())
}
