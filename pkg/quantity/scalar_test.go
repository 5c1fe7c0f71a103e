package quantity

import (
	gomath "math"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/measures/pkg/kind"
	"github.com/Faultbox/measures/pkg/math"
	"github.com/Faultbox/measures/pkg/unit"
)

func TestMinuteInSeconds(t *testing.T) {
	minute := New[kind.Time](1, unit.Minute)
	assert.Equal(t, math.Scalar(60), minute.InUnit(unit.Second))
}

func TestOneHourInSeconds(t *testing.T) {
	assert.Equal(t, math.Scalar(3600), OneHour.InUnit(unit.Second))
	assert.Equal(t, math.Scalar(3600), OneHour.Magnitude())
}

func TestOneConstantsMatchTheirUnits(t *testing.T) {
	assert.Equal(t, math.Scalar(1), OneSecond.Magnitude())
	assert.Equal(t, math.Scalar(60), OneMinute.Magnitude())
	assert.Equal(t, math.Scalar(86400), OneDay.Magnitude())
	assert.Equal(t, math.Scalar(1), OneMile.InUnit(unit.Mile))
	assert.Equal(t, math.Scalar(1000), OneKilometre.Magnitude())
	assert.Equal(t, math.Scalar(9.80665), OneStandardGravity.Magnitude())
	assert.Equal(t, OneJoule.Magnitude(), OneNewtonMetre.Magnitude())
}

func TestRoundTripThroughUnits(t *testing.T) {
	lengths := []unit.Of[unit.Length]{unit.Metre, unit.Millimetre, unit.Kilometre, unit.Inch, unit.Foot, unit.Mile, unit.LightYear}
	for _, u := range lengths {
		for _, m := range []float64{0, 1, -2.5, 42.125, 1e6} {
			got := New[kind.Length](m, u).InUnit(u)
			assert.InDelta(t, m, float64(got), 1e-9*gomath.Max(1, gomath.Abs(m)), "%s: %v", u.Name(), m)
		}
	}

	times := []unit.Of[unit.Time]{unit.Second, unit.Nanosecond, unit.Hour, unit.Week, unit.JulianYear}
	for _, u := range times {
		got := New[kind.Time](7.5, u).InUnit(u)
		assert.InDelta(t, 7.5, float64(got), 1e-12, u.Name())
	}
}

func TestSIUnitIsIdentity(t *testing.T) {
	for _, m := range []float64{0, 1, -3.25, 1e-300, 6.02214076e23} {
		assert.Equal(t, math.Scalar(m), New[kind.Length](m, unit.Metre).Magnitude())
		assert.Equal(t, math.Scalar(m), New[kind.Torque](m, unit.NewtonMetre).Magnitude())
		assert.Equal(t, math.Scalar(m), FromSI[kind.Force](m).Magnitude())
	}
}

func TestAdditiveClosure(t *testing.T) {
	a := New[kind.Length](3.5, unit.Metre)
	b := New[kind.Length](20, unit.Centimetre)

	sum := a.Add(b)
	assert.Equal(t, a.Magnitude()+b.Magnitude(), sum.Magnitude())
	assert.InDelta(t, float64(a.Magnitude()), float64(sum.Subtract(b).Magnitude()), 1e-12)
	assert.Equal(t, a, a.Plus())
	assert.Equal(t, FromSI[kind.Length](-3.5), a.Negate())
}

func TestScalingClosure(t *testing.T) {
	a := New[kind.Mass](12, unit.Kilogram)

	for _, s := range []float64{2, -0.5, 3.75, 1e9} {
		assert.Equal(t, a.Magnitude()*math.Scalar(s), a.Multiply(s).Magnitude())
		assert.InDelta(t, 12, float64(a.Multiply(s).Divide(s).Magnitude()), 1e-12)
	}
	assert.Equal(t, a.Multiply(4), a.MultiplyScalar(4))
	assert.Equal(t, a.Divide(4), a.DivideScalar(4))
	assert.Equal(t, FromSI[kind.Mass](2), a.Remainder(5))
	assert.Equal(t, FromSI[kind.Mass](-2), a.Negate().Remainder(5))
}

func TestDivisionByZeroPropagates(t *testing.T) {
	q := OneMetre.Divide(0)
	assert.True(t, q.IsPositiveInfinity())

	nan := FromSI[kind.Length](0).Divide(0)
	assert.True(t, nan.IsNaN())
	assert.False(t, nan.IsFinite())
}

func TestMultiplyQuantityIsUnhandled(t *testing.T) {
	mass := New[kind.Mass](2, unit.Kilogram)
	length := New[kind.Length](3, unit.Metre)

	product := mass.MultiplyQuantity(length)
	assert.Equal(t, NewUnhandled(6), product)

	quotient := length.DivideQuantity(mass)
	assert.Equal(t, NewUnhandled(1.5), quotient)

	// Unhandled combined with Unhandled stays Unhandled.
	assert.Equal(t, NewUnhandled(9), product.MultiplyQuantity(quotient))
	assert.Equal(t, NewUnhandled(7.5), product.Add(quotient))
	assert.Equal(t, NewUnhandled(12), product.MultiplyQuantity(ScalarOf(2)))
}

func TestMultiplyQuantityNilPanics(t *testing.T) {
	assert.PanicsWithError(t, "other: nil argument", func() {
		OneMetre.MultiplyQuantity(nil)
	})
	assert.PanicsWithError(t, "other: nil argument", func() {
		OneMetre.DivideQuantity(nil)
	})
}

func TestAccelerationTimesDirection(t *testing.T) {
	a := New[kind.Acceleration](2, unit.MetrePerSecondSquared)
	got := a.MultiplyVector(math.Vector3{X: 1})

	assert.Equal(t, FromComponents[kind.Acceleration](math.Vector3{X: 2}), got)
}

func TestAssociatedQuantities(t *testing.T) {
	energy := New[kind.Energy](5, unit.Kilojoule)

	torque := As[kind.Torque](energy)
	assert.Equal(t, energy.Magnitude(), torque.Magnitude())
	assert.Equal(t, "5000 [N * m]", torque.String())

	kinetic := As[kind.KineticEnergy](energy)
	assert.Equal(t, energy, As[kind.Energy](kinetic))

	distance := As[kind.Distance](OneMile)
	assert.Equal(t, OneMile.Magnitude(), distance.Magnitude())
}

func TestOrdering(t *testing.T) {
	a := FromSI[kind.Time](1)
	b := FromSI[kind.Time](2)
	nan := FromSI[kind.Time](gomath.NaN())

	assert.True(t, a.Less(b))
	assert.True(t, a.LessOrEqual(b))
	assert.True(t, a.LessOrEqual(a))
	assert.True(t, b.Greater(a))
	assert.True(t, b.GreaterOrEqual(b))
	assert.Equal(t, -1, a.Compare(b))
	assert.Equal(t, 0, a.Compare(a))

	for _, other := range []Time{a, b, nan} {
		assert.False(t, nan.Less(other))
		assert.False(t, nan.LessOrEqual(other))
		assert.False(t, nan.Greater(other))
		assert.False(t, nan.GreaterOrEqual(other))
		assert.False(t, other.Less(nan))
	}

	times := []Time{b, nan, a}
	slices.SortFunc(times, Time.Compare)
	require.True(t, times[0].IsNaN())
	assert.Equal(t, []Time{a, b}, times[1:])
}

func TestPredicates(t *testing.T) {
	negZero := FromSI[kind.Speed](gomath.Copysign(0, -1))
	assert.True(t, negZero.IsZero())
	assert.True(t, negZero.IsNegative())
	assert.False(t, negZero.IsPositive())

	inf := FromSI[kind.Speed](gomath.Inf(-1))
	assert.True(t, inf.IsInfinite())
	assert.True(t, inf.IsNegativeInfinity())
	assert.False(t, inf.IsPositiveInfinity())
	assert.Equal(t, -1, inf.Sign())

	assert.Equal(t, 1, OneMetrePerSecond.Sign())
}

func TestRounding(t *testing.T) {
	q := FromSI[kind.Length](-2.5)

	assert.Equal(t, FromSI[kind.Length](2.5), q.Abs())
	assert.Equal(t, FromSI[kind.Length](-3), q.Floor())
	assert.Equal(t, FromSI[kind.Length](-2), q.Ceil())
	assert.Equal(t, FromSI[kind.Length](-2), q.Round())
	assert.Equal(t, FromSI[kind.Length](4), FromSI[kind.Length](3.5).Round())
}

func TestScalarString(t *testing.T) {
	tests := []struct {
		name string
		q    interface{ String() string }
		want string
	}{
		{"time", New[kind.Time](2, unit.Minute), "120 [s]"},
		{"acceleration", FromSI[kind.Acceleration](9.5), "9.5 [m / s^2]"},
		{"speed squared", FromSI[kind.SpeedSquared](4), "4 [m^2 / s^2]"},
		{"momentum", FromSI[kind.Momentum](-1), "-1 [kg * m / s]"},
		{"unhandled", NewUnhandled(0.25), "0.25"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.q.String())
		})
	}
}

func TestConcurrentReads(t *testing.T) {
	done := make(chan math.Scalar)
	for i := 0; i < 8; i++ {
		go func() {
			done <- New[kind.Time](1, unit.Hour).InUnit(unit.Minute)
		}()
	}
	for i := 0; i < 8; i++ {
		assert.Equal(t, math.Scalar(60), <-done)
	}
}
