// Package motion steps a body through time under constant acceleration
// using the typed quantities of pkg/quantity.
package motion

import (
	"errors"
	"fmt"
	"time"

	"github.com/Faultbox/measures/pkg/kind"
	"github.com/Faultbox/measures/pkg/math"
	"github.com/Faultbox/measures/pkg/quantity"
	"github.com/Faultbox/measures/pkg/unit"
)

// Sentinel errors
var (
	ErrInvalidStep     = errors.New("step must be positive and finite")
	ErrInvalidDuration = errors.New("duration must be positive and finite")
	ErrInvalidMass     = errors.New("mass must be positive and finite")
)

// RestThreshold is the speed below which a body is considered stopped.
var RestThreshold = quantity.New[kind.Speed](1e-9, unit.MetrePerSecond)

// Body is the state of a point mass.
type Body struct {
	Mass         quantity.Mass
	Position     quantity.Displacement3
	Velocity     quantity.Velocity3
	Acceleration quantity.Acceleration3
}

// Force returns the net force m·a acting on the body.
func (b Body) Force() quantity.Force3 {
	return quantity.Force3FromMassAcceleration3(b.Mass, b.Acceleration)
}

// KineticEnergy returns ½mv².
func (b Body) KineticEnergy() quantity.KineticEnergy {
	return quantity.KineticEnergyFromMassSpeed(b.Mass, b.Velocity.Magnitude())
}

// Momentum returns m·v.
func (b Body) Momentum() quantity.Momentum3 {
	return quantity.Momentum3FromMassVelocity3(b.Mass, b.Velocity)
}

// Rotated returns the body with velocity and acceleration turned by q.
// Position is left in place.
func (b Body) Rotated(q math.Quat) Body {
	m := q.ToMat4()
	b.Velocity = b.Velocity.Transform(m)
	b.Acceleration = b.Acceleration.Transform(m)
	return b
}

// Duration converts d to a time quantity.
func Duration(d time.Duration) quantity.Time {
	return quantity.New[kind.Time](float64(d.Nanoseconds()), unit.Nanosecond)
}

// Heading returns the rotation by angle about +Z.
func Heading(angle quantity.Angle) math.Quat {
	return math.QuatFromAxisAngle(math.Vector3{Z: 1}, float64(angle.Magnitude()))
}

// Update advances b by dt and returns the displacement covered. Constant
// acceleration makes the update exact: x += v·dt + ½a·dt², v += a·dt.
func Update(b *Body, dt quantity.Time) quantity.Displacement3 {
	if b == nil {
		return quantity.Displacement3{}
	}

	drift := quantity.Displacement3FromVelocityTime(b.Velocity, dt)
	dv := quantity.Velocity3FromAccelerationTime(b.Acceleration, dt)
	// ½a·dt² is ½·dv·dt
	curve := quantity.Displacement3FromVelocityTime(dv, dt).Divide(2)

	delta := drift.Add(curve)
	b.Position = b.Position.Add(delta)
	b.Velocity = b.Velocity.Add(dv)
	return delta
}

// Validate checks that b can be integrated.
func (b Body) Validate() error {
	if !b.Mass.IsPositive() || !b.Mass.IsFinite() {
		return fmt.Errorf("%w: %v", ErrInvalidMass, b.Mass)
	}
	return nil
}
