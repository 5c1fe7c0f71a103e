package quantity

import "github.com/Faultbox/measures/pkg/kind"

// Declared relations between kinds. Each is a thin wrapper over a
// composition helper with the result kind fixed.

func InvertTime(t Time) Frequency {
	return Invert(t, FromSI[kind.Frequency])
}

func InvertFrequency(f Frequency) Time {
	return Invert(f, FromSI[kind.Time])
}

func SquareTime(t Time) TimeSquared {
	return Square(t, FromSI[kind.TimeSquared])
}

func SquareRootTimeSquared(t TimeSquared) Time {
	return SquareRoot(t, FromSI[kind.Time])
}

func SquareSpeed(v Speed) SpeedSquared {
	return Square(v, FromSI[kind.SpeedSquared])
}

func SquareRootSpeedSquared(v SpeedSquared) Speed {
	return SquareRoot(v, FromSI[kind.Speed])
}

func SpeedFromLengthTime(l Length, t Time) Speed {
	return Divide(l, t, FromSI[kind.Speed])
}

func AccelerationFromSpeedTime(v Speed, t Time) Acceleration {
	return Divide(v, t, FromSI[kind.Acceleration])
}

func SpeedFromAccelerationTime(a Acceleration, t Time) Speed {
	return Multiply(a, t, FromSI[kind.Speed])
}

func LengthFromSpeedTime(v Speed, t Time) Length {
	return Multiply(v, t, FromSI[kind.Length])
}

func ForceFromMassAcceleration(m Mass, a Acceleration) Force {
	return Multiply(m, a, FromSI[kind.Force])
}

func MomentumFromMassSpeed(m Mass, v Speed) Momentum {
	return Multiply(m, v, FromSI[kind.Momentum])
}

func EnergyFromForceLength(f Force, l Length) Energy {
	return Multiply(f, l, FromSI[kind.Energy])
}

func PowerFromEnergyTime(e Energy, t Time) Power {
	return Divide(e, t, FromSI[kind.Power])
}

func PowerFromForceSpeed(f Force, v Speed) Power {
	return Multiply(f, v, FromSI[kind.Power])
}

// KineticEnergyFromMassSpeed returns ½mv².
func KineticEnergyFromMassSpeed(m Mass, v Speed) KineticEnergy {
	return Multiply(m, SquareSpeed(v), FromSI[kind.KineticEnergy]).Divide(2)
}

func AngularSpeedFromAngleTime(a Angle, t Time) AngularSpeed {
	return Divide(a, t, FromSI[kind.AngularSpeed])
}

func Velocity3FromDisplacementTime(d Displacement3, t Time) Velocity3 {
	return DivideVector(d, t, FromComponents[kind.Speed])
}

func Acceleration3FromVelocityTime(v Velocity3, t Time) Acceleration3 {
	return DivideVector(v, t, FromComponents[kind.Acceleration])
}

func Force3FromMassAcceleration3(m Mass, a Acceleration3) Force3 {
	return ScaleVector(m, a, FromComponents[kind.Force])
}

func Momentum3FromMassVelocity3(m Mass, v Velocity3) Momentum3 {
	return ScaleVector(m, v, FromComponents[kind.Momentum])
}

func Displacement3FromVelocityTime(v Velocity3, t Time) Displacement3 {
	return ScaleVector(t, v, FromComponents[kind.Length])
}

func Velocity3FromAccelerationTime(a Acceleration3, t Time) Velocity3 {
	return ScaleVector(t, a, FromComponents[kind.Speed])
}

// WorkFromForceDisplacement returns F·d.
func WorkFromForceDisplacement(f Force3, d Displacement3) Work {
	return Dot(f, d, FromSI[kind.Work])
}

// PowerFromForceVelocity returns F·v.
func PowerFromForceVelocity(f Force3, v Velocity3) Power {
	return Dot(f, v, FromSI[kind.Power])
}

// TorqueFromDisplacementForce returns r×F.
func TorqueFromDisplacementForce(r Displacement3, f Force3) Torque3 {
	return Cross(r, f, FromComponents[kind.Torque])
}

// SpeedSquaredOf returns v·v without taking the square root.
func SpeedSquaredOf(v Velocity3) SpeedSquared {
	return Dot(v, v, FromSI[kind.SpeedSquared])
}
