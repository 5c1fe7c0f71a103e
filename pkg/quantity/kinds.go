package quantity

import (
	"github.com/Faultbox/measures/pkg/kind"
	"github.com/Faultbox/measures/pkg/unit"
)

// Scalar quantities.
type (
	Time            = Scalar[kind.Time, unit.Time]
	TimeSquared     = Scalar[kind.TimeSquared, unit.TimeSquared]
	Frequency       = Scalar[kind.Frequency, unit.Frequency]
	Length          = Scalar[kind.Length, unit.Length]
	Distance        = Scalar[kind.Distance, unit.Length]
	Mass            = Scalar[kind.Mass, unit.Mass]
	Speed           = Scalar[kind.Speed, unit.Velocity]
	SpeedSquared    = Scalar[kind.SpeedSquared, unit.VelocitySquared]
	Acceleration    = Scalar[kind.Acceleration, unit.Acceleration]
	Force           = Scalar[kind.Force, unit.Force]
	Energy          = Scalar[kind.Energy, unit.Energy]
	KineticEnergy   = Scalar[kind.KineticEnergy, unit.Energy]
	PotentialEnergy = Scalar[kind.PotentialEnergy, unit.Energy]
	Work            = Scalar[kind.Work, unit.Energy]
	Torque          = Scalar[kind.Torque, unit.Energy]
	Power           = Scalar[kind.Power, unit.Power]
	Momentum        = Scalar[kind.Momentum, unit.Momentum]
	Angle           = Scalar[kind.Angle, unit.Angle]
	AngularSpeed    = Scalar[kind.AngularSpeed, unit.AngularVelocity]
)

// Vector quantities, named after what they describe. The type argument is
// the kind of their magnitude.
type (
	Displacement3    = Vector3[kind.Length, unit.Length]
	Velocity3        = Vector3[kind.Speed, unit.Velocity]
	Acceleration3    = Vector3[kind.Acceleration, unit.Acceleration]
	Force3           = Vector3[kind.Force, unit.Force]
	Torque3          = Vector3[kind.Torque, unit.Energy]
	Momentum3        = Vector3[kind.Momentum, unit.Momentum]
	AngularVelocity3 = Vector3[kind.AngularSpeed, unit.AngularVelocity]
)

// One-unit constants.
var (
	OneSecond      = New[kind.Time](1, unit.Second)
	OneMillisecond = New[kind.Time](1, unit.Millisecond)
	OneMinute      = New[kind.Time](1, unit.Minute)
	OneHour        = New[kind.Time](1, unit.Hour)
	OneDay         = New[kind.Time](1, unit.Day)
	OneWeek        = New[kind.Time](1, unit.Week)
	OneJulianYear  = New[kind.Time](1, unit.JulianYear)

	OneHertz = New[kind.Frequency](1, unit.Hertz)

	OneMetre     = New[kind.Length](1, unit.Metre)
	OneKilometre = New[kind.Length](1, unit.Kilometre)
	OneFoot      = New[kind.Length](1, unit.Foot)
	OneMile      = New[kind.Length](1, unit.Mile)

	OneKilogram = New[kind.Mass](1, unit.Kilogram)
	OneGram     = New[kind.Mass](1, unit.Gram)

	OneMetrePerSecond        = New[kind.Speed](1, unit.MetrePerSecond)
	OneKilometrePerHour      = New[kind.Speed](1, unit.KilometrePerHour)
	OneMetrePerSecondSquared = New[kind.Acceleration](1, unit.MetrePerSecondSquared)
	OneStandardGravity       = New[kind.Acceleration](1, unit.StandardGravity)

	OneNewton      = New[kind.Force](1, unit.Newton)
	OneJoule       = New[kind.Energy](1, unit.Joule)
	OneNewtonMetre = New[kind.Torque](1, unit.NewtonMetre)
	OneWatt        = New[kind.Power](1, unit.Watt)

	OneRadian          = New[kind.Angle](1, unit.Radian)
	OneDegree          = New[kind.Angle](1, unit.Degree)
	OneRadianPerSecond = New[kind.AngularSpeed](1, unit.RadianPerSecond)
)
