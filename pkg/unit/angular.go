package unit

import "math"

// Units of plane angle.
var (
	Radian      = Must(New[Angle]("radian", "rad", 1))
	Milliradian = Must(Radian.WithPrefix(Milli))
	Degree      = Must(Radian.ScaledBy("degree", "°", math.Pi/180))
	Arcminute   = Must(Degree.ScaledBy("arcminute", "'", 1.0/60))
	Arcsecond   = Must(Arcminute.ScaledBy("arcsecond", "\"", 1.0/60))
	Gradian     = Must(Radian.ScaledBy("gradian", "grad", math.Pi/200))
	Turn        = Must(Radian.ScaledBy("turn", "tr", 2*math.Pi))
)

// Units of angular velocity.
var (
	RadianPerSecond     = Must(Divide[AngularVelocity]("radian per second", "rad / s", Radian, Second))
	DegreePerSecond     = Must(Divide[AngularVelocity]("degree per second", "° / s", Degree, Second))
	RevolutionPerMinute = Must(Divide[AngularVelocity]("revolution per minute", "rpm", Turn, Minute))
)
