package unit

// Units of velocity.
var (
	MetrePerSecond     = Must(Divide[Velocity]("metre per second", "m / s", Metre, Second))
	KilometrePerSecond = Must(Divide[Velocity]("kilometre per second", "km / s", Kilometre, Second))
	KilometrePerHour   = Must(Divide[Velocity]("kilometre per hour", "km / h", Kilometre, Hour))
	FootPerSecond      = Must(Divide[Velocity]("foot per second", "ft / s", Foot, Second))
	MilePerHour        = Must(Divide[Velocity]("mile per hour", "mph", Mile, Hour))
	Knot               = Must(MetrePerSecond.ScaledBy("knot", "kn", 1852.0/3600))
)

// Units of squared velocity.
var (
	SquareMetrePerSecondSquared   = Must(Multiply[VelocitySquared]("square metre per second squared", "m^2 / s^2", MetrePerSecond, MetrePerSecond))
	SquareKilometrePerHourSquared = Must(Multiply[VelocitySquared]("square kilometre per hour squared", "km^2 / h^2", KilometrePerHour, KilometrePerHour))
)

// Units of acceleration.
var (
	MetrePerSecondSquared     = Must(Divide[Acceleration]("metre per second squared", "m / s^2", MetrePerSecond, Second))
	FootPerSecondSquared      = Must(Divide[Acceleration]("foot per second squared", "ft / s^2", FootPerSecond, Second))
	KilometrePerHourPerSecond = Must(Divide[Acceleration]("kilometre per hour per second", "km / h / s", KilometrePerHour, Second))
	StandardGravity           = Must(MetrePerSecondSquared.ScaledBy("standard gravity", "g0", 9.80665))
)
