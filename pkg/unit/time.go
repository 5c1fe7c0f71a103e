package unit

// Units of time.
var (
	Second      = Must(New[Time]("second", "s", 1))
	Femtosecond = Must(Second.WithPrefix(Femto))
	Picosecond  = Must(Second.WithPrefix(Pico))
	Nanosecond  = Must(Second.WithPrefix(Nano))
	Microsecond = Must(Second.WithPrefix(Micro))
	Millisecond = Must(Second.WithPrefix(Milli))
	Minute      = Must(Second.ScaledBy("minute", "min", 60))
	Hour        = Must(Minute.ScaledBy("hour", "h", 60))
	Day         = Must(Hour.ScaledBy("day", "d", 24))
	Week        = Must(Day.ScaledBy("week", "wk", 7))
	CommonYear  = Must(Day.ScaledBy("common year", "a", 365))
	JulianYear  = Must(Day.ScaledBy("julian year", "a", 365.25))
)

// Units of squared time.
var (
	SquareSecond = Must(Multiply[TimeSquared]("square second", "s^2", Second, Second))
)

// Units of frequency.
var (
	PerSecond = Must(New[Frequency]("per second", "s^-1", 1))
	PerMinute = Must(Divide[Frequency]("per minute", "min^-1", One, Minute))
	PerHour   = Must(Divide[Frequency]("per hour", "h^-1", One, Hour))
	Hertz     = Must(New[Frequency]("hertz", "Hz", 1))
	Kilohertz = Must(Hertz.WithPrefix(Kilo))
	Megahertz = Must(Hertz.WithPrefix(Mega))
	Gigahertz = Must(Hertz.WithPrefix(Giga))
)
