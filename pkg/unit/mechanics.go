package unit

// Units of force.
var (
	Newton        = Must(Multiply[Force]("newton", "N", Kilogram, MetrePerSecondSquared))
	Kilonewton    = Must(Newton.WithPrefix(Kilo))
	Meganewton    = Must(Newton.WithPrefix(Mega))
	PoundForce    = Must(Multiply[Force]("pound-force", "lbf", Pound, StandardGravity))
	Dyne          = Must(Newton.ScaledBy("dyne", "dyn", 1e-5))
	KilogramForce = Must(Multiply[Force]("kilogram-force", "kgf", Kilogram, StandardGravity))
)

// Units of energy. Torque shares these units, so NewtonMetre is an alias
// of Joule.
var (
	Joule          = Must(New[Energy]("joule", "J", 1))
	Kilojoule      = Must(Joule.WithPrefix(Kilo))
	Megajoule      = Must(Joule.WithPrefix(Mega))
	Gigajoule      = Must(Joule.WithPrefix(Giga))
	NewtonMetre    = Must(Multiply[Energy]("newton-metre", "N * m", Newton, Metre))
	KilowattHour   = Must(Joule.ScaledBy("kilowatt-hour", "kWh", 3.6e6))
	Calorie        = Must(Joule.ScaledBy("calorie", "cal", 4.184))
	Kilocalorie    = Must(Calorie.WithPrefix(Kilo))
	Electronvolt   = Must(Joule.ScaledBy("electronvolt", "eV", 1.602176634e-19))
	FootPoundForce = Must(Multiply[Energy]("foot-pound force", "ft * lbf", Foot, PoundForce))
)

// Units of power.
var (
	Watt       = Must(Divide[Power]("watt", "W", Joule, Second))
	Kilowatt   = Must(Watt.WithPrefix(Kilo))
	Megawatt   = Must(Watt.WithPrefix(Mega))
	Gigawatt   = Must(Watt.WithPrefix(Giga))
	Horsepower = Must(Watt.ScaledBy("horsepower", "hp", 745.69987158227022))
)

// Units of momentum.
var (
	KilogramMetrePerSecond = Must(Multiply[Momentum]("kilogram metre per second", "kg * m / s", Kilogram, MetrePerSecond))
	NewtonSecond           = Must(Multiply[Momentum]("newton-second", "N * s", Newton, Second))
)
