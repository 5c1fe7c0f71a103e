package unit

// Dimension tags. Each is an empty struct used only as a type argument.
type (
	Time            struct{}
	TimeSquared     struct{}
	Frequency       struct{}
	Length          struct{}
	Mass            struct{}
	Velocity        struct{}
	VelocitySquared struct{}
	Acceleration    struct{}
	Force           struct{}
	Energy          struct{}
	Power           struct{}
	Momentum        struct{}
	Angle           struct{}
	AngularVelocity struct{}

	// Unhandled is the dimension of quantities produced by undeclared
	// combinations. Its only unit is One.
	Unhandled struct{}
)

func (Time) DimensionName() string            { return "time" }
func (TimeSquared) DimensionName() string     { return "time squared" }
func (Frequency) DimensionName() string       { return "frequency" }
func (Length) DimensionName() string          { return "length" }
func (Mass) DimensionName() string            { return "mass" }
func (Velocity) DimensionName() string        { return "velocity" }
func (VelocitySquared) DimensionName() string { return "velocity squared" }
func (Acceleration) DimensionName() string    { return "acceleration" }
func (Force) DimensionName() string           { return "force" }
func (Energy) DimensionName() string          { return "energy" }
func (Power) DimensionName() string           { return "power" }
func (Momentum) DimensionName() string        { return "momentum" }
func (Angle) DimensionName() string           { return "angle" }
func (AngularVelocity) DimensionName() string { return "angular velocity" }
func (Unhandled) DimensionName() string       { return "unhandled" }

// One is the SI unit of Unhandled. It carries no symbol.
var One = Must(New[Unhandled]("one", "", 1))
