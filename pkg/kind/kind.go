// Package kind declares the phantom kinds that tell quantities apart.
//
// A kind is a struct whose single field names its dimension. Two kinds may
// share a dimension (Energy and Torque both use unit.Energy) and then
// share units, but they remain distinct types.
package kind

import "github.com/Faultbox/measures/pkg/unit"

// Of is satisfied by kind tags of dimension D. The struct shape lets the
// compiler infer D from the kind alone, so quantity.FromSI[kind.Force]
// needs no second type argument.
type Of[D unit.Dimension] interface {
	~struct{ Dimension D }
	Symbol() string
}

// Scalar kinds.
type (
	Time            struct{ Dimension unit.Time }
	TimeSquared     struct{ Dimension unit.TimeSquared }
	Frequency       struct{ Dimension unit.Frequency }
	Length          struct{ Dimension unit.Length }
	Distance        struct{ Dimension unit.Length }
	Mass            struct{ Dimension unit.Mass }
	Speed           struct{ Dimension unit.Velocity }
	SpeedSquared    struct{ Dimension unit.VelocitySquared }
	Acceleration    struct{ Dimension unit.Acceleration }
	Force           struct{ Dimension unit.Force }
	Energy          struct{ Dimension unit.Energy }
	KineticEnergy   struct{ Dimension unit.Energy }
	PotentialEnergy struct{ Dimension unit.Energy }
	Work            struct{ Dimension unit.Energy }
	Torque          struct{ Dimension unit.Energy }
	Power           struct{ Dimension unit.Power }
	Momentum        struct{ Dimension unit.Momentum }
	Angle           struct{ Dimension unit.Angle }
	AngularSpeed    struct{ Dimension unit.AngularVelocity }

	// Unhandled is the kind of results no declared relation covers.
	Unhandled struct{ Dimension unit.Unhandled }
)

func (Time) Symbol() string            { return "s" }
func (TimeSquared) Symbol() string     { return "s^2" }
func (Frequency) Symbol() string       { return "Hz" }
func (Length) Symbol() string          { return "m" }
func (Distance) Symbol() string        { return "m" }
func (Mass) Symbol() string            { return "kg" }
func (Speed) Symbol() string           { return "m / s" }
func (SpeedSquared) Symbol() string    { return "m^2 / s^2" }
func (Acceleration) Symbol() string    { return "m / s^2" }
func (Force) Symbol() string           { return "N" }
func (Energy) Symbol() string          { return "J" }
func (KineticEnergy) Symbol() string   { return "J" }
func (PotentialEnergy) Symbol() string { return "J" }
func (Work) Symbol() string            { return "J" }
func (Torque) Symbol() string          { return "N * m" }
func (Power) Symbol() string           { return "W" }
func (Momentum) Symbol() string        { return "kg * m / s" }
func (Angle) Symbol() string           { return "rad" }
func (AngularSpeed) Symbol() string    { return "rad / s" }
func (Unhandled) Symbol() string       { return "" }

// SymbolOf returns the SI symbol of kind K.
func SymbolOf[K Of[D], D unit.Dimension]() string {
	var k K
	return k.Symbol()
}
