// Package unit defines physical dimensions and the unit descriptors used
// to move magnitudes in and out of SI.
//
// A unit is a name, a symbol and a factor relative to the SI unit of its
// dimension: si = value * factor. Units are plain values and every table
// in this package is built once at initialisation and never written.
package unit

import (
	"fmt"
	"math"
)

// Dimension is implemented by the empty tag types that identify what a
// unit measures. The tag only exists at the type level.
type Dimension interface {
	DimensionName() string
}

// Of describes a unit of dimension D.
type Of[D Dimension] struct {
	name   string
	symbol string
	factor float64
}

// New defines a unit of dimension D. The factor converts a magnitude in
// the new unit to SI and must be positive and finite.
func New[D Dimension](name, symbol string, factor float64) (Of[D], error) {
	if err := validateFactor(name, factor); err != nil {
		return Of[D]{}, err
	}
	return Of[D]{name: name, symbol: symbol, factor: factor}, nil
}

// Must panics if err is non-nil. It is meant for package-level tables.
func Must[D Dimension](u Of[D], err error) Of[D] {
	if err != nil {
		panic(err)
	}
	return u
}

func validateFactor(name string, factor float64) error {
	if math.IsNaN(factor) || math.IsInf(factor, 0) || factor <= 0 {
		return &ConfigurationError{Unit: name, Factor: factor, Err: ErrInvalidFactor}
	}
	return nil
}

// Name returns the unit name, e.g. "kilometre".
func (u Of[D]) Name() string { return u.name }

// Symbol returns the unit symbol, e.g. "km".
func (u Of[D]) Symbol() string { return u.symbol }

// Factor returns the multiplier from this unit to SI.
func (u Of[D]) Factor() float64 { return u.factor }

// IsSI reports whether the unit is the SI unit of its dimension.
func (u Of[D]) IsSI() bool { return u.factor == 1 }

// ToSI converts a magnitude expressed in u to SI.
func (u Of[D]) ToSI(v float64) float64 {
	return v * u.factor
}

// FromSI converts an SI magnitude to u.
func (u Of[D]) FromSI(si float64) float64 {
	return si / u.factor
}

// WithPrefix returns u scaled by a metric or binary prefix. The prefix
// name and symbol are prepended to the unit's.
func (u Of[D]) WithPrefix(p Prefix) (Of[D], error) {
	return New[D](p.Name()+u.name, p.Symbol()+u.symbol, u.factor*p.Factor())
}

// ScaledBy returns a new unit equal to scale times u.
func (u Of[D]) ScaledBy(name, symbol string, scale float64) (Of[D], error) {
	if err := validateFactor(name, scale); err != nil {
		return Of[D]{}, err
	}
	return New[D](name, symbol, u.factor*scale)
}

// Compare orders units by size.
func (u Of[D]) Compare(other Of[D]) int {
	switch {
	case u.factor < other.factor:
		return -1
	case u.factor > other.factor:
		return 1
	default:
		return 0
	}
}

func (u Of[D]) String() string {
	if u.symbol == "" {
		return u.name
	}
	return fmt.Sprintf("%s [%s]", u.name, u.symbol)
}

// Multiply derives a unit of dimension D as the product of a and b, e.g.
// newton-metre from newton and metre.
func Multiply[D Dimension, A Dimension, B Dimension](name, symbol string, a Of[A], b Of[B]) (Of[D], error) {
	return New[D](name, symbol, a.factor*b.factor)
}

// Divide derives a unit of dimension D as the quotient of a and b, e.g.
// kilometre per hour from kilometre and hour.
func Divide[D Dimension, A Dimension, B Dimension](name, symbol string, a Of[A], b Of[B]) (Of[D], error) {
	return New[D](name, symbol, a.factor/b.factor)
}
