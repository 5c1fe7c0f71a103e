package report

import (
	"errors"
	"fmt"

	"github.com/Faultbox/measures/internal/config"
	"github.com/Faultbox/measures/pkg/unit"
)

// ErrUnknownSystem is returned for systems not listed in config.Systems.
var ErrUnknownSystem = errors.New("unknown unit system")

// PoundFootPerSecond is the imperial unit of momentum.
var PoundFootPerSecond = unit.Must(unit.Multiply[unit.Momentum]("pound foot per second", "lb * ft / s", unit.Pound, unit.FootPerSecond))

// Units selects the display unit for each reported quantity.
type Units struct {
	Time     unit.Of[unit.Time]
	Length   unit.Of[unit.Length]
	Mass     unit.Of[unit.Mass]
	Speed    unit.Of[unit.Velocity]
	Energy   unit.Of[unit.Energy]
	Power    unit.Of[unit.Power]
	Momentum unit.Of[unit.Momentum]
}

// UnitsFor returns the display units of a unit system.
func UnitsFor(system string) (Units, error) {
	switch system {
	case config.SystemSI:
		return Units{
			Time:     unit.Second,
			Length:   unit.Metre,
			Mass:     unit.Kilogram,
			Speed:    unit.MetrePerSecond,
			Energy:   unit.Joule,
			Power:    unit.Watt,
			Momentum: unit.KilogramMetrePerSecond,
		}, nil
	case config.SystemImperial:
		return Units{
			Time:     unit.Second,
			Length:   unit.Foot,
			Mass:     unit.Pound,
			Speed:    unit.FootPerSecond,
			Energy:   unit.FootPoundForce,
			Power:    unit.Horsepower,
			Momentum: PoundFootPerSecond,
		}, nil
	default:
		return Units{}, fmt.Errorf("%w: %q", ErrUnknownSystem, system)
	}
}
