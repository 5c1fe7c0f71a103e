package main

import (
	"github.com/Faultbox/measures/internal/config"
	"github.com/Faultbox/measures/internal/motion"
	"github.com/Faultbox/measures/pkg/kind"
	"github.com/Faultbox/measures/pkg/math"
	"github.com/Faultbox/measures/pkg/quantity"
	"github.com/Faultbox/measures/pkg/unit"
)

// bodyOf builds the initial body of a scenario, turned to its heading.
func bodyOf(sc config.ScenarioConfig) motion.Body {
	b := motion.Body{
		Mass:         quantity.New[kind.Mass](sc.MassKg, unit.Kilogram),
		Position:     quantity.New3[kind.Length](vector(sc.Position), unit.Metre),
		Velocity:     quantity.New3[kind.Speed](vector(sc.Velocity), unit.MetrePerSecond),
		Acceleration: quantity.New3[kind.Acceleration](vector(sc.Acceleration), unit.MetrePerSecondSquared),
	}
	if sc.HeadingDeg == 0 {
		return b
	}
	return b.Rotated(motion.Heading(quantity.New[kind.Angle](sc.HeadingDeg, unit.Degree)))
}

func vector(v [3]float64) math.Vector3 {
	return math.Vector3{X: v[0], Y: v[1], Z: v[2]}
}
