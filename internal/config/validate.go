package config

import (
	"errors"
	"fmt"
	"math"
	"slices"
)

// Sentinel errors
var (
	ErrInvalidScenario = errors.New("invalid scenario")
	ErrInvalidOutput   = errors.New("invalid output settings")
)

// ValidationError reports a single rejected setting.
type ValidationError struct {
	Field  string
	Reason string
	Err    error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s: %v", e.Field, e.Reason, e.Err)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// MaxPrecision bounds Output.Precision.
const MaxPrecision = 12

// Validate checks that the configuration describes a runnable scenario.
// All problems are reported, joined with errors.Join.
func (c *Config) Validate() error {
	var errs []error
	scenario := func(field, reason string) {
		errs = append(errs, &ValidationError{Field: "scenario." + field, Reason: reason, Err: ErrInvalidScenario})
	}
	output := func(field, reason string) {
		errs = append(errs, &ValidationError{Field: "output." + field, Reason: reason, Err: ErrInvalidOutput})
	}

	s := c.Scenario
	if !(s.MassKg > 0) || math.IsInf(s.MassKg, 0) {
		scenario("mass_kg", "must be positive and finite")
	}
	if s.Step <= 0 {
		scenario("step", "must be positive")
	}
	if s.Duration < s.Step {
		scenario("duration", "must be at least one step")
	}
	if s.SampleEvery < 1 {
		scenario("sample_every", "must be at least 1")
	}
	vectors := []struct {
		name  string
		value [3]float64
	}{
		{"position", s.Position},
		{"velocity", s.Velocity},
		{"acceleration", s.Acceleration},
	}
	for _, v := range vectors {
		if !finite(v.value) {
			scenario(v.name, "components must be finite")
		}
	}
	if math.IsNaN(s.HeadingDeg) || math.IsInf(s.HeadingDeg, 0) {
		scenario("heading_deg", "must be finite")
	}

	if !slices.Contains(Systems, c.Output.System) {
		output("system", fmt.Sprintf("unknown system %q", c.Output.System))
	}
	if c.Output.Precision < 0 || c.Output.Precision > MaxPrecision {
		output("precision", fmt.Sprintf("must be between 0 and %d", MaxPrecision))
	}

	return errors.Join(errs...)
}

func finite(v [3]float64) bool {
	for _, c := range v {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return false
		}
	}
	return true
}
