// Package report renders simulation samples as fixed-precision text.
package report

import (
	"errors"
	"fmt"
	"io"

	"github.com/shopspring/decimal"

	"github.com/Faultbox/measures/internal/motion"
	"github.com/Faultbox/measures/pkg/math"
)

// ErrInvalidPrecision is returned for negative precisions.
var ErrInvalidPrecision = errors.New("precision must not be negative")

// Fixed formats v with exactly precision decimal places. NaN and the
// infinities are spelled out.
func Fixed(v math.Scalar, precision int32) string {
	if !v.IsFinite() {
		return fmt.Sprint(float64(v))
	}
	return decimal.NewFromFloat(float64(v)).StringFixed(precision)
}

// FixedVector formats v as (x, y, z) with fixed precision.
func FixedVector(v math.Vector3, precision int32) string {
	return fmt.Sprintf("(%s, %s, %s)",
		Fixed(math.Scalar(v.X), precision),
		Fixed(math.Scalar(v.Y), precision),
		Fixed(math.Scalar(v.Z), precision),
	)
}

// Writer prints samples and summaries in one unit system.
type Writer struct {
	out       io.Writer
	units     Units
	precision int32
}

// NewWriter returns a writer for the given unit system.
func NewWriter(out io.Writer, system string, precision int32) (*Writer, error) {
	units, err := UnitsFor(system)
	if err != nil {
		return nil, err
	}
	if precision < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidPrecision, precision)
	}
	return &Writer{out: out, units: units, precision: precision}, nil
}

// Units returns the writer's display units.
func (w *Writer) Units() Units {
	return w.units
}

// Header prints the column titles.
func (w *Writer) Header() error {
	u := w.units
	_, err := fmt.Fprintf(w.out, "%6s  %12s  %-40s  %12s  %14s  %14s\n",
		"step",
		"t ["+u.Time.Symbol()+"]",
		"position ["+u.Length.Symbol()+"]",
		"speed ["+u.Speed.Symbol()+"]",
		"KE ["+u.Energy.Symbol()+"]",
		"P ["+u.Power.Symbol()+"]",
	)
	return err
}

// Sample prints one row.
func (w *Writer) Sample(s motion.Sample) error {
	u, p := w.units, w.precision
	_, err := fmt.Fprintf(w.out, "%6d  %12s  %-40s  %12s  %14s  %14s\n",
		s.Step,
		Fixed(s.Elapsed.InUnit(u.Time), p),
		FixedVector(s.Position.InUnit(u.Length), p),
		Fixed(s.Speed.InUnit(u.Speed), p),
		Fixed(s.KineticEnergy.InUnit(u.Energy), p),
		Fixed(s.Power.InUnit(u.Power), p),
	)
	return err
}

// Summary prints the totals of a run.
func (w *Writer) Summary(name string, sum motion.Summary) error {
	u, p := w.units, w.precision
	final := sum.Final

	lines := []struct{ label, value, symbol string }{
		{"Steps", fmt.Sprint(sum.Steps), ""},
		{"Elapsed", Fixed(sum.Elapsed.InUnit(u.Time), p), u.Time.Symbol()},
		{"Mass", Fixed(final.Mass.InUnit(u.Mass), p), u.Mass.Symbol()},
		{"Displacement", FixedVector(sum.Displacement.InUnit(u.Length), p), u.Length.Symbol()},
		{"Path length", Fixed(sum.PathLength.InUnit(u.Length), p), u.Length.Symbol()},
		{"Final velocity", FixedVector(final.Velocity.InUnit(u.Speed), p), u.Speed.Symbol()},
		{"Max speed", Fixed(sum.MaxSpeed.InUnit(u.Speed), p), u.Speed.Symbol()},
		{"Kinetic energy", Fixed(final.KineticEnergy().InUnit(u.Energy), p), u.Energy.Symbol()},
		{"Momentum", FixedVector(final.Momentum().InUnit(u.Momentum), p), u.Momentum.Symbol()},
		{"Work", Fixed(sum.Work.InUnit(u.Energy), p), u.Energy.Symbol()},
	}

	if _, err := fmt.Fprintf(w.out, "Scenario: %s\n", name); err != nil {
		return err
	}
	for _, l := range lines {
		line := fmt.Sprintf("  %-15s %s", l.label+":", l.value)
		if l.symbol != "" {
			line += " " + l.symbol
		}
		if _, err := fmt.Fprintln(w.out, line); err != nil {
			return err
		}
	}
	if sum.AtRest {
		_, err := fmt.Fprintln(w.out, "  (came to rest)")
		return err
	}
	return nil
}
