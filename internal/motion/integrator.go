package motion

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/Faultbox/measures/pkg/kind"
	"github.com/Faultbox/measures/pkg/quantity"
)

// Sample is a snapshot of the body after a step.
type Sample struct {
	Step          int
	Elapsed       quantity.Time
	Position      quantity.Displacement3
	Velocity      quantity.Velocity3
	Speed         quantity.Speed
	KineticEnergy quantity.KineticEnergy
	Momentum      quantity.Momentum3
	Power         quantity.Power // F·v
	Work          quantity.Work  // cumulative F·Δx
}

// Summary describes a finished run.
type Summary struct {
	Steps        int
	Elapsed      quantity.Time
	Displacement quantity.Displacement3
	PathLength   quantity.Distance
	MaxSpeed     quantity.Speed
	Work         quantity.Work
	Final        Body
	AtRest       bool
}

// Integrator runs fixed-step simulations.
type Integrator struct {
	step       quantity.Time
	every      int
	stopAtRest bool
	log        *zap.Logger
}

// Option configures an Integrator.
type Option func(*Integrator)

// WithSampleEvery reports every nth step. The final step is always
// reported.
func WithSampleEvery(n int) Option {
	return func(in *Integrator) {
		if n > 0 {
			in.every = n
		}
	}
}

// WithStopAtRest ends the run when the body comes to rest instead of
// letting the acceleration reverse it. Only a velocity that actually
// vanishes counts; a body turned aside keeps moving.
func WithStopAtRest() Option {
	return func(in *Integrator) {
		in.stopAtRest = true
	}
}

// NewIntegrator returns an integrator with the given step. log may be nil.
func NewIntegrator(step quantity.Time, log *zap.Logger, opts ...Option) (*Integrator, error) {
	if !step.IsPositive() || !step.IsFinite() {
		return nil, fmt.Errorf("%w: %v", ErrInvalidStep, step)
	}
	if log == nil {
		log = zap.NewNop()
	}

	in := &Integrator{step: step, every: 1, log: log}
	for _, opt := range opts {
		opt(in)
	}
	return in, nil
}

// Step returns the integration step.
func (in *Integrator) Step() quantity.Time {
	return in.step
}

// Run integrates body over duration, calling visit for every reported
// sample. The last step is shortened so the run ends exactly at duration.
// Run stops early when ctx is cancelled or visit returns an error.
func (in *Integrator) Run(ctx context.Context, body Body, duration quantity.Time, visit func(Sample) error) (Summary, error) {
	if err := body.Validate(); err != nil {
		return Summary{}, err
	}
	if !duration.IsPositive() || !duration.IsFinite() {
		return Summary{}, fmt.Errorf("%w: %v", ErrInvalidDuration, duration)
	}

	start := body.Position
	whole := int(duration.DivideQuantity(in.step).Magnitude().Floor())
	rest := duration.Subtract(in.step.Multiply(float64(whole)))
	total := whole
	if rest.Greater(in.step.Multiply(1e-9)) {
		total++
	}

	in.log.Info("simulation started",
		zap.Stringer("duration", duration),
		zap.Stringer("step", in.step),
		zap.Int("steps", total),
		zap.Stringer("velocity", body.Velocity),
		zap.Stringer("acceleration", body.Acceleration),
	)

	sum := Summary{MaxSpeed: body.Velocity.Magnitude()}
	force := body.Force()

	for i := 1; i <= total; i++ {
		if err := ctx.Err(); err != nil {
			return sum, err
		}

		dt := in.step
		if i > whole {
			dt = rest
		}

		previous := body.Velocity
		delta := Update(&body, dt)

		if in.stopAtRest && reversed(previous, body.Velocity) {
			if t, ok := restTime(previous, body.Acceleration, dt); ok {
				// Rewind to the instant the body stopped.
				body.Position = body.Position.Subtract(delta)
				body.Velocity = previous
				dt = t
				delta = Update(&body, dt)
				body.Velocity = quantity.Velocity3{}
				sum.AtRest = true
			}
		}

		sum.Steps = i
		sum.Elapsed = sum.Elapsed.Add(dt)
		sum.PathLength = sum.PathLength.Add(quantity.As[kind.Distance](delta.Magnitude()))
		sum.Work = sum.Work.Add(quantity.WorkFromForceDisplacement(force, delta))

		speed := body.Velocity.Magnitude()
		if speed.Greater(sum.MaxSpeed) {
			sum.MaxSpeed = speed
		}

		if in.log.Core().Enabled(zap.DebugLevel) {
			in.log.Debug("step",
				zap.Int("step", i),
				zap.Stringer("dt", dt),
				zap.Stringer("position", body.Position),
				zap.Stringer("velocity", body.Velocity),
			)
		}

		last := i == total || sum.AtRest
		if visit != nil && (i%in.every == 0 || last) {
			if err := visit(in.sample(i, sum, body, force)); err != nil {
				return sum, fmt.Errorf("visiting step %d: %w", i, err)
			}
		}
		if sum.AtRest {
			break
		}
	}

	sum.Final = body
	sum.Displacement = body.Position.Subtract(start)

	in.log.Info("simulation finished",
		zap.Int("steps", sum.Steps),
		zap.Stringer("elapsed", sum.Elapsed),
		zap.Stringer("displacement", sum.Displacement),
		zap.Bool("at_rest", sum.AtRest),
	)
	return sum, nil
}

func (in *Integrator) sample(step int, sum Summary, body Body, force quantity.Force3) Sample {
	return Sample{
		Step:          step,
		Elapsed:       sum.Elapsed,
		Position:      body.Position,
		Velocity:      body.Velocity,
		Speed:         body.Velocity.Magnitude(),
		KineticEnergy: body.KineticEnergy(),
		Momentum:      body.Momentum(),
		Power:         quantity.PowerFromForceVelocity(force, body.Velocity),
		Work:          sum.Work,
	}
}

// reversed reports whether a moving body stopped or turned by 90 degrees
// or more.
func reversed(before, after quantity.Velocity3) bool {
	if before.Magnitude().LessOrEqual(RestThreshold) {
		return false
	}
	if after.Magnitude().LessOrEqual(RestThreshold) {
		return true
	}
	return !quantity.Dot(before, after, quantity.FromSI[kind.SpeedSquared]).IsPositive()
}

// restTime returns the time within dt at which acceleration a cancels the
// component of v along v's direction. ok is false unless the whole
// velocity vanishes at that instant, i.e. a opposes v.
func restTime(v quantity.Velocity3, a quantity.Acceleration3, dt quantity.Time) (t quantity.Time, ok bool) {
	along := a.DotVector(v.Normalize().Components())
	if !along.IsNegative() {
		return t, false
	}

	t = quantity.Divide(v.Magnitude(), along.Negate(), quantity.FromSI[kind.Time])
	if !t.IsPositive() || t.Greater(dt.Multiply(1+1e-9)) {
		return t, false
	}

	residual := v.Add(quantity.Velocity3FromAccelerationTime(a, t)).Magnitude()
	limit := v.Magnitude().Multiply(1e-9)
	if RestThreshold.Greater(limit) {
		limit = RestThreshold
	}
	return t, residual.LessOrEqual(limit)
}
