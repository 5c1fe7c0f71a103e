package quantity

import (
	"github.com/Faultbox/measures/pkg/kind"
	"github.com/Faultbox/measures/pkg/math"
	"github.com/Faultbox/measures/pkg/unit"
)

// Unhandled is the result of combining scalar quantities with no declared
// relation. It keeps the value typed without naming what it measures; the
// only way back to a named kind is Retype.
type Unhandled = Scalar[kind.Unhandled, unit.Unhandled]

// Unhandled3 is the vector counterpart of Unhandled.
type Unhandled3 = Vector3[kind.Unhandled, unit.Unhandled]

// NewUnhandled wraps a bare magnitude.
func NewUnhandled(magnitude float64) Unhandled {
	return Unhandled{magnitude: magnitude}
}

// NewUnhandled3 wraps bare components.
func NewUnhandled3(components math.Vector3) Unhandled3 {
	return Unhandled3{components: components}
}

// ScalarOf lifts a dimensionless math.Scalar into a ScalarQuantity.
func ScalarOf(s math.Scalar) Unhandled {
	return Unhandled{magnitude: float64(s)}
}
