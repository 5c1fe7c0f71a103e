package unit

import (
	"errors"
	"fmt"
)

// Sentinel errors
var (
	ErrInvalidFactor = errors.New("invalid conversion factor")
	ErrInvalidPrefix = errors.New("invalid prefix factor")
)

// ConfigurationError reports a unit or prefix that cannot be defined.
type ConfigurationError struct {
	Unit   string
	Factor float64
	Err    error
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("unit %q: factor %v: %v", e.Unit, e.Factor, e.Err)
}

func (e *ConfigurationError) Unwrap() error {
	return e.Err
}

// IsConfigurationError reports whether err was caused by an invalid unit
// or prefix definition.
func IsConfigurationError(err error) bool {
	return errors.Is(err, ErrInvalidFactor) || errors.Is(err, ErrInvalidPrefix)
}
