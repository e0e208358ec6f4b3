package dynamo

import (
	"errors"
	"fmt"
)

// Domain errors for parameter handling.
var (
	// ErrUnknownParam indicates a parameter name the system does not expose.
	ErrUnknownParam = errors.New("dynamo: unknown parameter")

	// ErrParameterBounds indicates a parameter value is outside valid range.
	ErrParameterBounds = errors.New("dynamo: parameter out of valid bounds")
)

// ParamError wraps ErrParameterBounds with the offending value.
type ParamError struct {
	Name     string
	Value    float64
	Min, Max float64
}

func (e *ParamError) Error() string {
	return fmt.Sprintf("%s: %s=%g not in [%g, %g]", ErrParameterBounds, e.Name, e.Value, e.Min, e.Max)
}

func (e *ParamError) Unwrap() error {
	return ErrParameterBounds
}

// UnknownParam returns an error wrapping ErrUnknownParam for name.
func UnknownParam(name string) error {
	return fmt.Errorf("%w: %q", ErrUnknownParam, name)
}
