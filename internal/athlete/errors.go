package athlete

import (
	"errors"
	"fmt"
)

var ErrProfileNotFound = errors.New("athlete profile not found")

// InvalidAnthropometricsError rejects physiologically impossible inputs.
type InvalidAnthropometricsError struct {
	Field  string
	Value  float64
	Reason string
}

func (e *InvalidAnthropometricsError) Error() string {
	if e.Value != 0 {
		return fmt.Sprintf("invalid anthropometrics: %s=%g %s", e.Field, e.Value, e.Reason)
	}
	return fmt.Sprintf("invalid anthropometrics: %s %s", e.Field, e.Reason)
}
