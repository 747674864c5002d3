package thermo

import (
	"errors"
	"fmt"
	"math"
)

// ErrDomain indicates an input outside the valid domain of a formula.
var ErrDomain = errors.New("thermo: input outside formula domain")

// DomainError wraps ErrDomain with the offending operation and parameter.
type DomainError struct {
	Op     string
	Param  string
	Value  float64
	Reason string
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("thermo: %s: %s=%g %s", e.Op, e.Param, e.Value, e.Reason)
}

func (e *DomainError) Unwrap() error {
	return ErrDomain
}

func domainErr(op, param string, value float64, reason string) error {
	return &DomainError{Op: op, Param: param, Value: value, Reason: reason}
}

func requireFinite(op, param string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return domainErr(op, param, v, "must be finite")
	}
	return nil
}

func requirePositive(op, param string, v float64) error {
	if err := requireFinite(op, param, v); err != nil {
		return err
	}
	if v <= 0 {
		return domainErr(op, param, v, "must be positive")
	}
	return nil
}

// checkResult guards against overflow producing Inf from finite inputs.
func checkResult(op string, v float64) (float64, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, domainErr(op, "result", v, "is not finite")
	}
	return v, nil
}
