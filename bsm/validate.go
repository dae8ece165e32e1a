// Package bsm is the validated entry point to the Black-Scholes-Merton
// pricer, Greeks report and implied volatility solver.
package bsm

import (
	"errors"
	"fmt"
)

// ErrInvalidInput matches every *InputError under errors.Is.
var ErrInvalidInput = errors.New("invalid Black-Scholes-Merton parameters")

// InputError reports a parameter that must be strictly positive.
type InputError struct {
	Param string
	Value float64
}

func (e *InputError) Error() string {
	return fmt.Sprintf("%s: %s must be positive (got %g)", ErrInvalidInput, e.Param, e.Value)
}

func (e *InputError) Is(target error) bool {
	return target == ErrInvalidInput
}

// ValidateInputs checks S, K, T and sigma, in that order, and returns an
// *InputError for the first one that is not strictly positive. The rate and
// dividend yield are unconstrained.
func ValidateInputs(S, K, T, r, sigma, q float64) error {
	params := []struct {
		name  string
		value float64
	}{
		{"S", S},
		{"K", K},
		{"T", T},
		{"sigma", sigma},
	}
	for _, p := range params {
		// !(v > 0) also rejects NaN.
		if !(p.value > 0) {
			return &InputError{Param: p.name, Value: p.value}
		}
	}
	return nil
}
