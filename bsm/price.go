package bsm

import (
	"github.com/bcdannyboy/bsmgreeks/greeks"
	"github.com/bcdannyboy/bsmgreeks/scaling"
)

// Price validates the inputs and returns the option value.
func Price(call bool, S, K, T, r, sigma, q float64) (float64, error) {
	if err := ValidateInputs(S, K, T, r, sigma, q); err != nil {
		return 0, err
	}
	return greeks.Price(call, S, K, T, r, sigma, q), nil
}

// Full validates the inputs and returns every Greek in standard units.
func Full(call bool, S, K, T, r, sigma, q float64) (greeks.Report, error) {
	return FullScaled(call, S, K, T, r, sigma, q, scaling.Standard())
}

// FullScaled is Full with caller supplied scaling.
func FullScaled(call bool, S, K, T, r, sigma, q float64, p scaling.Params) (greeks.Report, error) {
	if err := ValidateInputs(S, K, T, r, sigma, q); err != nil {
		return greeks.NewReport(), err
	}
	return greeks.CalculateAll(call, S, K, T, r, sigma, q, p), nil
}
