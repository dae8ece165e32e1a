package bsm

import (
	"math"

	"github.com/golang/glog"

	"github.com/bcdannyboy/bsmgreeks/greeks"
	"github.com/bcdannyboy/bsmgreeks/scaling"
)

const (
	DefaultTolerance     = 1e-6
	DefaultMaxIterations = 100

	initialSigma = 0.2
	// floorSigma replaces a Newton step that lands at or below zero.
	floorSigma = 0.01
	minVega    = 1e-10
	// probeSigma stands in for the unknown volatility during validation.
	probeSigma = 0.1
)

// ImpliedVolatility solves for the volatility that reproduces marketPrice
// using the default tolerance and iteration limit.
func ImpliedVolatility(call bool, S, K, T, r, marketPrice, q float64) (float64, error) {
	return ImpliedVolatilityTol(call, S, K, T, r, marketPrice, q, DefaultTolerance, DefaultMaxIterations)
}

// ImpliedVolatilityTol runs Newton-Raphson from sigma = 0.2 until the price
// error is below tol. Invalid inputs and a non-positive market price return
// an error. A flat vega or running out of iterations returns NaN with a nil
// error.
func ImpliedVolatilityTol(call bool, S, K, T, r, marketPrice, q, tol float64, maxIter int) (float64, error) {
	if err := ValidateInputs(S, K, T, r, probeSigma, q); err != nil {
		return math.NaN(), err
	}
	if !(marketPrice > 0) {
		return math.NaN(), &InputError{Param: "market price", Value: marketPrice}
	}

	std := scaling.Standard()
	sigma := initialSigma
	for i := 0; i < maxIter; i++ {
		price := greeks.Price(call, S, K, T, r, sigma, q)
		// Standard vega is per 1%; Newton needs dV/dsigma.
		vega := greeks.Vega(S, K, T, r, sigma, q, std) * 100

		diff := price - marketPrice
		if math.Abs(diff) < tol {
			return sigma, nil
		}
		if vega < minVega {
			glog.V(1).Infof("bsm: implied vol aborted at iteration %d, vega %g too small (sigma=%g)", i, vega, sigma)
			return math.NaN(), nil
		}

		sigma -= diff / vega
		if sigma <= 0 {
			sigma = floorSigma
		}
	}
	glog.V(1).Infof("bsm: implied vol did not converge in %d iterations (last sigma=%g)", maxIter, sigma)
	return math.NaN(), nil
}
