package numdiff

import "github.com/bcdannyboy/bsmgreeks/greeks"

func defaultStep(v float64) float64 {
	return AdaptiveStep(v, DefaultMinStep, DefaultStepScale)
}

// NumericalDelta differentiates the BSM price in S.
func NumericalDelta(call bool, S, K, T, r, sigma, q float64) float64 {
	price := func(s float64) float64 {
		return greeks.Price(call, s, K, T, r, sigma, q)
	}
	return CentralDifference(price, S, defaultStep(S))
}

func NumericalGamma(call bool, S, K, T, r, sigma, q float64) float64 {
	price := func(s float64) float64 {
		return greeks.Price(call, s, K, T, r, sigma, q)
	}
	return SecondCentralDifference(price, S, defaultStep(S))
}

// NumericalVega is dV/dsigma in raw units, comparable to greeks.Vega with
// scaling.NoScaling.
func NumericalVega(call bool, S, K, T, r, sigma, q float64) float64 {
	price := func(v float64) float64 {
		return greeks.Price(call, S, K, T, r, v, q)
	}
	return CentralDifference(price, sigma, defaultStep(sigma))
}

// NumericalVanna is d2V/dSdsigma in raw units.
func NumericalVanna(call bool, S, K, T, r, sigma, q float64) float64 {
	price := func(s, v float64) float64 {
		return greeks.Price(call, s, K, T, r, v, q)
	}
	return MixedPartial(price, S, sigma, defaultStep(S), defaultStep(sigma))
}
