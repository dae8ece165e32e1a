package greeks

import (
	"math"

	"github.com/bcdannyboy/bsmgreeks/numeric"
	"github.com/bcdannyboy/bsmgreeks/scaling"
)

// Snap is d(speed)/dS, the fourth spot derivative of value.
func Snap(S, K, T, r, sigma, q float64) float64 {
	gamma := Gamma(S, K, T, r, sigma, q)
	d1 := numeric.D1(S, K, T, r, sigma, q)
	term := d1*d1 - 3*numeric.SafeDivide(d1, numeric.SigmaSqrtTime(sigma, T)) - 1
	return gamma * term / (S * S)
}

// ZedZeta is a fourth order volatility sensitivity per 1% vol.
func ZedZeta(S, K, T, r, sigma, q float64) float64 {
	d1 := numeric.D1(S, K, T, r, sigma, q)
	d2 := numeric.D2(S, K, T, r, sigma, q)
	return scaling.Percent(rawVega(S, K, T, r, sigma, q) * volConvexity(d1, d2) / (sigma * sigma))
}

// Crackle has no closed form here and is always NaN.
func Crackle(S, K, T, r, sigma, q float64) float64 {
	return math.NaN()
}

func Pop(S, K, T, r, sigma, q float64) float64 {
	snap := Snap(S, K, T, r, sigma, q)
	d1 := numeric.D1(S, K, T, r, sigma, q)
	sst := numeric.SigmaSqrtTime(sigma, T)
	term := d1*d1*d1 - 6*d1*d1/sst - 3*d1 - 3/sst
	return snap * term / S
}
