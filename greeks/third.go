package greeks

import (
	"github.com/bcdannyboy/bsmgreeks/numeric"
	"github.com/bcdannyboy/bsmgreeks/scaling"
)

// Speed is d(gamma)/dS.
func Speed(S, K, T, r, sigma, q float64) float64 {
	gamma := Gamma(S, K, T, r, sigma, q)
	d1 := numeric.D1(S, K, T, r, sigma, q)
	return -gamma * (numeric.SafeDivide(d1, numeric.SigmaSqrtTime(sigma, T)) + 1) / S
}

// Zomma is d(gamma)/d(sigma) per 1% vol.
func Zomma(S, K, T, r, sigma, q float64) float64 {
	gamma := Gamma(S, K, T, r, sigma, q)
	d1 := numeric.D1(S, K, T, r, sigma, q)
	d2 := numeric.D2(S, K, T, r, sigma, q)
	return scaling.Percent(gamma * (d1*d2 - 1) / sigma)
}

// Color is gamma decay per calendar day.
func Color(S, K, T, r, sigma, q float64) float64 {
	d1 := numeric.D1(S, K, T, r, sigma, q)
	d2 := numeric.D2(S, K, T, r, sigma, q)
	sst := numeric.SigmaSqrtTime(sigma, T)
	term := numeric.NormalPDF(d1) * numeric.ExpDividend(q, T) *
		(numeric.SafeDivide(d1, sst) + 1) *
		(2*(r-q)*T - d2*sst)
	return scaling.Daily(-term / (2 * S * T * sst))
}

// Ultima is d(volga)/d(sigma) per 1% vol.
func Ultima(S, K, T, r, sigma, q float64) float64 {
	d1 := numeric.D1(S, K, T, r, sigma, q)
	d2 := numeric.D2(S, K, T, r, sigma, q)
	return scaling.Percent(-rawVega(S, K, T, r, sigma, q) * volConvexity(d1, d2) / (sigma * sigma))
}

func DvannaDvol(S, K, T, r, sigma, q float64) float64 {
	d1 := numeric.D1(S, K, T, r, sigma, q)
	d2 := numeric.D2(S, K, T, r, sigma, q)
	return scaling.Percent(numeric.ExpDividend(q, T) * numeric.NormalPDF(d1) * (1 - d1*d2) / (sigma * sigma))
}

// volConvexity is the d1/d2 polynomial shared by ultima and the
// fourth and sixth order vol terms.
func volConvexity(d1, d2 float64) float64 {
	return d1*d2*(1-d1*d2) + d1*d1 + d2*d2
}
