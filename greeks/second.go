package greeks

import (
	"github.com/bcdannyboy/bsmgreeks/numeric"
	"github.com/bcdannyboy/bsmgreeks/scaling"
)

func Gamma(S, K, T, r, sigma, q float64) float64 {
	d1 := numeric.D1(S, K, T, r, sigma, q)
	return numeric.SafeDivide(numeric.NormalPDF(d1)*numeric.ExpDividend(q, T), S*numeric.SigmaSqrtTime(sigma, T))
}

// Vanna is d(delta)/d(sigma), reported in vega units.
func Vanna(S, K, T, r, sigma, q float64, p scaling.Params) float64 {
	d1 := numeric.D1(S, K, T, r, sigma, q)
	d2 := numeric.D2(S, K, T, r, sigma, q)
	return scaling.Vega(-numeric.ExpDividend(q, T)*numeric.NormalPDF(d1)*numeric.SafeDivide(d2, sigma), p)
}

// Charm is delta decay, -d(delta)/dT.
func Charm(call bool, S, K, T, r, sigma, q float64, p scaling.Params) float64 {
	d1 := numeric.D1(S, K, T, r, sigma, q)
	d2 := numeric.D2(S, K, T, r, sigma, q)
	ed := numeric.ExpDividend(q, T)
	sst := numeric.SigmaSqrtTime(sigma, T)

	drift := ed * numeric.NormalPDF(d1) * numeric.SafeDivide(2*(r-q)*T-d2*sst, 2*T*sst)
	carry := q * ed * numeric.NormalCDF(d1)
	if !call {
		carry = -q * ed * numeric.NormalCDF(-d1)
		drift = -drift
	}
	return scaling.Charm(carry-drift, p)
}

// Volga (vomma) is d(vega)/d(sigma).
func Volga(S, K, T, r, sigma, q float64, p scaling.Params) float64 {
	d1 := numeric.D1(S, K, T, r, sigma, q)
	d2 := numeric.D2(S, K, T, r, sigma, q)
	return scaling.Vega(rawVega(S, K, T, r, sigma, q)*d1*d2/sigma, p)
}

// Veta is d(vega)/dT. The result is divided by both the charm and the vega
// scale.
func Veta(S, K, T, r, sigma, q float64, p scaling.Params) float64 {
	d1 := numeric.D1(S, K, T, r, sigma, q)
	d2 := numeric.D2(S, K, T, r, sigma, q)
	term := -rawVega(S, K, T, r, sigma, q) * (q + numeric.SafeDivide((r-q-d1*sigma/(2*T))*d2, sigma))
	return scaling.Vega(scaling.Charm(term, p), p)
}

// Vera is d(rho)/d(sigma).
func Vera(S, K, T, r, sigma, q float64, p scaling.Params) float64 {
	d1 := numeric.D1(S, K, T, r, sigma, q)
	d2 := numeric.D2(S, K, T, r, sigma, q)
	df := numeric.SafeExp(-r * T)
	return scaling.Rho(-K*T*df*numeric.NormalPDF(d2)*numeric.SqrtTime(T)*d1, p)
}

func DualRho(S, K, T, r, sigma, q float64, p scaling.Params) float64 {
	d2 := numeric.D2(S, K, T, r, sigma, q)
	df := numeric.SafeExp(-r * T)
	return scaling.Rho(-T*T*K*df*numeric.NormalPDF(d2)*sigma/(2*numeric.SqrtTime(T)), p)
}
