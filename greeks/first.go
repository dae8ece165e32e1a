// Package greeks evaluates Black-Scholes-Merton prices and sensitivities of
// order one through six. Functions do not validate their inputs: invalid
// parameters propagate as NaN.
package greeks

import (
	"github.com/bcdannyboy/bsmgreeks/numeric"
	"github.com/bcdannyboy/bsmgreeks/scaling"
)

// Price returns the BSM value of a European option with continuous dividend yield q.
func Price(call bool, S, K, T, r, sigma, q float64) float64 {
	d1 := numeric.D1(S, K, T, r, sigma, q)
	d2 := numeric.D2(S, K, T, r, sigma, q)
	ed := numeric.ExpDividend(q, T)
	df := numeric.SafeExp(-r * T)

	if call {
		return S*ed*numeric.NormalCDF(d1) - K*df*numeric.NormalCDF(d2)
	}
	return K*df*numeric.NormalCDF(-d2) - S*ed*numeric.NormalCDF(-d1)
}

func Delta(call bool, S, K, T, r, sigma, q float64) float64 {
	d1 := numeric.D1(S, K, T, r, sigma, q)
	ed := numeric.ExpDividend(q, T)
	if call {
		return ed * numeric.NormalCDF(d1)
	}
	return ed * (numeric.NormalCDF(d1) - 1)
}

// Vega is dV/dsigma divided by p.VegaScale.
func Vega(S, K, T, r, sigma, q float64, p scaling.Params) float64 {
	return scaling.Vega(rawVega(S, K, T, r, sigma, q), p)
}

func rawVega(S, K, T, r, sigma, q float64) float64 {
	d1 := numeric.D1(S, K, T, r, sigma, q)
	return S * numeric.ExpDividend(q, T) * numeric.NormalPDF(d1) * numeric.SqrtTime(T)
}

// Theta is -dV/dT divided by p.ThetaScale.
func Theta(call bool, S, K, T, r, sigma, q float64, p scaling.Params) float64 {
	d1 := numeric.D1(S, K, T, r, sigma, q)
	d2 := numeric.D2(S, K, T, r, sigma, q)
	ed := numeric.ExpDividend(q, T)
	df := numeric.SafeExp(-r * T)

	decay := -S * ed * numeric.NormalPDF(d1) * sigma / (2 * numeric.SqrtTime(T))
	carry := q * S * ed * numeric.NormalCDF(d1)
	rate := -r * K * df * numeric.NormalCDF(d2)
	if !call {
		carry = -q * S * ed * numeric.NormalCDF(-d1)
		rate = r * K * df * numeric.NormalCDF(-d2)
	}
	return scaling.Theta(decay-carry+rate, p)
}

func Rho(call bool, S, K, T, r, sigma, q float64, p scaling.Params) float64 {
	d2 := numeric.D2(S, K, T, r, sigma, q)
	df := numeric.SafeExp(-r * T)
	if call {
		return scaling.Rho(K*T*df*numeric.NormalCDF(d2), p)
	}
	return scaling.Rho(-K*T*df*numeric.NormalCDF(-d2), p)
}

// Lambda is the option's elasticity, delta*S/price.
func Lambda(call bool, S, K, T, r, sigma, q float64) float64 {
	delta := Delta(call, S, K, T, r, sigma, q)
	price := Price(call, S, K, T, r, sigma, q)
	return numeric.SafeDivide(delta*S, price)
}

// Epsilon is the sensitivity to the dividend yield.
func Epsilon(call bool, S, K, T, r, sigma, q float64, p scaling.Params) float64 {
	d1 := numeric.D1(S, K, T, r, sigma, q)
	ed := numeric.ExpDividend(q, T)
	if call {
		return scaling.Epsilon(-S*T*ed*numeric.NormalCDF(d1), p)
	}
	return scaling.Epsilon(S*T*ed*numeric.NormalCDF(-d1), p)
}
