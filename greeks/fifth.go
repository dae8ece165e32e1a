package greeks

import (
	"math"

	"github.com/bcdannyboy/bsmgreeks/numeric"
	"github.com/bcdannyboy/bsmgreeks/scaling"
)

const (
	mixed5thMinT     = 2.0 / 365.0
	mixed5thMinSigma = 0.10
)

func Jounce(S, K, T, r, sigma, q float64) float64 {
	snap := Snap(S, K, T, r, sigma, q)
	d1 := numeric.D1(S, K, T, r, sigma, q)
	term := d1*d1*d1 - 5*d1*d1/numeric.SigmaSqrtTime(sigma, T) + 5*d1/(sigma*sigma*T) + 3
	return snap * term / S
}

func Quintema(S, K, T, r, sigma, q float64) float64 {
	jounce := Jounce(S, K, T, r, sigma, q)
	d1 := numeric.D1(S, K, T, r, sigma, q)
	st := numeric.SqrtTime(T)
	term := d1*d1*d1*d1 -
		7*d1*d1*d1/numeric.SigmaSqrtTime(sigma, T) +
		15*d1*d1/(sigma*sigma*T) -
		15*d1/(sigma*sigma*sigma*st*st*st) - 4
	return jounce * term / S
}

// Mixed5th is a fifth order cross sensitivity in spot, vol and time. It is
// NaN when T < 2 days or sigma < 10%.
func Mixed5th(S, K, T, r, sigma, q float64) float64 {
	if T < mixed5thMinT || sigma < mixed5thMinSigma {
		return math.NaN()
	}
	d1 := numeric.D1(S, K, T, r, sigma, q)
	sst := numeric.SigmaSqrtTime(sigma, T)

	gamma := numeric.SafeDivide(numeric.NormalPDF(d1)*numeric.ExpDividend(q, T), S*sst)
	spot := d1*d1*d1 - 3*d1*d1/sst - 3*d1
	drift := numeric.SafeDivide(r-q-d1*sigma/(2*T), sigma)
	return scaling.Percent(scaling.Daily(gamma * spot * drift / (S * S)))
}
