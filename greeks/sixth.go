package greeks

import (
	"math"

	"github.com/bcdannyboy/bsmgreeks/numeric"
	"github.com/bcdannyboy/bsmgreeks/scaling"
)

const (
	mixed6thMinT     = 5.0 / 365.0
	mixed6thMinSigma = 0.15
)

func Pounce(S, K, T, r, sigma, q float64) float64 {
	jounce := Jounce(S, K, T, r, sigma, q)
	d1 := numeric.D1(S, K, T, r, sigma, q)
	st := numeric.SqrtTime(T)
	term := d1*d1*d1*d1 -
		9*d1*d1*d1/numeric.SigmaSqrtTime(sigma, T) +
		31*d1*d1/(sigma*sigma*T) -
		27*d1/(sigma*sigma*sigma*st*st*st) - 9
	return jounce * term / (S * S)
}

func Hexema(S, K, T, r, sigma, q float64) float64 {
	pounce := Pounce(S, K, T, r, sigma, q)
	d1 := numeric.D1(S, K, T, r, sigma, q)
	st := numeric.SqrtTime(T)
	s2 := sigma * sigma
	term := d1*d1*d1*d1*d1 -
		11*d1*d1*d1*d1/numeric.SigmaSqrtTime(sigma, T) +
		49*d1*d1*d1/(s2*T) -
		69*d1*d1/(s2*sigma*st*st*st) +
		39*d1/(s2*s2*st*st*st*st) + 10
	return pounce * term / S
}

// Mixed6th extends Mixed5th with the fourth order vol term. It is NaN when
// T < 5 days or sigma < 15%.
func Mixed6th(S, K, T, r, sigma, q float64) float64 {
	if T < mixed6thMinT || sigma < mixed6thMinSigma {
		return math.NaN()
	}
	d1 := numeric.D1(S, K, T, r, sigma, q)
	d2 := numeric.D2(S, K, T, r, sigma, q)
	sst := numeric.SigmaSqrtTime(sigma, T)

	gamma := numeric.SafeDivide(numeric.NormalPDF(d1)*numeric.ExpDividend(q, T), S*sst)
	spot := d1*d1*d1 - 3*d1*d1/sst - 3*d1
	drift := numeric.SafeDivide(r-q-d1*sigma/(2*T), sigma)
	result := gamma * spot * volConvexity(d1, d2) * drift / (S * S * sigma)
	return scaling.Percent(scaling.Daily(result))
}
