package numeric

import "math"

// D1 returns the standardized log-moneyness term of the BSM model. It is NaN
// unless S, K, T and sigma are all positive.
func D1(S, K, T, r, sigma, q float64) float64 {
	logTerm := SafeLog(S / K)
	if !IsValid(logTerm) {
		return math.NaN()
	}
	return SafeDivide(logTerm+(r-q+0.5*sigma*sigma)*T, SigmaSqrtTime(sigma, T))
}

// D2 is D1 shifted by sigma*sqrt(T).
func D2(S, K, T, r, sigma, q float64) float64 {
	d1 := D1(S, K, T, r, sigma, q)
	if !IsValid(d1) {
		return math.NaN()
	}
	return d1 - SigmaSqrtTime(sigma, T)
}
