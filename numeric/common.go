package numeric

import "math"

// ExpDividend is the continuous dividend discount factor e^(-qT).
func ExpDividend(q, T float64) float64 {
	return SafeExp(-q * T)
}

func SqrtTime(T float64) float64 {
	if T <= 0 {
		return math.NaN()
	}
	return math.Sqrt(T)
}

// SigmaSqrtTime is the total volatility over the option's life.
func SigmaSqrtTime(sigma, T float64) float64 {
	if sigma <= 0 || T <= 0 {
		return math.NaN()
	}
	return sigma * math.Sqrt(T)
}
