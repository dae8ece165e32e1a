package numeric

import "math"

// DivideEpsilon is the smallest denominator magnitude SafeDivide accepts.
const DivideEpsilon = 1e-10

// expLimit is the largest exponent math.Exp can take without overflowing.
const expLimit = 709.0

// SafeDivide returns num/den, or NaN when |den| is below DivideEpsilon.
func SafeDivide(num, den float64) float64 {
	return SafeDivideEps(num, den, DivideEpsilon)
}

// SafeDivideEps is SafeDivide with an explicit epsilon.
func SafeDivideEps(num, den, eps float64) float64 {
	if math.Abs(den) < eps {
		return math.NaN()
	}
	return num / den
}

// SafeLog returns NaN for non-positive input instead of -Inf.
func SafeLog(x float64) float64 {
	if x <= 0 {
		return math.NaN()
	}
	return math.Log(x)
}

// SafeExp saturates at math.MaxFloat64 and 0 instead of overflowing.
func SafeExp(x float64) float64 {
	if x > expLimit {
		return math.MaxFloat64
	}
	if x < -expLimit {
		return 0
	}
	return math.Exp(x)
}

// IsValid reports whether x is finite.
func IsValid(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

func Clamp(x, lo, hi float64) float64 {
	return math.Max(lo, math.Min(x, hi))
}

// Lerp interpolates linearly between a and b.
func Lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}
