package scaling

import "github.com/bcdannyboy/bsmgreeks/numeric"

const (
	percentDivisor = 100.0
	daysPerYear    = 365.0
)

// Percent converts a per-unit sensitivity to per 1%.
func Percent(v float64) float64 {
	return v / percentDivisor
}

// Daily converts a per-year sensitivity to per calendar day.
func Daily(v float64) float64 {
	return v / daysPerYear
}

func Vega(v float64, p Params) float64 {
	return numeric.SafeDivide(v, p.VegaScale)
}

func Rho(v float64, p Params) float64 {
	return numeric.SafeDivide(v, p.RhoScale)
}

func Epsilon(v float64, p Params) float64 {
	return numeric.SafeDivide(v, p.EpsilonScale)
}

func Theta(v float64, p Params) float64 {
	return numeric.SafeDivide(v, p.ThetaScale)
}

func Charm(v float64, p Params) float64 {
	return numeric.SafeDivide(v, p.CharmScale)
}

func Color(v float64, p Params) float64 {
	return numeric.SafeDivide(v, p.ColorScale)
}
