// Package scaling converts raw Greeks into trader-facing units.
package scaling

// Params holds the divisors applied to each configurable Greek. Vega, rho
// and epsilon are per percentage point; theta, charm and color per period.
type Params struct {
	VegaScale    float64
	RhoScale     float64
	EpsilonScale float64
	ThetaScale   float64
	CharmScale   float64
	ColorScale   float64
}

// NoScaling returns raw model units.
func NoScaling() Params {
	return Params{1, 1, 1, 1, 1, 1}
}

// Intraday keeps percentage scaling but leaves time Greeks per year.
func Intraday() Params {
	return Params{100, 100, 100, 1, 1, 1}
}

func Weekly() Params {
	return Params{100, 100, 100, 52, 52, 52}
}

// Standard is per 1% move and per calendar day.
func Standard() Params {
	return Params{100, 100, 100, 365, 365, 365}
}
