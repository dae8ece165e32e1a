// Package numdiff provides finite-difference operators and numerical Greeks
// used to cross-check the closed forms in package greeks.
package numdiff

import (
	"math"

	"gonum.org/v1/gonum/diff/fd"
	"gonum.org/v1/gonum/mat"
)

const (
	DefaultStep      = 1e-4
	DefaultMinStep   = 1e-6
	DefaultStepScale = 0.01
)

// fivePoint is the fourth-order accurate centered first derivative.
var fivePoint = fd.Formula{
	Stencil: []fd.Point{
		{Loc: -2, Coeff: 1.0 / 12},
		{Loc: -1, Coeff: -8.0 / 12},
		{Loc: 1, Coeff: 8.0 / 12},
		{Loc: 2, Coeff: -1.0 / 12},
	},
	Derivative: 1,
	Step:       DefaultStep,
}

// CentralDifference approximates f'(x) with (f(x+h) - f(x-h)) / 2h.
// It returns NaN if h <= 0.
func CentralDifference(f func(float64) float64, x, h float64) float64 {
	if h <= 0 {
		return math.NaN()
	}
	return fd.Derivative(f, x, &fd.Settings{Formula: fd.Central, Step: h})
}

// SecondCentralDifference approximates f''(x). It returns NaN if h <= 0.
func SecondCentralDifference(f func(float64) float64, x, h float64) float64 {
	if h <= 0 {
		return math.NaN()
	}
	return fd.Derivative(f, x, &fd.Settings{Formula: fd.Central2nd, Step: h})
}

// FifthOrderDifference approximates f'(x) from the five-point stencil
// (-f(x+2h) + 8f(x+h) - 8f(x-h) + f(x-2h)) / 12h. It returns NaN if h <= 0.
func FifthOrderDifference(f func(float64) float64, x, h float64) float64 {
	if h <= 0 {
		return math.NaN()
	}
	return fd.Derivative(f, x, &fd.Settings{Formula: fivePoint, Step: h})
}

// MixedPartial approximates d2f/dxdy with steps h in x and k in y. It returns
// NaN if either step is not positive.
func MixedPartial(f func(x, y float64) float64, x, y, h, k float64) float64 {
	if h <= 0 || k <= 0 {
		return math.NaN()
	}
	// Evaluate on a unit grid so fd can use a single step for both axes.
	g := func(uv []float64) float64 {
		return f(x+uv[0]*h, y+uv[1]*k)
	}
	var hess mat.SymDense
	fd.Hessian(&hess, g, []float64{0, 0}, &fd.Settings{Formula: fd.Central, Step: 1})
	return hess.At(0, 1) / (h * k)
}

// AdaptiveStep scales the step with the magnitude of value, never going
// below minH.
func AdaptiveStep(value, minH, scale float64) float64 {
	return math.Max(minH, math.Abs(value)*scale)
}
