package bsm_test

import (
	"errors"
	"math"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"

	"github.com/bcdannyboy/bsmgreeks/bsm"
	"github.com/bcdannyboy/bsmgreeks/greeks"
	"github.com/bcdannyboy/bsmgreeks/scaling"
)

const tolerance = 1e-6

func TestValidateInputs(t *testing.T) {
	tests := []struct {
		name                 string
		S, K, T, r, sigma, q float64
		param                string
	}{
		{"valid", 100, 100, 1, 0.05, 0.2, 0, ""},
		{"negative rate and dividend allowed", 100, 100, 1, -0.01, 0.2, -0.02, ""},
		{"tiny positive values", 1e-12, 1e-12, 1e-12, 0, 1e-12, 0, ""},
		{"zero spot", 0, 100, 1, 0.05, 0.2, 0, "S"},
		{"negative spot", -100, 100, 1, 0.05, 0.2, 0, "S"},
		{"zero strike", 100, 0, 1, 0.05, 0.2, 0, "K"},
		{"negative expiry", 100, 100, -1, 0.05, 0.2, 0, "T"},
		{"zero vol", 100, 100, 1, 0.05, 0, 0, "sigma"},
		{"nan vol", 100, 100, 1, 0.05, math.NaN(), 0, "sigma"},
		{"first failure wins", -1, -1, -1, 0.05, -1, 0, "S"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := bsm.ValidateInputs(tt.S, tt.K, tt.T, tt.r, tt.sigma, tt.q)
			if tt.param == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, bsm.ErrInvalidInput) {
				t.Fatalf("error = %v, want ErrInvalidInput", err)
			}
			var inputErr *bsm.InputError
			if !errors.As(err, &inputErr) {
				t.Fatalf("error %T is not *InputError", err)
			}
			if inputErr.Param != tt.param {
				t.Errorf("Param = %q, want %q", inputErr.Param, tt.param)
			}
		})
	}
}

func TestPrice(t *testing.T) {
	call, err := bsm.Price(true, 100, 100, 1, 0.05, 0.2, 0)
	if err != nil {
		t.Fatalf("Price: %v", err)
	}
	put, err := bsm.Price(false, 100, 100, 1, 0.05, 0.2, 0)
	if err != nil {
		t.Fatalf("Price: %v", err)
	}
	if !scalar.EqualWithinAbs(call, 10.450583572185565, tolerance) {
		t.Errorf("call = %v", call)
	}
	if !scalar.EqualWithinAbs(call-put, 100-100*math.Exp(-0.05), tolerance) {
		t.Errorf("parity: C-P = %v", call-put)
	}

	for _, args := range [][6]float64{
		{-100, 100, 1, 0.05, 0.2, 0},
		{100, 100, -1, 0.05, 0.2, 0},
		{100, 100, 1, 0.05, -0.1, 0},
	} {
		if _, err := bsm.Price(true, args[0], args[1], args[2], args[3], args[4], args[5]); !errors.Is(err, bsm.ErrInvalidInput) {
			t.Errorf("Price%v error = %v, want ErrInvalidInput", args, err)
		}
	}
}

func TestFull(t *testing.T) {
	g, err := bsm.Full(true, 100, 100, 1, 0.05, 0.2, 0.02)
	if err != nil {
		t.Fatalf("Full: %v", err)
	}
	want := greeks.CalculateAll(true, 100, 100, 1, 0.05, 0.2, 0.02, scaling.Standard())
	if g.Delta != want.Delta || g.Vega != want.Vega || g.Mixed6th != want.Mixed6th {
		t.Errorf("Full differs from CalculateAll with standard scaling")
	}
	if !scalar.EqualWithinAbs(g.Delta, 0.586851146134764, 1e-12) {
		t.Errorf("delta = %v", g.Delta)
	}

	raw, err := bsm.FullScaled(true, 100, 100, 1, 0.05, 0.2, 0.02, scaling.NoScaling())
	if err != nil {
		t.Fatalf("FullScaled: %v", err)
	}
	if !scalar.EqualWithinAbsOrRel(raw.Rho, 49.45810910532236, 1e-12, 1e-10) {
		t.Errorf("unscaled rho = %v", raw.Rho)
	}

	g, err = bsm.Full(false, 100, 0, 1, 0.05, 0.2, 0)
	if !errors.Is(err, bsm.ErrInvalidInput) {
		t.Fatalf("error = %v, want ErrInvalidInput", err)
	}
	if !math.IsNaN(g.Price) || !math.IsNaN(g.Delta) {
		t.Error("report for invalid inputs should be all NaN")
	}
}

func TestImpliedVolatility(t *testing.T) {
	t.Run("known volatility", func(t *testing.T) {
		market := greeks.Price(true, 100, 100, 1, 0.05, 0.2, 0)
		iv, err := bsm.ImpliedVolatility(true, 100, 100, 1, 0.05, market, 0)
		if err != nil {
			t.Fatalf("ImpliedVolatility: %v", err)
		}
		if !scalar.EqualWithinAbs(iv, 0.2, tolerance) {
			t.Errorf("iv = %v, want 0.2", iv)
		}
	})

	t.Run("low volatility", func(t *testing.T) {
		market := greeks.Price(true, 100, 100, 1, 0.05, 0.01, 0)
		iv, err := bsm.ImpliedVolatility(true, 100, 100, 1, 0.05, market, 0)
		if err != nil {
			t.Fatalf("ImpliedVolatility: %v", err)
		}
		// The price is insensitive to vol this far below the forward, so
		// the solver stops on price error before reaching 0.01.
		if !scalar.EqualWithinAbs(iv, 0.011256, tolerance) {
			t.Errorf("iv = %v, want 0.011256", iv)
		}
	})

	t.Run("non-positive market price", func(t *testing.T) {
		for _, market := range []float64{0, -1} {
			iv, err := bsm.ImpliedVolatility(true, 100, 100, 1, 0.05, market, 0)
			if !errors.Is(err, bsm.ErrInvalidInput) {
				t.Errorf("market %v: error = %v, want ErrInvalidInput", market, err)
			}
			if !math.IsNaN(iv) {
				t.Errorf("market %v: iv = %v, want NaN", market, iv)
			}
		}
	})

	t.Run("invalid contract", func(t *testing.T) {
		if _, err := bsm.ImpliedVolatility(true, 100, 100, 0, 0.05, 5, 0); !errors.Is(err, bsm.ErrInvalidInput) {
			t.Errorf("error = %v, want ErrInvalidInput", err)
		}
	})

	t.Run("flat vega", func(t *testing.T) {
		iv, err := bsm.ImpliedVolatility(true, 100, 1000, 0.1, 0.05, 0.5, 0)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !math.IsNaN(iv) {
			t.Errorf("iv = %v, want NaN", iv)
		}
	})

	t.Run("iteration limit", func(t *testing.T) {
		market := greeks.Price(false, 100, 110, 0.5, 0.05, 0.45, 0)
		iv, err := bsm.ImpliedVolatilityTol(false, 100, 110, 0.5, 0.05, market, 0, 1e-12, 1)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !math.IsNaN(iv) {
			t.Errorf("iv = %v, want NaN after one iteration", iv)
		}
	})
}

func TestImpliedVolatilityRoundTrip(t *testing.T) {
	const r = 0.05
	raw := scaling.NoScaling()
	for _, call := range []bool{true, false} {
		for _, S := range []float64{80, 90, 100, 110, 120} {
			for _, T := range []float64{0.25, 0.5, 1, 2} {
				for _, sigma := range []float64{0.05, 0.1, 0.15, 0.2, 0.35, 0.6} {
					for _, q := range []float64{0, 0.03} {
						// Far from the money at low vol the price barely moves
						// with sigma, so the solver stops on price error early.
						if greeks.Vega(S, 100, T, r, sigma, q, raw) < 1 {
							continue
						}
						market := greeks.Price(call, S, 100, T, r, sigma, q)
						iv, err := bsm.ImpliedVolatility(call, S, 100, T, r, market, q)
						if err != nil {
							t.Fatalf("call=%v S=%v T=%v sigma=%v q=%v: %v", call, S, T, sigma, q, err)
						}
						if !scalar.EqualWithinAbs(iv, sigma, tolerance) {
							t.Errorf("call=%v S=%v T=%v sigma=%v q=%v: iv = %v", call, S, T, sigma, q, iv)
						}
					}
				}
			}
		}
	}
}

// Starting from 0.2, a short-dated high-vol contract makes the first Newton
// step overshoot; the clamped retry lands where vega is flat and the solver
// gives up even though vega at the true sigma is large.
func TestImpliedVolatilityOvershoot(t *testing.T) {
	for _, call := range []bool{true, false} {
		market := greeks.Price(call, 120, 100, 0.25, 0.05, 1.0, 0)
		if vega := greeks.Vega(120, 100, 0.25, 0.05, 1.0, 0, scaling.NoScaling()); vega < 10 {
			t.Fatalf("vega at true sigma = %v, expected a well-conditioned contract", vega)
		}
		iv, err := bsm.ImpliedVolatility(call, 120, 100, 0.25, 0.05, market, 0)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !math.IsNaN(iv) {
			t.Errorf("call=%v: iv = %v, want NaN", call, iv)
		}
	}
}
