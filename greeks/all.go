package greeks

import (
	"github.com/golang/glog"

	"github.com/bcdannyboy/bsmgreeks/scaling"
)

// stabilityGate is the minimum time to expiry (in years) and volatility above
// which a tier of higher order Greeks is numerically meaningful. Both bounds
// are strict.
type stabilityGate struct {
	minT     float64
	minSigma float64
}

func (g stabilityGate) open(T, sigma float64) bool {
	return T > g.minT && sigma > g.minSigma
}

var (
	fourthOrderGate = stabilityGate{minT: 1.0 / 365.0, minSigma: 0.05}
	fifthOrderGate  = stabilityGate{minT: 2.0 / 365.0, minSigma: 0.10}
	sixthOrderGate  = stabilityGate{minT: 5.0 / 365.0, minSigma: 0.15}
)

// CalculateAll computes every Greek for one option. Orders one to three are
// always computed; orders four to six only when T and sigma clear the
// matching stability gate, otherwise they stay NaN. Inputs are not validated.
func CalculateAll(call bool, S, K, T, r, sigma, q float64, p scaling.Params) Report {
	g := NewReport()

	g.Price = Price(call, S, K, T, r, sigma, q)
	g.Delta = Delta(call, S, K, T, r, sigma, q)
	g.Vega = Vega(S, K, T, r, sigma, q, p)
	g.Theta = Theta(call, S, K, T, r, sigma, q, p)
	g.Rho = Rho(call, S, K, T, r, sigma, q, p)
	g.Lambda = Lambda(call, S, K, T, r, sigma, q)
	g.Epsilon = Epsilon(call, S, K, T, r, sigma, q, p)

	g.Gamma = Gamma(S, K, T, r, sigma, q)
	g.Vanna = Vanna(S, K, T, r, sigma, q, p)
	g.Charm = Charm(call, S, K, T, r, sigma, q, p)
	g.Volga = Volga(S, K, T, r, sigma, q, p)
	g.Veta = Veta(S, K, T, r, sigma, q, p)
	g.Vera = Vera(S, K, T, r, sigma, q, p)
	g.DualRho = DualRho(S, K, T, r, sigma, q, p)

	g.Speed = Speed(S, K, T, r, sigma, q)
	g.Zomma = Zomma(S, K, T, r, sigma, q)
	g.Color = Color(S, K, T, r, sigma, q)
	g.Ultima = Ultima(S, K, T, r, sigma, q)
	g.DvannaDvol = DvannaDvol(S, K, T, r, sigma, q)

	if !fourthOrderGate.open(T, sigma) {
		glog.V(2).Infof("greeks: T=%g sigma=%g below fourth order gate, orders 4-6 withheld", T, sigma)
		return g
	}
	g.Snap = Snap(S, K, T, r, sigma, q)
	g.ZedZeta = ZedZeta(S, K, T, r, sigma, q)
	g.Crackle = Crackle(S, K, T, r, sigma, q)
	g.Pop = Pop(S, K, T, r, sigma, q)

	if !fifthOrderGate.open(T, sigma) {
		glog.V(2).Infof("greeks: T=%g sigma=%g below fifth order gate, orders 5-6 withheld", T, sigma)
		return g
	}
	g.Jounce = Jounce(S, K, T, r, sigma, q)
	g.Quintema = Quintema(S, K, T, r, sigma, q)
	g.Mixed5th = Mixed5th(S, K, T, r, sigma, q)

	if !sixthOrderGate.open(T, sigma) {
		glog.V(2).Infof("greeks: T=%g sigma=%g below sixth order gate, order 6 withheld", T, sigma)
		return g
	}
	g.Pounce = Pounce(S, K, T, r, sigma, q)
	g.Hexema = Hexema(S, K, T, r, sigma, q)
	g.Mixed6th = Mixed6th(S, K, T, r, sigma, q)

	return g
}
