// -*- tab-width:2 -*-

package censored

// This file has the delay distribution constructors and their
// closed form CDF integral helpers.

import (
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mathext"
	"gonum.org/v1/gonum/stat/distuv"
)

// DelayFamily tags the family of a delay distribution. The analytic
// solution lookup is keyed on this tag, never on the identity of
// the CDF callable, so a custom CDF is always DelayCustom and
// always takes the numerical path.
type DelayFamily int

// The recognized delay families.
const (
	DelayCustom DelayFamily = iota
	DelayGamma
	DelayLogNormal
	DelayWeibull
	DelayExponential
)

func (f DelayFamily) String() string {
	switch f {
	case DelayGamma:
		return "gamma"
	case DelayLogNormal:
		return "lognormal"
	case DelayWeibull:
		return "weibull"
	case DelayExponential:
		return "exponential"
	default:
		return "custom"
	}
}

// Delay is the distribution of the delay from the primary to the
// secondary event. CDF is required. Rand is optional; without it
// the sampler inverts the CDF numerically.
type Delay struct {
	Family DelayFamily
	CDF    func(q float64) float64
	Rand   func(src rand.Source) float64

	// cdfInt is the closed form definite integral of the CDF,
	// set by the named constructors. nil means no closed form and
	// the analytic registry will pass on this delay.
	cdfInt func(a, b float64) float64
}

// cdfIntFromPartial builds the definite CDF integral from the CDF
// and its partial expectation PE(x) = integral of u f(u) du over
// [0, x], using integral of F over [a, b] = [u F(u) - PE(u)] at b
// minus at a.
func cdfIntFromPartial(cdf, pe func(float64) float64) func(a, b float64) float64 {
	g := func(x float64) float64 {
		if x <= 0 {
			return 0
		}

		return x*cdf(x) - pe(x)
	}

	return func(a, b float64) float64 {
		return g(b) - g(a)
	}
}

// GammaDelay returns a gamma delay distribution with the given
// shape and rate.
func GammaDelay(shape, rate float64) Delay {
	g := distuv.Gamma{Alpha: shape, Beta: rate}
	shifted := distuv.Gamma{Alpha: shape + 1, Beta: rate}
	pe := func(x float64) float64 {
		if x <= 0 {
			return 0
		}

		return shape / rate * shifted.CDF(x)
	}

	return Delay{
		Family: DelayGamma,
		CDF:    g.CDF,
		Rand: func(src rand.Source) float64 {
			return distuv.Gamma{Alpha: shape, Beta: rate, Src: src}.Rand()
		},
		cdfInt: cdfIntFromPartial(g.CDF, pe),
	}
}

// LogNormalDelay returns a lognormal delay distribution with mean
// mu and standard deviation sigma of the log delay.
func LogNormalDelay(mu, sigma float64) Delay {
	lnorm := distuv.LogNormal{Mu: mu, Sigma: sigma}
	pe := func(x float64) float64 {
		if x <= 0 {
			return 0
		}

		return math.Exp(mu+sigma*sigma/2) *
			distuv.UnitNormal.CDF((math.Log(x)-mu-sigma*sigma)/sigma)
	}

	return Delay{
		Family: DelayLogNormal,
		CDF:    lnorm.CDF,
		Rand: func(src rand.Source) float64 {
			return distuv.LogNormal{Mu: mu, Sigma: sigma, Src: src}.Rand()
		},
		cdfInt: cdfIntFromPartial(lnorm.CDF, pe),
	}
}

// WeibullDelay returns a Weibull delay distribution with the given
// shape and scale.
func WeibullDelay(shape, scale float64) Delay {
	weib := distuv.Weibull{K: shape, Lambda: scale}
	peScale := scale * math.Gamma(1+1/shape)
	pe := func(x float64) float64 {
		if x <= 0 {
			return 0
		}

		return peScale * mathext.GammaIncReg(1+1/shape, math.Pow(x/scale, shape))
	}

	return Delay{
		Family: DelayWeibull,
		CDF:    weib.CDF,
		Rand: func(src rand.Source) float64 {
			return distuv.Weibull{K: shape, Lambda: scale, Src: src}.Rand()
		},
		cdfInt: cdfIntFromPartial(weib.CDF, pe),
	}
}

// ExponentialDelay returns an exponential delay distribution with
// the given rate.
func ExponentialDelay(rate float64) Delay {
	exp := distuv.Exponential{Rate: rate}
	pe := func(x float64) float64 {
		if x <= 0 {
			return 0
		}

		return mathext.GammaIncReg(2, rate*x) / rate
	}

	return Delay{
		Family: DelayExponential,
		CDF:    exp.CDF,
		Rand: func(src rand.Source) float64 {
			return distuv.Exponential{Rate: rate, Src: src}.Rand()
		},
		cdfInt: cdfIntFromPartial(exp.CDF, pe),
	}
}

// CustomDelay wraps a caller supplied CDF. The CDF must be a
// non-decreasing map into [0, 1] with all mass on non-negative
// delays; New checks it at a couple of sentinel points only.
func CustomDelay(cdf func(q float64) float64) Delay {
	return Delay{
		Family: DelayCustom,
		CDF:    cdf,
	}
}
