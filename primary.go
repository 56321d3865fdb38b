// -*- tab-width:2 -*-

package censored

// This file has the primary event timing densities over the
// primary window [0, pwindow].

import (
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// PrimaryFamily tags the family of a primary event density for the
// analytic solution lookup.
type PrimaryFamily int

// The recognized primary families. PrimaryUniform is the zero
// value, so the zero Primary in a Config means uniform timing.
const (
	PrimaryUniform PrimaryFamily = iota
	PrimaryExpGrowth
	PrimaryCustom
)

func (f PrimaryFamily) String() string {
	switch f {
	case PrimaryUniform:
		return "uniform"
	case PrimaryExpGrowth:
		return "expgrowth"
	default:
		return "custom"
	}
}

// Primary is the density of the primary event time within the
// window. Density must integrate to 1 over [0, pwindow]; that is a
// caller contract, New only checks non-negativity at the window
// endpoints. Rand is optional; without it the sampler inverts the
// density numerically.
type Primary struct {
	Family  PrimaryFamily
	Density func(p, pwindow float64) float64
	Rand    func(src rand.Source, pwindow float64) float64

	// GrowthRate is only meaningful for PrimaryExpGrowth.
	GrowthRate float64
}

// UniformPrimary returns the uniform primary event density over
// [0, pwindow]. A zero width window is the point mass at 0.
func UniformPrimary() Primary {
	return Primary{
		Family: PrimaryUniform,
		Density: func(p, w float64) float64 {
			if w == 0 {
				if p == 0 {
					return 1
				}

				return 0
			}

			if p < 0 || p > w {
				return 0
			}

			return 1 / w
		},
		Rand: func(src rand.Source, w float64) float64 {
			if w == 0 {
				return 0
			}

			return distuv.Uniform{Min: 0, Max: w, Src: src}.Rand()
		},
	}
}

// ExpGrowthPrimary returns the exponential growth primary event
// density with growth rate r, the timing of a primary event riding
// an epidemic growing at rate r within the window. Rates within
// expGrowthTinyRate of zero use the first order uniform limit so
// the density never divides by a vanishing expm1. A non-finite
// rate yields a Primary that New rejects.
func ExpGrowthPrimary(r float64) Primary {
	if math.IsNaN(r) || math.IsInf(r, 0) {
		return Primary{Family: PrimaryExpGrowth, GrowthRate: r}
	}

	return Primary{
		Family:     PrimaryExpGrowth,
		GrowthRate: r,
		Density: func(p, w float64) float64 {
			if w == 0 {
				if p == 0 {
					return 1
				}

				return 0
			}

			if p < 0 || p > w {
				return 0
			}

			if math.Abs(r) < expGrowthTinyRate {
				// first order expansion of r e^{rp} / expm1(rw)
				return (1 + r*(p-w/2)) / w
			}

			return r * math.Exp(r*p) / math.Expm1(r*w)
		},
		Rand: func(src rand.Source, w float64) float64 {
			if w == 0 {
				return 0
			}

			u := distuv.Uniform{Min: 0, Max: 1, Src: src}.Rand()
			if math.Abs(r) < expGrowthTinyRate {
				return u * w
			}

			// exact inverse of (e^{rp} - 1) / (e^{rw} - 1)
			return math.Log1p(u*math.Expm1(r*w)) / r
		},
	}
}

// CustomPrimary wraps a caller supplied primary density and
// optional exact sampler. The density must integrate to 1 over
// [0, pwindow]; the engine does not verify that and a wrong
// density silently gives wrong answers.
func CustomPrimary(density func(p, pwindow float64) float64,
	rnd func(src rand.Source, pwindow float64) float64,
) Primary {
	return Primary{
		Family:  PrimaryCustom,
		Density: density,
		Rand:    rnd,
	}
}
