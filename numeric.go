// -*- tab-width:2 -*-

package censored

// This file has the numerical integration engine for the censored
// CDF, used whenever the analytic registry has no entry for the
// family pair.

import (
	"math"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/integrate/quad"
)

// numericCDF computes the raw censored CDF
//
//	F_cens(q) = integral over p in [0, pwindow] of
//	            F_delay(q - p) * f_primary(p) dp
//
// for one quantile by Gauss-Legendre quadrature, doubling the node
// count until two refinements agree within quadTol. The integrand
// vanishes for p > q, so the upper bound is min(q, pwindow) and
// the integrand stays smooth on the interval.
func (dst *Dist) numericCDF(q float64) (float64, error) {
	if q <= 0 || math.IsNaN(q) {
		return 0, nil
	}

	w := dst.cfg.PWindow
	if w == 0 {
		// deterministic primary event at time 0
		return clamp01(dst.cfg.Delay.CDF(q)), nil
	}

	if math.IsInf(q, 1) {
		return 1, nil
	}

	hi := math.Min(q, w)
	f := func(p float64) float64 {
		return clamp01(dst.cfg.Delay.CDF(q-p)) * dst.cfg.Primary.Density(p, w)
	}

	prev := quad.Fixed(f, 0, hi, quadMinNodes, nil, 0)

	var delta float64

	for n := 2 * quadMinNodes; n <= quadMaxNodes; n *= 2 {
		cur := quad.Fixed(f, 0, hi, n, nil, 0)

		delta = math.Abs(cur - prev)
		if delta <= quadTol || delta <= quadTol*math.Abs(cur) {
			return clamp01(cur), nil
		}

		prev = cur
	}

	return 0, errors.Wrapf(ErrNoConvergence,
		"censored CDF at q=%g pwindow=%g, last refinement moved %g",
		q, w, delta)
}
