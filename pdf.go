// -*- tab-width:2 -*-

package censored

// This file derives the censored PDF from the censored CDF by
// finite differences; most of the closed form CDF solutions have
// no paired closed form density.

import (
	"math"

	"github.com/pkg/errors"
)

// pdfStep is the finite difference step at x: relative to the
// magnitude of x with an absolute floor so it never vanishes at
// x = 0.
func pdfStep(x float64) float64 {
	return math.Max(pdfStepAbsFloor, pdfStepRel*math.Abs(x))
}

// PDF evaluates the truncated censored PDF at each point by a
// central difference of the CDF, one sided where the domain
// boundary or the truncation bound cuts the step short. Values are
// clamped non-negative; points outside [0, D] are 0.
func (dst *Dist) PDF(xs []float64) ([]float64, error) {
	norm, err := dst.normConst()
	if err != nil {
		return nil, err
	}

	out := make([]float64, len(xs))

	for i, x := range xs {
		if x < 0 || x > dst.d || math.IsNaN(x) {
			continue
		}

		h := pdfStep(x)

		lo := math.Max(0, x-h)
		hi := x + h

		if hi > dst.d {
			hi = dst.d
		}

		flo, err := dst.truncCDF(lo, norm)
		if err != nil {
			return nil, errors.Wrapf(err, "point %d of %d", i, len(xs))
		}

		fhi, err := dst.truncCDF(hi, norm)
		if err != nil {
			return nil, errors.Wrapf(err, "point %d of %d", i, len(xs))
		}

		v := (fhi - flo) / (hi - lo)
		if v < 0 {
			v = 0
		}

		out[i] = v
	}

	return out, nil
}

// CensoredPDF is the one shot form of Dist.PDF.
func CensoredPDF(xs []float64, cfg Config) ([]float64, error) {
	dst, err := New(cfg)
	if err != nil {
		return nil, err
	}

	return dst.PDF(xs)
}
