// -*- tab-width:2 -*-

package censored

// This file has the truncation and normalization layer over the
// raw censored CDF, and the vectorized CDF entry point.

import (
	"math"

	"github.com/pkg/errors"
)

// normConst is the normalization constant under truncation: the
// raw CDF at the truncation bound, or exactly 1 when untruncated.
// A near zero constant means essentially all mass lies beyond D,
// which is a configuration error, not something to divide by.
func (dst *Dist) normConst() (float64, error) {
	if math.IsInf(dst.d, 1) {
		return 1, nil
	}

	norm, err := dst.rawCDF(dst.d)
	if err != nil {
		return 0, err
	}

	if norm < normEps {
		return 0, errors.Wrapf(ErrTruncationMass,
			"raw CDF at D=%g is %g", dst.d, norm)
	}

	return norm, nil
}

// truncCDF is the truncated censored CDF at one quantile given the
// already computed normalization constant. Quantiles at or past
// the truncation bound are exactly 1. A NaN quantile is 0, like
// q <= 0, on both strategies; the closed forms would otherwise
// carry it through into the output.
func (dst *Dist) truncCDF(q, norm float64) (float64, error) {
	if math.IsNaN(q) {
		return 0, nil
	}

	if q >= dst.d {
		return 1, nil
	}

	raw, err := dst.rawCDF(q)
	if err != nil {
		return 0, err
	}

	return clamp01(raw / norm), nil
}

// CDF evaluates the truncated primary event censored CDF at each
// quantile. Each element is computed independently; the call
// either fully succeeds or fails as a whole.
func (dst *Dist) CDF(qs []float64) ([]float64, error) {
	norm, err := dst.normConst()
	if err != nil {
		return nil, err
	}

	out := make([]float64, len(qs))

	for i, q := range qs {
		v, err := dst.truncCDF(q, norm)
		if err != nil {
			return nil, errors.Wrapf(err, "quantile %d of %d", i, len(qs))
		}

		out[i] = v
	}

	return out, nil
}

// CensoredCDF is the one shot form of Dist.CDF: build the
// distribution from cfg and evaluate it at qs.
func CensoredCDF(qs []float64, cfg Config) ([]float64, error) {
	dst, err := New(cfg)
	if err != nil {
		return nil, err
	}

	return dst.CDF(qs)
}
