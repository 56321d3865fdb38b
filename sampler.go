// -*- tab-width:2 -*-

package censored

// This file has the quantile inverter and the random variate
// generator for primary event censored delays.

import (
	"math"

	count "github.com/jayalane/go-counter"
	"github.com/pkg/errors"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/integrate/quad"
	"gonum.org/v1/gonum/stat/distuv"
)

// invert finds x in [0, hi] with cdf(x) = u by bisection. A +Inf
// hi means the upper bracket is found first by doubling from 1;
// running out of doublings is a bracketing failure, the usual sign
// of a custom CDF that is not actually increasing to 1.
func invert(cdf func(x float64) (float64, error), u, hi float64) (float64, error) {
	if math.IsInf(hi, 1) {
		hi = 1

		for i := 0; ; i++ {
			v, err := cdf(hi)
			if err != nil {
				return 0, err
			}

			if v >= u {
				break
			}

			if i == invMaxBracket {
				return 0, errors.Wrapf(ErrBracketing,
					"CDF(%g) = %g still below target %g", hi, v, u)
			}

			hi *= 2
		}
	} else {
		v, err := cdf(hi)
		if err != nil {
			return 0, err
		}

		if v < u {
			return 0, errors.Wrapf(ErrBracketing,
				"CDF(%g) = %g below target %g", hi, v, u)
		}
	}

	lo := 0.0

	for i := 0; i < invMaxBisect && hi-lo > invTolX; i++ {
		mid := 0.5 * (lo + hi)

		v, err := cdf(mid)
		if err != nil {
			return 0, err
		}

		if v < u {
			lo = mid
		} else {
			hi = mid
		}
	}

	return 0.5 * (lo + hi), nil
}

// Quantile inverts the truncated censored CDF at each probability
// in (0, 1).
func (dst *Dist) Quantile(us []float64) ([]float64, error) {
	norm, err := dst.normConst()
	if err != nil {
		return nil, err
	}

	cdf := func(x float64) (float64, error) {
		return dst.truncCDF(x, norm)
	}

	out := make([]float64, len(us))

	for i, u := range us {
		if math.IsNaN(u) || u <= 0 || u >= 1 {
			return nil, errors.Errorf(
				"target probability %g at %d is outside (0, 1)", u, i)
		}

		x, err := invert(cdf, u, dst.d)
		if err != nil {
			return nil, errors.Wrapf(err, "probability %d of %d", i, len(us))
		}

		out[i] = x
	}

	return out, nil
}

// primaryCDF numerically accumulates the primary density from 0 to
// x, for inverting custom primaries that have no exact sampler.
func (dst *Dist) primaryCDF(x float64) (float64, error) {
	w := dst.cfg.PWindow
	if x <= 0 {
		return 0, nil
	}

	if x >= w {
		return 1, nil
	}

	f := func(p float64) float64 {
		return dst.cfg.Primary.Density(p, w)
	}

	prev := quad.Fixed(f, 0, x, quadMinNodes, nil, 0)

	var delta float64

	for n := 2 * quadMinNodes; n <= quadMaxNodes; n *= 2 {
		cur := quad.Fixed(f, 0, x, n, nil, 0)

		delta = math.Abs(cur - prev)
		if delta <= quadTol || delta <= quadTol*math.Abs(cur) {
			return clamp01(cur), nil
		}

		prev = cur
	}

	return 0, errors.Wrapf(ErrNoConvergence,
		"primary CDF at p=%g pwindow=%g, last refinement moved %g",
		x, w, delta)
}

// drawPrimary draws one primary event time within the window,
// exactly when the primary has a sampler and by inversion
// otherwise.
func (dst *Dist) drawPrimary(src rand.Source, uni *distuv.Uniform) (float64, error) {
	if dst.cfg.Primary.Rand != nil {
		return dst.cfg.Primary.Rand(src, dst.cfg.PWindow), nil
	}

	if dst.cfg.PWindow == 0 {
		return 0, nil
	}

	return invert(dst.primaryCDF, uni.Rand(), dst.cfg.PWindow)
}

// drawDelay draws one delay, exactly when the delay distribution
// has a sampler and by inversion of its plain CDF otherwise.
func (dst *Dist) drawDelay(src rand.Source, uni *distuv.Uniform) (float64, error) {
	if dst.cfg.Delay.Rand != nil {
		return dst.cfg.Delay.Rand(src), nil
	}

	cdf := func(x float64) (float64, error) {
		return clamp01(dst.cfg.Delay.CDF(x)), nil
	}

	return invert(cdf, uni.Rand(), math.Inf(1))
}

// Sample draws n observed delays: a primary event time plus a
// delay, floored into an SWindow wide bucket when interval
// censoring is on, redrawn while the total falls past the
// truncation bound. The redraw budget is bounded; hitting it means
// truncation leaves almost no acceptable mass and the call fails
// rather than spinning.
func (dst *Dist) Sample(src rand.Source, n int) ([]float64, error) {
	if n < 0 {
		return nil, errors.Errorf("sample size %d is negative", n)
	}

	uni := &distuv.Uniform{Min: 0, Max: 1, Src: src}
	out := make([]float64, 0, n)

	for len(out) < n {
		accepted := false

		var attempts int

		for attempts = 1; attempts <= maxDrawAttempts; attempts++ {
			count.Incr("sampler_draw")

			p, err := dst.drawPrimary(src, uni)
			if err != nil {
				return nil, err
			}

			delay, err := dst.drawDelay(src, uni)
			if err != nil {
				return nil, err
			}

			total := p + delay
			if total >= dst.d {
				count.Incr("sampler_reject")

				continue
			}

			if sw := dst.cfg.SWindow; sw > 0 {
				total = math.Floor(total/sw) * sw
			}

			out = append(out, total)
			accepted = true

			break
		}

		count.MarkDistribution("sampler_attempts", float64(attempts))

		if !accepted {
			count.Incr("sampler_exhausted")

			return nil, errors.Wrapf(ErrSamplerExhausted,
				"%d attempts for draw %d with D=%g", maxDrawAttempts,
				len(out), dst.d)
		}
	}

	return out, nil
}

// SampleCensored is the one shot form of Dist.Sample.
func SampleCensored(src rand.Source, n int, cfg Config) ([]float64, error) {
	dst, err := New(cfg)
	if err != nil {
		return nil, err
	}

	return dst.Sample(src, n)
}
