// -*- tab-width:2 -*-

package censored

// This file has the Config validation and the choice between the
// analytic and the numerical evaluation strategy.

import (
	"math"

	count "github.com/jayalane/go-counter"
	"github.com/pkg/errors"
)

// Config describes a primary event censored delay distribution.
// The zero values carry documented meanings: a zero Primary is
// uniform timing, PWindow 0 is a deterministic primary event at
// time 0, SWindow 0 is no secondary interval censoring, and D 0
// (or +Inf) is no truncation.
type Config struct {
	// Delay is the delay distribution. Required.
	Delay Delay

	// Primary is the primary event timing density over
	// [0, PWindow]. The zero value means uniform.
	Primary Primary

	// PWindow is the primary event window width, >= 0.
	PWindow float64

	// SWindow is the secondary censoring interval width, >= 0,
	// used only by the sampler.
	SWindow float64

	// D is the truncation bound for observed delays. 0 or +Inf
	// means untruncated; otherwise it must be positive.
	D float64
}

// strategy tags how the raw (untruncated) censored CDF is
// computed.
type strategy int

const (
	strategyNumeric strategy = iota
	strategyAnalytic
)

// Dist is a resolved primary event censored delay distribution.
// It is immutable once built; evaluation happens lazily in the
// CDF, PDF, Quantile and Sample methods.
type Dist struct {
	cfg  Config
	kind strategy

	// analytic is set when kind is strategyAnalytic.
	analytic func(q float64) float64

	// d is the effective truncation bound, +Inf when untruncated.
	d float64
}

// sentinel points where the delay CDF must already behave like a
// CDF; catches malformed custom distributions before any
// integration starts.
var cdfSentinels = [2]float64{0.5, 2}

// New validates the config and resolves the evaluation strategy.
func New(cfg Config) (*Dist, error) {
	Init()

	if cfg.Delay.CDF == nil {
		return nil, errors.New("delay CDF is required")
	}

	if cfg.PWindow < 0 || math.IsNaN(cfg.PWindow) || math.IsInf(cfg.PWindow, 0) {
		return nil, errors.Errorf("pwindow must be finite and >= 0, got %g", cfg.PWindow)
	}

	if cfg.SWindow < 0 || math.IsNaN(cfg.SWindow) || math.IsInf(cfg.SWindow, 0) {
		return nil, errors.Errorf("swindow must be finite and >= 0, got %g", cfg.SWindow)
	}

	d := cfg.D
	if d == 0 {
		d = math.Inf(1)
	}

	if d < 0 || math.IsNaN(d) {
		return nil, errors.Errorf("truncation bound D must be positive, got %g", cfg.D)
	}

	if err := resolvePrimary(&cfg); err != nil {
		return nil, err
	}

	var last float64

	for i, s := range cdfSentinels {
		v := cfg.Delay.CDF(s)
		if math.IsNaN(v) || v < 0 || v > 1 {
			return nil, errors.Errorf(
				"delay CDF(%g) = %g is not a probability", s, v)
		}

		if i > 0 && v < last {
			return nil, errors.Errorf(
				"delay CDF is decreasing between %g and %g",
				cdfSentinels[0], s)
		}

		last = v
	}

	for _, p := range []float64{0, cfg.PWindow} {
		v := cfg.Primary.Density(p, cfg.PWindow)
		if math.IsNaN(v) || v < 0 {
			return nil, errors.Errorf(
				"primary density(%g) = %g is negative or NaN", p, v)
		}
	}

	dist := &Dist{cfg: cfg, d: d}

	if f, ok := lookupAnalytic(cfg.Delay, cfg.Primary, cfg.PWindow); ok {
		dist.kind = strategyAnalytic
		dist.analytic = f

		ml.Ln("Using analytic censored CDF", cfg.Delay.Family.String(),
			cfg.Primary.Family.String())
	} else {
		dist.kind = strategyNumeric

		ml.Ln("Using numeric censored CDF", cfg.Delay.Family.String(),
			cfg.Primary.Family.String())
	}

	return dist, nil
}

// resolvePrimary fills in the uniform default and rejects an
// exponential growth primary that was built without a usable
// growth rate.
func resolvePrimary(cfg *Config) error {
	if cfg.Primary.Density != nil {
		return nil
	}

	switch cfg.Primary.Family {
	case PrimaryUniform:
		cfg.Primary = UniformPrimary()

		return nil
	case PrimaryExpGrowth:
		return errors.Errorf(
			"exponential growth primary needs a finite growth rate: got %g, use ExpGrowthPrimary(r)",
			cfg.Primary.GrowthRate)
	default:
		return errors.New("custom primary needs a density")
	}
}

// rawCDF is the untruncated censored CDF at one quantile,
// dispatched over the resolved strategy.
func (dst *Dist) rawCDF(q float64) (float64, error) {
	switch dst.kind {
	case strategyAnalytic:
		count.Incr("dist_cdf_analytic")

		return dst.analytic(q), nil
	default:
		count.Incr("dist_cdf_numeric")

		return dst.numericCDF(q)
	}
}
