// -*- tab-width:2 -*-

package censored

import (
	"math"
	"strings"
	"testing"
)

// TestValidation pins the fail fast argument checks in New.
func TestValidation(t *testing.T) {
	gamma := GammaDelay(2, 1)

	cases := []struct {
		name string
		cfg  Config
		want string
	}{
		{
			"no delay CDF",
			Config{},
			"delay CDF is required",
		},
		{
			"negative pwindow",
			Config{Delay: gamma, PWindow: -1},
			"pwindow",
		},
		{
			"negative swindow",
			Config{Delay: gamma, PWindow: 1, SWindow: -2},
			"swindow",
		},
		{
			"negative truncation",
			Config{Delay: gamma, PWindow: 1, D: -5},
			"truncation bound",
		},
		{
			"missing growth rate",
			Config{
				Delay:   gamma,
				Primary: Primary{Family: PrimaryExpGrowth},
				PWindow: 1,
			},
			"growth rate",
		},
		{
			"NaN growth rate",
			Config{
				Delay:   gamma,
				Primary: ExpGrowthPrimary(math.NaN()),
				PWindow: 1,
			},
			"growth rate",
		},
		{
			"custom primary without density",
			Config{
				Delay:   gamma,
				Primary: Primary{Family: PrimaryCustom},
				PWindow: 1,
			},
			"density",
		},
		{
			"CDF above one",
			Config{
				Delay:   CustomDelay(func(q float64) float64 { return 2 * q }),
				PWindow: 1,
			},
			"not a probability",
		},
		{
			"decreasing CDF",
			Config{
				Delay:   CustomDelay(func(q float64) float64 { return 1 / (1 + q) }),
				PWindow: 1,
			},
			"decreasing",
		},
		{
			"negative primary density",
			Config{
				Delay: gamma,
				Primary: CustomPrimary(
					func(p, w float64) float64 { return -1 }, nil),
				PWindow: 1,
			},
			"negative",
		},
	}

	for _, c := range cases {
		_, err := New(c.cfg)
		if err == nil {
			t.Errorf("%s: expected an error", c.name)

			continue
		}

		if !strings.Contains(err.Error(), c.want) {
			t.Errorf("%s: error %q does not mention %q", c.name, err, c.want)
		}
	}
}

// TestZeroConfigDefaults checks the documented zero value
// semantics: uniform primary, no truncation.
func TestZeroConfigDefaults(t *testing.T) {
	dst, err := New(Config{Delay: GammaDelay(2, 1), PWindow: 1})
	if err != nil {
		t.Fatal(err)
	}

	if dst.cfg.Primary.Family != PrimaryUniform || dst.cfg.Primary.Density == nil {
		t.Error("zero Primary did not resolve to uniform")
	}

	if !math.IsInf(dst.d, 1) {
		t.Errorf("zero D resolved to %g, want +Inf", dst.d)
	}

	if dst.kind != strategyAnalytic {
		t.Error("gamma with uniform primary should be analytic")
	}
}

// TestFamilyStrings keeps the tag names stable for logs.
func TestFamilyStrings(t *testing.T) {
	if DelayGamma.String() != "gamma" || DelayCustom.String() != "custom" {
		t.Error("delay family names changed")
	}

	if PrimaryExpGrowth.String() != "expgrowth" {
		t.Error("primary family names changed")
	}
}
