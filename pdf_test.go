// -*- tab-width:2 -*-

package censored

import (
	"math"
	"testing"
)

// TestPDFMass checks the finite difference PDF integrates to about
// 1 over [0, D] for a truncated distribution.
func TestPDFMass(t *testing.T) {
	dst, err := New(Config{Delay: GammaDelay(1.77, 0.44), PWindow: 1, D: 8})
	if err != nil {
		t.Fatal(err)
	}

	const step = 0.01

	var xs []float64
	for x := 0.0; x <= 8; x += step {
		xs = append(xs, x)
	}

	pdf, err := dst.PDF(xs)
	if err != nil {
		t.Fatal(err)
	}

	var mass float64

	for i := 1; i < len(pdf); i++ {
		mass += step * (pdf[i] + pdf[i-1]) / 2
	}

	if math.Abs(mass-1) > 1e-2 {
		t.Errorf("PDF mass over [0, D] = %g, want about 1", mass)
	}
}

// TestPDFNonNegativeAndZeroOutside checks clamping and the domain
// edges.
func TestPDFNonNegativeAndZeroOutside(t *testing.T) {
	dst, err := New(Config{Delay: LogNormalDelay(0, 1), PWindow: 1, D: 5})
	if err != nil {
		t.Fatal(err)
	}

	xs := []float64{-1, -0.001, 0, 0.5, 1, 3, 4.999, 5.5, 10}

	pdf, err := dst.PDF(xs)
	if err != nil {
		t.Fatal(err)
	}

	for i, x := range xs {
		if pdf[i] < 0 {
			t.Errorf("PDF(%g) = %g negative", x, pdf[i])
		}

		if (x < 0 || x > 5) && pdf[i] != 0 {
			t.Errorf("PDF(%g) = %g outside the support, want 0", x, pdf[i])
		}
	}
}

// TestPDFMatchesCDFSlope spot checks the difference quotient
// against a wider secant of the CDF.
func TestPDFMatchesCDFSlope(t *testing.T) {
	dst, err := New(Config{Delay: GammaDelay(2, 1), PWindow: 1})
	if err != nil {
		t.Fatal(err)
	}

	const wide = 1e-3

	for _, x := range []float64{0.5, 1, 2, 4} {
		pdf, err := dst.PDF([]float64{x})
		if err != nil {
			t.Fatal(err)
		}

		cdf, err := dst.CDF([]float64{x - wide, x + wide})
		if err != nil {
			t.Fatal(err)
		}

		secant := (cdf[1] - cdf[0]) / (2 * wide)
		if math.Abs(pdf[0]-secant) > 1e-4 {
			t.Errorf("x=%g: PDF %g vs CDF secant %g", x, pdf[0], secant)
		}
	}
}
