// -*- tab-width:2 -*-

package censored

import (
	"math"
	"testing"
)

// simpson numerically integrates f over [a, b] for checking the
// closed form CDF integrals.
func simpson(f func(float64) float64, a, b float64, n int) float64 {
	if n%2 == 1 {
		n++
	}

	h := (b - a) / float64(n)
	sum := f(a) + f(b)

	for i := 1; i < n; i++ {
		x := a + float64(i)*h
		if i%2 == 1 {
			sum += 4 * f(x)
		} else {
			sum += 2 * f(x)
		}
	}

	return sum * h / 3
}

// TestCdfIntClosedForms checks every named delay family's closed
// form CDF integral against straight Simpson integration of the
// CDF.
func TestCdfIntClosedForms(t *testing.T) {
	delays := map[string]Delay{
		"gamma":       GammaDelay(1.77, 0.44),
		"gamma2":      GammaDelay(2.5, 1.5),
		"lognormal":   LogNormalDelay(0, 1),
		"lognormal2":  LogNormalDelay(1.5, 0.5),
		"weibull":     WeibullDelay(1.5, 2),
		"weibull2":    WeibullDelay(1.2, 3),
		"exponential": ExponentialDelay(0.7),
	}

	intervals := [][2]float64{{0, 1}, {0, 4}, {0.5, 2.5}, {3, 9}}

	for name, d := range delays {
		if d.cdfInt == nil {
			t.Fatalf("%s: no closed form CDF integral", name)
		}

		for _, iv := range intervals {
			got := d.cdfInt(iv[0], iv[1])
			want := simpson(d.CDF, iv[0], iv[1], 4000)

			if math.Abs(got-want) > 1e-6 {
				t.Errorf("%s cdfInt(%g, %g) = %g, Simpson says %g",
					name, iv[0], iv[1], got, want)
			}
		}
	}
}

// TestDelayCDFSanity checks the distuv backed CDFs behave like
// CDFs at a few points.
func TestDelayCDFSanity(t *testing.T) {
	for _, d := range []Delay{
		GammaDelay(1.77, 0.44),
		LogNormalDelay(0, 1),
		WeibullDelay(1.5, 2),
		ExponentialDelay(0.7),
		CustomDelay(func(q float64) float64 {
			if q <= 0 {
				return 0
			}

			return 1 - math.Exp(-q)
		}),
	} {
		last := 0.0

		for _, q := range []float64{0.1, 0.5, 1, 2, 5, 20} {
			v := d.CDF(q)
			if v < 0 || v > 1 {
				t.Errorf("%v CDF(%g) = %g out of [0,1]", d.Family, q, v)
			}

			if v < last {
				t.Errorf("%v CDF decreasing at %g", d.Family, q)
			}

			last = v
		}
	}
}
