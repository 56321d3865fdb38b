// -*- tab-width:2 -*-

package censored

// This file has the analytic solution registry. A miss here is a
// normal outcome, not a problem: the dispatch layer just uses the
// numerical integration engine instead.

// familyPair keys the registry on the two family tags.
type familyPair struct {
	delay   DelayFamily
	primary PrimaryFamily
}

// binder turns a (delay, primary, pwindow) triple into the closed
// form raw censored CDF.
type binder func(d Delay, p Primary, pwindow float64) func(q float64) float64

// analyticSolutions is the static closed form table. Every named
// delay family has one against the uniform primary; exponential
// growth primaries have no closed form here and integrate
// numerically.
var analyticSolutions = map[familyPair]binder{
	{DelayGamma, PrimaryUniform}:       bindUniformPrimary,
	{DelayLogNormal, PrimaryUniform}:   bindUniformPrimary,
	{DelayWeibull, PrimaryUniform}:     bindUniformPrimary,
	{DelayExponential, PrimaryUniform}: bindUniformPrimary,
}

// lookupAnalytic reports the closed form censored CDF for the
// family pair if the table has one and the delay carries its CDF
// integral helper. It never fails; absence just means numeric.
func lookupAnalytic(d Delay, p Primary, pwindow float64) (func(q float64) float64, bool) {
	bind, ok := analyticSolutions[familyPair{d.Family, p.Family}]
	if !ok || d.cdfInt == nil {
		return nil, false
	}

	return bind(d, p, pwindow), true
}

// bindUniformPrimary is the closed form for a uniform primary:
// F_cens(q) = (1/w) * integral of F over [q-w, q], with the lower
// bound clamped at 0 where F vanishes.
func bindUniformPrimary(d Delay, _ Primary, pwindow float64) func(q float64) float64 {
	return func(q float64) float64 {
		if q <= 0 {
			return 0
		}

		if pwindow == 0 {
			return clamp01(d.CDF(q))
		}

		lo := q - pwindow
		if lo < 0 {
			lo = 0
		}

		return clamp01(d.cdfInt(lo, q) / pwindow)
	}
}
