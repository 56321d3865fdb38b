// -*- tab-width:2 -*-

// Package censored computes primary event censored delay
// distributions: given a delay distribution between a primary event
// (say infection) and a secondary event (say symptom onset), and a
// window for when the primary event happened, it gives the
// distribution of the observed delay, optionally censored into
// reporting intervals and truncated at a maximum follow up time.
package censored

import (
	"sync"

	count "github.com/jayalane/go-counter"
	ll "github.com/jayalane/go-lll"
)

var (
	ml     *ll.Lll
	mlOnce sync.Once
)

// Tunables for the numerical layers.
const (
	quadMinNodes = 16   // Gauss-Legendre nodes for the first pass
	quadMaxNodes = 512  // give up past this many nodes
	quadTol      = 1e-9 // abs/rel agreement between refinements

	pdfStepRel      = 1e-4 // finite difference step relative to |x|
	pdfStepAbsFloor = 1e-6 // so the step is never zero at x = 0

	invTolX       = 1e-10 // bisection interval width to stop at
	invMaxBisect  = 200
	invMaxBracket = 64 // doublings before giving up on a bracket

	normEps = 1e-10 // below this the truncation mass is "zero"

	maxDrawAttempts = 10_000 // rejection sampling budget per draw

	expGrowthTinyRate = 1e-10 // below this use the uniform limit
)

// Init must be called before using the package; it inits the
// logger and starts the counter machinery. New calls it for you.
// InitCounters is idempotent, so a caller that already started
// go-counter itself is fine.
func Init() {
	mlOnce.Do(func() {
		ml = ll.Init("CENSORED", "none")

		count.InitCounters()
	})
}

// InitWithLogger is an init where you can
// pass in the go-lll logger.
func InitWithLogger(lg *ll.Lll) {
	mlOnce.Do(func() {
		ml = lg

		count.InitCounters()
	})
}

// clamp01 keeps a delay CDF evaluation inside [0, 1] against
// floating point overshoot.
func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}

	if v > 1 {
		return 1
	}

	return v
}
