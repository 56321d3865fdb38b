// -*- tab-width:2 -*-

package censored

import (
	"github.com/pkg/errors"
)

// Sentinel errors for the numerical layers. Callers can test with
// errors.Is; the wrapped versions carry the diagnostic context.
var (
	// ErrNoConvergence means the quadrature refinements did not
	// agree within tolerance at the maximum node count.
	ErrNoConvergence = errors.New("quadrature did not converge")

	// ErrBracketing means the quantile inverter could not bracket
	// the target probability, e.g. because a custom CDF is not
	// monotonically increasing.
	ErrBracketing = errors.New("could not bracket target probability")

	// ErrTruncationMass means the untruncated CDF at the truncation
	// bound is essentially zero, so normalizing by it is meaningless.
	ErrTruncationMass = errors.New("near zero probability mass below truncation bound")

	// ErrSamplerExhausted means the rejection sampler hit its
	// attempt budget, which happens when truncation is near total.
	ErrSamplerExhausted = errors.New("rejection sampler attempt budget exhausted")
)
