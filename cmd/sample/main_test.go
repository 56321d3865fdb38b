// -*- tab-width:2 -*-

package main

import (
	"testing"
)

// TestCdfGridReachesBound checks fractional step widths still put
// the final grid point on the truncation bound.
func TestCdfGridReachesBound(t *testing.T) {
	cases := []struct {
		args dargs
		n    int
		last float64
	}{
		{dargs{SWindow: 1, D: 8}, 8, 8},
		{dargs{SWindow: 0.1, D: 8}, 80, 8},
		{dargs{SWindow: 0.3, D: 8}, 26, 7.8},
		{dargs{SWindow: 0, D: 8}, 10, 8},
		{dargs{SWindow: 1, D: 0}, 10, 10},
	}

	for _, c := range cases {
		grid := cdfGrid(c.args)
		if len(grid) != c.n {
			t.Errorf("swindow=%g D=%g: %d grid points, want %d",
				c.args.SWindow, c.args.D, len(grid), c.n)

			continue
		}

		if grid[len(grid)-1] != c.last {
			t.Errorf("swindow=%g D=%g: last point %g, want %g",
				c.args.SWindow, c.args.D, grid[len(grid)-1], c.last)
		}
	}
}
