// Package interp implements Lagrange interpolation of point sets by
// polynomials, with precision reporting on the result.
package interp

import (
	"errors"
	"fmt"

	"github.com/lagrango/lagrango/poly"
	"github.com/lagrango/lagrango/utils"
)

var (
	// ErrTooFewPoints is returned by Interpolate when fewer than two
	// points are provided.
	ErrTooFewPoints = errors.New("at least two points are required for interpolation")

	// ErrDistinctNodes is returned by Interpolate when two points share
	// an x-coordinate.
	ErrDistinctNodes = errors.New("interpolating points must have unique x-coordinates")
)

// Interpolate returns the polynomial passing through all the points
// (xs[i], ys[i]), named "ip".
//
// At least two points are required, and the x-coordinates must be
// pairwise distinct; violations are reported as a wrapped
// [ErrTooFewPoints] or [ErrDistinctNodes], checked before any work is
// done. If the slices differ in length, the extra values at the end of
// the longer one are ignored, but the distinctness requirement covers
// all of xs.
//
// The result is the Lagrange interpolation polynomial, of degree at
// most n-1 for n points; canonicalization can lower the degree when the
// points happen to lie on a lower-degree polynomial.
func Interpolate(xs, ys []float64) (p poly.Poly, err error) {

	if len(xs) <= 1 || len(ys) <= 1 {
		return poly.Poly{}, fmt.Errorf("cannot Interpolate: %w", ErrTooFewPoints)
	}

	if !utils.AllDistinct(xs) {
		return poly.Poly{}, fmt.Errorf("cannot Interpolate: %w", ErrDistinctNodes)
	}

	n := utils.Min(len(xs), len(ys))

	for i := 0; i < n; i++ {
		term := poly.NewPoly([]float64{ys[i]})
		for k := 0; k < n; k++ {
			if k == i {
				continue
			}
			term.MulInPlace(poly.NewPoly([]float64{-xs[k], 1}))
			term.DivScalarInPlace(xs[i] - xs[k])
		}
		p.AddInPlace(term)
	}

	p.SetName("ip")

	return p, nil
}
