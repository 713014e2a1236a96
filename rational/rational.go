// Package rational implements best rational approximation of float64
// values under a denominator bound, via continued fraction convergents.
package rational

import (
	"fmt"
	"math"
	"math/big"
	"strconv"

	"github.com/lagrango/lagrango/utils"
	"github.com/lagrango/lagrango/utils/bignum"
)

// DefaultMaxDenominator is the denominator bound applied when no tighter
// bound is needed, e.g. when rendering polynomial coefficients.
const DefaultMaxDenominator int64 = 1_000_000

// scale is the fixed denominator of the initial integer fraction from
// which the continued fraction expansion starts. Inputs are effectively
// snapped to a grid of 1/scale before being approximated.
const scale int64 = 1e12

// Rational is a fraction Num/Den in lowest terms with Den >= 1.
// The sign is carried by the numerator.
type Rational struct {
	Num int64
	Den int64
}

// String returns "Num" when Den is 1 and "Num/Den" otherwise.
func (r Rational) String() string {
	if r.Den == 1 {
		return strconv.FormatInt(r.Num, 10)
	}
	return strconv.FormatInt(r.Num, 10) + "/" + strconv.FormatInt(r.Den, 10)
}

// Float64 returns the value of r as a float64.
func (r Rational) Float64() float64 {
	return float64(r.Num) / float64(r.Den)
}

// Approximate returns the fraction with denominator at most maxDen that
// is closest to x. When two fractions are equally close, the one with
// the smaller denominator is returned.
//
// x is first expressed as an integer fraction over a fixed 1e12 scale,
// so the answer is exact for inputs that are themselves fractions over
// a divisor of that scale, and accurate to the grid otherwise. Inputs
// with |x|*1e12 beyond the int64 range saturate. x must be finite and
// maxDen at least 1, else Approximate panics.
func Approximate(x float64, maxDen int64) Rational {

	if maxDen < 1 {
		panic(fmt.Errorf("cannot Approximate: maxDen must be at least 1 but is %d", maxDen))
	}

	if math.IsNaN(x) || math.IsInf(x, 0) {
		panic(fmt.Errorf("cannot Approximate: x must be finite but is %v", x))
	}

	// Integers pass through unchanged.
	if math.Trunc(x) == x {
		n, _ := bignum.NewFloat(x, 64).Int64()
		return Rational{Num: n, Den: 1}
	}

	// Discard the sign so the expansion works on positive values.
	var sign int64 = 1
	if x < 0 {
		sign = -1
		x = -x
	}

	// Initial approximation with a large denominator, in lowest terms.
	n := roundScaled(x)
	d := scale
	g := utils.GCD(n, d)
	n /= g
	d /= g
	if d <= maxDen {
		return Rational{Num: sign * n, Den: d}
	}

	// Walk the continued fraction convergents p1/q1 of n/d, stopping
	// when the next denominator would exceed the bound. The reduced d
	// is larger than maxDen, so the bound check fires before the
	// Euclidean remainder can reach zero.
	var p0, q0, p1, q1 int64 = 0, 1, 1, 0
	for {
		a := n / d
		q2 := q0 + a*q1
		if q2 > maxDen {
			break
		}
		p0, p1 = p1, p0+a*p1
		q0, q1 = q1, q2
		n, d = d, n-a*d
	}

	// The best semiconvergent still within the bound competes with the
	// last convergent; on equal error the convergent has the smaller
	// denominator and wins.
	k := (maxDen - q0) / q1
	num, den := p0+k*p1, q0+k*q1
	if math.Abs(float64(p1)/float64(q1)-x) <= math.Abs(float64(num)/float64(den)-x) {
		num, den = p1, q1
	}

	return Rational{Num: sign * num, Den: den}
}

// roundScaled returns round(x*scale), with the product carried out in
// big.Float so that values beyond float64's integer range saturate at
// the int64 bounds instead of going through an undefined conversion.
func roundScaled(x float64) int64 {
	prod := new(big.Float).SetPrec(128).Mul(bignum.NewFloat(x, 128), bignum.NewFloat(scale, 128))
	n, _ := bignum.Round(prod).Int64()
	return n
}
