package poly

import (
	"fmt"

	"github.com/lagrango/lagrango/utils"
)

// Add returns p + q, named "(<p> + <q>)".
func (p Poly) Add(q Poly) Poly {
	coeffs := make([]float64, utils.Max(len(p.coeffs), len(q.coeffs)))
	for i := range coeffs {
		coeffs[i] = p.Coeff(i) + q.Coeff(i)
	}
	return newCanonical(fmt.Sprintf("(%s + %s)", p.name, q.name), coeffs)
}

// Sub returns p - q, named "(<p> - <q>)".
func (p Poly) Sub(q Poly) Poly {
	coeffs := make([]float64, utils.Max(len(p.coeffs), len(q.coeffs)))
	for i := range coeffs {
		coeffs[i] = p.Coeff(i) - q.Coeff(i)
	}
	return newCanonical(fmt.Sprintf("(%s - %s)", p.name, q.name), coeffs)
}

// Mul returns p * q, computed by linear convolution of the coefficient
// slices, named "(<p> * <q>)".
func (p Poly) Mul(q Poly) Poly {
	name := fmt.Sprintf("(%s * %s)", p.name, q.name)
	if p.IsZero() || q.IsZero() {
		return Poly{name: name}
	}
	coeffs := make([]float64, len(p.coeffs)+len(q.coeffs)-1)
	for i, c := range p.coeffs {
		for j, d := range q.coeffs {
			coeffs[i+j] += c * d
		}
	}
	return newCanonical(name, coeffs)
}

// AddScalar returns p + f, named "(<p> + <f>)".
func (p Poly) AddScalar(f float64) Poly {
	coeffs := p.Coeffs()
	if len(coeffs) == 0 {
		coeffs = []float64{f}
	} else {
		coeffs[0] += f
	}
	return newCanonical(fmt.Sprintf("(%s + %v)", p.name, f), coeffs)
}

// SubScalar returns p - f, named "(<p> - <f>)".
func (p Poly) SubScalar(f float64) Poly {
	coeffs := p.Coeffs()
	if len(coeffs) == 0 {
		coeffs = []float64{-f}
	} else {
		coeffs[0] -= f
	}
	return newCanonical(fmt.Sprintf("(%s - %v)", p.name, f), coeffs)
}

// SubFromScalar returns f - p, named "(<f> - <p>)".
func (p Poly) SubFromScalar(f float64) Poly {
	coeffs := p.Coeffs()
	for i := range coeffs {
		coeffs[i] = -coeffs[i]
	}
	if len(coeffs) == 0 {
		coeffs = []float64{f}
	} else {
		coeffs[0] += f
	}
	return newCanonical(fmt.Sprintf("(%v - %s)", f, p.name), coeffs)
}

// MulScalar returns p scaled by f, named "(<p> * <f>)".
func (p Poly) MulScalar(f float64) Poly {
	coeffs := p.Coeffs()
	for i := range coeffs {
		coeffs[i] *= f
	}
	return newCanonical(fmt.Sprintf("(%s * %v)", p.name, f), coeffs)
}

// DivScalar returns p scaled by 1/f, named "(<p> / <f>)". Division by
// zero follows IEEE semantics and is not guarded.
func (p Poly) DivScalar(f float64) Poly {
	coeffs := p.Coeffs()
	for i := range coeffs {
		coeffs[i] /= f
	}
	return newCanonical(fmt.Sprintf("(%s / %v)", p.name, f), coeffs)
}

// Neg returns -p, named "(-<p>)".
func (p Poly) Neg() Poly {
	coeffs := p.Coeffs()
	for i := range coeffs {
		coeffs[i] = -coeffs[i]
	}
	return newCanonical(fmt.Sprintf("(-%s)", p.name), coeffs)
}

// AddInPlace adds q to p. The name of p is unchanged.
func (p *Poly) AddInPlace(q Poly) {
	if len(q.coeffs) > len(p.coeffs) {
		grown := make([]float64, len(q.coeffs))
		copy(grown, p.coeffs)
		p.coeffs = grown
	}
	for i, c := range q.coeffs {
		p.coeffs[i] += c
	}
	p.canonicalize()
}

// SubInPlace subtracts q from p. The name of p is unchanged.
func (p *Poly) SubInPlace(q Poly) {
	if len(q.coeffs) > len(p.coeffs) {
		grown := make([]float64, len(q.coeffs))
		copy(grown, p.coeffs)
		p.coeffs = grown
	}
	for i, c := range q.coeffs {
		p.coeffs[i] -= c
	}
	p.canonicalize()
}

// MulInPlace multiplies p by q. The name of p is unchanged.
func (p *Poly) MulInPlace(q Poly) {
	if p.IsZero() || q.IsZero() {
		p.coeffs = nil
		return
	}
	coeffs := make([]float64, len(p.coeffs)+len(q.coeffs)-1)
	for i, c := range p.coeffs {
		for j, d := range q.coeffs {
			coeffs[i+j] += c * d
		}
	}
	p.coeffs = coeffs
	p.canonicalize()
}

// MulScalarInPlace scales p by f. The name of p is unchanged.
func (p *Poly) MulScalarInPlace(f float64) {
	for i := range p.coeffs {
		p.coeffs[i] *= f
	}
	p.canonicalize()
}

// DivScalarInPlace scales p by 1/f, with IEEE semantics on f == 0. The
// name of p is unchanged.
func (p *Poly) DivScalarInPlace(f float64) {
	for i := range p.coeffs {
		p.coeffs[i] /= f
	}
	p.canonicalize()
}
