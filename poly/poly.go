// Package poly implements univariate polynomials over float64
// coefficients, stored densely in a canonical form, with arithmetic,
// Horner evaluation and binary serialization.
package poly

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"math/big"
	"strconv"
	"strings"

	"github.com/google/go-cmp/cmp"

	"github.com/lagrango/lagrango/rational"
	"github.com/lagrango/lagrango/utils/bignum"
	"github.com/lagrango/lagrango/utils/buffer"
)

// Epsilon is the coefficient magnitude at or below which a coefficient
// is snapped to exactly zero when a polynomial is brought to canonical
// form.
const Epsilon = 1e-10

// DefaultName is the display name given to polynomials constructed
// without an explicit one.
const DefaultName = "p"

// Poly is a univariate polynomial over float64 coefficients, with the
// coefficient of x^i stored at index i (constant term first). A Poly is
// always in canonical form: coefficients of magnitude at most Epsilon
// are exactly zero and the highest-degree coefficient is non-zero. The
// zero polynomial has no coefficients and degree -1.
//
// The zero value is the zero polynomial with an empty name. Methods
// with value receivers never mutate the polynomial, so any Poly can be
// shared between goroutines for reading; the in-place methods require
// external synchronization when the instance is shared.
type Poly struct {
	name   string
	coeffs []float64
}

// NewPoly creates a new Poly named [DefaultName] from coeffs, with
// coeffs[i] the coefficient of x^i. The slice is copied and brought to
// canonical form.
func NewPoly(coeffs []float64) Poly {
	return NewNamedPoly(DefaultName, coeffs)
}

// NewNamedPoly creates a new Poly named name from coeffs, with
// coeffs[i] the coefficient of x^i. The slice is copied and brought to
// canonical form.
func NewNamedPoly(name string, coeffs []float64) Poly {
	return newCanonical(name, append([]float64(nil), coeffs...))
}

// newCanonical takes ownership of coeffs.
func newCanonical(name string, coeffs []float64) Poly {
	p := Poly{name: name, coeffs: coeffs}
	p.canonicalize()
	return p
}

// Clone returns a deep copy of p. A plain struct copy shares the
// coefficient slice with the original and must not be mutated in place;
// Clone the polynomial instead.
func (p Poly) Clone() Poly {
	return Poly{name: p.name, coeffs: append([]float64(nil), p.coeffs...)}
}

// canonicalize re-establishes the canonical form: coefficients within
// Epsilon of zero are snapped to exactly zero, then trailing zeros are
// dropped. An empty coefficient sequence is normalized to nil so that
// all representations of the zero polynomial are deeply equal.
func (p *Poly) canonicalize() {
	for i, c := range p.coeffs {
		if math.Abs(c) <= Epsilon {
			p.coeffs[i] = 0
		}
	}

	n := len(p.coeffs)
	for n > 0 && p.coeffs[n-1] == 0 {
		n--
	}

	if n == 0 {
		p.coeffs = nil
		return
	}

	p.coeffs = p.coeffs[:n]
}

// Degree returns the degree of the polynomial, with the convention that
// the zero polynomial has degree -1.
func (p Poly) Degree() int {
	return len(p.coeffs) - 1
}

// IsZero returns true if p is the zero polynomial.
func (p Poly) IsZero() bool {
	return len(p.coeffs) == 0
}

// Coeffs returns a copy of the canonical coefficient slice, constant
// term first. The zero polynomial returns nil.
func (p Poly) Coeffs() []float64 {
	return append([]float64(nil), p.coeffs...)
}

// Coeff returns the coefficient of x^i, or 0 if i is negative or larger
// than the degree.
func (p Poly) Coeff(i int) float64 {
	if i < 0 || i >= len(p.coeffs) {
		return 0
	}
	return p.coeffs[i]
}

// Name returns the display name of the polynomial.
func (p Poly) Name() string {
	return p.name
}

// SetName sets the display name of the polynomial.
func (p *Poly) SetName(name string) {
	p.name = name
}

// SetCoeffs replaces the coefficients of p with a canonicalized copy of
// coeffs. The name is unchanged.
func (p *Poly) SetCoeffs(coeffs []float64) {
	p.coeffs = append([]float64(nil), coeffs...)
	p.canonicalize()
}

// Evaluate returns p(x), computed with Horner's rule from the highest
// degree down. The zero polynomial evaluates to exactly 0.
func (p Poly) Evaluate(x float64) (y float64) {
	for i := len(p.coeffs) - 1; i >= 0; i-- {
		y = y*x + p.coeffs[i]
	}
	return
}

// EvaluateBig returns p(x) for x a *big.Float, carrying the Horner
// recurrence at the precision of x. The coefficients enter the
// recurrence as exact binary float64 values, so the result bounds the
// rounding incurred by Evaluate.
func (p Poly) EvaluateBig(x *big.Float) (y *big.Float) {
	prec := x.Prec()
	y = new(big.Float).SetPrec(prec)
	for i := len(p.coeffs) - 1; i >= 0; i-- {
		y.Mul(y, x)
		y.Add(y, bignum.NewFloat(p.coeffs[i], prec))
	}
	return
}

// Equal returns whether p and q have the same canonical coefficient
// sequence. Names are display metadata and are ignored.
func (p Poly) Equal(q Poly) bool {
	return cmp.Equal(p.coeffs, q.coeffs)
}

// String returns "name ≡ [c0, c1, ...]" with the coefficients printed
// to 12 significant digits.
func (p Poly) String() string {
	var sb strings.Builder
	sb.WriteString(p.name)
	sb.WriteString(" ≡ [")
	for i, c := range p.coeffs {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(strconv.FormatFloat(c, 'g', 12, 64))
	}
	sb.WriteString("]")
	return sb.String()
}

// RationalString returns the same rendering as String with each
// coefficient replaced by its closest fraction with denominator at most
// [rational.DefaultMaxDenominator].
func (p Poly) RationalString() string {
	var sb strings.Builder
	sb.WriteString(p.name)
	sb.WriteString(" ≡ [")
	for i, c := range p.coeffs {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(rational.Approximate(c, rational.DefaultMaxDenominator).String())
	}
	sb.WriteString("]")
	return sb.String()
}

// BinarySize returns the serialized size of the object in bytes: an
// 8-byte name length, the name bytes, an 8-byte coefficient count and 8
// bytes per coefficient.
func (p Poly) BinarySize() int {
	return 8 + len(p.name) + 8 + len(p.coeffs)<<3
}

// WriteTo writes the object on an io.Writer. It implements the
// io.WriterTo interface, and will write exactly p.BinarySize() bytes on
// w.
//
// Unless w implements the buffer.Writer interface, it will be wrapped
// into a bufio.Writer. Since this requires allocations, it is
// preferable to pass a buffer.Writer directly:
//
//   - When writing multiple times to an io.Writer, it is preferable to
//     first wrap the io.Writer in a pre-allocated bufio.Writer.
//   - When writing to a pre-allocated var b []byte, it is preferable to
//     pass buffer.NewBuffer(b) as w.
func (p Poly) WriteTo(w io.Writer) (n int64, err error) {
	switch w := w.(type) {
	case buffer.Writer:

		var inc int64

		if inc, err = buffer.WriteUint64(w, uint64(len(p.name))); err != nil {
			return n + inc, fmt.Errorf("buffer.WriteUint64: %w", err)
		}

		n += inc

		if inc, err = buffer.WriteUint8Slice(w, []byte(p.name)); err != nil {
			return n + inc, fmt.Errorf("buffer.WriteUint8Slice: %w", err)
		}

		n += inc

		if inc, err = buffer.WriteUint64(w, uint64(len(p.coeffs))); err != nil {
			return n + inc, fmt.Errorf("buffer.WriteUint64: %w", err)
		}

		n += inc

		if inc, err = buffer.WriteFloat64Slice(w, p.coeffs); err != nil {
			return n + inc, fmt.Errorf("buffer.WriteFloat64Slice: %w", err)
		}

		n += inc

		return n, w.Flush()

	default:
		return p.WriteTo(bufio.NewWriter(w))
	}
}

// ReadFrom reads on the object from an io.Reader. It implements the
// io.ReaderFrom interface. The decoded polynomial is brought back to
// canonical form.
//
// Unless r implements the buffer.Reader interface, it will be wrapped
// into a bufio.Reader. Since this requires allocations, it is
// preferable to pass a buffer.Reader directly:
//
//   - When reading multiple values from an io.Reader, it is preferable
//     to first wrap the io.Reader in a pre-allocated bufio.Reader.
//   - When reading from a var b []byte, it is preferable to pass
//     buffer.NewBuffer(b) as r.
func (p *Poly) ReadFrom(r io.Reader) (n int64, err error) {
	switch r := r.(type) {
	case buffer.Reader:

		var inc int64
		var size uint64

		if inc, err = buffer.ReadUint64(r, &size); err != nil {
			return n + inc, fmt.Errorf("buffer.ReadUint64: %w", err)
		}

		n += inc

		name := make([]byte, size)
		if inc, err = buffer.ReadUint8Slice(r, name); err != nil {
			return n + inc, fmt.Errorf("buffer.ReadUint8Slice: %w", err)
		}

		n += inc
		p.name = string(name)

		if inc, err = buffer.ReadUint64(r, &size); err != nil {
			return n + inc, fmt.Errorf("buffer.ReadUint64: %w", err)
		}

		n += inc

		if cap(p.coeffs) < int(size) {
			p.coeffs = make([]float64, size)
		}

		p.coeffs = p.coeffs[:size]

		if inc, err = buffer.ReadFloat64Slice(r, p.coeffs); err != nil {
			return n + inc, fmt.Errorf("buffer.ReadFloat64Slice: %w", err)
		}

		n += inc

		p.canonicalize()

		return n, nil

	default:
		return p.ReadFrom(bufio.NewReader(r))
	}
}

// MarshalBinary encodes the object into a binary form on a newly
// allocated slice of bytes.
func (p Poly) MarshalBinary() (data []byte, err error) {
	buf := buffer.NewBufferSize(p.BinarySize())
	_, err = p.WriteTo(buf)
	return buf.Bytes(), err
}

// UnmarshalBinary decodes a slice of bytes generated by MarshalBinary
// or WriteTo on the object.
func (p *Poly) UnmarshalBinary(data []byte) (err error) {
	_, err = p.ReadFrom(buffer.NewBuffer(data))
	return
}
