package poly_test

import (
	"bytes"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lagrango/lagrango/poly"
	"github.com/lagrango/lagrango/utils/bignum"
	"github.com/lagrango/lagrango/utils/sampling"
)

func testSource(t *testing.T) *sampling.Source {
	prng, err := sampling.NewKeyedPRNG([]byte{0x6c, 0x61, 0x67})
	require.NoError(t, err)
	return sampling.NewSource(prng)
}

func TestCanonicalForm(t *testing.T) {

	t.Run("SnapAndTrim", func(t *testing.T) {
		p := poly.NewPoly([]float64{1, 2, 1e-11, 0, 0})
		require.Equal(t, []float64{1, 2}, p.Coeffs())
		require.Equal(t, 1, p.Degree())
	})

	t.Run("Zero", func(t *testing.T) {
		for _, coeffs := range [][]float64{nil, {}, {0}, {1e-11, -1e-12}, {poly.Epsilon}} {
			p := poly.NewPoly(coeffs)
			require.True(t, p.IsZero())
			require.Equal(t, -1, p.Degree())
			require.Nil(t, p.Coeffs())
			require.Equal(t, 0.0, p.Evaluate(123.456))
		}
	})

	t.Run("InteriorZerosKept", func(t *testing.T) {
		p := poly.NewPoly([]float64{0, 0, 3})
		require.Equal(t, []float64{0, 0, 3}, p.Coeffs())
		require.Equal(t, 2, p.Degree())
	})

	t.Run("EpsilonBoundary", func(t *testing.T) {
		require.True(t, poly.NewPoly([]float64{poly.Epsilon}).IsZero())
		require.False(t, poly.NewPoly([]float64{2e-10}).IsZero())
	})

	t.Run("ZeroValue", func(t *testing.T) {
		var p poly.Poly
		require.True(t, p.IsZero())
		require.True(t, p.Equal(poly.NewPoly(nil)))
	})
}

func TestAccessors(t *testing.T) {

	p := poly.NewNamedPoly("q", []float64{-7.31, 33, -1.62, 0, 0, 12.8})

	t.Run("Coeff", func(t *testing.T) {
		require.Equal(t, -7.31, p.Coeff(0))
		require.Equal(t, 12.8, p.Coeff(5))
		require.Equal(t, 0.0, p.Coeff(-1))
		require.Equal(t, 0.0, p.Coeff(6))
	})

	t.Run("CoeffsIsACopy", func(t *testing.T) {
		coeffs := p.Coeffs()
		coeffs[0] = 1e9
		require.Equal(t, -7.31, p.Coeff(0))
	})

	t.Run("Name", func(t *testing.T) {
		q := p
		require.Equal(t, "q", q.Name())
		q.SetName("renamed")
		require.Equal(t, "renamed", q.Name())
		require.Equal(t, "q", p.Name())
	})

	t.Run("SetCoeffs", func(t *testing.T) {
		q := p
		q.SetCoeffs([]float64{1, 1e-12, 0})
		require.Equal(t, []float64{1}, q.Coeffs())
		require.Equal(t, "q", q.Name())
	})
}

func TestEvaluate(t *testing.T) {

	t.Run("Quadratic", func(t *testing.T) {
		p := poly.NewPoly([]float64{1, 0, 1})
		require.Equal(t, 10.0, p.Evaluate(3))
		require.Equal(t, 1.0, p.Evaluate(0))
	})

	t.Run("AgainstPowerSum", func(t *testing.T) {

		source := testSource(t)

		for d := 0; d < 9; d++ {
			coeffs := source.Float64s(d+1, -10, 10)
			p := poly.NewPoly(coeffs)
			for i := 0; i < 16; i++ {
				x := source.Float64(-2, 2)
				want := 0.0
				for j, c := range coeffs {
					want += c * math.Pow(x, float64(j))
				}
				require.InDelta(t, want, p.Evaluate(x), 1e-8)
			}
		}
	})

	t.Run("BigReference", func(t *testing.T) {

		source := testSource(t)

		p := poly.NewPoly(source.Float64s(8, -1, 1))
		for i := 0; i < 16; i++ {
			x := source.Float64(-2, 2)
			ref, _ := p.EvaluateBig(bignum.NewFloat(x, 128)).Float64()
			require.InDelta(t, ref, p.Evaluate(x), 1e-10)
		}
	})

	t.Run("LargeMagnitude", func(t *testing.T) {
		p := poly.NewPoly([]float64{1, -2, 3})
		for _, x := range []float64{1e8, -1e8} {
			want, _ := p.EvaluateBig(bignum.NewFloat(x, 128)).Float64()
			require.InEpsilon(t, want, p.Evaluate(x), 1e-12)
		}
	})
}

func TestArithmetic(t *testing.T) {

	t.Run("Add", func(t *testing.T) {
		p := poly.NewNamedPoly("a", []float64{1, 2})
		q := poly.NewNamedPoly("b", []float64{3, 0, 4})
		r := p.Add(q)
		require.Equal(t, []float64{4, 2, 4}, r.Coeffs())
		require.Equal(t, "(a + b)", r.Name())
	})

	t.Run("AddZeroIdentity", func(t *testing.T) {
		source := testSource(t)
		p := poly.NewPoly(source.Float64s(6, -10, 10))
		require.Equal(t, p.Coeffs(), p.Add(poly.Poly{}).Coeffs())
		require.Equal(t, p.Coeffs(), poly.Poly{}.Add(p).Coeffs())
	})

	t.Run("SubCancels", func(t *testing.T) {
		p := poly.NewPoly([]float64{1, 2, 3})
		require.True(t, p.Sub(p).IsZero())
	})

	t.Run("Mul", func(t *testing.T) {
		p := poly.NewNamedPoly("a", []float64{1, 1})
		q := poly.NewNamedPoly("b", []float64{-1, 1})
		r := p.Mul(q)
		require.Equal(t, []float64{-1, 0, 1}, r.Coeffs())
		require.Equal(t, "(a * b)", r.Name())

		require.True(t, p.Mul(poly.Poly{}).IsZero())
		require.True(t, poly.Poly{}.Mul(q).IsZero())
	})

	t.Run("DegreeLaw", func(t *testing.T) {

		source := testSource(t)

		for i := 0; i < 8; i++ {
			p := poly.NewPoly(source.Float64s(i+2, 1, 2))
			q := poly.NewPoly(source.Float64s(i+3, 1, 2))
			require.Equal(t, p.Degree()+q.Degree(), p.Mul(q).Degree())
			require.LessOrEqual(t, p.Add(q).Degree(), q.Degree())
		}
	})

	t.Run("Scalars", func(t *testing.T) {
		p := poly.NewNamedPoly("a", []float64{1, 2})

		require.Equal(t, []float64{3.5, 2}, p.AddScalar(2.5).Coeffs())
		require.Equal(t, "(a + 2.5)", p.AddScalar(2.5).Name())

		require.Equal(t, []float64{-1.5, 2}, p.SubScalar(2.5).Coeffs())
		require.Equal(t, "(a - 2.5)", p.SubScalar(2.5).Name())

		require.Equal(t, []float64{1.5, -2}, p.SubFromScalar(2.5).Coeffs())
		require.Equal(t, "(2.5 - a)", p.SubFromScalar(2.5).Name())

		require.Equal(t, []float64{2.5, 5}, p.MulScalar(2.5).Coeffs())
		require.Equal(t, "(a * 2.5)", p.MulScalar(2.5).Name())

		require.Equal(t, []float64{0.5, 1}, p.DivScalar(2).Coeffs())
		require.Equal(t, "(a / 2)", p.DivScalar(2).Name())

		require.Equal(t, []float64{-1, -2}, p.Neg().Coeffs())
		require.Equal(t, "(-a)", p.Neg().Name())
	})

	t.Run("ScalarsOnZero", func(t *testing.T) {
		var z poly.Poly
		require.Equal(t, []float64{2.5}, z.AddScalar(2.5).Coeffs())
		require.Equal(t, []float64{-2.5}, z.SubScalar(2.5).Coeffs())
		require.Equal(t, []float64{2.5}, z.SubFromScalar(2.5).Coeffs())
		require.True(t, z.MulScalar(2.5).IsZero())
	})

	t.Run("MulScalarKillsSmallCoefficients", func(t *testing.T) {
		p := poly.NewPoly([]float64{1, 1e-9})
		require.Equal(t, 1, p.Degree())
		require.True(t, p.MulScalar(1e-2).Degree() == 0)
	})

	t.Run("InPlaceAgreesWithPure", func(t *testing.T) {

		source := testSource(t)

		p := poly.NewNamedPoly("a", source.Float64s(5, -10, 10))
		q := poly.NewNamedPoly("b", source.Float64s(7, -10, 10))

		r := p.Clone()
		r.AddInPlace(q)
		require.True(t, r.Equal(p.Add(q)))
		require.Equal(t, "a", r.Name())

		r = p.Clone()
		r.SubInPlace(q)
		require.True(t, r.Equal(p.Sub(q)))

		r = p.Clone()
		r.MulInPlace(q)
		require.True(t, r.Equal(p.Mul(q)))

		r = p.Clone()
		r.MulScalarInPlace(2.5)
		require.True(t, r.Equal(p.MulScalar(2.5)))

		r = p.Clone()
		r.DivScalarInPlace(2.5)
		require.True(t, r.Equal(p.DivScalar(2.5)))
	})
}

func TestString(t *testing.T) {

	t.Run("Decimal", func(t *testing.T) {
		p := poly.NewNamedPoly("q", []float64{-7.31, 33, -1.62, 0, 0, 12.8})
		require.Equal(t, "q ≡ [-7.31, 33, -1.62, 0, 0, 12.8]", p.String())
	})

	t.Run("ZeroPolynomial", func(t *testing.T) {
		require.Equal(t, "p ≡ []", poly.NewPoly(nil).String())
	})

	t.Run("Rational", func(t *testing.T) {
		p := poly.NewPoly([]float64{0.5, -0.375, 2})
		require.Equal(t, "p ≡ [1/2, -3/8, 2]", p.RationalString())
	})
}

func TestEqual(t *testing.T) {
	p := poly.NewNamedPoly("a", []float64{1, 2})
	q := poly.NewNamedPoly("b", []float64{1, 2})
	require.True(t, p.Equal(q))
	require.False(t, p.Equal(poly.NewPoly([]float64{1, 2, 3})))
	require.True(t, poly.Poly{}.Equal(poly.NewPoly([]float64{1e-11})))
}

func TestSerialization(t *testing.T) {

	t.Run("MarshalBinary", func(t *testing.T) {

		p := poly.NewNamedPoly("π", []float64{-7.31, 33, -1.62, 0, 0, 12.8})

		data, err := p.MarshalBinary()
		require.NoError(t, err)
		require.Equal(t, p.BinarySize(), len(data))

		var q poly.Poly
		require.NoError(t, q.UnmarshalBinary(data))
		require.True(t, p.Equal(q))
		require.Equal(t, "π", q.Name())
	})

	t.Run("WriterTo", func(t *testing.T) {

		p := poly.NewPoly([]float64{1, 0, 1})

		buf := new(bytes.Buffer)
		n, err := p.WriteTo(buf)
		require.NoError(t, err)
		require.Equal(t, int64(p.BinarySize()), n)

		var q poly.Poly
		n, err = q.ReadFrom(buf)
		require.NoError(t, err)
		require.Equal(t, int64(p.BinarySize()), n)
		require.True(t, p.Equal(q))
	})

	t.Run("ZeroPolynomial", func(t *testing.T) {

		var p poly.Poly

		data, err := p.MarshalBinary()
		require.NoError(t, err)

		q := poly.NewPoly([]float64{1, 2})
		require.NoError(t, q.UnmarshalBinary(data))
		require.True(t, q.IsZero())
	})

	t.Run("Truncated", func(t *testing.T) {

		p := poly.NewPoly([]float64{1, 2, 3})

		data, err := p.MarshalBinary()
		require.NoError(t, err)

		var q poly.Poly
		require.Error(t, q.UnmarshalBinary(data[:len(data)-4]))
	})
}

func BenchmarkEvaluate(b *testing.B) {

	prng, _ := sampling.NewKeyedPRNG([]byte{0x6c})
	p := poly.NewPoly(sampling.NewSource(prng).Float64s(64, -1, 1))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = p.Evaluate(0.9)
	}
}

func BenchmarkMul(b *testing.B) {

	prng, _ := sampling.NewKeyedPRNG([]byte{0x6c})
	source := sampling.NewSource(prng)
	p := poly.NewPoly(source.Float64s(32, -1, 1))
	q := poly.NewPoly(source.Float64s(32, -1, 1))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = p.Mul(q)
	}
}
