// Package sampling implements secure and deterministic sampling of floating
// point values, notably to generate reproducible sets of interpolation nodes.
package sampling

import (
	"crypto/rand"
	"encoding/binary"
)

// RandUint64 return a random value between 0 and 0xFFFFFFFFFFFFFFFF.
func RandUint64() uint64 {
	b := []byte{0, 0, 0, 0, 0, 0, 0, 0}
	if _, err := rand.Read(b); err != nil {
		panic(err)
	}
	return binary.LittleEndian.Uint64(b)
}

// RandFloat64 returns a random float between min and max.
func RandFloat64(min, max float64) float64 {
	b := []byte{0, 0, 0, 0, 0, 0, 0, 0}
	if _, err := rand.Read(b); err != nil {
		panic(err)
	}
	f := float64(binary.LittleEndian.Uint64(b)) / 1.8446744073709552e+19
	return min + f*(max-min)
}

// Source derives float64 samples from an underlying PRNG. Instantiated
// with a [KeyedPRNG], it produces the same samples for the same key,
// which makes experiments and tests reproducible.
type Source struct {
	prng PRNG
}

// NewSource instantiates a new Source from a PRNG.
func NewSource(prng PRNG) *Source {
	return &Source{prng: prng}
}

// Float64 samples a random float between min and max.
func (s *Source) Float64(min, max float64) float64 {
	b := []byte{0, 0, 0, 0, 0, 0, 0, 0}
	if _, err := s.prng.Read(b); err != nil {
		panic(err)
	}
	f := float64(binary.LittleEndian.Uint64(b)) / 1.8446744073709552e+19
	return min + f*(max-min)
}

// Float64s samples a slice of n random floats between min and max.
func (s *Source) Float64s(n int, min, max float64) (values []float64) {
	values = make([]float64, n)
	for i := range values {
		values[i] = s.Float64(min, max)
	}
	return
}

// DistinctFloat64s samples a slice of n pairwise distinct random floats
// between min and max. Collisions are resampled, so the method does not
// terminate if the interval cannot hold n distinct values.
func (s *Source) DistinctFloat64s(n int, min, max float64) (values []float64) {
	seen := make(map[float64]struct{}, n)
	values = make([]float64, 0, n)
	for len(values) < n {
		x := s.Float64(min, max)
		if _, ok := seen[x]; ok {
			continue
		}
		seen[x] = struct{}{}
		values = append(values, x)
	}
	return
}
