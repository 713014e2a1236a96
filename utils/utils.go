// Package utils implements generic helper functions shared across the library.
package utils

import (
	"golang.org/x/exp/constraints"
)

// AllDistinct returns true if all elements in s are distinct, and false otherwise.
func AllDistinct[T comparable](s []T) bool {
	m := make(map[T]struct{}, len(s))
	for _, si := range s {
		if _, exists := m[si]; exists {
			return false
		}
		m[si] = struct{}{}
	}
	return true
}

// GCD returns the greatest common divisor of m and n, both non-negative.
func GCD[T constraints.Integer](m, n T) T {
	for n != 0 {
		m, n = n, m%n
	}
	return m
}

// Min returns the smaller of a and b.
func Min[T constraints.Ordered](a, b T) T {
	if a <= b {
		return a
	}
	return b
}

// Max returns the larger of a and b.
func Max[T constraints.Ordered](a, b T) T {
	if a >= b {
		return a
	}
	return b
}
