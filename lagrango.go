/*
Package lagrango is a small numerical library for univariate polynomials
over real coefficients. It provides exact-degree polynomial arithmetic with
a canonical coefficient representation, Lagrange interpolation of point
sets, and bounded-denominator rational rendering of floating-point values.
*/
package lagrango
