// Package standard implements the standard form samplers that every named
// distribution is built from by an affine transform or a substitution of
// parameters. Every sampler is deterministic given its generators and
// mutates them in place; none of them are safe for concurrent use on the
// same generators.
package standard

import (
	"math"

	"github.com/zeebo/simplerand/xorshift"
)

// Cauchy returns a sample from the standard Cauchy distribution by inverting
// its CDF on an open interval deviate.
func Cauchy(s *xorshift.T) float64 {
	return CauchyQuantile(s.Open())
}

// CauchyQuantile is the inverse CDF of the standard Cauchy distribution.
func CauchyQuantile(u float64) float64 {
	return math.Tan(math.Pi * (u - 0.5))
}

// Exponential returns a sample from Exp(1). The right open deviate keeps
// 1 - u away from zero.
func Exponential(s *xorshift.T) float64 {
	return ExponentialQuantile(s.RightOpen())
}

// ExponentialQuantile is the inverse CDF of Exp(1).
func ExponentialQuantile(u float64) float64 {
	return -math.Log(1 - u)
}

// Laplace returns a sample from the standard Laplace distribution.
func Laplace(s *xorshift.T) float64 {
	return LaplaceQuantile(s.Open())
}

// LaplaceQuantile is the inverse CDF of the standard Laplace distribution.
// It requires 0 < u < 1.
func LaplaceQuantile(u float64) float64 {
	if u < 0.5 {
		return math.Log(2 * u)
	}
	return -math.Log(2 * (1 - u))
}
