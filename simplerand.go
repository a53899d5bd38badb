// Package simplerand provides reproducible samplers for named probability
// distributions. Every distribution owns its xorshift160 streams, starts with
// standard parameters, and changes them only through SetParams, which leaves
// the previous parameters in place when it returns an error.
//
// None of the types are safe for concurrent use. Give each goroutine its own
// distribution.
package simplerand

import (
	"math"

	"github.com/zeebo/errs"

	"github.com/zeebo/simplerand/seeds"
	"github.com/zeebo/simplerand/standard"
	"github.com/zeebo/simplerand/xorshift"
)

// Error is the class that contains all the errors from this package.
var Error = errs.Class("simplerand")

// start de-duplicates batch in place and starts one stream per seed.
func start(batch []uint32, streams ...*xorshift.T) {
	seeds.Dedupe(batch)
	for i, s := range streams {
		*s = xorshift.New(batch[i])
	}
}

// positive returns an error unless v is strictly positive and finite. NaN is
// rejected.
func positive(name string, v float64) error {
	if !(v > 0) || math.IsInf(v, 1) {
		return Error.New("%s must be positive and finite: %v", name, v)
	}
	return nil
}

// finite returns an error if v is NaN or infinite.
func finite(name string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return Error.New("%s must be finite: %v", name, v)
	}
	return nil
}

// ordered returns an error unless min < max, both are finite and the width
// of the interval is representable.
func ordered(min, max float64) error {
	if err := first(finite("minimum", min), finite("maximum", max)); err != nil {
		return err
	}
	if !(min < max) {
		return Error.New("minimum must be less than maximum: [%v, %v]", min, max)
	}
	if math.IsInf(max-min, 0) {
		return Error.New("interval is too wide: [%v, %v]", min, max)
	}
	return nil
}

// first returns the first non-nil error.
func first(checks ...error) error {
	for _, err := range checks {
		if err != nil {
			return err
		}
	}
	return nil
}

// gammaStreams are the three streams consumed by the standard gamma sampler.
type gammaStreams struct {
	u, n0, n1 xorshift.T
}

func (g *gammaStreams) sample(shape float64) float64 {
	return standard.Gamma(&g.u, &g.n0, &g.n1, shape)
}

// logSample returns the log of a gamma variate. It draws the same deviates as
// sample, but a shape below 1 is boosted in log space so that U^(1/shape)
// cannot underflow to zero.
func (g *gammaStreams) logSample(shape float64) float64 {
	if shape >= 1 {
		return math.Log(g.sample(shape))
	}
	y := g.sample(shape + 1)
	return math.Log(y) + math.Log(g.u.Open())/shape
}

// chiSquareStreams sample a chi-square variate with a natural number of
// degrees of freedom.
type chiSquareStreams struct {
	gamma   gammaStreams
	uniform xorshift.T
}

func (c *chiSquareStreams) sample(dof uint64) float64 {
	switch {
	case dof == 2:
		return 2 * standard.Exponential(&c.uniform)
	case dof > 1:
		return 2 * c.gamma.sample(float64(dof)/2)
	default:
		// a chi(3) magnitude times a uniform is a half normal.
		y := 2 * c.gamma.sample(1.5)
		u := c.uniform.Open()
		return y * u * u
	}
}

// natural returns an error unless dof is at least one.
func natural(name string, dof uint64) error {
	if dof < 1 {
		return Error.New("%s must be a natural number: %d", name, dof)
	}
	return nil
}
