package simplerand

import (
	"math"

	"github.com/zeebo/simplerand/standard"
	"github.com/zeebo/simplerand/xorshift"
)

// Cauchy is the Cauchy distribution with location μ and scale θ.
type Cauchy struct {
	s               xorshift.T
	location, scale float64
}

// NewCauchy returns the standard Cauchy distribution.
func NewCauchy(seed uint32) *Cauchy {
	return &Cauchy{s: xorshift.New(seed), location: 0, scale: 1}
}

// Sample returns a Cauchy distributed value.
func (d *Cauchy) Sample() float64 {
	return standard.Cauchy(&d.s)*d.scale + d.location
}

// Params returns the location and scale.
func (d *Cauchy) Params() (location, scale float64) { return d.location, d.scale }

// SetParams changes the location and scale.
func (d *Cauchy) SetParams(location, scale float64) error {
	if err := first(finite("location", location), positive("scale", scale)); err != nil {
		return err
	}
	d.location, d.scale = location, scale
	return nil
}

// HalfCauchy is the absolute value of a Cauchy variate with location 0.
type HalfCauchy struct {
	s     xorshift.T
	scale float64
}

// NewHalfCauchy returns the half Cauchy with θ = 1.
func NewHalfCauchy(seed uint32) *HalfCauchy {
	return &HalfCauchy{s: xorshift.New(seed), scale: 1}
}

// Sample returns a non-negative value.
func (d *HalfCauchy) Sample() float64 {
	return math.Tan(math.Pi*d.s.RightOpen()/2) * d.scale
}

// Params returns the scale.
func (d *HalfCauchy) Params() float64 { return d.scale }

// SetParams changes the scale.
func (d *HalfCauchy) SetParams(scale float64) error {
	if err := positive("scale", scale); err != nil {
		return err
	}
	d.scale = scale
	return nil
}
