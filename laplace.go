package simplerand

import (
	"math"

	"github.com/zeebo/simplerand/standard"
	"github.com/zeebo/simplerand/xorshift"
)

// Laplace is the Laplace distribution with location μ and scale θ.
type Laplace struct {
	s               xorshift.T
	location, scale float64
}

// NewLaplace returns the standard Laplace distribution.
func NewLaplace(seed uint32) *Laplace {
	return &Laplace{s: xorshift.New(seed), location: 0, scale: 1}
}

// Sample returns a Laplace distributed value.
func (d *Laplace) Sample() float64 {
	return standard.Laplace(&d.s)*d.scale + d.location
}

// Params returns the location and scale.
func (d *Laplace) Params() (location, scale float64) { return d.location, d.scale }

// SetParams changes the location and scale.
func (d *Laplace) SetParams(location, scale float64) error {
	if err := first(finite("location", location), positive("scale", scale)); err != nil {
		return err
	}
	d.location, d.scale = location, scale
	return nil
}

// LogLaplace is exp of a Laplace variate.
type LogLaplace struct {
	s               xorshift.T
	location, scale float64
}

// NewLogLaplace returns exp of the standard Laplace distribution.
func NewLogLaplace(seed uint32) *LogLaplace {
	return &LogLaplace{s: xorshift.New(seed), location: 0, scale: 1}
}

// Sample returns a positive value.
func (d *LogLaplace) Sample() float64 {
	return math.Exp(standard.Laplace(&d.s)*d.scale + d.location)
}

// Params returns the location and scale of the underlying Laplace.
func (d *LogLaplace) Params() (location, scale float64) { return d.location, d.scale }

// SetParams changes the location and scale of the underlying Laplace.
func (d *LogLaplace) SetParams(location, scale float64) error {
	if err := first(finite("location", location), positive("scale", scale)); err != nil {
		return err
	}
	d.location, d.scale = location, scale
	return nil
}

// ReflectedWeibull is the Weibull distribution mirrored about its location.
type ReflectedWeibull struct {
	s                      xorshift.T
	shape, location, scale float64
}

// NewReflectedWeibull returns the reflected Weibull with γ = 1, μ = 0 and η = 1,
// which is the standard Laplace distribution.
func NewReflectedWeibull(seed uint32) *ReflectedWeibull {
	return &ReflectedWeibull{s: xorshift.New(seed), shape: 1, location: 0, scale: 1}
}

// Sample inverts the CDF on an open interval deviate.
func (d *ReflectedWeibull) Sample() float64 {
	u := d.s.Open()
	if u < 0.5 {
		return -math.Pow(-math.Log(2*u), 1/d.shape)*d.scale + d.location
	}
	return math.Pow(-math.Log(2*(1-u)), 1/d.shape)*d.scale + d.location
}

// Params returns the shape, location and scale.
func (d *ReflectedWeibull) Params() (shape, location, scale float64) {
	return d.shape, d.location, d.scale
}

// SetParams changes the shape, location and scale.
func (d *ReflectedWeibull) SetParams(shape, location, scale float64) error {
	if err := first(positive("shape", shape), finite("location", location), positive("scale", scale)); err != nil {
		return err
	}
	d.shape, d.location, d.scale = shape, location, scale
	return nil
}
