package simplerand

import (
	"math"

	"github.com/zeebo/simplerand/standard"
	"github.com/zeebo/simplerand/xorshift"
)

// positiveExponential draws Exp(1) until the value is strictly positive.
func positiveExponential(s *xorshift.T) float64 {
	for {
		if z := standard.Exponential(s); z > 0 {
			return z
		}
	}
}

// Exponential is the exponential distribution with scale θ.
type Exponential struct {
	s     xorshift.T
	scale float64
}

// NewExponential returns Exp(1).
func NewExponential(seed uint32) *Exponential {
	return &Exponential{s: xorshift.New(seed), scale: 1}
}

// Sample returns a non-negative value.
func (d *Exponential) Sample() float64 {
	return standard.Exponential(&d.s) * d.scale
}

// Params returns the scale.
func (d *Exponential) Params() float64 { return d.scale }

// SetParams changes the scale.
func (d *Exponential) SetParams(scale float64) error {
	if err := positive("scale", scale); err != nil {
		return err
	}
	d.scale = scale
	return nil
}

// Rayleigh is the Rayleigh distribution with scale σ.
type Rayleigh struct {
	s     xorshift.T
	scale float64
}

// NewRayleigh returns the Rayleigh distribution with σ = 1.
func NewRayleigh(seed uint32) *Rayleigh {
	return &Rayleigh{s: xorshift.New(seed), scale: 1}
}

// Sample returns a non-negative value.
func (d *Rayleigh) Sample() float64 {
	return math.Sqrt(2*standard.Exponential(&d.s)) * d.scale
}

// Params returns the scale.
func (d *Rayleigh) Params() float64 { return d.scale }

// SetParams changes the scale.
func (d *Rayleigh) SetParams(scale float64) error {
	if err := positive("scale", scale); err != nil {
		return err
	}
	d.scale = scale
	return nil
}

// Weibull is the Weibull distribution with shape γ and scale η.
type Weibull struct {
	s            xorshift.T
	shape, scale float64
}

// NewWeibull returns the Weibull distribution with γ = 1 and η = 1.
func NewWeibull(seed uint32) *Weibull {
	return &Weibull{s: xorshift.New(seed), shape: 1, scale: 1}
}

// Sample returns a positive value.
func (d *Weibull) Sample() float64 {
	return math.Pow(positiveExponential(&d.s), 1/d.shape) * d.scale
}

// Params returns the shape and scale.
func (d *Weibull) Params() (shape, scale float64) { return d.shape, d.scale }

// SetParams changes the shape and scale.
func (d *Weibull) SetParams(shape, scale float64) error {
	if err := first(positive("shape", shape), positive("scale", scale)); err != nil {
		return err
	}
	d.shape, d.scale = shape, scale
	return nil
}

// Frechet is the Fréchet distribution with shape γ and scale η.
type Frechet struct {
	s            xorshift.T
	shape, scale float64
}

// NewFrechet returns the Fréchet distribution with γ = 1 and η = 1.
func NewFrechet(seed uint32) *Frechet {
	return &Frechet{s: xorshift.New(seed), shape: 1, scale: 1}
}

// Sample returns a positive value.
func (d *Frechet) Sample() float64 {
	return math.Pow(positiveExponential(&d.s), -1/d.shape) * d.scale
}

// Params returns the shape and scale.
func (d *Frechet) Params() (shape, scale float64) { return d.shape, d.scale }

// SetParams changes the shape and scale.
func (d *Frechet) SetParams(shape, scale float64) error {
	if err := first(positive("shape", shape), positive("scale", scale)); err != nil {
		return err
	}
	d.shape, d.scale = shape, scale
	return nil
}

// Gumbel is the Gumbel distribution with location μ and scale θ.
type Gumbel struct {
	s               xorshift.T
	location, scale float64
}

// NewGumbel returns the standard Gumbel distribution.
func NewGumbel(seed uint32) *Gumbel {
	return &Gumbel{s: xorshift.New(seed), location: 0, scale: 1}
}

// Sample returns a Gumbel distributed value.
func (d *Gumbel) Sample() float64 {
	return -math.Log(positiveExponential(&d.s))*d.scale + d.location
}

// Params returns the location and scale.
func (d *Gumbel) Params() (location, scale float64) { return d.location, d.scale }

// SetParams changes the location and scale.
func (d *Gumbel) SetParams(location, scale float64) error {
	if err := first(finite("location", location), positive("scale", scale)); err != nil {
		return err
	}
	d.location, d.scale = location, scale
	return nil
}
