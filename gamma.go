package simplerand

import (
	"math"

	"github.com/zeebo/simplerand/standard"
	"github.com/zeebo/simplerand/xorshift"
)

// Gamma is the gamma distribution Γ(α, β) with shape α and scale β.
type Gamma struct {
	g            gammaStreams
	shape, scale float64
}

// NewGamma returns Γ(1, 1).
func NewGamma(batch [3]uint32) *Gamma {
	d := &Gamma{shape: 1, scale: 1}
	start(batch[:], &d.g.u, &d.g.n0, &d.g.n1)
	return d
}

// Sample returns a positive value.
func (d *Gamma) Sample() float64 {
	return d.g.sample(d.shape) * d.scale
}

// Params returns the shape and scale.
func (d *Gamma) Params() (shape, scale float64) { return d.shape, d.scale }

// SetParams changes the shape and scale.
func (d *Gamma) SetParams(shape, scale float64) error {
	if err := first(positive("shape", shape), positive("scale", scale)); err != nil {
		return err
	}
	d.shape, d.scale = shape, scale
	return nil
}

// Erlang is the gamma distribution restricted to a natural number shape.
type Erlang struct {
	g     gammaStreams
	shape int64
	scale float64
}

// NewErlang returns the Erlang distribution with k = 1 and β = 1.
func NewErlang(batch [3]uint32) *Erlang {
	d := &Erlang{shape: 1, scale: 1}
	start(batch[:], &d.g.u, &d.g.n0, &d.g.n1)
	return d
}

// Sample returns a positive value.
func (d *Erlang) Sample() float64 {
	return d.g.sample(float64(d.shape)) * d.scale
}

// Params returns the shape and scale.
func (d *Erlang) Params() (shape int64, scale float64) { return d.shape, d.scale }

// SetParams changes the shape and scale.
func (d *Erlang) SetParams(shape int64, scale float64) error {
	if shape <= 0 {
		return Error.New("shape must be positive: %d", shape)
	}
	if err := positive("scale", scale); err != nil {
		return err
	}
	d.shape, d.scale = shape, scale
	return nil
}

// Beta is the beta distribution with shapes α and β.
type Beta struct {
	ga, gb      gammaStreams
	alpha, beta float64
}

// NewBeta returns Beta(1, 1).
func NewBeta(batch [6]uint32) *Beta {
	d := &Beta{alpha: 1, beta: 1}
	start(batch[:],
		&d.ga.u, &d.ga.n0, &d.ga.n1,
		&d.gb.u, &d.gb.n0, &d.gb.n1)
	return d
}

// Sample returns a value in [0, 1] as x/(x+y) for two gamma variates, worked
// out from their logs so that small shapes do not produce 0/0.
func (d *Beta) Sample() float64 {
	lx := d.ga.logSample(d.alpha)
	ly := d.gb.logSample(d.beta)
	return 1 / (1 + math.Exp(ly-lx))
}

// Params returns the two shapes.
func (d *Beta) Params() (alpha, beta float64) { return d.alpha, d.beta }

// SetParams changes the two shapes.
func (d *Beta) SetParams(alpha, beta float64) error {
	if err := first(positive("alpha", alpha), positive("beta", beta)); err != nil {
		return err
	}
	d.alpha, d.beta = alpha, beta
	return nil
}

// ChiSquare is the chi-square distribution with k degrees of freedom.
type ChiSquare struct {
	c   chiSquareStreams
	dof uint64
}

// NewChiSquare returns χ²(1).
func NewChiSquare(batch [4]uint32) *ChiSquare {
	d := &ChiSquare{dof: 1}
	start(batch[:], &d.c.gamma.u, &d.c.gamma.n0, &d.c.gamma.n1, &d.c.uniform)
	return d
}

// Sample returns a non-negative value.
func (d *ChiSquare) Sample() float64 { return d.c.sample(d.dof) }

// Params returns the degrees of freedom.
func (d *ChiSquare) Params() uint64 { return d.dof }

// SetParams changes the degrees of freedom.
func (d *ChiSquare) SetParams(dof uint64) error {
	if err := natural("degrees of freedom", dof); err != nil {
		return err
	}
	d.dof = dof
	return nil
}

// Chi is the chi distribution with k degrees of freedom.
type Chi struct {
	c   chiSquareStreams
	dof uint64
}

// NewChi returns χ(1).
func NewChi(batch [4]uint32) *Chi {
	d := &Chi{dof: 1}
	start(batch[:], &d.c.gamma.u, &d.c.gamma.n0, &d.c.gamma.n1, &d.c.uniform)
	return d
}

// Sample returns a non-negative value.
func (d *Chi) Sample() float64 { return math.Sqrt(d.c.sample(d.dof)) }

// Params returns the degrees of freedom.
func (d *Chi) Params() uint64 { return d.dof }

// SetParams changes the degrees of freedom.
func (d *Chi) SetParams(dof uint64) error {
	if err := natural("degrees of freedom", dof); err != nil {
		return err
	}
	d.dof = dof
	return nil
}

// StudentT is Student's t distribution with k degrees of freedom.
type StudentT struct {
	a, b xorshift.T
	g    gammaStreams
	dof  uint64
}

// NewStudentT returns t(1), the standard Cauchy distribution.
func NewStudentT(batch [5]uint32) *StudentT {
	d := &StudentT{dof: 1}
	start(batch[:], &d.a, &d.b, &d.g.u, &d.g.n0, &d.g.n1)
	return d
}

// Sample returns a t distributed value. One degree of freedom is a Cauchy
// draw, two is a normal over the root of an exponential, and more divide a
// normal by the root of a scaled chi-square.
func (d *StudentT) Sample() float64 {
	switch d.dof {
	case 1:
		return standard.Cauchy(&d.g.u)
	case 2:
		for {
			z := standard.Normal(&d.a, &d.b)
			w := standard.Exponential(&d.g.u)
			if w != 0 {
				return z / math.Sqrt(w)
			}
		}
	default:
		k := float64(d.dof)
		z := standard.Normal(&d.a, &d.b)
		w := d.g.sample(k / 2)
		return z * math.Sqrt(k/(2*w))
	}
}

// Params returns the degrees of freedom.
func (d *StudentT) Params() uint64 { return d.dof }

// SetParams changes the degrees of freedom.
func (d *StudentT) SetParams(dof uint64) error {
	if err := natural("degrees of freedom", dof); err != nil {
		return err
	}
	d.dof = dof
	return nil
}

// F is the F distribution with k1 and k2 degrees of freedom.
type F struct {
	c1, c2     chiSquareStreams
	dof1, dof2 uint64
}

// NewF returns F(1, 1).
func NewF(batch [8]uint32) *F {
	d := &F{dof1: 1, dof2: 1}
	start(batch[:],
		&d.c1.gamma.u, &d.c1.gamma.n0, &d.c1.gamma.n1, &d.c1.uniform,
		&d.c2.gamma.u, &d.c2.gamma.n0, &d.c2.gamma.n1, &d.c2.uniform)
	return d
}

// Sample returns the ratio of two scaled chi-square variates. A zero
// denominator is redrawn.
func (d *F) Sample() float64 {
	x := d.c1.sample(d.dof1)
	y := d.c2.sample(d.dof2)
	for y == 0 {
		y = d.c2.sample(d.dof2)
	}
	return (x * float64(d.dof2)) / (y * float64(d.dof1))
}

// Params returns both degrees of freedom.
func (d *F) Params() (dof1, dof2 uint64) { return d.dof1, d.dof2 }

// SetParams changes both degrees of freedom.
func (d *F) SetParams(dof1, dof2 uint64) error {
	if err := first(natural("numerator degrees of freedom", dof1),
		natural("denominator degrees of freedom", dof2)); err != nil {
		return err
	}
	d.dof1, d.dof2 = dof1, dof2
	return nil
}
