package simplerand

import (
	"math"

	"github.com/zeebo/simplerand/xorshift"
)

// Uniform is the continuous uniform distribution on [min, max].
type Uniform struct {
	s        xorshift.T
	min, max float64
}

// NewUniform returns U(0, 1).
func NewUniform(seed uint32) *Uniform {
	return &Uniform{s: xorshift.New(seed), min: 0, max: 1}
}

// Sample returns a value in [min, max].
func (d *Uniform) Sample() float64 {
	return d.s.Closed()*(d.max-d.min) + d.min
}

// Params returns the bounds.
func (d *Uniform) Params() (min, max float64) { return d.min, d.max }

// SetParams changes the bounds. It requires finite min < max.
func (d *Uniform) SetParams(min, max float64) error {
	if err := ordered(min, max); err != nil {
		return err
	}
	d.min, d.max = min, max
	return nil
}

// PowerFunction is the power function distribution with shape γ on [a, b].
type PowerFunction struct {
	s        xorshift.T
	shape    float64
	min, max float64
}

// NewPowerFunction returns the power function distribution with γ = 1 on [0, 1].
func NewPowerFunction(seed uint32) *PowerFunction {
	return &PowerFunction{s: xorshift.New(seed), shape: 1, min: 0, max: 1}
}

// Sample returns a value in (a, b).
func (d *PowerFunction) Sample() float64 {
	return math.Pow(d.s.Open(), 1/d.shape)*(d.max-d.min) + d.min
}

// Params returns the shape and bounds.
func (d *PowerFunction) Params() (shape, min, max float64) {
	return d.shape, d.min, d.max
}

// SetParams changes the shape and bounds.
func (d *PowerFunction) SetParams(shape, min, max float64) error {
	if err := first(positive("shape", shape), ordered(min, max)); err != nil {
		return err
	}
	d.shape, d.min, d.max = shape, min, max
	return nil
}

// Triangular is the triangular distribution on [min, max] with a mode.
type Triangular struct {
	s              xorshift.T
	min, max, mode float64
}

// NewTriangular returns the triangular distribution on [0, 1] with mode 0.5.
func NewTriangular(seed uint32) *Triangular {
	return &Triangular{s: xorshift.New(seed), min: 0, max: 1, mode: 0.5}
}

// Sample inverts the CDF on a closed interval deviate.
func (d *Triangular) Sample() float64 {
	width := d.max - d.min
	peak := (d.mode - d.min) / width

	u := d.s.Closed()
	var y float64
	if u < peak {
		y = math.Sqrt(peak * u)
	} else {
		y = 1 - math.Sqrt((1-peak)*(1-u))
	}
	return d.min + width*y
}

// Params returns the bounds and mode.
func (d *Triangular) Params() (min, max, mode float64) { return d.min, d.max, d.mode }

// SetParams changes the bounds and mode. It requires min < max and
// min <= mode <= max.
func (d *Triangular) SetParams(min, max, mode float64) error {
	if err := ordered(min, max); err != nil {
		return err
	}
	if !(min <= mode && mode <= max) {
		return Error.New("mode must be within [%v, %v]: %v", min, max, mode)
	}
	d.min, d.max, d.mode = min, max, mode
	return nil
}

// Bernoulli is the Bernoulli distribution with success probability p.
type Bernoulli struct {
	s xorshift.T
	p float64
}

// NewBernoulli returns a fair coin.
func NewBernoulli(seed uint32) *Bernoulli {
	return &Bernoulli{s: xorshift.New(seed), p: 0.5}
}

// Sample returns 1 on success and 0 otherwise.
func (d *Bernoulli) Sample() uint64 {
	if d.s.Closed() <= d.p {
		return 1
	}
	return 0
}

// Params returns the success probability.
func (d *Bernoulli) Params() float64 { return d.p }

// SetParams changes the success probability. It requires 0 <= p <= 1.
func (d *Bernoulli) SetParams(p float64) error {
	if !(p >= 0 && p <= 1) {
		return Error.New("probability must be within [0, 1]: %v", p)
	}
	d.p = p
	return nil
}

// Geometric counts the trials up to and including the first success.
type Geometric struct {
	s xorshift.T
	p float64
}

// NewGeometric returns the geometric distribution with p = 0.5.
func NewGeometric(seed uint32) *Geometric {
	return &Geometric{s: xorshift.New(seed), p: 0.5}
}

// Sample returns a count of at least one.
func (d *Geometric) Sample() uint64 {
	n := uint64(1)
	for d.s.Closed() > d.p {
		n++
	}
	return n
}

// Params returns the success probability.
func (d *Geometric) Params() float64 { return d.p }

// SetParams changes the success probability. It requires 0 < p <= 1.
func (d *Geometric) SetParams(p float64) error {
	if !(p > 0 && p <= 1) {
		return Error.New("probability must be within (0, 1]: %v", p)
	}
	d.p = p
	return nil
}
