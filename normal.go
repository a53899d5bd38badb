package simplerand

import (
	"math"

	"github.com/zeebo/simplerand/standard"
	"github.com/zeebo/simplerand/xorshift"
)

// Normal is the normal distribution N(μ, σ²).
type Normal struct {
	a, b      xorshift.T
	mean, std float64
}

// NewNormal returns N(0, 1).
func NewNormal(batch [2]uint32) *Normal {
	d := &Normal{mean: 0, std: 1}
	start(batch[:], &d.a, &d.b)
	return d
}

// Sample returns a normally distributed value.
func (d *Normal) Sample() float64 {
	return standard.Normal(&d.a, &d.b)*d.std + d.mean
}

// Params returns the mean and variance.
func (d *Normal) Params() (mean, variance float64) { return d.mean, d.std * d.std }

// SetParams changes the mean and variance.
func (d *Normal) SetParams(mean, variance float64) error {
	if err := first(finite("mean", mean), positive("variance", variance)); err != nil {
		return err
	}
	d.mean, d.std = mean, math.Sqrt(variance)
	return nil
}

// HalfNormal is the absolute value of N(0, σ²).
type HalfNormal struct {
	a, b xorshift.T
	std  float64
}

// NewHalfNormal returns the half normal with σ = 1.
func NewHalfNormal(batch [2]uint32) *HalfNormal {
	d := &HalfNormal{std: 1}
	start(batch[:], &d.a, &d.b)
	return d
}

// Sample returns a non-negative value.
func (d *HalfNormal) Sample() float64 {
	return math.Abs(standard.Normal(&d.a, &d.b)) * d.std
}

// Params returns the standard deviation of the underlying normal.
func (d *HalfNormal) Params() float64 { return d.std }

// SetParams changes the standard deviation.
func (d *HalfNormal) SetParams(std float64) error {
	if err := positive("standard deviation", std); err != nil {
		return err
	}
	d.std = std
	return nil
}

// LogNormal is exp(N(μ, σ²)).
type LogNormal struct {
	a, b      xorshift.T
	mean, std float64
}

// NewLogNormal returns the log-normal with μ = 0 and σ = 1.
func NewLogNormal(batch [2]uint32) *LogNormal {
	d := &LogNormal{mean: 0, std: 1}
	start(batch[:], &d.a, &d.b)
	return d
}

// Sample returns a positive value.
func (d *LogNormal) Sample() float64 {
	return math.Exp(standard.Normal(&d.a, &d.b)*d.std + d.mean)
}

// Params returns μ and σ of the underlying normal.
func (d *LogNormal) Params() (mean, std float64) { return d.mean, d.std }

// SetParams changes μ and σ of the underlying normal.
func (d *LogNormal) SetParams(mean, std float64) error {
	if err := first(finite("mean", mean), positive("standard deviation", std)); err != nil {
		return err
	}
	d.mean, d.std = mean, std
	return nil
}

// Levy is the Lévy distribution with location μ and scale θ.
type Levy struct {
	a, b            xorshift.T
	location, scale float64
}

// NewLevy returns the Lévy distribution with μ = 0 and θ = 1.
func NewLevy(batch [2]uint32) *Levy {
	d := &Levy{location: 0, scale: 1}
	start(batch[:], &d.a, &d.b)
	return d
}

// Sample returns a value greater than the location.
func (d *Levy) Sample() float64 {
	for {
		z := math.Abs(standard.Normal(&d.a, &d.b))
		if z > 0 {
			return d.scale/(z*z) + d.location
		}
	}
}

// Params returns the location and scale.
func (d *Levy) Params() (location, scale float64) { return d.location, d.scale }

// SetParams changes the location and scale.
func (d *Levy) SetParams(location, scale float64) error {
	if err := first(finite("location", location), positive("scale", scale)); err != nil {
		return err
	}
	d.location, d.scale = location, scale
	return nil
}

// InverseGaussian is the inverse Gaussian distribution with mean μ and shape λ.
type InverseGaussian struct {
	u, a, b     xorshift.T
	mean, shape float64
}

// NewInverseGaussian returns the inverse Gaussian with μ = 1 and λ = 1.
func NewInverseGaussian(batch [3]uint32) *InverseGaussian {
	d := &InverseGaussian{mean: 1, shape: 1}
	start(batch[:], &d.u, &d.a, &d.b)
	return d
}

// Sample uses the transformation with multiple roots of Michael, Schucany
// and Haas.
func (d *InverseGaussian) Sample() float64 {
	p := d.mean * d.mean
	q := p / (2 * d.shape)

	z := math.Abs(standard.Normal(&d.a, &d.b))
	if z == 0 {
		return d.mean
	}

	// x and p/x are the two roots; the larger one is kept with
	// probability μ/(x+μ).
	v := d.mean + q*z*z
	x := v + math.Sqrt(v*v-p)
	if d.u.Closed()*(x+d.mean) <= d.mean {
		return x
	}
	return p / x
}

// Params returns the mean and shape.
func (d *InverseGaussian) Params() (mean, shape float64) { return d.mean, d.shape }

// SetParams changes the mean and shape.
func (d *InverseGaussian) SetParams(mean, shape float64) error {
	if err := first(positive("mean", mean), positive("shape", shape)); err != nil {
		return err
	}
	if math.IsInf(mean*mean, 0) {
		return Error.New("mean is too large: %v", mean)
	}
	d.mean, d.shape = mean, shape
	return nil
}
