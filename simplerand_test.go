package simplerand

import (
	"math"
	"sort"
	"testing"

	"github.com/zeebo/assert"
	"gonum.org/v1/gonum/stat"

	"github.com/zeebo/simplerand/standard"
	"github.com/zeebo/simplerand/xorshift"
)

const samples = 100000

var (
	seeds2 = [2]uint32{1192, 765}
	seeds3 = [3]uint32{1192, 765, 1543}
	seeds4 = [4]uint32{1192, 765, 1543, 2345}
	seeds5 = [5]uint32{1192, 765, 1543, 2345, 3456}
	seeds6 = [6]uint32{1192, 765, 1543, 2345, 3456, 4567}
	seeds8 = [8]uint32{1192, 765, 1543, 2345, 3456, 4567, 5678, 6789}
)

func must(t *testing.T, err error) {
	t.Helper()
	assert.NoError(t, err)
}

func draw(n int, fn func() float64) []float64 {
	xs := make([]float64, n)
	for i := range xs {
		xs[i] = fn()
	}
	return xs
}

func median(xs []float64) float64 {
	sort.Float64s(xs)
	return stat.Quantile(0.5, stat.Empirical, xs, nil)
}

// near reports if got is near want: relatively, or absolutely when want is
// zero.
func near(got, want, tol float64) bool {
	if want == 0 {
		return math.Abs(got) <= tol
	}
	return math.Abs(got-want) <= tol*math.Abs(want)
}

func TestStart(t *testing.T) {
	d := NewNormal([2]uint32{7, 7})
	assert.DeepEqual(t, d.a, xorshift.New(7))
	assert.DeepEqual(t, d.b, xorshift.New(57))

	g := NewGamma([3]uint32{0, 0, 0})
	assert.DeepEqual(t, g.g.u, xorshift.New(0))
	assert.DeepEqual(t, g.g.n0, xorshift.New(1192))
	assert.DeepEqual(t, g.g.n1, xorshift.New((1192<<3)^(1192>>2)))
}

func TestDefaults(t *testing.T) {
	t.Run("Cauchy", func(t *testing.T) {
		d, s := NewCauchy(1192), xorshift.New(1192)
		for i := 0; i < 100; i++ {
			assert.Equal(t, d.Sample(), standard.Cauchy(&s))
		}
	})

	t.Run("Exponential", func(t *testing.T) {
		d, s := NewExponential(1192), xorshift.New(1192)
		for i := 0; i < 100; i++ {
			assert.Equal(t, d.Sample(), standard.Exponential(&s))
		}
	})

	t.Run("Laplace", func(t *testing.T) {
		d, s := NewLaplace(1192), xorshift.New(1192)
		for i := 0; i < 100; i++ {
			assert.Equal(t, d.Sample(), standard.Laplace(&s))
		}
	})

	t.Run("Normal", func(t *testing.T) {
		d := NewNormal(seeds2)
		a, b := xorshift.New(seeds2[0]), xorshift.New(seeds2[1])
		for i := 0; i < 100; i++ {
			assert.Equal(t, d.Sample(), standard.Normal(&a, &b))
		}
	})

	t.Run("Uniform", func(t *testing.T) {
		d, s := NewUniform(1192), xorshift.New(1192)
		for i := 0; i < 100; i++ {
			assert.Equal(t, d.Sample(), s.Closed())
		}
	})

	t.Run("StudentT", func(t *testing.T) {
		d, s := NewStudentT(seeds5), xorshift.New(seeds5[2])
		for i := 0; i < 100; i++ {
			assert.Equal(t, d.Sample(), standard.Cauchy(&s))
		}
	})

	t.Run("Erlang", func(t *testing.T) {
		e, g := NewErlang(seeds3), NewGamma(seeds3)
		must(t, e.SetParams(4, 2))
		must(t, g.SetParams(4, 2))
		for i := 0; i < 100; i++ {
			assert.Equal(t, e.Sample(), g.Sample())
		}
	})

	t.Run("Gamma", func(t *testing.T) {
		d, s := NewGamma(seeds3), xorshift.New(seeds3[0])
		for i := 0; i < 100; i++ {
			assert.Equal(t, d.Sample(), standard.Exponential(&s))
		}
	})
}

func TestMoments(t *testing.T) {
	type moment struct {
		name     string
		sample   func() float64
		mean     float64
		variance float64 // NaN skips the variance check
	}

	var cases []moment
	add := func(name string, sample func() float64, mean, variance float64) {
		cases = append(cases, moment{name, sample, mean, variance})
	}

	{
		d := NewUniform(1192)
		must(t, d.SetParams(-1, 3))
		add("Uniform", d.Sample, 1, 16.0/12)
	}
	{
		d := NewPowerFunction(1192)
		must(t, d.SetParams(2, 0, 1))
		add("PowerFunction", d.Sample, 2.0/3, 0.5-4.0/9)
	}
	{
		d := NewTriangular(1192)
		must(t, d.SetParams(0, 4, 1))
		add("Triangular", d.Sample, 5.0/3, 13.0/18)
	}
	{
		d := NewBernoulli(1192)
		must(t, d.SetParams(0.3))
		add("Bernoulli", func() float64 { return float64(d.Sample()) }, 0.3, 0.21)
	}
	{
		d := NewGeometric(1192)
		must(t, d.SetParams(0.25))
		add("Geometric", func() float64 { return float64(d.Sample()) }, 4, 12)
	}
	{
		d := NewNormal(seeds2)
		must(t, d.SetParams(-3, 2))
		add("Normal", d.Sample, -3, 2)
	}
	{
		d := NewHalfNormal(seeds2)
		must(t, d.SetParams(2))
		add("HalfNormal", d.Sample, 2*math.Sqrt(2/math.Pi), 4*(1-2/math.Pi))
	}
	{
		d := NewLogNormal(seeds2)
		must(t, d.SetParams(0, 0.5))
		add("LogNormal", d.Sample, math.Exp(0.125), (math.Exp(0.25)-1)*math.Exp(0.25))
	}
	{
		d := NewInverseGaussian(seeds3)
		must(t, d.SetParams(1, 2))
		add("InverseGaussian", d.Sample, 1, 0.5)
	}
	{
		d := NewExponential(1192)
		must(t, d.SetParams(1.5))
		add("Exponential", d.Sample, 1.5, 2.25)
	}
	{
		d := NewRayleigh(1192)
		add("Rayleigh", d.Sample, math.Sqrt(math.Pi/2), (4-math.Pi)/2)
	}
	{
		d := NewWeibull(1192)
		must(t, d.SetParams(2, 1.5))
		g := math.Gamma(1.5)
		add("Weibull", d.Sample, 1.5*g, 2.25*(1-g*g))
	}
	{
		d := NewFrechet(1192)
		must(t, d.SetParams(3, 1))
		add("Frechet", d.Sample, math.Gamma(1-1.0/3), math.NaN())
	}
	{
		d := NewGumbel(1192)
		add("Gumbel", d.Sample, 0.5772156649015329, math.Pi*math.Pi/6)
	}
	{
		d := NewLaplace(1192)
		must(t, d.SetParams(-2, 1.5))
		add("Laplace", d.Sample, -2, 4.5)
	}
	{
		d := NewReflectedWeibull(1192)
		must(t, d.SetParams(2, 0, 1))
		add("ReflectedWeibull", d.Sample, 0, 1)
	}
	{
		d := NewGamma(seeds3)
		must(t, d.SetParams(2, 1.5))
		add("Gamma", d.Sample, 3, 4.5)
	}
	{
		d := NewErlang(seeds3)
		must(t, d.SetParams(3, 2))
		add("Erlang", d.Sample, 6, 12)
	}
	{
		d := NewBeta(seeds6)
		must(t, d.SetParams(2, 3))
		add("Beta", d.Sample, 0.4, 0.04)
	}
	for _, k := range []uint64{1, 2, 3, 5} {
		d := NewChiSquare(seeds4)
		must(t, d.SetParams(k))
		add("ChiSquare", d.Sample, float64(k), 2*float64(k))
	}
	{
		d := NewChi(seeds4)
		must(t, d.SetParams(3))
		add("Chi", d.Sample, 2*math.Sqrt(2/math.Pi), 3-8/math.Pi)
	}
	{
		d := NewStudentT(seeds5)
		must(t, d.SetParams(10))
		add("StudentT", d.Sample, 0, 10.0/8)
	}
	{
		d := NewF(seeds8)
		must(t, d.SetParams(5, 10))
		add("F", d.Sample, 10.0/8, math.NaN())
	}

	for _, c := range cases {
		mean, variance := stat.MeanVariance(draw(samples, c.sample), nil)
		t.Logf("%-16s mean:%-10.5f variance:%-10.5f", c.name, mean, variance)

		assert.That(t, near(mean, c.mean, 0.02))
		if !math.IsNaN(c.variance) {
			assert.That(t, near(variance, c.variance, 0.05))
		}
	}
}

func TestMedians(t *testing.T) {
	t.Run("Levy", func(t *testing.T) {
		d := NewLevy(seeds2)
		// 1 / (2 erfc⁻¹(1/2)²)
		want := 1 / (2 * math.Pow(math.Erfcinv(0.5), 2))
		assert.That(t, near(median(draw(samples, d.Sample)), want, 0.03))
	})

	t.Run("HalfCauchy", func(t *testing.T) {
		d := NewHalfCauchy(1192)
		must(t, d.SetParams(2))
		assert.That(t, near(median(draw(samples, d.Sample)), 2, 0.02))
	})

	t.Run("LogLaplace", func(t *testing.T) {
		d := NewLogLaplace(1192)
		must(t, d.SetParams(1, 1))
		assert.That(t, near(median(draw(samples, d.Sample)), math.E, 0.02))
	})
}

// inner counts the samples within width of center.
func inner(xs []float64, center, width float64) (n int) {
	for _, x := range xs {
		if math.Abs(x-center) <= width {
			n++
		}
	}
	return n
}

func TestHeavyTails(t *testing.T) {
	t.Run("Cauchy", func(t *testing.T) {
		d := NewCauchy(1192)
		must(t, d.SetParams(1, 2))
		n := inner(draw(samples, d.Sample), 1, 2)
		assert.That(t, n > samples/2-1000 && n < samples/2+1000)
	})

	t.Run("StudentT1", func(t *testing.T) {
		d := NewStudentT(seeds5)
		n := inner(draw(samples, d.Sample), 0, 1)
		assert.That(t, n > samples/2-1000 && n < samples/2+1000)
	})

	t.Run("StudentT2", func(t *testing.T) {
		d := NewStudentT(seeds5)
		must(t, d.SetParams(2))
		// P(|t₂| <= 1) = 1/√3
		want := samples / math.Sqrt(3)
		n := inner(draw(samples, d.Sample), 0, 1)
		assert.That(t, math.Abs(float64(n)-want) < 1000)
	})
}

func TestBounds(t *testing.T) {
	t.Run("Uniform", func(t *testing.T) {
		d := NewUniform(1192)
		must(t, d.SetParams(-1, 3))
		for i := 0; i < 10000; i++ {
			v := d.Sample()
			assert.That(t, v >= -1 && v <= 3)
		}
	})

	t.Run("Triangular", func(t *testing.T) {
		for _, mode := range []float64{2, 5} {
			d := NewTriangular(1192)
			must(t, d.SetParams(2, 5, mode))
			for i := 0; i < 10000; i++ {
				v := d.Sample()
				assert.That(t, v >= 2 && v <= 5)
			}
		}
	})

	t.Run("Bernoulli", func(t *testing.T) {
		d := NewBernoulli(1192)
		must(t, d.SetParams(1))
		for i := 0; i < 1000; i++ {
			assert.Equal(t, d.Sample(), uint64(1))
		}
		must(t, d.SetParams(0))
		for i := 0; i < 1000; i++ {
			assert.Equal(t, d.Sample(), uint64(0))
		}
	})

	t.Run("Geometric", func(t *testing.T) {
		d := NewGeometric(1192)
		must(t, d.SetParams(1))
		for i := 0; i < 1000; i++ {
			assert.Equal(t, d.Sample(), uint64(1))
		}
	})

	t.Run("Levy", func(t *testing.T) {
		d := NewLevy(seeds2)
		must(t, d.SetParams(3, 0.5))
		for i := 0; i < 10000; i++ {
			assert.That(t, d.Sample() > 3)
		}
	})

	t.Run("Beta", func(t *testing.T) {
		d := NewBeta(seeds6)
		must(t, d.SetParams(0.5, 0.5))
		for i := 0; i < 10000; i++ {
			v := d.Sample()
			assert.That(t, v >= 0 && v <= 1)
		}
	})

	t.Run("BetaSmallShapes", func(t *testing.T) {
		d := NewBeta(seeds6)
		must(t, d.SetParams(0.001, 0.001))
		above := 0
		for i := 0; i < 10000; i++ {
			v := d.Sample()
			assert.That(t, v >= 0 && v <= 1)
			if v > 0.5 {
				above++
			}
		}
		assert.That(t, above > 4500 && above < 5500)
	})

	t.Run("FZeroDenominator", func(t *testing.T) {
		d := NewF(seeds8)
		must(t, d.SetParams(5, 2))

		// the next word is 0, so the first exponential is exactly zero.
		d.c2.uniform = xorshift.T{0, 1, 2, 3, 0}
		v := d.Sample()
		assert.That(t, v > 0 && !math.IsInf(v, 0))
		assert.DeepEqual(t, d.c2.uniform, xorshift.T{2, 3, 0, 0, 129})
	})
}

func TestSetParams(t *testing.T) {
	nan, inf := math.NaN(), math.Inf(1)

	check := func(t *testing.T, err error) {
		t.Helper()
		assert.Error(t, err)
		assert.That(t, Error.Has(err))
	}

	t.Run("Uniform", func(t *testing.T) {
		d := NewUniform(1192)
		check(t, d.SetParams(1, 1))
		check(t, d.SetParams(2, 1))
		check(t, d.SetParams(nan, 1))
		check(t, d.SetParams(0, inf))
		min, max := d.Params()
		assert.Equal(t, min, 0.0)
		assert.Equal(t, max, 1.0)
	})

	t.Run("Triangular", func(t *testing.T) {
		d := NewTriangular(1192)
		check(t, d.SetParams(0, 1, 2))
		check(t, d.SetParams(0, 1, nan))
		min, max, mode := d.Params()
		assert.Equal(t, min, 0.0)
		assert.Equal(t, max, 1.0)
		assert.Equal(t, mode, 0.5)
	})

	t.Run("Probabilities", func(t *testing.T) {
		b := NewBernoulli(1192)
		check(t, b.SetParams(-0.1))
		check(t, b.SetParams(1.1))
		check(t, b.SetParams(nan))
		assert.Equal(t, b.Params(), 0.5)

		g := NewGeometric(1192)
		check(t, g.SetParams(0))
		check(t, g.SetParams(nan))
		assert.Equal(t, g.Params(), 0.5)
	})

	t.Run("Normal", func(t *testing.T) {
		d := NewNormal(seeds2)
		must(t, d.SetParams(2, 9))
		check(t, d.SetParams(0, 0))
		check(t, d.SetParams(0, -1))
		check(t, d.SetParams(inf, 1))
		check(t, d.SetParams(0, nan))
		mean, variance := d.Params()
		assert.Equal(t, mean, 2.0)
		assert.Equal(t, variance, 9.0)
	})

	t.Run("Scales", func(t *testing.T) {
		for _, set := range []func(float64) error{
			NewExponential(1192).SetParams,
			NewRayleigh(1192).SetParams,
			NewHalfNormal(seeds2).SetParams,
			NewHalfCauchy(1192).SetParams,
		} {
			check(t, set(0))
			check(t, set(-1))
			check(t, set(nan))
		}

		d := NewExponential(1192)
		check(t, d.SetParams(0))
		assert.Equal(t, d.Params(), 1.0)
	})

	t.Run("LocationScale", func(t *testing.T) {
		for _, set := range []func(float64, float64) error{
			NewCauchy(1192).SetParams,
			NewGumbel(1192).SetParams,
			NewLaplace(1192).SetParams,
			NewLogLaplace(1192).SetParams,
			NewLevy(seeds2).SetParams,
			NewLogNormal(seeds2).SetParams,
		} {
			check(t, set(0, 0))
			check(t, set(0, nan))
			check(t, set(nan, 1))
		}
	})

	t.Run("Shapes", func(t *testing.T) {
		for _, set := range []func(float64, float64) error{
			NewWeibull(1192).SetParams,
			NewFrechet(1192).SetParams,
			NewGamma(seeds3).SetParams,
			NewBeta(seeds6).SetParams,
			NewInverseGaussian(seeds3).SetParams,
		} {
			check(t, set(0, 1))
			check(t, set(1, 0))
			check(t, set(nan, 1))
		}

		d := NewGamma(seeds3)
		must(t, d.SetParams(1.0/3, 2))
		check(t, d.SetParams(-1, 2))
		shape, scale := d.Params()
		assert.Equal(t, shape, 1.0/3)
		assert.Equal(t, scale, 2.0)

		p := NewPowerFunction(1192)
		check(t, p.SetParams(0, 0, 1))
		check(t, p.SetParams(1, 1, 0))

		r := NewReflectedWeibull(1192)
		check(t, r.SetParams(0, 0, 1))
		check(t, r.SetParams(1, 0, 0))
	})

	t.Run("Erlang", func(t *testing.T) {
		d := NewErlang(seeds3)
		check(t, d.SetParams(0, 1))
		check(t, d.SetParams(-3, 1))
		check(t, d.SetParams(2, 0))
		shape, scale := d.Params()
		assert.Equal(t, shape, int64(1))
		assert.Equal(t, scale, 1.0)
	})

	t.Run("Infinite", func(t *testing.T) {
		ninf := math.Inf(-1)

		p := NewPowerFunction(1192)
		check(t, p.SetParams(1, ninf, inf))
		check(t, p.SetParams(inf, 0, 1))
		check(t, p.SetParams(1, -math.MaxFloat64, math.MaxFloat64))

		tr := NewTriangular(1192)
		check(t, tr.SetParams(ninf, 0, -1))
		check(t, tr.SetParams(0, inf, 1))

		u := NewUniform(1192)
		check(t, u.SetParams(-math.MaxFloat64, math.MaxFloat64))

		ig := NewInverseGaussian(seeds3)
		check(t, ig.SetParams(inf, 1))
		check(t, ig.SetParams(1, inf))
		check(t, ig.SetParams(1e200, 1))

		for _, set := range []func(float64, float64) error{
			NewWeibull(1192).SetParams,
			NewFrechet(1192).SetParams,
			NewGamma(seeds3).SetParams,
			NewBeta(seeds6).SetParams,
		} {
			check(t, set(inf, 1))
			check(t, set(1, inf))
		}

		for _, set := range []func(float64) error{
			NewExponential(1192).SetParams,
			NewRayleigh(1192).SetParams,
			NewHalfNormal(seeds2).SetParams,
			NewHalfCauchy(1192).SetParams,
		} {
			check(t, set(inf))
		}

		for _, set := range []func(float64, float64) error{
			NewNormal(seeds2).SetParams,
			NewLogNormal(seeds2).SetParams,
			NewCauchy(1192).SetParams,
			NewGumbel(1192).SetParams,
			NewLaplace(1192).SetParams,
			NewLogLaplace(1192).SetParams,
			NewLevy(seeds2).SetParams,
		} {
			check(t, set(0, inf))
			check(t, set(ninf, 1))
		}

		r := NewReflectedWeibull(1192)
		check(t, r.SetParams(inf, 0, 1))
		check(t, r.SetParams(1, inf, 1))
		check(t, r.SetParams(1, 0, inf))
		shape, location, scale := r.Params()
		assert.Equal(t, shape, 1.0)
		assert.Equal(t, location, 0.0)
		assert.Equal(t, scale, 1.0)

		e := NewErlang(seeds3)
		check(t, e.SetParams(2, inf))
	})

	t.Run("DegreesOfFreedom", func(t *testing.T) {
		for _, set := range []func(uint64) error{
			NewChiSquare(seeds4).SetParams,
			NewChi(seeds4).SetParams,
			NewStudentT(seeds5).SetParams,
		} {
			check(t, set(0))
			must(t, set(1))
		}

		f := NewF(seeds8)
		check(t, f.SetParams(0, 1))
		check(t, f.SetParams(1, 0))
		dof1, dof2 := f.Params()
		assert.Equal(t, dof1, uint64(1))
		assert.Equal(t, dof2, uint64(1))
	})
}

func TestDeterminism(t *testing.T) {
	a, b := NewBeta(seeds6), NewBeta(seeds6)
	must(t, a.SetParams(0.7, 2.5))
	must(t, b.SetParams(0.7, 2.5))
	for i := 0; i < 1000; i++ {
		assert.Equal(t, a.Sample(), b.Sample())
	}
}

var blackhole float64

func BenchmarkDerived(b *testing.B) {
	b.Run("Normal", func(b *testing.B) {
		d := NewNormal(seeds2)
		for i := 0; i < b.N; i++ {
			blackhole += d.Sample()
		}
	})

	b.Run("Beta", func(b *testing.B) {
		d := NewBeta(seeds6)
		_ = d.SetParams(2, 3)
		for i := 0; i < b.N; i++ {
			blackhole += d.Sample()
		}
	})

	b.Run("StudentT", func(b *testing.B) {
		d := NewStudentT(seeds5)
		_ = d.SetParams(10)
		for i := 0; i < b.N; i++ {
			blackhole += d.Sample()
		}
	})
}
