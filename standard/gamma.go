package standard

import (
	"math"

	"github.com/zeebo/simplerand/internal/debug"
	"github.com/zeebo/simplerand/xorshift"
)

// Gamma returns a sample from Γ(shape, 1) using the Marsaglia-Tsang method.
// u supplies the uniform deviates and n0, n1 drive the normal proposals. The
// shape must be positive: callers validate it before sampling.
//
// A shape of exactly 1 is Exp(1) drawn from u. A shape below 1 is boosted to
// shape+1 and scaled by U^(1/shape), which needs at most one extra level.
func Gamma(u, n0, n1 *xorshift.T, shape float64) float64 {
	debug.Assert("gamma shape must be positive", func() bool { return shape > 0 })

	switch {
	case shape == 1:
		return Exponential(u)
	case shape < 1:
		y := Gamma(u, n0, n1, shape+1)
		return y * math.Pow(u.Open(), 1/shape)
	default:
		return marsagliaTsang(u, n0, n1, shape)
	}
}

// marsagliaTsang samples Γ(shape, 1) for shape > 1.
func marsagliaTsang(u, n0, n1 *xorshift.T, shape float64) float64 {
	d := shape - 1.0/3
	c := math.Pow(9*d, -0.5)

	for {
		z := Normal(n0, n1)
		v := 1 + c*z
		if v <= 0 {
			continue
		}

		w := v * v * v
		y := d * w
		x := u.Open()

		z2 := z * z
		if x <= 1-0.0331*z2*z2 {
			return y
		}
		if z2/2+d*(math.Log(w)+1)-y >= math.Log(x) {
			return y
		}
	}
}
