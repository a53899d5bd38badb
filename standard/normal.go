package standard

import (
	"math"

	"github.com/zeebo/simplerand/xorshift"
)

// constants for the Monty Python method with m = 32, exactly as published.
const (
	normalB    = 2.50662827463   // sqrt(2π)
	normalS    = 0.88579134438   // a / (b - a)
	normalK    = 30783           // floor((2^(m/2) - 1) * a / b)
	normalW    = 0.00003824869   // b / (2^(m/2) - 1)
	normalP    = 0.94289567219   // (s + 1) / 2
	normalQ    = -0.12127385907  // ln(s)
	normalHalf = 1<<16 - 1       // 2^(m/2) - 1
	normalTail = 2 * math.Pi     // b^2
	normalDiv  = float64(1<<16 - 2)
)

// Normal returns a sample from N(0, 1). Both generators advance: a on every
// call and b only when the tail is reached.
func Normal(a, b *xorshift.T) float64 {
	r := a.Uint32()

	sign := -1.0
	if r&1 == 1 {
		sign = 1.0
	}

	r >>= 1
	h := r & normalHalf
	x := float64(h) * normalW
	if h < normalK {
		return sign * x
	}

	u := (float64(r>>16) + 0.5) / normalDiv
	if math.Log(u) < -x*x/2 {
		return sign * x
	}

	y := sign * normalS * (normalB - x)
	if math.Log(normalP-u) < normalQ-y*y/2 {
		return y
	}

	return sign * normalFoot(a, b)
}

// normalFoot samples the magnitude of the tail beyond b. a supplies the open
// interval deviate and b the closed one; both are drawn every round, even when
// a's word is rejected.
func normalFoot(a, b *xorshift.T) float64 {
	for {
		r := a.Uint32()
		v := b.Closed()
		if r == 0 || r == math.MaxUint32 {
			continue
		}

		x := math.Sqrt(normalTail - 2*math.Log(1-float64(r)/math.MaxUint32))
		if x*v <= normalB {
			return x
		}
	}
}
