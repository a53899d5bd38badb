package xorshift

import "math"

// T is a xorshift160 generator: five words of state producing 32 bits per
// step. The zero value is invalid, since zero is a fixed point of the step.
type T [5]uint32

// shift constants from Marsaglia (2003).
const (
	shiftA = 7
	shiftB = 13
	shiftC = 6
)

// denom is the denominator used by every uniform projection.
const denom = float64(math.MaxUint32)

// New constructs a generator with the given seed in the last word. The other
// four words are fixed non-zero constants so that any seed, including zero,
// starts on a non-degenerate orbit.
func New(seed uint32) T {
	return T{123456789, 362436069, 521288629, 88675123, seed}
}

// Uint32 advances the state and returns the new last word.
func (s *T) Uint32() uint32 {
	t := s[0] ^ (s[0] << shiftA)
	s[0], s[1], s[2], s[3] = s[1], s[2], s[3], s[4]
	s[4] = (s[4] ^ (s[4] >> shiftC)) ^ (t ^ (t >> shiftB))
	return s[4]
}

// Closed returns a uniform value in [0, 1].
func (s *T) Closed() float64 {
	return float64(s.Uint32()) / denom
}

// RightOpen returns a uniform value in [0, 1).
func (s *T) RightOpen() float64 {
	for {
		if v := s.Uint32(); v != math.MaxUint32 {
			return float64(v) / denom
		}
	}
}

// Open returns a uniform value in (0, 1).
func (s *T) Open() float64 {
	for {
		if v := s.Uint32(); v != 0 && v != math.MaxUint32 {
			return float64(v) / denom
		}
	}
}

// zero reports if every word of the state is zero.
func (s *T) zero() bool {
	return s[0]|s[1]|s[2]|s[3]|s[4] == 0
}
