package xorshift

import "math/rand"

var _ rand.Source64 = (*Source)(nil)

// Source adapts a generator to the math/rand Source64 interface so that a
// reproducible xorshift160 stream can back a *rand.Rand.
type Source struct {
	T T
}

// NewSource returns a Source started from New(seed).
func NewSource(seed uint32) *Source {
	return &Source{T: New(seed)}
}

// Seed resets the source to New(uint32(seed)). The upper 32 bits of the seed
// are discarded.
func (s *Source) Seed(seed int64) {
	s.T = New(uint32(seed))
}

// Uint64 returns two steps of the generator, the first in the high word.
func (s *Source) Uint64() uint64 {
	hi := s.T.Uint32()
	lo := s.T.Uint32()
	return uint64(hi)<<32 | uint64(lo)
}

// Int63 returns a non-negative 63 bit value.
func (s *Source) Int63() int64 {
	return int64(s.Uint64() >> 1)
}
