// +build gofuzz

package xorshift

import "bytes"

func Fuzz(data []byte) int {
	// ensure it's large enough to hold a state
	if len(data) < stateSize {
		data = append(data, make([]byte, stateSize-len(data))...)
	}
	data = data[:stateSize]

	var s T
	if err := s.UnmarshalBinary(data); err != nil {
		return 0
	}

	out, _ := s.MarshalBinary()
	if !bytes.Equal(out, data) {
		panic("state did not round trip")
	}

	// a reachable state never steps into zero
	for i := 0; i < 64; i++ {
		s.Uint32()
		if s.zero() {
			panic("stepped into the zero state")
		}
	}
	return 1
}
