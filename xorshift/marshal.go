package xorshift

import (
	"encoding/binary"

	"github.com/zeebo/errs"
)

// Error is the class that contains all the errors from this package.
var Error = errs.Class("xorshift")

// stateSize is the number of bytes in a marshaled state.
const stateSize = 5 * 4

// MarshalBinary encodes the state as five little endian words.
func (s T) MarshalBinary() ([]byte, error) {
	buf := make([]byte, stateSize)
	for i, w := range s {
		binary.LittleEndian.PutUint32(buf[4*i:], w)
	}
	return buf, nil
}

// UnmarshalBinary restores a state written by MarshalBinary. The state is left
// unchanged if an error is returned.
func (s *T) UnmarshalBinary(data []byte) error {
	if len(data) != stateSize {
		return Error.New("invalid state size: %d", len(data))
	}

	var next T
	for i := range next {
		next[i] = binary.LittleEndian.Uint32(data[4*i:])
	}
	if next.zero() {
		return Error.New("state is all zero")
	}

	*s = next
	return nil
}
