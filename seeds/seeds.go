// Package seeds acquires and prepares the uint32 seeds used to start
// xorshift160 streams.
package seeds

import (
	"strconv"
	"time"

	"github.com/cespare/xxhash"
	"github.com/minio/highwayhash"
	"github.com/zeebo/errs"
)

// Error is the class that contains all the errors from this package.
var Error = errs.Class("seeds")

// Fallback replaces any seed that would otherwise be zero.
const Fallback = 1192

// Dedupe rewrites seeds in place so that sibling streams do not start in the
// same state. Each later duplicate of an earlier seed is perturbed once, in a
// single pass ordered by earlier index then later index.
//
// N.B. a perturbed seed can collide with a seed that was already visited, so
// this is not a uniqueness guarantee for adversarial batches. It is enough for
// the batch sizes the distributions use.
func Dedupe(seeds []uint32) {
	for i := 0; i < len(seeds); i++ {
		for j := i + 1; j < len(seeds); j++ {
			if seeds[i] != seeds[j] {
				continue
			}
			seeds[j] = seeds[j]<<3 ^ seeds[i]>>2
			if seeds[j] == 0 {
				seeds[j] = Fallback
			}
		}
	}
}

// fold xors the halves of a 64 bit hash together, avoiding zero.
func fold(h uint64) uint32 {
	if v := uint32(h>>32) ^ uint32(h); v != 0 {
		return v
	}
	return Fallback
}

// FromName returns a seed derived from the xxhash of name. Equal names always
// produce equal seeds.
func FromName(name string) uint32 {
	return fold(xxhash.Sum64String(name))
}

// Batch returns n de-duplicated seeds derived from name, one per sibling
// stream, using the names "name#0" through "name#n-1".
func Batch(name string, n int) []uint32 {
	out := make([]uint32, n)
	buf := make([]byte, 0, len(name)+8)
	for i := range out {
		buf = append(buf[:0], name...)
		buf = append(buf, '#')
		buf = strconv.AppendInt(buf, int64(i), 10)
		out[i] = fold(xxhash.Sum64(buf))
	}
	Dedupe(out)
	return out
}

// FromKey returns a seed derived from the keyed HighwayHash of data. The key
// must be 32 bytes.
func FromKey(key, data []byte) (uint32, error) {
	h, err := highwayhash.New64(key)
	if err != nil {
		return 0, Error.Wrap(err)
	}
	_, _ = h.Write(data)
	return fold(h.Sum64()), nil
}

// Clock returns a seed from the wall clock in milliseconds. It is the only
// source of nondeterminism in this module and should be called once, at the
// edge, by code that wants unrepeatable streams.
func Clock() uint32 {
	return uint32(time.Now().UnixNano() / int64(time.Millisecond))
}
