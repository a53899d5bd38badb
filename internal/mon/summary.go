package mon

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"
)

const (
	bufferShift = 8 // 256 elements
	bufferElems = 1 << bufferShift
	bufferMask  = bufferElems - 1
)

// Summary keeps running moments of every observed sample and a ring of the
// most recent ones. It is not thread safe.
type Summary struct {
	total    int64
	mean     float64
	m2       float64
	min, max float64
	recent   [bufferElems]float64
}

// Observe adds a sample to the summary.
func (s *Summary) Observe(v float64) {
	s.recent[s.total&bufferMask] = v
	s.total++

	if s.total == 1 {
		s.min, s.max = v, v
	} else {
		s.min = math.Min(s.min, v)
		s.max = math.Max(s.max, v)
	}

	// welford's update
	delta := v - s.mean
	s.mean += delta / float64(s.total)
	s.m2 += delta * (v - s.mean)
}

// Total returns the amount of samples observed.
func (s *Summary) Total() int64 { return s.total }

// Mean returns the mean of every observed sample.
func (s *Summary) Mean() float64 { return s.mean }

// Variance returns the unbiased variance of every observed sample. It is NaN
// with fewer than two samples.
func (s *Summary) Variance() float64 {
	if s.total < 2 {
		return math.NaN()
	}
	return s.m2 / float64(s.total-1)
}

// Min returns the smallest observed sample.
func (s *Summary) Min() float64 { return s.min }

// Max returns the largest observed sample.
func (s *Summary) Max() float64 { return s.max }

// recentLen returns the number of valid entries in the recent buffer.
func (s *Summary) recentLen() int {
	if s.total > bufferElems {
		return bufferElems
	}
	return int(s.total)
}

// Recent returns a copy of the most recently observed samples, oldest first.
func (s *Summary) Recent() []float64 {
	n := s.recentLen()
	out := make([]float64, n)
	start := s.total - int64(n)
	for i := range out {
		out[i] = s.recent[(start+int64(i))&bufferMask]
	}
	return out
}

// Quantile returns the empirical p quantile of the recent samples. It is NaN
// if nothing has been observed.
func (s *Summary) Quantile(p float64) float64 {
	xs := s.Recent()
	if len(xs) == 0 {
		return math.NaN()
	}
	sort.Float64s(xs)
	return stat.Quantile(p, stat.Empirical, xs, nil)
}
