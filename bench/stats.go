package bench

import "math"

// runningStats accumulates mean and sample variance with Welford's online
// algorithm.
type runningStats struct {
	n    uint
	mean float64
	m2   float64
}

func (s *runningStats) add(x float64) {
	s.n++
	delta := x - s.mean
	s.mean += delta / float64(s.n)
	s.m2 += delta * (x - s.mean)
}

func (s *runningStats) count() uint { return s.n }

func (s *runningStats) average() float64 { return s.mean }

// variance returns the sample variance, or 0 with fewer than two values.
func (s *runningStats) variance() float64 {
	if s.n < 2 {
		return 0
	}

	return s.m2 / float64(s.n-1)
}

func (s *runningStats) stddev() float64 {
	return math.Sqrt(s.variance())
}
