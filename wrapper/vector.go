package wrapper

import (
	"math"

	"gonum.org/v1/gonum/blas/blas32"
	"gonum.org/v1/gonum/blas/blas64"
	"gonum.org/v1/gonum/floats"
)

// Float is the set of element types the helpers of this package work on.
type Float interface {
	float32 | float64
}

// Float64s converts data to float64, without copying when it already is.
func Float64s[F Float](data []F) []float64 {
	if d, ok := any(data).([]float64); ok {
		return d
	}
	out := make([]float64, len(data))
	for i, v := range data {
		out[i] = float64(v)
	}
	return out
}

// FromFloat64s converts float64 data to the F element type.
func FromFloat64s[F Float](data []float64) []F {
	if d, ok := any(data).([]F); ok {
		return d
	}
	out := make([]F, len(data))
	for i, v := range data {
		out[i] = F(v)
	}
	return out
}

// Columns returns the number of dim sized columns in data and true if
// data is an exact multiple of dim.
func Columns[F Float](data []F, dim int) (int, bool) {
	if dim <= 0 {
		return 0, false
	}
	return len(data) / dim, len(data)%dim == 0
}

// Column returns the i-th column of a column major dim x n matrix.
func Column[F Float](data []F, dim, i int) []F {
	return data[i*dim : (i+1)*dim]
}

// Norm returns the euclidean norm of v.
func Norm[F Float](v []F) float64 {
	switch d := any(v).(type) {
	case []float32:
		return float64(blas32.Nrm2(len(d), blas32.Vector{Inc: 1, Data: d}))
	case []float64:
		return blas64.Nrm2(blas64.Vector{N: len(d), Inc: 1, Data: d})
	}
	return 0
}

// ArgMax returns the index of the greatest element of v, or -1 if v is empty.
func ArgMax[F Float](v []F) int {
	if len(v) == 0 {
		return -1
	}
	return floats.MaxIdx(Float64s(v))
}

// NBest returns the indexes of the n greatest elements of v, from the
// greatest to the smallest.
func NBest[F Float](v []F, n int) []int {
	if n > len(v) {
		n = len(v)
	}
	if n <= 0 {
		return []int{}
	} else if n == 1 {
		return []int{ArgMax(v)}
	}

	sorted := make([]float64, len(v))
	copy(sorted, Float64s(v))
	idx := make([]int, len(v))
	floats.Argsort(sorted, idx)

	best := make([]int, n)
	for i := 0; i < n; i++ {
		best[i] = idx[len(idx)-1-i]
	}
	return best
}

// Summary accumulates running statistics over the values and the
// records of a data section.
type Summary struct {
	Count   uint64
	Records uint64
	Min     float64
	Max     float64
	sum     float64
	sumSq   float64
	normSum float64
}

// Add accumulates the records of a column major dim x n matrix.
func (s *Summary) Add(data []float64, dim int) {
	if len(data) == 0 {
		return
	}

	min, max := floats.Min(data), floats.Max(data)
	if s.Count == 0 || min < s.Min {
		s.Min = min
	}
	if s.Count == 0 || max > s.Max {
		s.Max = max
	}

	s.Count += uint64(len(data))
	s.sum += floats.Sum(data)
	s.sumSq += floats.Dot(data, data)

	if n, ok := Columns(data, dim); ok {
		for i := 0; i < n; i++ {
			s.normSum += Norm(Column(data, dim, i))
		}
		s.Records += uint64(n)
	}
}

// Mean returns the mean of all the values seen so far.
func (s *Summary) Mean() float64 {
	if s.Count == 0 {
		return 0
	}
	return s.sum / float64(s.Count)
}

// StdDev returns the population standard deviation of all the values
// seen so far.
func (s *Summary) StdDev() float64 {
	if s.Count == 0 {
		return 0
	}
	mean := s.Mean()
	variance := s.sumSq/float64(s.Count) - mean*mean
	if variance < 0 {
		variance = 0
	}
	return math.Sqrt(variance)
}

// MeanNorm returns the mean euclidean norm of the records seen so far.
func (s *Summary) MeanNorm() float64 {
	if s.Records == 0 {
		return 0
	}
	return s.normSum / float64(s.Records)
}
