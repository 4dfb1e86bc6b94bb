package floats

import (
	"math"

	gfloats "gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

type Slice []float64

func (s *Slice) Push(v float64) {
	*s = append(*s, v)
}

func (s Slice) Length() int {
	return len(s)
}

// Last returns the i-th value counting backwards from the newest one.
func (s Slice) Last(i int) float64 {
	length := len(s)
	if length-i-1 < 0 {
		return 0
	}
	return s[length-i-1]
}

func (s Slice) Max() float64 {
	m := -math.MaxFloat64
	for _, v := range s {
		m = math.Max(m, v)
	}
	return m
}

func (s Slice) Min() float64 {
	m := math.MaxFloat64
	for _, v := range s {
		m = math.Min(m, v)
	}
	return m
}

func (s Slice) Sum() float64 {
	if len(s) == 0 {
		return 0
	}
	return gfloats.Sum(s)
}

func (s Slice) Mean() float64 {
	if len(s) == 0 {
		return 0
	}
	return stat.Mean(s, nil)
}

// Tail returns the last size elements as a copy.
func (s Slice) Tail(size int) Slice {
	length := len(s)
	if length <= size {
		win := make(Slice, length)
		copy(win, s)
		return win
	}

	win := make(Slice, size)
	copy(win, s[length-size:])
	return win
}

// Diff returns the first differences, with a leading zero so the result
// keeps the input length.
func (s Slice) Diff() Slice {
	var values Slice
	for i, v := range s {
		if i == 0 {
			values.Push(0)
			continue
		}
		values.Push(v - s[i-1])
	}
	return values
}

func (s Slice) Abs() Slice {
	var values Slice
	for _, v := range s {
		values.Push(math.Abs(v))
	}
	return values
}
