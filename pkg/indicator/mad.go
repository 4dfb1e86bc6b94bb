package indicator

import (
	"math"

	"github.com/tickquant/ta/pkg/floats"
)

/*
mad implements the rolling mean absolute deviation

Mean Absolute Deviation
- https://en.wikipedia.org/wiki/Average_absolute_deviation
*/
type MAD struct {
	Window int

	Values *floats.Queue
}

func NewMAD(window int) (*MAD, error) {
	if err := validatePeriod("mad", window); err != nil {
		return nil, err
	}

	return &MAD{
		Window: window,
		Values: floats.NewQueue(window),
	}, nil
}

// Update pushes one value and returns the average absolute deviation from
// the current window mean. The deviations depend on the mean itself, so
// this one primitive rescans the window; the window is bounded, not the
// history.
func (inc *MAD) Update(value float64) float64 {
	inc.Values.Update(value)
	return inc.Last()
}

func (inc *MAD) Last() float64 {
	if inc.Values.Length() == 0 {
		return 0.0
	}

	mean := inc.Values.Mean()

	var sum float64
	for _, v := range inc.Values.Values {
		sum += math.Abs(v - mean)
	}

	return sum / float64(inc.Values.Length())
}

func (inc *MAD) Reset() {
	inc.Values.Reset()
}

var _ Float64Indicator = &MAD{}
