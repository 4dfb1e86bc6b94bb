package indicator

import (
	"math"

	"github.com/tickquant/ta/pkg/floats"
)

/*
stddev implements the rolling standard deviation

Standard Deviation
- https://www.investopedia.com/terms/s/standarddeviation.asp
*/
type StdDev struct {
	Window int

	// Values holds the observations shifted by Anchor. Centering the sums on
	// the first observation keeps them small, so the sum-of-squares formula
	// does not cancel away the variance at large price magnitudes.
	Values     floats.Slice
	Anchor     float64
	Index      int
	Count      int
	Sum        float64
	SquaredSum float64
}

func NewStdDev(window int) (*StdDev, error) {
	if err := validatePeriod("stddev", window); err != nil {
		return nil, err
	}

	return &StdDev{
		Window: window,
		Values: make(floats.Slice, window),
	}, nil
}

// Update pushes one value into the window and returns the population
// standard deviation. The divisor is the number of values seen so far, the
// same warm-up policy the SMA uses, so paired SMA/StdDev windows agree.
func (inc *StdDev) Update(value float64) float64 {
	if inc.Count == 0 {
		inc.Anchor = value
	}

	shifted := value - inc.Anchor
	old := inc.Values[inc.Index]
	inc.Values[inc.Index] = shifted
	inc.Index = (inc.Index + 1) % inc.Window

	if inc.Count < inc.Window {
		inc.Count++
	}

	inc.Sum += shifted - old
	inc.SquaredSum += shifted*shifted - old*old
	return inc.stddev()
}

func (inc *StdDev) stddev() float64 {
	count := float64(inc.Count)
	mean := inc.Sum / count

	// rounding can still leave a tiny negative variance, which would turn
	// into NaN under Sqrt
	variance := inc.SquaredSum/count - mean*mean
	if variance < 0.0 {
		variance = 0.0
	}

	return math.Sqrt(variance)
}

// Mean returns the mean of the current window under the same warm-up
// divisor policy.
func (inc *StdDev) Mean() float64 {
	if inc.Count == 0 {
		return 0.0
	}

	return inc.Anchor + inc.Sum/float64(inc.Count)
}

func (inc *StdDev) Last() float64 {
	if inc.Count == 0 {
		return 0.0
	}

	return inc.stddev()
}

func (inc *StdDev) Reset() {
	for i := range inc.Values {
		inc.Values[i] = 0.0
	}
	inc.Anchor = 0.0
	inc.Index = 0
	inc.Count = 0
	inc.Sum = 0.0
	inc.SquaredSum = 0.0
}

var _ Float64Indicator = &StdDev{}
