package indicator

import (
	"github.com/tickquant/ta/pkg/floats"
)

/*
sma implements the simple moving average

Simple Moving Average (SMA)
- https://www.investopedia.com/terms/s/sma.asp
*/
type SMA struct {
	Window int

	// Values is the circular window buffer, always Window elements long.
	Values floats.Slice
	Index  int
	Count  int
	Sum    float64
}

func NewSMA(window int) (*SMA, error) {
	if err := validatePeriod("sma", window); err != nil {
		return nil, err
	}

	return &SMA{
		Window: window,
		Values: make(floats.Slice, window),
	}, nil
}

// Update pushes one value into the window and returns the current average.
// During warm-up the divisor is the number of values seen so far, so the
// first value is returned unchanged.
func (inc *SMA) Update(value float64) float64 {
	old := inc.Values[inc.Index]
	inc.Values[inc.Index] = value
	inc.Index = (inc.Index + 1) % inc.Window

	if inc.Count < inc.Window {
		inc.Count++
	}

	inc.Sum += value - old
	return inc.Sum / float64(inc.Count)
}

func (inc *SMA) Last() float64 {
	if inc.Count == 0 {
		return 0.0
	}

	return inc.Sum / float64(inc.Count)
}

func (inc *SMA) Reset() {
	for i := range inc.Values {
		inc.Values[i] = 0.0
	}
	inc.Index = 0
	inc.Count = 0
	inc.Sum = 0.0
}

var _ Float64Indicator = &SMA{}
