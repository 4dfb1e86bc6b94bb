package indicator

import (
	"github.com/tickquant/ta/pkg/floats"
)

/*
wma implements the weighted moving average

Weighted Moving Average (WMA)
- https://www.investopedia.com/articles/technical/060401.asp

Each value in the window is weighted by its age, newest heaviest: with k
values seen the newest gets weight k and the oldest weight 1.
*/
type WMA struct {
	Window int

	Values *floats.Queue
}

func NewWMA(window int) (*WMA, error) {
	if err := validatePeriod("wma", window); err != nil {
		return nil, err
	}

	return &WMA{
		Window: window,
		Values: floats.NewQueue(window),
	}, nil
}

func (inc *WMA) Update(value float64) float64 {
	inc.Values.Update(value)

	var weighted, weightSum float64
	for i, v := range inc.Values.Values {
		w := float64(i + 1)
		weighted += w * v
		weightSum += w
	}

	return weighted / weightSum
}

func (inc *WMA) Reset() {
	inc.Values.Reset()
}

var _ Float64Indicator = &WMA{}
