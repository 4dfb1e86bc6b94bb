package indicator

import (
	"math"

	"github.com/tickquant/ta/pkg/floats"
)

/*
efficiencyratio implements Kaufman's efficiency ratio

Efficiency Ratio (ER)
- https://strategyquant.com/codebase/kaufmans-efficiency-ratio-ker/

The net price change over the window divided by the sum of the absolute
tick-to-tick changes needed to get there. 1.0 is a perfectly trending
market, values near 0 are churn.
*/
type EfficiencyRatio struct {
	Window int

	// Prices holds up to Window+1 prices so the window spans Window changes.
	Prices floats.Slice
}

func NewEfficiencyRatio(window int) (*EfficiencyRatio, error) {
	if err := validatePeriod("efficiency ratio", window); err != nil {
		return nil, err
	}

	return &EfficiencyRatio{
		Window: window,
		Prices: make(floats.Slice, 0, window+1),
	}, nil
}

func (inc *EfficiencyRatio) Update(value float64) float64 {
	inc.Prices.Push(value)
	if len(inc.Prices) > inc.Window+1 {
		inc.Prices = inc.Prices[1:]
	}

	// fewer than two changes cannot be anything but fully efficient
	if len(inc.Prices) <= 2 {
		return 1.0
	}

	var volatility float64
	for i := 1; i < len(inc.Prices); i++ {
		volatility += math.Abs(inc.Prices[i] - inc.Prices[i-1])
	}

	// no movement at all; by the same token, fully efficient
	if volatility == 0.0 {
		return 1.0
	}

	direction := math.Abs(inc.Prices[len(inc.Prices)-1] - inc.Prices[0])
	return direction / volatility
}

func (inc *EfficiencyRatio) Reset() {
	inc.Prices = inc.Prices[:0]
}

var _ Float64Indicator = &EfficiencyRatio{}
