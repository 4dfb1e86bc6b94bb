package indicator

import (
	"github.com/tickquant/ta/pkg/floats"
)

/*
roc implements rate of change

Rate of Change (ROC)
- https://www.investopedia.com/terms/p/pricerateofchange.asp

ROC = (price - price N ticks ago) / (price N ticks ago) * 100

Only a lag queue of the last N prices is needed. Before the queue fills,
the oldest price seen so far is the comparison point.
*/
type ROC struct {
	Window int

	Prices *floats.Queue
}

func NewROC(window int) (*ROC, error) {
	if err := validatePeriod("roc", window); err != nil {
		return nil, err
	}

	return &ROC{
		Window: window,
		Prices: floats.NewQueue(window),
	}, nil
}

func (inc *ROC) Update(value float64) float64 {
	old, evicted := inc.Prices.Update(value)

	if !evicted {
		if inc.Prices.Length() == 1 {
			// nothing to change from yet
			return 0.0
		}
		old = inc.Prices.Values[0]
	}

	if old == 0.0 {
		// the change from a zero price has no percentage representation
		return 0.0
	}

	return (value - old) / old * 100.0
}

func (inc *ROC) Reset() {
	inc.Prices.Reset()
}

var _ Float64Indicator = &ROC{}
