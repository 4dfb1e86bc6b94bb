package indicator

import (
	"github.com/tickquant/ta/pkg/types"
)

/*
atr implements the average true range

Average True Range (ATR)
- https://www.investopedia.com/terms/a/atr.asp

The true range is smoothed with Wilder's RMA (coefficient 1/N), not the
standard EMA coefficient 2/(N+1).
*/
type ATR struct {
	Window int

	TR  *TR
	RMA *RMA
}

func NewATR(window int) (*ATR, error) {
	if err := validatePeriod("atr", window); err != nil {
		return nil, err
	}

	rma, err := NewRMA(window)
	if err != nil {
		return nil, err
	}

	return &ATR{
		Window: window,
		TR:     NewTR(),
		RMA:    rma,
	}, nil
}

func (inc *ATR) Update(quote types.Quote) float64 {
	return inc.RMA.Update(inc.TR.Update(quote))
}

func (inc *ATR) Last() float64 {
	return inc.RMA.Last()
}

func (inc *ATR) Reset() {
	inc.TR.Reset()
	inc.RMA.Reset()
}

var _ QuoteIndicator = &ATR{}
