package indicator

import (
	"github.com/tickquant/ta/pkg/types"
)

/*
obv implements on-balance volume

On-Balance Volume (OBV)
- https://www.investopedia.com/terms/o/onbalancevolume.asp

Cumulative volume signed by the direction of the close. The previous close
starts at zero, so the first quote with a positive close counts as an up
day.
*/
type OBV struct {
	Value         float64
	PreviousClose float64
}

func NewOBV() *OBV {
	return &OBV{}
}

func (inc *OBV) Update(quote types.Quote) float64 {
	if quote.Close > inc.PreviousClose {
		inc.Value += quote.Volume
	} else if quote.Close < inc.PreviousClose {
		inc.Value -= quote.Volume
	}

	inc.PreviousClose = quote.Close
	return inc.Value
}

func (inc *OBV) Last() float64 {
	return inc.Value
}

func (inc *OBV) Reset() {
	inc.Value = 0.0
	inc.PreviousClose = 0.0
}

var _ QuoteIndicator = &OBV{}
