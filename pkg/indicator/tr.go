package indicator

import (
	"math"

	"github.com/tickquant/ta/pkg/types"
)

/*
tr implements the true range

True Range
- https://www.investopedia.com/terms/a/atr.asp
*/
type TR struct {
	PreviousClose float64
	Primed        bool
}

func NewTR() *TR {
	return &TR{}
}

// Update returns the true range of the quote: the high-low span stretched
// to cover any gap from the previous close. The first quote has no previous
// close, so its range is just high - low.
func (inc *TR) Update(quote types.Quote) float64 {
	trueRange := quote.High - quote.Low

	if inc.Primed {
		trueRange = math.Max(trueRange, math.Abs(quote.High-inc.PreviousClose))
		trueRange = math.Max(trueRange, math.Abs(quote.Low-inc.PreviousClose))
	}

	inc.PreviousClose = quote.Close
	inc.Primed = true
	return trueRange
}

func (inc *TR) Reset() {
	inc.PreviousClose = 0.0
	inc.Primed = false
}

var _ QuoteIndicator = &TR{}
