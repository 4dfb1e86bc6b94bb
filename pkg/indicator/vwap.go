package indicator

import (
	"github.com/tickquant/ta/pkg/types"
)

/*
vwap implements the volume weighted average price

Volume Weighted Average Price (VWAP)
- https://www.investopedia.com/terms/v/vwap.asp

Cumulative over the indicator's lifetime: sum(typical price * volume) over
sum(volume). Reset starts a new accumulation session.
*/
type VWAP struct {
	PriceVolumeSum float64
	VolumeSum      float64
}

func NewVWAP() *VWAP {
	return &VWAP{}
}

func (inc *VWAP) Update(quote types.Quote) float64 {
	inc.PriceVolumeSum += quote.TypicalPrice() * quote.Volume
	inc.VolumeSum += quote.Volume

	// no volume traded yet, no average price to speak of
	if inc.VolumeSum == 0.0 {
		return 0.0
	}

	return inc.PriceVolumeSum / inc.VolumeSum
}

func (inc *VWAP) Last() float64 {
	if inc.VolumeSum == 0.0 {
		return 0.0
	}

	return inc.PriceVolumeSum / inc.VolumeSum
}

func (inc *VWAP) Reset() {
	inc.PriceVolumeSum = 0.0
	inc.VolumeSum = 0.0
}

var _ QuoteIndicator = &VWAP{}
