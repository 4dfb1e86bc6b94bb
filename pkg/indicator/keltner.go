package indicator

import (
	"github.com/tickquant/ta/pkg/types"
)

/*
keltner implements the keltner channel

Keltner Channel
- https://www.investopedia.com/terms/k/keltnerchannel.asp

Same shape as bollinger bands, but the middle line is an EWMA of the close
and the band width comes from the average true range.
*/
type Keltner struct {
	Window int
	K      float64

	EWMA *EWMA
	ATR  *ATR
}

// KeltnerResult is the value of one keltner channel tick.
type KeltnerResult struct {
	Lower  float64 `json:"lower"`
	Middle float64 `json:"middle"`
	Upper  float64 `json:"upper"`
}

func NewKeltner(window int, k float64) (*Keltner, error) {
	if err := validatePeriod("keltner", window); err != nil {
		return nil, err
	}
	if err := validateMultiplier("keltner", k); err != nil {
		return nil, err
	}

	ewma, err := NewEWMA(window)
	if err != nil {
		return nil, err
	}
	atr, err := NewATR(window)
	if err != nil {
		return nil, err
	}

	return &Keltner{
		Window: window,
		K:      k,
		EWMA:   ewma,
		ATR:    atr,
	}, nil
}

func (inc *Keltner) Update(quote types.Quote) KeltnerResult {
	band := inc.K * inc.ATR.Update(quote)
	middle := inc.EWMA.Update(quote.Close)

	return KeltnerResult{
		Lower:  middle - band,
		Middle: middle,
		Upper:  middle + band,
	}
}

func (inc *Keltner) Reset() {
	inc.EWMA.Reset()
	inc.ATR.Reset()
}
