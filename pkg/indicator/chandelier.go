package indicator

import (
	"github.com/tickquant/ta/pkg/types"
)

/*
chandelier implements the chandelier exit

Chandelier Exit
- https://school.stockcharts.com/doku.php?id=technical_indicators:chandelier_exit

Long Exit  = Highest High - Multiplier * ATR
Short Exit = Lowest Low   + Multiplier * ATR
*/
type ChandelierExit struct {
	Window     int
	Multiplier float64

	ATR     *ATR
	Maximum *Maximum
	Minimum *Minimum
}

// ChandelierExitResult is the value of one chandelier exit tick.
type ChandelierExitResult struct {
	Long  float64 `json:"long"`
	Short float64 `json:"short"`
}

func NewChandelierExit(window int, multiplier float64) (*ChandelierExit, error) {
	if err := validatePeriod("chandelier exit", window); err != nil {
		return nil, err
	}
	if err := validateMultiplier("chandelier exit", multiplier); err != nil {
		return nil, err
	}

	atr, err := NewATR(window)
	if err != nil {
		return nil, err
	}
	maximum, err := NewMaximum(window)
	if err != nil {
		return nil, err
	}
	minimum, err := NewMinimum(window)
	if err != nil {
		return nil, err
	}

	return &ChandelierExit{
		Window:     window,
		Multiplier: multiplier,
		ATR:        atr,
		Maximum:    maximum,
		Minimum:    minimum,
	}, nil
}

func (inc *ChandelierExit) Update(quote types.Quote) ChandelierExitResult {
	atr := inc.ATR.Update(quote)
	highest := inc.Maximum.Update(quote.High)
	lowest := inc.Minimum.Update(quote.Low)

	return ChandelierExitResult{
		Long:  highest - inc.Multiplier*atr,
		Short: lowest + inc.Multiplier*atr,
	}
}

func (inc *ChandelierExit) Reset() {
	inc.ATR.Reset()
	inc.Maximum.Reset()
	inc.Minimum.Reset()
}
