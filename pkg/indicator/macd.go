package indicator

import (
	"github.com/pkg/errors"
)

/*
macd implements moving average convergence divergence

Moving Average Convergence Divergence (MACD)
- https://www.investopedia.com/terms/m/macd.asp
- https://school.stockcharts.com/doku.php?id=technical_indicators:macd-histogram
*/
type MACD struct {
	FastWindow   int
	SlowWindow   int
	SignalWindow int

	FastEWMA   *EWMA
	SlowEWMA   *EWMA
	SignalEWMA *EWMA
}

// MACDResult is the value of one MACD tick.
type MACDResult struct {
	MACD      float64 `json:"macd"`
	Signal    float64 `json:"signal"`
	Histogram float64 `json:"histogram"`
}

func NewMACD(fastWindow, slowWindow, signalWindow int) (*MACD, error) {
	if err := validatePeriod("macd fast", fastWindow); err != nil {
		return nil, err
	}
	if err := validatePeriod("macd slow", slowWindow); err != nil {
		return nil, err
	}
	if err := validatePeriod("macd signal", signalWindow); err != nil {
		return nil, err
	}
	if fastWindow >= slowWindow {
		return nil, errors.Wrapf(ErrInvalidPeriodOrder, "macd: fast=%d slow=%d", fastWindow, slowWindow)
	}

	fast, err := NewEWMA(fastWindow)
	if err != nil {
		return nil, err
	}
	slow, err := NewEWMA(slowWindow)
	if err != nil {
		return nil, err
	}
	signal, err := NewEWMA(signalWindow)
	if err != nil {
		return nil, err
	}

	return &MACD{
		FastWindow:   fastWindow,
		SlowWindow:   slowWindow,
		SignalWindow: signalWindow,
		FastEWMA:     fast,
		SlowEWMA:     slow,
		SignalEWMA:   signal,
	}, nil
}

// Update feeds one price into both EWMAs and the signal line.
func (inc *MACD) Update(value float64) MACDResult {
	macd := inc.FastEWMA.Update(value) - inc.SlowEWMA.Update(value)
	signal := inc.SignalEWMA.Update(macd)

	return MACDResult{
		MACD:      macd,
		Signal:    signal,
		Histogram: macd - signal,
	}
}

func (inc *MACD) Last() MACDResult {
	macd := inc.FastEWMA.Last() - inc.SlowEWMA.Last()
	signal := inc.SignalEWMA.Last()

	return MACDResult{
		MACD:      macd,
		Signal:    signal,
		Histogram: macd - signal,
	}
}

func (inc *MACD) Reset() {
	inc.FastEWMA.Reset()
	inc.SlowEWMA.Reset()
	inc.SignalEWMA.Reset()
}
