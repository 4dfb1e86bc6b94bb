package indicator

import (
	"github.com/pkg/errors"
)

/*
ppo implements the percentage price oscillator

Percentage Price Oscillator (PPO)
- https://www.investopedia.com/terms/p/ppo.asp

Same construction as the MACD, but the line is the fast/slow difference as
a percentage of the slow EWMA, so values are comparable across symbols.
*/
type PPO struct {
	FastWindow   int
	SlowWindow   int
	SignalWindow int

	FastEWMA   *EWMA
	SlowEWMA   *EWMA
	SignalEWMA *EWMA
}

// PPOResult is the value of one PPO tick.
type PPOResult struct {
	PPO       float64 `json:"ppo"`
	Signal    float64 `json:"signal"`
	Histogram float64 `json:"histogram"`
}

func NewPPO(fastWindow, slowWindow, signalWindow int) (*PPO, error) {
	if err := validatePeriod("ppo fast", fastWindow); err != nil {
		return nil, err
	}
	if err := validatePeriod("ppo slow", slowWindow); err != nil {
		return nil, err
	}
	if err := validatePeriod("ppo signal", signalWindow); err != nil {
		return nil, err
	}
	if fastWindow >= slowWindow {
		return nil, errors.Wrapf(ErrInvalidPeriodOrder, "ppo: fast=%d slow=%d", fastWindow, slowWindow)
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

	return &PPO{
		FastWindow:   fastWindow,
		SlowWindow:   slowWindow,
		SignalWindow: signalWindow,
		FastEWMA:     fast,
		SlowEWMA:     slow,
		SignalEWMA:   signal,
	}, nil
}

func (inc *PPO) Update(value float64) PPOResult {
	fast := inc.FastEWMA.Update(value)
	slow := inc.SlowEWMA.Update(value)

	// a zero slow average has no meaningful percentage; saturate at zero
	var ppo float64
	if slow != 0.0 {
		ppo = (fast - slow) / slow * 100.0
	}

	signal := inc.SignalEWMA.Update(ppo)

	return PPOResult{
		PPO:       ppo,
		Signal:    signal,
		Histogram: ppo - signal,
	}
}

func (inc *PPO) Reset() {
	inc.FastEWMA.Reset()
	inc.SlowEWMA.Reset()
	inc.SignalEWMA.Reset()
}
