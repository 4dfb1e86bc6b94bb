package indicator

import (
	"github.com/tickquant/ta/pkg/types"
)

/*
slowstoch implements the slow stochastic oscillator

The raw %K of the fast stochastic is smoothed with an extra SMA pass before
the %D line is taken, which removes most of the fast oscillator's whipsaw.
*/
type SlowStoch struct {
	Window       int
	SmoothPeriod int
	DPeriod      int

	Minimum *Minimum
	Maximum *Maximum
	KSMA    *SMA
	DSMA    *SMA
}

func NewSlowStoch(window, smoothPeriod, dPeriod int) (*SlowStoch, error) {
	if err := validatePeriod("slowstoch", window); err != nil {
		return nil, err
	}
	if err := validatePeriod("slowstoch smoothing", smoothPeriod); err != nil {
		return nil, err
	}
	if err := validatePeriod("slowstoch d", dPeriod); err != nil {
		return nil, err
	}

	minimum, err := NewMinimum(window)
	if err != nil {
		return nil, err
	}
	maximum, err := NewMaximum(window)
	if err != nil {
		return nil, err
	}
	ksma, err := NewSMA(smoothPeriod)
	if err != nil {
		return nil, err
	}
	dsma, err := NewSMA(dPeriod)
	if err != nil {
		return nil, err
	}

	return &SlowStoch{
		Window:       window,
		SmoothPeriod: smoothPeriod,
		DPeriod:      dPeriod,
		Minimum:      minimum,
		Maximum:      maximum,
		KSMA:         ksma,
		DSMA:         dsma,
	}, nil
}

func (inc *SlowStoch) Update(quote types.Quote) StochResult {
	lowest := inc.Minimum.Update(quote.Low)
	highest := inc.Maximum.Update(quote.High)

	raw := 50.0
	if highest != lowest {
		raw = 100.0 * (quote.Close - lowest) / (highest - lowest)
	}

	k := inc.KSMA.Update(raw)

	return StochResult{
		K: k,
		D: inc.DSMA.Update(k),
	}
}

func (inc *SlowStoch) Reset() {
	inc.Minimum.Reset()
	inc.Maximum.Reset()
	inc.KSMA.Reset()
	inc.DSMA.Reset()
}
