package indicator

import (
	"github.com/tickquant/ta/pkg/types"
)

// DPeriod is the default smoothing window of the %D line.
const DPeriod int = 3

/*
stoch implements the fast stochastic oscillator

Stochastic Oscillator
- https://www.investopedia.com/terms/s/stochasticoscillator.asp

%K normalizes the close into the high/low range of the window, %D is an SMA
of %K.
*/
type Stoch struct {
	Window  int
	DPeriod int

	Minimum *Minimum
	Maximum *Maximum
	DSMA    *SMA
}

// StochResult is the value of one stochastic tick.
type StochResult struct {
	K float64 `json:"k"`
	D float64 `json:"d"`
}

func NewStoch(window, dPeriod int) (*Stoch, error) {
	if err := validatePeriod("stoch", window); err != nil {
		return nil, err
	}
	if err := validatePeriod("stoch d", dPeriod); err != nil {
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
	dsma, err := NewSMA(dPeriod)
	if err != nil {
		return nil, err
	}

	return &Stoch{
		Window:  window,
		DPeriod: dPeriod,
		Minimum: minimum,
		Maximum: maximum,
		DSMA:    dsma,
	}, nil
}

func (inc *Stoch) Update(quote types.Quote) StochResult {
	lowest := inc.Minimum.Update(quote.Low)
	highest := inc.Maximum.Update(quote.High)

	// a flat window has no range to normalize against; read it as the middle
	k := 50.0
	if highest != lowest {
		k = 100.0 * (quote.Close - lowest) / (highest - lowest)
	}

	return StochResult{
		K: k,
		D: inc.DSMA.Update(k),
	}
}

func (inc *Stoch) Reset() {
	inc.Minimum.Reset()
	inc.Maximum.Reset()
	inc.DSMA.Reset()
}
