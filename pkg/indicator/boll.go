package indicator

/*
boll implements the bollinger bands indicator

The Basics of Bollinger Bands
- https://www.investopedia.com/articles/technical/102201.asp

Bollinger Bands
- https://www.investopedia.com/terms/b/bollingerbands.asp
*/
type BOLL struct {
	Window int

	// K is the band width in standard deviations, generally 2
	K float64

	SMA    *SMA
	StdDev *StdDev
}

// BOLLResult is the value of one bollinger bands tick.
type BOLLResult struct {
	Lower  float64 `json:"lower"`
	Middle float64 `json:"middle"`
	Upper  float64 `json:"upper"`
}

func NewBOLL(window int, k float64) (*BOLL, error) {
	if err := validatePeriod("boll", window); err != nil {
		return nil, err
	}
	if err := validateMultiplier("boll", k); err != nil {
		return nil, err
	}

	sma, err := NewSMA(window)
	if err != nil {
		return nil, err
	}
	stdDev, err := NewStdDev(window)
	if err != nil {
		return nil, err
	}

	return &BOLL{
		Window: window,
		K:      k,
		SMA:    sma,
		StdDev: stdDev,
	}, nil
}

// Update feeds one price into the shared window. The middle band is the
// SMA, the outer bands sit K population standard deviations away. Both
// primitives use the same warm-up divisor, so the bands collapse onto the
// middle one while the window variance is zero.
func (inc *BOLL) Update(value float64) BOLLResult {
	middle := inc.SMA.Update(value)
	band := inc.K * inc.StdDev.Update(value)

	return BOLLResult{
		Lower:  middle - band,
		Middle: middle,
		Upper:  middle + band,
	}
}

func (inc *BOLL) Reset() {
	inc.SMA.Reset()
	inc.StdDev.Reset()
}
