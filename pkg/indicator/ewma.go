package indicator

/*
ewma implements the exponential moving average

Exponential Moving Average (EMA)
- https://www.investopedia.com/terms/e/ema.asp
*/
type EWMA struct {
	Window     int
	Multiplier float64

	Value  float64
	Primed bool
}

func NewEWMA(window int) (*EWMA, error) {
	if err := validatePeriod("ewma", window); err != nil {
		return nil, err
	}

	return &EWMA{
		Window:     window,
		Multiplier: 2.0 / float64(window+1),
	}, nil
}

// Update feeds one value and returns the smoothed value. The very first
// input seeds the average unchanged; afterwards the standard recursion
// v' = m*x + (1-m)*v applies.
func (inc *EWMA) Update(value float64) float64 {
	if !inc.Primed {
		inc.Value = value
		inc.Primed = true
		return inc.Value
	}

	inc.Value = inc.Multiplier*value + (1.0-inc.Multiplier)*inc.Value
	return inc.Value
}

func (inc *EWMA) Last() float64 {
	return inc.Value
}

func (inc *EWMA) Reset() {
	inc.Value = 0.0
	inc.Primed = false
}

var _ Float64Indicator = &EWMA{}
