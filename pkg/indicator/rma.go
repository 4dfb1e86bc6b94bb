package indicator

/*
rma implements Wilder's running moving average

It is the same recursion as the EWMA but with the smoothing coefficient
1/N instead of 2/(N+1). ATR and the classic RSI are defined in terms of
this smoothing, not the standard EMA one.

- https://www.incrediblecharts.com/indicators/wilder_moving_average.php
*/
type RMA struct {
	Window     int
	Multiplier float64

	Value  float64
	Primed bool
}

func NewRMA(window int) (*RMA, error) {
	if err := validatePeriod("rma", window); err != nil {
		return nil, err
	}

	return &RMA{
		Window:     window,
		Multiplier: 1.0 / float64(window),
	}, nil
}

// Update feeds one value and returns the smoothed value, seeding with the
// first input like the EWMA does.
func (inc *RMA) Update(value float64) float64 {
	if !inc.Primed {
		inc.Value = value
		inc.Primed = true
		return inc.Value
	}

	inc.Value = inc.Multiplier*value + (1.0-inc.Multiplier)*inc.Value
	return inc.Value
}

func (inc *RMA) Last() float64 {
	return inc.Value
}

func (inc *RMA) Reset() {
	inc.Value = 0.0
	inc.Primed = false
}

var _ Float64Indicator = &RMA{}
