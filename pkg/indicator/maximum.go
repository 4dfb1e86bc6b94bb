package indicator

/*
maximum returns the highest value over the rolling window.

Mirror image of Minimum: the deque is monotonically decreasing, values
smaller than or equal to the newcomer are discarded from the back and the
front entry is evicted exactly when it leaves the window.
*/
type Maximum struct {
	Window int

	Deque []ExtremePair
	Ticks int
}

func NewMaximum(window int) (*Maximum, error) {
	if err := validatePeriod("maximum", window); err != nil {
		return nil, err
	}

	return &Maximum{
		Window: window,
		Deque:  make([]ExtremePair, 0, window),
	}, nil
}

// Update pushes one value and returns the maximum of the last Window values.
// During warm-up the maximum covers all values seen so far.
func (inc *Maximum) Update(value float64) float64 {
	for len(inc.Deque) > 0 && inc.Deque[len(inc.Deque)-1].Value <= value {
		inc.Deque = inc.Deque[:len(inc.Deque)-1]
	}

	inc.Deque = append(inc.Deque, ExtremePair{Tick: inc.Ticks, Value: value})
	inc.Ticks++

	for inc.Deque[0].Tick < inc.Ticks-inc.Window {
		inc.Deque = inc.Deque[1:]
	}

	return inc.Deque[0].Value
}

func (inc *Maximum) Last() float64 {
	if len(inc.Deque) == 0 {
		return 0.0
	}

	return inc.Deque[0].Value
}

func (inc *Maximum) Reset() {
	inc.Deque = inc.Deque[:0]
	inc.Ticks = 0
}

var _ Float64Indicator = &Maximum{}
