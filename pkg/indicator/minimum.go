package indicator

// ExtremePair is one candidate extremum inside the monotonic window deque,
// tagged with the absolute tick index it arrived at.
type ExtremePair struct {
	Tick  int     `json:"tick"`
	Value float64 `json:"value"`
}

/*
minimum returns the lowest value over the rolling window.

The window is kept as a monotonically increasing deque: a new value discards
every older value that is greater than or equal to it, since those can never
become the minimum again before the new value leaves the window. Popping
equal values keeps the most recent one as the eviction anchor, so repeated
equal inputs stay stable. Each value enters and leaves the deque once, which
makes Update amortized O(1).
*/
type Minimum struct {
	Window int

	Deque []ExtremePair
	Ticks int
}

func NewMinimum(window int) (*Minimum, error) {
	if err := validatePeriod("minimum", window); err != nil {
		return nil, err
	}

	return &Minimum{
		Window: window,
		Deque:  make([]ExtremePair, 0, window),
	}, nil
}

// Update pushes one value and returns the minimum of the last Window values.
// During warm-up the minimum covers all values seen so far.
func (inc *Minimum) Update(value float64) float64 {
	for len(inc.Deque) > 0 && inc.Deque[len(inc.Deque)-1].Value >= value {
		inc.Deque = inc.Deque[:len(inc.Deque)-1]
	}

	inc.Deque = append(inc.Deque, ExtremePair{Tick: inc.Ticks, Value: value})
	inc.Ticks++

	for inc.Deque[0].Tick < inc.Ticks-inc.Window {
		inc.Deque = inc.Deque[1:]
	}

	return inc.Deque[0].Value
}

func (inc *Minimum) Last() float64 {
	if len(inc.Deque) == 0 {
		return 0.0
	}

	return inc.Deque[0].Value
}

func (inc *Minimum) Reset() {
	inc.Deque = inc.Deque[:0]
	inc.Ticks = 0
}

var _ Float64Indicator = &Minimum{}
