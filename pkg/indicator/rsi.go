package indicator

/*
rsi implements the relative strength index

Relative Strength Index (RSI)
- https://www.investopedia.com/terms/r/rsi.asp

Upward and downward moves are smoothed separately with EWMAs and combined
as 100 * up / (up + down), which is the same value as 100 - 100/(1 + up/down)
without the division hazard.
*/
type RSI struct {
	Window int

	UpEWMA   *EWMA
	DownEWMA *EWMA

	PreviousPrice float64
	Primed        bool
}

func NewRSI(window int) (*RSI, error) {
	if err := validatePeriod("rsi", window); err != nil {
		return nil, err
	}

	up, err := NewEWMA(window)
	if err != nil {
		return nil, err
	}
	down, err := NewEWMA(window)
	if err != nil {
		return nil, err
	}

	return &RSI{
		Window:   window,
		UpEWMA:   up,
		DownEWMA: down,
	}, nil
}

// Update feeds one price and returns the index in [0, 100]. The first tick
// has no previous price to diff against; both averages are seeded with the
// same small bias so it reads 50, a neutral strength.
func (inc *RSI) Update(value float64) float64 {
	up := 0.0
	down := 0.0

	if !inc.Primed {
		inc.Primed = true
		up = 0.1
		down = 0.1
	} else {
		change := value - inc.PreviousPrice
		if change > 0.0 {
			up = change
		} else {
			down = -change
		}
	}

	inc.PreviousPrice = value

	upAvg := inc.UpEWMA.Update(up)
	downAvg := inc.DownEWMA.Update(down)

	// both averages decay toward zero on a perfectly flat stream; call that
	// neutral rather than dividing zero by zero
	if upAvg+downAvg == 0.0 {
		return 50.0
	}

	// zero average loss saturates at 100 here by construction
	return 100.0 * upAvg / (upAvg + downAvg)
}

func (inc *RSI) Last() float64 {
	upAvg := inc.UpEWMA.Last()
	downAvg := inc.DownEWMA.Last()
	if upAvg+downAvg == 0.0 {
		return 50.0
	}

	return 100.0 * upAvg / (upAvg + downAvg)
}

func (inc *RSI) Reset() {
	inc.UpEWMA.Reset()
	inc.DownEWMA.Reset()
	inc.PreviousPrice = 0.0
	inc.Primed = false
}

var _ Float64Indicator = &RSI{}
