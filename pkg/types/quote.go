package types

import (
	"fmt"
	"math"

	"github.com/pkg/errors"
)

// ErrInvalidQuote is wrapped by Quote validation failures.
var ErrInvalidQuote = errors.New("invalid quote")

// Quote is a single OHLCV observation of one time step.
// It is immutable once constructed; indicators that need more than a single
// scalar (true range, money flow, ...) consume quotes instead of close prices.
type Quote struct {
	Open   float64 `json:"open"`
	High   float64 `json:"high"`
	Low    float64 `json:"low"`
	Close  float64 `json:"close"`
	Volume float64 `json:"volume"`
}

// NewQuote validates the fields once and returns the quote.
func NewQuote(open, high, low, cloze, volume float64) (Quote, error) {
	q := Quote{
		Open:   open,
		High:   high,
		Low:    low,
		Close:  cloze,
		Volume: volume,
	}

	if err := q.Validate(); err != nil {
		return Quote{}, err
	}

	return q, nil
}

// Validate checks the quote invariants: finite fields, high >= low and a
// non-negative volume. No other ordering among the prices is enforced.
func (q Quote) Validate() error {
	for name, v := range map[string]float64{
		"open":   q.Open,
		"high":   q.High,
		"low":    q.Low,
		"close":  q.Close,
		"volume": q.Volume,
	} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return errors.Wrapf(ErrInvalidQuote, "%s is not a finite number", name)
		}
	}

	if q.High < q.Low {
		return errors.Wrapf(ErrInvalidQuote, "high %v is below low %v", q.High, q.Low)
	}

	if q.Volume < 0 {
		return errors.Wrapf(ErrInvalidQuote, "negative volume %v", q.Volume)
	}

	return nil
}

// TypicalPrice returns (high + low + close) / 3.
func (q Quote) TypicalPrice() float64 {
	return (q.High + q.Low + q.Close) / 3.0
}

func (q Quote) String() string {
	return fmt.Sprintf("O:%v H:%v L:%v C:%v V:%v", q.Open, q.High, q.Low, q.Close, q.Volume)
}
