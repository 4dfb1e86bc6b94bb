package indicator

import (
	"math"

	"github.com/pkg/errors"
)

var (
	ErrInvalidPeriod      = errors.New("invalid period, must be at least 1")
	ErrInvalidMultiplier  = errors.New("invalid multiplier, must be a positive number")
	ErrInvalidPeriodOrder = errors.New("invalid period order, the fast period must be shorter than the slow one")
)

func validatePeriod(name string, period int) error {
	if period < 1 {
		return errors.Wrapf(ErrInvalidPeriod, "%s: period=%d", name, period)
	}
	return nil
}

func validateMultiplier(name string, multiplier float64) error {
	if math.IsNaN(multiplier) || multiplier <= 0.0 {
		return errors.Wrapf(ErrInvalidMultiplier, "%s: multiplier=%f", name, multiplier)
	}
	return nil
}
