package indicator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_WMA(t *testing.T) {
	values := []float64{1.0, 2.0, 3.0, 4.0}
	want := []float64{1.0, 5.0 / 3.0, 14.0 / 6.0, 20.0 / 6.0}

	wma, err := NewWMA(3)
	assert.NoError(t, err)

	for i, v := range values {
		assert.InDelta(t, want[i], wma.Update(v), 1e-9, "tick %d", i)
	}
}

func Test_WMA_WeightsRecentValuesMore(t *testing.T) {
	wma, err := NewWMA(4)
	assert.NoError(t, err)
	sma, err := NewSMA(4)
	assert.NoError(t, err)

	var wmaLast, smaLast float64
	for _, v := range []float64{1.0, 2.0, 3.0, 4.0, 5.0} {
		wmaLast = wma.Update(v)
		smaLast = sma.Update(v)
	}

	// rising stream pulls the weighted mean above the simple one
	assert.Greater(t, wmaLast, smaLast)
}

func Test_WMA_InvalidWindow(t *testing.T) {
	_, err := NewWMA(0)
	assert.ErrorIs(t, err, ErrInvalidPeriod)
}
