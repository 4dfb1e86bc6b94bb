package indicator

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tickquant/ta/pkg/types"
)

func quote(high, low, cloze float64) types.Quote {
	return types.Quote{Open: low, High: high, Low: low, Close: cloze, Volume: 1.0}
}

func Test_TR(t *testing.T) {
	tr := NewTR()

	// no previous close yet, range is high-low
	assert.InDelta(t, 2.5, tr.Update(quote(10.0, 7.5, 9.0)), Delta)

	// gap cases pick the largest of the three candidate ranges
	assert.InDelta(t, 2.0, tr.Update(quote(11.0, 9.0, 9.5)), Delta)
	assert.InDelta(t, 4.5, tr.Update(quote(9.0, 5.0, 8.0)), Delta)
}

func Test_ATR(t *testing.T) {
	quotes := []types.Quote{
		quote(10.0, 7.5, 9.0),
		quote(11.0, 9.0, 9.5),
		quote(9.0, 5.0, 8.0),
	}
	want := []float64{2.5, 7.0 / 3.0, 3.0555555556}

	atr, err := NewATR(3)
	assert.NoError(t, err)

	for i, q := range quotes {
		assert.InDelta(t, want[i], atr.Update(q), Delta, "tick %d", i)
		assert.InDelta(t, want[i], atr.Last(), Delta, "tick %d", i)
	}
}

func Test_ATR_ResetReplay(t *testing.T) {
	quotes := []types.Quote{
		quote(10.0, 7.5, 9.0),
		quote(11.0, 9.0, 9.5),
		quote(9.0, 5.0, 8.0),
	}

	atr, err := NewATR(2)
	assert.NoError(t, err)

	var first []float64
	for _, q := range quotes {
		first = append(first, atr.Update(q))
	}

	atr.Reset()

	for i, q := range quotes {
		assert.Equal(t, first[i], atr.Update(q), "replay tick %d", i)
	}
}

func Test_ATR_InvalidWindow(t *testing.T) {
	_, err := NewATR(0)
	assert.ErrorIs(t, err, ErrInvalidPeriod)
}
