package indicator

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_BOLL(t *testing.T) {
	boll, err := NewBOLL(3, 2.0)
	assert.NoError(t, err)

	got := boll.Update(2.0)
	assert.InDelta(t, 2.0, got.Middle, Delta)
	assert.InDelta(t, 2.0, got.Upper, Delta)
	assert.InDelta(t, 2.0, got.Lower, Delta)

	got = boll.Update(5.0)
	assert.InDelta(t, 3.5, got.Middle, Delta)
	assert.InDelta(t, 6.5, got.Upper, Delta)
	assert.InDelta(t, 0.5, got.Lower, Delta)

	got = boll.Update(1.0)
	mean := 8.0 / 3.0
	sd := math.Sqrt((math.Pow(2.0-mean, 2) + math.Pow(5.0-mean, 2) + math.Pow(1.0-mean, 2)) / 3.0)
	assert.InDelta(t, mean, got.Middle, Delta)
	assert.InDelta(t, mean+2.0*sd, got.Upper, Delta)
	assert.InDelta(t, mean-2.0*sd, got.Lower, Delta)
}

func Test_BOLL_ConstantStreamCollapses(t *testing.T) {
	boll, err := NewBOLL(5, 2.0)
	assert.NoError(t, err)

	var got BOLLResult
	for i := 0; i < 20; i++ {
		got = boll.Update(42.0)
	}

	assert.Equal(t, 42.0, got.Lower)
	assert.Equal(t, 42.0, got.Middle)
	assert.Equal(t, 42.0, got.Upper)
}

func Test_BOLL_InvalidParameters(t *testing.T) {
	_, err := NewBOLL(0, 2.0)
	assert.ErrorIs(t, err, ErrInvalidPeriod)

	_, err = NewBOLL(20, 0.0)
	assert.ErrorIs(t, err, ErrInvalidMultiplier)

	_, err = NewBOLL(20, math.NaN())
	assert.ErrorIs(t, err, ErrInvalidMultiplier)
}
