package indicator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_CCI(t *testing.T) {
	cci, err := NewCCI(2)
	assert.NoError(t, err)

	// a single observation has zero mean deviation
	assert.InDelta(t, 0.0, cci.Update(quote(12.0, 9.0, 12.0)), Delta)

	// typical prices 11 and 12, mean 11.5, mean deviation 0.5
	// (12 - 11.5) / (0.015 * 0.5)
	assert.InDelta(t, 66.6666666667, cci.Update(quote(13.0, 11.0, 12.0)), 1e-9)
}

func Test_CCI_ConstantStreamIsZero(t *testing.T) {
	cci, err := NewCCI(5)
	assert.NoError(t, err)

	for i := 0; i < 20; i++ {
		assert.Equal(t, 0.0, cci.Update(quote(10.0, 10.0, 10.0)), "tick %d", i)
	}
}

func Test_CCI_InvalidWindow(t *testing.T) {
	_, err := NewCCI(0)
	assert.ErrorIs(t, err, ErrInvalidPeriod)
}
