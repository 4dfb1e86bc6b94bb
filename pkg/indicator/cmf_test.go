package indicator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_CMF(t *testing.T) {
	cmf, err := NewCMF(2)
	assert.NoError(t, err)

	// close at the high, full accumulation
	assert.InDelta(t, 1.0, cmf.Update(volQuote(4.0, 2.0, 4.0, 100.0)), Delta)

	// close at the midpoint contributes zero flow
	assert.InDelta(t, 0.5, cmf.Update(volQuote(4.0, 2.0, 3.0, 100.0)), Delta)

	// close at the low, full distribution
	assert.InDelta(t, -0.5, cmf.Update(volQuote(4.0, 2.0, 2.0, 100.0)), Delta)
}

func Test_CMF_FlatBarContributesNothing(t *testing.T) {
	cmf, err := NewCMF(3)
	assert.NoError(t, err)

	assert.Equal(t, 0.0, cmf.Update(volQuote(5.0, 5.0, 5.0, 100.0)))
}

func Test_CMF_ZeroVolumeWindow(t *testing.T) {
	cmf, err := NewCMF(3)
	assert.NoError(t, err)

	assert.Equal(t, 0.0, cmf.Update(volQuote(4.0, 2.0, 4.0, 0.0)))
}

func Test_CMF_InvalidWindow(t *testing.T) {
	_, err := NewCMF(0)
	assert.ErrorIs(t, err, ErrInvalidPeriod)
}
