package indicator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_EfficiencyRatio(t *testing.T) {
	values := []float64{10.0, 13.0, 12.0, 13.0, 18.0, 19.0}
	want := []float64{1.0, 1.0, 0.5, 0.6, 0.8, 0.75}

	er, err := NewEfficiencyRatio(4)
	assert.NoError(t, err)

	for i, v := range values {
		assert.InDelta(t, want[i], er.Update(v), 1e-9, "tick %d", i)
	}
}

func Test_EfficiencyRatio_FlatStream(t *testing.T) {
	er, err := NewEfficiencyRatio(5)
	assert.NoError(t, err)

	// zero volatility counts as perfectly efficient
	for i := 0; i < 10; i++ {
		assert.Equal(t, 1.0, er.Update(3.5), "tick %d", i)
	}
}

func Test_EfficiencyRatio_MonotoneStream(t *testing.T) {
	er, err := NewEfficiencyRatio(8)
	assert.NoError(t, err)

	var got float64
	for i := 0; i < 30; i++ {
		got = er.Update(float64(i) * 2.0)
	}

	assert.Equal(t, 1.0, got)
}

func Test_EfficiencyRatio_InvalidWindow(t *testing.T) {
	_, err := NewEfficiencyRatio(0)
	assert.ErrorIs(t, err, ErrInvalidPeriod)
}
