package indicator

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tickquant/ta/pkg/floats"
)

func Test_MAD(t *testing.T) {
	mad, err := NewMAD(3)
	assert.NoError(t, err)

	assert.InDelta(t, 0.0, mad.Update(2.0), Delta)

	// mean 3, deviations 1 and 1
	assert.InDelta(t, 1.0, mad.Update(4.0), Delta)

	// mean 4, deviations 2, 0, 2
	assert.InDelta(t, 4.0/3.0, mad.Update(6.0), 1e-9)

	// window slides to {4, 6, 10}, mean 20/3
	values := floats.Slice{4.0, 6.0, 10.0}
	mean := values.Mean()
	want := (math.Abs(4.0-mean) + math.Abs(6.0-mean) + math.Abs(10.0-mean)) / 3.0
	assert.InDelta(t, want, mad.Update(10.0), 1e-9)
}

func Test_MAD_ResetReplay(t *testing.T) {
	rng := rand.New(rand.NewSource(17))

	values := make([]float64, 50)
	for i := range values {
		values[i] = rng.Float64()*10.0 + 100.0
	}

	mad, err := NewMAD(14)
	assert.NoError(t, err)

	var first []float64
	for _, v := range values {
		first = append(first, mad.Update(v))
	}

	mad.Reset()

	// bit-identical, not just close: the window queue must come back to its
	// exact post-construction state
	for i, v := range values {
		assert.Equal(t, first[i], mad.Update(v), "replay tick %d", i)
	}
}

func Test_MAD_InvalidWindow(t *testing.T) {
	_, err := NewMAD(0)
	assert.ErrorIs(t, err, ErrInvalidPeriod)
}
