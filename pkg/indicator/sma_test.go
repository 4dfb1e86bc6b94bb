package indicator

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/stat"

	"github.com/tickquant/ta/pkg/floats"
)

func Test_SMA(t *testing.T) {
	tests := []struct {
		name   string
		window int
		values []float64
		want   []float64
	}{
		{
			name:   "warm-up divides by values seen",
			window: 4,
			values: []float64{4, 5, 6, 6, 6, 6, 2},
			want:   []float64{4, 4.5, 5, 5.25, 5.75, 6, 5},
		},
		{
			name:   "window of one tracks the input",
			window: 1,
			values: []float64{3, 9, 1},
			want:   []float64{3, 9, 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sma, err := NewSMA(tt.window)
			assert.NoError(t, err)

			for i, v := range tt.values {
				got := sma.Update(v)
				assert.InDelta(t, tt.want[i], got, 1e-9, "tick %d", i)
				assert.InDelta(t, tt.want[i], sma.Last(), 1e-9, "tick %d", i)
			}
		})
	}
}

func Test_SMA_SingleValue(t *testing.T) {
	for _, window := range []int{1, 2, 5, 100} {
		sma, err := NewSMA(window)
		assert.NoError(t, err)
		assert.Equal(t, 7.25, sma.Update(7.25), "window %d", window)
	}
}

func Test_SMA_FullWindowOfIdenticalValues(t *testing.T) {
	sma, err := NewSMA(5)
	assert.NoError(t, err)

	var got float64
	for i := 0; i < 5; i++ {
		got = sma.Update(42.5)
	}
	assert.Equal(t, 42.5, got)
}

func Test_SMA_AgainstBruteForce(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	for _, window := range []int{1, 2, 3, 7, 16} {
		sma, err := NewSMA(window)
		assert.NoError(t, err)

		var history floats.Slice
		for i := 0; i < 300; i++ {
			v := rng.Float64()*200.0 - 100.0
			got := sma.Update(v)
			history.Push(v)

			want := stat.Mean(history.Tail(window), nil)
			assert.InDelta(t, want, got, 1e-9, "window %d tick %d", window, i)
		}
	}
}

func Test_SMA_InvalidWindow(t *testing.T) {
	for _, window := range []int{0, -1, -10} {
		_, err := NewSMA(window)
		assert.ErrorIs(t, err, ErrInvalidPeriod)
	}
}
