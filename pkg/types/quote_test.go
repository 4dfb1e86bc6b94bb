package types

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewQuote(t *testing.T) {
	tests := []struct {
		name    string
		open    float64
		high    float64
		low     float64
		cloze   float64
		volume  float64
		wantErr bool
	}{
		{name: "valid", open: 20.0, high: 25.0, low: 15.0, cloze: 21.0, volume: 7500.0},
		{name: "zero volume", open: 1.0, high: 1.0, low: 1.0, cloze: 1.0, volume: 0.0},
		{name: "close above high is allowed", open: 1.0, high: 2.0, low: 1.0, cloze: 3.0, volume: 1.0},
		{name: "high below low", open: 1.0, high: 1.0, low: 2.0, cloze: 1.0, volume: 1.0, wantErr: true},
		{name: "negative volume", open: 1.0, high: 2.0, low: 1.0, cloze: 1.5, volume: -1.0, wantErr: true},
		{name: "nan close", open: 1.0, high: 2.0, low: 1.0, cloze: math.NaN(), volume: 1.0, wantErr: true},
		{name: "infinite high", open: 1.0, high: math.Inf(1), low: 1.0, cloze: 1.5, volume: 1.0, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q, err := NewQuote(tt.open, tt.high, tt.low, tt.cloze, tt.volume)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidQuote)
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.open, q.Open)
			assert.Equal(t, tt.high, q.High)
			assert.Equal(t, tt.low, q.Low)
			assert.Equal(t, tt.cloze, q.Close)
			assert.Equal(t, tt.volume, q.Volume)
		})
	}
}

func TestQuote_TypicalPrice(t *testing.T) {
	q, err := NewQuote(1.0, 3.0, 1.0, 2.0, 100.0)
	assert.NoError(t, err)
	assert.InDelta(t, 2.0, q.TypicalPrice(), 1e-12)
}
