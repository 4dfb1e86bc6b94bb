// Package indicator provides incremental technical analysis indicators.
//
// Every indicator consumes one observation per Update call, keeps a fixed
// size internal state, and returns the current value straight away. Reset
// brings an indicator back to its freshly constructed state so the same
// instance can replay another stream.
package indicator

import (
	"github.com/tickquant/ta/pkg/types"
)

// Float64Indicator is implemented by indicators fed with a single price.
type Float64Indicator interface {
	Update(value float64) float64
	Reset()
}

// QuoteIndicator is implemented by indicators that need the full OHLCV bar.
type QuoteIndicator interface {
	Update(quote types.Quote) float64
	Reset()
}
