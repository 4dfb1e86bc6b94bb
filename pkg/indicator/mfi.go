package indicator

import (
	"github.com/tickquant/ta/pkg/floats"
	"github.com/tickquant/ta/pkg/types"
)

/*
mfi implements the money flow index

Money Flow Index (MFI)
- https://www.investopedia.com/terms/m/mfi.asp
- https://school.stockcharts.com/doku.php?id=technical_indicators:money_flow_index_mfi

A volume-weighted RSI: money flow is typical price times volume, counted as
positive when the typical price did not fall. Signed flows are kept in the
window queue while two running totals avoid rescanning on every tick.
*/
type MFI struct {
	Window int

	Flows *floats.Queue

	PreviousTypicalPrice float64
	PositiveFlow         float64
	AbsoluteFlow         float64
	Primed               bool
}

func NewMFI(window int) (*MFI, error) {
	if err := validatePeriod("mfi", window); err != nil {
		return nil, err
	}

	return &MFI{
		Window: window,
		Flows:  floats.NewQueue(window),
	}, nil
}

func (inc *MFI) Update(quote types.Quote) float64 {
	tp := quote.TypicalPrice()

	if !inc.Primed {
		// without a previous typical price the first flow has no sign
		inc.Flows.Update(0.0)
		inc.PreviousTypicalPrice = tp
		inc.Primed = true
		return 50.0
	}

	flow := tp * quote.Volume
	signedFlow := flow
	if tp >= inc.PreviousTypicalPrice {
		inc.PositiveFlow += flow
	} else {
		signedFlow = -flow
	}
	inc.AbsoluteFlow += flow

	if old, evicted := inc.Flows.Update(signedFlow); evicted {
		if old > 0.0 {
			inc.PositiveFlow -= old
			inc.AbsoluteFlow -= old
		} else {
			inc.AbsoluteFlow += old
		}
	}

	inc.PreviousTypicalPrice = tp

	// an all-zero-volume window carries no pressure either way
	if inc.AbsoluteFlow == 0.0 {
		return 50.0
	}

	return inc.PositiveFlow / inc.AbsoluteFlow * 100.0
}

func (inc *MFI) Reset() {
	inc.Flows.Reset()
	inc.PreviousTypicalPrice = 0.0
	inc.PositiveFlow = 0.0
	inc.AbsoluteFlow = 0.0
	inc.Primed = false
}

var _ QuoteIndicator = &MFI{}
