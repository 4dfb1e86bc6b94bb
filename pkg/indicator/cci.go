package indicator

import (
	"github.com/tickquant/ta/pkg/types"
)

// cciScale is Lambert's 0.015 constant, chosen so that most CCI values land
// between -100 and +100.
const cciScale = 0.015

/*
cci implements the commodity channel index

Commodity Channel Index (CCI)
- https://www.investopedia.com/terms/c/commoditychannelindex.asp
- https://school.stockcharts.com/doku.php?id=technical_indicators:commodity_channel_index_cci

CCI = (TP - SMA(TP)) / (0.015 * MAD(TP)) over the typical price.
*/
type CCI struct {
	Window int

	SMA *SMA
	MAD *MAD
}

func NewCCI(window int) (*CCI, error) {
	if err := validatePeriod("cci", window); err != nil {
		return nil, err
	}

	sma, err := NewSMA(window)
	if err != nil {
		return nil, err
	}
	mad, err := NewMAD(window)
	if err != nil {
		return nil, err
	}

	return &CCI{
		Window: window,
		SMA:    sma,
		MAD:    mad,
	}, nil
}

func (inc *CCI) Update(quote types.Quote) float64 {
	tp := quote.TypicalPrice()
	sma := inc.SMA.Update(tp)
	mad := inc.MAD.Update(tp)

	// zero deviation means every typical price in the window is identical;
	// the channel has no width, report dead center
	if mad == 0.0 {
		return 0.0
	}

	return (tp - sma) / (cciScale * mad)
}

func (inc *CCI) Reset() {
	inc.SMA.Reset()
	inc.MAD.Reset()
}

var _ QuoteIndicator = &CCI{}
