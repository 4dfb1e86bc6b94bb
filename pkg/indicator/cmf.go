package indicator

import (
	"github.com/tickquant/ta/pkg/floats"
	"github.com/tickquant/ta/pkg/types"
)

/*
cmf implements chaikin money flow

Chaikin Money Flow (CMF)
- https://school.stockcharts.com/doku.php?id=technical_indicators:chaikin_money_flow_cmf

Money Flow Multiplier = ((Close - Low) - (High - Close)) / (High - Low)
Money Flow Volume     = Money Flow Multiplier * Volume
CMF                   = Sum(window, Money Flow Volume) / Sum(window, Volume)
*/
type CMF struct {
	Window int

	FlowVolumes *floats.Queue
	Volumes     *floats.Queue
}

func NewCMF(window int) (*CMF, error) {
	if err := validatePeriod("cmf", window); err != nil {
		return nil, err
	}

	return &CMF{
		Window:      window,
		FlowVolumes: floats.NewQueue(window),
		Volumes:     floats.NewQueue(window),
	}, nil
}

func (inc *CMF) Update(quote types.Quote) float64 {
	// a bar with no range has an undefined close location; count its volume
	// with a neutral multiplier
	multiplier := 0.0
	if quote.High != quote.Low {
		multiplier = ((quote.Close - quote.Low) - (quote.High - quote.Close)) / (quote.High - quote.Low)
	}

	inc.FlowVolumes.Update(multiplier * quote.Volume)
	inc.Volumes.Update(quote.Volume)

	volumeSum := inc.Volumes.Sum()
	if volumeSum == 0.0 {
		return 0.0
	}

	return inc.FlowVolumes.Sum() / volumeSum
}

func (inc *CMF) Reset() {
	inc.FlowVolumes.Reset()
	inc.Volumes.Reset()
}

var _ QuoteIndicator = &CMF{}
