package indicator

import "github.com/guttosm/stockpulse/internal/domain/models"

const (
	cciPeriod     = 20
	cciScale      = 0.015
	cciOversold   = -100
	cciOverbought = 100
)

// CCI implements the 20-period Commodity Channel Index over the typical
// price (high+low+close)/3: deviation of typical price from its moving
// average, scaled by 0.015 times the mean absolute deviation.
//
// A zero mean absolute deviation (perfectly flat typical price) leaves
// the index undefined and yields SignalNone rather than dividing by
// zero. CCI below -100 is a Buy, above +100 a Sell.
//
// Series shorter than 20 bars yield SignalNone.
func CCI(series models.PriceSeries) models.Signal {
	if series.Len() < cciPeriod {
		return models.SignalNone
	}

	highs := series.Highs()
	lows := series.Lows()
	closes := series.Closes()
	tp := make([]float64, len(closes))
	for i := range tp {
		tp[i] = (highs[i] + lows[i] + closes[i]) / 3
	}

	smaTP := rollingMean(tp, cciPeriod)
	mad := rollingMAD(tp, cciPeriod)

	lastMAD, ok := lastValue(mad)
	if !ok || lastMAD == 0 {
		return models.SignalNone
	}
	price, ok1 := lastValue(tp)
	mean, ok2 := lastValue(smaTP)
	if !ok1 || !ok2 {
		return models.SignalNone
	}

	v := (price - mean) / (cciScale * lastMAD)
	switch {
	case v < cciOversold:
		return models.SignalBuy
	case v > cciOverbought:
		return models.SignalSell
	}
	return models.SignalNone
}
