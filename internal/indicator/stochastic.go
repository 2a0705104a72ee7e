package indicator

import "github.com/guttosm/stockpulse/internal/domain/models"

const (
	stochasticPeriod     = 14
	stochasticOversold   = 20
	stochasticOverbought = 80
)

// Stochastic implements the %K line of the 14-period stochastic
// oscillator: where the latest close sits inside the rolling 14-day
// high/low range, scaled to 0-100.
//
// A flat range (high equal to low across the window) makes %K 0/0 and
// leaves it undefined, yielding SignalNone. %K below 20 is a Buy
// (oversold), above 80 a Sell (overbought).
//
// Series shorter than 14 bars yield SignalNone.
func Stochastic(series models.PriceSeries) models.Signal {
	if series.Len() < stochasticPeriod {
		return models.SignalNone
	}

	closes := series.Closes()
	lowMin := rollingMin(series.Lows(), stochasticPeriod)
	highMax := rollingMax(series.Highs(), stochasticPeriod)

	k := make([]float64, len(closes))
	for i := range k {
		k[i] = 100 * (closes[i] - lowMin[i]) / (highMax[i] - lowMin[i])
	}

	v, ok := lastValue(k)
	if !ok {
		return models.SignalNone
	}
	switch {
	case v < stochasticOversold:
		return models.SignalBuy
	case v > stochasticOverbought:
		return models.SignalSell
	}
	return models.SignalNone
}
