package indicator

import "github.com/guttosm/stockpulse/internal/domain/models"

const (
	rsiPeriod     = 14
	rsiOversold   = 30
	rsiOverbought = 70
)

// RSI implements the 14-period Relative Strength Index.
//
// Gains and losses are simple rolling means over the full period; the
// period must be completely filled before the index is defined, so the
// first usable value needs period+1 bars (the first diff is undefined).
// A zero average loss is substituted with 1 before dividing, which
// pins an all-gains window near RSI 100 instead of dividing by zero.
//
// RSI below 30 is a Buy (oversold), above 70 a Sell (overbought).
func RSI(series models.PriceSeries) models.Signal {
	closes := series.Closes()
	deltas := diff(closes)

	gains := make([]float64, len(deltas))
	losses := make([]float64, len(deltas))
	for i, d := range deltas {
		// NaN deltas stay NaN in both columns and poison their windows.
		gains[i] = d
		losses[i] = -d
		if d < 0 {
			gains[i] = 0
		}
		if d > 0 {
			losses[i] = 0
		}
	}

	avgGain := rollingMean(gains, rsiPeriod)
	avgLoss := rollingMean(losses, rsiPeriod)

	rsi := nanSlice(len(closes))
	for i := range rsi {
		g := avgGain[i]
		l := avgLoss[i]
		if l == 0 {
			l = 1
		}
		rs := g / l
		rsi[i] = 100 - (100 / (1 + rs))
	}

	v, ok := lastValue(rsi)
	if !ok {
		return models.SignalNone
	}
	switch {
	case v < rsiOversold:
		return models.SignalBuy
	case v > rsiOverbought:
		return models.SignalSell
	}
	return models.SignalNone
}
