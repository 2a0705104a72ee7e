package indicator

import "github.com/guttosm/stockpulse/internal/domain/models"

const (
	macdFastSpan   = 12
	macdSlowSpan   = 26
	macdSignalSpan = 9
)

// MACD implements the Moving Average Convergence Divergence crossover.
//
// The MACD line is the 12-span EMA minus the 26-span EMA of the close;
// the signal line is a 9-span EMA of the MACD line. Only the last two
// bars are compared: a MACD line crossing from below to above its
// signal line is a Buy, the reverse a Sell. Earlier crossovers are not
// scanned for.
//
// Series shorter than 2 bars yield SignalNone.
func MACD(series models.PriceSeries) models.Signal {
	closes := series.Closes()
	if len(closes) < 2 {
		return models.SignalNone
	}

	fast := ema(closes, macdFastSpan)
	slow := ema(closes, macdSlowSpan)

	macdLine := make([]float64, len(closes))
	for i := range macdLine {
		macdLine[i] = fast[i] - slow[i]
	}
	signalLine := ema(macdLine, macdSignalSpan)

	n := len(macdLine)
	prevMACD, ok1 := valueAt(macdLine, n-2)
	currMACD, ok2 := valueAt(macdLine, n-1)
	prevSignal, ok3 := valueAt(signalLine, n-2)
	currSignal, ok4 := valueAt(signalLine, n-1)
	if !ok1 || !ok2 || !ok3 || !ok4 {
		return models.SignalNone
	}

	switch {
	case prevMACD < prevSignal && currMACD > currSignal:
		return models.SignalBuy
	case prevMACD > prevSignal && currMACD < currSignal:
		return models.SignalSell
	}
	return models.SignalNone
}
