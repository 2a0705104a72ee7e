package indicator

import "github.com/guttosm/stockpulse/internal/domain/models"

const (
	bollingerPeriod = 20
	bollingerWidth  = 2
)

// BollingerBands implements the 20-period Bollinger Band breakout.
//
// Bands sit two sample standard deviations above and below the
// 20-period simple moving average. A close below the lower band is a
// Buy, above the upper band a Sell, inside the bands SignalNone.
//
// Series shorter than 20 bars yield SignalNone.
func BollingerBands(series models.PriceSeries) models.Signal {
	if series.Len() < bollingerPeriod {
		return models.SignalNone
	}

	closes := series.Closes()
	sma := rollingMean(closes, bollingerPeriod)
	std := rollingStd(closes, bollingerPeriod)

	price, ok1 := lastValue(closes)
	mean, ok2 := lastValue(sma)
	dev, ok3 := lastValue(std)
	if !ok1 || !ok2 || !ok3 {
		return models.SignalNone
	}

	upper := mean + bollingerWidth*dev
	lower := mean - bollingerWidth*dev
	switch {
	case price < lower:
		return models.SignalBuy
	case price > upper:
		return models.SignalSell
	}
	return models.SignalNone
}
