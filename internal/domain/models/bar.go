package models

import "time"

// Bar represents a single daily OHLCV candle for a symbol.
//
// Fields:
//   - Date: trading day of the candle.
//   - Open, High, Low, Close: prices for the day.
//   - Volume: number of shares traded.
type Bar struct {
	Date   time.Time
	Open   float64
	High   float64
	Low    float64
	Close  float64
	Volume float64
}

// PriceSeries is the daily price history of a single symbol,
// ordered chronologically (oldest bar first).
type PriceSeries []Bar

// Len returns the number of bars in the series.
func (p PriceSeries) Len() int { return len(p) }

// Closes returns the close column in chronological order.
func (p PriceSeries) Closes() []float64 {
	out := make([]float64, len(p))
	for i, b := range p {
		out[i] = b.Close
	}
	return out
}

// Highs returns the high column in chronological order.
func (p PriceSeries) Highs() []float64 {
	out := make([]float64, len(p))
	for i, b := range p {
		out[i] = b.High
	}
	return out
}

// Lows returns the low column in chronological order.
func (p PriceSeries) Lows() []float64 {
	out := make([]float64, len(p))
	for i, b := range p {
		out[i] = b.Low
	}
	return out
}

// LastClose returns the most recent closing price.
// It reports false when the series is empty.
func (p PriceSeries) LastClose() (float64, bool) {
	if len(p) == 0 {
		return 0, false
	}
	return p[len(p)-1].Close, true
}
