package models

// Signal is the outcome of evaluating a technique (or of aggregating
// several techniques) over a price series.
//
// It is a three-valued type: a technique either recommends entering
// (SignalBuy), exiting (SignalSell), or has nothing to say (SignalNone).
// The zero value is SignalNone, so an unset Signal never reads as a
// recommendation.
type Signal int

const (
	SignalNone Signal = iota
	SignalBuy
	SignalSell
)

// String returns the display form used in reports and API responses.
func (s Signal) String() string {
	switch s {
	case SignalBuy:
		return "Buy"
	case SignalSell:
		return "Sell"
	default:
		return "None"
	}
}

// IndicatorResult pairs a technique with the signal it produced.
// Results are immutable once built.
type IndicatorResult struct {
	Technique string
	Signal    Signal
}
