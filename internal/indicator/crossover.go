package indicator

import "github.com/guttosm/stockpulse/internal/domain/models"

const (
	fastMAWindow  = 50
	slowMAWindow  = 200
	crossoverTail = 10
)

// MACrossover implements the 50-day vs 200-day moving average crossover.
//
// It compares the MA50-MA200 difference at the start and at the end of
// the trailing 10-bar window: a difference that flips from negative to
// positive is a Buy, positive to negative a Sell. Only the two window
// endpoints are inspected; a cross that happens and reverts strictly
// inside the window is not detected.
//
// Series shorter than 200 bars yield SignalNone.
func MACrossover(series models.PriceSeries) models.Signal {
	if series.Len() < slowMAWindow {
		return models.SignalNone
	}

	closes := series.Closes()
	fast := rollingMean(closes, fastMAWindow)
	slow := rollingMean(closes, slowMAWindow)

	n := len(closes)
	tail := crossoverTail
	if n < tail {
		tail = n
	}
	if tail < 2 {
		return models.SignalNone
	}
	start := n - tail
	end := n - 1

	fs, ok1 := valueAt(fast, start)
	ss, ok2 := valueAt(slow, start)
	fe, ok3 := valueAt(fast, end)
	se, ok4 := valueAt(slow, end)
	if !ok1 || !ok2 || !ok3 || !ok4 {
		// MA200 is still unfilled at the window start for series barely
		// above 200 bars; without both endpoints there is no crossover.
		return models.SignalNone
	}

	startDiff := fs - ss
	endDiff := fe - se
	switch {
	case startDiff < 0 && endDiff > 0:
		return models.SignalBuy
	case startDiff > 0 && endDiff < 0:
		return models.SignalSell
	}
	return models.SignalNone
}
