package models

import "time"

// PriceLevel carries the suggested order level for an aggregated call.
// Exactly one of LimitBuy or StopLoss is set, matching the direction of
// the aggregated signal it was computed for.
type PriceLevel struct {
	CurrentPrice float64
	LimitBuy     *float64 // set for Buy calls: suggested limit order price
	StopLoss     *float64 // set for Sell calls: suggested stop-loss price
}

// SymbolReport is the outcome of analyzing one symbol in one run.
//
// Results holds only the techniques that produced a signal, in the fixed
// technique order. A SymbolReport is built only when at least one
// technique fired; symbols where every technique stayed silent produce
// no report at all.
type SymbolReport struct {
	Symbol     string
	Results    []IndicatorResult
	Aggregated Signal
	Levels     *PriceLevel // nil when Aggregated is SignalNone
}

// RunResult is the outcome of one batch analysis run over a watchlist.
//
// Buys and Sells list the symbols whose aggregated signal came out in
// that direction, in watchlist order. Skipped lists symbols whose price
// history could not be fetched; they never abort the run.
type RunResult struct {
	RunID      string
	StartedAt  time.Time
	FinishedAt time.Time
	Reports    []SymbolReport
	Buys       []string
	Sells      []string
	Skipped    []string
}

// Report returns the SymbolReport for symbol, or nil when the symbol
// produced no signals in this run.
func (r *RunResult) Report(symbol string) *SymbolReport {
	for i := range r.Reports {
		if r.Reports[i].Symbol == symbol {
			return &r.Reports[i]
		}
	}
	return nil
}
