package indicator

import "github.com/guttosm/stockpulse/internal/domain/models"

// Func evaluates one technique over a price series.
//
// Implementations are pure functions: same series in, same signal out,
// no state carried between calls. A series too short for the technique,
// or one whose math degenerates (flat windows, unfilled averages),
// yields SignalNone rather than an error.
type Func func(models.PriceSeries) models.Signal

// Technique pairs a display name with its evaluation function.
type Technique struct {
	Name     string
	Evaluate Func
}

// Defaults returns the built-in techniques in report order. The order
// is fixed: results and report rows always list techniques this way.
func Defaults() []Technique {
	return []Technique{
		{Name: "50/200 MA Crossover", Evaluate: MACrossover},
		{Name: "RSI", Evaluate: RSI},
		{Name: "MACD", Evaluate: MACD},
		{Name: "Bollinger Bands", Evaluate: BollingerBands},
		{Name: "Stochastic Oscillator", Evaluate: Stochastic},
		{Name: "CCI", Evaluate: CCI},
	}
}
