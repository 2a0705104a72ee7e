package dto

// TechniqueSignal is one technique's vote in the API response.
type TechniqueSignal struct {
	Technique string `json:"technique" example:"RSI"` // Technique display name
	Signal    string `json:"signal" example:"Buy"`    // "Buy" or "Sell"
}

// PriceLevelResponse carries the suggested order level for the
// aggregated call. Only the field matching the call direction is set.
type PriceLevelResponse struct {
	CurrentPrice float64  `json:"current_price" example:"187.23"`       // Most recent closing price
	LimitBuy     *float64 `json:"limit_buy,omitempty" example:"185.36"` // Suggested limit order (Buy calls)
	StopLoss     *float64 `json:"stop_loss,omitempty" example:"183.49"` // Suggested stop loss (Sell calls)
}

// SignalResponse represents the JSON structure returned by the
// GET /api/v1/signals endpoint.
//
// Fields match the API contract and may differ from internal domain models.
// This ensures loose coupling between the API surface and business logic.
type SignalResponse struct {
	Symbol     string              `json:"symbol" example:"AAPL"`    // Symbol that was analyzed
	Aggregated string              `json:"aggregated" example:"Buy"` // Majority call across techniques
	Signals    []TechniqueSignal   `json:"signals"`                  // Techniques that fired, in technique order
	Levels     *PriceLevelResponse `json:"levels,omitempty"`         // Present only for Buy/Sell calls
}
