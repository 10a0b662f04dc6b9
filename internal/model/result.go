package model

// SelectionResult is the curated output of one selection pass. The three
// named picks are pairwise distinct by model whenever the catalog allows;
// otherOptions excludes all three picks and is sorted by normal fitness
// score descending.
type SelectionResult struct {
	BestFit      Car   `json:"bestFit"`
	BudgetPick   Car   `json:"budgetPick"`
	LuxuryPick   Car   `json:"luxuryPick"`
	OtherOptions []Car `json:"otherOptions"`
}

// PricesResponse is the fuel-price table for a city. Source is "live" when
// the provider answered and "default" when the documented fallback table
// was substituted.
type PricesResponse struct {
	City   string     `json:"city"`
	Prices FuelPrices `json:"prices"`
	Source string     `json:"source"`
}

// RefineRequest carries a free-text refinement request plus the current
// weights. The adapter only adjusts weights, never targets.
type RefineRequest struct {
	Request string  `json:"request" binding:"required"`
	Weights Weights `json:"weights"`
}

// RefineResponse returns the adjusted (clamped) weights. Refined is false
// when the adapter was unavailable or failed and the input weights were
// kept unchanged.
type RefineResponse struct {
	Weights Weights `json:"weights"`
	Refined bool    `json:"refined"`
}
