package service

import (
	"github.com/Quinntyx/hackutd-2025/internal/model"
)

// Price-weight multipliers for the three scoring variants required by the
// selection engine.
const (
	MultiplierNormal = 1.0
	MultiplierBudget = 2.0
	MultiplierLuxury = 0.5
)

// matchBonusFraction is the fixed fraction of the transmission and
// fuel-type priorities awarded on an exact match.
const matchBonusFraction = 0.5

// Score computes a vehicle's fitness against a weighted-preference filter.
// The model is additive over independent terms; each term contributes its
// normalized closeness times the term's priority. The price term is further
// scaled by priceMultiplier, which is how the budget and luxury variants
// amplify or dampen price sensitivity.
//
// Normalization is one-sided: meeting or beating a target scores the full
// weight, and a shortfall p decays the term as 1/(1+p).
func Score(car model.Car, filter *model.CompoundFilter, priceMultiplier float64) float64 {
	score := 0.0

	if filter.PriceTarget != nil {
		// Compare real monthly outlay (payment plus a month of fuel)
		// against a twelfth of the target budget.
		actual := car.MonthlyPayment + car.EstimatedDailyCost*30
		target := *filter.PriceTarget / 12
		score += lowerIsBetter(actual, target) * float64(filter.PricePriority) * priceMultiplier
	}

	if filter.MPGTarget != nil {
		score += higherIsBetter(car.MPG, *filter.MPGTarget) * float64(filter.MPGPriority)
	}

	if filter.MileageTarget != nil {
		score += lowerIsBetter(car.Mileage, *filter.MileageTarget) * float64(filter.MileagePriority)
	}

	if filter.Electric && car.FuelType == model.FuelHybrid {
		// A commute past the electric range pays the mixed-commute cost
		// penalty, so the electrification reward is halved.
		if filter.CommuteDistance <= electricRangeMiles {
			score += float64(filter.ElectricPriority)
		} else {
			score += 0.5 * float64(filter.ElectricPriority)
		}
	}

	if filter.Transmission != nil && car.Transmission == *filter.Transmission {
		score += matchBonusFraction * float64(filter.TransmissionPriority)
	}

	if filter.FuelType != nil && car.FuelType == *filter.FuelType {
		score += matchBonusFraction * float64(filter.FuelTypePriority)
	}

	return score
}

// lowerIsBetter scores 1 when actual meets or beats target from below and
// decays toward 0 as actual overshoots.
func lowerIsBetter(actual, target float64) float64 {
	if target <= 0 || actual <= target {
		return 1
	}
	penalty := (actual - target) / target
	return 1 / (1 + penalty)
}

// higherIsBetter scores 1 when actual meets or beats target from above and
// decays toward 0 as actual falls short.
func higherIsBetter(actual, target float64) float64 {
	if target <= 0 || actual >= target {
		return 1
	}
	penalty := (target - actual) / target
	return 1 / (1 + penalty)
}
