package service

import (
	"fmt"

	"github.com/Quinntyx/hackutd-2025/internal/model"
)

// electricRangeMiles is the commute length a plug-in hybrid can cover on
// battery alone before it falls back to gasoline.
const electricRangeMiles = 30.0

// EstimateDailyCost derives a vehicle's estimated daily energy cost from
// the fuel-price table and the shopper's commute distance.
//
// Gasoline and Diesel bill at their own rate; Hybrid and Other bill at the
// electric rate. A Hybrid on a commute longer than its electric range bills
// the first 30 miles at the electric rate and the remainder at the gasoline
// rate.
func EstimateDailyCost(fuelType model.FuelType, mpg, commuteDistance float64, prices model.FuelPrices) (float64, error) {
	if mpg <= 0 {
		return 0, fmt.Errorf("%w: mpg must be positive, got %.2f", model.ErrInvalidVehicleData, mpg)
	}
	if commuteDistance < 0 {
		commuteDistance = 0
	}

	if fuelType == model.FuelHybrid && commuteDistance > electricRangeMiles {
		electric := prices.Electric * electricRangeMiles / mpg
		gasoline := prices.Gasoline * (commuteDistance - electricRangeMiles) / mpg
		return electric + gasoline, nil
	}

	return unitPrice(fuelType, prices) * commuteDistance / mpg, nil
}

// unitPrice maps a fuel type to its billing category.
func unitPrice(fuelType model.FuelType, prices model.FuelPrices) float64 {
	switch fuelType {
	case model.FuelGasoline:
		return prices.Gasoline
	case model.FuelDiesel:
		return prices.Diesel
	default: // Hybrid and Other bill at the electric rate
		return prices.Electric
	}
}
