package model

import "errors"

var (
	// ErrInvalidVehicleData marks a malformed catalog row (zero/negative
	// mpg or price, unknown enum value). The row is rejected, not defaulted.
	ErrInvalidVehicleData = errors.New("invalid vehicle data")

	// ErrEmptyCatalog means there are no valid vehicles to select from.
	ErrEmptyCatalog = errors.New("empty catalog")

	// ErrPriceUnavailable means the fuel-price provider could not supply a
	// table; callers fall back to DefaultFuelPrices.
	ErrPriceUnavailable = errors.New("fuel price provider unavailable")

	// ErrRefinementFailed means the refinement adapter could not produce an
	// adjusted weight set; callers keep their current weights.
	ErrRefinementFailed = errors.New("refinement adapter failed")
)
