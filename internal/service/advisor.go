package service

import (
	"context"
	"log"
	"time"

	"github.com/Quinntyx/hackutd-2025/internal/model"
	"github.com/Quinntyx/hackutd-2025/internal/recorder"
	"github.com/Quinntyx/hackutd-2025/internal/repository"
)

// Advisor runs the full recommendation flow: load the catalog, price the
// commute, estimate ownership cost per vehicle, and run the selection
// engine.
type Advisor struct {
	catalog repository.CatalogSource
	prices  *FuelPriceClient
	rec     recorder.Recorder
}

// NewAdvisor creates a new advisor service
func NewAdvisor(catalog repository.CatalogSource, prices *FuelPriceClient, rec recorder.Recorder) *Advisor {
	return &Advisor{
		catalog: catalog,
		prices:  prices,
		rec:     rec,
	}
}

// Recommend computes a SelectionResult for the given filter. Malformed
// catalog rows are rejected before scoring; a catalog with no valid rows is
// a hard failure. Price-provider failures degrade to the default table.
func (a *Advisor) Recommend(ctx context.Context, filter *model.CompoundFilter) (*model.SelectionResult, error) {
	startTime := time.Now()

	entries, err := a.catalog.LoadVehicles(ctx)
	if err != nil {
		return nil, err
	}

	prices, _ := a.PricesForCity(ctx, filter.City)

	cars := make([]model.Car, 0, len(entries))
	rejected := 0
	for _, entry := range entries {
		car, err := model.NewCar(entry)
		if err != nil {
			rejected++
			log.Printf("Warning: rejecting catalog row: %v", err)
			continue
		}
		cost, err := EstimateDailyCost(car.FuelType, car.MPG, filter.CommuteDistance, prices)
		if err != nil {
			rejected++
			log.Printf("Warning: rejecting catalog row %s: %v", car.Model, err)
			continue
		}
		car.EstimatedDailyCost = cost
		cars = append(cars, car)
	}

	result, err := Select(cars, filter)
	if err != nil {
		return nil, err
	}

	took := time.Since(startTime).Milliseconds()

	// Record selection (non-blocking)
	go func(res model.SelectionResult) {
		rec := recorder.SelectionRecord{
			Timestamp:      time.Now(),
			City:           filter.City,
			CommuteMiles:   filter.CommuteDistance,
			CatalogSize:    len(cars),
			RejectedRows:   rejected,
			BestFit:        res.BestFit.Model,
			BudgetPick:     res.BudgetPick.Model,
			LuxuryPick:     res.LuxuryPick.Model,
			ResponseTimeMs: took,
		}
		if err := a.rec.RecordSelection(rec); err != nil {
			log.Printf("Warning: failed to record selection: %v", err)
		}
	}(*result)

	return result, nil
}

// PricesForCity returns the fuel-price table for a city and its source,
// "live" from the provider or the documented "default" fallback.
func (a *Advisor) PricesForCity(ctx context.Context, city string) (model.FuelPrices, string) {
	if a.prices != nil && a.prices.IsEnabled() && city != "" {
		prices, err := a.prices.GetPricesForCity(ctx, city)
		if err == nil {
			return prices, "live"
		}
		log.Printf("Warning: fuel price lookup for %q failed, using default table: %v", city, err)
	}
	return model.DefaultFuelPrices(), "default"
}
