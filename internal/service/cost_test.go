package service

import (
	"errors"
	"math"
	"testing"

	"github.com/Quinntyx/hackutd-2025/internal/model"
)

func TestEstimateDailyCost_NonHybridExact(t *testing.T) {
	prices := model.FuelPrices{Gasoline: 3.00, Diesel: 4.00, Electric: 0.10}

	tests := []struct {
		name     string
		fuelType model.FuelType
		mpg      float64
		commute  float64
		want     float64
	}{
		{"gasoline", model.FuelGasoline, 34, 20, 3.00 * 20 / 34},
		{"diesel", model.FuelDiesel, 28, 45, 4.00 * 45 / 28},
		{"other bills at electric rate", model.FuelOther, 40, 50, 0.10 * 50 / 40},
		{"zero commute", model.FuelGasoline, 34, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := EstimateDailyCost(tt.fuelType, tt.mpg, tt.commute, prices)
			if err != nil {
				t.Fatalf("EstimateDailyCost failed: %v", err)
			}
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("EstimateDailyCost = %.6f, want %.6f", got, tt.want)
			}
		})
	}
}

func TestEstimateDailyCost_HybridShortCommute(t *testing.T) {
	prices := model.FuelPrices{Gasoline: 3.00, Diesel: 4.00, Electric: 0.10}

	// At or under the electric range the whole commute bills electric.
	got, err := EstimateDailyCost(model.FuelHybrid, 50, 30, prices)
	if err != nil {
		t.Fatalf("EstimateDailyCost failed: %v", err)
	}
	want := 0.10 * 30 / 50
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("EstimateDailyCost = %.6f, want %.6f", got, want)
	}
}

func TestEstimateDailyCost_HybridMixedCommute(t *testing.T) {
	// First 30 miles electric, remaining 10 gasoline:
	// 0.10*30/50 + 3.00*10/50 = 0.06 + 0.60 = 0.66
	prices := model.FuelPrices{Gasoline: 3.00, Diesel: 4.00, Electric: 0.10}

	got, err := EstimateDailyCost(model.FuelHybrid, 50, 40, prices)
	if err != nil {
		t.Fatalf("EstimateDailyCost failed: %v", err)
	}
	if math.Abs(got-0.66) > 1e-9 {
		t.Errorf("EstimateDailyCost = %.6f, want 0.66", got)
	}
}

func TestEstimateDailyCost_RejectsNonPositiveMPG(t *testing.T) {
	prices := model.DefaultFuelPrices()

	for _, mpg := range []float64{0, -1} {
		if _, err := EstimateDailyCost(model.FuelGasoline, mpg, 20, prices); !errors.Is(err, model.ErrInvalidVehicleData) {
			t.Errorf("mpg=%.0f: expected ErrInvalidVehicleData, got %v", mpg, err)
		}
	}
}
