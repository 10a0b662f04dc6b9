package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Quinntyx/hackutd-2025/internal/config"
	"github.com/Quinntyx/hackutd-2025/internal/model"
	"github.com/Quinntyx/hackutd-2025/internal/recorder"
	"github.com/Quinntyx/hackutd-2025/internal/service"

	"github.com/gin-gonic/gin"
)

// memCatalog is an in-memory CatalogSource for handler tests.
type memCatalog struct {
	entries []model.CatalogEntry
}

func (m *memCatalog) LoadVehicles(ctx context.Context) ([]model.CatalogEntry, error) {
	return m.entries, nil
}

func (m *memCatalog) Close() error { return nil }

func newCarsRouter(entries ...model.CatalogEntry) http.Handler {
	gin.SetMode(gin.TestMode)
	advisor := service.NewAdvisor(
		&memCatalog{entries: entries},
		service.NewFuelPriceClient(&config.PricingConfig{Timeout: 1}),
		recorder.NewNoopRecorder(),
	)
	router := gin.New()
	router.GET("/api/v1/cars", NewCarsHandler(advisor).Recommend)
	return router
}

func catalogEntry(name string, price, mpg float64) model.CatalogEntry {
	return model.CatalogEntry{
		Model:        name,
		Year:         2022,
		Price:        price,
		Transmission: "Automatic",
		Mileage:      10000,
		FuelType:     "Gasoline",
		MPG:          mpg,
		EngineSize:   2.0,
	}
}

func TestCarsHandler_Recommend(t *testing.T) {
	router := newCarsRouter(
		catalogEntry("Affordable", 24000, 34),
		catalogEntry("Pricey", 60000, 22),
	)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/cars?priceTarget=30000&pricePriority=5", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	var result model.SelectionResult
	if err := json.Unmarshal(w.Body.Bytes(), &result); err != nil {
		t.Fatalf("bad response body: %v", err)
	}
	if result.BestFit.Model != "Affordable" {
		t.Errorf("bestFit = %s, want Affordable", result.BestFit.Model)
	}
}

func TestCarsHandler_BadParameters(t *testing.T) {
	router := newCarsRouter(catalogEntry("Only", 24000, 34))

	tests := []struct {
		name  string
		query string
	}{
		{"non-numeric target", "priceTarget=cheap"},
		{"non-integer priority", "pricePriority=high"},
		{"unknown transmission", "transmission=Tiptronic"},
		{"unknown fuel type", "fuelType=Plutonium"},
		{"negative commute", "commuteDistance=-5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/v1/cars?"+tt.query, nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)
			if w.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want 400", w.Code)
			}
		})
	}
}

func TestCarsHandler_EmptyCatalog(t *testing.T) {
	router := newCarsRouter()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/cars", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusUnprocessableEntity {
		t.Errorf("status = %d, want 422", w.Code)
	}
}
