package service

import (
	"context"
	"errors"
	"math"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Quinntyx/hackutd-2025/internal/config"
	"github.com/Quinntyx/hackutd-2025/internal/model"
)

func TestFuelPriceClient_Disabled(t *testing.T) {
	client := NewFuelPriceClient(&config.PricingConfig{Timeout: 1})

	_, err := client.GetPricesForCity(context.Background(), "Austin")
	if !errors.Is(err, model.ErrPriceUnavailable) {
		t.Errorf("expected ErrPriceUnavailable, got %v", err)
	}
}

func TestFuelPriceClient_GallonRates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/gasPrice/fromCity" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if r.URL.Query().Get("city") != "Austin" {
			t.Errorf("unexpected city %s", r.URL.Query().Get("city"))
		}
		if r.Header.Get("Authorization") != "apikey test" {
			t.Errorf("missing authorization header")
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"result": {"gasoline": 3.50, "diesel": 4.10, "unit": "gallon"}}`))
	}))
	defer srv.Close()

	client := NewFuelPriceClient(&config.PricingConfig{
		APIBase: srv.URL,
		APIKey:  "apikey test",
		Timeout: 5,
		Enabled: true,
	})

	prices, err := client.GetPricesForCity(context.Background(), "Austin")
	if err != nil {
		t.Fatalf("GetPricesForCity failed: %v", err)
	}
	if prices.Gasoline != 3.50 || prices.Diesel != 4.10 || prices.Electric != 0 {
		t.Errorf("unexpected prices: %+v", prices)
	}
}

func TestFuelPriceClient_LiterConversion(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"result": {"gasoline": 1.00, "diesel": 1.20, "unit": "liter"}}`))
	}))
	defer srv.Close()

	client := NewFuelPriceClient(&config.PricingConfig{
		APIBase: srv.URL,
		APIKey:  "k",
		Timeout: 5,
		Enabled: true,
	})

	prices, err := client.GetPricesForCity(context.Background(), "Paris")
	if err != nil {
		t.Fatalf("GetPricesForCity failed: %v", err)
	}
	if math.Abs(prices.Gasoline-1.00/0.264172) > 1e-9 {
		t.Errorf("gasoline = %.4f, want per-gallon conversion", prices.Gasoline)
	}
}

func TestFuelPriceClient_ProviderError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	client := NewFuelPriceClient(&config.PricingConfig{
		APIBase: srv.URL,
		APIKey:  "k",
		Timeout: 5,
		Enabled: true,
	})

	if _, err := client.GetPricesForCity(context.Background(), "Austin"); !errors.Is(err, model.ErrPriceUnavailable) {
		t.Errorf("expected ErrPriceUnavailable, got %v", err)
	}
}
