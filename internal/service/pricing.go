package service

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/Quinntyx/hackutd-2025/internal/config"
	"github.com/Quinntyx/hackutd-2025/internal/model"
)

// gallonsPerLiter converts provider rates quoted per liter to per gallon.
const gallonsPerLiter = 0.264172

// FuelPriceClient looks up regional fuel prices by city. Any failure is
// non-fatal: callers substitute model.DefaultFuelPrices.
type FuelPriceClient struct {
	cfg        *config.PricingConfig
	httpClient *http.Client
}

// NewFuelPriceClient creates a fuel-price client
func NewFuelPriceClient(cfg *config.PricingConfig) *FuelPriceClient {
	return &FuelPriceClient{
		cfg: cfg,
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.Timeout) * time.Second,
		},
	}
}

// IsEnabled returns whether the client is configured and ready
func (c *FuelPriceClient) IsEnabled() bool {
	return c.cfg.Enabled
}

// gasPriceResponse is the provider's gasPrice/fromCity payload
type gasPriceResponse struct {
	Result struct {
		Gasoline float64 `json:"gasoline"`
		Diesel   float64 `json:"diesel"`
		Unit     string  `json:"unit"`
	} `json:"result"`
}

// GetPricesForCity fetches the {gasoline, diesel, electric} unit prices for
// a city. Rates quoted per liter are converted to per gallon; the electric
// rate is not supplied by the provider and reports as 0.
func (c *FuelPriceClient) GetPricesForCity(ctx context.Context, city string) (model.FuelPrices, error) {
	if !c.cfg.Enabled {
		return model.FuelPrices{}, fmt.Errorf("%w: no API key configured", model.ErrPriceUnavailable)
	}

	u, err := url.Parse(c.cfg.APIBase + "/gasPrice/fromCity")
	if err != nil {
		return model.FuelPrices{}, fmt.Errorf("%w: bad API base: %v", model.ErrPriceUnavailable, err)
	}
	q := u.Query()
	q.Set("city", city)
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return model.FuelPrices{}, fmt.Errorf("%w: %v", model.ErrPriceUnavailable, err)
	}
	req.Header.Set("Authorization", c.cfg.APIKey)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return model.FuelPrices{}, fmt.Errorf("%w: %v", model.ErrPriceUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return model.FuelPrices{}, fmt.Errorf("%w: status %d", model.ErrPriceUnavailable, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return model.FuelPrices{}, fmt.Errorf("%w: %v", model.ErrPriceUnavailable, err)
	}

	var parsed gasPriceResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return model.FuelPrices{}, fmt.Errorf("%w: %v", model.ErrPriceUnavailable, err)
	}

	divisor := 1.0
	if parsed.Result.Unit == "liter" {
		divisor = gallonsPerLiter
	}

	return model.FuelPrices{
		Gasoline: parsed.Result.Gasoline / divisor,
		Diesel:   parsed.Result.Diesel / divisor,
		Electric: 0,
	}, nil
}
