package model

import "fmt"

// Transmission is the gearbox type of a catalog vehicle.
type Transmission string

const (
	TransmissionManual    Transmission = "Manual"
	TransmissionAutomatic Transmission = "Automatic"
	TransmissionSemiAuto  Transmission = "Semi-Auto"
)

// FuelType is the energy source of a catalog vehicle.
type FuelType string

const (
	FuelGasoline FuelType = "Gasoline"
	FuelDiesel   FuelType = "Diesel"
	FuelHybrid   FuelType = "Hybrid"
	FuelOther    FuelType = "Other"
)

// ParseTransmission maps a raw catalog value to a Transmission.
func ParseTransmission(s string) (Transmission, error) {
	switch Transmission(s) {
	case TransmissionManual, TransmissionAutomatic, TransmissionSemiAuto:
		return Transmission(s), nil
	}
	return "", fmt.Errorf("%w: unknown transmission %q", ErrInvalidVehicleData, s)
}

// ParseFuelType maps a raw catalog value to a FuelType.
func ParseFuelType(s string) (FuelType, error) {
	switch FuelType(s) {
	case FuelGasoline, FuelDiesel, FuelHybrid, FuelOther:
		return FuelType(s), nil
	}
	return "", fmt.Errorf("%w: unknown fuel type %q", ErrInvalidVehicleData, s)
}

// CatalogEntry is a raw vehicle row as supplied by a catalog source.
// It carries no derived fields; those are computed when the entry is
// promoted to a Car.
type CatalogEntry struct {
	Model        string  `db:"model"`
	Year         int     `db:"year"`
	Price        float64 `db:"price"`
	Transmission string  `db:"transmission"`
	Mileage      float64 `db:"mileage"`
	FuelType     string  `db:"fuel_type"`
	MPG          float64 `db:"mpg"`
	EngineSize   float64 `db:"engine_size"`
}

// Validate rejects rows that must never reach scoring: non-positive price
// or mpg, and unknown enum values. Rows are rejected, never defaulted.
func (e CatalogEntry) Validate() error {
	if e.Model == "" {
		return fmt.Errorf("%w: missing model name", ErrInvalidVehicleData)
	}
	if e.Price <= 0 {
		return fmt.Errorf("%w: %s has non-positive price %.2f", ErrInvalidVehicleData, e.Model, e.Price)
	}
	if e.MPG <= 0 {
		return fmt.Errorf("%w: %s has non-positive mpg %.2f", ErrInvalidVehicleData, e.Model, e.MPG)
	}
	if _, err := ParseTransmission(e.Transmission); err != nil {
		return err
	}
	if _, err := ParseFuelType(e.FuelType); err != nil {
		return err
	}
	return nil
}

// Car is a validated catalog vehicle plus its derived financial fields.
// DownPayment and MonthlyPayment are pure functions of StickerPrice and are
// never stored independently of it. Score is only ever set on per-request
// copies returned from a selection pass.
type Car struct {
	Model              string       `json:"model"`
	Year               int          `json:"year"`
	StickerPrice       float64      `json:"stickerPrice"`
	DownPayment        float64      `json:"downPayment"`
	MonthlyPayment     float64      `json:"monthlyPayment"`
	Transmission       Transmission `json:"transmission"`
	Mileage            float64      `json:"mileage"`
	FuelType           FuelType     `json:"fuelType"`
	MPG                float64      `json:"mpg"`
	EngineSize         float64      `json:"engineSize"`
	EstimatedDailyCost float64      `json:"estimatedDailyCost"`
	Score              float64      `json:"score"`
}

// NewCar promotes a validated catalog entry to a Car. The down payment is
// 20% of sticker, the remainder amortized over 12 periods at a 5% markup.
// The estimated daily cost is filled in separately by the cost estimator.
func NewCar(e CatalogEntry) (Car, error) {
	if err := e.Validate(); err != nil {
		return Car{}, err
	}
	transmission, _ := ParseTransmission(e.Transmission)
	fuelType, _ := ParseFuelType(e.FuelType)
	return Car{
		Model:          e.Model,
		Year:           e.Year,
		StickerPrice:   e.Price,
		DownPayment:    e.Price * 0.2,
		MonthlyPayment: e.Price * 0.8 / 12 * 1.05,
		Transmission:   transmission,
		Mileage:        e.Mileage,
		FuelType:       fuelType,
		MPG:            e.MPG,
		EngineSize:     e.EngineSize,
	}, nil
}

// FuelPrices maps the fixed energy categories to a unit price.
type FuelPrices struct {
	Gasoline float64 `json:"gasoline"`
	Diesel   float64 `json:"diesel"`
	Electric float64 `json:"electric"`
}

// DefaultFuelPrices is the documented fallback table used whenever the
// price provider is unavailable.
func DefaultFuelPrices() FuelPrices {
	return FuelPrices{Gasoline: 3.00, Diesel: 4.00, Electric: 0.00}
}
