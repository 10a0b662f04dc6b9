package model

import "math"

const (
	// MinPriority and MaxPriority bound every importance weight.
	MinPriority = 1
	MaxPriority = 10
)

// CompoundFilter is a weighted-preference specification. Target fields are
// optional; a nil target disables that scoring term. Priority fields are
// always present and conventionally sit in [1,10].
type CompoundFilter struct {
	PriceTarget          *float64      `json:"priceTarget,omitempty"`
	PricePriority        int           `json:"pricePriority"`
	MPGTarget            *float64      `json:"mpgTarget,omitempty"`
	MPGPriority          int           `json:"mpgPriority"`
	Transmission         *Transmission `json:"transmission,omitempty"`
	TransmissionPriority int           `json:"transmissionPriority"`
	Electric             bool          `json:"electric"`
	ElectricPriority     int           `json:"electricPriority"`
	MileageTarget        *float64      `json:"mileageTarget,omitempty"`
	MileagePriority      int           `json:"mileagePriority"`
	FuelType             *FuelType     `json:"fuelType,omitempty"`
	FuelTypePriority     int           `json:"fuelTypePriority"`
	City                 string        `json:"city"`
	CommuteDistance      float64       `json:"commuteDistance"`
}

// Weights is the six importance weights of a CompoundFilter, the only state
// the refinement adapter is allowed to touch.
type Weights struct {
	Price        int `json:"pricePriority"`
	MPG          int `json:"mpgPriority"`
	Mileage      int `json:"mileagePriority"`
	Transmission int `json:"transmissionPriority"`
	Electric     int `json:"electricPriority"`
	FuelType     int `json:"fuelTypePriority"`
}

// ClampPriority rounds a raw weight to the nearest integer and clamps it
// into [MinPriority, MaxPriority].
func ClampPriority(v float64) int {
	n := int(math.Round(v))
	if n < MinPriority {
		return MinPriority
	}
	if n > MaxPriority {
		return MaxPriority
	}
	return n
}

// Clamped returns a copy with every weight clamped into range. Adapter
// output must pass through this before it is fed back into scoring.
func (w Weights) Clamped() Weights {
	return Weights{
		Price:        ClampPriority(float64(w.Price)),
		MPG:          ClampPriority(float64(w.MPG)),
		Mileage:      ClampPriority(float64(w.Mileage)),
		Transmission: ClampPriority(float64(w.Transmission)),
		Electric:     ClampPriority(float64(w.Electric)),
		FuelType:     ClampPriority(float64(w.FuelType)),
	}
}

// Weights extracts the current importance weights from the filter.
func (f *CompoundFilter) Weights() Weights {
	return Weights{
		Price:        f.PricePriority,
		MPG:          f.MPGPriority,
		Mileage:      f.MileagePriority,
		Transmission: f.TransmissionPriority,
		Electric:     f.ElectricPriority,
		FuelType:     f.FuelTypePriority,
	}
}

// ApplyWeights writes an adjusted weight set back into the filter, clamping
// on the way in. Targets are never modified.
func (f *CompoundFilter) ApplyWeights(w Weights) {
	w = w.Clamped()
	f.PricePriority = w.Price
	f.MPGPriority = w.MPG
	f.MileagePriority = w.Mileage
	f.TransmissionPriority = w.Transmission
	f.ElectricPriority = w.Electric
	f.FuelTypePriority = w.FuelType
}
