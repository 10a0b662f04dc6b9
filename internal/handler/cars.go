package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/Quinntyx/hackutd-2025/internal/model"
	"github.com/Quinntyx/hackutd-2025/internal/service"

	"github.com/gin-gonic/gin"
)

// CarsHandler handles vehicle recommendation HTTP requests
type CarsHandler struct {
	advisor *service.Advisor
}

// NewCarsHandler creates a new cars handler
func NewCarsHandler(advisor *service.Advisor) *CarsHandler {
	return &CarsHandler{advisor: advisor}
}

// Recommend handles GET /api/v1/cars
func (h *CarsHandler) Recommend(c *gin.Context) {
	filter, err := parseFilter(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	result, err := h.advisor.Recommend(c.Request.Context(), filter)
	if err != nil {
		if errors.Is(err, model.ErrEmptyCatalog) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "No vehicles available to select from"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Recommendation failed: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, result)
}

// parseFilter builds a CompoundFilter from query parameters. Priorities
// default to 1 and are clamped into [1,10]; targets stay unset when absent.
func parseFilter(c *gin.Context) (*model.CompoundFilter, error) {
	filter := &model.CompoundFilter{
		PricePriority:        1,
		MPGPriority:          1,
		TransmissionPriority: 1,
		ElectricPriority:     1,
		MileagePriority:      1,
		FuelTypePriority:     1,
		City:                 c.Query("city"),
	}

	var err error
	if filter.PriceTarget, err = optionalFloat(c, "priceTarget"); err != nil {
		return nil, err
	}
	if filter.MPGTarget, err = optionalFloat(c, "mpgTarget"); err != nil {
		return nil, err
	}
	if filter.MileageTarget, err = optionalFloat(c, "mileageTarget"); err != nil {
		return nil, err
	}

	if filter.PricePriority, err = priority(c, "pricePriority"); err != nil {
		return nil, err
	}
	if filter.MPGPriority, err = priority(c, "mpgPriority"); err != nil {
		return nil, err
	}
	if filter.TransmissionPriority, err = priority(c, "transmissionPriority"); err != nil {
		return nil, err
	}
	if filter.ElectricPriority, err = priority(c, "electricPriority"); err != nil {
		return nil, err
	}
	if filter.MileagePriority, err = priority(c, "mileagePriority"); err != nil {
		return nil, err
	}
	if filter.FuelTypePriority, err = priority(c, "fuelTypePriority"); err != nil {
		return nil, err
	}

	if raw := c.Query("transmission"); raw != "" {
		transmission, err := model.ParseTransmission(raw)
		if err != nil {
			return nil, err
		}
		filter.Transmission = &transmission
	}
	if raw := c.Query("fuelType"); raw != "" {
		fuelType, err := model.ParseFuelType(raw)
		if err != nil {
			return nil, err
		}
		filter.FuelType = &fuelType
	}

	filter.Electric = c.Query("electric") == "true"

	if raw := c.Query("commuteDistance"); raw != "" {
		commute, err := strconv.ParseFloat(raw, 64)
		if err != nil || commute < 0 {
			return nil, errors.New("commuteDistance must be a non-negative number")
		}
		filter.CommuteDistance = commute
	}

	return filter, nil
}

func optionalFloat(c *gin.Context, name string) (*float64, error) {
	raw := c.Query(name)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, errors.New(name + " must be a number")
	}
	return &v, nil
}

func priority(c *gin.Context, name string) (int, error) {
	raw := c.Query(name)
	if raw == "" {
		return 1, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, errors.New(name + " must be an integer")
	}
	return model.ClampPriority(float64(v)), nil
}
