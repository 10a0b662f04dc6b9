package handler

import (
	"net/http"

	"github.com/Quinntyx/hackutd-2025/internal/model"
	"github.com/Quinntyx/hackutd-2025/internal/service"

	"github.com/gin-gonic/gin"
)

// PricesHandler handles fuel-price HTTP requests
type PricesHandler struct {
	advisor *service.Advisor
}

// NewPricesHandler creates a new prices handler
func NewPricesHandler(advisor *service.Advisor) *PricesHandler {
	return &PricesHandler{advisor: advisor}
}

// Get handles GET /api/v1/prices/:city
func (h *PricesHandler) Get(c *gin.Context) {
	city := c.Param("city")
	if city == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing city"})
		return
	}

	prices, source := h.advisor.PricesForCity(c.Request.Context(), city)

	c.JSON(http.StatusOK, model.PricesResponse{
		City:   city,
		Prices: prices,
		Source: source,
	})
}
