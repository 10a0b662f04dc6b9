package handler

import (
	"log"
	"net/http"

	"github.com/Quinntyx/hackutd-2025/internal/model"
	"github.com/Quinntyx/hackutd-2025/internal/service"

	"github.com/gin-gonic/gin"
)

// RefineHandler handles weight-refinement HTTP requests
type RefineHandler struct {
	adapter service.RefinementAdapter
}

// NewRefineHandler creates a new refine handler
func NewRefineHandler(adapter service.RefinementAdapter) *RefineHandler {
	return &RefineHandler{adapter: adapter}
}

// Refine handles POST /api/v1/refine. Adapter failure is non-fatal: the
// shopper keeps their current weights and the response says so.
func (h *RefineHandler) Refine(c *gin.Context) {
	var req model.RefineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	current := req.Weights.Clamped()

	adjusted, err := h.adapter.AdjustWeights(c.Request.Context(), req.Request, current)
	if err != nil {
		log.Printf("Warning: refinement failed, keeping current weights: %v", err)
		c.JSON(http.StatusOK, model.RefineResponse{Weights: current, Refined: false})
		return
	}

	c.JSON(http.StatusOK, model.RefineResponse{Weights: adjusted.Clamped(), Refined: true})
}
