package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/Quinntyx/hackutd-2025/internal/model"
	"github.com/Quinntyx/hackutd-2025/internal/utils"
)

// RefinementAdapter turns a free-text refinement request plus the current
// six priority weights into an adjusted weight set. Implementations only
// adjust weights; target values are outside the contract. Output is always
// clamped to [1,10] integers before reuse.
type RefinementAdapter interface {
	AdjustWeights(ctx context.Context, request string, current model.Weights) (model.Weights, error)
}

const refineSystemPrompt = `You tune the priority weights of a car recommendation engine.
You receive the shopper's six current priority weights (integers 1-10) and a free-text request.
Return ONLY a JSON object with the adjusted weights, same keys, integers 1-10:
{"pricePriority": n, "mpgPriority": n, "mileagePriority": n, "transmissionPriority": n, "electricPriority": n, "fuelTypePriority": n}
Raise weights the request emphasizes, lower weights it de-emphasizes, keep the rest unchanged.`

// LLMRefinementAdapter adjusts weights through an OpenAI-compatible chat
// endpoint.
type LLMRefinementAdapter struct {
	client *OpenAIClient
}

// NewLLMRefinementAdapter creates a refinement adapter backed by a chat client
func NewLLMRefinementAdapter(client *OpenAIClient) *LLMRefinementAdapter {
	return &LLMRefinementAdapter{client: client}
}

// AdjustWeights asks the model for an adjusted weight set. Any failure
// returns ErrRefinementFailed; callers keep their current weights.
func (a *LLMRefinementAdapter) AdjustWeights(ctx context.Context, request string, current model.Weights) (model.Weights, error) {
	request = strings.TrimSpace(request)
	if request == "" {
		return current.Clamped(), nil
	}

	if a.client == nil || !a.client.IsEnabled() {
		return current, fmt.Errorf("%w: chat client not enabled", model.ErrRefinementFailed)
	}

	userPrompt := fmt.Sprintf(
		"Current weights: pricePriority=%d, mpgPriority=%d, mileagePriority=%d, transmissionPriority=%d, electricPriority=%d, fuelTypePriority=%d\nRequest: %s",
		current.Price, current.MPG, current.Mileage, current.Transmission, current.Electric, current.FuelType,
		request,
	)

	resp, err := a.client.ChatCompletion(ctx, ChatCompletionRequest{
		Messages: []ChatMessage{
			{Role: "system", Content: refineSystemPrompt},
			{Role: "user", Content: userPrompt},
		},
		ResponseFormat: &ResponseFormat{Type: "json_object"},
	})
	if err != nil {
		return current, fmt.Errorf("%w: %v", model.ErrRefinementFailed, err)
	}
	if len(resp.Choices) == 0 {
		return current, fmt.Errorf("%w: empty completion", model.ErrRefinementFailed)
	}

	// Weights may arrive as floats or inside markdown fences; parse loosely
	// then round and clamp.
	var raw struct {
		Price        *float64 `json:"pricePriority"`
		MPG          *float64 `json:"mpgPriority"`
		Mileage      *float64 `json:"mileagePriority"`
		Transmission *float64 `json:"transmissionPriority"`
		Electric     *float64 `json:"electricPriority"`
		FuelType     *float64 `json:"fuelTypePriority"`
	}
	if err := utils.ParseAIJSON(resp.Choices[0].Message.Content, &raw); err != nil {
		return current, fmt.Errorf("%w: %v", model.ErrRefinementFailed, err)
	}

	adjusted := current
	if raw.Price != nil {
		adjusted.Price = model.ClampPriority(*raw.Price)
	}
	if raw.MPG != nil {
		adjusted.MPG = model.ClampPriority(*raw.MPG)
	}
	if raw.Mileage != nil {
		adjusted.Mileage = model.ClampPriority(*raw.Mileage)
	}
	if raw.Transmission != nil {
		adjusted.Transmission = model.ClampPriority(*raw.Transmission)
	}
	if raw.Electric != nil {
		adjusted.Electric = model.ClampPriority(*raw.Electric)
	}
	if raw.FuelType != nil {
		adjusted.FuelType = model.ClampPriority(*raw.FuelType)
	}

	return adjusted.Clamped(), nil
}
