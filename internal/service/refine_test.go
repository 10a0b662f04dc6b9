package service

import (
	"context"
	"errors"
	"testing"

	"github.com/Quinntyx/hackutd-2025/internal/model"
)

func TestLLMRefinementAdapter_EmptyRequestKeepsWeights(t *testing.T) {
	adapter := NewLLMRefinementAdapter(nil)
	current := model.Weights{Price: 5, MPG: 5, Mileage: 5, Transmission: 5, Electric: 5, FuelType: 5}

	got, err := adapter.AdjustWeights(context.Background(), "   ", current)
	if err != nil {
		t.Fatalf("empty request should not fail: %v", err)
	}
	if got != current {
		t.Errorf("empty request should keep weights unchanged, got %+v", got)
	}
}

func TestLLMRefinementAdapter_EmptyRequestClampsOutOfRangeWeights(t *testing.T) {
	adapter := NewLLMRefinementAdapter(nil)

	got, err := adapter.AdjustWeights(context.Background(), "", model.Weights{
		Price: 13, MPG: -2, Mileage: 5, Transmission: 5, Electric: 5, FuelType: 5,
	})
	if err != nil {
		t.Fatalf("AdjustWeights failed: %v", err)
	}
	if got.Price != 10 {
		t.Errorf("weight 13 should clamp to 10, got %d", got.Price)
	}
	if got.MPG != 1 {
		t.Errorf("weight -2 should clamp to 1, got %d", got.MPG)
	}
}

func TestLLMRefinementAdapter_DisabledClientFailsNonFatally(t *testing.T) {
	adapter := NewLLMRefinementAdapter(nil)
	current := model.Weights{Price: 5, MPG: 5, Mileage: 5, Transmission: 5, Electric: 5, FuelType: 5}

	got, err := adapter.AdjustWeights(context.Background(), "care more about price", current)
	if !errors.Is(err, model.ErrRefinementFailed) {
		t.Fatalf("expected ErrRefinementFailed, got %v", err)
	}
	// The caller keeps its current weights; the adapter hands them back.
	if got != current {
		t.Errorf("failed refinement should return current weights, got %+v", got)
	}
}
