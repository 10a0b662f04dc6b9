package repository

import (
	"context"

	"github.com/Quinntyx/hackutd-2025/internal/model"
)

// CatalogSource supplies the ordered sequence of raw vehicle rows. Rows are
// returned unvalidated; the advisor rejects malformed entries before scoring.
type CatalogSource interface {
	LoadVehicles(ctx context.Context) ([]model.CatalogEntry, error)
	Close() error
}
