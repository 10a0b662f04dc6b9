package repository

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/Quinntyx/hackutd-2025/internal/model"
)

// CSVCatalog reads the vehicle catalog from a CSV file with a header row:
// model,year,price,transmission,mileage,fuelType,mpg,engineSize.
type CSVCatalog struct {
	path string
}

// NewCSVCatalog creates a CSV-backed catalog source
func NewCSVCatalog(path string) *CSVCatalog {
	return &CSVCatalog{path: path}
}

// LoadVehicles parses the whole file into raw catalog entries. Fields are
// trimmed and empty lines skipped; numeric parse failures fail the load
// since they indicate a broken export rather than a single bad row.
func (c *CSVCatalog) LoadVehicles(ctx context.Context) ([]model.CatalogEntry, error) {
	f, err := os.Open(c.path)
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse catalog csv: %w", err)
	}
	if len(records) < 2 {
		return nil, model.ErrEmptyCatalog
	}

	// Map header names to column positions so column order doesn't matter
	cols := make(map[string]int, len(records[0]))
	for i, name := range records[0] {
		cols[strings.TrimSpace(name)] = i
	}
	for _, required := range []string{"model", "year", "price", "transmission", "mileage", "fuelType", "mpg", "engineSize"} {
		if _, ok := cols[required]; !ok {
			return nil, fmt.Errorf("catalog csv missing column %q", required)
		}
	}

	entries := make([]model.CatalogEntry, 0, len(records)-1)
	for line, rec := range records[1:] {
		field := func(name string) string { return strings.TrimSpace(rec[cols[name]]) }

		year, err := strconv.Atoi(field("year"))
		if err != nil {
			return nil, fmt.Errorf("catalog csv line %d: bad year: %w", line+2, err)
		}
		price, err := strconv.ParseFloat(field("price"), 64)
		if err != nil {
			return nil, fmt.Errorf("catalog csv line %d: bad price: %w", line+2, err)
		}
		mileage, err := strconv.ParseFloat(field("mileage"), 64)
		if err != nil {
			return nil, fmt.Errorf("catalog csv line %d: bad mileage: %w", line+2, err)
		}
		mpg, err := strconv.ParseFloat(field("mpg"), 64)
		if err != nil {
			return nil, fmt.Errorf("catalog csv line %d: bad mpg: %w", line+2, err)
		}
		engineSize, err := strconv.ParseFloat(field("engineSize"), 64)
		if err != nil {
			return nil, fmt.Errorf("catalog csv line %d: bad engineSize: %w", line+2, err)
		}

		entries = append(entries, model.CatalogEntry{
			Model:        field("model"),
			Year:         year,
			Price:        price,
			Transmission: field("transmission"),
			Mileage:      mileage,
			FuelType:     field("fuelType"),
			MPG:          mpg,
			EngineSize:   engineSize,
		})
	}

	return entries, nil
}

// Close implements CatalogSource; a CSV source holds no open resources.
func (c *CSVCatalog) Close() error { return nil }
