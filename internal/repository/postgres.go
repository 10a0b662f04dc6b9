package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Quinntyx/hackutd-2025/internal/model"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
)

// PostgresCatalog reads the vehicle catalog from a PostgreSQL table.
type PostgresCatalog struct {
	db *sqlx.DB
}

// NewPostgresCatalog connects to PostgreSQL and configures the pool
func NewPostgresCatalog(dsn string, maxConn, maxIdleConn int) (*PostgresCatalog, error) {
	// Disable prepared statement caching to avoid "unnamed prepared statement does not exist" errors
	if !strings.Contains(dsn, "?") {
		dsn += "?prefer_simple_protocol=true"
	} else {
		dsn += "&prefer_simple_protocol=true"
	}

	db, err := sqlx.Connect("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	db.SetMaxOpenConns(maxConn)
	db.SetMaxIdleConns(maxIdleConn)
	db.SetConnMaxLifetime(5 * time.Minute)
	db.SetConnMaxIdleTime(2 * time.Minute)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &PostgresCatalog{db: db}, nil
}

// LoadVehicles fetches the full catalog in its stored order
func (r *PostgresCatalog) LoadVehicles(ctx context.Context) ([]model.CatalogEntry, error) {
	query := `
		SELECT model, year, price, transmission, mileage, fuel_type, mpg, engine_size
		FROM vehicles
		ORDER BY id
	`
	var entries []model.CatalogEntry
	if err := r.db.SelectContext(ctx, &entries, query); err != nil {
		return nil, fmt.Errorf("failed to fetch vehicles: %w", err)
	}
	return entries, nil
}

// Close closes the database connection
func (r *PostgresCatalog) Close() error {
	return r.db.Close()
}
