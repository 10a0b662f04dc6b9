package recorder

import (
	"database/sql"
	"fmt"
	"log"
	"sync"

	_ "modernc.org/sqlite"
)

// SQLiteRecorder persists selection records to a SQLite database.
type SQLiteRecorder struct {
	db *sql.DB
	mu sync.Mutex
}

// NewSQLiteRecorder opens (or creates) the SQLite database and runs migrations.
func NewSQLiteRecorder(dbPath string) (*SQLiteRecorder, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// WAL mode so reporting tools can read while the server writes.
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	r := &SQLiteRecorder{db: db}
	if err := r.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	log.Printf("sqlite recorder opened: %s", dbPath)
	return r, nil
}

func (r *SQLiteRecorder) migrate() error {
	stmt := `CREATE TABLE IF NOT EXISTS selections (
		id               INTEGER PRIMARY KEY AUTOINCREMENT,
		timestamp        INTEGER NOT NULL,
		city             TEXT,
		commute_miles    REAL,
		catalog_size     INTEGER,
		rejected_rows    INTEGER,
		best_fit         TEXT,
		budget_pick      TEXT,
		luxury_pick      TEXT,
		response_time_ms INTEGER
	)`
	if _, err := r.db.Exec(stmt); err != nil {
		return err
	}
	return nil
}

// RecordSelection inserts one selection record.
func (r *SQLiteRecorder) RecordSelection(rec SelectionRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, err := r.db.Exec(
		`INSERT INTO selections
			(timestamp, city, commute_miles, catalog_size, rejected_rows, best_fit, budget_pick, luxury_pick, response_time_ms)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.Timestamp.Unix(),
		rec.City,
		rec.CommuteMiles,
		rec.CatalogSize,
		rec.RejectedRows,
		rec.BestFit,
		rec.BudgetPick,
		rec.LuxuryPick,
		rec.ResponseTimeMs,
	)
	if err != nil {
		return fmt.Errorf("insert selection: %w", err)
	}
	return nil
}

// Close closes the underlying database.
func (r *SQLiteRecorder) Close() error {
	return r.db.Close()
}
