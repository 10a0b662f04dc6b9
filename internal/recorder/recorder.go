package recorder

import "time"

// SelectionRecord captures one completed selection pass for later analysis.
type SelectionRecord struct {
	Timestamp      time.Time
	City           string
	CommuteMiles   float64
	CatalogSize    int
	RejectedRows   int
	BestFit        string
	BudgetPick     string
	LuxuryPick     string
	ResponseTimeMs int64
}

// Recorder persists selection records. Recording is best-effort and must
// never fail or block a request.
type Recorder interface {
	RecordSelection(rec SelectionRecord) error
	Close() error
}
