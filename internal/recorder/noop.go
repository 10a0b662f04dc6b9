package recorder

// NoopRecorder discards all records. Used when no recorder path is
// configured.
type NoopRecorder struct{}

// NewNoopRecorder creates a recorder that does nothing.
func NewNoopRecorder() *NoopRecorder { return &NoopRecorder{} }

func (n *NoopRecorder) RecordSelection(rec SelectionRecord) error { return nil }

func (n *NoopRecorder) Close() error { return nil }
