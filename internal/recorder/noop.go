package recorder

import "JMeterDataGen/internal/model"

// NoopRecorder is a no-op implementation used when SQLite is not configured.
type NoopRecorder struct{}

func NewNoopRecorder() *NoopRecorder { return &NoopRecorder{} }

func (n *NoopRecorder) RecordBatch(_ *model.RunInfo, _ model.Batch) error { return nil }
func (n *NoopRecorder) Close() error                                      { return nil }
