package recorder

import "JMeterDataGen/internal/model"

// Recorder persists generated batches for later reuse (e.g. a JDBC data source).
type Recorder interface {
	RecordBatch(run *model.RunInfo, batch model.Batch) error
	Close() error
}
