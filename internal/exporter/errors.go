package exporter

import "fmt"

// ExportError wraps an I/O failure while writing an export file.
type ExportError struct {
	Path string
	Op   string // "create", "write", "close", "stat"
	Err  error
}

func (e *ExportError) Error() string {
	return fmt.Sprintf("export %s: %s: %v", e.Path, e.Op, e.Err)
}

func (e *ExportError) Unwrap() error { return e.Err }
