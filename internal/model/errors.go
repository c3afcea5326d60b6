package model

import "fmt"

// GenerationError reports a configuration that makes generation impossible.
// It is raised at startup, never mid-run.
type GenerationError struct {
	Field  string
	Reason string
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("generation config: %s: %s", e.Field, e.Reason)
}
