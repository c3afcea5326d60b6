package model

import (
	"time"

	"github.com/google/uuid"
)

// RunInfo describes one generation run.
type RunInfo struct {
	ID        uuid.UUID `json:"id"`
	Seed      uint64    `json:"seed"`
	Count     int       `json:"count"`
	Output    string    `json:"output"`
	Bytes     int64     `json:"bytes"`
	CreatedAt time.Time `json:"created_at"`
}

// NewRunInfo stamps a fresh run.
func NewRunInfo(seed uint64, count int, output string) *RunInfo {
	return &RunInfo{
		ID:        uuid.New(),
		Seed:      seed,
		Count:     count,
		Output:    output,
		CreatedAt: time.Now(),
	}
}
