// Package manifest stores the parameters of a run next to its output so it can be replayed.
package manifest

import (
	"encoding/json"
	"fmt"
	"os"

	"JMeterDataGen/internal/model"
)

// PathFor returns the manifest path for an output file.
func PathFor(output string) string {
	return output + ".manifest.json"
}

// Load reads a run manifest from a JSON file.
func Load(filePath string) (*model.RunInfo, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}
	var run model.RunInfo
	if err := json.Unmarshal(data, &run); err != nil {
		return nil, fmt.Errorf("parse manifest: %w", err)
	}
	return &run, nil
}

// Save writes the run manifest to a JSON file.
func Save(filePath string, run *model.RunInfo) error {
	data, err := json.MarshalIndent(run, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filePath, data, 0644)
}
