/*
Copyright © 2025 Jorge C. Riveros
SPDX-License-Identifier: Apache-2.0
*/
package deployer

import (
	"encoding/json"
	"fmt"
	"os"
)

// TemplateResult is the outcome of one template within a run.
type TemplateResult struct {
	Template string         `json:"template"`
	Success  bool           `json:"success"`
	Objects  int            `json:"objects"`
	Log      []string       `json:"log,omitempty"`
	Payload  map[string]any `json:"payload,omitempty"`
}

// Result is the outcome of one run.
type Result struct {
	ID      string           `json:"id"`
	Date    string           `json:"date"`
	Host    string           `json:"host"`
	Testing bool             `json:"testing,omitempty"`
	Success bool             `json:"success"`
	Message string           `json:"message,omitempty"`
	Output  []TemplateResult `json:"output"`
}

// Record appends the result to the run history at path as a JSON array.
// Existing history is preserved; a missing or unreadable file starts fresh.
func (r *Result) Record(path string) error {
	if path == "" {
		return nil
	}

	var history []*Result
	if data, err := os.ReadFile(path); err == nil {
		// Best effort: corrupt history is replaced, not fatal.
		_ = json.Unmarshal(data, &history)
	}
	history = append(history, r)

	data, err := json.MarshalIndent(history, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding run record failed: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing run record failed: %w", err)
	}
	return nil
}
