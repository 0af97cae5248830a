// Package transcript models the time-aligned transcript document produced by
// a transcription engine. The schema is validated once at the load boundary;
// everything downstream works with typed segments.
package transcript

import (
	"encoding/json"
	"fmt"
	"os"
)

// word-level timing entry
type Word struct {
	Text  string  `json:"word"`
	Start float64 `json:"start"`
	End   float64 `json:"end"`
}

// one time-aligned span of transcribed speech
type Segment struct {
	Start float64 `json:"start"`
	End   float64 `json:"end"`
	Text  string  `json:"text"`
	Words []Word  `json:"words,omitempty"`
}

// top-level transcript document (WhisperX-compatible layout)
type Document struct {
	Segments []Segment `json:"segments"`
	Language string    `json:"language,omitempty"`
}

// Load reads and validates a transcript document. A document without a
// segments array is malformed; the error is fatal for the invocation rather
// than being worked around downstream.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read transcript file: %w", err)
	}
	return Decode(data)
}

// Decode parses transcript JSON and validates the segments field is present.
func Decode(data []byte) (*Document, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("malformed transcript document: %w", err)
	}
	if _, ok := raw["segments"]; !ok {
		return nil, fmt.Errorf("malformed transcript document: missing segments field")
	}

	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("malformed transcript document: %w", err)
	}
	return &doc, nil
}

// Save writes the document as indented JSON.
func (d *Document) Save(path string) error {
	data, err := json.MarshalIndent(d, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode transcript: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write transcript file: %w", err)
	}
	return nil
}
