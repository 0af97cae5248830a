package transcribe

import (
	"context"
	"testing"
)

func TestParseVerboseJSON(t *testing.T) {
	transcriber := &OpenAITranscriber{options: Options{Group: DefaultGroupOptions()}}

	tests := []struct {
		name      string
		rawJSON   string
		wantCount int
		wantErr   bool
	}{
		{
			name: "segments only",
			rawJSON: `{
				"text": "Hello world. How are you today?",
				"segments": [
					{"start": 0.0, "end": 1.5, "text": "Hello world."},
					{"start": 1.5, "end": 3.0, "text": "How are you today?"}
				],
				"language": "en",
				"duration": 3.0
			}`,
			wantCount: 2,
		},
		{
			name: "words regroup into segments",
			rawJSON: `{
				"text": "hello world again",
				"words": [
					{"word": "hello", "start": 0.0, "end": 0.4},
					{"word": "world", "start": 0.5, "end": 0.9},
					{"word": "again", "start": 3.0, "end": 3.4}
				],
				"language": "en"
			}`,
			wantCount: 2,
		},
		{
			name: "empty segment text filtered",
			rawJSON: `{
				"text": "Hello world",
				"segments": [
					{"start": 0.0, "end": 0.5, "text": "  "},
					{"start": 0.5, "end": 1.5, "text": "Hello world"}
				]
			}`,
			wantCount: 1,
		},
		{
			name:    "empty response",
			rawJSON: "",
			wantErr: true,
		},
		{
			name:    "invalid json",
			rawJSON: "{not json",
			wantErr: true,
		},
		{
			name:    "no segments or words",
			rawJSON: `{"text": "something", "segments": [], "words": []}`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := transcriber.parseVerboseJSON(tt.rawJSON)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("parseVerboseJSON failed: %v", err)
			}
			if len(doc.Segments) != tt.wantCount {
				t.Errorf("expected %d segments, got %d", tt.wantCount, len(doc.Segments))
			}
		})
	}
}

func TestNewOpenAITranscriberRequiresKey(t *testing.T) {
	if _, err := NewOpenAITranscriber("", Options{}); err == nil {
		t.Error("expected error for missing API key")
	}
}

func TestFactoryUnsupportedEngine(t *testing.T) {
	if _, err := Factory(context.Background(), Engine("nope"), "", Options{}); err == nil {
		t.Error("expected error for unsupported engine")
	}
}
