package media

import (
	"context"
	"path/filepath"
	"testing"
	"time"
)

func TestParseProbeDuration(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		want    time.Duration
		wantErr bool
	}{
		{
			name: "valid ffprobe output",
			data: `{"format": {"duration": "125.482000"}}`,
			want: time.Duration(125.482 * float64(time.Second)),
		},
		{
			name: "integer seconds",
			data: `{"format": {"duration": "90"}}`,
			want: 90 * time.Second,
		},
		{
			name:    "not json",
			data:    "ffprobe exploded",
			wantErr: true,
		},
		{
			name:    "missing duration field",
			data:    `{"format": {}}`,
			wantErr: true,
		},
		{
			name:    "non-numeric duration",
			data:    `{"format": {"duration": "N/A"}}`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseProbeDuration([]byte(tt.data))
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got %v", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("parseProbeDuration failed: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestGetDurationMissingFile(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing.mp4")
	if _, err := GetDuration(context.Background(), missing); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestIsVideoFile(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{"talk.mp4", true},
		{"talk.MKV", true},
		{"/some/dir/clip.webm", true},
		{"audio.mp3", false},
		{"audio.wav", false},
		{"notes.txt", false},
		{"noext", false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			if got := IsVideoFile(tt.path); got != tt.want {
				t.Errorf("IsVideoFile(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}

func TestIsMediaFile(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{"talk.mp4", true},
		{"audio.mp3", true},
		{"audio.FLAC", true},
		{"notes.txt", false},
		{"archive.zip", false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			if got := IsMediaFile(tt.path); got != tt.want {
				t.Errorf("IsMediaFile(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}
