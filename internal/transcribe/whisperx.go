package transcribe

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/mgpai22/recut/internal/transcript"
)

// runs the whisperx CLI, which writes a time-aligned JSON next to its
// other outputs
type WhisperXTranscriber struct {
	options Options
}

func NewWhisperXTranscriber(opts Options) *WhisperXTranscriber {
	return &WhisperXTranscriber{options: opts}
}

func (t *WhisperXTranscriber) Transcribe(
	ctx context.Context,
	mediaPath string,
) (*transcript.Document, error) {
	if _, err := os.Stat(mediaPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("media file not found: %s", mediaPath)
	}

	workDir, err := os.MkdirTemp("", "recut-whisperx-*")
	if err != nil {
		return nil, fmt.Errorf("failed to create temp directory: %w", err)
	}
	defer os.RemoveAll(workDir)

	model := t.options.Model
	if model == "" {
		model = "medium"
	}
	language := t.options.Language
	if language == "" {
		language = "en"
	}

	args := []string{
		mediaPath,
		"--model", model,
		"--language", language,
		"--output_format", "all",
		"--compute_type", "float32",
		"--output_dir", workDir,
	}

	cmd := exec.CommandContext(ctx, "whisperx", args...)
	var stderr strings.Builder
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("whisperx failed: %w: %s", err, strings.TrimSpace(stderr.String()))
	}

	stem := strings.TrimSuffix(filepath.Base(mediaPath), filepath.Ext(mediaPath))
	jsonPath := filepath.Join(workDir, stem+".json")

	doc, err := transcript.Load(jsonPath)
	if err != nil {
		return nil, fmt.Errorf("whisperx produced no usable transcript: %w", err)
	}

	return doc, nil
}
