package transcribe

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mgpai22/recut/internal/srt"
	"github.com/mgpai22/recut/internal/transcript"
)

// transcription engine
type Engine string

const (
	EngineWhisperX Engine = "whisperx"
	EngineOpenAI   Engine = "openai"
	EngineGemini   Engine = "gemini"
)

// transcription options
type Options struct {
	Model    string // engine-specific model name
	Language string // source language of the audio
	Group    GroupOptions
}

// interface for producing a time-aligned transcript from a media file
type Transcriber interface {
	Transcribe(ctx context.Context, mediaPath string) (*transcript.Document, error)
}

// creates a transcriber for the given engine
func Factory(
	ctx context.Context,
	engine Engine,
	apiKey string,
	opts Options,
) (Transcriber, error) {
	switch engine {
	case EngineWhisperX:
		return NewWhisperXTranscriber(opts), nil
	case EngineOpenAI:
		return NewOpenAITranscriber(apiKey, opts)
	case EngineGemini:
		return NewGeminiTranscriber(ctx, apiKey, opts)
	default:
		return nil, fmt.Errorf("unsupported engine: %s", engine)
	}
}

// Outputs names the three artifacts one transcription run produces: the
// time-aligned JSON, the subtitle file the user edits, and a pristine copy
// of that subtitle file kept for diffing after the edit.
type Outputs struct {
	JSON     string
	SRT      string
	Original string
}

// WriteOutputs writes the transcript document and both subtitle snapshots
// next to the media file (or into outputDir when set).
func WriteOutputs(doc *transcript.Document, mediaPath, outputDir string) (Outputs, error) {
	dir := outputDir
	if dir == "" {
		dir = filepath.Dir(mediaPath)
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return Outputs{}, fmt.Errorf("failed to create output directory: %w", err)
	}

	stem := strings.TrimSuffix(filepath.Base(mediaPath), filepath.Ext(mediaPath))
	out := Outputs{
		JSON:     filepath.Join(dir, stem+".json"),
		SRT:      filepath.Join(dir, stem+".srt"),
		Original: filepath.Join(dir, stem+".srt.orig"),
	}

	if err := doc.Save(out.JSON); err != nil {
		return Outputs{}, err
	}

	blocks := make([]srt.Block, 0, len(doc.Segments))
	for _, seg := range doc.Segments {
		text := strings.TrimSpace(seg.Text)
		if text == "" {
			continue
		}
		blocks = append(blocks, srt.Block{Start: seg.Start, End: seg.End, Text: text})
	}

	if err := srt.WriteFile(out.SRT, blocks); err != nil {
		return Outputs{}, fmt.Errorf("failed to write subtitle file: %w", err)
	}
	if err := srt.WriteFile(out.Original, blocks); err != nil {
		return Outputs{}, fmt.Errorf("failed to write subtitle snapshot: %w", err)
	}

	return out, nil
}
