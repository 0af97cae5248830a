package transcribe

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"github.com/mgpai22/recut/internal/media"
	"github.com/mgpai22/recut/internal/transcript"
)

// transcribes via the OpenAI Audio API (Whisper)
type OpenAITranscriber struct {
	client  openai.Client
	model   string
	options Options
}

// verbose_json response structure from Whisper
type whisperVerboseResponse struct {
	Text     string  `json:"text"`
	Language string  `json:"language"`
	Duration float64 `json:"duration"`
	Segments []struct {
		Start float64 `json:"start"`
		End   float64 `json:"end"`
		Text  string  `json:"text"`
	} `json:"segments"`
	Words []struct {
		Word  string  `json:"word"`
		Start float64 `json:"start"`
		End   float64 `json:"end"`
	} `json:"words"`
}

func NewOpenAITranscriber(apiKey string, opts Options) (*OpenAITranscriber, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("API key is required")
	}

	model := opts.Model
	if model == "" {
		model = "whisper-1"
	}

	return &OpenAITranscriber{
		client:  openai.NewClient(option.WithAPIKey(apiKey)),
		model:   model,
		options: opts,
	}, nil
}

func (t *OpenAITranscriber) Transcribe(
	ctx context.Context,
	mediaPath string,
) (*transcript.Document, error) {
	if _, err := os.Stat(mediaPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("media file not found: %s", mediaPath)
	}

	tempDir, err := os.MkdirTemp("", "recut-openai-*")
	if err != nil {
		return nil, fmt.Errorf("failed to create temp directory: %w", err)
	}
	defer os.RemoveAll(tempDir)

	audioPath := filepath.Join(tempDir, "audio.mp3")
	if err := media.ExtractAudio(ctx, mediaPath, audioPath, media.DefaultExtractOptions()); err != nil {
		return nil, fmt.Errorf("failed to prepare audio: %w", err)
	}

	file, err := os.Open(audioPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open audio file: %w", err)
	}
	defer file.Close()

	params := openai.AudioTranscriptionNewParams{
		File:                   file,
		Model:                  openai.AudioModel(t.model),
		ResponseFormat:         openai.AudioResponseFormatVerboseJSON,
		TimestampGranularities: []string{"segment", "word"},
	}
	if t.options.Language != "" {
		params.Language = openai.String(t.options.Language)
	}

	resp, err := t.client.Audio.Transcriptions.New(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("transcription failed: %w", err)
	}

	return t.parseVerboseJSON(resp.RawJSON())
}

func (t *OpenAITranscriber) parseVerboseJSON(rawJSON string) (*transcript.Document, error) {
	if rawJSON == "" {
		return nil, fmt.Errorf("empty response")
	}

	var verbose whisperVerboseResponse
	if err := json.Unmarshal([]byte(rawJSON), &verbose); err != nil {
		return nil, fmt.Errorf("failed to parse verbose_json response: %w", err)
	}

	// word timestamps give the most faithful segmentation; regroup them
	// rather than trusting the API's own segment boundaries
	if len(verbose.Words) > 0 {
		words := make([]transcript.Word, 0, len(verbose.Words))
		for _, w := range verbose.Words {
			text := strings.TrimSpace(w.Word)
			if text == "" {
				continue
			}
			words = append(words, transcript.Word{Text: text, Start: w.Start, End: w.End})
		}
		return &transcript.Document{
			Language: verbose.Language,
			Segments: GroupWords(words, t.options.Group),
		}, nil
	}

	if len(verbose.Segments) == 0 {
		return nil, fmt.Errorf("no segments or words in response")
	}

	doc := &transcript.Document{Language: verbose.Language}
	for _, seg := range verbose.Segments {
		text := strings.TrimSpace(seg.Text)
		if text == "" {
			continue
		}
		doc.Segments = append(doc.Segments, transcript.Segment{
			Start: seg.Start,
			End:   seg.End,
			Text:  text,
		})
	}

	return doc, nil
}
