package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mgpai22/recut/internal/media"
	"github.com/mgpai22/recut/internal/transcribe"
)

var transcribeCmd = &cobra.Command{
	Use:   "transcribe [media_file]",
	Short: "Transcribe a video and write an editable subtitle file",
	Long: `Transcribe the specified media file and write three artifacts next to it:

  <stem>.json      time-aligned transcript (source of truth for timestamps)
  <stem>.srt       editable subtitle file
  <stem>.srt.orig  pristine snapshot kept for diffing

Delete lines from the .srt file, then run "recut cut" to apply the cuts.

Examples:
  recut transcribe talk.mp4
  recut transcribe talk.mp4 --engine openai --api-key YOUR_KEY
  recut transcribe talk.mp4 --model large-v2 -l de --output-dir ./work`,
	Args: cobra.ExactArgs(1),
	RunE: runTranscribe,
}

func init() {
	rootCmd.AddCommand(transcribeCmd)

	transcribeCmd.Flags().
		String("engine", "whisperx", "Transcription engine (whisperx, openai, gemini)")
	transcribeCmd.Flags().
		String("model", "", "Model name (default: medium for whisperx, whisper-1 for openai, gemini-2.5-flash for gemini)")
	transcribeCmd.Flags().
		StringP("api-key", "k", "", "API key for hosted engines (or set OPENAI_API_KEY / GEMINI_API_KEY)")
	transcribeCmd.Flags().
		String("output-dir", "", "Output directory (default: same as media file)")
	transcribeCmd.Flags().
		Float64("pause-threshold", 1.0, "Pause in seconds that starts a new segment when regrouping word timestamps")
	transcribeCmd.Flags().
		Int("max-words", 30, "Maximum words per segment when regrouping word timestamps")
}

func runTranscribe(cmd *cobra.Command, args []string) error {
	mediaPath := args[0]
	ctx := context.Background()

	if _, err := os.Stat(mediaPath); os.IsNotExist(err) {
		return fmt.Errorf("file not found: %s", mediaPath)
	}
	if !media.IsMediaFile(mediaPath) {
		return fmt.Errorf("unsupported file type: %s (expected audio or video file)", mediaPath)
	}

	engineStr, _ := cmd.Flags().GetString("engine")
	model, _ := cmd.Flags().GetString("model")
	apiKey, _ := cmd.Flags().GetString("api-key")
	outputDir, _ := cmd.Flags().GetString("output-dir")
	language, _ := cmd.Flags().GetString("language")
	pauseThreshold, _ := cmd.Flags().GetFloat64("pause-threshold")
	maxWords, _ := cmd.Flags().GetInt("max-words")

	engine := transcribe.Engine(engineStr)
	switch engine {
	case transcribe.EngineWhisperX:
		// local engine, no key needed
	case transcribe.EngineOpenAI:
		if apiKey == "" {
			apiKey = os.Getenv("OPENAI_API_KEY")
		}
		if apiKey == "" {
			return fmt.Errorf("OpenAI API key is required: use --api-key or set OPENAI_API_KEY")
		}
	case transcribe.EngineGemini:
		if apiKey == "" {
			apiKey = os.Getenv("GEMINI_API_KEY")
		}
		if apiKey == "" {
			return fmt.Errorf("Gemini API key is required: use --api-key or set GEMINI_API_KEY")
		}
	default:
		return fmt.Errorf("unsupported engine %q: use whisperx, openai, or gemini", engineStr)
	}

	opts := transcribe.Options{
		Model:    model,
		Language: language,
		Group: transcribe.GroupOptions{
			PauseThreshold: pauseThreshold,
			MaxWords:       maxWords,
		},
	}

	transcriber, err := transcribe.Factory(ctx, engine, apiKey, opts)
	if err != nil {
		return fmt.Errorf("failed to create transcriber: %w", err)
	}

	if duration, err := media.GetDuration(ctx, mediaPath); err == nil {
		logger.Infow("Media prepared",
			"duration", duration.String(),
			"video", media.IsVideoFile(mediaPath),
		)
	} else {
		logger.Debugw("Could not probe media duration", "error", err)
	}

	logger.Infow("Transcribing media",
		"input", mediaPath,
		"engine", engineStr,
	)

	doc, err := transcriber.Transcribe(ctx, mediaPath)
	if err != nil {
		return fmt.Errorf("transcription failed: %w", err)
	}

	logger.Infow("Transcription complete",
		"segments", len(doc.Segments),
	)

	out, err := transcribe.WriteOutputs(doc, mediaPath, outputDir)
	if err != nil {
		return fmt.Errorf("failed to write outputs: %w", err)
	}

	fmt.Printf("Generated files:\n")
	fmt.Printf("  JSON (timestamps): %s\n", out.JSON)
	fmt.Printf("  SRT (editable):    %s\n", out.SRT)
	fmt.Printf("  SRT (original):    %s\n", out.Original)
	fmt.Printf("\nEdit %s to remove unwanted sections, then run: recut cut %s\n",
		out.SRT, mediaPath)

	return nil
}
