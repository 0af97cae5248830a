package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mgpai22/recut/internal/cutter"
	"github.com/mgpai22/recut/internal/diff"
	"github.com/mgpai22/recut/internal/srt"
	"github.com/mgpai22/recut/internal/timerange"
	"github.com/mgpai22/recut/internal/transcript"
)

var cutCmd = &cobra.Command{
	Use:   "cut [media_file]",
	Short: "Cut deleted transcript sections out of a video",
	Long: `Compare the edited subtitle file against its pristine snapshot, recover
the deleted time ranges from the time-aligned transcript, and cut them out
of the video.

By default the three artifacts written by "recut transcribe" are located
next to the media file; override their paths individually if they live
elsewhere.

Examples:
  recut cut talk.mp4
  recut cut talk.mp4 --dry-run
  recut cut talk.mp4 --margin 0.2 --export final-cut-pro
  recut cut talk.mp4 --engine ffmpeg --output talk_cut.mp4`,
	Args: cobra.ExactArgs(1),
	RunE: runCut,
}

func init() {
	rootCmd.AddCommand(cutCmd)

	cutCmd.Flags().
		String("original", "", "Path to the pristine .srt.orig snapshot (default: <stem>.srt.orig)")
	cutCmd.Flags().
		String("edited", "", "Path to the edited .srt file (default: <stem>.srt)")
	cutCmd.Flags().
		String("json", "", "Path to the time-aligned transcript (default: <stem>.json)")
	cutCmd.Flags().
		Float64("overlap-threshold", 0.5, "Minimum word-overlap ratio for fuzzy transcript matching")
	cutCmd.Flags().
		Float64("margin", 0, "Margin in seconds around each cut (auto-editor engine; omit to keep auto-editor's default)")
	cutCmd.Flags().
		String("export", "", "Export format (e.g. final-cut-pro, premiere, resolve)")
	cutCmd.Flags().
		String("engine", "auto-editor", "Cutting engine (auto-editor, ffmpeg)")
	cutCmd.Flags().
		StringP("output", "o", "", "Output file path (ffmpeg engine, default: <stem>_cut<ext>)")
	cutCmd.Flags().
		StringArray("extra", nil, "Extra arguments passed through to auto-editor")
	cutCmd.Flags().
		Bool("dry-run", false, "Print the cut ranges and command without cutting")
}

// default artifact paths for a media file, as written by the transcribe command
func artifactPaths(mediaPath string) (original, edited, json string) {
	stem := strings.TrimSuffix(mediaPath, filepath.Ext(mediaPath))
	return stem + ".srt.orig", stem + ".srt", stem + ".json"
}

func runCut(cmd *cobra.Command, args []string) error {
	mediaPath := args[0]
	ctx := context.Background()

	if err := checkMediaExists(mediaPath); err != nil {
		return err
	}

	originalPath, _ := cmd.Flags().GetString("original")
	editedPath, _ := cmd.Flags().GetString("edited")
	jsonPath, _ := cmd.Flags().GetString("json")
	threshold, _ := cmd.Flags().GetFloat64("overlap-threshold")
	margin := marginFlag(cmd)
	export, _ := cmd.Flags().GetString("export")
	engine, _ := cmd.Flags().GetString("engine")
	outputPath, _ := cmd.Flags().GetString("output")
	extra, _ := cmd.Flags().GetStringArray("extra")
	dryRun, _ := cmd.Flags().GetBool("dry-run")

	defOriginal, defEdited, defJSON := artifactPaths(mediaPath)
	if originalPath == "" {
		originalPath = defOriginal
	}
	if editedPath == "" {
		editedPath = defEdited
	}
	if jsonPath == "" {
		jsonPath = defJSON
	}

	original, warnings, err := srt.ParseFile(originalPath)
	if err != nil {
		return err
	}
	for _, w := range warnings {
		logger.Warnw("Original subtitle file", "warning", w)
	}

	edited, warnings, err := srt.ParseFile(editedPath)
	if err != nil {
		return err
	}
	for _, w := range warnings {
		logger.Warnw("Edited subtitle file", "warning", w)
	}

	doc, err := transcript.Load(jsonPath)
	if err != nil {
		return err
	}

	opts := diff.MatchOptions{OverlapThreshold: threshold}
	ranges, warnings := diff.FindDeletedRanges(original, edited, doc.Segments, opts)
	for _, w := range warnings {
		logger.Warnw("Deletion detection", "warning", w)
	}

	if len(ranges) == 0 {
		logger.Infow("No deleted blocks found, nothing to cut")
		return nil
	}

	fmt.Printf("Found %d cut range(s):\n", len(ranges))
	for _, r := range ranges {
		fmt.Printf("  %.3fs - %.3fs  (%.3fs)\n", r.Start, r.End, r.Duration())
	}

	switch engine {
	case "auto-editor":
		return cutWithAutoEditor(ctx, mediaPath, ranges, cutter.Options{
			Margin: margin,
			Export: export,
			Extra:  extra,
		}, dryRun)
	case "ffmpeg":
		return cutWithFFmpeg(ctx, mediaPath, outputPath, ranges, dryRun)
	default:
		return fmt.Errorf("unsupported engine %q: use auto-editor or ffmpeg", engine)
	}
}

func cutWithAutoEditor(
	ctx context.Context,
	mediaPath string,
	ranges []timerange.Range,
	opts cutter.Options,
	dryRun bool,
) error {
	argv := cutter.BuildAutoEditorCmd(mediaPath, ranges, opts)
	if dryRun {
		fmt.Println(strings.Join(argv, " "))
		return nil
	}
	if err := cutter.RunAutoEditor(ctx, argv, logger); err != nil {
		return err
	}
	logger.Infow("auto-editor completed successfully")
	return nil
}

func cutWithFFmpeg(
	ctx context.Context,
	mediaPath, outputPath string,
	ranges []timerange.Range,
	dryRun bool,
) error {
	if outputPath == "" {
		ext := filepath.Ext(mediaPath)
		outputPath = strings.TrimSuffix(mediaPath, ext) + "_cut" + ext
	}
	if dryRun {
		fmt.Printf("Would write %s with %d range(s) removed\n", outputPath, len(ranges))
		return nil
	}
	if err := cutter.FFmpegCut(ctx, mediaPath, outputPath, ranges); err != nil {
		return err
	}
	logger.Infow("Cut complete", "output", outputPath)
	return nil
}

// margin only counts when the user actually set the flag, so that an
// explicit --margin 0 and no flag at all stay distinguishable downstream
func marginFlag(cmd *cobra.Command) *float64 {
	if !cmd.Flags().Changed("margin") {
		return nil
	}
	margin, _ := cmd.Flags().GetFloat64("margin")
	return &margin
}

// ensure the media file exists before doing any work
func checkMediaExists(path string) error {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return fmt.Errorf("file not found: %s", path)
	}
	return nil
}
