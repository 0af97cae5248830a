package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mgpai22/recut/internal/cutter"
	"github.com/mgpai22/recut/internal/media"
	"github.com/mgpai22/recut/internal/timerange"
)

var rangesCmd = &cobra.Command{
	Use:   "ranges [media_file]",
	Short: "Cut explicit time ranges out of a video",
	Long: `Cut arbitrary time ranges out of a video without going through the
transcript diff. Ranges are given as start,end second pairs, merged through
the same logic the diff engine uses, and handed to auto-editor.

Examples:
  recut ranges talk.mp4 --cuts 5.2,7.4 --cuts 30.1,35.8
  recut ranges talk.mp4 --cuts 5.2,7.4 --margin 0.2 --dry-run`,
	Args: cobra.ExactArgs(1),
	RunE: runRanges,
}

func init() {
	rootCmd.AddCommand(rangesCmd)

	rangesCmd.Flags().
		StringArray("cuts", nil, "Cut range as start,end seconds (repeatable)")
	rangesCmd.Flags().
		Float64("margin", 0, "Margin in seconds around each cut")
	rangesCmd.Flags().
		String("export", "", "Export format (e.g. final-cut-pro, premiere, resolve)")
	rangesCmd.Flags().
		Bool("dry-run", false, "Print the command without running it")
	_ = rangesCmd.MarkFlagRequired("cuts")
}

func runRanges(cmd *cobra.Command, args []string) error {
	mediaPath := args[0]
	ctx := context.Background()

	if err := checkMediaExists(mediaPath); err != nil {
		return err
	}

	pairs, _ := cmd.Flags().GetStringArray("cuts")
	margin := marginFlag(cmd)
	export, _ := cmd.Flags().GetString("export")
	dryRun, _ := cmd.Flags().GetBool("dry-run")

	cuts, err := cutter.ParseCutList(pairs)
	if err != nil {
		return err
	}

	merged := timerange.Merge(cuts)
	logger.Infow("Merged cut ranges",
		"input", len(cuts),
		"merged", len(merged),
	)

	// flag ranges past the end of the media; auto-editor would fail later
	// with a less helpful message
	if duration, err := media.GetDuration(ctx, mediaPath); err == nil {
		total := duration.Seconds()
		for _, r := range merged {
			if r.End > total {
				logger.Warnw("Cut range extends past end of media",
					"range_end", r.End,
					"media_duration", total,
				)
			}
		}
	} else {
		logger.Debugw("Could not probe media duration", "error", err)
	}

	argv := cutter.BuildAutoEditorCmd(mediaPath, merged, cutter.Options{
		Margin: margin,
		Export: export,
	})

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
