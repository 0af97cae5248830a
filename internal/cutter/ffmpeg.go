package cutter

import (
	"context"
	"fmt"
	"os"
	"strings"

	ffmpeg "github.com/u2takey/ffmpeg-go"

	"github.com/mgpai22/recut/internal/timerange"
)

// FFmpegCut renders the complement of the exclusion list: every frame inside
// a merged cut range is dropped and the remaining timeline is re-stamped so
// the output plays without gaps.
func FFmpegCut(ctx context.Context, videoPath, outputPath string, cuts []timerange.Range) error {
	if _, err := os.Stat(videoPath); os.IsNotExist(err) {
		return fmt.Errorf("video file not found: %s", videoPath)
	}
	if outputPath == "" {
		return fmt.Errorf("output path is required")
	}

	merged := timerange.Merge(cuts)
	if len(merged) == 0 {
		return fmt.Errorf("no cut ranges given")
	}

	expr := excludeExpr(merged)

	err := ffmpeg.Input(videoPath).
		Output(outputPath, ffmpeg.KwArgs{
			"vf": fmt.Sprintf("select='%s',setpts=N/FRAME_RATE/TB", expr),
			"af": fmt.Sprintf("aselect='%s',asetpts=N/SR/TB", expr),
		}).
		OverWriteOutput().
		Run()

	if err != nil {
		return fmt.Errorf("ffmpeg cut failed: %w", err)
	}

	return nil
}

// select-filter expression keeping everything outside the given ranges
func excludeExpr(ranges []timerange.Range) string {
	terms := make([]string, len(ranges))
	for i, r := range ranges {
		terms[i] = fmt.Sprintf("between(t,%s,%s)",
			formatSeconds(r.Start), formatSeconds(r.End))
	}
	return fmt.Sprintf("not(%s)", strings.Join(terms, "+"))
}
