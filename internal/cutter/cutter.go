// Package cutter hands exclusion ranges to a cutting engine. auto-editor is
// the default; an ffmpeg engine renders the cut directly when auto-editor is
// not available.
package cutter

import (
	"context"
	"fmt"
	"os/exec"
	"strconv"
	"strings"

	"github.com/mgpai22/recut/internal/logging"
	"github.com/mgpai22/recut/internal/timerange"
)

// options forwarded to auto-editor
type Options struct {
	Margin *float64 // seconds of margin around each cut; nil leaves auto-editor's default
	Export string   // export format (e.g. final-cut-pro, premiere, resolve)
	Extra  []string // extra args passed through untouched
}

// BuildAutoEditorCmd builds an auto-editor invocation that removes the given
// ranges from the video. Ranges go through the shared merger first, so the
// command never carries overlapping --cut-out pairs.
func BuildAutoEditorCmd(videoPath string, cuts []timerange.Range, opts Options) []string {
	cmd := []string{"auto-editor", videoPath}

	for _, r := range timerange.Merge(cuts) {
		cmd = append(cmd, "--cut-out", fmt.Sprintf("%ss,%ss",
			formatSeconds(r.Start), formatSeconds(r.End)))
	}

	if opts.Margin != nil {
		cmd = append(cmd, "--margin", formatSeconds(*opts.Margin))
	}
	if opts.Export != "" {
		cmd = append(cmd, "--export", opts.Export)
	}
	cmd = append(cmd, opts.Extra...)

	return cmd
}

// RunAutoEditor executes a command built by BuildAutoEditorCmd.
func RunAutoEditor(ctx context.Context, argv []string, logger *logging.Logger) error {
	if len(argv) == 0 {
		return fmt.Errorf("empty command")
	}

	logger.Infow("Running auto-editor",
		"command", strings.Join(argv, " "),
	)

	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	var stdout, stderr strings.Builder
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("auto-editor failed: %w: %s", err, strings.TrimSpace(stderr.String()))
	}

	if out := strings.TrimSpace(stdout.String()); out != "" {
		logger.Debugw("auto-editor output", "stdout", out)
	}

	return nil
}

// ParseCutList parses user-supplied "start,end" second pairs.
func ParseCutList(pairs []string) ([]timerange.Range, error) {
	var cuts []timerange.Range
	for _, pair := range pairs {
		parts := strings.SplitN(pair, ",", 2)
		if len(parts) != 2 {
			return nil, fmt.Errorf("invalid cut range %q: expected start,end", pair)
		}
		start, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid cut range %q: %w", pair, err)
		}
		end, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid cut range %q: %w", pair, err)
		}
		if end < start {
			return nil, fmt.Errorf("invalid cut range %q: end before start", pair)
		}
		cuts = append(cuts, timerange.Range{Start: start, End: end})
	}
	return cuts, nil
}

// trims trailing zeros so commands read "5.2s" rather than "5.200000s"
func formatSeconds(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
