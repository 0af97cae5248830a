// Package diff is the transcript diff engine: it compares the pristine
// subtitle snapshot against the user-edited copy and recovers the time
// ranges of deleted cues from the time-aligned transcript.
package diff

import (
	"fmt"

	"github.com/mgpai22/recut/internal/srt"
	"github.com/mgpai22/recut/internal/timerange"
	"github.com/mgpai22/recut/internal/transcript"
)

// FindDeletedRanges diffs the two block sequences by normalized content, not
// by position: a human editor may reorder, renumber or partially retype
// blocks, so a cue counts as deleted only when its normalized text no longer
// appears anywhere in the edited file. Deleted cue timestamps come from the
// transcript when a segment match is found; otherwise the cue's own SRT
// timestamps are used and a warning is recorded. The result is sorted and
// merged. An empty result means nothing was deleted, which is a valid
// outcome, not an error.
func FindDeletedRanges(
	original, edited []srt.Block,
	segments []transcript.Segment,
	opts MatchOptions,
) ([]timerange.Range, []string) {
	editedTexts := make(map[string]struct{}, len(edited))
	for _, block := range edited {
		if norm := Normalize(block.Text); norm != "" {
			editedTexts[norm] = struct{}{}
		}
	}

	var ranges []timerange.Range
	var warnings []string

	for _, block := range original {
		norm := Normalize(block.Text)
		if norm == "" {
			continue
		}
		if _, kept := editedTexts[norm]; kept {
			continue
		}

		if r, ok := FindBestMatch(norm, segments, opts); ok {
			ranges = append(ranges, r)
		} else {
			warnings = append(warnings, fmt.Sprintf(
				"could not match deleted cue to transcript, using its own timestamps: %q",
				truncate(block.Text, 60)))
			ranges = append(ranges, timerange.Range{Start: block.Start, End: block.End})
		}
	}

	if len(ranges) == 0 {
		return nil, warnings
	}

	return timerange.Merge(ranges), warnings
}

func truncate(text string, max int) string {
	runes := []rune(text)
	if len(runes) <= max {
		return text
	}
	return string(runes[:max]) + "..."
}
