package transcribe

import (
	"strings"

	"github.com/mgpai22/recut/internal/transcript"
)

// controls how word-level output is regrouped into segments
type GroupOptions struct {
	// inter-word gap, in seconds, that starts a new segment
	PauseThreshold float64
	// maximum words per segment before forcing a split
	MaxWords int
}

func DefaultGroupOptions() GroupOptions {
	return GroupOptions{
		PauseThreshold: 1.0,
		MaxWords:       30,
	}
}

// GroupWords builds segments from a word-level timeline for engines that
// only return word timestamps. A segment breaks on a pause longer than the
// threshold or when it reaches the word limit.
func GroupWords(words []transcript.Word, opts GroupOptions) []transcript.Segment {
	if opts.MaxWords <= 0 {
		opts.MaxWords = DefaultGroupOptions().MaxWords
	}
	if opts.PauseThreshold <= 0 {
		opts.PauseThreshold = DefaultGroupOptions().PauseThreshold
	}

	var segments []transcript.Segment
	var current []transcript.Word

	for _, word := range words {
		if len(current) > 0 {
			gap := word.Start - current[len(current)-1].End
			if gap > opts.PauseThreshold || len(current) >= opts.MaxWords {
				segments = append(segments, buildSegment(current))
				current = nil
			}
		}
		current = append(current, word)
	}

	if len(current) > 0 {
		segments = append(segments, buildSegment(current))
	}

	return segments
}

func buildSegment(words []transcript.Word) transcript.Segment {
	texts := make([]string, len(words))
	for i, w := range words {
		texts[i] = w.Text
	}

	owned := make([]transcript.Word, len(words))
	copy(owned, words)

	return transcript.Segment{
		Start: words[0].Start,
		End:   words[len(words)-1].End,
		Text:  strings.Join(texts, " "),
		Words: owned,
	}
}
