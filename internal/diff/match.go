package diff

import (
	"strings"

	"github.com/mgpai22/recut/internal/timerange"
	"github.com/mgpai22/recut/internal/transcript"
)

// tuning for fuzzy segment matching
type MatchOptions struct {
	// minimum word-overlap ratio for a containment match to be accepted
	OverlapThreshold float64
}

func DefaultMatchOptions() MatchOptions {
	return MatchOptions{
		OverlapThreshold: 0.5,
	}
}

// FindBestMatch locates the transcript segment whose text best matches the
// normalized target and returns its time range. An exact normalized-text
// match wins immediately. Otherwise segments where one text contains the
// other are scored by word-set overlap, and the best candidate is accepted
// only at or above the threshold. Returns false when nothing matches; the
// caller decides the fallback.
func FindBestMatch(
	target string,
	segments []transcript.Segment,
	opts MatchOptions,
) (timerange.Range, bool) {
	if target == "" {
		return timerange.Range{}, false
	}

	var best timerange.Range
	bestScore := 0.0
	found := false

	for _, seg := range segments {
		normSeg := Normalize(seg.Text)
		if normSeg == "" {
			continue
		}

		if normSeg == target {
			return timerange.Range{Start: seg.Start, End: seg.End}, true
		}

		if !strings.Contains(normSeg, target) && !strings.Contains(target, normSeg) {
			continue
		}

		score := wordOverlap(target, normSeg)
		if score > bestScore {
			bestScore = score
			best = timerange.Range{Start: seg.Start, End: seg.End}
			found = true
		}
	}

	if found && bestScore >= opts.OverlapThreshold {
		return best, true
	}

	return timerange.Range{}, false
}

// ratio of shared unique words to the larger word set
func wordOverlap(a, b string) float64 {
	setA := wordSet(a)
	setB := wordSet(b)

	larger := len(setA)
	if len(setB) > larger {
		larger = len(setB)
	}
	if larger == 0 {
		return 0
	}

	shared := 0
	for word := range setA {
		if _, ok := setB[word]; ok {
			shared++
		}
	}

	return float64(shared) / float64(larger)
}

func wordSet(text string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, word := range strings.Fields(text) {
		set[word] = struct{}{}
	}
	return set
}
