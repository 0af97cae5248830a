package diff

import (
	"testing"

	"github.com/mgpai22/recut/internal/transcript"
)

func seg(start, end float64, text string) transcript.Segment {
	return transcript.Segment{Start: start, End: end, Text: text}
}

func TestFindBestMatchExact(t *testing.T) {
	segments := []transcript.Segment{
		seg(0, 2, "hello there everyone"),
		seg(2, 5, "Um, so anyway..."),
		seg(5, 9, "thanks and goodbye"),
	}

	r, ok := FindBestMatch("um so anyway", segments, DefaultMatchOptions())
	if !ok {
		t.Fatal("expected a match")
	}
	if r.Start != 2 || r.End != 5 {
		t.Errorf("expected range 2-5, got %v-%v", r.Start, r.End)
	}
}

func TestFindBestMatchExactWinsOverContainment(t *testing.T) {
	// the first segment is a strong containment candidate, but the later
	// exact match must short-circuit and win
	segments := []transcript.Segment{
		seg(0, 3, "um so anyway as I was saying"),
		seg(10, 12, "um so anyway"),
	}

	r, ok := FindBestMatch("um so anyway", segments, DefaultMatchOptions())
	if !ok {
		t.Fatal("expected a match")
	}
	if r.Start != 10 || r.End != 12 {
		t.Errorf("exact match did not take precedence: got %v-%v", r.Start, r.End)
	}
}

func TestFindBestMatchContainmentThreshold(t *testing.T) {
	tests := []struct {
		name    string
		target  string
		segText string
		wantOK  bool
	}{
		{
			// 2 shared words / max(2, 4) = exactly 0.5: accepted
			name:    "score at threshold accepted",
			target:  "alpha beta",
			segText: "alpha beta gamma delta",
			wantOK:  true,
		},
		{
			// 2 shared words / max(2, 5) = 0.4: rejected
			name:    "score below threshold rejected",
			target:  "alpha beta",
			segText: "alpha beta gamma delta epsilon",
			wantOK:  false,
		},
		{
			// no containment either way means no candidate at all
			name:    "no containment no match",
			target:  "alpha beta",
			segText: "alpha gamma beta",
			wantOK:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			segments := []transcript.Segment{seg(1, 2, tt.segText)}
			_, ok := FindBestMatch(tt.target, segments, DefaultMatchOptions())
			if ok != tt.wantOK {
				t.Errorf("FindBestMatch(%q vs %q) ok = %v, want %v",
					tt.target, tt.segText, ok, tt.wantOK)
			}
		})
	}
}

func TestFindBestMatchPicksHighestScore(t *testing.T) {
	segments := []transcript.Segment{
		seg(0, 1, "one two three four five six"), // 3/6 = 0.5
		seg(5, 6, "one two three four"),          // 3/4 = 0.75
	}

	r, ok := FindBestMatch("one two three", segments, DefaultMatchOptions())
	if !ok {
		t.Fatal("expected a match")
	}
	if r.Start != 5 {
		t.Errorf("expected the higher-scoring segment, got %v-%v", r.Start, r.End)
	}
}

func TestFindBestMatchConfigurableThreshold(t *testing.T) {
	segments := []transcript.Segment{
		seg(0, 1, "alpha beta gamma delta epsilon"), // 0.4 against "alpha beta"
	}

	opts := MatchOptions{OverlapThreshold: 0.3}
	if _, ok := FindBestMatch("alpha beta", segments, opts); !ok {
		t.Error("lowered threshold should accept the 0.4 candidate")
	}
}

func TestFindBestMatchEmptyInputs(t *testing.T) {
	segments := []transcript.Segment{
		seg(0, 1, "real text"),
		seg(1, 2, "!!!"), // normalizes to empty, must be skipped
	}

	if _, ok := FindBestMatch("", segments, DefaultMatchOptions()); ok {
		t.Error("empty target must never match")
	}
	if _, ok := FindBestMatch("something else", nil, DefaultMatchOptions()); ok {
		t.Error("no segments means no match")
	}
}
