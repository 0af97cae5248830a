// Package timecode converts between SRT timestamp text and seconds.
package timecode

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
)

// comma is canonical but period shows up in hand-edited files
var timestampRegex = regexp.MustCompile(`^(\d+):(\d{2}):(\d{2})[,.](\d{3})$`)

// Parse converts an SRT timestamp (HH:MM:SS,mmm or HH:MM:SS.mmm) to seconds.
func Parse(s string) (float64, error) {
	matches := timestampRegex.FindStringSubmatch(s)
	if matches == nil {
		return 0, fmt.Errorf("invalid timestamp: %q", s)
	}

	h, _ := strconv.Atoi(matches[1])
	m, _ := strconv.Atoi(matches[2])
	sec, _ := strconv.Atoi(matches[3])
	ms, _ := strconv.Atoi(matches[4])

	return float64(h)*3600 + float64(m)*60 + float64(sec) + float64(ms)/1000, nil
}

// Format converts seconds to the canonical SRT timestamp HH:MM:SS,mmm.
// Milliseconds round half-up and carry into the second rather than clamping.
func Format(seconds float64) string {
	if seconds < 0 {
		seconds = 0
	}

	totalMillis := int64(math.Floor(seconds*1000 + 0.5))

	h := totalMillis / 3600000
	m := (totalMillis % 3600000) / 60000
	s := (totalMillis % 60000) / 1000
	ms := totalMillis % 1000

	return fmt.Sprintf("%02d:%02d:%02d,%03d", h, m, s, ms)
}
