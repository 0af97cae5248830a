// Package srt reads and writes SubRip subtitle files. The parser is
// deliberately lenient: the files it sees come back from hand editing, so
// missing indices, mixed timestamp separators and mangled cues are expected.
package srt

import (
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/mgpai22/recut/internal/timecode"
)

// one cue from a subtitle file
type Block struct {
	Index *int // sequence number, absent when the line is missing or mangled
	Start float64
	End   float64
	Text  string
}

var (
	blankLineRegex = regexp.MustCompile(`\n\s*\n`)
	timestampLine  = regexp.MustCompile(
		`(\d+:\d{2}:\d{2}[,.]\d{3})\s*-->\s*(\d+:\d{2}:\d{2}[,.]\d{3})`,
	)
	arrowMarker = regexp.MustCompile(`(^|\s)-->(\s|$)`)
)

// Parse splits content into cue blocks. Damaged cues are dropped with a
// warning; a single bad cue never aborts the rest of the file. Warnings are
// advisory and returned to the caller rather than logged here.
func Parse(content string) ([]Block, []string) {
	content = strings.TrimPrefix(content, "\uFEFF")

	var blocks []Block
	var warnings []string

	for _, raw := range blankLineRegex.Split(strings.TrimSpace(content), -1) {
		var lines []string
		for _, line := range strings.Split(raw, "\n") {
			if trimmed := strings.TrimSpace(line); trimmed != "" {
				lines = append(lines, trimmed)
			}
		}
		if len(lines) == 0 {
			continue
		}

		// the timestamp line is the structural anchor, not the first line:
		// the index line above it may be missing entirely. Anchor on a full
		// timestamp match so a stray "-->" inside cue text is never mistaken
		// for it.
		tsIdx := -1
		for i, line := range lines {
			if timestampLine.MatchString(line) {
				tsIdx = i
				break
			}
		}
		if tsIdx == -1 {
			if arrowIdx := findArrowLine(lines); arrowIdx != -1 {
				warnings = append(warnings,
					fmt.Sprintf("skipping block with malformed timestamps: %q", lines[arrowIdx]))
			} else {
				warnings = append(warnings,
					fmt.Sprintf("skipping block with no timestamp line: %q", firstLines(lines, 2)))
			}
			continue
		}

		matches := timestampLine.FindStringSubmatch(lines[tsIdx])

		start, err := timecode.Parse(matches[1])
		if err != nil {
			warnings = append(warnings,
				fmt.Sprintf("skipping block with unparseable start time: %q", lines[tsIdx]))
			continue
		}
		end, err := timecode.Parse(matches[2])
		if err != nil {
			warnings = append(warnings,
				fmt.Sprintf("skipping block with unparseable end time: %q", lines[tsIdx]))
			continue
		}

		var index *int
		if tsIdx > 0 {
			if n, err := strconv.Atoi(lines[tsIdx-1]); err == nil {
				index = &n
			}
		}

		blocks = append(blocks, Block{
			Index: index,
			Start: start,
			End:   end,
			Text:  strings.Join(lines[tsIdx+1:], " "),
		})
	}

	return blocks, warnings
}

// ParseFile reads and parses a subtitle file.
func ParseFile(path string) ([]Block, []string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read subtitle file: %w", err)
	}
	blocks, warnings := Parse(string(content))
	return blocks, warnings, nil
}

// Format renders blocks as canonical SRT text: 1-based reindexing and comma
// millisecond separators regardless of what the source looked like.
func Format(blocks []Block) string {
	var sb strings.Builder
	for i, block := range blocks {
		sb.WriteString(fmt.Sprintf("%d\n", i+1))
		sb.WriteString(fmt.Sprintf("%s --> %s\n",
			timecode.Format(block.Start),
			timecode.Format(block.End)))
		sb.WriteString(block.Text)
		sb.WriteString("\n\n")
	}
	return sb.String()
}

// WriteFile writes blocks to path in canonical SRT form.
func WriteFile(path string, blocks []Block) error {
	return os.WriteFile(path, []byte(Format(blocks)), 0644)
}

// index of the first line carrying a whitespace-delimited arrow marker
func findArrowLine(lines []string) int {
	for i, line := range lines {
		if arrowMarker.MatchString(line) {
			return i
		}
	}
	return -1
}

func firstLines(lines []string, n int) string {
	if len(lines) > n {
		lines = lines[:n]
	}
	return strings.Join(lines, " / ")
}
